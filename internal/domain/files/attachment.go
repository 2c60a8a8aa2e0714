package files

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/intranet/erp-backend/internal/domain/shared"
)

// AttachmentStatus represents the lifecycle of an uploaded file
type AttachmentStatus string

const (
	AttachmentStatusPending  AttachmentStatus = "PENDING"
	AttachmentStatusUploaded AttachmentStatus = "UPLOADED"
	AttachmentStatusLinked   AttachmentStatus = "LINKED"
)

// MaxAttachmentFileSize caps uploads at 100MB
const MaxAttachmentFileSize = 100 * 1024 * 1024

// allowedContentTypes is the upload whitelist
var allowedContentTypes = map[string]struct{}{
	"image/jpeg":         {},
	"image/png":          {},
	"image/gif":          {},
	"image/webp":         {},
	"application/pdf":    {},
	"text/plain":         {},
	"text/csv":           {},
	"application/zip":    {},
	"application/msword": {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {},
	"application/vnd.ms-excel": {},
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": {},
}

// allowedOwnerTypes lists the aggregates attachments can belong to
var allowedOwnerTypes = map[string]struct{}{
	"approval":    {},
	"contact":     {},
	"audit":       {},
	"license":     {},
	"ad_piece":    {},
	"meeting":     {},
	"contract":    {},
	"interview":   {},
	"kit":         {},
	"offboarding": {},
}

// Attachment is a file uploaded through the two-phase presigned flow.
// It starts pending with no owner, is confirmed after the client PUT,
// and becomes linked when an aggregate claims it.
type Attachment struct {
	shared.TenantAggregateRoot
	OwnerType   string           `gorm:"type:varchar(50);index:idx_attachments_owner"`
	OwnerID     *uuid.UUID       `gorm:"type:uuid;index:idx_attachments_owner"`
	Status      AttachmentStatus `gorm:"type:varchar(20);not null;index"`
	FileName    string           `gorm:"type:varchar(255);not null"`
	FileSize    int64            `gorm:"not null"`
	ContentType string           `gorm:"type:varchar(100);not null"`
	StorageKey  string           `gorm:"type:varchar(500);not null;uniqueIndex"`
	UploadedBy  uuid.UUID        `gorm:"type:uuid;not null;index"`
}

// TableName returns the table name for GORM
func (Attachment) TableName() string {
	return "file_attachments"
}

// NewAttachment registers a pending upload before the client transfers bytes
func NewAttachment(tenantID, uploadedBy uuid.UUID, fileName string, fileSize int64, contentType, storageKey string) (*Attachment, error) {
	if tenantID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_TENANT_ID", "Tenant ID cannot be empty")
	}
	if uploadedBy == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_UPLOADER", "Uploader cannot be empty")
	}
	if err := validateFileName(fileName); err != nil {
		return nil, err
	}
	if err := validateFileSize(fileSize); err != nil {
		return nil, err
	}
	if err := validateContentType(contentType); err != nil {
		return nil, err
	}
	if err := validateStorageKey(storageKey); err != nil {
		return nil, err
	}

	attachment := &Attachment{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Status:              AttachmentStatusPending,
		FileName:            strings.TrimSpace(fileName),
		FileSize:            fileSize,
		ContentType:         contentType,
		StorageKey:          storageKey,
		UploadedBy:          uploadedBy,
	}

	attachment.AddDomainEvent(NewAttachmentRegisteredEvent(attachment))

	return attachment, nil
}

// Confirm marks the upload as completed after the client PUT succeeds
func (a *Attachment) Confirm() error {
	if a.Status != AttachmentStatusPending {
		return shared.NewDomainError("INVALID_STATE", "Only pending attachments can be confirmed")
	}

	a.Status = AttachmentStatusUploaded
	a.UpdatedAt = time.Now()
	a.IncrementVersion()

	a.AddDomainEvent(NewAttachmentConfirmedEvent(a))

	return nil
}

// LinkTo binds an uploaded attachment to its owning aggregate
func (a *Attachment) LinkTo(ownerType string, ownerID uuid.UUID) error {
	if a.Status != AttachmentStatusUploaded {
		return shared.NewDomainError("INVALID_STATE", "Only uploaded attachments can be linked")
	}
	if _, ok := allowedOwnerTypes[ownerType]; !ok {
		return shared.NewDomainError("INVALID_OWNER_TYPE", "Owner type is not allowed")
	}
	if ownerID == uuid.Nil {
		return shared.NewDomainError("INVALID_OWNER_ID", "Owner ID cannot be empty")
	}

	a.OwnerType = ownerType
	a.OwnerID = &ownerID
	a.Status = AttachmentStatusLinked
	a.UpdatedAt = time.Now()
	a.IncrementVersion()

	return nil
}

// IsDownloadable reports whether the file bytes exist in storage
func (a *Attachment) IsDownloadable() bool {
	return a.Status == AttachmentStatusUploaded || a.Status == AttachmentStatusLinked
}

// IsOwnerTypeAllowed reports whether the owner type is in the whitelist
func IsOwnerTypeAllowed(ownerType string) bool {
	_, ok := allowedOwnerTypes[ownerType]
	return ok
}

// validation functions

func validateFileName(fileName string) error {
	trimmed := strings.TrimSpace(fileName)
	if trimmed == "" {
		return shared.NewDomainError("INVALID_FILE_NAME", "File name cannot be empty")
	}
	if len(trimmed) > 255 {
		return shared.NewDomainError("INVALID_FILE_NAME", "File name cannot exceed 255 characters")
	}
	if strings.ContainsAny(trimmed, "/\\") || strings.Contains(trimmed, "..") {
		return shared.NewDomainError("INVALID_FILE_NAME", "File name contains invalid characters")
	}
	return nil
}

func validateFileSize(fileSize int64) error {
	if fileSize <= 0 {
		return shared.NewDomainError("INVALID_FILE_SIZE", "File size must be positive")
	}
	if fileSize > MaxAttachmentFileSize {
		return shared.NewDomainError("FILE_TOO_LARGE", "File size cannot exceed 100MB")
	}
	return nil
}

func validateContentType(contentType string) error {
	if _, ok := allowedContentTypes[contentType]; !ok {
		return shared.NewDomainError("UNSUPPORTED_CONTENT_TYPE", "Content type is not allowed")
	}
	return nil
}

func validateStorageKey(storageKey string) error {
	if storageKey == "" {
		return shared.NewDomainError("INVALID_STORAGE_KEY", "Storage key cannot be empty")
	}
	if len(storageKey) > 500 {
		return shared.NewDomainError("INVALID_STORAGE_KEY", "Storage key cannot exceed 500 characters")
	}
	if strings.Contains(storageKey, "..") || strings.HasPrefix(storageKey, "/") {
		return shared.NewDomainError("INVALID_STORAGE_KEY", "Storage key contains invalid path segments")
	}
	return nil
}
