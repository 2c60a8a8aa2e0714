package files

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/intranet/erp-backend/internal/domain/files"
	"github.com/intranet/erp-backend/internal/domain/shared"
	"go.uber.org/zap"
)

// ObjectStorageService defines the interface for object storage operations.
// Implemented by the infrastructure layer (S3-compatible backends).
type ObjectStorageService interface {
	// GenerateUploadURL generates a presigned URL for uploading a file
	GenerateUploadURL(ctx context.Context, storageKey, contentType string, expiresIn time.Duration) (string, time.Time, error)

	// GenerateDownloadURL generates a presigned URL for downloading a file
	GenerateDownloadURL(ctx context.Context, storageKey string, expiresIn time.Duration) (string, time.Time, error)

	// DeleteObject deletes an object from storage
	DeleteObject(ctx context.Context, storageKey string) error

	// ObjectExists checks if an object exists in storage
	ObjectExists(ctx context.Context, storageKey string) (bool, error)
}

// AttachmentServiceConfig holds configuration for the attachment service
type AttachmentServiceConfig struct {
	// UploadURLExpiry is the duration for which upload URLs are valid
	UploadURLExpiry time.Duration
	// DownloadURLExpiry is the duration for which download URLs are valid
	DownloadURLExpiry time.Duration
	// MaxUploadBytes caps the declared file size of new uploads. Zero
	// falls back to the domain-level limit.
	MaxUploadBytes int64
}

// DefaultAttachmentServiceConfig returns the default configuration
func DefaultAttachmentServiceConfig() AttachmentServiceConfig {
	return AttachmentServiceConfig{
		UploadURLExpiry:   15 * time.Minute,
		DownloadURLExpiry: 1 * time.Hour,
	}
}

// AttachmentService handles the upload, confirmation and linking lifecycle
// of file attachments. Files are uploaded directly to object storage via
// presigned URLs; the record here only tracks metadata and ownership.
type AttachmentService struct {
	attachmentRepo files.AttachmentRepository
	storageService ObjectStorageService
	eventBus       shared.EventPublisher
	config         AttachmentServiceConfig
	logger         *zap.Logger
}

// NewAttachmentService creates a new AttachmentService
func NewAttachmentService(
	attachmentRepo files.AttachmentRepository,
	storageService ObjectStorageService,
	eventBus shared.EventPublisher,
	logger *zap.Logger,
) *AttachmentService {
	return &AttachmentService{
		attachmentRepo: attachmentRepo,
		storageService: storageService,
		eventBus:       eventBus,
		config:         DefaultAttachmentServiceConfig(),
		logger:         logger,
	}
}

// SetConfig sets the service configuration
func (s *AttachmentService) SetConfig(config AttachmentServiceConfig) {
	s.config = config
}

// InitiateUpload creates a pending attachment record and returns a
// presigned upload URL for the client to PUT the file to
func (s *AttachmentService) InitiateUpload(
	ctx context.Context,
	tenantID, uploadedBy uuid.UUID,
	req InitiateUploadRequest,
) (*InitiateUploadResponse, error) {
	if s.config.MaxUploadBytes > 0 && req.FileSize > s.config.MaxUploadBytes {
		return nil, shared.NewDomainError("FILE_TOO_LARGE", "File exceeds the maximum allowed size")
	}

	storageKey := s.generateStorageKey(tenantID, req.FileName)

	attachment, err := files.NewAttachment(tenantID, uploadedBy, req.FileName, req.FileSize, req.ContentType, storageKey)
	if err != nil {
		return nil, err
	}

	if err := s.attachmentRepo.Save(ctx, attachment); err != nil {
		return nil, err
	}

	uploadURL, expiresAt, err := s.storageService.GenerateUploadURL(ctx, storageKey, req.ContentType, s.config.UploadURLExpiry)
	if err != nil {
		// Clean up the attachment record if URL generation fails
		_ = s.attachmentRepo.DeleteForTenant(ctx, tenantID, attachment.ID)
		s.logger.Error("Failed to generate upload URL", zap.Error(err))
		return nil, shared.NewDomainError("UPLOAD_URL_FAILED", "Failed to generate upload URL")
	}
	s.publishEvents(ctx, attachment)

	return &InitiateUploadResponse{
		AttachmentID: attachment.ID,
		UploadURL:    uploadURL,
		ExpiresAt:    expiresAt,
	}, nil
}

// ConfirmUpload verifies the object landed in storage and moves the
// attachment from pending to uploaded
func (s *AttachmentService) ConfirmUpload(ctx context.Context, tenantID, attachmentID uuid.UUID) (*AttachmentResponse, error) {
	attachment, err := s.attachmentRepo.FindByIDForTenant(ctx, tenantID, attachmentID)
	if err != nil {
		return nil, err
	}

	exists, err := s.storageService.ObjectExists(ctx, attachment.StorageKey)
	if err != nil {
		s.logger.Error("Failed to check storage object", zap.Error(err))
		return nil, shared.NewDomainError("STORAGE_CHECK_FAILED", "Failed to verify upload")
	}
	if !exists {
		return nil, shared.NewDomainError("UPLOAD_NOT_FOUND", "File not found in storage. Please upload the file first.")
	}

	if err := attachment.Confirm(); err != nil {
		return nil, err
	}

	if err := s.attachmentRepo.SaveWithLock(ctx, attachment); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, attachment)

	response := ToAttachmentResponse(attachment)
	return &response, nil
}

// LinkPending links uploaded attachments to their owning record. Called by
// the module services right after the owning record is created or updated.
func (s *AttachmentService) LinkPending(
	ctx context.Context,
	tenantID uuid.UUID,
	ownerType string,
	ownerID uuid.UUID,
	fileIDs []uuid.UUID,
) error {
	if len(fileIDs) == 0 {
		return nil
	}
	if !files.IsOwnerTypeAllowed(ownerType) {
		return shared.NewDomainError("INVALID_OWNER_TYPE", "Owner type is not allowed")
	}

	attachments, err := s.attachmentRepo.FindByIDs(ctx, tenantID, fileIDs)
	if err != nil {
		return err
	}
	if len(attachments) != len(fileIDs) {
		return shared.NewDomainError("NOT_FOUND", "One or more attachments were not found")
	}

	for _, attachment := range attachments {
		if err := attachment.LinkTo(ownerType, ownerID); err != nil {
			return err
		}
		if err := s.attachmentRepo.SaveWithLock(ctx, attachment); err != nil {
			return err
		}
	}

	return nil
}

// ListByOwner retrieves the attachments linked to a record
func (s *AttachmentService) ListByOwner(
	ctx context.Context,
	tenantID uuid.UUID,
	ownerType string,
	ownerID uuid.UUID,
) ([]AttachmentResponse, error) {
	if !files.IsOwnerTypeAllowed(ownerType) {
		return nil, shared.NewDomainError("INVALID_OWNER_TYPE", "Owner type is not allowed")
	}

	attachments, err := s.attachmentRepo.FindByOwner(ctx, tenantID, ownerType, ownerID)
	if err != nil {
		return nil, err
	}

	return ToAttachmentResponses(attachments), nil
}

// DownloadURL generates a presigned download URL for an uploaded attachment
func (s *AttachmentService) DownloadURL(ctx context.Context, tenantID, attachmentID uuid.UUID) (*DownloadURLResponse, error) {
	attachment, err := s.attachmentRepo.FindByIDForTenant(ctx, tenantID, attachmentID)
	if err != nil {
		return nil, err
	}

	if !attachment.IsDownloadable() {
		return nil, shared.NewDomainError("INVALID_STATE", "Attachment has no uploaded content")
	}

	url, expiresAt, err := s.storageService.GenerateDownloadURL(ctx, attachment.StorageKey, s.config.DownloadURLExpiry)
	if err != nil {
		s.logger.Error("Failed to generate download URL", zap.Error(err))
		return nil, shared.NewDomainError("DOWNLOAD_URL_FAILED", "Failed to generate download URL")
	}

	return &DownloadURLResponse{
		AttachmentID: attachment.ID,
		FileName:     attachment.FileName,
		DownloadURL:  url,
		ExpiresAt:    expiresAt,
	}, nil
}

// Delete removes an attachment record and its storage object
func (s *AttachmentService) Delete(ctx context.Context, tenantID, attachmentID uuid.UUID) error {
	attachment, err := s.attachmentRepo.FindByIDForTenant(ctx, tenantID, attachmentID)
	if err != nil {
		return err
	}

	// The storage object might already be gone; that must not block the
	// record delete.
	if err := s.storageService.DeleteObject(ctx, attachment.StorageKey); err != nil {
		s.logger.Warn("Failed to delete attachment from storage",
			zap.String("attachment_id", attachment.ID.String()),
			zap.String("storage_key", attachment.StorageKey),
			zap.Error(err))
	}

	if err := s.attachmentRepo.DeleteForTenant(ctx, tenantID, attachmentID); err != nil {
		return err
	}

	if s.eventBus != nil {
		_ = s.eventBus.Publish(ctx, files.NewAttachmentDeletedEvent(attachment))
	}

	return nil
}

// ReleaseOwner removes every attachment linked to a record. Called by the
// owning service when the record itself is deleted.
func (s *AttachmentService) ReleaseOwner(ctx context.Context, tenantID uuid.UUID, ownerType string, ownerID uuid.UUID) error {
	attachments, err := s.attachmentRepo.FindByOwner(ctx, tenantID, ownerType, ownerID)
	if err != nil {
		return err
	}

	for i := range attachments {
		attachment := attachments[i]

		if err := s.storageService.DeleteObject(ctx, attachment.StorageKey); err != nil {
			s.logger.Warn("Failed to delete attachment from storage",
				zap.String("attachment_id", attachment.ID.String()),
				zap.String("storage_key", attachment.StorageKey),
				zap.Error(err))
		}

		if err := s.attachmentRepo.DeleteForTenant(ctx, tenantID, attachment.ID); err != nil {
			return err
		}

		if s.eventBus != nil {
			_ = s.eventBus.Publish(ctx, files.NewAttachmentDeletedEvent(attachment))
		}
	}

	return nil
}

func (s *AttachmentService) generateStorageKey(tenantID uuid.UUID, fileName string) string {
	ext := filepath.Ext(fileName)
	return fmt.Sprintf("%s/attachments/%s%s", tenantID, uuid.New(), ext)
}

func (s *AttachmentService) publishEvents(ctx context.Context, attachment *files.Attachment) {
	if s.eventBus == nil {
		return
	}
	_ = s.eventBus.Publish(ctx, attachment.GetDomainEvents()...)
	attachment.ClearDomainEvents()
}
