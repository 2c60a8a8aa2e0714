package files

import (
	"time"

	"github.com/google/uuid"
	"github.com/intranet/erp-backend/internal/domain/files"
)

// InitiateUploadRequest represents a request for a presigned upload URL
type InitiateUploadRequest struct {
	FileName    string `json:"file_name" binding:"required,min=1,max=255"`
	FileSize    int64  `json:"file_size" binding:"required,min=1"`
	ContentType string `json:"content_type" binding:"required"`
}

// InitiateUploadResponse contains the pending attachment and its upload URL
type InitiateUploadResponse struct {
	AttachmentID uuid.UUID `json:"attachment_id"`
	UploadURL    string    `json:"upload_url"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// DownloadURLResponse contains a presigned download URL
type DownloadURLResponse struct {
	AttachmentID uuid.UUID `json:"attachment_id"`
	FileName     string    `json:"file_name"`
	DownloadURL  string    `json:"download_url"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// AttachmentResponse represents an attachment in API responses
type AttachmentResponse struct {
	ID          uuid.UUID  `json:"id"`
	OwnerType   string     `json:"owner_type,omitempty"`
	OwnerID     *uuid.UUID `json:"owner_id,omitempty"`
	Status      string     `json:"status"`
	FileName    string     `json:"file_name"`
	FileSize    int64      `json:"file_size"`
	ContentType string     `json:"content_type"`
	UploadedBy  uuid.UUID  `json:"uploaded_by"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ToAttachmentResponse maps a domain attachment to its response representation
func ToAttachmentResponse(attachment *files.Attachment) AttachmentResponse {
	return AttachmentResponse{
		ID:          attachment.ID,
		OwnerType:   attachment.OwnerType,
		OwnerID:     attachment.OwnerID,
		Status:      string(attachment.Status),
		FileName:    attachment.FileName,
		FileSize:    attachment.FileSize,
		ContentType: attachment.ContentType,
		UploadedBy:  attachment.UploadedBy,
		CreatedAt:   attachment.CreatedAt,
		UpdatedAt:   attachment.UpdatedAt,
	}
}

// ToAttachmentResponses maps a slice of domain attachments
func ToAttachmentResponses(attachments []*files.Attachment) []AttachmentResponse {
	responses := make([]AttachmentResponse, 0, len(attachments))
	for _, attachment := range attachments {
		responses = append(responses, ToAttachmentResponse(attachment))
	}
	return responses
}
