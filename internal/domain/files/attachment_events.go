package files

import (
	"github.com/intranet/erp-backend/internal/domain/shared"
)

const (
	AggregateTypeAttachment = "Attachment"

	EventTypeAttachmentRegistered = "AttachmentRegistered"
	EventTypeAttachmentConfirmed  = "AttachmentConfirmed"
	EventTypeAttachmentDeleted    = "AttachmentDeleted"
)

// AttachmentRegisteredEvent is raised when a pending upload is registered
type AttachmentRegisteredEvent struct {
	shared.BaseDomainEvent
	FileName string `json:"file_name"`
	FileSize int64  `json:"file_size"`
}

func NewAttachmentRegisteredEvent(attachment *Attachment) *AttachmentRegisteredEvent {
	return &AttachmentRegisteredEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(
			EventTypeAttachmentRegistered,
			AggregateTypeAttachment,
			attachment.ID,
			attachment.TenantID,
		),
		FileName: attachment.FileName,
		FileSize: attachment.FileSize,
	}
}

// AttachmentConfirmedEvent is raised when the client upload completes
type AttachmentConfirmedEvent struct {
	shared.BaseDomainEvent
	StorageKey string `json:"storage_key"`
}

func NewAttachmentConfirmedEvent(attachment *Attachment) *AttachmentConfirmedEvent {
	return &AttachmentConfirmedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(
			EventTypeAttachmentConfirmed,
			AggregateTypeAttachment,
			attachment.ID,
			attachment.TenantID,
		),
		StorageKey: attachment.StorageKey,
	}
}

// AttachmentDeletedEvent is raised when an attachment record is removed
type AttachmentDeletedEvent struct {
	shared.BaseDomainEvent
	StorageKey string `json:"storage_key"`
}

func NewAttachmentDeletedEvent(attachment *Attachment) *AttachmentDeletedEvent {
	return &AttachmentDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(
			EventTypeAttachmentDeleted,
			AggregateTypeAttachment,
			attachment.ID,
			attachment.TenantID,
		),
		StorageKey: attachment.StorageKey,
	}
}
