package finance

import (
	"github.com/intranet/erp-backend/internal/domain/shared"
)

const (
	AggregateTypeAudit = "Audit"

	EventTypeAuditCreated = "AuditCreated"
	EventTypeAuditUpdated = "AuditUpdated"
	EventTypeAuditDeleted = "AuditDeleted"
)

// AuditCreatedEvent is raised when an audit is created
type AuditCreatedEvent struct {
	shared.BaseDomainEvent
	Title string `json:"title"`
}

func NewAuditCreatedEvent(audit *Audit) *AuditCreatedEvent {
	return &AuditCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(
			EventTypeAuditCreated,
			AggregateTypeAudit,
			audit.ID,
			audit.TenantID,
		),
		Title: audit.Title,
	}
}

// AuditDeletedEvent is raised when an audit is removed
type AuditDeletedEvent struct {
	shared.BaseDomainEvent
	Title string `json:"title"`
}

func NewAuditDeletedEvent(audit *Audit) *AuditDeletedEvent {
	return &AuditDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(
			EventTypeAuditDeleted,
			AggregateTypeAudit,
			audit.ID,
			audit.TenantID,
		),
		Title: audit.Title,
	}
}
