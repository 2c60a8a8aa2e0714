package finance

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/intranet/erp-backend/internal/domain/shared"
)

// Audit tracks an internal or external financial audit engagement
type Audit struct {
	shared.TenantAggregateRoot
	Title       string     `gorm:"type:varchar(200);not null"`
	Scope       string     `gorm:"type:text"`
	AuditorID   *uuid.UUID `gorm:"type:uuid"`
	StartsOn    *time.Time `gorm:"type:date"`
	EndsOn      *time.Time `gorm:"type:date"`
	StatusTagID *uuid.UUID `gorm:"type:uuid"`
	Findings    string     `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Audit) TableName() string {
	return "finance_audits"
}

// AuditDraft carries the full editable field set of an audit
type AuditDraft struct {
	Title       string
	Scope       string
	AuditorID   *uuid.UUID
	StartsOn    *time.Time
	EndsOn      *time.Time
	StatusTagID *uuid.UUID
	Findings    string
}

// NewAudit creates a new audit engagement
func NewAudit(tenantID uuid.UUID, draft AuditDraft) (*Audit, error) {
	if tenantID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_TENANT_ID", "Tenant ID cannot be empty")
	}
	if err := validateAuditDraft(draft); err != nil {
		return nil, err
	}

	audit := &Audit{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
	}
	audit.apply(draft)

	audit.AddDomainEvent(NewAuditCreatedEvent(audit))

	return audit, nil
}

// Update replaces all editable fields with the draft
func (a *Audit) Update(draft AuditDraft) error {
	if err := validateAuditDraft(draft); err != nil {
		return err
	}

	a.apply(draft)
	a.UpdatedAt = time.Now()
	a.IncrementVersion()

	return nil
}

func (a *Audit) apply(draft AuditDraft) {
	a.Title = strings.TrimSpace(draft.Title)
	a.Scope = draft.Scope
	a.AuditorID = draft.AuditorID
	a.StartsOn = draft.StartsOn
	a.EndsOn = draft.EndsOn
	a.StatusTagID = draft.StatusTagID
	a.Findings = draft.Findings
}

// validation functions

func validateAuditDraft(draft AuditDraft) error {
	title := strings.TrimSpace(draft.Title)
	if title == "" {
		return shared.NewDomainError("INVALID_TITLE", "Title cannot be empty")
	}
	if len(title) > 200 {
		return shared.NewDomainError("INVALID_TITLE", "Title cannot exceed 200 characters")
	}
	if draft.StartsOn != nil && draft.EndsOn != nil && draft.EndsOn.Before(*draft.StartsOn) {
		return shared.NewDomainError("INVALID_DATE_RANGE", "End date cannot be before start date")
	}
	return nil
}
