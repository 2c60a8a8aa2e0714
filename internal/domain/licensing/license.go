package licensing

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/intranet/erp-backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// License represents a purchased software license tied to a project
type License struct {
	shared.TenantAggregateRoot
	Name        string          `gorm:"type:varchar(200);not null"`
	ProjectID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Vendor      string          `gorm:"type:varchar(200)"`
	LicenseKey  string          `gorm:"type:varchar(500)"`
	Seats       int             `gorm:"default:1"`
	Cost        decimal.Decimal `gorm:"type:decimal(15,2)"`
	PurchasedOn *time.Time      `gorm:"type:date"`
	ExpiresOn   *time.Time      `gorm:"type:date;index"`
	StatusTagID *uuid.UUID      `gorm:"type:uuid"`
	Notes       string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (License) TableName() string {
	return "licensing_licenses"
}

// LicenseDraft carries the full editable field set of a license
type LicenseDraft struct {
	Name        string
	ProjectID   uuid.UUID
	Vendor      string
	LicenseKey  string
	Seats       int
	Cost        decimal.Decimal
	PurchasedOn *time.Time
	ExpiresOn   *time.Time
	StatusTagID *uuid.UUID
	Notes       string
}

// NewLicense creates a new license
func NewLicense(tenantID uuid.UUID, draft LicenseDraft) (*License, error) {
	if tenantID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_TENANT_ID", "Tenant ID cannot be empty")
	}
	if err := validateLicenseDraft(draft); err != nil {
		return nil, err
	}

	license := &License{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
	}
	license.apply(draft)

	license.AddDomainEvent(NewLicenseCreatedEvent(license))

	return license, nil
}

// Update replaces all editable fields with the draft
func (l *License) Update(draft LicenseDraft) error {
	if err := validateLicenseDraft(draft); err != nil {
		return err
	}

	l.apply(draft)
	l.UpdatedAt = time.Now()
	l.IncrementVersion()

	return nil
}

// ExpiresWithin reports whether the license has an expiry date inside the window
func (l *License) ExpiresWithin(now time.Time, window time.Duration) bool {
	if l.ExpiresOn == nil {
		return false
	}
	return !l.ExpiresOn.Before(now) && l.ExpiresOn.Before(now.Add(window))
}

func (l *License) apply(draft LicenseDraft) {
	l.Name = strings.TrimSpace(draft.Name)
	l.ProjectID = draft.ProjectID
	l.Vendor = strings.TrimSpace(draft.Vendor)
	l.LicenseKey = strings.TrimSpace(draft.LicenseKey)
	l.Seats = draft.Seats
	l.Cost = draft.Cost
	l.PurchasedOn = draft.PurchasedOn
	l.ExpiresOn = draft.ExpiresOn
	l.StatusTagID = draft.StatusTagID
	l.Notes = draft.Notes
}

// validation functions

func validateLicenseDraft(draft LicenseDraft) error {
	name := strings.TrimSpace(draft.Name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Name cannot exceed 200 characters")
	}
	if draft.ProjectID == uuid.Nil {
		return shared.NewDomainError("INVALID_PROJECT_ID", "Project ID cannot be empty")
	}
	if draft.Seats < 1 {
		return shared.NewDomainError("INVALID_SEATS", "Seats must be at least 1")
	}
	if draft.Cost.IsNegative() {
		return shared.NewDomainError("INVALID_COST", "Cost cannot be negative")
	}
	if draft.PurchasedOn != nil && draft.ExpiresOn != nil && draft.ExpiresOn.Before(*draft.PurchasedOn) {
		return shared.NewDomainError("INVALID_DATE_RANGE", "Expiry date cannot be before purchase date")
	}
	return nil
}
