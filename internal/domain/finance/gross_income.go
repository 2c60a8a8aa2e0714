package finance

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/intranet/erp-backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// GrossIncome records a revenue entry for a given period
type GrossIncome struct {
	shared.TenantAggregateRoot
	Year        int             `gorm:"not null;index:idx_gross_incomes_period"`
	Month       int             `gorm:"not null;index:idx_gross_incomes_period"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Concept     string          `gorm:"type:varchar(300);not null"`
	ContactID   *uuid.UUID      `gorm:"type:uuid"`
	StatusTagID *uuid.UUID      `gorm:"type:uuid"`
	Notes       string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (GrossIncome) TableName() string {
	return "finance_gross_incomes"
}

// GrossIncomeDraft carries the full editable field set of a gross income entry
type GrossIncomeDraft struct {
	Year        int
	Month       int
	Amount      decimal.Decimal
	Concept     string
	ContactID   *uuid.UUID
	StatusTagID *uuid.UUID
	Notes       string
}

// GrossIncomeSummary aggregates entries per period
type GrossIncomeSummary struct {
	Year  int             `json:"year"`
	Month int             `json:"month"`
	Total decimal.Decimal `json:"total"`
	Count int64           `json:"count"`
}

// NewGrossIncome creates a new gross income entry
func NewGrossIncome(tenantID uuid.UUID, draft GrossIncomeDraft) (*GrossIncome, error) {
	if tenantID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_TENANT_ID", "Tenant ID cannot be empty")
	}
	if err := validateGrossIncomeDraft(draft); err != nil {
		return nil, err
	}

	income := &GrossIncome{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
	}
	income.apply(draft)

	income.AddDomainEvent(NewGrossIncomeCreatedEvent(income))

	return income, nil
}

// Update replaces all editable fields with the draft
func (g *GrossIncome) Update(draft GrossIncomeDraft) error {
	if err := validateGrossIncomeDraft(draft); err != nil {
		return err
	}

	g.apply(draft)
	g.UpdatedAt = time.Now()
	g.IncrementVersion()

	return nil
}

func (g *GrossIncome) apply(draft GrossIncomeDraft) {
	g.Year = draft.Year
	g.Month = draft.Month
	g.Amount = draft.Amount
	g.Concept = strings.TrimSpace(draft.Concept)
	g.ContactID = draft.ContactID
	g.StatusTagID = draft.StatusTagID
	g.Notes = draft.Notes
}

// validation functions

func validateGrossIncomeDraft(draft GrossIncomeDraft) error {
	if draft.Year < 2000 || draft.Year > 2100 {
		return shared.NewDomainError("INVALID_YEAR", "Year must be between 2000 and 2100")
	}
	if draft.Month < 1 || draft.Month > 12 {
		return shared.NewDomainError("INVALID_MONTH", "Month must be between 1 and 12")
	}
	if draft.Amount.IsNegative() {
		return shared.NewDomainError("INVALID_AMOUNT", "Amount cannot be negative")
	}
	concept := strings.TrimSpace(draft.Concept)
	if concept == "" {
		return shared.NewDomainError("INVALID_CONCEPT", "Concept cannot be empty")
	}
	if len(concept) > 300 {
		return shared.NewDomainError("INVALID_CONCEPT", "Concept cannot exceed 300 characters")
	}
	return nil
}
