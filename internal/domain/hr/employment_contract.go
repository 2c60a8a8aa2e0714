package hr

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/intranet/erp-backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// EmploymentContract represents the employment terms of an employee
type EmploymentContract struct {
	shared.TenantAggregateRoot
	EmployeeID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	RoleTitle   string          `gorm:"type:varchar(150);not null"`
	StartsOn    time.Time       `gorm:"type:date;not null"`
	EndsOn      *time.Time      `gorm:"type:date"`
	Salary      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	TypeTagID   *uuid.UUID      `gorm:"type:uuid"`
	StatusTagID *uuid.UUID      `gorm:"type:uuid"`
}

// TableName returns the table name for GORM
func (EmploymentContract) TableName() string {
	return "hr_employment_contracts"
}

// EmploymentContractDraft carries the full editable field set of a contract
type EmploymentContractDraft struct {
	EmployeeID  uuid.UUID
	RoleTitle   string
	StartsOn    time.Time
	EndsOn      *time.Time
	Salary      decimal.Decimal
	TypeTagID   *uuid.UUID
	StatusTagID *uuid.UUID
}

// NewEmploymentContract creates a new employment contract
func NewEmploymentContract(tenantID uuid.UUID, draft EmploymentContractDraft) (*EmploymentContract, error) {
	if tenantID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_TENANT_ID", "Tenant ID cannot be empty")
	}
	if err := validateEmploymentContractDraft(draft); err != nil {
		return nil, err
	}

	contract := &EmploymentContract{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
	}
	contract.apply(draft)

	contract.AddDomainEvent(NewEmploymentContractCreatedEvent(contract))

	return contract, nil
}

// Update replaces all editable fields with the draft
func (c *EmploymentContract) Update(draft EmploymentContractDraft) error {
	if err := validateEmploymentContractDraft(draft); err != nil {
		return err
	}

	c.apply(draft)
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// IsActive reports whether the contract covers the given date
func (c *EmploymentContract) IsActive(on time.Time) bool {
	if on.Before(c.StartsOn) {
		return false
	}
	return c.EndsOn == nil || !on.After(*c.EndsOn)
}

func (c *EmploymentContract) apply(draft EmploymentContractDraft) {
	c.EmployeeID = draft.EmployeeID
	c.RoleTitle = strings.TrimSpace(draft.RoleTitle)
	c.StartsOn = draft.StartsOn
	c.EndsOn = draft.EndsOn
	c.Salary = draft.Salary
	c.TypeTagID = draft.TypeTagID
	c.StatusTagID = draft.StatusTagID
}

// validation functions

func validateEmploymentContractDraft(draft EmploymentContractDraft) error {
	if draft.EmployeeID == uuid.Nil {
		return shared.NewDomainError("INVALID_EMPLOYEE_ID", "Employee ID cannot be empty")
	}
	role := strings.TrimSpace(draft.RoleTitle)
	if role == "" {
		return shared.NewDomainError("INVALID_ROLE_TITLE", "Role title cannot be empty")
	}
	if len(role) > 150 {
		return shared.NewDomainError("INVALID_ROLE_TITLE", "Role title cannot exceed 150 characters")
	}
	if draft.StartsOn.IsZero() {
		return shared.NewDomainError("INVALID_STARTS_ON", "Start date cannot be empty")
	}
	if draft.EndsOn != nil && draft.EndsOn.Before(draft.StartsOn) {
		return shared.NewDomainError("INVALID_DATE_RANGE", "End date cannot be before start date")
	}
	if !draft.Salary.IsPositive() {
		return shared.NewDomainError("INVALID_SALARY", "Salary must be positive")
	}
	return nil
}
