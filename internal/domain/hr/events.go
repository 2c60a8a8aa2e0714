package hr

import (
	"time"

	"github.com/google/uuid"
	"github.com/intranet/erp-backend/internal/domain/shared"
)

const (
	AggregateTypeEmploymentContract = "EmploymentContract"
	AggregateTypeOffboarding        = "Offboarding"

	EventTypeEmploymentContractCreated = "EmploymentContractCreated"
	EventTypeOffboardingCreated        = "OffboardingCreated"
)

// EmploymentContractCreatedEvent is raised when a contract is created
type EmploymentContractCreatedEvent struct {
	shared.BaseDomainEvent
	EmployeeID uuid.UUID `json:"employee_id"`
	RoleTitle  string    `json:"role_title"`
}

func NewEmploymentContractCreatedEvent(contract *EmploymentContract) *EmploymentContractCreatedEvent {
	return &EmploymentContractCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(
			EventTypeEmploymentContractCreated,
			AggregateTypeEmploymentContract,
			contract.ID,
			contract.TenantID,
		),
		EmployeeID: contract.EmployeeID,
		RoleTitle:  contract.RoleTitle,
	}
}

// OffboardingCreatedEvent is raised when an offboarding is opened
type OffboardingCreatedEvent struct {
	shared.BaseDomainEvent
	EmployeeID uuid.UUID `json:"employee_id"`
	ExitDate   time.Time `json:"exit_date"`
}

func NewOffboardingCreatedEvent(off *Offboarding) *OffboardingCreatedEvent {
	return &OffboardingCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(
			EventTypeOffboardingCreated,
			AggregateTypeOffboarding,
			off.ID,
			off.TenantID,
		),
		EmployeeID: off.EmployeeID,
		ExitDate:   off.ExitDate,
	}
}
