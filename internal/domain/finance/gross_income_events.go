package finance

import (
	"github.com/intranet/erp-backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

const (
	AggregateTypeGrossIncome = "GrossIncome"

	EventTypeGrossIncomeCreated = "GrossIncomeCreated"
	EventTypeGrossIncomeUpdated = "GrossIncomeUpdated"
	EventTypeGrossIncomeDeleted = "GrossIncomeDeleted"
)

// GrossIncomeCreatedEvent is raised when a gross income entry is created
type GrossIncomeCreatedEvent struct {
	shared.BaseDomainEvent
	Year   int             `json:"year"`
	Month  int             `json:"month"`
	Amount decimal.Decimal `json:"amount"`
}

func NewGrossIncomeCreatedEvent(income *GrossIncome) *GrossIncomeCreatedEvent {
	return &GrossIncomeCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(
			EventTypeGrossIncomeCreated,
			AggregateTypeGrossIncome,
			income.ID,
			income.TenantID,
		),
		Year:   income.Year,
		Month:  income.Month,
		Amount: income.Amount,
	}
}

// GrossIncomeDeletedEvent is raised when a gross income entry is removed
type GrossIncomeDeletedEvent struct {
	shared.BaseDomainEvent
	Year  int `json:"year"`
	Month int `json:"month"`
}

func NewGrossIncomeDeletedEvent(income *GrossIncome) *GrossIncomeDeletedEvent {
	return &GrossIncomeDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(
			EventTypeGrossIncomeDeleted,
			AggregateTypeGrossIncome,
			income.ID,
			income.TenantID,
		),
		Year:  income.Year,
		Month: income.Month,
	}
}
