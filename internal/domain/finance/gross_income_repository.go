package finance

import (
	"context"

	"github.com/google/uuid"
	"github.com/intranet/erp-backend/internal/domain/shared"
)

// GrossIncomeRepository defines the persistence contract for gross income entries
type GrossIncomeRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*GrossIncome, error)
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*GrossIncome, error)
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]GrossIncome, error)
	FindByPeriod(ctx context.Context, tenantID uuid.UUID, year, month int) ([]*GrossIncome, error)
	SummarizeByPeriod(ctx context.Context, tenantID uuid.UUID, year int) ([]GrossIncomeSummary, error)
	Save(ctx context.Context, income *GrossIncome) error
	SaveWithLock(ctx context.Context, income *GrossIncome) error
	DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error
	CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error)
}
