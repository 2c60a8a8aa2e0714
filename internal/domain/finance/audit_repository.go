package finance

import (
	"context"

	"github.com/google/uuid"
	"github.com/intranet/erp-backend/internal/domain/shared"
)

// AuditRepository defines the persistence contract for audits
type AuditRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Audit, error)
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Audit, error)
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]Audit, error)
	Save(ctx context.Context, audit *Audit) error
	SaveWithLock(ctx context.Context, audit *Audit) error
	DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error
	CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error)
}
