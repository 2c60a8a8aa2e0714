package marketing

import (
	"context"

	"github.com/google/uuid"
	"github.com/intranet/erp-backend/internal/domain/shared"
)

// AdPieceRepository defines the persistence contract for ad pieces
type AdPieceRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AdPiece, error)
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*AdPiece, error)
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]AdPiece, error)
	FindByCampaign(ctx context.Context, tenantID uuid.UUID, campaign string) ([]*AdPiece, error)
	Save(ctx context.Context, piece *AdPiece) error
	SaveWithLock(ctx context.Context, piece *AdPiece) error
	DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error
	CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error)
}
