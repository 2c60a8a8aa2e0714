package collab

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/intranet/erp-backend/internal/domain/shared"
)

// MeetingRepository defines the persistence contract for meetings
type MeetingRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Meeting, error)
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Meeting, error)
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]Meeting, error)
	FindBetween(ctx context.Context, tenantID uuid.UUID, from, until time.Time) ([]*Meeting, error)
	Save(ctx context.Context, meeting *Meeting) error
	SaveWithLock(ctx context.Context, meeting *Meeting) error
	DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error
	CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error)
}
