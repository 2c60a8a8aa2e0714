package licensing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/intranet/erp-backend/internal/domain/shared"
)

// LicenseRepository defines the persistence contract for licenses
type LicenseRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*License, error)
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*License, error)
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]License, error)
	FindByProject(ctx context.Context, tenantID, projectID uuid.UUID) ([]*License, error)
	FindExpiringBefore(ctx context.Context, tenantID uuid.UUID, from, until time.Time) ([]*License, error)
	Save(ctx context.Context, license *License) error
	SaveWithLock(ctx context.Context, license *License) error
	DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error
	CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error)
}

// ProjectRepository defines the persistence contract for projects
type ProjectRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Project, error)
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Project, error)
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]Project, error)
	FindActive(ctx context.Context, tenantID uuid.UUID) ([]*Project, error)
	ExistsByName(ctx context.Context, tenantID uuid.UUID, name string) (bool, error)
	Save(ctx context.Context, project *Project) error
	SaveWithLock(ctx context.Context, project *Project) error
	DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error
	CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error)
}
