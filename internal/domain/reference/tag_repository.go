package reference

import (
	"context"

	"github.com/google/uuid"
	"github.com/intranet/erp-backend/internal/domain/shared"
)

// TagRepository defines the interface for tag persistence
type TagRepository interface {
	// FindByID finds a tag by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Tag, error)

	// FindByIDForTenant finds a tag by ID within a tenant
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Tag, error)

	// FindAllForTenant finds all tags for a tenant matching the filter
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]Tag, error)

	// FindByDomain finds all tags of a vocabulary, ordered by sort order
	FindByDomain(ctx context.Context, tenantID uuid.UUID, domain TagDomain) ([]Tag, error)

	// FindActiveByDomain finds the active tags of a vocabulary, ordered by sort order
	FindActiveByDomain(ctx context.Context, tenantID uuid.UUID, domain TagDomain) ([]Tag, error)

	// ExistsByName checks if a tag with the given name exists in a vocabulary
	ExistsByName(ctx context.Context, tenantID uuid.UUID, domain TagDomain, name string) (bool, error)

	// ExistsByIDInDomain checks that a tag ID belongs to the given vocabulary
	ExistsByIDInDomain(ctx context.Context, tenantID uuid.UUID, domain TagDomain, id uuid.UUID) (bool, error)

	// Save creates or updates a tag
	Save(ctx context.Context, tag *Tag) error

	// SaveWithLock saves a tag with optimistic locking (version check)
	SaveWithLock(ctx context.Context, tag *Tag) error

	// DeleteForTenant deletes a tag within a tenant
	DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error

	// CountForTenant counts tags for a tenant matching the filter
	CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error)
}
