package workflow

import (
	"context"

	"github.com/google/uuid"
	"github.com/intranet/erp-backend/internal/domain/shared"
)

// ApprovalRepository defines the interface for approval persistence
type ApprovalRepository interface {
	// FindByID finds an approval by its ID, with approvers loaded
	FindByID(ctx context.Context, id uuid.UUID) (*Approval, error)

	// FindByIDForTenant finds an approval by ID within a tenant, with approvers loaded
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Approval, error)

	// FindAllForTenant finds all approvals for a tenant matching the filter
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]Approval, error)

	// FindPendingForUser finds pending approvals where the user has not voted yet
	FindPendingForUser(ctx context.Context, tenantID, userID uuid.UUID, filter shared.Filter) ([]Approval, error)

	// Save creates or updates an approval together with its approver set
	Save(ctx context.Context, approval *Approval) error

	// SaveWithLock saves an approval with optimistic locking (version check)
	SaveWithLock(ctx context.Context, approval *Approval) error

	// DeleteForTenant deletes an approval and its approvers within a tenant
	DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error

	// CountForTenant counts approvals for a tenant matching the filter
	CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error)
}
