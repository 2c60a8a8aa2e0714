package files

import (
	"context"

	"github.com/google/uuid"
	"github.com/intranet/erp-backend/internal/domain/shared"
)

// AttachmentRepository defines the persistence contract for attachments
type AttachmentRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Attachment, error)
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Attachment, error)
	FindByIDs(ctx context.Context, tenantID uuid.UUID, ids []uuid.UUID) ([]*Attachment, error)
	FindByOwner(ctx context.Context, tenantID uuid.UUID, ownerType string, ownerID uuid.UUID) ([]*Attachment, error)
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]Attachment, error)
	Save(ctx context.Context, attachment *Attachment) error
	SaveWithLock(ctx context.Context, attachment *Attachment) error
	DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error
	CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error)
}
