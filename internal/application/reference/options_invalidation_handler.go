package reference

import (
	"context"

	"github.com/intranet/erp-backend/internal/domain/crm"
	"github.com/intranet/erp-backend/internal/domain/identity"
	"github.com/intranet/erp-backend/internal/domain/licensing"
	"github.com/intranet/erp-backend/internal/domain/reference"
	"github.com/intranet/erp-backend/internal/domain/shared"
)

// OptionsInvalidationHandler drops a tenant's cached option lists whenever
// the data feeding them changes.
type OptionsInvalidationHandler struct {
	options *OptionsService
}

// NewOptionsInvalidationHandler creates the handler
func NewOptionsInvalidationHandler(options *OptionsService) *OptionsInvalidationHandler {
	return &OptionsInvalidationHandler{options: options}
}

// EventTypes lists the events that feed option lists
func (h *OptionsInvalidationHandler) EventTypes() []string {
	return []string{
		reference.EventTypeTagCreated,
		reference.EventTypeTagUpdated,
		reference.EventTypeTagDeleted,
		identity.EventTypeUserCreated,
		identity.EventTypeUserActivated,
		identity.EventTypeUserDeactivated,
		crm.EventTypeContactCreated,
		crm.EventTypeContactUpdated,
		crm.EventTypeContactDeleted,
		licensing.EventTypeProjectCreated,
		licensing.EventTypeProjectUpdated,
		licensing.EventTypeProjectActivated,
		licensing.EventTypeProjectDeactivated,
	}
}

// Handle invalidates the tenant's option cache
func (h *OptionsInvalidationHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	return h.options.InvalidateTenant(ctx, event.TenantID())
}
