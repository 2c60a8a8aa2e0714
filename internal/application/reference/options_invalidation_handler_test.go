package reference

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intranet/erp-backend/internal/domain/crm"
	"github.com/intranet/erp-backend/internal/domain/identity"
	"github.com/intranet/erp-backend/internal/domain/licensing"
	"github.com/intranet/erp-backend/internal/domain/reference"
)

type recordingOptionsLoader struct {
	invalidated []string
}

func (l *recordingOptionsLoader) GetOrLoad(ctx context.Context, key string, loader func(ctx context.Context) ([]reference.OptionItem, error)) ([]reference.OptionItem, error) {
	return loader(ctx)
}

func (l *recordingOptionsLoader) Invalidate(_ context.Context, prefix string) error {
	l.invalidated = append(l.invalidated, prefix)
	return nil
}

func TestOptionsInvalidationHandler_EventTypes(t *testing.T) {
	handler := NewOptionsInvalidationHandler(nil)

	types := handler.EventTypes()

	// Every aggregate that feeds an option list has to invalidate on
	// create, change and remove, or stale entries linger until TTL.
	expected := []string{
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
	for _, eventType := range expected {
		assert.Contains(t, types, eventType)
	}
}

func TestOptionsInvalidationHandler_Handle(t *testing.T) {
	loader := &recordingOptionsLoader{}
	options := NewOptionsService(loader, nil, nil, nil, nil)
	handler := NewOptionsInvalidationHandler(options)

	tenantID := uuid.New()
	project, err := licensing.NewProject(tenantID, "Billing Platform", "BILL")
	require.NoError(t, err)

	events := project.GetDomainEvents()
	require.NotEmpty(t, events)
	require.NoError(t, handler.Handle(context.Background(), events[0]))

	require.Len(t, loader.invalidated, 1)
	assert.Equal(t, reference.OptionsCachePrefix(tenantID), loader.invalidated[0])
}
