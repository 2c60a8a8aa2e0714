package crm

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/intranet/erp-backend/internal/domain/crm"
	"github.com/intranet/erp-backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockContactRepository is a mock implementation of crm.ContactRepository
type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) FindByID(ctx context.Context, id uuid.UUID) (*crm.Contact, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*crm.Contact), args.Error(1)
}

func (m *MockContactRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*crm.Contact, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*crm.Contact), args.Error(1)
}

func (m *MockContactRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]crm.Contact, error) {
	args := m.Called(ctx, tenantID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]crm.Contact), args.Error(1)
}

func (m *MockContactRepository) FindByIDs(ctx context.Context, tenantID uuid.UUID, ids []uuid.UUID) ([]*crm.Contact, error) {
	args := m.Called(ctx, tenantID, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*crm.Contact), args.Error(1)
}

func (m *MockContactRepository) ExistsByEmail(ctx context.Context, tenantID uuid.UUID, email string) (bool, error) {
	args := m.Called(ctx, tenantID, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockContactRepository) Save(ctx context.Context, contact *crm.Contact) error {
	args := m.Called(ctx, contact)
	return args.Error(0)
}

func (m *MockContactRepository) SaveWithLock(ctx context.Context, contact *crm.Contact) error {
	args := m.Called(ctx, contact)
	return args.Error(0)
}

func (m *MockContactRepository) DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func (m *MockContactRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockAttachmentLinker is a mock implementation of AttachmentLinker
type MockAttachmentLinker struct {
	mock.Mock
}

func (m *MockAttachmentLinker) LinkPending(ctx context.Context, tenantID uuid.UUID, ownerType string, ownerID uuid.UUID, fileIDs []uuid.UUID) error {
	args := m.Called(ctx, tenantID, ownerType, ownerID, fileIDs)
	return args.Error(0)
}

func (m *MockAttachmentLinker) ReleaseOwner(ctx context.Context, tenantID uuid.UUID, ownerType string, ownerID uuid.UUID) error {
	args := m.Called(ctx, tenantID, ownerType, ownerID)
	return args.Error(0)
}

func newTestContact(t *testing.T, tenantID uuid.UUID) *crm.Contact {
	t.Helper()
	contact, err := crm.NewContact(tenantID, crm.ContactDraft{
		Name:    "Laura Gómez",
		Company: "Acme Corp",
		Email:   "laura@acme.example",
	})
	require.NoError(t, err)
	contact.ClearDomainEvents()
	return contact
}

func TestContactService_Create_Success(t *testing.T) {
	repo := new(MockContactRepository)
	linker := new(MockAttachmentLinker)
	svc := NewContactService(repo, linker, nil)

	tenantID := uuid.New()
	fileID := uuid.New()

	repo.On("Save", mock.Anything, mock.AnythingOfType("*crm.Contact")).Return(nil)
	linker.On("LinkPending", mock.Anything, tenantID, "contact", mock.AnythingOfType("uuid.UUID"), []uuid.UUID{fileID}).Return(nil)

	result, err := svc.Create(context.Background(), tenantID, ContactRequest{
		Name:           "Laura Gómez",
		Company:        "Acme Corp",
		Email:          "Laura@Acme.example",
		PendingFileIDs: []uuid.UUID{fileID},
	})

	require.NoError(t, err)
	assert.Equal(t, "Laura Gómez", result.Name)
	assert.Equal(t, "laura@acme.example", result.Email)
	repo.AssertExpectations(t)
	linker.AssertExpectations(t)
}

func TestContactService_Create_InvalidWebsite(t *testing.T) {
	repo := new(MockContactRepository)
	svc := NewContactService(repo, nil, nil)

	_, err := svc.Create(context.Background(), uuid.New(), ContactRequest{
		Name:    "Laura Gómez",
		Website: "ftp://files.acme.example",
	})

	require.Error(t, err)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestContactService_Update_ReplacesAllFields(t *testing.T) {
	repo := new(MockContactRepository)
	svc := NewContactService(repo, nil, nil)

	tenantID := uuid.New()
	contact := newTestContact(t, tenantID)
	statusTagID := uuid.New()

	repo.On("FindByIDForTenant", mock.Anything, tenantID, contact.ID).Return(contact, nil)
	repo.On("SaveWithLock", mock.Anything, contact).Return(nil)

	result, err := svc.Update(context.Background(), tenantID, contact.ID, ContactRequest{
		Name:        "Laura Gómez Ruiz",
		Phone:       "+34 600 000 000",
		StatusTagID: &statusTagID,
	})

	require.NoError(t, err)
	assert.Equal(t, "Laura Gómez Ruiz", result.Name)
	assert.Equal(t, "+34 600 000 000", result.Phone)
	// Full replace clears fields omitted from the request
	assert.Empty(t, result.Company)
	assert.Empty(t, result.Email)
	require.NotNil(t, result.StatusTagID)
	assert.Equal(t, statusTagID, *result.StatusTagID)
}

func TestContactService_Delete_PublishesEvent(t *testing.T) {
	repo := new(MockContactRepository)
	svc := NewContactService(repo, nil, nil)

	tenantID := uuid.New()
	contact := newTestContact(t, tenantID)

	repo.On("FindByIDForTenant", mock.Anything, tenantID, contact.ID).Return(contact, nil)
	repo.On("DeleteForTenant", mock.Anything, tenantID, contact.ID).Return(nil)

	err := svc.Delete(context.Background(), tenantID, contact.ID)

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestContactService_Delete_ReleasesAttachments(t *testing.T) {
	repo := new(MockContactRepository)
	linker := new(MockAttachmentLinker)
	svc := NewContactService(repo, linker, nil)

	tenantID := uuid.New()
	contact := newTestContact(t, tenantID)

	repo.On("FindByIDForTenant", mock.Anything, tenantID, contact.ID).Return(contact, nil)
	repo.On("DeleteForTenant", mock.Anything, tenantID, contact.ID).Return(nil)
	linker.On("ReleaseOwner", mock.Anything, tenantID, "contact", contact.ID).Return(nil)

	err := svc.Delete(context.Background(), tenantID, contact.ID)

	require.NoError(t, err)
	linker.AssertExpectations(t)
}

func TestContactService_List(t *testing.T) {
	repo := new(MockContactRepository)
	svc := NewContactService(repo, nil, nil)

	tenantID := uuid.New()
	contact := newTestContact(t, tenantID)

	repo.On("FindAllForTenant", mock.Anything, tenantID, mock.AnythingOfType("shared.Filter")).
		Return([]crm.Contact{*contact}, nil)
	repo.On("CountForTenant", mock.Anything, tenantID, mock.AnythingOfType("shared.Filter")).
		Return(int64(1), nil)

	results, total, err := svc.List(context.Background(), tenantID, ContactListFilter{Search: "laura"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, results, 1)
	assert.Equal(t, contact.Name, results[0].Name)
}
