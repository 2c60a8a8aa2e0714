package identity

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/intranet/erp-backend/internal/domain/identity"
	"github.com/intranet/erp-backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_Create_Success(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewUserService(repo, nil)

	tenantID := uuid.New()
	repo.On("ExistsByEmail", mock.Anything, tenantID, "bruno@example.com").Return(false, nil)
	repo.On("Save", mock.Anything, mock.AnythingOfType("*identity.User")).Return(nil)

	result, err := svc.Create(context.Background(), tenantID, CreateUserRequest{
		Name:     "Bruno Díaz",
		Email:    "bruno@example.com",
		Password: "s3cret-password",
		Role:     "admin",
	})

	require.NoError(t, err)
	assert.Equal(t, "Bruno Díaz", result.Name)
	assert.Equal(t, "bruno@example.com", result.Email)
	assert.Equal(t, "admin", result.Role)
	assert.True(t, result.Active)
	repo.AssertExpectations(t)
}

func TestUserService_Create_DuplicateEmail(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewUserService(repo, nil)

	tenantID := uuid.New()
	repo.On("ExistsByEmail", mock.Anything, tenantID, "bruno@example.com").Return(true, nil)

	_, err := svc.Create(context.Background(), tenantID, CreateUserRequest{
		Name:     "Bruno Díaz",
		Email:    "bruno@example.com",
		Password: "s3cret-password",
		Role:     "member",
	})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestUserService_Update_ChangesRoleAndProfile(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewUserService(repo, nil)

	tenantID := uuid.New()
	user := newTestUser(t, tenantID)

	repo.On("FindByIDForTenant", mock.Anything, tenantID, user.ID).Return(user, nil)
	repo.On("ExistsByEmail", mock.Anything, tenantID, "ana.perez@example.com").Return(false, nil)
	repo.On("SaveWithLock", mock.Anything, user).Return(nil)

	result, err := svc.Update(context.Background(), tenantID, user.ID, UpdateUserRequest{
		Name:  "Ana Pérez García",
		Email: "ana.perez@example.com",
		Role:  "admin",
	})

	require.NoError(t, err)
	assert.Equal(t, "Ana Pérez García", result.Name)
	assert.Equal(t, "ana.perez@example.com", result.Email)
	assert.Equal(t, "admin", result.Role)
	repo.AssertExpectations(t)
}

func TestUserService_Update_SameEmailSkipsDuplicateCheck(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewUserService(repo, nil)

	tenantID := uuid.New()
	user := newTestUser(t, tenantID)

	repo.On("FindByIDForTenant", mock.Anything, tenantID, user.ID).Return(user, nil)
	repo.On("SaveWithLock", mock.Anything, user).Return(nil)

	_, err := svc.Update(context.Background(), tenantID, user.ID, UpdateUserRequest{
		Name:  "Ana Pérez",
		Email: user.Email,
		Role:  "member",
	})

	require.NoError(t, err)
	repo.AssertNotCalled(t, "ExistsByEmail", mock.Anything, mock.Anything, mock.Anything)
}

func TestUserService_Deactivate(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewUserService(repo, nil)

	tenantID := uuid.New()
	user := newTestUser(t, tenantID)

	repo.On("FindByIDForTenant", mock.Anything, tenantID, user.ID).Return(user, nil)
	repo.On("SaveWithLock", mock.Anything, user).Return(nil)

	result, err := svc.Deactivate(context.Background(), tenantID, user.ID)

	require.NoError(t, err)
	assert.False(t, result.Active)
}

func TestUserService_Deactivate_AlreadyInactive(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewUserService(repo, nil)

	tenantID := uuid.New()
	user := newTestUser(t, tenantID)
	require.NoError(t, user.Deactivate())
	user.ClearDomainEvents()

	repo.On("FindByIDForTenant", mock.Anything, tenantID, user.ID).Return(user, nil)

	_, err := svc.Deactivate(context.Background(), tenantID, user.ID)

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_STATE", domainErr.Code)
}

func TestUserService_List(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewUserService(repo, nil)

	tenantID := uuid.New()
	userA := newTestUser(t, tenantID)
	userB, err := identity.NewUser(tenantID, "Bruno Díaz", "bruno@example.com", "s3cret-password", identity.UserRoleAdmin)
	require.NoError(t, err)

	repo.On("FindAllForTenant", mock.Anything, tenantID, mock.AnythingOfType("shared.Filter")).
		Return([]identity.User{*userA, *userB}, nil)
	repo.On("CountForTenant", mock.Anything, tenantID, mock.AnythingOfType("shared.Filter")).
		Return(int64(2), nil)

	results, total, err := svc.List(context.Background(), tenantID, UserListFilter{Page: 1, PageSize: 20})

	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, results, 2)
	assert.Equal(t, userA.Email, results[0].Email)
	assert.Equal(t, userB.Email, results[1].Email)
}
