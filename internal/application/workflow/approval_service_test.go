package workflow

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/intranet/erp-backend/internal/domain/shared"
	"github.com/intranet/erp-backend/internal/domain/workflow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockApprovalRepository is a mock implementation of workflow.ApprovalRepository
type MockApprovalRepository struct {
	mock.Mock
}

func (m *MockApprovalRepository) FindByID(ctx context.Context, id uuid.UUID) (*workflow.Approval, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workflow.Approval), args.Error(1)
}

func (m *MockApprovalRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*workflow.Approval, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workflow.Approval), args.Error(1)
}

func (m *MockApprovalRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]workflow.Approval, error) {
	args := m.Called(ctx, tenantID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]workflow.Approval), args.Error(1)
}

func (m *MockApprovalRepository) FindPendingForUser(ctx context.Context, tenantID, userID uuid.UUID, filter shared.Filter) ([]workflow.Approval, error) {
	args := m.Called(ctx, tenantID, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]workflow.Approval), args.Error(1)
}

func (m *MockApprovalRepository) Save(ctx context.Context, approval *workflow.Approval) error {
	args := m.Called(ctx, approval)
	return args.Error(0)
}

func (m *MockApprovalRepository) SaveWithLock(ctx context.Context, approval *workflow.Approval) error {
	args := m.Called(ctx, approval)
	return args.Error(0)
}

func (m *MockApprovalRepository) DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func (m *MockApprovalRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
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

func newTestApproval(t *testing.T, tenantID uuid.UUID, approverIDs ...uuid.UUID) *workflow.Approval {
	t.Helper()
	if len(approverIDs) == 0 {
		approverIDs = []uuid.UUID{uuid.New()}
	}
	approval, err := workflow.NewApproval(tenantID, "Purchase new laptops", "", false, nil, approverIDs)
	require.NoError(t, err)
	approval.ClearDomainEvents()
	return approval
}

func TestApprovalService_Create_Success(t *testing.T) {
	repo := new(MockApprovalRepository)
	linker := new(MockAttachmentLinker)
	svc := NewApprovalService(repo, linker, nil)

	tenantID := uuid.New()
	fileID := uuid.New()
	approverID := uuid.New()

	repo.On("Save", mock.Anything, mock.AnythingOfType("*workflow.Approval")).Return(nil)
	linker.On("LinkPending", mock.Anything, tenantID, "approval", mock.AnythingOfType("uuid.UUID"), []uuid.UUID{fileID}).Return(nil)

	result, err := svc.Create(context.Background(), tenantID, CreateApprovalRequest{
		Title:          "Purchase new laptops",
		ApproverIDs:    []uuid.UUID{approverID},
		PendingFileIDs: []uuid.UUID{fileID},
	})

	require.NoError(t, err)
	assert.Equal(t, "PENDING", result.Status)
	require.Len(t, result.Approvers, 1)
	assert.Equal(t, approverID, result.Approvers[0].UserID)
	repo.AssertExpectations(t)
	linker.AssertExpectations(t)
}

func TestApprovalService_Create_NoApprovers(t *testing.T) {
	repo := new(MockApprovalRepository)
	svc := NewApprovalService(repo, nil, nil)

	_, err := svc.Create(context.Background(), uuid.New(), CreateApprovalRequest{
		Title:       "Purchase new laptops",
		ApproverIDs: nil,
	})

	require.Error(t, err)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestApprovalService_Create_WithoutFilesSkipsLinker(t *testing.T) {
	repo := new(MockApprovalRepository)
	linker := new(MockAttachmentLinker)
	svc := NewApprovalService(repo, linker, nil)

	tenantID := uuid.New()
	repo.On("Save", mock.Anything, mock.AnythingOfType("*workflow.Approval")).Return(nil)

	_, err := svc.Create(context.Background(), tenantID, CreateApprovalRequest{
		Title:       "Purchase new laptops",
		ApproverIDs: []uuid.UUID{uuid.New()},
	})

	require.NoError(t, err)
	linker.AssertNotCalled(t, "LinkPending", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestApprovalService_Decide_ResolvesSingleApprover(t *testing.T) {
	repo := new(MockApprovalRepository)
	svc := NewApprovalService(repo, nil, nil)

	tenantID := uuid.New()
	approverID := uuid.New()
	approval := newTestApproval(t, tenantID, approverID)

	repo.On("FindByIDForTenant", mock.Anything, tenantID, approval.ID).Return(approval, nil)
	repo.On("SaveWithLock", mock.Anything, approval).Return(nil)

	approve := true
	result, err := svc.Decide(context.Background(), tenantID, approval.ID, approverID, DecideRequest{
		Approve: &approve,
		Comment: "Looks good",
	})

	require.NoError(t, err)
	assert.Equal(t, "APPROVED", result.Status)
	assert.NotNil(t, result.ResolvedAt)
	repo.AssertExpectations(t)
}

func TestApprovalService_Decide_NonApprover(t *testing.T) {
	repo := new(MockApprovalRepository)
	svc := NewApprovalService(repo, nil, nil)

	tenantID := uuid.New()
	approval := newTestApproval(t, tenantID)

	repo.On("FindByIDForTenant", mock.Anything, tenantID, approval.ID).Return(approval, nil)

	approve := true
	_, err := svc.Decide(context.Background(), tenantID, approval.ID, uuid.New(), DecideRequest{Approve: &approve})

	require.Error(t, err)
	repo.AssertNotCalled(t, "SaveWithLock", mock.Anything, mock.Anything)
}

func TestApprovalService_Update_PreservesVotes(t *testing.T) {
	repo := new(MockApprovalRepository)
	svc := NewApprovalService(repo, nil, nil)

	tenantID := uuid.New()
	voterID := uuid.New()
	otherID := uuid.New()
	approval := newTestApproval(t, tenantID, voterID, otherID)
	require.NoError(t, approval.Decide(voterID, true, ""))
	approval.ClearDomainEvents()

	repo.On("FindByIDForTenant", mock.Anything, tenantID, approval.ID).Return(approval, nil)
	repo.On("SaveWithLock", mock.Anything, approval).Return(nil)

	result, err := svc.Update(context.Background(), tenantID, approval.ID, UpdateApprovalRequest{
		Title:       "Purchase new laptops and docks",
		ApproverIDs: []uuid.UUID{voterID, otherID, uuid.New()},
	})

	require.NoError(t, err)
	require.Len(t, result.Approvers, 3)
	assert.Equal(t, "APPROVED", result.Approvers[0].Status)
	assert.Equal(t, "PENDING", result.Approvers[1].Status)
}

func TestApprovalService_Delete_ResolvedApproval(t *testing.T) {
	repo := new(MockApprovalRepository)
	svc := NewApprovalService(repo, nil, nil)

	tenantID := uuid.New()
	approverID := uuid.New()
	approval := newTestApproval(t, tenantID, approverID)
	require.NoError(t, approval.Decide(approverID, false, "Too expensive"))
	approval.ClearDomainEvents()

	repo.On("FindByIDForTenant", mock.Anything, tenantID, approval.ID).Return(approval, nil)

	err := svc.Delete(context.Background(), tenantID, approval.ID)

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_STATE", domainErr.Code)
	repo.AssertNotCalled(t, "DeleteForTenant", mock.Anything, mock.Anything, mock.Anything)
}

func TestApprovalService_ListPendingForUser(t *testing.T) {
	repo := new(MockApprovalRepository)
	svc := NewApprovalService(repo, nil, nil)

	tenantID := uuid.New()
	userID := uuid.New()
	approval := newTestApproval(t, tenantID, userID)

	repo.On("FindPendingForUser", mock.Anything, tenantID, userID, mock.AnythingOfType("shared.Filter")).
		Return([]workflow.Approval{*approval}, nil)

	results, err := svc.ListPendingForUser(context.Background(), tenantID, userID, ApprovalListFilter{})

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, approval.ID, results[0].ID)
}
