package licensing

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/intranet/erp-backend/internal/domain/licensing"
	"github.com/intranet/erp-backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProjectRepository is a mock implementation of licensing.ProjectRepository
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) FindByID(ctx context.Context, id uuid.UUID) (*licensing.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*licensing.Project), args.Error(1)
}

func (m *MockProjectRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*licensing.Project, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*licensing.Project), args.Error(1)
}

func (m *MockProjectRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]licensing.Project, error) {
	args := m.Called(ctx, tenantID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]licensing.Project), args.Error(1)
}

func (m *MockProjectRepository) FindActive(ctx context.Context, tenantID uuid.UUID) ([]*licensing.Project, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*licensing.Project), args.Error(1)
}

func (m *MockProjectRepository) ExistsByName(ctx context.Context, tenantID uuid.UUID, name string) (bool, error) {
	args := m.Called(ctx, tenantID, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockProjectRepository) Save(ctx context.Context, project *licensing.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) SaveWithLock(ctx context.Context, project *licensing.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func (m *MockProjectRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockLicenseRepository is a mock implementation of licensing.LicenseRepository
type MockLicenseRepository struct {
	mock.Mock
}

func (m *MockLicenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*licensing.License, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*licensing.License), args.Error(1)
}

func (m *MockLicenseRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*licensing.License, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*licensing.License), args.Error(1)
}

func (m *MockLicenseRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]licensing.License, error) {
	args := m.Called(ctx, tenantID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]licensing.License), args.Error(1)
}

func (m *MockLicenseRepository) FindByProject(ctx context.Context, tenantID, projectID uuid.UUID) ([]*licensing.License, error) {
	args := m.Called(ctx, tenantID, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*licensing.License), args.Error(1)
}

func (m *MockLicenseRepository) FindExpiringBefore(ctx context.Context, tenantID uuid.UUID, from, until time.Time) ([]*licensing.License, error) {
	args := m.Called(ctx, tenantID, from, until)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*licensing.License), args.Error(1)
}

func (m *MockLicenseRepository) Save(ctx context.Context, license *licensing.License) error {
	args := m.Called(ctx, license)
	return args.Error(0)
}

func (m *MockLicenseRepository) SaveWithLock(ctx context.Context, license *licensing.License) error {
	args := m.Called(ctx, license)
	return args.Error(0)
}

func (m *MockLicenseRepository) DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func (m *MockLicenseRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
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

func newTestProject(t *testing.T, tenantID uuid.UUID) *licensing.Project {
	t.Helper()
	project, err := licensing.NewProject(tenantID, "Design Tooling", "dt")
	require.NoError(t, err)
	return project
}

func newTestLicense(t *testing.T, tenantID, projectID uuid.UUID) *licensing.License {
	t.Helper()
	license, err := licensing.NewLicense(tenantID, licensing.LicenseDraft{
		Name:      "Figma Organization",
		ProjectID: projectID,
		Vendor:    "Figma Inc.",
		Seats:     25,
		Cost:      decimal.NewFromInt(11250),
	})
	require.NoError(t, err)
	license.ClearDomainEvents()
	return license
}

func TestProjectService_Create_Success(t *testing.T) {
	projectRepo := new(MockProjectRepository)
	svc := NewProjectService(projectRepo, nil, nil)

	tenantID := uuid.New()

	projectRepo.On("ExistsByName", mock.Anything, tenantID, "Design Tooling").Return(false, nil)
	projectRepo.On("Save", mock.Anything, mock.AnythingOfType("*licensing.Project")).Return(nil)

	result, err := svc.Create(context.Background(), tenantID, ProjectRequest{
		Name: "Design Tooling",
		Code: "dt",
	})

	require.NoError(t, err)
	assert.Equal(t, "Design Tooling", result.Name)
	assert.Equal(t, "DT", result.Code)
	assert.True(t, result.Active)
	projectRepo.AssertExpectations(t)
}

func TestProjectService_Create_DuplicateName(t *testing.T) {
	projectRepo := new(MockProjectRepository)
	svc := NewProjectService(projectRepo, nil, nil)

	tenantID := uuid.New()

	projectRepo.On("ExistsByName", mock.Anything, tenantID, "Design Tooling").Return(true, nil)

	_, err := svc.Create(context.Background(), tenantID, ProjectRequest{Name: "Design Tooling"})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
	projectRepo.AssertNotCalled(t, "Save")
}

func TestProjectService_Deactivate_AlreadyInactive(t *testing.T) {
	projectRepo := new(MockProjectRepository)
	svc := NewProjectService(projectRepo, nil, nil)

	tenantID := uuid.New()
	project := newTestProject(t, tenantID)
	project.Deactivate()

	projectRepo.On("FindByIDForTenant", mock.Anything, tenantID, project.ID).Return(project, nil)

	_, err := svc.Deactivate(context.Background(), tenantID, project.ID)

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_STATE", domainErr.Code)
	projectRepo.AssertNotCalled(t, "SaveWithLock")
}

func TestProjectService_Delete_BlockedByLicenses(t *testing.T) {
	projectRepo := new(MockProjectRepository)
	licenseRepo := new(MockLicenseRepository)
	svc := NewProjectService(projectRepo, licenseRepo, nil)

	tenantID := uuid.New()
	project := newTestProject(t, tenantID)
	license := newTestLicense(t, tenantID, project.ID)

	projectRepo.On("FindByIDForTenant", mock.Anything, tenantID, project.ID).Return(project, nil)
	licenseRepo.On("FindByProject", mock.Anything, tenantID, project.ID).Return([]*licensing.License{license}, nil)

	err := svc.Delete(context.Background(), tenantID, project.ID)

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_STATE", domainErr.Code)
	projectRepo.AssertNotCalled(t, "DeleteForTenant")
}

func TestProjectService_Delete_Success(t *testing.T) {
	projectRepo := new(MockProjectRepository)
	licenseRepo := new(MockLicenseRepository)
	svc := NewProjectService(projectRepo, licenseRepo, nil)

	tenantID := uuid.New()
	project := newTestProject(t, tenantID)

	projectRepo.On("FindByIDForTenant", mock.Anything, tenantID, project.ID).Return(project, nil)
	licenseRepo.On("FindByProject", mock.Anything, tenantID, project.ID).Return([]*licensing.License{}, nil)
	projectRepo.On("DeleteForTenant", mock.Anything, tenantID, project.ID).Return(nil)

	err := svc.Delete(context.Background(), tenantID, project.ID)

	require.NoError(t, err)
	projectRepo.AssertExpectations(t)
}

func TestLicenseService_Create_Success(t *testing.T) {
	licenseRepo := new(MockLicenseRepository)
	projectRepo := new(MockProjectRepository)
	linker := new(MockAttachmentLinker)
	svc := NewLicenseService(licenseRepo, projectRepo, linker, nil)

	tenantID := uuid.New()
	project := newTestProject(t, tenantID)
	fileID := uuid.New()

	projectRepo.On("FindByIDForTenant", mock.Anything, tenantID, project.ID).Return(project, nil)
	licenseRepo.On("Save", mock.Anything, mock.AnythingOfType("*licensing.License")).Return(nil)
	linker.On("LinkPending", mock.Anything, tenantID, "license", mock.AnythingOfType("uuid.UUID"), []uuid.UUID{fileID}).Return(nil)

	result, err := svc.Create(context.Background(), tenantID, LicenseRequest{
		Name:           "Figma Organization",
		ProjectID:      project.ID,
		Vendor:         "Figma Inc.",
		Seats:          25,
		Cost:           decimal.NewFromInt(11250),
		PendingFileIDs: []uuid.UUID{fileID},
	})

	require.NoError(t, err)
	assert.Equal(t, "Figma Organization", result.Name)
	assert.Equal(t, 25, result.Seats)
	licenseRepo.AssertExpectations(t)
	linker.AssertExpectations(t)
}

func TestLicenseService_Create_UnknownProject(t *testing.T) {
	licenseRepo := new(MockLicenseRepository)
	projectRepo := new(MockProjectRepository)
	svc := NewLicenseService(licenseRepo, projectRepo, nil, nil)

	tenantID := uuid.New()
	projectID := uuid.New()

	projectRepo.On("FindByIDForTenant", mock.Anything, tenantID, projectID).
		Return(nil, shared.NewDomainError("NOT_FOUND", "Project not found"))

	_, err := svc.Create(context.Background(), tenantID, LicenseRequest{
		Name:      "Figma Organization",
		ProjectID: projectID,
		Seats:     25,
	})

	require.Error(t, err)
	licenseRepo.AssertNotCalled(t, "Save")
}

func TestLicenseService_Create_InvalidSeats(t *testing.T) {
	licenseRepo := new(MockLicenseRepository)
	projectRepo := new(MockProjectRepository)
	svc := NewLicenseService(licenseRepo, projectRepo, nil, nil)

	tenantID := uuid.New()
	project := newTestProject(t, tenantID)

	projectRepo.On("FindByIDForTenant", mock.Anything, tenantID, project.ID).Return(project, nil)

	_, err := svc.Create(context.Background(), tenantID, LicenseRequest{
		Name:      "Single seat tool",
		ProjectID: project.ID,
		Seats:     0,
	})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_SEATS", domainErr.Code)
	licenseRepo.AssertNotCalled(t, "Save")
}

func TestLicenseService_ListExpiring_DefaultWindow(t *testing.T) {
	licenseRepo := new(MockLicenseRepository)
	svc := NewLicenseService(licenseRepo, nil, nil, nil)

	now := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	tenantID := uuid.New()
	projectID := uuid.New()
	expiresOn := now.AddDate(0, 0, 10)

	license, err := licensing.NewLicense(tenantID, licensing.LicenseDraft{
		Name:      "Figma Organization",
		ProjectID: projectID,
		Seats:     25,
		ExpiresOn: &expiresOn,
	})
	require.NoError(t, err)

	licenseRepo.On("FindExpiringBefore", mock.Anything, tenantID, now, now.AddDate(0, 0, 30)).
		Return([]*licensing.License{license}, nil)

	result, err := svc.ListExpiring(context.Background(), tenantID, ExpiringLicensesFilter{})

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "Figma Organization", result[0].Name)
	licenseRepo.AssertExpectations(t)
}

func TestLicenseService_Update_ProjectChangeIsChecked(t *testing.T) {
	licenseRepo := new(MockLicenseRepository)
	projectRepo := new(MockProjectRepository)
	svc := NewLicenseService(licenseRepo, projectRepo, nil, nil)

	tenantID := uuid.New()
	oldProject := newTestProject(t, tenantID)
	newProject := newTestProject(t, tenantID)
	license := newTestLicense(t, tenantID, oldProject.ID)

	licenseRepo.On("FindByIDForTenant", mock.Anything, tenantID, license.ID).Return(license, nil)
	projectRepo.On("FindByIDForTenant", mock.Anything, tenantID, newProject.ID).Return(newProject, nil)
	licenseRepo.On("SaveWithLock", mock.Anything, license).Return(nil)

	result, err := svc.Update(context.Background(), tenantID, license.ID, LicenseRequest{
		Name:      "Figma Organization",
		ProjectID: newProject.ID,
		Seats:     30,
	})

	require.NoError(t, err)
	assert.Equal(t, newProject.ID, result.ProjectID)
	assert.Equal(t, 30, result.Seats)
	projectRepo.AssertExpectations(t)
}

func TestLicenseService_Delete_Success(t *testing.T) {
	licenseRepo := new(MockLicenseRepository)
	svc := NewLicenseService(licenseRepo, nil, nil, nil)

	tenantID := uuid.New()
	license := newTestLicense(t, tenantID, uuid.New())

	licenseRepo.On("FindByIDForTenant", mock.Anything, tenantID, license.ID).Return(license, nil)
	licenseRepo.On("DeleteForTenant", mock.Anything, tenantID, license.ID).Return(nil)

	err := svc.Delete(context.Background(), tenantID, license.ID)

	require.NoError(t, err)
	licenseRepo.AssertExpectations(t)
}
