package licensing

import (
	"context"

	"github.com/google/uuid"
	"github.com/intranet/erp-backend/internal/domain/licensing"
	"github.com/intranet/erp-backend/internal/domain/shared"
)

// ProjectService manages license projects
type ProjectService struct {
	projectRepo licensing.ProjectRepository
	licenseRepo licensing.LicenseRepository
	eventBus    shared.EventPublisher
}

// NewProjectService creates a new ProjectService
func NewProjectService(projectRepo licensing.ProjectRepository, licenseRepo licensing.LicenseRepository, eventBus shared.EventPublisher) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		licenseRepo: licenseRepo,
		eventBus:    eventBus,
	}
}

// Create registers a new project
func (s *ProjectService) Create(ctx context.Context, tenantID uuid.UUID, req ProjectRequest) (*ProjectResponse, error) {
	exists, err := s.projectRepo.ExistsByName(ctx, tenantID, req.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "A project with this name already exists")
	}

	project, err := licensing.NewProject(tenantID, req.Name, req.Code)
	if err != nil {
		return nil, err
	}

	if err := s.projectRepo.Save(ctx, project); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, project)

	response := ToProjectResponse(project)
	return &response, nil
}

// GetByID retrieves a project by ID
func (s *ProjectService) GetByID(ctx context.Context, tenantID, projectID uuid.UUID) (*ProjectResponse, error) {
	project, err := s.projectRepo.FindByIDForTenant(ctx, tenantID, projectID)
	if err != nil {
		return nil, err
	}

	response := ToProjectResponse(project)
	return &response, nil
}

// List retrieves projects with filtering and pagination
func (s *ProjectService) List(ctx context.Context, tenantID uuid.UUID, filter ProjectListFilter) ([]ProjectResponse, int64, error) {
	domainFilter := buildProjectFilter(filter)

	projects, err := s.projectRepo.FindAllForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.projectRepo.CountForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToProjectResponses(projects), total, nil
}

// Update replaces a project's editable fields
func (s *ProjectService) Update(ctx context.Context, tenantID, projectID uuid.UUID, req ProjectRequest) (*ProjectResponse, error) {
	project, err := s.projectRepo.FindByIDForTenant(ctx, tenantID, projectID)
	if err != nil {
		return nil, err
	}

	if project.Name != req.Name {
		exists, err := s.projectRepo.ExistsByName(ctx, tenantID, req.Name)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "A project with this name already exists")
		}
	}

	if err := project.Update(req.Name, req.Code); err != nil {
		return nil, err
	}

	if err := s.projectRepo.SaveWithLock(ctx, project); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, project)

	response := ToProjectResponse(project)
	return &response, nil
}

// Activate marks a project as active
func (s *ProjectService) Activate(ctx context.Context, tenantID, projectID uuid.UUID) (*ProjectResponse, error) {
	return s.setActive(ctx, tenantID, projectID, true)
}

// Deactivate marks a project as inactive
func (s *ProjectService) Deactivate(ctx context.Context, tenantID, projectID uuid.UUID) (*ProjectResponse, error) {
	return s.setActive(ctx, tenantID, projectID, false)
}

// Delete removes a project that no longer holds licenses
func (s *ProjectService) Delete(ctx context.Context, tenantID, projectID uuid.UUID) error {
	if _, err := s.projectRepo.FindByIDForTenant(ctx, tenantID, projectID); err != nil {
		return err
	}

	licenses, err := s.licenseRepo.FindByProject(ctx, tenantID, projectID)
	if err != nil {
		return err
	}
	if len(licenses) > 0 {
		return shared.NewDomainError("INVALID_STATE", "Cannot delete a project that still has licenses")
	}

	return s.projectRepo.DeleteForTenant(ctx, tenantID, projectID)
}

func (s *ProjectService) setActive(ctx context.Context, tenantID, projectID uuid.UUID, active bool) (*ProjectResponse, error) {
	project, err := s.projectRepo.FindByIDForTenant(ctx, tenantID, projectID)
	if err != nil {
		return nil, err
	}

	if project.Active == active {
		return nil, shared.NewDomainError("INVALID_STATE", "Project is already in the requested state")
	}

	if active {
		project.Activate()
	} else {
		project.Deactivate()
	}

	if err := s.projectRepo.SaveWithLock(ctx, project); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, project)

	response := ToProjectResponse(project)
	return &response, nil
}

func (s *ProjectService) publishEvents(ctx context.Context, project *licensing.Project) {
	if s.eventBus == nil {
		return
	}
	_ = s.eventBus.Publish(ctx, project.GetDomainEvents()...)
	project.ClearDomainEvents()
}

func buildProjectFilter(filter ProjectListFilter) shared.Filter {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	if domainFilter.PageSize > 100 {
		domainFilter.PageSize = 100
	}
	if filter.OrderBy != "" {
		domainFilter.OrderBy = filter.OrderBy
	}
	if filter.OrderDir != "" {
		domainFilter.OrderDir = filter.OrderDir
	}
	domainFilter.Search = filter.Search
	if filter.Active != nil {
		domainFilter.Filters["active"] = *filter.Active
	}
	return domainFilter
}
