package licensing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/intranet/erp-backend/internal/domain/licensing"
	"github.com/intranet/erp-backend/internal/domain/shared"
)

const defaultExpiryWindowDays = 30

// AttachmentLinker binds pending uploads to an owning record
type AttachmentLinker interface {
	LinkPending(ctx context.Context, tenantID uuid.UUID, ownerType string, ownerID uuid.UUID, fileIDs []uuid.UUID) error
	ReleaseOwner(ctx context.Context, tenantID uuid.UUID, ownerType string, ownerID uuid.UUID) error
}

// LicenseService manages purchased licenses
type LicenseService struct {
	licenseRepo licensing.LicenseRepository
	projectRepo licensing.ProjectRepository
	linker      AttachmentLinker
	eventBus    shared.EventPublisher
	now         func() time.Time
}

// NewLicenseService creates a new LicenseService
func NewLicenseService(licenseRepo licensing.LicenseRepository, projectRepo licensing.ProjectRepository, linker AttachmentLinker, eventBus shared.EventPublisher) *LicenseService {
	return &LicenseService{
		licenseRepo: licenseRepo,
		projectRepo: projectRepo,
		linker:      linker,
		eventBus:    eventBus,
		now:         time.Now,
	}
}

// Create registers a new license under an existing project
func (s *LicenseService) Create(ctx context.Context, tenantID uuid.UUID, req LicenseRequest) (*LicenseResponse, error) {
	if _, err := s.projectRepo.FindByIDForTenant(ctx, tenantID, req.ProjectID); err != nil {
		return nil, err
	}

	license, err := licensing.NewLicense(tenantID, req.toDraft())
	if err != nil {
		return nil, err
	}

	if err := s.licenseRepo.Save(ctx, license); err != nil {
		return nil, err
	}

	if err := s.linkFiles(ctx, tenantID, license.ID, req.PendingFileIDs); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, license)

	response := ToLicenseResponse(license)
	return &response, nil
}

// GetByID retrieves a license by ID
func (s *LicenseService) GetByID(ctx context.Context, tenantID, licenseID uuid.UUID) (*LicenseResponse, error) {
	license, err := s.licenseRepo.FindByIDForTenant(ctx, tenantID, licenseID)
	if err != nil {
		return nil, err
	}

	response := ToLicenseResponse(license)
	return &response, nil
}

// List retrieves licenses with filtering and pagination
func (s *LicenseService) List(ctx context.Context, tenantID uuid.UUID, filter LicenseListFilter) ([]LicenseResponse, int64, error) {
	domainFilter := buildLicenseFilter(filter)

	licenses, err := s.licenseRepo.FindAllForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.licenseRepo.CountForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToLicenseResponses(licenses), total, nil
}

// ListByProject retrieves all licenses under a project
func (s *LicenseService) ListByProject(ctx context.Context, tenantID, projectID uuid.UUID) ([]LicenseResponse, error) {
	licenses, err := s.licenseRepo.FindByProject(ctx, tenantID, projectID)
	if err != nil {
		return nil, err
	}
	return ToLicensePointerResponses(licenses), nil
}

// ListExpiring retrieves licenses whose expiry date falls within the window.
// A zero days value defaults to 30.
func (s *LicenseService) ListExpiring(ctx context.Context, tenantID uuid.UUID, filter ExpiringLicensesFilter) ([]LicenseResponse, error) {
	days := filter.Days
	if days <= 0 {
		days = defaultExpiryWindowDays
	}

	from := s.now()
	until := from.AddDate(0, 0, days)

	licenses, err := s.licenseRepo.FindExpiringBefore(ctx, tenantID, from, until)
	if err != nil {
		return nil, err
	}
	return ToLicensePointerResponses(licenses), nil
}

// Update replaces a license's editable fields
func (s *LicenseService) Update(ctx context.Context, tenantID, licenseID uuid.UUID, req LicenseRequest) (*LicenseResponse, error) {
	license, err := s.licenseRepo.FindByIDForTenant(ctx, tenantID, licenseID)
	if err != nil {
		return nil, err
	}

	if license.ProjectID != req.ProjectID {
		if _, err := s.projectRepo.FindByIDForTenant(ctx, tenantID, req.ProjectID); err != nil {
			return nil, err
		}
	}

	if err := license.Update(req.toDraft()); err != nil {
		return nil, err
	}

	if err := s.licenseRepo.SaveWithLock(ctx, license); err != nil {
		return nil, err
	}

	if err := s.linkFiles(ctx, tenantID, license.ID, req.PendingFileIDs); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, license)

	response := ToLicenseResponse(license)
	return &response, nil
}

// Delete removes a license
func (s *LicenseService) Delete(ctx context.Context, tenantID, licenseID uuid.UUID) error {
	if _, err := s.licenseRepo.FindByIDForTenant(ctx, tenantID, licenseID); err != nil {
		return err
	}

	if err := s.licenseRepo.DeleteForTenant(ctx, tenantID, licenseID); err != nil {
		return err
	}

	return s.releaseFiles(ctx, tenantID, licenseID)
}

func (s *LicenseService) linkFiles(ctx context.Context, tenantID, licenseID uuid.UUID, fileIDs []uuid.UUID) error {
	if len(fileIDs) == 0 || s.linker == nil {
		return nil
	}
	return s.linker.LinkPending(ctx, tenantID, "license", licenseID, fileIDs)
}

func (s *LicenseService) releaseFiles(ctx context.Context, tenantID, licenseID uuid.UUID) error {
	if s.linker == nil {
		return nil
	}
	return s.linker.ReleaseOwner(ctx, tenantID, "license", licenseID)
}

func (s *LicenseService) publishEvents(ctx context.Context, license *licensing.License) {
	if s.eventBus == nil {
		return
	}
	_ = s.eventBus.Publish(ctx, license.GetDomainEvents()...)
	license.ClearDomainEvents()
}

func buildLicenseFilter(filter LicenseListFilter) shared.Filter {
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
	if filter.ProjectID != "" {
		domainFilter.Filters["project_id"] = filter.ProjectID
	}
	if filter.StatusTagID != "" {
		domainFilter.Filters["status_tag_id"] = filter.StatusTagID
	}
	return domainFilter
}
