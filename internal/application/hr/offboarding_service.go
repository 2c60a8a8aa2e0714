package hr

import (
	"context"

	"github.com/google/uuid"
	"github.com/intranet/erp-backend/internal/domain/hr"
	"github.com/intranet/erp-backend/internal/domain/shared"
)

// OffboardingService manages employee exit processes
type OffboardingService struct {
	offboardingRepo hr.OffboardingRepository
	linker          AttachmentLinker
	eventBus        shared.EventPublisher
}

// NewOffboardingService creates a new OffboardingService
func NewOffboardingService(offboardingRepo hr.OffboardingRepository, linker AttachmentLinker, eventBus shared.EventPublisher) *OffboardingService {
	return &OffboardingService{
		offboardingRepo: offboardingRepo,
		linker:          linker,
		eventBus:        eventBus,
	}
}

// Create starts a new offboarding process
func (s *OffboardingService) Create(ctx context.Context, tenantID uuid.UUID, req OffboardingRequest) (*OffboardingResponse, error) {
	off, err := hr.NewOffboarding(tenantID, req.toDraft())
	if err != nil {
		return nil, err
	}

	if err := s.offboardingRepo.Save(ctx, off); err != nil {
		return nil, err
	}

	if err := s.linkFiles(ctx, tenantID, off.ID, req.PendingFileIDs); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, off)

	response := ToOffboardingResponse(off)
	return &response, nil
}

// GetByID retrieves an offboarding by ID
func (s *OffboardingService) GetByID(ctx context.Context, tenantID, offboardingID uuid.UUID) (*OffboardingResponse, error) {
	off, err := s.offboardingRepo.FindByIDForTenant(ctx, tenantID, offboardingID)
	if err != nil {
		return nil, err
	}

	response := ToOffboardingResponse(off)
	return &response, nil
}

// List retrieves offboardings with filtering and pagination
func (s *OffboardingService) List(ctx context.Context, tenantID uuid.UUID, filter OffboardingListFilter) ([]OffboardingResponse, int64, error) {
	domainFilter := buildOffboardingFilter(filter)

	offs, err := s.offboardingRepo.FindAllForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.offboardingRepo.CountForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToOffboardingResponses(offs), total, nil
}

// Update replaces an offboarding's editable fields and checklist
func (s *OffboardingService) Update(ctx context.Context, tenantID, offboardingID uuid.UUID, req OffboardingRequest) (*OffboardingResponse, error) {
	off, err := s.offboardingRepo.FindByIDForTenant(ctx, tenantID, offboardingID)
	if err != nil {
		return nil, err
	}

	if err := off.Update(req.toDraft()); err != nil {
		return nil, err
	}

	if err := s.offboardingRepo.SaveWithLock(ctx, off); err != nil {
		return nil, err
	}

	if err := s.linkFiles(ctx, tenantID, off.ID, req.PendingFileIDs); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, off)

	response := ToOffboardingResponse(off)
	return &response, nil
}

// Delete removes an offboarding
func (s *OffboardingService) Delete(ctx context.Context, tenantID, offboardingID uuid.UUID) error {
	if _, err := s.offboardingRepo.FindByIDForTenant(ctx, tenantID, offboardingID); err != nil {
		return err
	}

	if err := s.offboardingRepo.DeleteForTenant(ctx, tenantID, offboardingID); err != nil {
		return err
	}

	return s.releaseFiles(ctx, tenantID, offboardingID)
}

func (s *OffboardingService) linkFiles(ctx context.Context, tenantID, offboardingID uuid.UUID, fileIDs []uuid.UUID) error {
	if len(fileIDs) == 0 || s.linker == nil {
		return nil
	}
	return s.linker.LinkPending(ctx, tenantID, "offboarding", offboardingID, fileIDs)
}

func (s *OffboardingService) releaseFiles(ctx context.Context, tenantID, offboardingID uuid.UUID) error {
	if s.linker == nil {
		return nil
	}
	return s.linker.ReleaseOwner(ctx, tenantID, "offboarding", offboardingID)
}

func (s *OffboardingService) publishEvents(ctx context.Context, off *hr.Offboarding) {
	if s.eventBus == nil {
		return
	}
	_ = s.eventBus.Publish(ctx, off.GetDomainEvents()...)
	off.ClearDomainEvents()
}

func buildOffboardingFilter(filter OffboardingListFilter) shared.Filter {
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
	if filter.EmployeeID != "" {
		domainFilter.Filters["employee_id"] = filter.EmployeeID
	}
	if filter.StatusTagID != "" {
		domainFilter.Filters["status_tag_id"] = filter.StatusTagID
	}
	return domainFilter
}
