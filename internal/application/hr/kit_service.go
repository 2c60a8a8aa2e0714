package hr

import (
	"context"

	"github.com/google/uuid"
	"github.com/intranet/erp-backend/internal/domain/hr"
	"github.com/intranet/erp-backend/internal/domain/shared"
)

// KitService manages employee equipment kits
type KitService struct {
	kitRepo  hr.KitRepository
	linker   AttachmentLinker
	eventBus shared.EventPublisher
}

// NewKitService creates a new KitService
func NewKitService(kitRepo hr.KitRepository, linker AttachmentLinker, eventBus shared.EventPublisher) *KitService {
	return &KitService{
		kitRepo:  kitRepo,
		linker:   linker,
		eventBus: eventBus,
	}
}

// Create registers a new equipment kit
func (s *KitService) Create(ctx context.Context, tenantID uuid.UUID, req KitRequest) (*KitResponse, error) {
	kit, err := hr.NewKit(tenantID, req.toDraft())
	if err != nil {
		return nil, err
	}

	if err := s.kitRepo.Save(ctx, kit); err != nil {
		return nil, err
	}

	if err := s.linkFiles(ctx, tenantID, kit.ID, req.PendingFileIDs); err != nil {
		return nil, err
	}

	response := ToKitResponse(kit)
	return &response, nil
}

// GetByID retrieves a kit by ID
func (s *KitService) GetByID(ctx context.Context, tenantID, kitID uuid.UUID) (*KitResponse, error) {
	kit, err := s.kitRepo.FindByIDForTenant(ctx, tenantID, kitID)
	if err != nil {
		return nil, err
	}

	response := ToKitResponse(kit)
	return &response, nil
}

// List retrieves kits with filtering and pagination
func (s *KitService) List(ctx context.Context, tenantID uuid.UUID, filter KitListFilter) ([]KitResponse, int64, error) {
	domainFilter := buildKitFilter(filter)

	kits, err := s.kitRepo.FindAllForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.kitRepo.CountForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToKitResponses(kits), total, nil
}

// ListByEmployee retrieves all kits handed to an employee
func (s *KitService) ListByEmployee(ctx context.Context, tenantID, employeeID uuid.UUID) ([]KitResponse, error) {
	kits, err := s.kitRepo.FindByEmployee(ctx, tenantID, employeeID)
	if err != nil {
		return nil, err
	}

	responses := make([]KitResponse, 0, len(kits))
	for _, kit := range kits {
		responses = append(responses, ToKitResponse(kit))
	}
	return responses, nil
}

// Update replaces a kit's editable fields. Items are fully replaced.
func (s *KitService) Update(ctx context.Context, tenantID, kitID uuid.UUID, req KitRequest) (*KitResponse, error) {
	kit, err := s.kitRepo.FindByIDForTenant(ctx, tenantID, kitID)
	if err != nil {
		return nil, err
	}

	if err := kit.Update(req.toDraft()); err != nil {
		return nil, err
	}

	if err := s.kitRepo.SaveWithLock(ctx, kit); err != nil {
		return nil, err
	}

	if err := s.linkFiles(ctx, tenantID, kit.ID, req.PendingFileIDs); err != nil {
		return nil, err
	}

	response := ToKitResponse(kit)
	return &response, nil
}

// Delete removes a kit
func (s *KitService) Delete(ctx context.Context, tenantID, kitID uuid.UUID) error {
	if _, err := s.kitRepo.FindByIDForTenant(ctx, tenantID, kitID); err != nil {
		return err
	}

	if err := s.kitRepo.DeleteForTenant(ctx, tenantID, kitID); err != nil {
		return err
	}

	return s.releaseFiles(ctx, tenantID, kitID)
}

func (s *KitService) linkFiles(ctx context.Context, tenantID, kitID uuid.UUID, fileIDs []uuid.UUID) error {
	if len(fileIDs) == 0 || s.linker == nil {
		return nil
	}
	return s.linker.LinkPending(ctx, tenantID, "kit", kitID, fileIDs)
}

func (s *KitService) releaseFiles(ctx context.Context, tenantID, kitID uuid.UUID) error {
	if s.linker == nil {
		return nil
	}
	return s.linker.ReleaseOwner(ctx, tenantID, "kit", kitID)
}

func buildKitFilter(filter KitListFilter) shared.Filter {
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
