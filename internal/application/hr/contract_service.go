package hr

import (
	"context"

	"github.com/google/uuid"
	"github.com/intranet/erp-backend/internal/domain/hr"
	"github.com/intranet/erp-backend/internal/domain/shared"
)

// ContractService manages employment contracts
type ContractService struct {
	contractRepo hr.EmploymentContractRepository
	linker       AttachmentLinker
	eventBus     shared.EventPublisher
}

// NewContractService creates a new ContractService
func NewContractService(contractRepo hr.EmploymentContractRepository, linker AttachmentLinker, eventBus shared.EventPublisher) *ContractService {
	return &ContractService{
		contractRepo: contractRepo,
		linker:       linker,
		eventBus:     eventBus,
	}
}

// Create registers a new employment contract
func (s *ContractService) Create(ctx context.Context, tenantID uuid.UUID, req ContractRequest) (*ContractResponse, error) {
	contract, err := hr.NewEmploymentContract(tenantID, req.toDraft())
	if err != nil {
		return nil, err
	}

	if err := s.contractRepo.Save(ctx, contract); err != nil {
		return nil, err
	}

	if err := s.linkFiles(ctx, tenantID, contract.ID, req.PendingFileIDs); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, contract)

	response := ToContractResponse(contract)
	return &response, nil
}

// GetByID retrieves a contract by ID
func (s *ContractService) GetByID(ctx context.Context, tenantID, contractID uuid.UUID) (*ContractResponse, error) {
	contract, err := s.contractRepo.FindByIDForTenant(ctx, tenantID, contractID)
	if err != nil {
		return nil, err
	}

	response := ToContractResponse(contract)
	return &response, nil
}

// List retrieves contracts with filtering and pagination
func (s *ContractService) List(ctx context.Context, tenantID uuid.UUID, filter ContractListFilter) ([]ContractResponse, int64, error) {
	domainFilter := buildContractFilter(filter)

	contracts, err := s.contractRepo.FindAllForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.contractRepo.CountForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToContractResponses(contracts), total, nil
}

// ListByEmployee retrieves the contract history of an employee
func (s *ContractService) ListByEmployee(ctx context.Context, tenantID, employeeID uuid.UUID) ([]ContractResponse, error) {
	contracts, err := s.contractRepo.FindByEmployee(ctx, tenantID, employeeID)
	if err != nil {
		return nil, err
	}

	responses := make([]ContractResponse, 0, len(contracts))
	for _, contract := range contracts {
		responses = append(responses, ToContractResponse(contract))
	}
	return responses, nil
}

// Update replaces a contract's editable fields
func (s *ContractService) Update(ctx context.Context, tenantID, contractID uuid.UUID, req ContractRequest) (*ContractResponse, error) {
	contract, err := s.contractRepo.FindByIDForTenant(ctx, tenantID, contractID)
	if err != nil {
		return nil, err
	}

	if err := contract.Update(req.toDraft()); err != nil {
		return nil, err
	}

	if err := s.contractRepo.SaveWithLock(ctx, contract); err != nil {
		return nil, err
	}

	if err := s.linkFiles(ctx, tenantID, contract.ID, req.PendingFileIDs); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, contract)

	response := ToContractResponse(contract)
	return &response, nil
}

// Delete removes a contract
func (s *ContractService) Delete(ctx context.Context, tenantID, contractID uuid.UUID) error {
	if _, err := s.contractRepo.FindByIDForTenant(ctx, tenantID, contractID); err != nil {
		return err
	}

	if err := s.contractRepo.DeleteForTenant(ctx, tenantID, contractID); err != nil {
		return err
	}

	return s.releaseFiles(ctx, tenantID, contractID)
}

func (s *ContractService) linkFiles(ctx context.Context, tenantID, contractID uuid.UUID, fileIDs []uuid.UUID) error {
	if len(fileIDs) == 0 || s.linker == nil {
		return nil
	}
	return s.linker.LinkPending(ctx, tenantID, "contract", contractID, fileIDs)
}

func (s *ContractService) releaseFiles(ctx context.Context, tenantID, contractID uuid.UUID) error {
	if s.linker == nil {
		return nil
	}
	return s.linker.ReleaseOwner(ctx, tenantID, "contract", contractID)
}

func (s *ContractService) publishEvents(ctx context.Context, contract *hr.EmploymentContract) {
	if s.eventBus == nil {
		return
	}
	_ = s.eventBus.Publish(ctx, contract.GetDomainEvents()...)
	contract.ClearDomainEvents()
}

func buildContractFilter(filter ContractListFilter) shared.Filter {
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
	if filter.EmployeeID != "" {
		domainFilter.Filters["employee_id"] = filter.EmployeeID
	}
	if filter.StatusTagID != "" {
		domainFilter.Filters["status_tag_id"] = filter.StatusTagID
	}
	return domainFilter
}
