package finance

import (
	"context"

	"github.com/google/uuid"
	"github.com/intranet/erp-backend/internal/domain/finance"
	"github.com/intranet/erp-backend/internal/domain/shared"
)

// GrossIncomeService manages monthly gross income entries
type GrossIncomeService struct {
	incomeRepo finance.GrossIncomeRepository
	eventBus   shared.EventPublisher
}

// NewGrossIncomeService creates a new GrossIncomeService
func NewGrossIncomeService(incomeRepo finance.GrossIncomeRepository, eventBus shared.EventPublisher) *GrossIncomeService {
	return &GrossIncomeService{
		incomeRepo: incomeRepo,
		eventBus:   eventBus,
	}
}

// Create records a new gross income entry
func (s *GrossIncomeService) Create(ctx context.Context, tenantID uuid.UUID, req GrossIncomeRequest) (*GrossIncomeResponse, error) {
	income, err := finance.NewGrossIncome(tenantID, req.toDraft())
	if err != nil {
		return nil, err
	}

	if err := s.incomeRepo.Save(ctx, income); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, income)

	response := ToGrossIncomeResponse(income)
	return &response, nil
}

// GetByID retrieves an entry by ID
func (s *GrossIncomeService) GetByID(ctx context.Context, tenantID, incomeID uuid.UUID) (*GrossIncomeResponse, error) {
	income, err := s.incomeRepo.FindByIDForTenant(ctx, tenantID, incomeID)
	if err != nil {
		return nil, err
	}

	response := ToGrossIncomeResponse(income)
	return &response, nil
}

// List retrieves entries with filtering and pagination
func (s *GrossIncomeService) List(ctx context.Context, tenantID uuid.UUID, filter GrossIncomeListFilter) ([]GrossIncomeResponse, int64, error) {
	domainFilter := buildGrossIncomeFilter(filter)

	incomes, err := s.incomeRepo.FindAllForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.incomeRepo.CountForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToGrossIncomeResponses(incomes), total, nil
}

// Summary aggregates a year's entries into per-month totals.
// Months without entries are omitted from the result.
func (s *GrossIncomeService) Summary(ctx context.Context, tenantID uuid.UUID, year int) ([]finance.GrossIncomeSummary, error) {
	if year < 2000 || year > 2100 {
		return nil, shared.NewDomainError("INVALID_YEAR", "Year must be between 2000 and 2100")
	}
	return s.incomeRepo.SummarizeByPeriod(ctx, tenantID, year)
}

// Update replaces an entry's editable fields
func (s *GrossIncomeService) Update(ctx context.Context, tenantID, incomeID uuid.UUID, req GrossIncomeRequest) (*GrossIncomeResponse, error) {
	income, err := s.incomeRepo.FindByIDForTenant(ctx, tenantID, incomeID)
	if err != nil {
		return nil, err
	}

	if err := income.Update(req.toDraft()); err != nil {
		return nil, err
	}

	if err := s.incomeRepo.SaveWithLock(ctx, income); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, income)

	response := ToGrossIncomeResponse(income)
	return &response, nil
}

// Delete removes an entry
func (s *GrossIncomeService) Delete(ctx context.Context, tenantID, incomeID uuid.UUID) error {
	income, err := s.incomeRepo.FindByIDForTenant(ctx, tenantID, incomeID)
	if err != nil {
		return err
	}

	if err := s.incomeRepo.DeleteForTenant(ctx, tenantID, incomeID); err != nil {
		return err
	}

	if s.eventBus != nil {
		_ = s.eventBus.Publish(ctx, finance.NewGrossIncomeDeletedEvent(income))
	}

	return nil
}

func (s *GrossIncomeService) publishEvents(ctx context.Context, income *finance.GrossIncome) {
	if s.eventBus == nil {
		return
	}
	_ = s.eventBus.Publish(ctx, income.GetDomainEvents()...)
	income.ClearDomainEvents()
}

func buildGrossIncomeFilter(filter GrossIncomeListFilter) shared.Filter {
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
	if filter.Year > 0 {
		domainFilter.Filters["year"] = filter.Year
	}
	if filter.Month > 0 {
		domainFilter.Filters["month"] = filter.Month
	}
	if filter.ContactID != "" {
		domainFilter.Filters["contact_id"] = filter.ContactID
	}
	if filter.StatusTagID != "" {
		domainFilter.Filters["status_tag_id"] = filter.StatusTagID
	}
	return domainFilter
}
