package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/intranet/erp-backend/internal/domain/finance"
	"github.com/intranet/erp-backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormGrossIncomeRepository implements GrossIncomeRepository using GORM
type GormGrossIncomeRepository struct {
	db *gorm.DB
}

// NewGormGrossIncomeRepository creates a new GormGrossIncomeRepository
func NewGormGrossIncomeRepository(db *gorm.DB) *GormGrossIncomeRepository {
	return &GormGrossIncomeRepository{db: db}
}

// FindByID finds a gross income entry by its ID
func (r *GormGrossIncomeRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.GrossIncome, error) {
	var income finance.GrossIncome
	if err := r.db.WithContext(ctx).First(&income, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &income, nil
}

// FindByIDForTenant finds a gross income entry by ID within a tenant
func (r *GormGrossIncomeRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*finance.GrossIncome, error) {
	var income finance.GrossIncome
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&income).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &income, nil
}

// FindAllForTenant finds all gross income entries for a tenant matching the filter
func (r *GormGrossIncomeRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]finance.GrossIncome, error) {
	var incomes []finance.GrossIncome
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&finance.GrossIncome{}).Where("tenant_id = ?", tenantID),
		filter,
	)

	if err := query.Find(&incomes).Error; err != nil {
		return nil, err
	}
	return incomes, nil
}

// FindByPeriod finds all gross income entries for a specific year and month
func (r *GormGrossIncomeRepository) FindByPeriod(ctx context.Context, tenantID uuid.UUID, year, month int) ([]*finance.GrossIncome, error) {
	var incomes []*finance.GrossIncome
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND year = ? AND month = ?", tenantID, year, month).
		Order("created_at ASC").
		Find(&incomes).Error; err != nil {
		return nil, err
	}
	return incomes, nil
}

// SummarizeByPeriod aggregates income totals per month for a given year
func (r *GormGrossIncomeRepository) SummarizeByPeriod(ctx context.Context, tenantID uuid.UUID, year int) ([]finance.GrossIncomeSummary, error) {
	var summaries []finance.GrossIncomeSummary
	err := r.db.WithContext(ctx).Model(&finance.GrossIncome{}).
		Select("year, month, SUM(amount) AS total, COUNT(*) AS count").
		Where("tenant_id = ? AND year = ?", tenantID, year).
		Group("year, month").
		Order("month ASC").
		Scan(&summaries).Error
	if err != nil {
		return nil, err
	}
	return summaries, nil
}

// Save creates or updates a gross income entry
func (r *GormGrossIncomeRepository) Save(ctx context.Context, income *finance.GrossIncome) error {
	return r.db.WithContext(ctx).Save(income).Error
}

// SaveWithLock saves a gross income entry with optimistic locking (version check)
func (r *GormGrossIncomeRepository) SaveWithLock(ctx context.Context, income *finance.GrossIncome) error {
	result := r.db.WithContext(ctx).Model(&finance.GrossIncome{}).
		Where("id = ? AND version = ?", income.ID, income.Version-1).
		Select("*").
		Updates(income)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NewDomainError("OPTIMISTIC_LOCK_ERROR", "The gross income entry has been modified by another transaction")
	}
	return nil
}

// DeleteForTenant deletes a gross income entry within a tenant
func (r *GormGrossIncomeRepository) DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&finance.GrossIncome{}, "tenant_id = ? AND id = ?", tenantID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// CountForTenant counts gross income entries for a tenant matching the filter
func (r *GormGrossIncomeRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&finance.GrossIncome{}).Where("tenant_id = ?", tenantID)
	query = r.applyFilterWithoutPagination(query, filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormGrossIncomeRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if filter.OrderBy == "" {
		return query.Order("year DESC, month DESC").Order("id ASC")
	}

	orderBy := ValidateSortField(filter.OrderBy, GrossIncomeSortFields, "year")
	query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir)).Order("id ASC")

	return query
}

func (r *GormGrossIncomeRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("concept ILIKE ?", searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "year":
			query = query.Where("year = ?", value)
		case "month":
			query = query.Where("month = ?", value)
		case "contact_id":
			query = query.Where("contact_id = ?", value)
		case "status_tag_id":
			query = query.Where("status_tag_id = ?", value)
		}
	}

	return query
}

// Ensure GormGrossIncomeRepository implements GrossIncomeRepository
var _ finance.GrossIncomeRepository = (*GormGrossIncomeRepository)(nil)
