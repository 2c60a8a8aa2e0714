package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/intranet/erp-backend/internal/domain/hr"
	"github.com/intranet/erp-backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormEmploymentContractRepository implements EmploymentContractRepository using GORM
type GormEmploymentContractRepository struct {
	db *gorm.DB
}

// NewGormEmploymentContractRepository creates a new GormEmploymentContractRepository
func NewGormEmploymentContractRepository(db *gorm.DB) *GormEmploymentContractRepository {
	return &GormEmploymentContractRepository{db: db}
}

// FindByID finds an employment contract by its ID
func (r *GormEmploymentContractRepository) FindByID(ctx context.Context, id uuid.UUID) (*hr.EmploymentContract, error) {
	var contract hr.EmploymentContract
	if err := r.db.WithContext(ctx).First(&contract, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &contract, nil
}

// FindByIDForTenant finds an employment contract by ID within a tenant
func (r *GormEmploymentContractRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*hr.EmploymentContract, error) {
	var contract hr.EmploymentContract
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&contract).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &contract, nil
}

// FindAllForTenant finds all employment contracts for a tenant matching the filter
func (r *GormEmploymentContractRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]hr.EmploymentContract, error) {
	var contracts []hr.EmploymentContract
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&hr.EmploymentContract{}).Where("tenant_id = ?", tenantID),
		filter,
	)

	if err := query.Find(&contracts).Error; err != nil {
		return nil, err
	}
	return contracts, nil
}

// FindByEmployee finds all contracts of an employee, most recent first
func (r *GormEmploymentContractRepository) FindByEmployee(ctx context.Context, tenantID, employeeID uuid.UUID) ([]*hr.EmploymentContract, error) {
	var contracts []*hr.EmploymentContract
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND employee_id = ?", tenantID, employeeID).
		Order("starts_on DESC").
		Find(&contracts).Error; err != nil {
		return nil, err
	}
	return contracts, nil
}

// Save creates or updates an employment contract
func (r *GormEmploymentContractRepository) Save(ctx context.Context, contract *hr.EmploymentContract) error {
	return r.db.WithContext(ctx).Save(contract).Error
}

// SaveWithLock saves an employment contract with optimistic locking (version check)
func (r *GormEmploymentContractRepository) SaveWithLock(ctx context.Context, contract *hr.EmploymentContract) error {
	result := r.db.WithContext(ctx).Model(&hr.EmploymentContract{}).
		Where("id = ? AND version = ?", contract.ID, contract.Version-1).
		Select("*").
		Updates(contract)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NewDomainError("OPTIMISTIC_LOCK_ERROR", "The employment contract has been modified by another transaction")
	}
	return nil
}

// DeleteForTenant deletes an employment contract within a tenant
func (r *GormEmploymentContractRepository) DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&hr.EmploymentContract{}, "tenant_id = ? AND id = ?", tenantID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// CountForTenant counts employment contracts for a tenant matching the filter
func (r *GormEmploymentContractRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&hr.EmploymentContract{}).Where("tenant_id = ?", tenantID)
	query = r.applyFilterWithoutPagination(query, filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormEmploymentContractRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, ContractSortFields, "starts_on")
	query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir)).Order("id ASC")

	return query
}

func (r *GormEmploymentContractRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("role_title ILIKE ?", searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "employee_id":
			query = query.Where("employee_id = ?", value)
		case "type_tag_id":
			query = query.Where("type_tag_id = ?", value)
		case "status_tag_id":
			query = query.Where("status_tag_id = ?", value)
		}
	}

	return query
}

// Ensure GormEmploymentContractRepository implements EmploymentContractRepository
var _ hr.EmploymentContractRepository = (*GormEmploymentContractRepository)(nil)
