package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/intranet/erp-backend/internal/domain/hr"
	"github.com/intranet/erp-backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormOffboardingRepository implements OffboardingRepository using GORM
type GormOffboardingRepository struct {
	db *gorm.DB
}

// NewGormOffboardingRepository creates a new GormOffboardingRepository
func NewGormOffboardingRepository(db *gorm.DB) *GormOffboardingRepository {
	return &GormOffboardingRepository{db: db}
}

// FindByID finds an offboarding by its ID, with tasks loaded
func (r *GormOffboardingRepository) FindByID(ctx context.Context, id uuid.UUID) (*hr.Offboarding, error) {
	var off hr.Offboarding
	if err := r.db.WithContext(ctx).
		Preload("Tasks").
		First(&off, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &off, nil
}

// FindByIDForTenant finds an offboarding by ID within a tenant, with tasks loaded
func (r *GormOffboardingRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*hr.Offboarding, error) {
	var off hr.Offboarding
	if err := r.db.WithContext(ctx).
		Preload("Tasks").
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&off).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &off, nil
}

// FindAllForTenant finds all offboardings for a tenant matching the filter
func (r *GormOffboardingRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]hr.Offboarding, error) {
	var offs []hr.Offboarding
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&hr.Offboarding{}).Preload("Tasks").Where("tenant_id = ?", tenantID),
		filter,
	)

	if err := query.Find(&offs).Error; err != nil {
		return nil, err
	}
	return offs, nil
}

// FindByEmployee finds all offboardings of an employee
func (r *GormOffboardingRepository) FindByEmployee(ctx context.Context, tenantID, employeeID uuid.UUID) ([]*hr.Offboarding, error) {
	var offs []*hr.Offboarding
	if err := r.db.WithContext(ctx).
		Preload("Tasks").
		Where("tenant_id = ? AND employee_id = ?", tenantID, employeeID).
		Order("exit_date DESC").
		Find(&offs).Error; err != nil {
		return nil, err
	}
	return offs, nil
}

// Save creates or updates an offboarding together with its tasks
func (r *GormOffboardingRepository) Save(ctx context.Context, off *hr.Offboarding) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Tasks").Save(off).Error; err != nil {
			return err
		}
		return r.saveTasks(tx, off)
	})
}

// SaveWithLock saves an offboarding with optimistic locking (version check)
func (r *GormOffboardingRepository) SaveWithLock(ctx context.Context, off *hr.Offboarding) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&hr.Offboarding{}).
			Where("id = ? AND version = ?", off.ID, off.Version-1).
			Select("*").
			Omit("Tasks").
			Updates(off)

		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.NewDomainError("OPTIMISTIC_LOCK_ERROR", "The offboarding has been modified by another transaction")
		}
		return r.saveTasks(tx, off)
	})
}

func (r *GormOffboardingRepository) saveTasks(tx *gorm.DB, off *hr.Offboarding) error {
	currentIDs := make([]uuid.UUID, len(off.Tasks))
	for i, task := range off.Tasks {
		currentIDs[i] = task.ID
	}

	removed := tx.Where("offboarding_id = ?", off.ID)
	if len(currentIDs) > 0 {
		removed = removed.Where("id NOT IN ?", currentIDs)
	}
	if err := removed.Delete(&hr.OffboardingTask{}).Error; err != nil {
		return err
	}

	for i := range off.Tasks {
		off.Tasks[i].OffboardingID = off.ID
		if err := tx.Save(&off.Tasks[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

// DeleteForTenant deletes an offboarding and its tasks within a tenant
func (r *GormOffboardingRepository) DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&hr.Offboarding{}, "tenant_id = ? AND id = ?", tenantID, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return tx.Where("offboarding_id = ?", id).Delete(&hr.OffboardingTask{}).Error
	})
}

// CountForTenant counts offboardings for a tenant matching the filter
func (r *GormOffboardingRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&hr.Offboarding{}).Where("tenant_id = ?", tenantID)
	query = r.applyFilterWithoutPagination(query, filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormOffboardingRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, OffboardingSortFields, "exit_date")
	query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir)).Order("id ASC")

	return query
}

func (r *GormOffboardingRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	for key, value := range filter.Filters {
		switch key {
		case "employee_id":
			query = query.Where("employee_id = ?", value)
		case "reason_tag_id":
			query = query.Where("reason_tag_id = ?", value)
		case "status_tag_id":
			query = query.Where("status_tag_id = ?", value)
		}
	}

	return query
}

// Ensure GormOffboardingRepository implements OffboardingRepository
var _ hr.OffboardingRepository = (*GormOffboardingRepository)(nil)
