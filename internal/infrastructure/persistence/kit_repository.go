package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/intranet/erp-backend/internal/domain/hr"
	"github.com/intranet/erp-backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormKitRepository implements KitRepository using GORM
type GormKitRepository struct {
	db *gorm.DB
}

// NewGormKitRepository creates a new GormKitRepository
func NewGormKitRepository(db *gorm.DB) *GormKitRepository {
	return &GormKitRepository{db: db}
}

// FindByID finds a kit by its ID, with items loaded
func (r *GormKitRepository) FindByID(ctx context.Context, id uuid.UUID) (*hr.Kit, error) {
	var kit hr.Kit
	if err := r.db.WithContext(ctx).
		Preload("Items").
		First(&kit, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &kit, nil
}

// FindByIDForTenant finds a kit by ID within a tenant, with items loaded
func (r *GormKitRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*hr.Kit, error) {
	var kit hr.Kit
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&kit).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &kit, nil
}

// FindAllForTenant finds all kits for a tenant matching the filter
func (r *GormKitRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]hr.Kit, error) {
	var kits []hr.Kit
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&hr.Kit{}).Preload("Items").Where("tenant_id = ?", tenantID),
		filter,
	)

	if err := query.Find(&kits).Error; err != nil {
		return nil, err
	}
	return kits, nil
}

// FindByEmployee finds all kits assigned to an employee
func (r *GormKitRepository) FindByEmployee(ctx context.Context, tenantID, employeeID uuid.UUID) ([]*hr.Kit, error) {
	var kits []*hr.Kit
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("tenant_id = ? AND employee_id = ?", tenantID, employeeID).
		Order("created_at DESC").
		Find(&kits).Error; err != nil {
		return nil, err
	}
	return kits, nil
}

// Save creates or updates a kit together with its items
func (r *GormKitRepository) Save(ctx context.Context, kit *hr.Kit) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Items").Save(kit).Error; err != nil {
			return err
		}
		return r.saveItems(tx, kit)
	})
}

// SaveWithLock saves a kit with optimistic locking (version check)
func (r *GormKitRepository) SaveWithLock(ctx context.Context, kit *hr.Kit) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&hr.Kit{}).
			Where("id = ? AND version = ?", kit.ID, kit.Version-1).
			Select("*").
			Omit("Items").
			Updates(kit)

		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.NewDomainError("OPTIMISTIC_LOCK_ERROR", "The kit has been modified by another transaction")
		}
		return r.saveItems(tx, kit)
	})
}

func (r *GormKitRepository) saveItems(tx *gorm.DB, kit *hr.Kit) error {
	currentIDs := make([]uuid.UUID, len(kit.Items))
	for i, item := range kit.Items {
		currentIDs[i] = item.ID
	}

	removed := tx.Where("kit_id = ?", kit.ID)
	if len(currentIDs) > 0 {
		removed = removed.Where("id NOT IN ?", currentIDs)
	}
	if err := removed.Delete(&hr.KitItem{}).Error; err != nil {
		return err
	}

	for i := range kit.Items {
		kit.Items[i].KitID = kit.ID
		if err := tx.Save(&kit.Items[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

// DeleteForTenant deletes a kit and its items within a tenant
func (r *GormKitRepository) DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&hr.Kit{}, "tenant_id = ? AND id = ?", tenantID, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return tx.Where("kit_id = ?", id).Delete(&hr.KitItem{}).Error
	})
}

// CountForTenant counts kits for a tenant matching the filter
func (r *GormKitRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&hr.Kit{}).Where("tenant_id = ?", tenantID)
	query = r.applyFilterWithoutPagination(query, filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormKitRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, KitSortFields, "created_at")
	query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir)).Order("id ASC")

	return query
}

func (r *GormKitRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	for key, value := range filter.Filters {
		switch key {
		case "employee_id":
			query = query.Where("employee_id = ?", value)
		case "status_tag_id":
			query = query.Where("status_tag_id = ?", value)
		}
	}

	return query
}

// Ensure GormKitRepository implements KitRepository
var _ hr.KitRepository = (*GormKitRepository)(nil)
