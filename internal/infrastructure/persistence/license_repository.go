package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/intranet/erp-backend/internal/domain/licensing"
	"github.com/intranet/erp-backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormLicenseRepository implements LicenseRepository using GORM
type GormLicenseRepository struct {
	db *gorm.DB
}

// NewGormLicenseRepository creates a new GormLicenseRepository
func NewGormLicenseRepository(db *gorm.DB) *GormLicenseRepository {
	return &GormLicenseRepository{db: db}
}

// FindByID finds a license by its ID
func (r *GormLicenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*licensing.License, error) {
	var license licensing.License
	if err := r.db.WithContext(ctx).First(&license, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &license, nil
}

// FindByIDForTenant finds a license by ID within a tenant
func (r *GormLicenseRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*licensing.License, error) {
	var license licensing.License
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&license).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &license, nil
}

// FindAllForTenant finds all licenses for a tenant matching the filter
func (r *GormLicenseRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]licensing.License, error) {
	var licenses []licensing.License
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&licensing.License{}).Where("tenant_id = ?", tenantID),
		filter,
	)

	if err := query.Find(&licenses).Error; err != nil {
		return nil, err
	}
	return licenses, nil
}

// FindByProject finds all licenses belonging to a project
func (r *GormLicenseRepository) FindByProject(ctx context.Context, tenantID, projectID uuid.UUID) ([]*licensing.License, error) {
	var licenses []*licensing.License
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND project_id = ?", tenantID, projectID).
		Order("name ASC").
		Find(&licenses).Error; err != nil {
		return nil, err
	}
	return licenses, nil
}

// FindExpiringBefore finds licenses whose expiry date falls inside the window
func (r *GormLicenseRepository) FindExpiringBefore(ctx context.Context, tenantID uuid.UUID, from, until time.Time) ([]*licensing.License, error) {
	var licenses []*licensing.License
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND expires_on IS NOT NULL AND expires_on >= ? AND expires_on <= ?", tenantID, from, until).
		Order("expires_on ASC").
		Find(&licenses).Error; err != nil {
		return nil, err
	}
	return licenses, nil
}

// Save creates or updates a license
func (r *GormLicenseRepository) Save(ctx context.Context, license *licensing.License) error {
	return r.db.WithContext(ctx).Save(license).Error
}

// SaveWithLock saves a license with optimistic locking (version check)
func (r *GormLicenseRepository) SaveWithLock(ctx context.Context, license *licensing.License) error {
	result := r.db.WithContext(ctx).Model(&licensing.License{}).
		Where("id = ? AND version = ?", license.ID, license.Version-1).
		Select("*").
		Updates(license)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NewDomainError("OPTIMISTIC_LOCK_ERROR", "The license has been modified by another transaction")
	}
	return nil
}

// DeleteForTenant deletes a license within a tenant
func (r *GormLicenseRepository) DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&licensing.License{}, "tenant_id = ? AND id = ?", tenantID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// CountForTenant counts licenses for a tenant matching the filter
func (r *GormLicenseRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&licensing.License{}).Where("tenant_id = ?", tenantID)
	query = r.applyFilterWithoutPagination(query, filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormLicenseRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, LicenseSortFields, "name")
	query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir)).Order("id ASC")

	return query
}

func (r *GormLicenseRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR vendor ILIKE ?", searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "project_id":
			query = query.Where("project_id = ?", value)
		case "status_tag_id":
			query = query.Where("status_tag_id = ?", value)
		}
	}

	return query
}

// Ensure GormLicenseRepository implements LicenseRepository
var _ licensing.LicenseRepository = (*GormLicenseRepository)(nil)
