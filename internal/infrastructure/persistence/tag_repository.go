package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/intranet/erp-backend/internal/domain/reference"
	"github.com/intranet/erp-backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormTagRepository implements TagRepository using GORM
type GormTagRepository struct {
	db *gorm.DB
}

// NewGormTagRepository creates a new GormTagRepository
func NewGormTagRepository(db *gorm.DB) *GormTagRepository {
	return &GormTagRepository{db: db}
}

// FindByID finds a tag by its ID
func (r *GormTagRepository) FindByID(ctx context.Context, id uuid.UUID) (*reference.Tag, error) {
	var tag reference.Tag
	if err := r.db.WithContext(ctx).First(&tag, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &tag, nil
}

// FindByIDForTenant finds a tag by ID within a tenant
func (r *GormTagRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*reference.Tag, error) {
	var tag reference.Tag
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&tag).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &tag, nil
}

// FindAllForTenant finds all tags for a tenant matching the filter
func (r *GormTagRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]reference.Tag, error) {
	var tags []reference.Tag
	query := r.applyFilter(r.db.WithContext(ctx).Model(&reference.Tag{}).Where("tenant_id = ?", tenantID), filter)

	if err := query.Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

// FindByDomain finds all tags of a vocabulary, ordered by sort order
func (r *GormTagRepository) FindByDomain(ctx context.Context, tenantID uuid.UUID, domain reference.TagDomain) ([]reference.Tag, error) {
	var tags []reference.Tag
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND domain = ?", tenantID, domain).
		Order("sort_order ASC, name ASC").
		Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

// FindActiveByDomain finds the active tags of a vocabulary, ordered by sort order
func (r *GormTagRepository) FindActiveByDomain(ctx context.Context, tenantID uuid.UUID, domain reference.TagDomain) ([]reference.Tag, error) {
	var tags []reference.Tag
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND domain = ? AND active = ?", tenantID, domain, true).
		Order("sort_order ASC, name ASC").
		Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

// ExistsByName checks if a tag with the given name exists in a vocabulary
func (r *GormTagRepository) ExistsByName(ctx context.Context, tenantID uuid.UUID, domain reference.TagDomain, name string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&reference.Tag{}).
		Where("tenant_id = ? AND domain = ? AND LOWER(name) = ?", tenantID, domain, strings.ToLower(strings.TrimSpace(name))).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ExistsByIDInDomain checks that a tag ID belongs to the given vocabulary
func (r *GormTagRepository) ExistsByIDInDomain(ctx context.Context, tenantID uuid.UUID, domain reference.TagDomain, id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&reference.Tag{}).
		Where("tenant_id = ? AND domain = ? AND id = ?", tenantID, domain, id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a tag
func (r *GormTagRepository) Save(ctx context.Context, tag *reference.Tag) error {
	return r.db.WithContext(ctx).Save(tag).Error
}

// SaveWithLock saves a tag with optimistic locking (version check)
func (r *GormTagRepository) SaveWithLock(ctx context.Context, tag *reference.Tag) error {
	result := r.db.WithContext(ctx).
		Model(&reference.Tag{}).
		Where("id = ? AND version = ?", tag.ID, tag.Version-1).
		Select("*").
		Updates(tag)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NewDomainError("OPTIMISTIC_LOCK_ERROR", "The tag has been modified by another transaction")
	}
	return nil
}

// DeleteForTenant deletes a tag within a tenant
func (r *GormTagRepository) DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&reference.Tag{}, "tenant_id = ? AND id = ?", tenantID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// CountForTenant counts tags for a tenant matching the filter
func (r *GormTagRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&reference.Tag{}).Where("tenant_id = ?", tenantID)
	query = r.applyFilterWithoutPagination(query, filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormTagRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if filter.OrderBy == "" {
		return query.Order("sort_order ASC, name ASC")
	}
	orderBy := ValidateSortField(filter.OrderBy, TagSortFields, "sort_order")
	query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir)).Order("id ASC")

	return query
}

func (r *GormTagRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ?", searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "domain":
			query = query.Where("domain = ?", value)
		case "active":
			query = query.Where("active = ?", value)
		}
	}

	return query
}

// Ensure GormTagRepository implements TagRepository
var _ reference.TagRepository = (*GormTagRepository)(nil)
