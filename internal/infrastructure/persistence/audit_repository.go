package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/intranet/erp-backend/internal/domain/finance"
	"github.com/intranet/erp-backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormAuditRepository implements AuditRepository using GORM
type GormAuditRepository struct {
	db *gorm.DB
}

// NewGormAuditRepository creates a new GormAuditRepository
func NewGormAuditRepository(db *gorm.DB) *GormAuditRepository {
	return &GormAuditRepository{db: db}
}

// FindByID finds an audit by its ID
func (r *GormAuditRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.Audit, error) {
	var audit finance.Audit
	if err := r.db.WithContext(ctx).First(&audit, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &audit, nil
}

// FindByIDForTenant finds an audit by ID within a tenant
func (r *GormAuditRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*finance.Audit, error) {
	var audit finance.Audit
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&audit).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &audit, nil
}

// FindAllForTenant finds all audits for a tenant matching the filter
func (r *GormAuditRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]finance.Audit, error) {
	var audits []finance.Audit
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&finance.Audit{}).Where("tenant_id = ?", tenantID),
		filter,
	)

	if err := query.Find(&audits).Error; err != nil {
		return nil, err
	}
	return audits, nil
}

// Save creates or updates an audit
func (r *GormAuditRepository) Save(ctx context.Context, audit *finance.Audit) error {
	return r.db.WithContext(ctx).Save(audit).Error
}

// SaveWithLock saves an audit with optimistic locking (version check)
func (r *GormAuditRepository) SaveWithLock(ctx context.Context, audit *finance.Audit) error {
	result := r.db.WithContext(ctx).Model(&finance.Audit{}).
		Where("id = ? AND version = ?", audit.ID, audit.Version-1).
		Select("*").
		Updates(audit)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NewDomainError("OPTIMISTIC_LOCK_ERROR", "The audit has been modified by another transaction")
	}
	return nil
}

// DeleteForTenant deletes an audit within a tenant
func (r *GormAuditRepository) DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&finance.Audit{}, "tenant_id = ? AND id = ?", tenantID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// CountForTenant counts audits for a tenant matching the filter
func (r *GormAuditRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&finance.Audit{}).Where("tenant_id = ?", tenantID)
	query = r.applyFilterWithoutPagination(query, filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormAuditRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, AuditSortFields, "starts_on")
	query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir)).Order("id ASC")

	return query
}

func (r *GormAuditRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("title ILIKE ?", searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "auditor_id":
			query = query.Where("auditor_id = ?", value)
		case "status_tag_id":
			query = query.Where("status_tag_id = ?", value)
		}
	}

	return query
}

// Ensure GormAuditRepository implements AuditRepository
var _ finance.AuditRepository = (*GormAuditRepository)(nil)
