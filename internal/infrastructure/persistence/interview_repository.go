package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/intranet/erp-backend/internal/domain/hr"
	"github.com/intranet/erp-backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormInterviewRepository implements InterviewRepository using GORM
type GormInterviewRepository struct {
	db *gorm.DB
}

// NewGormInterviewRepository creates a new GormInterviewRepository
func NewGormInterviewRepository(db *gorm.DB) *GormInterviewRepository {
	return &GormInterviewRepository{db: db}
}

// FindByID finds an interview by its ID
func (r *GormInterviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*hr.Interview, error) {
	var interview hr.Interview
	if err := r.db.WithContext(ctx).First(&interview, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &interview, nil
}

// FindByIDForTenant finds an interview by ID within a tenant
func (r *GormInterviewRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*hr.Interview, error) {
	var interview hr.Interview
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&interview).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &interview, nil
}

// FindAllForTenant finds all interviews for a tenant matching the filter
func (r *GormInterviewRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]hr.Interview, error) {
	var interviews []hr.Interview
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&hr.Interview{}).Where("tenant_id = ?", tenantID),
		filter,
	)

	if err := query.Find(&interviews).Error; err != nil {
		return nil, err
	}
	return interviews, nil
}

// Save creates or updates an interview
func (r *GormInterviewRepository) Save(ctx context.Context, interview *hr.Interview) error {
	return r.db.WithContext(ctx).Save(interview).Error
}

// SaveWithLock saves an interview with optimistic locking (version check)
func (r *GormInterviewRepository) SaveWithLock(ctx context.Context, interview *hr.Interview) error {
	result := r.db.WithContext(ctx).Model(&hr.Interview{}).
		Where("id = ? AND version = ?", interview.ID, interview.Version-1).
		Select("*").
		Updates(interview)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NewDomainError("OPTIMISTIC_LOCK_ERROR", "The interview has been modified by another transaction")
	}
	return nil
}

// DeleteForTenant deletes an interview within a tenant
func (r *GormInterviewRepository) DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&hr.Interview{}, "tenant_id = ? AND id = ?", tenantID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// CountForTenant counts interviews for a tenant matching the filter
func (r *GormInterviewRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&hr.Interview{}).Where("tenant_id = ?", tenantID)
	query = r.applyFilterWithoutPagination(query, filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormInterviewRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, InterviewSortFields, "scheduled_at")
	query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir)).Order("id ASC")

	return query
}

func (r *GormInterviewRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("candidate_name ILIKE ? OR position ILIKE ?", searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "interviewer_id":
			query = query.Where("interviewer_id = ?", value)
		case "stage_tag_id":
			query = query.Where("stage_tag_id = ?", value)
		}
	}

	return query
}

// Ensure GormInterviewRepository implements InterviewRepository
var _ hr.InterviewRepository = (*GormInterviewRepository)(nil)
