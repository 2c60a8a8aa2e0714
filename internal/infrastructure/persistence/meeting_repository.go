package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/intranet/erp-backend/internal/domain/collab"
	"github.com/intranet/erp-backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormMeetingRepository implements MeetingRepository using GORM
type GormMeetingRepository struct {
	db *gorm.DB
}

// NewGormMeetingRepository creates a new GormMeetingRepository
func NewGormMeetingRepository(db *gorm.DB) *GormMeetingRepository {
	return &GormMeetingRepository{db: db}
}

// FindByID finds a meeting by its ID, with responsibles loaded
func (r *GormMeetingRepository) FindByID(ctx context.Context, id uuid.UUID) (*collab.Meeting, error) {
	var meeting collab.Meeting
	if err := r.db.WithContext(ctx).
		Preload("Responsibles").
		First(&meeting, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &meeting, nil
}

// FindByIDForTenant finds a meeting by ID within a tenant, with responsibles loaded
func (r *GormMeetingRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*collab.Meeting, error) {
	var meeting collab.Meeting
	if err := r.db.WithContext(ctx).
		Preload("Responsibles").
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&meeting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &meeting, nil
}

// FindAllForTenant finds all meetings for a tenant matching the filter
func (r *GormMeetingRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]collab.Meeting, error) {
	var meetings []collab.Meeting
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&collab.Meeting{}).Preload("Responsibles").Where("tenant_id = ?", tenantID),
		filter,
	)

	if err := query.Find(&meetings).Error; err != nil {
		return nil, err
	}
	return meetings, nil
}

// FindBetween finds meetings starting inside the given time window
func (r *GormMeetingRepository) FindBetween(ctx context.Context, tenantID uuid.UUID, from, until time.Time) ([]*collab.Meeting, error) {
	var meetings []*collab.Meeting
	if err := r.db.WithContext(ctx).
		Preload("Responsibles").
		Where("tenant_id = ? AND starts_at >= ? AND starts_at < ?", tenantID, from, until).
		Order("starts_at ASC").
		Find(&meetings).Error; err != nil {
		return nil, err
	}
	return meetings, nil
}

// Save creates or updates a meeting together with its responsibles
func (r *GormMeetingRepository) Save(ctx context.Context, meeting *collab.Meeting) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Responsibles").Save(meeting).Error; err != nil {
			return err
		}
		return r.saveResponsibles(tx, meeting)
	})
}

// SaveWithLock saves a meeting with optimistic locking (version check)
func (r *GormMeetingRepository) SaveWithLock(ctx context.Context, meeting *collab.Meeting) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&collab.Meeting{}).
			Where("id = ? AND version = ?", meeting.ID, meeting.Version-1).
			Select("*").
			Omit("Responsibles").
			Updates(meeting)

		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.NewDomainError("OPTIMISTIC_LOCK_ERROR", "The meeting has been modified by another transaction")
		}
		return r.saveResponsibles(tx, meeting)
	})
}

func (r *GormMeetingRepository) saveResponsibles(tx *gorm.DB, meeting *collab.Meeting) error {
	currentIDs := make([]uuid.UUID, len(meeting.Responsibles))
	for i, responsible := range meeting.Responsibles {
		currentIDs[i] = responsible.ID
	}

	removed := tx.Where("meeting_id = ?", meeting.ID)
	if len(currentIDs) > 0 {
		removed = removed.Where("id NOT IN ?", currentIDs)
	}
	if err := removed.Delete(&collab.MeetingResponsible{}).Error; err != nil {
		return err
	}

	for i := range meeting.Responsibles {
		meeting.Responsibles[i].MeetingID = meeting.ID
		if err := tx.Save(&meeting.Responsibles[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

// DeleteForTenant deletes a meeting and its responsibles within a tenant
func (r *GormMeetingRepository) DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&collab.Meeting{}, "tenant_id = ? AND id = ?", tenantID, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return tx.Where("meeting_id = ?", id).Delete(&collab.MeetingResponsible{}).Error
	})
}

// CountForTenant counts meetings for a tenant matching the filter
func (r *GormMeetingRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&collab.Meeting{}).Where("tenant_id = ?", tenantID)
	query = r.applyFilterWithoutPagination(query, filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormMeetingRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, MeetingSortFields, "starts_at")
	query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir)).Order("id ASC")

	return query
}

func (r *GormMeetingRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("title ILIKE ? OR location ILIKE ?", searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "organizer_id":
			query = query.Where("organizer_id = ?", value)
		case "status_tag_id":
			query = query.Where("status_tag_id = ?", value)
		}
	}

	return query
}

// Ensure GormMeetingRepository implements MeetingRepository
var _ collab.MeetingRepository = (*GormMeetingRepository)(nil)
