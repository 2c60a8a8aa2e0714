package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/intranet/erp-backend/internal/domain/hr"
	"github.com/intranet/erp-backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormAttendanceRepository implements AttendanceRepository using GORM
type GormAttendanceRepository struct {
	db *gorm.DB
}

// NewGormAttendanceRepository creates a new GormAttendanceRepository
func NewGormAttendanceRepository(db *gorm.DB) *GormAttendanceRepository {
	return &GormAttendanceRepository{db: db}
}

// FindByID finds an attendance record by its ID
func (r *GormAttendanceRepository) FindByID(ctx context.Context, id uuid.UUID) (*hr.Attendance, error) {
	var attendance hr.Attendance
	if err := r.db.WithContext(ctx).First(&attendance, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &attendance, nil
}

// FindByIDForTenant finds an attendance record by ID within a tenant
func (r *GormAttendanceRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*hr.Attendance, error) {
	var attendance hr.Attendance
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&attendance).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &attendance, nil
}

// FindAllForTenant finds all attendance records for a tenant matching the filter
func (r *GormAttendanceRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]hr.Attendance, error) {
	var attendances []hr.Attendance
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&hr.Attendance{}).Where("tenant_id = ?", tenantID),
		filter,
	)

	if err := query.Find(&attendances).Error; err != nil {
		return nil, err
	}
	return attendances, nil
}

// FindByEmployeeAndDate finds the attendance record of an employee on a calendar day
func (r *GormAttendanceRepository) FindByEmployeeAndDate(ctx context.Context, tenantID, employeeID uuid.UUID, date time.Time) (*hr.Attendance, error) {
	var attendance hr.Attendance
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND employee_id = ? AND date = ?", tenantID, employeeID, truncateToDay(date)).
		First(&attendance).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &attendance, nil
}

// ExistsForEmployeeOnDate checks whether the employee already has a record for the day
func (r *GormAttendanceRepository) ExistsForEmployeeOnDate(ctx context.Context, tenantID, employeeID uuid.UUID, date time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&hr.Attendance{}).
		Where("tenant_id = ? AND employee_id = ? AND date = ?", tenantID, employeeID, truncateToDay(date)).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Save creates or updates an attendance record
func (r *GormAttendanceRepository) Save(ctx context.Context, attendance *hr.Attendance) error {
	return r.db.WithContext(ctx).Save(attendance).Error
}

// SaveWithLock saves an attendance record with optimistic locking (version check)
func (r *GormAttendanceRepository) SaveWithLock(ctx context.Context, attendance *hr.Attendance) error {
	result := r.db.WithContext(ctx).Model(&hr.Attendance{}).
		Where("id = ? AND version = ?", attendance.ID, attendance.Version-1).
		Select("*").
		Updates(attendance)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NewDomainError("OPTIMISTIC_LOCK_ERROR", "The attendance record has been modified by another transaction")
	}
	return nil
}

// DeleteForTenant deletes an attendance record within a tenant
func (r *GormAttendanceRepository) DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&hr.Attendance{}, "tenant_id = ? AND id = ?", tenantID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// CountForTenant counts attendance records for a tenant matching the filter
func (r *GormAttendanceRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&hr.Attendance{}).Where("tenant_id = ?", tenantID)
	query = r.applyFilterWithoutPagination(query, filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormAttendanceRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, AttendanceSortFields, "date")
	query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir)).Order("id ASC")

	return query
}

func (r *GormAttendanceRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	for key, value := range filter.Filters {
		switch key {
		case "employee_id":
			query = query.Where("employee_id = ?", value)
		case "type_tag_id":
			query = query.Where("type_tag_id = ?", value)
		case "date_from":
			query = query.Where("date >= ?", value)
		case "date_until":
			query = query.Where("date <= ?", value)
		}
	}

	return query
}

// Ensure GormAttendanceRepository implements AttendanceRepository
var _ hr.AttendanceRepository = (*GormAttendanceRepository)(nil)
