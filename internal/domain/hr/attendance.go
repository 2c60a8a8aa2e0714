package hr

import (
	"time"

	"github.com/google/uuid"
	"github.com/intranet/erp-backend/internal/domain/shared"
)

// Attendance records a single day of presence for an employee
type Attendance struct {
	shared.TenantAggregateRoot
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_attendances_employee_date"`
	Date       time.Time `gorm:"type:date;not null;uniqueIndex:idx_attendances_employee_date"`
	CheckIn    *time.Time
	CheckOut   *time.Time
	TypeTagID  *uuid.UUID `gorm:"type:uuid"`
	Notes      string     `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Attendance) TableName() string {
	return "hr_attendances"
}

// AttendanceDraft carries the full editable field set of an attendance record
type AttendanceDraft struct {
	EmployeeID uuid.UUID
	Date       time.Time
	CheckIn    *time.Time
	CheckOut   *time.Time
	TypeTagID  *uuid.UUID
	Notes      string
}

// NewAttendance creates a new attendance record
func NewAttendance(tenantID uuid.UUID, draft AttendanceDraft) (*Attendance, error) {
	if tenantID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_TENANT_ID", "Tenant ID cannot be empty")
	}
	if err := validateAttendanceDraft(draft); err != nil {
		return nil, err
	}

	attendance := &Attendance{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
	}
	attendance.apply(draft)

	return attendance, nil
}

// Update replaces all editable fields with the draft
func (a *Attendance) Update(draft AttendanceDraft) error {
	if err := validateAttendanceDraft(draft); err != nil {
		return err
	}

	a.apply(draft)
	a.UpdatedAt = time.Now()
	a.IncrementVersion()

	return nil
}

func (a *Attendance) apply(draft AttendanceDraft) {
	a.EmployeeID = draft.EmployeeID
	a.Date = truncateToDay(draft.Date)
	a.CheckIn = draft.CheckIn
	a.CheckOut = draft.CheckOut
	a.TypeTagID = draft.TypeTagID
	a.Notes = draft.Notes
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// validation functions

func validateAttendanceDraft(draft AttendanceDraft) error {
	if draft.EmployeeID == uuid.Nil {
		return shared.NewDomainError("INVALID_EMPLOYEE_ID", "Employee ID cannot be empty")
	}
	if draft.Date.IsZero() {
		return shared.NewDomainError("INVALID_DATE", "Date cannot be empty")
	}
	if draft.CheckIn != nil && draft.CheckOut != nil && !draft.CheckOut.After(*draft.CheckIn) {
		return shared.NewDomainError("INVALID_TIME_RANGE", "Check-out must be after check-in")
	}
	return nil
}
