package hr

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/intranet/erp-backend/internal/domain/hr"
	"github.com/intranet/erp-backend/internal/domain/shared"
)

// AttachmentLinker binds pending uploads to an owning record
type AttachmentLinker interface {
	LinkPending(ctx context.Context, tenantID uuid.UUID, ownerType string, ownerID uuid.UUID, fileIDs []uuid.UUID) error
	ReleaseOwner(ctx context.Context, tenantID uuid.UUID, ownerType string, ownerID uuid.UUID) error
}

// AttendanceService manages daily attendance records
type AttendanceService struct {
	attendanceRepo hr.AttendanceRepository
	eventBus       shared.EventPublisher
}

// NewAttendanceService creates a new AttendanceService
func NewAttendanceService(attendanceRepo hr.AttendanceRepository, eventBus shared.EventPublisher) *AttendanceService {
	return &AttendanceService{
		attendanceRepo: attendanceRepo,
		eventBus:       eventBus,
	}
}

// Create records an attendance day. An employee can only have one record
// per calendar day.
func (s *AttendanceService) Create(ctx context.Context, tenantID uuid.UUID, req AttendanceRequest) (*AttendanceResponse, error) {
	exists, err := s.attendanceRepo.ExistsForEmployeeOnDate(ctx, tenantID, req.EmployeeID, req.Date)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "An attendance record already exists for this employee on this date")
	}

	attendance, err := hr.NewAttendance(tenantID, req.toDraft())
	if err != nil {
		return nil, err
	}

	if err := s.attendanceRepo.Save(ctx, attendance); err != nil {
		return nil, err
	}

	response := ToAttendanceResponse(attendance)
	return &response, nil
}

// GetByID retrieves an attendance record by ID
func (s *AttendanceService) GetByID(ctx context.Context, tenantID, attendanceID uuid.UUID) (*AttendanceResponse, error) {
	attendance, err := s.attendanceRepo.FindByIDForTenant(ctx, tenantID, attendanceID)
	if err != nil {
		return nil, err
	}

	response := ToAttendanceResponse(attendance)
	return &response, nil
}

// List retrieves attendance records with filtering and pagination
func (s *AttendanceService) List(ctx context.Context, tenantID uuid.UUID, filter AttendanceListFilter) ([]AttendanceResponse, int64, error) {
	domainFilter := buildAttendanceFilter(filter)

	attendances, err := s.attendanceRepo.FindAllForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.attendanceRepo.CountForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToAttendanceResponses(attendances), total, nil
}

// Update replaces an attendance record's editable fields. Moving the record
// to a day the employee already has one is rejected.
func (s *AttendanceService) Update(ctx context.Context, tenantID, attendanceID uuid.UUID, req AttendanceRequest) (*AttendanceResponse, error) {
	attendance, err := s.attendanceRepo.FindByIDForTenant(ctx, tenantID, attendanceID)
	if err != nil {
		return nil, err
	}

	if !sameDay(attendance.Date, req.Date) || attendance.EmployeeID != req.EmployeeID {
		exists, err := s.attendanceRepo.ExistsForEmployeeOnDate(ctx, tenantID, req.EmployeeID, req.Date)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "An attendance record already exists for this employee on this date")
		}
	}

	if err := attendance.Update(req.toDraft()); err != nil {
		return nil, err
	}

	if err := s.attendanceRepo.SaveWithLock(ctx, attendance); err != nil {
		return nil, err
	}

	response := ToAttendanceResponse(attendance)
	return &response, nil
}

// Delete removes an attendance record
func (s *AttendanceService) Delete(ctx context.Context, tenantID, attendanceID uuid.UUID) error {
	if _, err := s.attendanceRepo.FindByIDForTenant(ctx, tenantID, attendanceID); err != nil {
		return err
	}

	return s.attendanceRepo.DeleteForTenant(ctx, tenantID, attendanceID)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func buildAttendanceFilter(filter AttendanceListFilter) shared.Filter {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	if domainFilter.PageSize > 100 {
		domainFilter.PageSize = 100
	}
	if filter.OrderBy != "" {
		domainFilter.OrderBy = filter.OrderBy
	}
	if filter.OrderDir != "" {
		domainFilter.OrderDir = filter.OrderDir
	}
	if filter.EmployeeID != "" {
		domainFilter.Filters["employee_id"] = filter.EmployeeID
	}
	if filter.TypeTagID != "" {
		domainFilter.Filters["type_tag_id"] = filter.TypeTagID
	}
	return domainFilter
}
