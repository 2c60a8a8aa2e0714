package collab

import (
	"context"

	"github.com/google/uuid"
	"github.com/intranet/erp-backend/internal/domain/collab"
	"github.com/intranet/erp-backend/internal/domain/shared"
)

// AttachmentLinker binds pending uploads to an owning record
type AttachmentLinker interface {
	LinkPending(ctx context.Context, tenantID uuid.UUID, ownerType string, ownerID uuid.UUID, fileIDs []uuid.UUID) error
	ReleaseOwner(ctx context.Context, tenantID uuid.UUID, ownerType string, ownerID uuid.UUID) error
}

// MeetingService manages meetings, their minutes and responsibles
type MeetingService struct {
	meetingRepo collab.MeetingRepository
	linker      AttachmentLinker
	eventBus    shared.EventPublisher
}

// NewMeetingService creates a new MeetingService
func NewMeetingService(meetingRepo collab.MeetingRepository, linker AttachmentLinker, eventBus shared.EventPublisher) *MeetingService {
	return &MeetingService{
		meetingRepo: meetingRepo,
		linker:      linker,
		eventBus:    eventBus,
	}
}

// Create schedules a new meeting
func (s *MeetingService) Create(ctx context.Context, tenantID uuid.UUID, req MeetingRequest) (*MeetingResponse, error) {
	meeting, err := collab.NewMeeting(tenantID, req.toDraft())
	if err != nil {
		return nil, err
	}

	if err := s.meetingRepo.Save(ctx, meeting); err != nil {
		return nil, err
	}

	if err := s.linkFiles(ctx, tenantID, meeting.ID, req.PendingFileIDs); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, meeting)

	response := ToMeetingResponse(meeting)
	return &response, nil
}

// GetByID retrieves a meeting by ID
func (s *MeetingService) GetByID(ctx context.Context, tenantID, meetingID uuid.UUID) (*MeetingResponse, error) {
	meeting, err := s.meetingRepo.FindByIDForTenant(ctx, tenantID, meetingID)
	if err != nil {
		return nil, err
	}

	response := ToMeetingResponse(meeting)
	return &response, nil
}

// List retrieves meetings with filtering and pagination
func (s *MeetingService) List(ctx context.Context, tenantID uuid.UUID, filter MeetingListFilter) ([]MeetingResponse, int64, error) {
	domainFilter := buildMeetingFilter(filter)

	meetings, err := s.meetingRepo.FindAllForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.meetingRepo.CountForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToMeetingResponses(meetings), total, nil
}

// Calendar retrieves meetings starting within the given range
func (s *MeetingService) Calendar(ctx context.Context, tenantID uuid.UUID, filter CalendarFilter) ([]MeetingResponse, error) {
	if !filter.Until.After(filter.From) {
		return nil, shared.NewDomainError("INVALID_TIME_RANGE", "Range end must be after range start")
	}

	meetings, err := s.meetingRepo.FindBetween(ctx, tenantID, filter.From, filter.Until)
	if err != nil {
		return nil, err
	}

	responses := make([]MeetingResponse, 0, len(meetings))
	for _, meeting := range meetings {
		responses = append(responses, ToMeetingResponse(meeting))
	}
	return responses, nil
}

// Update replaces a meeting's editable fields, including the responsible set
func (s *MeetingService) Update(ctx context.Context, tenantID, meetingID uuid.UUID, req MeetingRequest) (*MeetingResponse, error) {
	meeting, err := s.meetingRepo.FindByIDForTenant(ctx, tenantID, meetingID)
	if err != nil {
		return nil, err
	}

	if err := meeting.Update(req.toDraft()); err != nil {
		return nil, err
	}

	if err := s.meetingRepo.SaveWithLock(ctx, meeting); err != nil {
		return nil, err
	}

	if err := s.linkFiles(ctx, tenantID, meeting.ID, req.PendingFileIDs); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, meeting)

	response := ToMeetingResponse(meeting)
	return &response, nil
}

// Delete removes a meeting
func (s *MeetingService) Delete(ctx context.Context, tenantID, meetingID uuid.UUID) error {
	if _, err := s.meetingRepo.FindByIDForTenant(ctx, tenantID, meetingID); err != nil {
		return err
	}

	if err := s.meetingRepo.DeleteForTenant(ctx, tenantID, meetingID); err != nil {
		return err
	}

	return s.releaseFiles(ctx, tenantID, meetingID)
}

func (s *MeetingService) linkFiles(ctx context.Context, tenantID, meetingID uuid.UUID, fileIDs []uuid.UUID) error {
	if len(fileIDs) == 0 || s.linker == nil {
		return nil
	}
	return s.linker.LinkPending(ctx, tenantID, "meeting", meetingID, fileIDs)
}

func (s *MeetingService) releaseFiles(ctx context.Context, tenantID, meetingID uuid.UUID) error {
	if s.linker == nil {
		return nil
	}
	return s.linker.ReleaseOwner(ctx, tenantID, "meeting", meetingID)
}

func (s *MeetingService) publishEvents(ctx context.Context, meeting *collab.Meeting) {
	if s.eventBus == nil {
		return
	}
	_ = s.eventBus.Publish(ctx, meeting.GetDomainEvents()...)
	meeting.ClearDomainEvents()
}

func buildMeetingFilter(filter MeetingListFilter) shared.Filter {
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
	domainFilter.Search = filter.Search
	if filter.OrganizerID != "" {
		domainFilter.Filters["organizer_id"] = filter.OrganizerID
	}
	if filter.StatusTagID != "" {
		domainFilter.Filters["status_tag_id"] = filter.StatusTagID
	}
	return domainFilter
}
