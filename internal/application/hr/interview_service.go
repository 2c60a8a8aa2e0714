package hr

import (
	"context"

	"github.com/google/uuid"
	"github.com/intranet/erp-backend/internal/domain/hr"
	"github.com/intranet/erp-backend/internal/domain/shared"
)

// InterviewService manages candidate interview rounds
type InterviewService struct {
	interviewRepo hr.InterviewRepository
	linker        AttachmentLinker
	eventBus      shared.EventPublisher
}

// NewInterviewService creates a new InterviewService
func NewInterviewService(interviewRepo hr.InterviewRepository, linker AttachmentLinker, eventBus shared.EventPublisher) *InterviewService {
	return &InterviewService{
		interviewRepo: interviewRepo,
		linker:        linker,
		eventBus:      eventBus,
	}
}

// Create registers a new interview
func (s *InterviewService) Create(ctx context.Context, tenantID uuid.UUID, req InterviewRequest) (*InterviewResponse, error) {
	interview, err := hr.NewInterview(tenantID, req.toDraft())
	if err != nil {
		return nil, err
	}

	if err := s.interviewRepo.Save(ctx, interview); err != nil {
		return nil, err
	}

	if err := s.linkFiles(ctx, tenantID, interview.ID, req.PendingFileIDs); err != nil {
		return nil, err
	}

	response := ToInterviewResponse(interview)
	return &response, nil
}

// GetByID retrieves an interview by ID
func (s *InterviewService) GetByID(ctx context.Context, tenantID, interviewID uuid.UUID) (*InterviewResponse, error) {
	interview, err := s.interviewRepo.FindByIDForTenant(ctx, tenantID, interviewID)
	if err != nil {
		return nil, err
	}

	response := ToInterviewResponse(interview)
	return &response, nil
}

// List retrieves interviews with filtering and pagination
func (s *InterviewService) List(ctx context.Context, tenantID uuid.UUID, filter InterviewListFilter) ([]InterviewResponse, int64, error) {
	domainFilter := buildInterviewFilter(filter)

	interviews, err := s.interviewRepo.FindAllForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.interviewRepo.CountForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToInterviewResponses(interviews), total, nil
}

// Update replaces an interview's editable fields
func (s *InterviewService) Update(ctx context.Context, tenantID, interviewID uuid.UUID, req InterviewRequest) (*InterviewResponse, error) {
	interview, err := s.interviewRepo.FindByIDForTenant(ctx, tenantID, interviewID)
	if err != nil {
		return nil, err
	}

	if err := interview.Update(req.toDraft()); err != nil {
		return nil, err
	}

	if err := s.interviewRepo.SaveWithLock(ctx, interview); err != nil {
		return nil, err
	}

	if err := s.linkFiles(ctx, tenantID, interview.ID, req.PendingFileIDs); err != nil {
		return nil, err
	}

	response := ToInterviewResponse(interview)
	return &response, nil
}

// Delete removes an interview
func (s *InterviewService) Delete(ctx context.Context, tenantID, interviewID uuid.UUID) error {
	if _, err := s.interviewRepo.FindByIDForTenant(ctx, tenantID, interviewID); err != nil {
		return err
	}

	if err := s.interviewRepo.DeleteForTenant(ctx, tenantID, interviewID); err != nil {
		return err
	}

	return s.releaseFiles(ctx, tenantID, interviewID)
}

func (s *InterviewService) linkFiles(ctx context.Context, tenantID, interviewID uuid.UUID, fileIDs []uuid.UUID) error {
	if len(fileIDs) == 0 || s.linker == nil {
		return nil
	}
	return s.linker.LinkPending(ctx, tenantID, "interview", interviewID, fileIDs)
}

func (s *InterviewService) releaseFiles(ctx context.Context, tenantID, interviewID uuid.UUID) error {
	if s.linker == nil {
		return nil
	}
	return s.linker.ReleaseOwner(ctx, tenantID, "interview", interviewID)
}

func buildInterviewFilter(filter InterviewListFilter) shared.Filter {
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
	if filter.InterviewerID != "" {
		domainFilter.Filters["interviewer_id"] = filter.InterviewerID
	}
	if filter.StageTagID != "" {
		domainFilter.Filters["stage_tag_id"] = filter.StageTagID
	}
	return domainFilter
}
