package workflow

import (
	"context"

	"github.com/google/uuid"
	"github.com/intranet/erp-backend/internal/domain/shared"
	"github.com/intranet/erp-backend/internal/domain/workflow"
)

// AttachmentLinker links pending uploads to their owning record once it exists
type AttachmentLinker interface {
	LinkPending(ctx context.Context, tenantID uuid.UUID, ownerType string, ownerID uuid.UUID, fileIDs []uuid.UUID) error
	ReleaseOwner(ctx context.Context, tenantID uuid.UUID, ownerType string, ownerID uuid.UUID) error
}

// ApprovalService manages approval requests and their voting lifecycle
type ApprovalService struct {
	approvalRepo workflow.ApprovalRepository
	linker       AttachmentLinker
	eventBus     shared.EventPublisher
}

// NewApprovalService creates a new ApprovalService
func NewApprovalService(
	approvalRepo workflow.ApprovalRepository,
	linker AttachmentLinker,
	eventBus shared.EventPublisher,
) *ApprovalService {
	return &ApprovalService{
		approvalRepo: approvalRepo,
		linker:       linker,
		eventBus:     eventBus,
	}
}

// Create opens a new approval request
func (s *ApprovalService) Create(ctx context.Context, tenantID uuid.UUID, req CreateApprovalRequest) (*ApprovalResponse, error) {
	approval, err := workflow.NewApproval(
		tenantID,
		req.Title,
		req.Description,
		req.AllApprovers,
		req.PriorityTagID,
		req.ApproverIDs,
	)
	if err != nil {
		return nil, err
	}

	if err := s.approvalRepo.Save(ctx, approval); err != nil {
		return nil, err
	}

	if err := s.linkFiles(ctx, tenantID, approval.ID, req.PendingFileIDs); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, approval)

	response := ToApprovalResponse(approval)
	return &response, nil
}

// GetByID retrieves an approval with its approver states
func (s *ApprovalService) GetByID(ctx context.Context, tenantID, approvalID uuid.UUID) (*ApprovalResponse, error) {
	approval, err := s.approvalRepo.FindByIDForTenant(ctx, tenantID, approvalID)
	if err != nil {
		return nil, err
	}

	response := ToApprovalResponse(approval)
	return &response, nil
}

// List retrieves approvals with filtering and pagination
func (s *ApprovalService) List(ctx context.Context, tenantID uuid.UUID, filter ApprovalListFilter) ([]ApprovalResponse, int64, error) {
	domainFilter := buildApprovalFilter(filter)

	approvals, err := s.approvalRepo.FindAllForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.approvalRepo.CountForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToApprovalResponses(approvals), total, nil
}

// ListPendingForUser retrieves the approvals still waiting on a user's vote
func (s *ApprovalService) ListPendingForUser(ctx context.Context, tenantID, userID uuid.UUID, filter ApprovalListFilter) ([]ApprovalResponse, error) {
	domainFilter := buildApprovalFilter(filter)

	approvals, err := s.approvalRepo.FindPendingForUser(ctx, tenantID, userID, domainFilter)
	if err != nil {
		return nil, err
	}

	return ToApprovalResponses(approvals), nil
}

// Update replaces an unresolved approval's fields and approver set.
// Votes already cast by retained approvers are preserved.
func (s *ApprovalService) Update(ctx context.Context, tenantID, approvalID uuid.UUID, req UpdateApprovalRequest) (*ApprovalResponse, error) {
	approval, err := s.approvalRepo.FindByIDForTenant(ctx, tenantID, approvalID)
	if err != nil {
		return nil, err
	}

	if err := approval.Update(
		req.Title,
		req.Description,
		req.AllApprovers,
		req.PriorityTagID,
		req.ApproverIDs,
	); err != nil {
		return nil, err
	}

	if err := s.approvalRepo.SaveWithLock(ctx, approval); err != nil {
		return nil, err
	}

	if err := s.linkFiles(ctx, tenantID, approval.ID, req.PendingFileIDs); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, approval)

	response := ToApprovalResponse(approval)
	return &response, nil
}

// Decide records one approver's vote. The overall status is recomputed
// server-side and returned with the updated approval.
func (s *ApprovalService) Decide(ctx context.Context, tenantID, approvalID, userID uuid.UUID, req DecideRequest) (*ApprovalResponse, error) {
	approval, err := s.approvalRepo.FindByIDForTenant(ctx, tenantID, approvalID)
	if err != nil {
		return nil, err
	}

	if err := approval.Decide(userID, *req.Approve, req.Comment); err != nil {
		return nil, err
	}

	if err := s.approvalRepo.SaveWithLock(ctx, approval); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, approval)

	response := ToApprovalResponse(approval)
	return &response, nil
}

// Delete removes an unresolved approval
func (s *ApprovalService) Delete(ctx context.Context, tenantID, approvalID uuid.UUID) error {
	approval, err := s.approvalRepo.FindByIDForTenant(ctx, tenantID, approvalID)
	if err != nil {
		return err
	}

	if !approval.CanModify() {
		return shared.NewDomainError("INVALID_STATE", "Cannot delete a resolved approval")
	}

	if err := s.approvalRepo.DeleteForTenant(ctx, tenantID, approvalID); err != nil {
		return err
	}

	return s.releaseFiles(ctx, tenantID, approvalID)
}

func (s *ApprovalService) linkFiles(ctx context.Context, tenantID, approvalID uuid.UUID, fileIDs []uuid.UUID) error {
	if s.linker == nil || len(fileIDs) == 0 {
		return nil
	}
	return s.linker.LinkPending(ctx, tenantID, "approval", approvalID, fileIDs)
}

func (s *ApprovalService) releaseFiles(ctx context.Context, tenantID, approvalID uuid.UUID) error {
	if s.linker == nil {
		return nil
	}
	return s.linker.ReleaseOwner(ctx, tenantID, "approval", approvalID)
}

func (s *ApprovalService) publishEvents(ctx context.Context, approval *workflow.Approval) {
	if s.eventBus == nil {
		return
	}
	_ = s.eventBus.Publish(ctx, approval.GetDomainEvents()...)
	approval.ClearDomainEvents()
}

func buildApprovalFilter(filter ApprovalListFilter) shared.Filter {
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
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}
	if filter.PriorityTagID != "" {
		domainFilter.Filters["priority_tag_id"] = filter.PriorityTagID
	}
	return domainFilter
}
