package workflow

import (
	"time"

	"github.com/google/uuid"
	"github.com/intranet/erp-backend/internal/domain/workflow"
)

// CreateApprovalRequest represents a request to open an approval
type CreateApprovalRequest struct {
	Title          string      `json:"title" binding:"required,min=1,max=200"`
	Description    string      `json:"description"`
	AllApprovers   bool        `json:"all_approvers"`
	PriorityTagID  *uuid.UUID  `json:"priority_tag_id"`
	ApproverIDs    []uuid.UUID `json:"approver_ids" binding:"required,min=1"`
	PendingFileIDs []uuid.UUID `json:"pending_file_ids"`
}

// UpdateApprovalRequest represents a full replace of an unresolved approval
type UpdateApprovalRequest struct {
	Title          string      `json:"title" binding:"required,min=1,max=200"`
	Description    string      `json:"description"`
	AllApprovers   bool        `json:"all_approvers"`
	PriorityTagID  *uuid.UUID  `json:"priority_tag_id"`
	ApproverIDs    []uuid.UUID `json:"approver_ids" binding:"required,min=1"`
	PendingFileIDs []uuid.UUID `json:"pending_file_ids"`
}

// DecideRequest represents one approver's vote
type DecideRequest struct {
	Approve *bool  `json:"approve" binding:"required"`
	Comment string `json:"comment"`
}

// ApproverResponse represents one approver's state in API responses
type ApproverResponse struct {
	UserID    uuid.UUID  `json:"user_id"`
	Status    string     `json:"status"`
	Comment   string     `json:"comment,omitempty"`
	DecidedAt *time.Time `json:"decided_at,omitempty"`
}

// ApprovalResponse represents an approval in API responses
type ApprovalResponse struct {
	ID            uuid.UUID          `json:"id"`
	Title         string             `json:"title"`
	Description   string             `json:"description"`
	Status        string             `json:"status"`
	AllApprovers  bool               `json:"all_approvers"`
	PriorityTagID *uuid.UUID         `json:"priority_tag_id,omitempty"`
	ResolvedAt    *time.Time         `json:"resolved_at,omitempty"`
	Approvers     []ApproverResponse `json:"approvers"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
	Version       int                `json:"version"`
}

// ApprovalListFilter represents filter options for the approval list
type ApprovalListFilter struct {
	Search        string `form:"search"`
	Status        string `form:"status" binding:"omitempty,oneof=PENDING APPROVED REJECTED"`
	PriorityTagID string `form:"priority_tag_id" binding:"omitempty,uuid"`
	Page          int    `form:"page" binding:"omitempty,min=1"`
	PageSize      int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy       string `form:"order_by"`
	OrderDir      string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToApprovalResponse maps a domain approval to its response representation
func ToApprovalResponse(approval *workflow.Approval) ApprovalResponse {
	approvers := make([]ApproverResponse, 0, len(approval.Approvers))
	for i := range approval.Approvers {
		approver := &approval.Approvers[i]
		approvers = append(approvers, ApproverResponse{
			UserID:    approver.UserID,
			Status:    approver.Status.String(),
			Comment:   approver.Comment,
			DecidedAt: approver.DecidedAt,
		})
	}

	return ApprovalResponse{
		ID:            approval.ID,
		Title:         approval.Title,
		Description:   approval.Description,
		Status:        approval.Status.String(),
		AllApprovers:  approval.AllApprovers,
		PriorityTagID: approval.PriorityTagID,
		ResolvedAt:    approval.ResolvedAt,
		Approvers:     approvers,
		CreatedAt:     approval.CreatedAt,
		UpdatedAt:     approval.UpdatedAt,
		Version:       approval.Version,
	}
}

// ToApprovalResponses maps a slice of domain approvals
func ToApprovalResponses(approvals []workflow.Approval) []ApprovalResponse {
	responses := make([]ApprovalResponse, 0, len(approvals))
	for i := range approvals {
		responses = append(responses, ToApprovalResponse(&approvals[i]))
	}
	return responses
}
