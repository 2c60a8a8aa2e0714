package workflow

import (
	"github.com/google/uuid"
	"github.com/intranet/erp-backend/internal/domain/shared"
)

// Aggregate type constant
const AggregateTypeApproval = "Approval"

// Event type constants
const (
	EventTypeApprovalCreated  = "ApprovalCreated"
	EventTypeApprovalUpdated  = "ApprovalUpdated"
	EventTypeApprovalDecided  = "ApprovalDecided"
	EventTypeApprovalResolved = "ApprovalResolved"
)

// ApprovalCreatedEvent is published when a new approval request is created
type ApprovalCreatedEvent struct {
	shared.BaseDomainEvent
	ApprovalID  uuid.UUID   `json:"approval_id"`
	Title       string      `json:"title"`
	ApproverIDs []uuid.UUID `json:"approver_ids"`
}

// NewApprovalCreatedEvent creates a new ApprovalCreatedEvent
func NewApprovalCreatedEvent(approval *Approval) *ApprovalCreatedEvent {
	approverIDs := make([]uuid.UUID, len(approval.Approvers))
	for i, approver := range approval.Approvers {
		approverIDs[i] = approver.UserID
	}
	return &ApprovalCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeApprovalCreated, AggregateTypeApproval, approval.ID, approval.TenantID),
		ApprovalID:      approval.ID,
		Title:           approval.Title,
		ApproverIDs:     approverIDs,
	}
}

// ApprovalUpdatedEvent is published when an approval request is edited
type ApprovalUpdatedEvent struct {
	shared.BaseDomainEvent
	ApprovalID uuid.UUID `json:"approval_id"`
	Title      string    `json:"title"`
}

// NewApprovalUpdatedEvent creates a new ApprovalUpdatedEvent
func NewApprovalUpdatedEvent(approval *Approval) *ApprovalUpdatedEvent {
	return &ApprovalUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeApprovalUpdated, AggregateTypeApproval, approval.ID, approval.TenantID),
		ApprovalID:      approval.ID,
		Title:           approval.Title,
	}
}

// ApprovalDecidedEvent is published when an approver votes
type ApprovalDecidedEvent struct {
	shared.BaseDomainEvent
	ApprovalID uuid.UUID      `json:"approval_id"`
	UserID     uuid.UUID      `json:"user_id"`
	Decision   ApproverStatus `json:"decision"`
	Overall    ApprovalStatus `json:"overall"`
}

// NewApprovalDecidedEvent creates a new ApprovalDecidedEvent
func NewApprovalDecidedEvent(approval *Approval, userID uuid.UUID, decision ApproverStatus) *ApprovalDecidedEvent {
	return &ApprovalDecidedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeApprovalDecided, AggregateTypeApproval, approval.ID, approval.TenantID),
		ApprovalID:      approval.ID,
		UserID:          userID,
		Decision:        decision,
		Overall:         approval.Status,
	}
}

// ApprovalResolvedEvent is published when the overall status becomes terminal
type ApprovalResolvedEvent struct {
	shared.BaseDomainEvent
	ApprovalID uuid.UUID      `json:"approval_id"`
	Status     ApprovalStatus `json:"status"`
}

// NewApprovalResolvedEvent creates a new ApprovalResolvedEvent
func NewApprovalResolvedEvent(approval *Approval) *ApprovalResolvedEvent {
	return &ApprovalResolvedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeApprovalResolved, AggregateTypeApproval, approval.ID, approval.TenantID),
		ApprovalID:      approval.ID,
		Status:          approval.Status,
	}
}
