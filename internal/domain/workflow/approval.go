package workflow

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/intranet/erp-backend/internal/domain/shared"
)

// ApprovalStatus represents the overall status of an approval request
type ApprovalStatus string

const (
	ApprovalStatusPending  ApprovalStatus = "PENDING"
	ApprovalStatusApproved ApprovalStatus = "APPROVED"
	ApprovalStatusRejected ApprovalStatus = "REJECTED"
)

// IsValid checks if the status is a valid ApprovalStatus
func (s ApprovalStatus) IsValid() bool {
	switch s {
	case ApprovalStatusPending, ApprovalStatusApproved, ApprovalStatusRejected:
		return true
	}
	return false
}

// String returns the string representation of ApprovalStatus
func (s ApprovalStatus) String() string {
	return string(s)
}

// IsTerminal returns true if the approval has been resolved
func (s ApprovalStatus) IsTerminal() bool {
	return s == ApprovalStatusApproved || s == ApprovalStatusRejected
}

// ApproverStatus represents an individual approver's decision
type ApproverStatus string

const (
	ApproverStatusPending  ApproverStatus = "PENDING"
	ApproverStatusApproved ApproverStatus = "APPROVED"
	ApproverStatusRejected ApproverStatus = "REJECTED"
)

// String returns the string representation of ApproverStatus
func (s ApproverStatus) String() string {
	return string(s)
}

// Approver is a sub-entity of Approval recording one user's vote
type Approver struct {
	shared.BaseEntity
	ApprovalID uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_approvers_approval_user,priority:1"`
	UserID     uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_approvers_approval_user,priority:2"`
	Status     ApproverStatus `gorm:"type:varchar(20);not null;default:'PENDING'"`
	Comment    string         `gorm:"type:text"`
	DecidedAt  *time.Time
}

// TableName returns the table name for GORM
func (Approver) TableName() string {
	return "workflow_approvers"
}

// HasDecided returns true once the approver has voted
func (a *Approver) HasDecided() bool {
	return a.Status != ApproverStatusPending
}

// Approval is the aggregate root for an approval request. The overall
// status is always computed server-side from the approver votes; clients
// only submit individual decisions.
type Approval struct {
	shared.TenantAggregateRoot
	Title         string         `gorm:"type:varchar(200);not null"`
	Description   string         `gorm:"type:text"`
	Status        ApprovalStatus `gorm:"type:varchar(20);not null;default:'PENDING';index"`
	AllApprovers  bool           `gorm:"not null;default:false"` // unanimous approval required
	PriorityTagID *uuid.UUID     `gorm:"type:uuid"`
	ResolvedAt    *time.Time
	Approvers     []Approver `gorm:"foreignKey:ApprovalID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (Approval) TableName() string {
	return "workflow_approvals"
}

// NewApproval creates a new pending approval request
func NewApproval(
	tenantID uuid.UUID,
	title, description string,
	allApprovers bool,
	priorityTagID *uuid.UUID,
	approverIDs []uuid.UUID,
) (*Approval, error) {
	if tenantID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_TENANT_ID", "Tenant ID cannot be empty")
	}
	if err := validateApprovalTitle(title); err != nil {
		return nil, err
	}
	if err := validateApproverIDs(approverIDs); err != nil {
		return nil, err
	}

	approval := &Approval{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Title:               strings.TrimSpace(title),
		Description:         description,
		Status:              ApprovalStatusPending,
		AllApprovers:        allApprovers,
		PriorityTagID:       priorityTagID,
	}
	approval.Approvers = buildApprovers(approval.ID, approverIDs)

	approval.AddDomainEvent(NewApprovalCreatedEvent(approval))

	return approval, nil
}

// Decide records one approver's vote and recomputes the overall status.
// A user may decide at most once, and no decision is accepted after the
// approval has been resolved.
func (a *Approval) Decide(userID uuid.UUID, approve bool, comment string) error {
	if a.Status.IsTerminal() {
		return shared.NewDomainError("INVALID_STATE",
			fmt.Sprintf("Approval is already %s", strings.ToLower(a.Status.String())))
	}
	if userID == uuid.Nil {
		return shared.NewDomainError("INVALID_USER", "Approver user ID cannot be empty")
	}

	approver := a.findApprover(userID)
	if approver == nil {
		return shared.NewDomainError("NOT_AN_APPROVER", "User is not an approver of this request")
	}
	if approver.HasDecided() {
		return shared.NewDomainError("INVALID_STATE", "Approver has already decided")
	}

	now := time.Now()
	if approve {
		approver.Status = ApproverStatusApproved
	} else {
		approver.Status = ApproverStatusRejected
	}
	approver.Comment = comment
	approver.DecidedAt = &now
	approver.UpdatedAt = now

	a.recomputeStatus(now)
	a.UpdatedAt = now
	a.IncrementVersion()

	a.AddDomainEvent(NewApprovalDecidedEvent(a, userID, approver.Status))
	if a.Status.IsTerminal() {
		a.AddDomainEvent(NewApprovalResolvedEvent(a))
	}

	return nil
}

// recomputeStatus derives the overall status from the approver votes.
//
// When every approver is required (AllApprovers), any rejection resolves the
// request immediately and approval needs a unanimous vote. Otherwise the
// request stays pending until everyone has voted and resolves to approved
// if at least one approver approved.
func (a *Approval) recomputeStatus(now time.Time) {
	var approved, rejected, pending int
	for i := range a.Approvers {
		switch a.Approvers[i].Status {
		case ApproverStatusApproved:
			approved++
		case ApproverStatusRejected:
			rejected++
		default:
			pending++
		}
	}

	if a.AllApprovers {
		if rejected > 0 {
			a.resolve(ApprovalStatusRejected, now)
			return
		}
		if pending == 0 {
			a.resolve(ApprovalStatusApproved, now)
		}
		return
	}

	if pending > 0 {
		return
	}
	if approved > 0 {
		a.resolve(ApprovalStatusApproved, now)
	} else {
		a.resolve(ApprovalStatusRejected, now)
	}
}

func (a *Approval) resolve(status ApprovalStatus, now time.Time) {
	a.Status = status
	a.ResolvedAt = &now
}

// Update replaces the editable fields and the approver set. Decisions of
// approvers retained in the new set are preserved; new approvers start
// pending. Updates are rejected once the approval is resolved.
func (a *Approval) Update(
	title, description string,
	allApprovers bool,
	priorityTagID *uuid.UUID,
	approverIDs []uuid.UUID,
) error {
	if a.Status.IsTerminal() {
		return shared.NewDomainError("INVALID_STATE", "Cannot update a resolved approval")
	}
	if err := validateApprovalTitle(title); err != nil {
		return err
	}
	if err := validateApproverIDs(approverIDs); err != nil {
		return err
	}

	existing := make(map[uuid.UUID]Approver, len(a.Approvers))
	for _, approver := range a.Approvers {
		existing[approver.UserID] = approver
	}

	approvers := make([]Approver, 0, len(approverIDs))
	for _, userID := range approverIDs {
		if prev, ok := existing[userID]; ok {
			approvers = append(approvers, prev)
			continue
		}
		approvers = append(approvers, newApprover(a.ID, userID))
	}

	now := time.Now()
	a.Title = strings.TrimSpace(title)
	a.Description = description
	a.AllApprovers = allApprovers
	a.PriorityTagID = priorityTagID
	a.Approvers = approvers
	a.recomputeStatus(now)
	a.UpdatedAt = now
	a.IncrementVersion()

	a.AddDomainEvent(NewApprovalUpdatedEvent(a))

	return nil
}

// CanModify returns true while the approval accepts updates and deletion
func (a *Approval) CanModify() bool {
	return !a.Status.IsTerminal()
}

// PendingApproverIDs returns the users who have not voted yet
func (a *Approval) PendingApproverIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0)
	for i := range a.Approvers {
		if !a.Approvers[i].HasDecided() {
			ids = append(ids, a.Approvers[i].UserID)
		}
	}
	return ids
}

func (a *Approval) findApprover(userID uuid.UUID) *Approver {
	for i := range a.Approvers {
		if a.Approvers[i].UserID == userID {
			return &a.Approvers[i]
		}
	}
	return nil
}

func buildApprovers(approvalID uuid.UUID, userIDs []uuid.UUID) []Approver {
	approvers := make([]Approver, 0, len(userIDs))
	for _, userID := range userIDs {
		approvers = append(approvers, newApprover(approvalID, userID))
	}
	return approvers
}

func newApprover(approvalID, userID uuid.UUID) Approver {
	return Approver{
		BaseEntity: shared.NewBaseEntity(),
		ApprovalID: approvalID,
		UserID:     userID,
		Status:     ApproverStatusPending,
	}
}

// validation functions

func validateApprovalTitle(title string) error {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return shared.NewDomainError("INVALID_TITLE", "Title cannot be empty")
	}
	if len(trimmed) > 200 {
		return shared.NewDomainError("INVALID_TITLE", "Title cannot exceed 200 characters")
	}
	return nil
}

func validateApproverIDs(ids []uuid.UUID) error {
	if len(ids) == 0 {
		return shared.NewDomainError("INVALID_APPROVERS", "At least one approver is required")
	}
	seen := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			return shared.NewDomainError("INVALID_APPROVERS", "Approver user ID cannot be empty")
		}
		if seen[id] {
			return shared.NewDomainError("INVALID_APPROVERS", "Duplicate approver user ID")
		}
		seen[id] = true
	}
	return nil
}
