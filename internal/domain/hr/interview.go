package hr

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/intranet/erp-backend/internal/domain/shared"
)

var candidateEmailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Interview tracks a candidate interview round
type Interview struct {
	shared.TenantAggregateRoot
	CandidateName  string     `gorm:"type:varchar(200);not null"`
	CandidateEmail string     `gorm:"type:varchar(255)"`
	Position       string     `gorm:"type:varchar(150)"`
	InterviewerID  *uuid.UUID `gorm:"type:uuid"`
	ScheduledAt    *time.Time `gorm:"index"`
	StageTagID     *uuid.UUID `gorm:"type:uuid"`
	Score          *int
	Feedback       string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Interview) TableName() string {
	return "hr_interviews"
}

// InterviewDraft carries the full editable field set of an interview
type InterviewDraft struct {
	CandidateName  string
	CandidateEmail string
	Position       string
	InterviewerID  *uuid.UUID
	ScheduledAt    *time.Time
	StageTagID     *uuid.UUID
	Score          *int
	Feedback       string
}

// NewInterview creates a new interview record
func NewInterview(tenantID uuid.UUID, draft InterviewDraft) (*Interview, error) {
	if tenantID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_TENANT_ID", "Tenant ID cannot be empty")
	}
	if err := validateInterviewDraft(draft); err != nil {
		return nil, err
	}

	interview := &Interview{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
	}
	interview.apply(draft)

	return interview, nil
}

// Update replaces all editable fields with the draft
func (i *Interview) Update(draft InterviewDraft) error {
	if err := validateInterviewDraft(draft); err != nil {
		return err
	}

	i.apply(draft)
	i.UpdatedAt = time.Now()
	i.IncrementVersion()

	return nil
}

func (i *Interview) apply(draft InterviewDraft) {
	i.CandidateName = strings.TrimSpace(draft.CandidateName)
	i.CandidateEmail = strings.ToLower(strings.TrimSpace(draft.CandidateEmail))
	i.Position = strings.TrimSpace(draft.Position)
	i.InterviewerID = draft.InterviewerID
	i.ScheduledAt = draft.ScheduledAt
	i.StageTagID = draft.StageTagID
	i.Score = draft.Score
	i.Feedback = draft.Feedback
}

// validation functions

func validateInterviewDraft(draft InterviewDraft) error {
	name := strings.TrimSpace(draft.CandidateName)
	if name == "" {
		return shared.NewDomainError("INVALID_CANDIDATE_NAME", "Candidate name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_CANDIDATE_NAME", "Candidate name cannot exceed 200 characters")
	}
	email := strings.TrimSpace(draft.CandidateEmail)
	if email != "" && !candidateEmailPattern.MatchString(email) {
		return shared.NewDomainError("INVALID_CANDIDATE_EMAIL", "Candidate email format is not valid")
	}
	if len(draft.Position) > 150 {
		return shared.NewDomainError("INVALID_POSITION", "Position cannot exceed 150 characters")
	}
	if draft.Score != nil && (*draft.Score < 0 || *draft.Score > 10) {
		return shared.NewDomainError("INVALID_SCORE", "Score must be between 0 and 10")
	}
	return nil
}
