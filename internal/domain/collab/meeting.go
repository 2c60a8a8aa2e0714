package collab

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/intranet/erp-backend/internal/domain/shared"
)

// MeetingResponsible links a user accountable for meeting follow-up
type MeetingResponsible struct {
	shared.BaseEntity
	MeetingID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_meeting_responsibles_meeting_user"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_meeting_responsibles_meeting_user"`
}

// TableName returns the table name for GORM
func (MeetingResponsible) TableName() string {
	return "collab_meeting_responsibles"
}

// Meeting represents a scheduled meeting with minutes and responsibles
type Meeting struct {
	shared.TenantAggregateRoot
	Title        string               `gorm:"type:varchar(200);not null"`
	Agenda       string               `gorm:"type:text"`
	Location     string               `gorm:"type:varchar(200)"`
	StartsAt     time.Time            `gorm:"not null;index"`
	EndsAt       time.Time            `gorm:"not null"`
	OrganizerID  uuid.UUID            `gorm:"type:uuid;not null"`
	Minutes      string               `gorm:"type:text"`
	StatusTagID  *uuid.UUID           `gorm:"type:uuid"`
	Responsibles []MeetingResponsible `gorm:"foreignKey:MeetingID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (Meeting) TableName() string {
	return "collab_meetings"
}

// MeetingDraft carries the full editable field set of a meeting
type MeetingDraft struct {
	Title          string
	Agenda         string
	Location       string
	StartsAt       time.Time
	EndsAt         time.Time
	OrganizerID    uuid.UUID
	Minutes        string
	StatusTagID    *uuid.UUID
	ResponsibleIDs []uuid.UUID
}

// NewMeeting creates a new meeting
func NewMeeting(tenantID uuid.UUID, draft MeetingDraft) (*Meeting, error) {
	if tenantID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_TENANT_ID", "Tenant ID cannot be empty")
	}
	if err := validateMeetingDraft(draft); err != nil {
		return nil, err
	}

	meeting := &Meeting{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
	}
	meeting.apply(draft)

	meeting.AddDomainEvent(NewMeetingCreatedEvent(meeting))

	return meeting, nil
}

// Update replaces all editable fields with the draft, including the
// responsible set.
func (m *Meeting) Update(draft MeetingDraft) error {
	if err := validateMeetingDraft(draft); err != nil {
		return err
	}

	m.apply(draft)
	m.UpdatedAt = time.Now()
	m.IncrementVersion()

	return nil
}

// ResponsibleIDs returns the user IDs of all responsibles
func (m *Meeting) ResponsibleIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(m.Responsibles))
	for _, r := range m.Responsibles {
		ids = append(ids, r.UserID)
	}
	return ids
}

func (m *Meeting) apply(draft MeetingDraft) {
	m.Title = strings.TrimSpace(draft.Title)
	m.Agenda = draft.Agenda
	m.Location = strings.TrimSpace(draft.Location)
	m.StartsAt = draft.StartsAt
	m.EndsAt = draft.EndsAt
	m.OrganizerID = draft.OrganizerID
	m.Minutes = draft.Minutes
	m.StatusTagID = draft.StatusTagID

	// Preserve sub-entity rows for retained users so their IDs stay stable.
	existing := make(map[uuid.UUID]MeetingResponsible, len(m.Responsibles))
	for _, r := range m.Responsibles {
		existing[r.UserID] = r
	}
	responsibles := make([]MeetingResponsible, 0, len(draft.ResponsibleIDs))
	for _, userID := range draft.ResponsibleIDs {
		if prev, ok := existing[userID]; ok {
			responsibles = append(responsibles, prev)
			continue
		}
		responsibles = append(responsibles, MeetingResponsible{
			BaseEntity: shared.NewBaseEntity(),
			MeetingID:  m.ID,
			UserID:     userID,
		})
	}
	m.Responsibles = responsibles
}

// validation functions

func validateMeetingDraft(draft MeetingDraft) error {
	title := strings.TrimSpace(draft.Title)
	if title == "" {
		return shared.NewDomainError("INVALID_TITLE", "Title cannot be empty")
	}
	if len(title) > 200 {
		return shared.NewDomainError("INVALID_TITLE", "Title cannot exceed 200 characters")
	}
	if draft.StartsAt.IsZero() {
		return shared.NewDomainError("INVALID_STARTS_AT", "Start time cannot be empty")
	}
	if !draft.EndsAt.After(draft.StartsAt) {
		return shared.NewDomainError("INVALID_TIME_RANGE", "End time must be after start time")
	}
	if draft.OrganizerID == uuid.Nil {
		return shared.NewDomainError("INVALID_ORGANIZER", "Organizer cannot be empty")
	}
	seen := make(map[uuid.UUID]struct{}, len(draft.ResponsibleIDs))
	for _, userID := range draft.ResponsibleIDs {
		if userID == uuid.Nil {
			return shared.NewDomainError("INVALID_RESPONSIBLE", "Responsible user ID cannot be empty")
		}
		if _, ok := seen[userID]; ok {
			return shared.NewDomainError("DUPLICATE_RESPONSIBLE", "Responsible users must be unique")
		}
		seen[userID] = struct{}{}
	}
	return nil
}
