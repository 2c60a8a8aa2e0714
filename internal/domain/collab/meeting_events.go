package collab

import (
	"time"

	"github.com/intranet/erp-backend/internal/domain/shared"
)

const (
	AggregateTypeMeeting = "Meeting"

	EventTypeMeetingCreated = "MeetingCreated"
	EventTypeMeetingUpdated = "MeetingUpdated"
	EventTypeMeetingDeleted = "MeetingDeleted"
)

// MeetingCreatedEvent is raised when a meeting is scheduled
type MeetingCreatedEvent struct {
	shared.BaseDomainEvent
	Title    string    `json:"title"`
	StartsAt time.Time `json:"starts_at"`
}

func NewMeetingCreatedEvent(meeting *Meeting) *MeetingCreatedEvent {
	return &MeetingCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(
			EventTypeMeetingCreated,
			AggregateTypeMeeting,
			meeting.ID,
			meeting.TenantID,
		),
		Title:    meeting.Title,
		StartsAt: meeting.StartsAt,
	}
}
