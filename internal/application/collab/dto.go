package collab

import (
	"time"

	"github.com/google/uuid"
	"github.com/intranet/erp-backend/internal/domain/collab"
)

// MeetingRequest carries the full editable field set of a meeting
type MeetingRequest struct {
	Title          string      `json:"title" binding:"required,min=1,max=200"`
	Agenda         string      `json:"agenda"`
	Location       string      `json:"location" binding:"omitempty,max=200"`
	StartsAt       time.Time   `json:"starts_at" binding:"required"`
	EndsAt         time.Time   `json:"ends_at" binding:"required"`
	OrganizerID    uuid.UUID   `json:"organizer_id" binding:"required"`
	Minutes        string      `json:"minutes"`
	StatusTagID    *uuid.UUID  `json:"status_tag_id"`
	ResponsibleIDs []uuid.UUID `json:"responsible_ids"`
	PendingFileIDs []uuid.UUID `json:"pending_file_ids"`
}

// MeetingResponse represents a meeting in API responses
type MeetingResponse struct {
	ID             uuid.UUID   `json:"id"`
	Title          string      `json:"title"`
	Agenda         string      `json:"agenda"`
	Location       string      `json:"location"`
	StartsAt       time.Time   `json:"starts_at"`
	EndsAt         time.Time   `json:"ends_at"`
	OrganizerID    uuid.UUID   `json:"organizer_id"`
	Minutes        string      `json:"minutes"`
	StatusTagID    *uuid.UUID  `json:"status_tag_id,omitempty"`
	ResponsibleIDs []uuid.UUID `json:"responsible_ids"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
	Version        int         `json:"version"`
}

// MeetingListFilter represents filter options for the meeting list
type MeetingListFilter struct {
	Search      string `form:"search"`
	OrganizerID string `form:"organizer_id" binding:"omitempty,uuid"`
	StatusTagID string `form:"status_tag_id" binding:"omitempty,uuid"`
	Page        int    `form:"page" binding:"omitempty,min=1"`
	PageSize    int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy     string `form:"order_by"`
	OrderDir    string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// CalendarFilter bounds a calendar range query
type CalendarFilter struct {
	From  time.Time `form:"from" binding:"required"`
	Until time.Time `form:"until" binding:"required,gtfield=From"`
}

func (r MeetingRequest) toDraft() collab.MeetingDraft {
	return collab.MeetingDraft{
		Title:          r.Title,
		Agenda:         r.Agenda,
		Location:       r.Location,
		StartsAt:       r.StartsAt,
		EndsAt:         r.EndsAt,
		OrganizerID:    r.OrganizerID,
		Minutes:        r.Minutes,
		StatusTagID:    r.StatusTagID,
		ResponsibleIDs: r.ResponsibleIDs,
	}
}

// ToMeetingResponse maps a domain meeting to its response representation
func ToMeetingResponse(meeting *collab.Meeting) MeetingResponse {
	return MeetingResponse{
		ID:             meeting.ID,
		Title:          meeting.Title,
		Agenda:         meeting.Agenda,
		Location:       meeting.Location,
		StartsAt:       meeting.StartsAt,
		EndsAt:         meeting.EndsAt,
		OrganizerID:    meeting.OrganizerID,
		Minutes:        meeting.Minutes,
		StatusTagID:    meeting.StatusTagID,
		ResponsibleIDs: meeting.ResponsibleIDs(),
		CreatedAt:      meeting.CreatedAt,
		UpdatedAt:      meeting.UpdatedAt,
		Version:        meeting.Version,
	}
}

// ToMeetingResponses maps a slice of domain meetings
func ToMeetingResponses(meetings []collab.Meeting) []MeetingResponse {
	responses := make([]MeetingResponse, 0, len(meetings))
	for i := range meetings {
		responses = append(responses, ToMeetingResponse(&meetings[i]))
	}
	return responses
}
