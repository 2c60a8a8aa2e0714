package crm

import (
	"time"

	"github.com/google/uuid"
	"github.com/intranet/erp-backend/internal/domain/crm"
)

// ContactRequest carries the full editable field set of a contact.
// Create and update both replace every field.
type ContactRequest struct {
	Name           string      `json:"name" binding:"required,min=1,max=200"`
	Company        string      `json:"company" binding:"omitempty,max=200"`
	Position       string      `json:"position" binding:"omitempty,max=100"`
	Phone          string      `json:"phone" binding:"omitempty,max=50"`
	Email          string      `json:"email" binding:"omitempty,email"`
	Website        string      `json:"website" binding:"omitempty,max=500"`
	Notes          string      `json:"notes"`
	SourceTagID    *uuid.UUID  `json:"source_tag_id"`
	StatusTagID    *uuid.UUID  `json:"status_tag_id"`
	PendingFileIDs []uuid.UUID `json:"pending_file_ids"`
}

// ContactResponse represents a contact in API responses
type ContactResponse struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Company     string     `json:"company"`
	Position    string     `json:"position"`
	Phone       string     `json:"phone"`
	Email       string     `json:"email"`
	Website     string     `json:"website"`
	Notes       string     `json:"notes"`
	SourceTagID *uuid.UUID `json:"source_tag_id,omitempty"`
	StatusTagID *uuid.UUID `json:"status_tag_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	Version     int        `json:"version"`
}

// ContactListFilter represents filter options for the contact list
type ContactListFilter struct {
	Search      string `form:"search"`
	SourceTagID string `form:"source_tag_id" binding:"omitempty,uuid"`
	StatusTagID string `form:"status_tag_id" binding:"omitempty,uuid"`
	Page        int    `form:"page" binding:"omitempty,min=1"`
	PageSize    int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy     string `form:"order_by"`
	OrderDir    string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

func (r ContactRequest) toDraft() crm.ContactDraft {
	return crm.ContactDraft{
		Name:        r.Name,
		Company:     r.Company,
		Position:    r.Position,
		Phone:       r.Phone,
		Email:       r.Email,
		Website:     r.Website,
		Notes:       r.Notes,
		SourceTagID: r.SourceTagID,
		StatusTagID: r.StatusTagID,
	}
}

// ToContactResponse maps a domain contact to its response representation
func ToContactResponse(contact *crm.Contact) ContactResponse {
	return ContactResponse{
		ID:          contact.ID,
		Name:        contact.Name,
		Company:     contact.Company,
		Position:    contact.Position,
		Phone:       contact.Phone,
		Email:       contact.Email,
		Website:     contact.Website,
		Notes:       contact.Notes,
		SourceTagID: contact.SourceTagID,
		StatusTagID: contact.StatusTagID,
		CreatedAt:   contact.CreatedAt,
		UpdatedAt:   contact.UpdatedAt,
		Version:     contact.Version,
	}
}

// ToContactResponses maps a slice of domain contacts
func ToContactResponses(contacts []crm.Contact) []ContactResponse {
	responses := make([]ContactResponse, 0, len(contacts))
	for i := range contacts {
		responses = append(responses, ToContactResponse(&contacts[i]))
	}
	return responses
}
