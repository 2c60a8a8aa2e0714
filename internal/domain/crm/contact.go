package crm

import (
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/intranet/erp-backend/internal/domain/shared"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Contact represents an external person or company contact
type Contact struct {
	shared.TenantAggregateRoot
	Name        string     `gorm:"type:varchar(200);not null"`
	Company     string     `gorm:"type:varchar(200)"`
	Position    string     `gorm:"type:varchar(100)"`
	Phone       string     `gorm:"type:varchar(50)"`
	Email       string     `gorm:"type:varchar(255)"`
	Website     string     `gorm:"type:varchar(500)"`
	Notes       string     `gorm:"type:text"`
	SourceTagID *uuid.UUID `gorm:"type:uuid"`
	StatusTagID *uuid.UUID `gorm:"type:uuid"`
}

// TableName returns the table name for GORM
func (Contact) TableName() string {
	return "crm_contacts"
}

// ContactDraft carries the full editable field set of a contact.
// Create and update both take the complete draft (full-record replace).
type ContactDraft struct {
	Name        string
	Company     string
	Position    string
	Phone       string
	Email       string
	Website     string
	Notes       string
	SourceTagID *uuid.UUID
	StatusTagID *uuid.UUID
}

// NewContact creates a new contact from a draft
func NewContact(tenantID uuid.UUID, draft ContactDraft) (*Contact, error) {
	if tenantID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_TENANT_ID", "Tenant ID cannot be empty")
	}
	if err := validateContactDraft(draft); err != nil {
		return nil, err
	}

	contact := &Contact{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
	}
	contact.apply(draft)

	contact.AddDomainEvent(NewContactCreatedEvent(contact))

	return contact, nil
}

// Update replaces all editable fields with the draft
func (c *Contact) Update(draft ContactDraft) error {
	if err := validateContactDraft(draft); err != nil {
		return err
	}

	c.apply(draft)
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

func (c *Contact) apply(draft ContactDraft) {
	c.Name = strings.TrimSpace(draft.Name)
	c.Company = strings.TrimSpace(draft.Company)
	c.Position = strings.TrimSpace(draft.Position)
	c.Phone = strings.TrimSpace(draft.Phone)
	c.Email = strings.ToLower(strings.TrimSpace(draft.Email))
	c.Website = strings.TrimSpace(draft.Website)
	c.Notes = draft.Notes
	c.SourceTagID = draft.SourceTagID
	c.StatusTagID = draft.StatusTagID
}

// validation functions

func validateContactDraft(draft ContactDraft) error {
	name := strings.TrimSpace(draft.Name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Name cannot exceed 200 characters")
	}
	if len(draft.Company) > 200 {
		return shared.NewDomainError("INVALID_COMPANY", "Company cannot exceed 200 characters")
	}
	if len(draft.Position) > 100 {
		return shared.NewDomainError("INVALID_POSITION", "Position cannot exceed 100 characters")
	}
	if len(draft.Phone) > 50 {
		return shared.NewDomainError("INVALID_PHONE", "Phone cannot exceed 50 characters")
	}
	if draft.Email != "" && !emailPattern.MatchString(strings.TrimSpace(draft.Email)) {
		return shared.NewDomainError("INVALID_EMAIL", "Email format is not valid")
	}
	if err := validateWebsite(draft.Website); err != nil {
		return err
	}
	return nil
}

func validateWebsite(website string) error {
	trimmed := strings.TrimSpace(website)
	if trimmed == "" {
		return nil
	}
	if len(trimmed) > 500 {
		return shared.NewDomainError("INVALID_WEBSITE", "Website cannot exceed 500 characters")
	}
	parsed, err := url.Parse(trimmed)
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return shared.NewDomainError("INVALID_WEBSITE", "Website must be a valid http(s) URL")
	}
	return nil
}
