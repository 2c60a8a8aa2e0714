package crm

import (
	"github.com/intranet/erp-backend/internal/domain/shared"
)

const (
	AggregateTypeContact = "Contact"

	EventTypeContactCreated = "ContactCreated"
	EventTypeContactUpdated = "ContactUpdated"
	EventTypeContactDeleted = "ContactDeleted"
)

// ContactCreatedEvent is raised when a contact is created
type ContactCreatedEvent struct {
	shared.BaseDomainEvent
	Name    string `json:"name"`
	Company string `json:"company"`
	Email   string `json:"email"`
}

func NewContactCreatedEvent(contact *Contact) *ContactCreatedEvent {
	return &ContactCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(
			EventTypeContactCreated,
			AggregateTypeContact,
			contact.ID,
			contact.TenantID,
		),
		Name:    contact.Name,
		Company: contact.Company,
		Email:   contact.Email,
	}
}

// ContactDeletedEvent is raised when a contact is deleted
type ContactDeletedEvent struct {
	shared.BaseDomainEvent
	Name string `json:"name"`
}

func NewContactDeletedEvent(contact *Contact) *ContactDeletedEvent {
	return &ContactDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(
			EventTypeContactDeleted,
			AggregateTypeContact,
			contact.ID,
			contact.TenantID,
		),
		Name: contact.Name,
	}
}
