package reference

import (
	"github.com/google/uuid"
	"github.com/intranet/erp-backend/internal/domain/shared"
)

// Aggregate type constant
const AggregateTypeTag = "Tag"

// Event type constants
const (
	EventTypeTagCreated = "TagCreated"
	EventTypeTagUpdated = "TagUpdated"
	EventTypeTagDeleted = "TagDeleted"
)

// TagCreatedEvent is published when a new tag is created
type TagCreatedEvent struct {
	shared.BaseDomainEvent
	TagID  uuid.UUID `json:"tag_id"`
	Domain TagDomain `json:"domain"`
	Name   string    `json:"name"`
}

// NewTagCreatedEvent creates a new TagCreatedEvent
func NewTagCreatedEvent(tag *Tag) *TagCreatedEvent {
	return &TagCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeTagCreated, AggregateTypeTag, tag.ID, tag.TenantID),
		TagID:           tag.ID,
		Domain:          tag.Domain,
		Name:            tag.Name,
	}
}

// TagUpdatedEvent is published when a tag is updated, activated or deactivated
type TagUpdatedEvent struct {
	shared.BaseDomainEvent
	TagID  uuid.UUID `json:"tag_id"`
	Domain TagDomain `json:"domain"`
	Name   string    `json:"name"`
	Active bool      `json:"active"`
}

// NewTagUpdatedEvent creates a new TagUpdatedEvent
func NewTagUpdatedEvent(tag *Tag) *TagUpdatedEvent {
	return &TagUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeTagUpdated, AggregateTypeTag, tag.ID, tag.TenantID),
		TagID:           tag.ID,
		Domain:          tag.Domain,
		Name:            tag.Name,
		Active:          tag.Active,
	}
}

// TagDeletedEvent is published when a tag is deleted
type TagDeletedEvent struct {
	shared.BaseDomainEvent
	TagID  uuid.UUID `json:"tag_id"`
	Domain TagDomain `json:"domain"`
}

// NewTagDeletedEvent creates a new TagDeletedEvent
func NewTagDeletedEvent(tag *Tag) *TagDeletedEvent {
	return &TagDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeTagDeleted, AggregateTypeTag, tag.ID, tag.TenantID),
		TagID:           tag.ID,
		Domain:          tag.Domain,
	}
}
