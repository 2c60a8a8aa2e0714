package licensing

import (
	"github.com/intranet/erp-backend/internal/domain/shared"
)

const (
	AggregateTypeProject = "Project"

	EventTypeProjectCreated     = "ProjectCreated"
	EventTypeProjectUpdated     = "ProjectUpdated"
	EventTypeProjectActivated   = "ProjectActivated"
	EventTypeProjectDeactivated = "ProjectDeactivated"
)

// ProjectCreatedEvent is raised when a project is created
type ProjectCreatedEvent struct {
	shared.BaseDomainEvent
	Name string `json:"name"`
	Code string `json:"code"`
}

func NewProjectCreatedEvent(project *Project) *ProjectCreatedEvent {
	return &ProjectCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(
			EventTypeProjectCreated,
			AggregateTypeProject,
			project.ID,
			project.TenantID,
		),
		Name: project.Name,
		Code: project.Code,
	}
}

// ProjectUpdatedEvent is raised when a project's fields change
type ProjectUpdatedEvent struct {
	shared.BaseDomainEvent
	Name string `json:"name"`
	Code string `json:"code"`
}

func NewProjectUpdatedEvent(project *Project) *ProjectUpdatedEvent {
	return &ProjectUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(
			EventTypeProjectUpdated,
			AggregateTypeProject,
			project.ID,
			project.TenantID,
		),
		Name: project.Name,
		Code: project.Code,
	}
}

// ProjectActivatedEvent is raised when a project is switched back on
type ProjectActivatedEvent struct {
	shared.BaseDomainEvent
	Name string `json:"name"`
}

func NewProjectActivatedEvent(project *Project) *ProjectActivatedEvent {
	return &ProjectActivatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(
			EventTypeProjectActivated,
			AggregateTypeProject,
			project.ID,
			project.TenantID,
		),
		Name: project.Name,
	}
}

// ProjectDeactivatedEvent is raised when a project is retired
type ProjectDeactivatedEvent struct {
	shared.BaseDomainEvent
	Name string `json:"name"`
}

func NewProjectDeactivatedEvent(project *Project) *ProjectDeactivatedEvent {
	return &ProjectDeactivatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(
			EventTypeProjectDeactivated,
			AggregateTypeProject,
			project.ID,
			project.TenantID,
		),
		Name: project.Name,
	}
}
