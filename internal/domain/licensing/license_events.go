package licensing

import (
	"github.com/google/uuid"
	"github.com/intranet/erp-backend/internal/domain/shared"
)

const (
	AggregateTypeLicense = "License"

	EventTypeLicenseCreated = "LicenseCreated"
	EventTypeLicenseUpdated = "LicenseUpdated"
	EventTypeLicenseDeleted = "LicenseDeleted"
)

// LicenseCreatedEvent is raised when a license is created
type LicenseCreatedEvent struct {
	shared.BaseDomainEvent
	Name      string    `json:"name"`
	ProjectID uuid.UUID `json:"project_id"`
}

func NewLicenseCreatedEvent(license *License) *LicenseCreatedEvent {
	return &LicenseCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(
			EventTypeLicenseCreated,
			AggregateTypeLicense,
			license.ID,
			license.TenantID,
		),
		Name:      license.Name,
		ProjectID: license.ProjectID,
	}
}
