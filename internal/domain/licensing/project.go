package licensing

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/intranet/erp-backend/internal/domain/shared"
)

// Project groups licenses under an internal initiative or product
type Project struct {
	shared.TenantAggregateRoot
	Name   string `gorm:"type:varchar(200);not null"`
	Code   string `gorm:"type:varchar(50)"`
	Active bool   `gorm:"default:true"`
}

// TableName returns the table name for GORM
func (Project) TableName() string {
	return "licensing_projects"
}

// NewProject creates a new project
func NewProject(tenantID uuid.UUID, name, code string) (*Project, error) {
	if tenantID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_TENANT_ID", "Tenant ID cannot be empty")
	}
	if err := validateProjectName(name); err != nil {
		return nil, err
	}

	project := &Project{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Name:                strings.TrimSpace(name),
		Code:                strings.ToUpper(strings.TrimSpace(code)),
		Active:              true,
	}
	project.AddDomainEvent(NewProjectCreatedEvent(project))

	return project, nil
}

// Update replaces the editable fields
func (p *Project) Update(name, code string) error {
	if err := validateProjectName(name); err != nil {
		return err
	}

	p.Name = strings.TrimSpace(name)
	p.Code = strings.ToUpper(strings.TrimSpace(code))
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	p.AddDomainEvent(NewProjectUpdatedEvent(p))

	return nil
}

// Deactivate marks the project as inactive
func (p *Project) Deactivate() {
	p.Active = false
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	p.AddDomainEvent(NewProjectDeactivatedEvent(p))
}

// Activate marks the project as active
func (p *Project) Activate() {
	p.Active = true
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	p.AddDomainEvent(NewProjectActivatedEvent(p))
}

func validateProjectName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
	}
	if len(trimmed) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Name cannot exceed 200 characters")
	}
	return nil
}
