package reference

import (
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/intranet/erp-backend/internal/domain/shared"
)

// TagDomain identifies the vocabulary a tag belongs to.
// Each module's select/filter fields reference one of these vocabularies.
type TagDomain string

const (
	TagDomainApprovalPriority  TagDomain = "approval_priority"
	TagDomainContactSource     TagDomain = "contact_source"
	TagDomainContactStatus     TagDomain = "contact_status"
	TagDomainIncomeStatus      TagDomain = "income_status"
	TagDomainAuditStatus       TagDomain = "audit_status"
	TagDomainLicenseStatus     TagDomain = "license_status"
	TagDomainAdChannel         TagDomain = "ad_channel"
	TagDomainAdFormat          TagDomain = "ad_format"
	TagDomainAdStatus          TagDomain = "ad_status"
	TagDomainMeetingStatus     TagDomain = "meeting_status"
	TagDomainAttendanceType    TagDomain = "attendance_type"
	TagDomainContractType      TagDomain = "contract_type"
	TagDomainContractStatus    TagDomain = "contract_status"
	TagDomainInterviewStage    TagDomain = "interview_stage"
	TagDomainKitStatus         TagDomain = "kit_status"
	TagDomainOffboardingReason TagDomain = "offboarding_reason"
	TagDomainOffboardingStatus TagDomain = "offboarding_status"
)

// AllTagDomains lists every known vocabulary
var AllTagDomains = []TagDomain{
	TagDomainApprovalPriority,
	TagDomainContactSource,
	TagDomainContactStatus,
	TagDomainIncomeStatus,
	TagDomainAuditStatus,
	TagDomainLicenseStatus,
	TagDomainAdChannel,
	TagDomainAdFormat,
	TagDomainAdStatus,
	TagDomainMeetingStatus,
	TagDomainAttendanceType,
	TagDomainContractType,
	TagDomainContractStatus,
	TagDomainInterviewStage,
	TagDomainKitStatus,
	TagDomainOffboardingReason,
	TagDomainOffboardingStatus,
}

// IsValid checks if the domain is a known vocabulary
func (d TagDomain) IsValid() bool {
	for _, known := range AllTagDomains {
		if d == known {
			return true
		}
	}
	return false
}

// String returns the string representation of TagDomain
func (d TagDomain) String() string {
	return string(d)
}

var colorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Tag is a configurable reference row (status, type, stage, ...) used by
// the record modules for their select and filter fields.
type Tag struct {
	shared.TenantAggregateRoot
	Domain    TagDomain `gorm:"type:varchar(50);not null;uniqueIndex:idx_tags_tenant_domain_name,priority:2"`
	Name      string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_tags_tenant_domain_name,priority:3"`
	Color     string    `gorm:"type:varchar(7)"` // hex color used by badge rendering
	SortOrder int       `gorm:"not null;default:0"`
	Active    bool      `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (Tag) TableName() string {
	return "reference_tags"
}

// NewTag creates a new tag in a vocabulary
func NewTag(tenantID uuid.UUID, domain TagDomain, name, color string, sortOrder int) (*Tag, error) {
	if tenantID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_TENANT_ID", "Tenant ID cannot be empty")
	}
	if !domain.IsValid() {
		return nil, shared.NewDomainError("INVALID_TAG_DOMAIN", "Unknown tag domain")
	}
	if err := validateTagName(name); err != nil {
		return nil, err
	}
	if err := validateTagColor(color); err != nil {
		return nil, err
	}
	if sortOrder < 0 {
		return nil, shared.NewDomainError("INVALID_SORT_ORDER", "Sort order cannot be negative")
	}

	tag := &Tag{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Domain:              domain,
		Name:                name,
		Color:               color,
		SortOrder:           sortOrder,
		Active:              true,
	}

	tag.AddDomainEvent(NewTagCreatedEvent(tag))

	return tag, nil
}

// Update replaces the mutable fields of the tag
func (t *Tag) Update(name, color string, sortOrder int, active bool) error {
	if err := validateTagName(name); err != nil {
		return err
	}
	if err := validateTagColor(color); err != nil {
		return err
	}
	if sortOrder < 0 {
		return shared.NewDomainError("INVALID_SORT_ORDER", "Sort order cannot be negative")
	}

	t.Name = name
	t.Color = color
	t.SortOrder = sortOrder
	t.Active = active
	t.UpdatedAt = time.Now()
	t.IncrementVersion()

	t.AddDomainEvent(NewTagUpdatedEvent(t))

	return nil
}

// Deactivate hides the tag from option lists without deleting it
func (t *Tag) Deactivate() error {
	if !t.Active {
		return shared.NewDomainError("INVALID_STATE", "Tag is already inactive")
	}
	t.Active = false
	t.UpdatedAt = time.Now()
	t.IncrementVersion()

	t.AddDomainEvent(NewTagUpdatedEvent(t))

	return nil
}

// Activate makes the tag visible in option lists again
func (t *Tag) Activate() error {
	if t.Active {
		return shared.NewDomainError("INVALID_STATE", "Tag is already active")
	}
	t.Active = true
	t.UpdatedAt = time.Now()
	t.IncrementVersion()

	t.AddDomainEvent(NewTagUpdatedEvent(t))

	return nil
}

// validation functions

func validateTagName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_TAG_NAME", "Tag name cannot be empty")
	}
	if len(name) > 100 {
		return shared.NewDomainError("INVALID_TAG_NAME", "Tag name cannot exceed 100 characters")
	}
	return nil
}

func validateTagColor(color string) error {
	if color == "" {
		return nil
	}
	if !colorPattern.MatchString(color) {
		return shared.NewDomainError("INVALID_TAG_COLOR", "Tag color must be a hex value like #3b82f6")
	}
	return nil
}
