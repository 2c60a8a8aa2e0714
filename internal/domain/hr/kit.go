package hr

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/intranet/erp-backend/internal/domain/shared"
)

// KitItem is a single piece of equipment inside a kit
type KitItem struct {
	shared.BaseEntity
	KitID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(200);not null"`
	Serial    string    `gorm:"type:varchar(100)"`
	Condition string    `gorm:"type:varchar(100)"`
}

// TableName returns the table name for GORM
func (KitItem) TableName() string {
	return "hr_kit_items"
}

// Kit represents the equipment set handed to an employee
type Kit struct {
	shared.TenantAggregateRoot
	EmployeeID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	DeliveredOn *time.Time `gorm:"type:date"`
	ReturnedOn  *time.Time `gorm:"type:date"`
	StatusTagID *uuid.UUID `gorm:"type:uuid"`
	Items       []KitItem  `gorm:"foreignKey:KitID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (Kit) TableName() string {
	return "hr_kits"
}

// KitItemDraft describes one equipment entry in a kit draft
type KitItemDraft struct {
	Name      string
	Serial    string
	Condition string
}

// KitDraft carries the full editable field set of a kit
type KitDraft struct {
	EmployeeID  uuid.UUID
	DeliveredOn *time.Time
	ReturnedOn  *time.Time
	StatusTagID *uuid.UUID
	Items       []KitItemDraft
}

// NewKit creates a new equipment kit
func NewKit(tenantID uuid.UUID, draft KitDraft) (*Kit, error) {
	if tenantID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_TENANT_ID", "Tenant ID cannot be empty")
	}
	if err := validateKitDraft(draft); err != nil {
		return nil, err
	}

	kit := &Kit{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
	}
	kit.apply(draft)

	return kit, nil
}

// Update replaces all editable fields with the draft. Items are fully
// replaced.
func (k *Kit) Update(draft KitDraft) error {
	if err := validateKitDraft(draft); err != nil {
		return err
	}

	k.apply(draft)
	k.UpdatedAt = time.Now()
	k.IncrementVersion()

	return nil
}

func (k *Kit) apply(draft KitDraft) {
	k.EmployeeID = draft.EmployeeID
	k.DeliveredOn = draft.DeliveredOn
	k.ReturnedOn = draft.ReturnedOn
	k.StatusTagID = draft.StatusTagID

	items := make([]KitItem, 0, len(draft.Items))
	for _, item := range draft.Items {
		items = append(items, KitItem{
			BaseEntity: shared.NewBaseEntity(),
			KitID:      k.ID,
			Name:       strings.TrimSpace(item.Name),
			Serial:     strings.TrimSpace(item.Serial),
			Condition:  strings.TrimSpace(item.Condition),
		})
	}
	k.Items = items
}

// validation functions

func validateKitDraft(draft KitDraft) error {
	if draft.EmployeeID == uuid.Nil {
		return shared.NewDomainError("INVALID_EMPLOYEE_ID", "Employee ID cannot be empty")
	}
	if draft.DeliveredOn != nil && draft.ReturnedOn != nil && draft.ReturnedOn.Before(*draft.DeliveredOn) {
		return shared.NewDomainError("INVALID_DATE_RANGE", "Return date cannot be before delivery date")
	}
	for _, item := range draft.Items {
		name := strings.TrimSpace(item.Name)
		if name == "" {
			return shared.NewDomainError("INVALID_ITEM_NAME", "Kit item name cannot be empty")
		}
		if len(name) > 200 {
			return shared.NewDomainError("INVALID_ITEM_NAME", "Kit item name cannot exceed 200 characters")
		}
	}
	return nil
}
