package hr

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/intranet/erp-backend/internal/domain/shared"
)

// OffboardingTask is a checklist entry inside an offboarding process
type OffboardingTask struct {
	shared.BaseEntity
	OffboardingID uuid.UUID `gorm:"type:uuid;not null;index"`
	Title         string    `gorm:"type:varchar(200);not null"`
	Done          bool      `gorm:"default:false"`
	CompletedAt   *time.Time
}

// TableName returns the table name for GORM
func (OffboardingTask) TableName() string {
	return "hr_offboarding_tasks"
}

// Offboarding tracks an employee exit and its checklist
type Offboarding struct {
	shared.TenantAggregateRoot
	EmployeeID  uuid.UUID         `gorm:"type:uuid;not null;index"`
	ExitDate    time.Time         `gorm:"type:date;not null"`
	ReasonTagID *uuid.UUID        `gorm:"type:uuid"`
	StatusTagID *uuid.UUID        `gorm:"type:uuid"`
	Tasks       []OffboardingTask `gorm:"foreignKey:OffboardingID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (Offboarding) TableName() string {
	return "hr_offboardings"
}

// OffboardingTaskDraft describes one checklist entry in an offboarding draft
type OffboardingTaskDraft struct {
	Title string
	Done  bool
}

// OffboardingDraft carries the full editable field set of an offboarding
type OffboardingDraft struct {
	EmployeeID  uuid.UUID
	ExitDate    time.Time
	ReasonTagID *uuid.UUID
	StatusTagID *uuid.UUID
	Tasks       []OffboardingTaskDraft
}

// NewOffboarding creates a new offboarding process
func NewOffboarding(tenantID uuid.UUID, draft OffboardingDraft) (*Offboarding, error) {
	if tenantID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_TENANT_ID", "Tenant ID cannot be empty")
	}
	if err := validateOffboardingDraft(draft); err != nil {
		return nil, err
	}

	off := &Offboarding{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
	}
	off.apply(draft)

	off.AddDomainEvent(NewOffboardingCreatedEvent(off))

	return off, nil
}

// Update replaces all editable fields with the draft. Tasks are fully
// replaced; a task marked done for the first time gets its completion
// timestamp set.
func (o *Offboarding) Update(draft OffboardingDraft) error {
	if err := validateOffboardingDraft(draft); err != nil {
		return err
	}

	o.apply(draft)
	o.UpdatedAt = time.Now()
	o.IncrementVersion()

	return nil
}

// CompletedTaskCount returns how many checklist tasks are done
func (o *Offboarding) CompletedTaskCount() int {
	count := 0
	for _, task := range o.Tasks {
		if task.Done {
			count++
		}
	}
	return count
}

func (o *Offboarding) apply(draft OffboardingDraft) {
	o.EmployeeID = draft.EmployeeID
	o.ExitDate = draft.ExitDate
	o.ReasonTagID = draft.ReasonTagID
	o.StatusTagID = draft.StatusTagID

	// Completion timestamps survive for tasks that stay done under the
	// same title.
	previous := make(map[string]OffboardingTask, len(o.Tasks))
	for _, task := range o.Tasks {
		previous[task.Title] = task
	}
	now := time.Now()
	tasks := make([]OffboardingTask, 0, len(draft.Tasks))
	for _, td := range draft.Tasks {
		title := strings.TrimSpace(td.Title)
		task := OffboardingTask{
			BaseEntity:    shared.NewBaseEntity(),
			OffboardingID: o.ID,
			Title:         title,
			Done:          td.Done,
		}
		if prev, ok := previous[title]; ok {
			task.BaseEntity = prev.BaseEntity
			if td.Done && prev.Done {
				task.CompletedAt = prev.CompletedAt
			}
		}
		if td.Done && task.CompletedAt == nil {
			task.CompletedAt = &now
		}
		if !td.Done {
			task.CompletedAt = nil
		}
		tasks = append(tasks, task)
	}
	o.Tasks = tasks
}

// validation functions

func validateOffboardingDraft(draft OffboardingDraft) error {
	if draft.EmployeeID == uuid.Nil {
		return shared.NewDomainError("INVALID_EMPLOYEE_ID", "Employee ID cannot be empty")
	}
	if draft.ExitDate.IsZero() {
		return shared.NewDomainError("INVALID_EXIT_DATE", "Exit date cannot be empty")
	}
	for _, task := range draft.Tasks {
		title := strings.TrimSpace(task.Title)
		if title == "" {
			return shared.NewDomainError("INVALID_TASK_TITLE", "Task title cannot be empty")
		}
		if len(title) > 200 {
			return shared.NewDomainError("INVALID_TASK_TITLE", "Task title cannot exceed 200 characters")
		}
	}
	return nil
}
