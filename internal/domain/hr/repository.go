package hr

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/intranet/erp-backend/internal/domain/shared"
)

// AttendanceRepository defines the persistence contract for attendance records
type AttendanceRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Attendance, error)
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Attendance, error)
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]Attendance, error)
	FindByEmployeeAndDate(ctx context.Context, tenantID, employeeID uuid.UUID, date time.Time) (*Attendance, error)
	ExistsForEmployeeOnDate(ctx context.Context, tenantID, employeeID uuid.UUID, date time.Time) (bool, error)
	Save(ctx context.Context, attendance *Attendance) error
	SaveWithLock(ctx context.Context, attendance *Attendance) error
	DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error
	CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error)
}

// EmploymentContractRepository defines the persistence contract for contracts
type EmploymentContractRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*EmploymentContract, error)
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*EmploymentContract, error)
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]EmploymentContract, error)
	FindByEmployee(ctx context.Context, tenantID, employeeID uuid.UUID) ([]*EmploymentContract, error)
	Save(ctx context.Context, contract *EmploymentContract) error
	SaveWithLock(ctx context.Context, contract *EmploymentContract) error
	DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error
	CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error)
}

// InterviewRepository defines the persistence contract for interviews
type InterviewRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Interview, error)
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Interview, error)
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]Interview, error)
	Save(ctx context.Context, interview *Interview) error
	SaveWithLock(ctx context.Context, interview *Interview) error
	DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error
	CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error)
}

// KitRepository defines the persistence contract for equipment kits
type KitRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Kit, error)
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Kit, error)
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]Kit, error)
	FindByEmployee(ctx context.Context, tenantID, employeeID uuid.UUID) ([]*Kit, error)
	Save(ctx context.Context, kit *Kit) error
	SaveWithLock(ctx context.Context, kit *Kit) error
	DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error
	CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error)
}

// OffboardingRepository defines the persistence contract for offboardings
type OffboardingRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Offboarding, error)
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Offboarding, error)
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]Offboarding, error)
	FindByEmployee(ctx context.Context, tenantID, employeeID uuid.UUID) ([]*Offboarding, error)
	Save(ctx context.Context, off *Offboarding) error
	SaveWithLock(ctx context.Context, off *Offboarding) error
	DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error
	CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error)
}
