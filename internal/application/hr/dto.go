package hr

import (
	"time"

	"github.com/google/uuid"
	"github.com/intranet/erp-backend/internal/domain/hr"
	"github.com/shopspring/decimal"
)

// AttendanceRequest carries the full editable field set of an attendance record
type AttendanceRequest struct {
	EmployeeID uuid.UUID  `json:"employee_id" binding:"required"`
	Date       time.Time  `json:"date" binding:"required"`
	CheckIn    *time.Time `json:"check_in"`
	CheckOut   *time.Time `json:"check_out"`
	TypeTagID  *uuid.UUID `json:"type_tag_id"`
	Notes      string     `json:"notes"`
}

// AttendanceResponse represents an attendance record in API responses
type AttendanceResponse struct {
	ID         uuid.UUID  `json:"id"`
	EmployeeID uuid.UUID  `json:"employee_id"`
	Date       time.Time  `json:"date"`
	CheckIn    *time.Time `json:"check_in,omitempty"`
	CheckOut   *time.Time `json:"check_out,omitempty"`
	TypeTagID  *uuid.UUID `json:"type_tag_id,omitempty"`
	Notes      string     `json:"notes"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	Version    int        `json:"version"`
}

// AttendanceListFilter represents filter options for the attendance list
type AttendanceListFilter struct {
	EmployeeID string `form:"employee_id" binding:"omitempty,uuid"`
	TypeTagID  string `form:"type_tag_id" binding:"omitempty,uuid"`
	Page       int    `form:"page" binding:"omitempty,min=1"`
	PageSize   int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy    string `form:"order_by"`
	OrderDir   string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ContractRequest carries the full editable field set of an employment contract
type ContractRequest struct {
	EmployeeID     uuid.UUID       `json:"employee_id" binding:"required"`
	RoleTitle      string          `json:"role_title" binding:"required,min=1,max=150"`
	StartsOn       time.Time       `json:"starts_on" binding:"required"`
	EndsOn         *time.Time      `json:"ends_on"`
	Salary         decimal.Decimal `json:"salary" binding:"required"`
	TypeTagID      *uuid.UUID      `json:"type_tag_id"`
	StatusTagID    *uuid.UUID      `json:"status_tag_id"`
	PendingFileIDs []uuid.UUID     `json:"pending_file_ids"`
}

// ContractResponse represents an employment contract in API responses
type ContractResponse struct {
	ID          uuid.UUID       `json:"id"`
	EmployeeID  uuid.UUID       `json:"employee_id"`
	RoleTitle   string          `json:"role_title"`
	StartsOn    time.Time       `json:"starts_on"`
	EndsOn      *time.Time      `json:"ends_on,omitempty"`
	Salary      decimal.Decimal `json:"salary"`
	TypeTagID   *uuid.UUID      `json:"type_tag_id,omitempty"`
	StatusTagID *uuid.UUID      `json:"status_tag_id,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	Version     int             `json:"version"`
}

// ContractListFilter represents filter options for the contract list
type ContractListFilter struct {
	Search      string `form:"search"`
	EmployeeID  string `form:"employee_id" binding:"omitempty,uuid"`
	StatusTagID string `form:"status_tag_id" binding:"omitempty,uuid"`
	Page        int    `form:"page" binding:"omitempty,min=1"`
	PageSize    int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy     string `form:"order_by"`
	OrderDir    string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// InterviewRequest carries the full editable field set of an interview
type InterviewRequest struct {
	CandidateName  string      `json:"candidate_name" binding:"required,min=1,max=200"`
	CandidateEmail string      `json:"candidate_email" binding:"omitempty,email"`
	Position       string      `json:"position" binding:"omitempty,max=150"`
	InterviewerID  *uuid.UUID  `json:"interviewer_id"`
	ScheduledAt    *time.Time  `json:"scheduled_at"`
	StageTagID     *uuid.UUID  `json:"stage_tag_id"`
	Score          *int        `json:"score" binding:"omitempty,min=0,max=10"`
	Feedback       string      `json:"feedback"`
	PendingFileIDs []uuid.UUID `json:"pending_file_ids"`
}

// InterviewResponse represents an interview in API responses
type InterviewResponse struct {
	ID             uuid.UUID  `json:"id"`
	CandidateName  string     `json:"candidate_name"`
	CandidateEmail string     `json:"candidate_email"`
	Position       string     `json:"position"`
	InterviewerID  *uuid.UUID `json:"interviewer_id,omitempty"`
	ScheduledAt    *time.Time `json:"scheduled_at,omitempty"`
	StageTagID     *uuid.UUID `json:"stage_tag_id,omitempty"`
	Score          *int       `json:"score,omitempty"`
	Feedback       string     `json:"feedback"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	Version        int        `json:"version"`
}

// InterviewListFilter represents filter options for the interview list
type InterviewListFilter struct {
	Search        string `form:"search"`
	InterviewerID string `form:"interviewer_id" binding:"omitempty,uuid"`
	StageTagID    string `form:"stage_tag_id" binding:"omitempty,uuid"`
	Page          int    `form:"page" binding:"omitempty,min=1"`
	PageSize      int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy       string `form:"order_by"`
	OrderDir      string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// KitItemRequest describes one equipment entry
type KitItemRequest struct {
	Name      string `json:"name" binding:"required,min=1,max=200"`
	Serial    string `json:"serial" binding:"omitempty,max=100"`
	Condition string `json:"condition" binding:"omitempty,max=100"`
}

// KitRequest carries the full editable field set of an equipment kit
type KitRequest struct {
	EmployeeID     uuid.UUID        `json:"employee_id" binding:"required"`
	DeliveredOn    *time.Time       `json:"delivered_on"`
	ReturnedOn     *time.Time       `json:"returned_on"`
	StatusTagID    *uuid.UUID       `json:"status_tag_id"`
	Items          []KitItemRequest `json:"items" binding:"dive"`
	PendingFileIDs []uuid.UUID      `json:"pending_file_ids"`
}

// KitItemResponse represents one equipment entry in API responses
type KitItemResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Serial    string    `json:"serial"`
	Condition string    `json:"condition"`
}

// KitResponse represents an equipment kit in API responses
type KitResponse struct {
	ID          uuid.UUID         `json:"id"`
	EmployeeID  uuid.UUID         `json:"employee_id"`
	DeliveredOn *time.Time        `json:"delivered_on,omitempty"`
	ReturnedOn  *time.Time        `json:"returned_on,omitempty"`
	StatusTagID *uuid.UUID        `json:"status_tag_id,omitempty"`
	Items       []KitItemResponse `json:"items"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
	Version     int               `json:"version"`
}

// KitListFilter represents filter options for the kit list
type KitListFilter struct {
	EmployeeID  string `form:"employee_id" binding:"omitempty,uuid"`
	StatusTagID string `form:"status_tag_id" binding:"omitempty,uuid"`
	Page        int    `form:"page" binding:"omitempty,min=1"`
	PageSize    int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy     string `form:"order_by"`
	OrderDir    string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// OffboardingTaskRequest describes one checklist entry
type OffboardingTaskRequest struct {
	Title string `json:"title" binding:"required,min=1,max=200"`
	Done  bool   `json:"done"`
}

// OffboardingRequest carries the full editable field set of an offboarding
type OffboardingRequest struct {
	EmployeeID     uuid.UUID                `json:"employee_id" binding:"required"`
	ExitDate       time.Time                `json:"exit_date" binding:"required"`
	ReasonTagID    *uuid.UUID               `json:"reason_tag_id"`
	StatusTagID    *uuid.UUID               `json:"status_tag_id"`
	Tasks          []OffboardingTaskRequest `json:"tasks" binding:"dive"`
	PendingFileIDs []uuid.UUID              `json:"pending_file_ids"`
}

// OffboardingTaskResponse represents one checklist entry in API responses
type OffboardingTaskResponse struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Done        bool       `json:"done"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// OffboardingResponse represents an offboarding in API responses
type OffboardingResponse struct {
	ID             uuid.UUID                 `json:"id"`
	EmployeeID     uuid.UUID                 `json:"employee_id"`
	ExitDate       time.Time                 `json:"exit_date"`
	ReasonTagID    *uuid.UUID                `json:"reason_tag_id,omitempty"`
	StatusTagID    *uuid.UUID                `json:"status_tag_id,omitempty"`
	Tasks          []OffboardingTaskResponse `json:"tasks"`
	CompletedTasks int                       `json:"completed_tasks"`
	CreatedAt      time.Time                 `json:"created_at"`
	UpdatedAt      time.Time                 `json:"updated_at"`
	Version        int                       `json:"version"`
}

// OffboardingListFilter represents filter options for the offboarding list
type OffboardingListFilter struct {
	EmployeeID  string `form:"employee_id" binding:"omitempty,uuid"`
	StatusTagID string `form:"status_tag_id" binding:"omitempty,uuid"`
	Page        int    `form:"page" binding:"omitempty,min=1"`
	PageSize    int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy     string `form:"order_by"`
	OrderDir    string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

func (r AttendanceRequest) toDraft() hr.AttendanceDraft {
	return hr.AttendanceDraft{
		EmployeeID: r.EmployeeID,
		Date:       r.Date,
		CheckIn:    r.CheckIn,
		CheckOut:   r.CheckOut,
		TypeTagID:  r.TypeTagID,
		Notes:      r.Notes,
	}
}

func (r ContractRequest) toDraft() hr.EmploymentContractDraft {
	return hr.EmploymentContractDraft{
		EmployeeID:  r.EmployeeID,
		RoleTitle:   r.RoleTitle,
		StartsOn:    r.StartsOn,
		EndsOn:      r.EndsOn,
		Salary:      r.Salary,
		TypeTagID:   r.TypeTagID,
		StatusTagID: r.StatusTagID,
	}
}

func (r InterviewRequest) toDraft() hr.InterviewDraft {
	return hr.InterviewDraft{
		CandidateName:  r.CandidateName,
		CandidateEmail: r.CandidateEmail,
		Position:       r.Position,
		InterviewerID:  r.InterviewerID,
		ScheduledAt:    r.ScheduledAt,
		StageTagID:     r.StageTagID,
		Score:          r.Score,
		Feedback:       r.Feedback,
	}
}

func (r KitRequest) toDraft() hr.KitDraft {
	items := make([]hr.KitItemDraft, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, hr.KitItemDraft{
			Name:      item.Name,
			Serial:    item.Serial,
			Condition: item.Condition,
		})
	}
	return hr.KitDraft{
		EmployeeID:  r.EmployeeID,
		DeliveredOn: r.DeliveredOn,
		ReturnedOn:  r.ReturnedOn,
		StatusTagID: r.StatusTagID,
		Items:       items,
	}
}

func (r OffboardingRequest) toDraft() hr.OffboardingDraft {
	tasks := make([]hr.OffboardingTaskDraft, 0, len(r.Tasks))
	for _, task := range r.Tasks {
		tasks = append(tasks, hr.OffboardingTaskDraft{
			Title: task.Title,
			Done:  task.Done,
		})
	}
	return hr.OffboardingDraft{
		EmployeeID:  r.EmployeeID,
		ExitDate:    r.ExitDate,
		ReasonTagID: r.ReasonTagID,
		StatusTagID: r.StatusTagID,
		Tasks:       tasks,
	}
}

// ToAttendanceResponse maps a domain attendance record to its response representation
func ToAttendanceResponse(attendance *hr.Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:         attendance.ID,
		EmployeeID: attendance.EmployeeID,
		Date:       attendance.Date,
		CheckIn:    attendance.CheckIn,
		CheckOut:   attendance.CheckOut,
		TypeTagID:  attendance.TypeTagID,
		Notes:      attendance.Notes,
		CreatedAt:  attendance.CreatedAt,
		UpdatedAt:  attendance.UpdatedAt,
		Version:    attendance.Version,
	}
}

// ToAttendanceResponses maps a slice of domain attendance records
func ToAttendanceResponses(attendances []hr.Attendance) []AttendanceResponse {
	responses := make([]AttendanceResponse, 0, len(attendances))
	for i := range attendances {
		responses = append(responses, ToAttendanceResponse(&attendances[i]))
	}
	return responses
}

// ToContractResponse maps a domain contract to its response representation
func ToContractResponse(contract *hr.EmploymentContract) ContractResponse {
	return ContractResponse{
		ID:          contract.ID,
		EmployeeID:  contract.EmployeeID,
		RoleTitle:   contract.RoleTitle,
		StartsOn:    contract.StartsOn,
		EndsOn:      contract.EndsOn,
		Salary:      contract.Salary,
		TypeTagID:   contract.TypeTagID,
		StatusTagID: contract.StatusTagID,
		CreatedAt:   contract.CreatedAt,
		UpdatedAt:   contract.UpdatedAt,
		Version:     contract.Version,
	}
}

// ToContractResponses maps a slice of domain contracts
func ToContractResponses(contracts []hr.EmploymentContract) []ContractResponse {
	responses := make([]ContractResponse, 0, len(contracts))
	for i := range contracts {
		responses = append(responses, ToContractResponse(&contracts[i]))
	}
	return responses
}

// ToInterviewResponse maps a domain interview to its response representation
func ToInterviewResponse(interview *hr.Interview) InterviewResponse {
	return InterviewResponse{
		ID:             interview.ID,
		CandidateName:  interview.CandidateName,
		CandidateEmail: interview.CandidateEmail,
		Position:       interview.Position,
		InterviewerID:  interview.InterviewerID,
		ScheduledAt:    interview.ScheduledAt,
		StageTagID:     interview.StageTagID,
		Score:          interview.Score,
		Feedback:       interview.Feedback,
		CreatedAt:      interview.CreatedAt,
		UpdatedAt:      interview.UpdatedAt,
		Version:        interview.Version,
	}
}

// ToInterviewResponses maps a slice of domain interviews
func ToInterviewResponses(interviews []hr.Interview) []InterviewResponse {
	responses := make([]InterviewResponse, 0, len(interviews))
	for i := range interviews {
		responses = append(responses, ToInterviewResponse(&interviews[i]))
	}
	return responses
}

// ToKitResponse maps a domain kit to its response representation
func ToKitResponse(kit *hr.Kit) KitResponse {
	items := make([]KitItemResponse, 0, len(kit.Items))
	for _, item := range kit.Items {
		items = append(items, KitItemResponse{
			ID:        item.ID,
			Name:      item.Name,
			Serial:    item.Serial,
			Condition: item.Condition,
		})
	}
	return KitResponse{
		ID:          kit.ID,
		EmployeeID:  kit.EmployeeID,
		DeliveredOn: kit.DeliveredOn,
		ReturnedOn:  kit.ReturnedOn,
		StatusTagID: kit.StatusTagID,
		Items:       items,
		CreatedAt:   kit.CreatedAt,
		UpdatedAt:   kit.UpdatedAt,
		Version:     kit.Version,
	}
}

// ToKitResponses maps a slice of domain kits
func ToKitResponses(kits []hr.Kit) []KitResponse {
	responses := make([]KitResponse, 0, len(kits))
	for i := range kits {
		responses = append(responses, ToKitResponse(&kits[i]))
	}
	return responses
}

// ToOffboardingResponse maps a domain offboarding to its response representation
func ToOffboardingResponse(off *hr.Offboarding) OffboardingResponse {
	tasks := make([]OffboardingTaskResponse, 0, len(off.Tasks))
	for _, task := range off.Tasks {
		tasks = append(tasks, OffboardingTaskResponse{
			ID:          task.ID,
			Title:       task.Title,
			Done:        task.Done,
			CompletedAt: task.CompletedAt,
		})
	}
	return OffboardingResponse{
		ID:             off.ID,
		EmployeeID:     off.EmployeeID,
		ExitDate:       off.ExitDate,
		ReasonTagID:    off.ReasonTagID,
		StatusTagID:    off.StatusTagID,
		Tasks:          tasks,
		CompletedTasks: off.CompletedTaskCount(),
		CreatedAt:      off.CreatedAt,
		UpdatedAt:      off.UpdatedAt,
		Version:        off.Version,
	}
}

// ToOffboardingResponses maps a slice of domain offboardings
func ToOffboardingResponses(offs []hr.Offboarding) []OffboardingResponse {
	responses := make([]OffboardingResponse, 0, len(offs))
	for i := range offs {
		responses = append(responses, ToOffboardingResponse(&offs[i]))
	}
	return responses
}
