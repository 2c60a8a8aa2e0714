package finance

import (
	"time"

	"github.com/google/uuid"
	"github.com/intranet/erp-backend/internal/domain/finance"
	"github.com/shopspring/decimal"
)

// GrossIncomeRequest carries the full editable field set of an entry
type GrossIncomeRequest struct {
	Year        int             `json:"year" binding:"required,min=2000,max=2100"`
	Month       int             `json:"month" binding:"required,min=1,max=12"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Concept     string          `json:"concept" binding:"required,min=1,max=300"`
	ContactID   *uuid.UUID      `json:"contact_id"`
	StatusTagID *uuid.UUID      `json:"status_tag_id"`
	Notes       string          `json:"notes"`
}

// GrossIncomeResponse represents a gross income entry in API responses
type GrossIncomeResponse struct {
	ID          uuid.UUID       `json:"id"`
	Year        int             `json:"year"`
	Month       int             `json:"month"`
	Amount      decimal.Decimal `json:"amount"`
	Concept     string          `json:"concept"`
	ContactID   *uuid.UUID      `json:"contact_id,omitempty"`
	StatusTagID *uuid.UUID      `json:"status_tag_id,omitempty"`
	Notes       string          `json:"notes"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	Version     int             `json:"version"`
}

// GrossIncomeListFilter represents filter options for the entry list
type GrossIncomeListFilter struct {
	Search      string `form:"search"`
	Year        int    `form:"year" binding:"omitempty,min=2000,max=2100"`
	Month       int    `form:"month" binding:"omitempty,min=1,max=12"`
	ContactID   string `form:"contact_id" binding:"omitempty,uuid"`
	StatusTagID string `form:"status_tag_id" binding:"omitempty,uuid"`
	Page        int    `form:"page" binding:"omitempty,min=1"`
	PageSize    int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy     string `form:"order_by"`
	OrderDir    string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// AuditRequest carries the full editable field set of an audit
type AuditRequest struct {
	Title          string      `json:"title" binding:"required,min=1,max=200"`
	Scope          string      `json:"scope"`
	AuditorID      *uuid.UUID  `json:"auditor_id"`
	StartsOn       *time.Time  `json:"starts_on"`
	EndsOn         *time.Time  `json:"ends_on"`
	StatusTagID    *uuid.UUID  `json:"status_tag_id"`
	Findings       string      `json:"findings"`
	PendingFileIDs []uuid.UUID `json:"pending_file_ids"`
}

// AuditResponse represents an audit in API responses
type AuditResponse struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Scope       string     `json:"scope"`
	AuditorID   *uuid.UUID `json:"auditor_id,omitempty"`
	StartsOn    *time.Time `json:"starts_on,omitempty"`
	EndsOn      *time.Time `json:"ends_on,omitempty"`
	StatusTagID *uuid.UUID `json:"status_tag_id,omitempty"`
	Findings    string     `json:"findings"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	Version     int        `json:"version"`
}

// AuditListFilter represents filter options for the audit list
type AuditListFilter struct {
	Search      string `form:"search"`
	AuditorID   string `form:"auditor_id" binding:"omitempty,uuid"`
	StatusTagID string `form:"status_tag_id" binding:"omitempty,uuid"`
	Page        int    `form:"page" binding:"omitempty,min=1"`
	PageSize    int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy     string `form:"order_by"`
	OrderDir    string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

func (r GrossIncomeRequest) toDraft() finance.GrossIncomeDraft {
	return finance.GrossIncomeDraft{
		Year:        r.Year,
		Month:       r.Month,
		Amount:      r.Amount,
		Concept:     r.Concept,
		ContactID:   r.ContactID,
		StatusTagID: r.StatusTagID,
		Notes:       r.Notes,
	}
}

func (r AuditRequest) toDraft() finance.AuditDraft {
	return finance.AuditDraft{
		Title:       r.Title,
		Scope:       r.Scope,
		AuditorID:   r.AuditorID,
		StartsOn:    r.StartsOn,
		EndsOn:      r.EndsOn,
		StatusTagID: r.StatusTagID,
		Findings:    r.Findings,
	}
}

// ToGrossIncomeResponse maps a domain entry to its response representation
func ToGrossIncomeResponse(income *finance.GrossIncome) GrossIncomeResponse {
	return GrossIncomeResponse{
		ID:          income.ID,
		Year:        income.Year,
		Month:       income.Month,
		Amount:      income.Amount,
		Concept:     income.Concept,
		ContactID:   income.ContactID,
		StatusTagID: income.StatusTagID,
		Notes:       income.Notes,
		CreatedAt:   income.CreatedAt,
		UpdatedAt:   income.UpdatedAt,
		Version:     income.Version,
	}
}

// ToGrossIncomeResponses maps a slice of domain entries
func ToGrossIncomeResponses(incomes []finance.GrossIncome) []GrossIncomeResponse {
	responses := make([]GrossIncomeResponse, 0, len(incomes))
	for i := range incomes {
		responses = append(responses, ToGrossIncomeResponse(&incomes[i]))
	}
	return responses
}

// ToAuditResponse maps a domain audit to its response representation
func ToAuditResponse(audit *finance.Audit) AuditResponse {
	return AuditResponse{
		ID:          audit.ID,
		Title:       audit.Title,
		Scope:       audit.Scope,
		AuditorID:   audit.AuditorID,
		StartsOn:    audit.StartsOn,
		EndsOn:      audit.EndsOn,
		StatusTagID: audit.StatusTagID,
		Findings:    audit.Findings,
		CreatedAt:   audit.CreatedAt,
		UpdatedAt:   audit.UpdatedAt,
		Version:     audit.Version,
	}
}

// ToAuditResponses maps a slice of domain audits
func ToAuditResponses(audits []finance.Audit) []AuditResponse {
	responses := make([]AuditResponse, 0, len(audits))
	for i := range audits {
		responses = append(responses, ToAuditResponse(&audits[i]))
	}
	return responses
}
