package licensing

import (
	"time"

	"github.com/google/uuid"
	"github.com/intranet/erp-backend/internal/domain/licensing"
	"github.com/shopspring/decimal"
)

// ProjectRequest carries the editable fields of a project
type ProjectRequest struct {
	Name string `json:"name" binding:"required,min=1,max=200"`
	Code string `json:"code" binding:"omitempty,max=50"`
}

// ProjectResponse represents a project in API responses
type ProjectResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Version   int       `json:"version"`
}

// ProjectListFilter represents filter options for the project list
type ProjectListFilter struct {
	Search   string `form:"search"`
	Active   *bool  `form:"active"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// LicenseRequest carries the full editable field set of a license
type LicenseRequest struct {
	Name           string          `json:"name" binding:"required,min=1,max=200"`
	ProjectID      uuid.UUID       `json:"project_id" binding:"required"`
	Vendor         string          `json:"vendor" binding:"omitempty,max=200"`
	LicenseKey     string          `json:"license_key" binding:"omitempty,max=500"`
	Seats          int             `json:"seats" binding:"required,min=1"`
	Cost           decimal.Decimal `json:"cost"`
	PurchasedOn    *time.Time      `json:"purchased_on"`
	ExpiresOn      *time.Time      `json:"expires_on"`
	StatusTagID    *uuid.UUID      `json:"status_tag_id"`
	Notes          string          `json:"notes"`
	PendingFileIDs []uuid.UUID     `json:"pending_file_ids"`
}

// LicenseResponse represents a license in API responses
type LicenseResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	ProjectID   uuid.UUID       `json:"project_id"`
	Vendor      string          `json:"vendor"`
	LicenseKey  string          `json:"license_key"`
	Seats       int             `json:"seats"`
	Cost        decimal.Decimal `json:"cost"`
	PurchasedOn *time.Time      `json:"purchased_on,omitempty"`
	ExpiresOn   *time.Time      `json:"expires_on,omitempty"`
	StatusTagID *uuid.UUID      `json:"status_tag_id,omitempty"`
	Notes       string          `json:"notes"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	Version     int             `json:"version"`
}

// LicenseListFilter represents filter options for the license list
type LicenseListFilter struct {
	Search      string `form:"search"`
	ProjectID   string `form:"project_id" binding:"omitempty,uuid"`
	StatusTagID string `form:"status_tag_id" binding:"omitempty,uuid"`
	Page        int    `form:"page" binding:"omitempty,min=1"`
	PageSize    int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy     string `form:"order_by"`
	OrderDir    string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ExpiringLicensesFilter bounds the lookahead window for expiry alerts
type ExpiringLicensesFilter struct {
	Days int `form:"days" binding:"omitempty,min=1,max=365"`
}

func (r LicenseRequest) toDraft() licensing.LicenseDraft {
	return licensing.LicenseDraft{
		Name:        r.Name,
		ProjectID:   r.ProjectID,
		Vendor:      r.Vendor,
		LicenseKey:  r.LicenseKey,
		Seats:       r.Seats,
		Cost:        r.Cost,
		PurchasedOn: r.PurchasedOn,
		ExpiresOn:   r.ExpiresOn,
		StatusTagID: r.StatusTagID,
		Notes:       r.Notes,
	}
}

// ToProjectResponse maps a domain project to its response representation
func ToProjectResponse(project *licensing.Project) ProjectResponse {
	return ProjectResponse{
		ID:        project.ID,
		Name:      project.Name,
		Code:      project.Code,
		Active:    project.Active,
		CreatedAt: project.CreatedAt,
		UpdatedAt: project.UpdatedAt,
		Version:   project.Version,
	}
}

// ToProjectResponses maps a slice of domain projects
func ToProjectResponses(projects []licensing.Project) []ProjectResponse {
	responses := make([]ProjectResponse, 0, len(projects))
	for i := range projects {
		responses = append(responses, ToProjectResponse(&projects[i]))
	}
	return responses
}

// ToLicenseResponse maps a domain license to its response representation
func ToLicenseResponse(license *licensing.License) LicenseResponse {
	return LicenseResponse{
		ID:          license.ID,
		Name:        license.Name,
		ProjectID:   license.ProjectID,
		Vendor:      license.Vendor,
		LicenseKey:  license.LicenseKey,
		Seats:       license.Seats,
		Cost:        license.Cost,
		PurchasedOn: license.PurchasedOn,
		ExpiresOn:   license.ExpiresOn,
		StatusTagID: license.StatusTagID,
		Notes:       license.Notes,
		CreatedAt:   license.CreatedAt,
		UpdatedAt:   license.UpdatedAt,
		Version:     license.Version,
	}
}

// ToLicenseResponses maps a slice of domain licenses
func ToLicenseResponses(licenses []licensing.License) []LicenseResponse {
	responses := make([]LicenseResponse, 0, len(licenses))
	for i := range licenses {
		responses = append(responses, ToLicenseResponse(&licenses[i]))
	}
	return responses
}

// ToLicensePointerResponses maps a slice of license pointers
func ToLicensePointerResponses(licenses []*licensing.License) []LicenseResponse {
	responses := make([]LicenseResponse, 0, len(licenses))
	for _, license := range licenses {
		responses = append(responses, ToLicenseResponse(license))
	}
	return responses
}
