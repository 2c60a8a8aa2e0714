package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	licensingapp "github.com/intranet/erp-backend/internal/application/licensing"
)

// LicenseHandler handles software license API endpoints
type LicenseHandler struct {
	BaseHandler
	licenseService *licensingapp.LicenseService
}

// NewLicenseHandler creates a new LicenseHandler
func NewLicenseHandler(licenseService *licensingapp.LicenseService) *LicenseHandler {
	return &LicenseHandler{
		licenseService: licenseService,
	}
}

// Create godoc
// @ID           createLicense
// @Summary      Register a license
// @Tags         licensing
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        request body licensingapp.LicenseRequest true "License creation request"
// @Success      201 {object} APIResponse[licensingapp.LicenseResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      422 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /licensing/licenses [post]
func (h *LicenseHandler) Create(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var req licensingapp.LicenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	license, err := h.licenseService.Create(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, license)
}

// GetByID godoc
// @ID           getLicenseById
// @Summary      Get license by ID
// @Tags         licensing
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        id path string true "License ID" format(uuid)
// @Success      200 {object} APIResponse[licensingapp.LicenseResponse]
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /licensing/licenses/{id} [get]
func (h *LicenseHandler) GetByID(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	licenseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid license ID format")
		return
	}

	license, err := h.licenseService.GetByID(c.Request.Context(), tenantID, licenseID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, license)
}

// List godoc
// @ID           listLicenses
// @Summary      List licenses
// @Tags         licensing
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        search query string false "Search term (name, vendor)"
// @Param        project_id query string false "Project ID" format(uuid)
// @Param        status_tag_id query string false "Status tag ID" format(uuid)
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20) maximum(100)
// @Success      200 {object} APIResponse[[]licensingapp.LicenseResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /licensing/licenses [get]
func (h *LicenseHandler) List(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var filter licensingapp.LicenseListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	licenses, total, err := h.licenseService.List(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, licenses, total, filter.Page, filter.PageSize)
}

// ListByProject godoc
// @ID           listLicensesByProject
// @Summary      List licenses of a project
// @Tags         licensing
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        id path string true "Project ID" format(uuid)
// @Success      200 {object} APIResponse[[]licensingapp.LicenseResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /licensing/projects/{id}/licenses [get]
func (h *LicenseHandler) ListByProject(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid project ID format")
		return
	}

	licenses, err := h.licenseService.ListByProject(c.Request.Context(), tenantID, projectID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, licenses)
}

// ListExpiring godoc
// @ID           listExpiringLicenses
// @Summary      List licenses expiring soon
// @Description  Retrieve licenses whose expiry date falls within the lookahead window
// @Tags         licensing
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        days query int false "Lookahead window in days" default(30) maximum(365)
// @Success      200 {object} APIResponse[[]licensingapp.LicenseResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /licensing/licenses/expiring [get]
func (h *LicenseHandler) ListExpiring(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var filter licensingapp.ExpiringLicensesFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	licenses, err := h.licenseService.ListExpiring(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, licenses)
}

// Update godoc
// @ID           updateLicense
// @Summary      Update a license
// @Tags         licensing
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        id path string true "License ID" format(uuid)
// @Param        request body licensingapp.LicenseRequest true "License update request"
// @Success      200 {object} APIResponse[licensingapp.LicenseResponse]
// @Failure      404 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /licensing/licenses/{id} [put]
func (h *LicenseHandler) Update(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	licenseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid license ID format")
		return
	}

	var req licensingapp.LicenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	license, err := h.licenseService.Update(c.Request.Context(), tenantID, licenseID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, license)
}

// Delete godoc
// @ID           deleteLicense
// @Summary      Delete a license
// @Tags         licensing
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        id path string true "License ID" format(uuid)
// @Success      204 "No Content"
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /licensing/licenses/{id} [delete]
func (h *LicenseHandler) Delete(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	licenseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid license ID format")
		return
	}

	if err := h.licenseService.Delete(c.Request.Context(), tenantID, licenseID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
