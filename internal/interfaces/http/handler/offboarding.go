package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	hrapp "github.com/intranet/erp-backend/internal/application/hr"
)

// OffboardingHandler handles offboarding process API endpoints
type OffboardingHandler struct {
	BaseHandler
	offboardingService *hrapp.OffboardingService
}

// NewOffboardingHandler creates a new OffboardingHandler
func NewOffboardingHandler(offboardingService *hrapp.OffboardingService) *OffboardingHandler {
	return &OffboardingHandler{
		offboardingService: offboardingService,
	}
}

// Create godoc
// @ID           createOffboarding
// @Summary      Open an offboarding process
// @Tags         hr
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        request body hrapp.OffboardingRequest true "Offboarding creation request"
// @Success      201 {object} APIResponse[hrapp.OffboardingResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      422 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /hr/offboardings [post]
func (h *OffboardingHandler) Create(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var req hrapp.OffboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	offboarding, err := h.offboardingService.Create(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, offboarding)
}

// GetByID godoc
// @ID           getOffboardingById
// @Summary      Get offboarding by ID
// @Tags         hr
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        id path string true "Offboarding ID" format(uuid)
// @Success      200 {object} APIResponse[hrapp.OffboardingResponse]
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /hr/offboardings/{id} [get]
func (h *OffboardingHandler) GetByID(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	offboardingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid offboarding ID format")
		return
	}

	offboarding, err := h.offboardingService.GetByID(c.Request.Context(), tenantID, offboardingID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, offboarding)
}

// List godoc
// @ID           listOffboardings
// @Summary      List offboarding processes
// @Tags         hr
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        employee_id query string false "Employee user ID" format(uuid)
// @Param        reason_tag_id query string false "Reason tag ID" format(uuid)
// @Param        status_tag_id query string false "Status tag ID" format(uuid)
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20) maximum(100)
// @Success      200 {object} APIResponse[[]hrapp.OffboardingResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /hr/offboardings [get]
func (h *OffboardingHandler) List(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var filter hrapp.OffboardingListFilter
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

	offboardings, total, err := h.offboardingService.List(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, offboardings, total, filter.Page, filter.PageSize)
}

// Update godoc
// @ID           updateOffboarding
// @Summary      Update an offboarding process
// @Description  Replace an offboarding's fields and task checklist
// @Tags         hr
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        id path string true "Offboarding ID" format(uuid)
// @Param        request body hrapp.OffboardingRequest true "Offboarding update request"
// @Success      200 {object} APIResponse[hrapp.OffboardingResponse]
// @Failure      404 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /hr/offboardings/{id} [put]
func (h *OffboardingHandler) Update(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	offboardingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid offboarding ID format")
		return
	}

	var req hrapp.OffboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	offboarding, err := h.offboardingService.Update(c.Request.Context(), tenantID, offboardingID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, offboarding)
}

// Delete godoc
// @ID           deleteOffboarding
// @Summary      Delete an offboarding process
// @Tags         hr
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        id path string true "Offboarding ID" format(uuid)
// @Success      204 "No Content"
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /hr/offboardings/{id} [delete]
func (h *OffboardingHandler) Delete(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	offboardingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid offboarding ID format")
		return
	}

	if err := h.offboardingService.Delete(c.Request.Context(), tenantID, offboardingID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
