package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	hrapp "github.com/intranet/erp-backend/internal/application/hr"
)

// KitHandler handles equipment kit API endpoints
type KitHandler struct {
	BaseHandler
	kitService *hrapp.KitService
}

// NewKitHandler creates a new KitHandler
func NewKitHandler(kitService *hrapp.KitService) *KitHandler {
	return &KitHandler{
		kitService: kitService,
	}
}

// Create godoc
// @ID           createKit
// @Summary      Create an equipment kit
// @Tags         hr
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        request body hrapp.KitRequest true "Kit creation request"
// @Success      201 {object} APIResponse[hrapp.KitResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      422 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /hr/kits [post]
func (h *KitHandler) Create(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var req hrapp.KitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	kit, err := h.kitService.Create(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, kit)
}

// GetByID godoc
// @ID           getKitById
// @Summary      Get kit by ID
// @Tags         hr
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        id path string true "Kit ID" format(uuid)
// @Success      200 {object} APIResponse[hrapp.KitResponse]
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /hr/kits/{id} [get]
func (h *KitHandler) GetByID(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	kitID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid kit ID format")
		return
	}

	kit, err := h.kitService.GetByID(c.Request.Context(), tenantID, kitID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, kit)
}

// List godoc
// @ID           listKits
// @Summary      List equipment kits
// @Tags         hr
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        employee_id query string false "Employee user ID" format(uuid)
// @Param        status_tag_id query string false "Status tag ID" format(uuid)
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20) maximum(100)
// @Success      200 {object} APIResponse[[]hrapp.KitResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /hr/kits [get]
func (h *KitHandler) List(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var filter hrapp.KitListFilter
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

	kits, total, err := h.kitService.List(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, kits, total, filter.Page, filter.PageSize)
}

// ListByEmployee godoc
// @ID           listKitsByEmployee
// @Summary      List kits assigned to an employee
// @Tags         hr
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        id path string true "Employee user ID" format(uuid)
// @Success      200 {object} APIResponse[[]hrapp.KitResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /hr/employees/{id}/kits [get]
func (h *KitHandler) ListByEmployee(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	employeeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid employee ID format")
		return
	}

	kits, err := h.kitService.ListByEmployee(c.Request.Context(), tenantID, employeeID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, kits)
}

// Update godoc
// @ID           updateKit
// @Summary      Update a kit
// @Description  Replace a kit's fields and item list
// @Tags         hr
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        id path string true "Kit ID" format(uuid)
// @Param        request body hrapp.KitRequest true "Kit update request"
// @Success      200 {object} APIResponse[hrapp.KitResponse]
// @Failure      404 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /hr/kits/{id} [put]
func (h *KitHandler) Update(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	kitID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid kit ID format")
		return
	}

	var req hrapp.KitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	kit, err := h.kitService.Update(c.Request.Context(), tenantID, kitID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, kit)
}

// Delete godoc
// @ID           deleteKit
// @Summary      Delete a kit
// @Tags         hr
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        id path string true "Kit ID" format(uuid)
// @Success      204 "No Content"
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /hr/kits/{id} [delete]
func (h *KitHandler) Delete(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	kitID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid kit ID format")
		return
	}

	if err := h.kitService.Delete(c.Request.Context(), tenantID, kitID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
