package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	hrapp "github.com/intranet/erp-backend/internal/application/hr"
)

// AttendanceHandler handles HR attendance API endpoints
type AttendanceHandler struct {
	BaseHandler
	attendanceService *hrapp.AttendanceService
}

// NewAttendanceHandler creates a new AttendanceHandler
func NewAttendanceHandler(attendanceService *hrapp.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{
		attendanceService: attendanceService,
	}
}

// Create godoc
// @ID           createAttendance
// @Summary      Record an attendance entry
// @Tags         hr
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        request body hrapp.AttendanceRequest true "Attendance creation request"
// @Success      201 {object} APIResponse[hrapp.AttendanceResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /hr/attendances [post]
func (h *AttendanceHandler) Create(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var req hrapp.AttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	attendance, err := h.attendanceService.Create(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, attendance)
}

// GetByID godoc
// @ID           getAttendanceById
// @Summary      Get attendance entry by ID
// @Tags         hr
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        id path string true "Attendance ID" format(uuid)
// @Success      200 {object} APIResponse[hrapp.AttendanceResponse]
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /hr/attendances/{id} [get]
func (h *AttendanceHandler) GetByID(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	attendanceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid attendance ID format")
		return
	}

	attendance, err := h.attendanceService.GetByID(c.Request.Context(), tenantID, attendanceID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, attendance)
}

// List godoc
// @ID           listAttendances
// @Summary      List attendance entries
// @Tags         hr
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        employee_id query string false "Employee user ID" format(uuid)
// @Param        type_tag_id query string false "Type tag ID" format(uuid)
// @Param        date_from query string false "Start date (inclusive)" format(date)
// @Param        date_until query string false "End date (inclusive)" format(date)
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20) maximum(100)
// @Success      200 {object} APIResponse[[]hrapp.AttendanceResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /hr/attendances [get]
func (h *AttendanceHandler) List(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var filter hrapp.AttendanceListFilter
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

	attendances, total, err := h.attendanceService.List(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, attendances, total, filter.Page, filter.PageSize)
}

// Update godoc
// @ID           updateAttendance
// @Summary      Update an attendance entry
// @Tags         hr
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        id path string true "Attendance ID" format(uuid)
// @Param        request body hrapp.AttendanceRequest true "Attendance update request"
// @Success      200 {object} APIResponse[hrapp.AttendanceResponse]
// @Failure      404 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /hr/attendances/{id} [put]
func (h *AttendanceHandler) Update(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	attendanceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid attendance ID format")
		return
	}

	var req hrapp.AttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	attendance, err := h.attendanceService.Update(c.Request.Context(), tenantID, attendanceID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, attendance)
}

// Delete godoc
// @ID           deleteAttendance
// @Summary      Delete an attendance entry
// @Tags         hr
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        id path string true "Attendance ID" format(uuid)
// @Success      204 "No Content"
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /hr/attendances/{id} [delete]
func (h *AttendanceHandler) Delete(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	attendanceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid attendance ID format")
		return
	}

	if err := h.attendanceService.Delete(c.Request.Context(), tenantID, attendanceID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
