package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	collabapp "github.com/intranet/erp-backend/internal/application/collab"
)

// MeetingHandler handles collaboration meeting API endpoints
type MeetingHandler struct {
	BaseHandler
	meetingService *collabapp.MeetingService
}

// NewMeetingHandler creates a new MeetingHandler
func NewMeetingHandler(meetingService *collabapp.MeetingService) *MeetingHandler {
	return &MeetingHandler{
		meetingService: meetingService,
	}
}

// Create godoc
// @ID           createMeeting
// @Summary      Schedule a meeting
// @Tags         meetings
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        request body collabapp.MeetingRequest true "Meeting creation request"
// @Success      201 {object} APIResponse[collabapp.MeetingResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      422 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /collab/meetings [post]
func (h *MeetingHandler) Create(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var req collabapp.MeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	meeting, err := h.meetingService.Create(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, meeting)
}

// GetByID godoc
// @ID           getMeetingById
// @Summary      Get meeting by ID
// @Tags         meetings
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        id path string true "Meeting ID" format(uuid)
// @Success      200 {object} APIResponse[collabapp.MeetingResponse]
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /collab/meetings/{id} [get]
func (h *MeetingHandler) GetByID(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	meetingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid meeting ID format")
		return
	}

	meeting, err := h.meetingService.GetByID(c.Request.Context(), tenantID, meetingID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, meeting)
}

// List godoc
// @ID           listMeetings
// @Summary      List meetings
// @Tags         meetings
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        search query string false "Search term (title, location)"
// @Param        organizer_id query string false "Organizer user ID" format(uuid)
// @Param        status_tag_id query string false "Status tag ID" format(uuid)
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20) maximum(100)
// @Success      200 {object} APIResponse[[]collabapp.MeetingResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /collab/meetings [get]
func (h *MeetingHandler) List(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var filter collabapp.MeetingListFilter
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

	meetings, total, err := h.meetingService.List(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, meetings, total, filter.Page, filter.PageSize)
}

// Calendar godoc
// @ID           meetingCalendar
// @Summary      Meetings in a date range
// @Description  Retrieve meetings starting within the given window, ordered by start time
// @Tags         meetings
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        from query string true "Window start (RFC 3339)" format(date-time)
// @Param        until query string true "Window end (RFC 3339)" format(date-time)
// @Success      200 {object} APIResponse[[]collabapp.MeetingResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /collab/meetings/calendar [get]
func (h *MeetingHandler) Calendar(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var filter collabapp.CalendarFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	meetings, err := h.meetingService.Calendar(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, meetings)
}

// Update godoc
// @ID           updateMeeting
// @Summary      Update a meeting
// @Tags         meetings
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        id path string true "Meeting ID" format(uuid)
// @Param        request body collabapp.MeetingRequest true "Meeting update request"
// @Success      200 {object} APIResponse[collabapp.MeetingResponse]
// @Failure      404 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /collab/meetings/{id} [put]
func (h *MeetingHandler) Update(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	meetingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid meeting ID format")
		return
	}

	var req collabapp.MeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	meeting, err := h.meetingService.Update(c.Request.Context(), tenantID, meetingID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, meeting)
}

// Delete godoc
// @ID           deleteMeeting
// @Summary      Delete a meeting
// @Tags         meetings
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        id path string true "Meeting ID" format(uuid)
// @Success      204 "No Content"
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /collab/meetings/{id} [delete]
func (h *MeetingHandler) Delete(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	meetingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid meeting ID format")
		return
	}

	if err := h.meetingService.Delete(c.Request.Context(), tenantID, meetingID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
