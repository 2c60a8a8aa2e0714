package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	hrapp "github.com/intranet/erp-backend/internal/application/hr"
)

// InterviewHandler handles candidate interview API endpoints
type InterviewHandler struct {
	BaseHandler
	interviewService *hrapp.InterviewService
}

// NewInterviewHandler creates a new InterviewHandler
func NewInterviewHandler(interviewService *hrapp.InterviewService) *InterviewHandler {
	return &InterviewHandler{
		interviewService: interviewService,
	}
}

// Create godoc
// @ID           createInterview
// @Summary      Schedule a candidate interview
// @Tags         hr
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        request body hrapp.InterviewRequest true "Interview creation request"
// @Success      201 {object} APIResponse[hrapp.InterviewResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      422 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /hr/interviews [post]
func (h *InterviewHandler) Create(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var req hrapp.InterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	interview, err := h.interviewService.Create(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, interview)
}

// GetByID godoc
// @ID           getInterviewById
// @Summary      Get interview by ID
// @Tags         hr
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        id path string true "Interview ID" format(uuid)
// @Success      200 {object} APIResponse[hrapp.InterviewResponse]
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /hr/interviews/{id} [get]
func (h *InterviewHandler) GetByID(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	interviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid interview ID format")
		return
	}

	interview, err := h.interviewService.GetByID(c.Request.Context(), tenantID, interviewID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, interview)
}

// List godoc
// @ID           listInterviews
// @Summary      List interviews
// @Tags         hr
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        search query string false "Search term (candidate name, position)"
// @Param        interviewer_id query string false "Interviewer user ID" format(uuid)
// @Param        stage_tag_id query string false "Stage tag ID" format(uuid)
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20) maximum(100)
// @Success      200 {object} APIResponse[[]hrapp.InterviewResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /hr/interviews [get]
func (h *InterviewHandler) List(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var filter hrapp.InterviewListFilter
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

	interviews, total, err := h.interviewService.List(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, interviews, total, filter.Page, filter.PageSize)
}

// Update godoc
// @ID           updateInterview
// @Summary      Update an interview
// @Tags         hr
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        id path string true "Interview ID" format(uuid)
// @Param        request body hrapp.InterviewRequest true "Interview update request"
// @Success      200 {object} APIResponse[hrapp.InterviewResponse]
// @Failure      404 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /hr/interviews/{id} [put]
func (h *InterviewHandler) Update(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	interviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid interview ID format")
		return
	}

	var req hrapp.InterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	interview, err := h.interviewService.Update(c.Request.Context(), tenantID, interviewID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, interview)
}

// Delete godoc
// @ID           deleteInterview
// @Summary      Delete an interview
// @Tags         hr
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        id path string true "Interview ID" format(uuid)
// @Success      204 "No Content"
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /hr/interviews/{id} [delete]
func (h *InterviewHandler) Delete(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	interviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid interview ID format")
		return
	}

	if err := h.interviewService.Delete(c.Request.Context(), tenantID, interviewID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
