package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	workflowapp "github.com/intranet/erp-backend/internal/application/workflow"
)

// ApprovalHandler handles workflow approval API endpoints
type ApprovalHandler struct {
	BaseHandler
	approvalService *workflowapp.ApprovalService
}

// NewApprovalHandler creates a new ApprovalHandler
func NewApprovalHandler(approvalService *workflowapp.ApprovalService) *ApprovalHandler {
	return &ApprovalHandler{
		approvalService: approvalService,
	}
}

// Create godoc
// @ID           createApproval
// @Summary      Open a new approval
// @Description  Open an approval with its approver panel and optional attachments
// @Tags         approvals
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        request body workflowapp.CreateApprovalRequest true "Approval creation request"
// @Success      201 {object} APIResponse[workflowapp.ApprovalResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      401 {object} dto.ErrorResponse
// @Failure      422 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /workflow/approvals [post]
func (h *ApprovalHandler) Create(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var req workflowapp.CreateApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	approval, err := h.approvalService.Create(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, approval)
}

// GetByID godoc
// @ID           getApprovalById
// @Summary      Get approval by ID
// @Tags         approvals
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        id path string true "Approval ID" format(uuid)
// @Success      200 {object} APIResponse[workflowapp.ApprovalResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /workflow/approvals/{id} [get]
func (h *ApprovalHandler) GetByID(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	approvalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid approval ID format")
		return
	}

	approval, err := h.approvalService.GetByID(c.Request.Context(), tenantID, approvalID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, approval)
}

// List godoc
// @ID           listApprovals
// @Summary      List approvals
// @Description  Retrieve a paginated list of approvals with optional filtering
// @Tags         approvals
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        search query string false "Search term (title, description)"
// @Param        status query string false "Approval status" Enums(PENDING, APPROVED, REJECTED)
// @Param        priority_tag_id query string false "Priority tag ID" format(uuid)
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20) maximum(100)
// @Param        order_by query string false "Order by field" default(created_at)
// @Param        order_dir query string false "Order direction" Enums(asc, desc) default(desc)
// @Success      200 {object} APIResponse[[]workflowapp.ApprovalResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /workflow/approvals [get]
func (h *ApprovalHandler) List(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var filter workflowapp.ApprovalListFilter
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

	approvals, total, err := h.approvalService.List(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, approvals, total, filter.Page, filter.PageSize)
}

// ListPending godoc
// @ID           listPendingApprovals
// @Summary      List approvals awaiting my decision
// @Description  Retrieve the approvals where the authenticated user still has a pending vote
// @Tags         approvals
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Success      200 {object} APIResponse[[]workflowapp.ApprovalResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      401 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /workflow/approvals/pending [get]
func (h *ApprovalHandler) ListPending(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	userID, err := getUserID(c)
	if err != nil || userID == uuid.Nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var filter workflowapp.ApprovalListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	approvals, err := h.approvalService.ListPendingForUser(c.Request.Context(), tenantID, userID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, approvals)
}

// Update godoc
// @ID           updateApproval
// @Summary      Update an approval
// @Description  Replace the editable fields of an unresolved approval
// @Tags         approvals
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        id path string true "Approval ID" format(uuid)
// @Param        request body workflowapp.UpdateApprovalRequest true "Approval update request"
// @Success      200 {object} APIResponse[workflowapp.ApprovalResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Failure      422 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /workflow/approvals/{id} [put]
func (h *ApprovalHandler) Update(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	approvalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid approval ID format")
		return
	}

	var req workflowapp.UpdateApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	approval, err := h.approvalService.Update(c.Request.Context(), tenantID, approvalID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, approval)
}

type decisionRequest struct {
	Comment string `json:"comment"`
}

// Approve godoc
// @ID           approveApproval
// @Summary      Approve on an approval
// @Description  Record an approving vote on behalf of the authenticated approver
// @Tags         approvals
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        id path string true "Approval ID" format(uuid)
// @Param        request body decisionRequest false "Optional comment"
// @Success      200 {object} APIResponse[workflowapp.ApprovalResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      401 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      422 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /workflow/approvals/{id}/approve [post]
func (h *ApprovalHandler) Approve(c *gin.Context) {
	h.decide(c, true)
}

// Reject godoc
// @ID           rejectApproval
// @Summary      Reject on an approval
// @Description  Record a rejecting vote on behalf of the authenticated approver
// @Tags         approvals
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        id path string true "Approval ID" format(uuid)
// @Param        request body decisionRequest false "Optional comment"
// @Success      200 {object} APIResponse[workflowapp.ApprovalResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      401 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      422 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /workflow/approvals/{id}/reject [post]
func (h *ApprovalHandler) Reject(c *gin.Context) {
	h.decide(c, false)
}

func (h *ApprovalHandler) decide(c *gin.Context, approve bool) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	approvalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid approval ID format")
		return
	}

	userID, err := getUserID(c)
	if err != nil || userID == uuid.Nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	// The comment body is optional, an empty request is a bare vote.
	var body decisionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&body); err != nil {
			h.HandleBindingError(c, err)
			return
		}
	}

	req := workflowapp.DecideRequest{Approve: &approve, Comment: body.Comment}

	approval, err := h.approvalService.Decide(c.Request.Context(), tenantID, approvalID, userID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, approval)
}

// Delete godoc
// @ID           deleteApproval
// @Summary      Delete an approval
// @Description  Remove an unresolved approval and its approver panel
// @Tags         approvals
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        id path string true "Approval ID" format(uuid)
// @Success      204 "No Content"
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      422 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /workflow/approvals/{id} [delete]
func (h *ApprovalHandler) Delete(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	approvalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid approval ID format")
		return
	}

	if err := h.approvalService.Delete(c.Request.Context(), tenantID, approvalID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
