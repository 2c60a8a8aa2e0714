package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	financeapp "github.com/intranet/erp-backend/internal/application/finance"
)

// AuditHandler handles finance audit API endpoints
type AuditHandler struct {
	BaseHandler
	auditService *financeapp.AuditService
}

// NewAuditHandler creates a new AuditHandler
func NewAuditHandler(auditService *financeapp.AuditService) *AuditHandler {
	return &AuditHandler{
		auditService: auditService,
	}
}

// Create godoc
// @ID           createAudit
// @Summary      Create an audit engagement
// @Tags         finance
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        request body financeapp.AuditRequest true "Audit creation request"
// @Success      201 {object} APIResponse[financeapp.AuditResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      422 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /finance/audits [post]
func (h *AuditHandler) Create(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var req financeapp.AuditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	audit, err := h.auditService.Create(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, audit)
}

// GetByID godoc
// @ID           getAuditById
// @Summary      Get audit by ID
// @Tags         finance
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        id path string true "Audit ID" format(uuid)
// @Success      200 {object} APIResponse[financeapp.AuditResponse]
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /finance/audits/{id} [get]
func (h *AuditHandler) GetByID(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	auditID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid audit ID format")
		return
	}

	audit, err := h.auditService.GetByID(c.Request.Context(), tenantID, auditID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, audit)
}

// List godoc
// @ID           listAudits
// @Summary      List audits
// @Tags         finance
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        search query string false "Search term (title)"
// @Param        auditor_id query string false "Auditor user ID" format(uuid)
// @Param        status_tag_id query string false "Status tag ID" format(uuid)
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20) maximum(100)
// @Success      200 {object} APIResponse[[]financeapp.AuditResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /finance/audits [get]
func (h *AuditHandler) List(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var filter financeapp.AuditListFilter
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

	audits, total, err := h.auditService.List(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, audits, total, filter.Page, filter.PageSize)
}

// Update godoc
// @ID           updateAudit
// @Summary      Update an audit
// @Tags         finance
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        id path string true "Audit ID" format(uuid)
// @Param        request body financeapp.AuditRequest true "Audit update request"
// @Success      200 {object} APIResponse[financeapp.AuditResponse]
// @Failure      404 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /finance/audits/{id} [put]
func (h *AuditHandler) Update(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	auditID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid audit ID format")
		return
	}

	var req financeapp.AuditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	audit, err := h.auditService.Update(c.Request.Context(), tenantID, auditID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, audit)
}

// Delete godoc
// @ID           deleteAudit
// @Summary      Delete an audit
// @Tags         finance
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        id path string true "Audit ID" format(uuid)
// @Success      204 "No Content"
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /finance/audits/{id} [delete]
func (h *AuditHandler) Delete(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	auditID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid audit ID format")
		return
	}

	if err := h.auditService.Delete(c.Request.Context(), tenantID, auditID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
