package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	filesapp "github.com/intranet/erp-backend/internal/application/files"
)

// AttachmentHandler handles file attachment API endpoints
type AttachmentHandler struct {
	BaseHandler
	attachmentService *filesapp.AttachmentService
}

// NewAttachmentHandler creates a new AttachmentHandler
func NewAttachmentHandler(attachmentService *filesapp.AttachmentService) *AttachmentHandler {
	return &AttachmentHandler{
		attachmentService: attachmentService,
	}
}

// ListByOwnerQuery identifies the owning record for attachment listing
type ListByOwnerQuery struct {
	OwnerType string `form:"owner_type" binding:"required"`
	OwnerID   string `form:"owner_id" binding:"required,uuid"`
}

// InitiateUpload godoc
// @ID           initiateUpload
// @Summary      Request a presigned upload URL
// @Description  Create a pending attachment record and return a URL the client PUTs the file to
// @Tags         files
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        request body filesapp.InitiateUploadRequest true "Upload initiation request"
// @Success      201 {object} APIResponse[filesapp.InitiateUploadResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      401 {object} dto.ErrorResponse
// @Failure      422 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /files/uploads [post]
func (h *AttachmentHandler) InitiateUpload(c *gin.Context) {
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

	var req filesapp.InitiateUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	result, err := h.attachmentService.InitiateUpload(c.Request.Context(), tenantID, userID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, result)
}

// ConfirmUpload godoc
// @ID           confirmUpload
// @Summary      Confirm a completed upload
// @Description  Verify the object landed in storage and mark the attachment uploaded
// @Tags         files
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        id path string true "Attachment ID" format(uuid)
// @Success      200 {object} APIResponse[filesapp.AttachmentResponse]
// @Failure      404 {object} dto.ErrorResponse
// @Failure      422 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /files/{id}/confirm [post]
func (h *AttachmentHandler) ConfirmUpload(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	attachmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid attachment ID format")
		return
	}

	attachment, err := h.attachmentService.ConfirmUpload(c.Request.Context(), tenantID, attachmentID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, attachment)
}

// ListByOwner godoc
// @ID           listAttachmentsByOwner
// @Summary      List attachments of a record
// @Tags         files
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        owner_type query string true "Owner record type"
// @Param        owner_id query string true "Owner record ID" format(uuid)
// @Success      200 {object} APIResponse[[]filesapp.AttachmentResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      422 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /files [get]
func (h *AttachmentHandler) ListByOwner(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var query ListByOwnerQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	ownerID, err := uuid.Parse(query.OwnerID)
	if err != nil {
		h.BadRequest(c, "Invalid owner ID format")
		return
	}

	attachments, err := h.attachmentService.ListByOwner(c.Request.Context(), tenantID, query.OwnerType, ownerID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, attachments)
}

// DownloadURL godoc
// @ID           attachmentDownloadUrl
// @Summary      Request a presigned download URL
// @Tags         files
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        id path string true "Attachment ID" format(uuid)
// @Success      200 {object} APIResponse[filesapp.DownloadURLResponse]
// @Failure      404 {object} dto.ErrorResponse
// @Failure      422 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /files/{id}/download [get]
func (h *AttachmentHandler) DownloadURL(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	attachmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid attachment ID format")
		return
	}

	result, err := h.attachmentService.DownloadURL(c.Request.Context(), tenantID, attachmentID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// Delete godoc
// @ID           deleteAttachment
// @Summary      Delete an attachment
// @Description  Remove the attachment record and its stored object
// @Tags         files
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        id path string true "Attachment ID" format(uuid)
// @Success      204 "No Content"
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /files/{id} [delete]
func (h *AttachmentHandler) Delete(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	attachmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid attachment ID format")
		return
	}

	if err := h.attachmentService.Delete(c.Request.Context(), tenantID, attachmentID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
