package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	referenceapp "github.com/intranet/erp-backend/internal/application/reference"
)

// TagHandler handles reference tag API endpoints
type TagHandler struct {
	BaseHandler
	tagService *referenceapp.TagService
}

// NewTagHandler creates a new TagHandler
func NewTagHandler(tagService *referenceapp.TagService) *TagHandler {
	return &TagHandler{
		tagService: tagService,
	}
}

// Domains godoc
// @ID           listTagDomains
// @Summary      List tag domains
// @Description  Retrieve the closed set of domains a tag may belong to
// @Tags         tags
// @Produce      json
// @Success      200 {object} APIResponse[[]string]
// @Security     BearerAuth
// @Router       /reference/tags/domains [get]
func (h *TagHandler) Domains(c *gin.Context) {
	h.Success(c, h.tagService.Domains())
}

// Create godoc
// @ID           createTag
// @Summary      Create a new tag
// @Tags         tags
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        request body referenceapp.CreateTagRequest true "Tag creation request"
// @Success      201 {object} APIResponse[referenceapp.TagResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /reference/tags [post]
func (h *TagHandler) Create(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var req referenceapp.CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	tag, err := h.tagService.Create(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, tag)
}

// GetByID godoc
// @ID           getTagById
// @Summary      Get tag by ID
// @Tags         tags
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        id path string true "Tag ID" format(uuid)
// @Success      200 {object} APIResponse[referenceapp.TagResponse]
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /reference/tags/{id} [get]
func (h *TagHandler) GetByID(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	tagID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid tag ID format")
		return
	}

	tag, err := h.tagService.GetByID(c.Request.Context(), tenantID, tagID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, tag)
}

// List godoc
// @ID           listTags
// @Summary      List tags
// @Description  Retrieve a paginated list of tags with optional filtering by domain
// @Tags         tags
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        search query string false "Search term (name)"
// @Param        domain query string false "Tag domain"
// @Param        active query bool false "Active flag"
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20) maximum(100)
// @Success      200 {object} APIResponse[[]referenceapp.TagResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /reference/tags [get]
func (h *TagHandler) List(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var filter referenceapp.TagListFilter
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

	tags, total, err := h.tagService.List(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, tags, total, filter.Page, filter.PageSize)
}

// Update godoc
// @ID           updateTag
// @Summary      Update a tag
// @Tags         tags
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        id path string true "Tag ID" format(uuid)
// @Param        request body referenceapp.UpdateTagRequest true "Tag update request"
// @Success      200 {object} APIResponse[referenceapp.TagResponse]
// @Failure      404 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /reference/tags/{id} [put]
func (h *TagHandler) Update(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	tagID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid tag ID format")
		return
	}

	var req referenceapp.UpdateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	tag, err := h.tagService.Update(c.Request.Context(), tenantID, tagID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, tag)
}

// Delete godoc
// @ID           deleteTag
// @Summary      Delete a tag
// @Tags         tags
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        id path string true "Tag ID" format(uuid)
// @Success      204 "No Content"
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /reference/tags/{id} [delete]
func (h *TagHandler) Delete(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	tagID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid tag ID format")
		return
	}

	if err := h.tagService.Delete(c.Request.Context(), tenantID, tagID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
