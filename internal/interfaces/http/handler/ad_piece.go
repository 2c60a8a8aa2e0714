package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	marketingapp "github.com/intranet/erp-backend/internal/application/marketing"
)

// AdPieceHandler handles marketing ad piece API endpoints
type AdPieceHandler struct {
	BaseHandler
	adPieceService *marketingapp.AdPieceService
}

// NewAdPieceHandler creates a new AdPieceHandler
func NewAdPieceHandler(adPieceService *marketingapp.AdPieceService) *AdPieceHandler {
	return &AdPieceHandler{
		adPieceService: adPieceService,
	}
}

// Create godoc
// @ID           createAdPiece
// @Summary      Create an ad piece
// @Tags         marketing
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        request body marketingapp.AdPieceRequest true "Ad piece creation request"
// @Success      201 {object} APIResponse[marketingapp.AdPieceResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      422 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /marketing/ad-pieces [post]
func (h *AdPieceHandler) Create(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var req marketingapp.AdPieceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	piece, err := h.adPieceService.Create(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, piece)
}

// GetByID godoc
// @ID           getAdPieceById
// @Summary      Get ad piece by ID
// @Tags         marketing
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        id path string true "Ad piece ID" format(uuid)
// @Success      200 {object} APIResponse[marketingapp.AdPieceResponse]
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /marketing/ad-pieces/{id} [get]
func (h *AdPieceHandler) GetByID(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	pieceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid ad piece ID format")
		return
	}

	piece, err := h.adPieceService.GetByID(c.Request.Context(), tenantID, pieceID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, piece)
}

// List godoc
// @ID           listAdPieces
// @Summary      List ad pieces
// @Tags         marketing
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        search query string false "Search term (title, campaign)"
// @Param        campaign query string false "Campaign name"
// @Param        channel_tag_id query string false "Channel tag ID" format(uuid)
// @Param        format_tag_id query string false "Format tag ID" format(uuid)
// @Param        status_tag_id query string false "Status tag ID" format(uuid)
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20) maximum(100)
// @Success      200 {object} APIResponse[[]marketingapp.AdPieceResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /marketing/ad-pieces [get]
func (h *AdPieceHandler) List(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var filter marketingapp.AdPieceListFilter
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

	pieces, total, err := h.adPieceService.List(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, pieces, total, filter.Page, filter.PageSize)
}

// ListByCampaign godoc
// @ID           listAdPiecesByCampaign
// @Summary      List ad pieces of a campaign
// @Description  Retrieve every piece of a campaign ordered by publish date
// @Tags         marketing
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        campaign path string true "Campaign name"
// @Success      200 {object} APIResponse[[]marketingapp.AdPieceResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /marketing/campaigns/{campaign}/ad-pieces [get]
func (h *AdPieceHandler) ListByCampaign(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	campaign := c.Param("campaign")
	if campaign == "" {
		h.BadRequest(c, "Campaign name is required")
		return
	}

	pieces, err := h.adPieceService.ListByCampaign(c.Request.Context(), tenantID, campaign)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, pieces)
}

// Update godoc
// @ID           updateAdPiece
// @Summary      Update an ad piece
// @Tags         marketing
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        id path string true "Ad piece ID" format(uuid)
// @Param        request body marketingapp.AdPieceRequest true "Ad piece update request"
// @Success      200 {object} APIResponse[marketingapp.AdPieceResponse]
// @Failure      404 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /marketing/ad-pieces/{id} [put]
func (h *AdPieceHandler) Update(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	pieceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid ad piece ID format")
		return
	}

	var req marketingapp.AdPieceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	piece, err := h.adPieceService.Update(c.Request.Context(), tenantID, pieceID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, piece)
}

// Delete godoc
// @ID           deleteAdPiece
// @Summary      Delete an ad piece
// @Tags         marketing
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        id path string true "Ad piece ID" format(uuid)
// @Success      204 "No Content"
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /marketing/ad-pieces/{id} [delete]
func (h *AdPieceHandler) Delete(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	pieceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid ad piece ID format")
		return
	}

	if err := h.adPieceService.Delete(c.Request.Context(), tenantID, pieceID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
