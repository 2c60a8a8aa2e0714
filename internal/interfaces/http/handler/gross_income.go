package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	financeapp "github.com/intranet/erp-backend/internal/application/finance"
)

// GrossIncomeHandler handles monthly gross income API endpoints
type GrossIncomeHandler struct {
	BaseHandler
	incomeService *financeapp.GrossIncomeService
}

// NewGrossIncomeHandler creates a new GrossIncomeHandler
func NewGrossIncomeHandler(incomeService *financeapp.GrossIncomeService) *GrossIncomeHandler {
	return &GrossIncomeHandler{
		incomeService: incomeService,
	}
}

// Create godoc
// @ID           createGrossIncome
// @Summary      Record a gross income entry
// @Tags         finance
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        request body financeapp.GrossIncomeRequest true "Gross income creation request"
// @Success      201 {object} APIResponse[financeapp.GrossIncomeResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      422 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /finance/gross-incomes [post]
func (h *GrossIncomeHandler) Create(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var req financeapp.GrossIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	income, err := h.incomeService.Create(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, income)
}

// GetByID godoc
// @ID           getGrossIncomeById
// @Summary      Get gross income entry by ID
// @Tags         finance
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        id path string true "Gross income ID" format(uuid)
// @Success      200 {object} APIResponse[financeapp.GrossIncomeResponse]
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /finance/gross-incomes/{id} [get]
func (h *GrossIncomeHandler) GetByID(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	incomeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid gross income ID format")
		return
	}

	income, err := h.incomeService.GetByID(c.Request.Context(), tenantID, incomeID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, income)
}

// List godoc
// @ID           listGrossIncomes
// @Summary      List gross income entries
// @Description  Retrieve a paginated list of gross income entries, newest period first by default
// @Tags         finance
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        search query string false "Search term (concept)"
// @Param        year query int false "Fiscal year"
// @Param        month query int false "Month (1-12)"
// @Param        contact_id query string false "Client contact ID" format(uuid)
// @Param        status_tag_id query string false "Status tag ID" format(uuid)
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20) maximum(100)
// @Success      200 {object} APIResponse[[]financeapp.GrossIncomeResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /finance/gross-incomes [get]
func (h *GrossIncomeHandler) List(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var filter financeapp.GrossIncomeListFilter
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

	incomes, total, err := h.incomeService.List(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, incomes, total, filter.Page, filter.PageSize)
}

// Summary godoc
// @ID           grossIncomeSummary
// @Summary      Monthly totals for a year
// @Description  Retrieve per-month totals and entry counts for the given fiscal year
// @Tags         finance
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        year query int false "Fiscal year (defaults to the current year)"
// @Success      200 {object} APIResponse[[]finance.GrossIncomeSummary]
// @Failure      400 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /finance/gross-incomes/summary [get]
func (h *GrossIncomeHandler) Summary(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	year := time.Now().Year()
	if raw := c.Query("year"); raw != "" {
		year, err = strconv.Atoi(raw)
		if err != nil || year < 2000 || year > 2100 {
			h.BadRequest(c, "Invalid year")
			return
		}
	}

	summary, err := h.incomeService.Summary(c.Request.Context(), tenantID, year)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, summary)
}

// Update godoc
// @ID           updateGrossIncome
// @Summary      Update a gross income entry
// @Tags         finance
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        id path string true "Gross income ID" format(uuid)
// @Param        request body financeapp.GrossIncomeRequest true "Gross income update request"
// @Success      200 {object} APIResponse[financeapp.GrossIncomeResponse]
// @Failure      404 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /finance/gross-incomes/{id} [put]
func (h *GrossIncomeHandler) Update(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	incomeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid gross income ID format")
		return
	}

	var req financeapp.GrossIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	income, err := h.incomeService.Update(c.Request.Context(), tenantID, incomeID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, income)
}

// Delete godoc
// @ID           deleteGrossIncome
// @Summary      Delete a gross income entry
// @Tags         finance
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        id path string true "Gross income ID" format(uuid)
// @Success      204 "No Content"
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /finance/gross-incomes/{id} [delete]
func (h *GrossIncomeHandler) Delete(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	incomeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid gross income ID format")
		return
	}

	if err := h.incomeService.Delete(c.Request.Context(), tenantID, incomeID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
