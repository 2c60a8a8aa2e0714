package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	hrapp "github.com/intranet/erp-backend/internal/application/hr"
)

// ContractHandler handles employment contract API endpoints
type ContractHandler struct {
	BaseHandler
	contractService *hrapp.ContractService
}

// NewContractHandler creates a new ContractHandler
func NewContractHandler(contractService *hrapp.ContractService) *ContractHandler {
	return &ContractHandler{
		contractService: contractService,
	}
}

// Create godoc
// @ID           createContract
// @Summary      Create an employment contract
// @Tags         hr
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        request body hrapp.ContractRequest true "Contract creation request"
// @Success      201 {object} APIResponse[hrapp.ContractResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      422 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /hr/contracts [post]
func (h *ContractHandler) Create(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var req hrapp.ContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	contract, err := h.contractService.Create(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, contract)
}

// GetByID godoc
// @ID           getContractById
// @Summary      Get contract by ID
// @Tags         hr
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        id path string true "Contract ID" format(uuid)
// @Success      200 {object} APIResponse[hrapp.ContractResponse]
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /hr/contracts/{id} [get]
func (h *ContractHandler) GetByID(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	contractID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid contract ID format")
		return
	}

	contract, err := h.contractService.GetByID(c.Request.Context(), tenantID, contractID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, contract)
}

// List godoc
// @ID           listContracts
// @Summary      List employment contracts
// @Tags         hr
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        search query string false "Search term (role title)"
// @Param        employee_id query string false "Employee user ID" format(uuid)
// @Param        type_tag_id query string false "Type tag ID" format(uuid)
// @Param        status_tag_id query string false "Status tag ID" format(uuid)
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20) maximum(100)
// @Success      200 {object} APIResponse[[]hrapp.ContractResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /hr/contracts [get]
func (h *ContractHandler) List(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var filter hrapp.ContractListFilter
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

	contracts, total, err := h.contractService.List(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, contracts, total, filter.Page, filter.PageSize)
}

// ListByEmployee godoc
// @ID           listContractsByEmployee
// @Summary      List contracts of an employee
// @Description  Retrieve an employee's contract history, most recent first
// @Tags         hr
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        id path string true "Employee user ID" format(uuid)
// @Success      200 {object} APIResponse[[]hrapp.ContractResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /hr/employees/{id}/contracts [get]
func (h *ContractHandler) ListByEmployee(c *gin.Context) {
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

	contracts, err := h.contractService.ListByEmployee(c.Request.Context(), tenantID, employeeID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, contracts)
}

// Update godoc
// @ID           updateContract
// @Summary      Update a contract
// @Tags         hr
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        id path string true "Contract ID" format(uuid)
// @Param        request body hrapp.ContractRequest true "Contract update request"
// @Success      200 {object} APIResponse[hrapp.ContractResponse]
// @Failure      404 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /hr/contracts/{id} [put]
func (h *ContractHandler) Update(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	contractID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid contract ID format")
		return
	}

	var req hrapp.ContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	contract, err := h.contractService.Update(c.Request.Context(), tenantID, contractID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, contract)
}

// Delete godoc
// @ID           deleteContract
// @Summary      Delete a contract
// @Tags         hr
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        id path string true "Contract ID" format(uuid)
// @Success      204 "No Content"
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /hr/contracts/{id} [delete]
func (h *ContractHandler) Delete(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	contractID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid contract ID format")
		return
	}

	if err := h.contractService.Delete(c.Request.Context(), tenantID, contractID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
