package handler

import (
	"github.com/gin-gonic/gin"

	referenceapp "github.com/intranet/erp-backend/internal/application/reference"
)

// OptionsHandler serves the aggregated select-box options per module
type OptionsHandler struct {
	BaseHandler
	optionsService *referenceapp.OptionsService
}

// NewOptionsHandler creates a new OptionsHandler
func NewOptionsHandler(optionsService *referenceapp.OptionsService) *OptionsHandler {
	return &OptionsHandler{
		optionsService: optionsService,
	}
}

// ModuleOptions godoc
// @ID           getModuleOptions
// @Summary      Get form options for a module
// @Description  Retrieve every option list (tags, users, projects, contacts) a module's forms need, in one call
// @Tags         options
// @Produce      json
// @Param        X-Tenant-ID header string false "Tenant ID (optional for dev)"
// @Param        module path string true "Module name" Enums(workflow, crm, finance, licensing, marketing, collab, hr, files)
// @Success      200 {object} APIResponse[map[string][]reference.OptionItem]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /reference/options/{module} [get]
func (h *OptionsHandler) ModuleOptions(c *gin.Context) {
	module := c.Param("module")
	if module == "" {
		h.BadRequest(c, "Module name is required")
		return
	}

	h.serveModule(c, module)
}

// ForModule returns a handler serving the option lists of a fixed module,
// mounted as the /options route of that module's resource group.
func (h *OptionsHandler) ForModule(module string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h.serveModule(c, module)
	}
}

func (h *OptionsHandler) serveModule(c *gin.Context, module string) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	options, err := h.optionsService.ModuleOptions(c.Request.Context(), tenantID, module)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, options)
}
