// internal/handlers/admin.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/javlonbek/shoeshop-backend/internal/i18n"
	"github.com/javlonbek/shoeshop-backend/internal/services"
	"github.com/javlonbek/shoeshop-backend/internal/utils"
)

type AdminHandler struct {
	adminService   *services.AdminService
	productService *services.ProductService
}

type BulkActionRequest struct {
	Action string      `json:"action" validate:"required"`
	IDs    []uuid.UUID `json:"ids" validate:"required,min=1"`
}

func NewAdminHandler(adminService *services.AdminService, productService *services.ProductService) *AdminHandler {
	return &AdminHandler{
		adminService:   adminService,
		productService: productService,
	}
}

// GET /admin/dashboard
func (h *AdminHandler) GetDashboard(c *gin.Context) {
	stats, err := h.adminService.GetDashboardStats()
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"stats": stats,
	})
}

// POST /admin/products/bulk
func (h *AdminHandler) BulkProductAction(c *gin.Context) {
	req, ok := h.bindBulkRequest(c)
	if !ok {
		return
	}

	affected, err := h.adminService.RunProductBulkAction(
		services.ProductBulkAction(req.Action), req.IDs, h.productService)
	h.respondBulk(c, affected, err)
}

// POST /admin/sizes/bulk
func (h *AdminHandler) BulkSizeAction(c *gin.Context) {
	req, ok := h.bindBulkRequest(c)
	if !ok {
		return
	}

	affected, err := h.adminService.RunSizeBulkAction(services.SizeBulkAction(req.Action), req.IDs)
	h.respondBulk(c, affected, err)
}

// POST /admin/brands/bulk
func (h *AdminHandler) BulkBrandAction(c *gin.Context) {
	req, ok := h.bindBulkRequest(c)
	if !ok {
		return
	}

	affected, err := h.adminService.RunBrandBulkAction(services.BrandBulkAction(req.Action), req.IDs)
	h.respondBulk(c, affected, err)
}

func (h *AdminHandler) bindBulkRequest(c *gin.Context) (*BulkActionRequest, bool) {
	lang := utils.GetLangFromContext(c)

	var req BulkActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return nil, false
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return nil, false
	}

	return &req, true
}

func (h *AdminHandler) respondBulk(c *gin.Context, affected int64, err error) {
	lang := utils.GetLangFromContext(c)

	if err != nil {
		switch {
		case errors.Is(err, services.ErrUnknownBulkAction):
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyBulkUnknownAction), nil)
		case errors.Is(err, services.ErrProductNotFound):
			utils.NotFoundResponse(c, "product")
		default:
			utils.InternalErrorResponse(c, err.Error())
		}
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":  i18n.T(lang, i18n.KeyBulkCompleted, affected),
		"affected": affected,
	})
}
