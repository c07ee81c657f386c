// internal/handlers/brand.go
package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/javlonbek/shoeshop-backend/internal/i18n"
	"github.com/javlonbek/shoeshop-backend/internal/services"
	"github.com/javlonbek/shoeshop-backend/internal/utils"
)

type BrandHandler struct {
	brandService   *services.BrandService
	storageService *services.StorageService
}

func NewBrandHandler(brandService *services.BrandService, storageService *services.StorageService) *BrandHandler {
	return &BrandHandler{
		brandService:   brandService,
		storageService: storageService,
	}
}

// GET /brands
func (h *BrandHandler) GetBrands(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	searchParams := services.BrandSearchParams{
		PaginationParams: params,
	}

	if isActiveStr := c.Query("is_active"); isActiveStr != "" {
		if isActive, err := strconv.ParseBool(isActiveStr); err == nil {
			searchParams.IsActive = &isActive
		}
	}

	brands, total, err := h.brandService.ListBrands(searchParams)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	result := utils.CreatePaginationResult(brands, total, params)
	utils.PaginatedResponse(c, result)
}

// GET /brands/:id
func (h *BrandHandler) GetBrand(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid brand ID", nil)
		return
	}

	brand, err := h.brandService.GetBrand(id)
	if err != nil {
		if errors.Is(err, services.ErrBrandNotFound) {
			utils.NotFoundResponse(c, "brand")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"brand": brand,
	})
}

// POST /brands
func (h *BrandHandler) CreateBrand(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.CreateBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	brand, err := h.brandService.CreateBrand(&req)
	if err != nil {
		if errors.Is(err, services.ErrBrandNameTaken) {
			utils.ConflictResponse(c, i18n.T(lang, i18n.KeyBrandNameTaken))
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyBrandCreated),
		"brand":   brand,
	})
}

// PUT /brands/:id
func (h *BrandHandler) UpdateBrand(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid brand ID", nil)
		return
	}

	var req services.UpdateBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	brand, err := h.brandService.UpdateBrand(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrBrandNotFound):
			utils.NotFoundResponse(c, "brand")
		case errors.Is(err, services.ErrBrandNameTaken):
			utils.ConflictResponse(c, i18n.T(lang, i18n.KeyBrandNameTaken))
		default:
			utils.BadRequestResponse(c, err.Error(), nil)
		}
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyBrandUpdated),
		"brand":   brand,
	})
}

// DELETE /brands/:id
func (h *BrandHandler) DeleteBrand(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid brand ID", nil)
		return
	}

	if err := h.brandService.DeleteBrand(id); err != nil {
		if errors.Is(err, services.ErrBrandNotFound) {
			utils.NotFoundResponse(c, "brand")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyBrandDeleted),
	})
}

// POST /brands/upload-logo
func (h *BrandHandler) UploadBrandLogo(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	fileHeader, err := c.FormFile("logo")
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyFileUploadFailed), err.Error())
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyFileUploadFailed), err.Error())
		return
	}
	defer file.Close()

	if err := h.storageService.ValidateImage(file); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyFileUploadFailed), err.Error())
		return
	}

	options := h.storageService.GetDefaultUploadOptions("brands")
	result, err := h.storageService.UploadFile(file, fileHeader, options)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyFileUploadSuccess),
		"logo": gin.H{
			"url":       result.URL,
			"key":       result.Key,
			"size":      result.Size,
			"mime_type": result.MimeType,
		},
	})
}
