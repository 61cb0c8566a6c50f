package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/GopalSonawane/ruprikal-artisan-e-commerce-platform/models"
	"github.com/GopalSonawane/ruprikal-artisan-e-commerce-platform/services"
)

// CategoryController handles HTTP requests for product categories.
type CategoryController struct {
	categoryService services.CategoryService
}

// NewCategoryController creates a new CategoryController.
func NewCategoryController(categoryService services.CategoryService) *CategoryController {
	return &CategoryController{categoryService: categoryService}
}

// CreateCategory handles POST /categories (admin only).
func (cc *CategoryController) CreateCategory(ctx *gin.Context) {
	var req models.CreateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	category, svcErr := cc.categoryService.CreateCategory(ctx.Request.Context(), &req)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"category": category})
}

// GetCategory handles GET /categories/:idOrSlug.
func (cc *CategoryController) GetCategory(ctx *gin.Context) {
	category, svcErr := cc.categoryService.GetCategory(ctx.Request.Context(), ctx.Param("idOrSlug"))
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"category": category})
}

// ListCategories handles GET /categories. The public listing only shows
// active categories; admins pass include_inactive=true to see everything.
func (cc *CategoryController) ListCategories(ctx *gin.Context) {
	activeOnly := ctx.Query("include_inactive") != "true"

	categories, svcErr := cc.categoryService.ListCategories(ctx.Request.Context(), activeOnly)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"categories": categories})
}

// DeactivateCategory handles DELETE /categories/:idOrSlug (admin only).
func (cc *CategoryController) DeactivateCategory(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("idOrSlug"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
		return
	}

	if svcErr := cc.categoryService.DeactivateCategory(ctx.Request.Context(), id); svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Category deactivated"})
}
