package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GopalSonawane/ruprikal-artisan-e-commerce-platform/models"
	"github.com/GopalSonawane/ruprikal-artisan-e-commerce-platform/services"
)

// DiscountController handles HTTP requests for discount operations.
type DiscountController struct {
	discountService services.DiscountService
}

// NewDiscountController creates a new DiscountController.
func NewDiscountController(discountService services.DiscountService) *DiscountController {
	return &DiscountController{discountService: discountService}
}

// CreateDiscount handles POST /discounts (admin only).
func (dc *DiscountController) CreateDiscount(ctx *gin.Context) {
	var req models.CreateDiscountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	discount, svcErr := dc.discountService.CreateDiscount(ctx.Request.Context(), &req)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"discount": discount})
}

// ValidateDiscount handles POST /discounts/validate (called by the cart page).
func (dc *DiscountController) ValidateDiscount(ctx *gin.Context) {
	var req models.ValidateDiscountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	resp, svcErr := dc.discountService.Validate(ctx.Request.Context(), req.Code, req.Subtotal)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// GetDiscount handles GET /discounts/:code.
func (dc *DiscountController) GetDiscount(ctx *gin.Context) {
	code := ctx.Param("code")
	if code == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Discount code is required"})
		return
	}

	discount, svcErr := dc.discountService.GetDiscount(ctx.Request.Context(), code)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"discount": discount})
}

// DeactivateDiscount handles DELETE /discounts/:code (admin only).
func (dc *DiscountController) DeactivateDiscount(ctx *gin.Context) {
	code := ctx.Param("code")
	if code == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Discount code is required"})
		return
	}

	if svcErr := dc.discountService.DeactivateDiscount(ctx.Request.Context(), code); svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Discount deactivated"})
}

// ListDiscounts handles GET /discounts (admin only).
func (dc *DiscountController) ListDiscounts(ctx *gin.Context) {
	page, limit := parsePaginationParams(ctx)

	discounts, total, svcErr := dc.discountService.ListDiscounts(ctx.Request.Context(), page, limit)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"discounts": discounts,
		"meta":      paginationMeta(page, limit, total),
	})
}
