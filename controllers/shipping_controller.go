package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GopalSonawane/ruprikal-artisan-e-commerce-platform/models"
	"github.com/GopalSonawane/ruprikal-artisan-e-commerce-platform/services"
)

// ShippingController handles HTTP requests for shipping rules and pincode
// serviceability checks.
type ShippingController struct {
	shippingService services.ShippingService
}

// NewShippingController creates a new ShippingController.
func NewShippingController(shippingService services.ShippingService) *ShippingController {
	return &ShippingController{shippingService: shippingService}
}

// CheckPincode handles GET /shipping/pincode/:pincode.
func (sc *ShippingController) CheckPincode(ctx *gin.Context) {
	pincode := ctx.Param("pincode")

	rule, svcErr := sc.shippingService.CheckPincode(ctx.Request.Context(), pincode)
	if svcErr != nil {
		resp := gin.H{"error": svcErr.Message}
		if svcErr.Code != "" {
			resp["code"] = svcErr.Code
		}
		ctx.JSON(svcErr.StatusCode, resp)
		return
	}

	ctx.JSON(http.StatusOK, models.PincodeCheckResponse{
		Pincode:        pincode,
		State:          rule.State,
		DeliveryDays:   rule.DeliveryDays,
		ShippingCharge: rule.ShippingCharge,
		CodAvailable:   rule.CodAvailable,
	})
}

// CreateRule handles POST /shipping/rules (admin only).
func (sc *ShippingController) CreateRule(ctx *gin.Context) {
	var req models.CreateShippingRuleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	rule, svcErr := sc.shippingService.CreateRule(ctx.Request.Context(), &req)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"shipping_rule": rule})
}

// DeactivateRule handles DELETE /shipping/rules/:id (admin only).
func (sc *ShippingController) DeactivateRule(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Rule id is required"})
		return
	}

	if svcErr := sc.shippingService.DeactivateRule(ctx.Request.Context(), id); svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Shipping rule deactivated"})
}

// ListRules handles GET /shipping/rules (admin only).
func (sc *ShippingController) ListRules(ctx *gin.Context) {
	page, limit := parsePaginationParams(ctx)

	rules, total, svcErr := sc.shippingService.ListRules(ctx.Request.Context(), page, limit)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"shipping_rules": rules,
		"meta":           paginationMeta(page, limit, total),
	})
}
