package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GopalSonawane/ruprikal-artisan-e-commerce-platform/middleware"
	"github.com/GopalSonawane/ruprikal-artisan-e-commerce-platform/models"
	"github.com/GopalSonawane/ruprikal-artisan-e-commerce-platform/services"
)

// CartStore is the cart persistence surface the controller needs.
type CartStore interface {
	GetCart(ctx context.Context, userID string) (*models.Cart, error)
	SaveCart(ctx context.Context, cart *models.Cart) error
	DeleteCart(ctx context.Context, userID string) error
}

// CartController handles the Redis-backed cart. Cart mutations are simple
// enough that the controller talks to the repository directly; the catalog
// service is consulted only to reject lines for unknown products.
type CartController struct {
	repo    CartStore
	catalog services.CatalogService
	logger  *zap.Logger
}

// NewCartController creates a new CartController.
func NewCartController(repo CartStore, catalog services.CatalogService, logger *zap.Logger) *CartController {
	return &CartController{repo: repo, catalog: catalog, logger: logger}
}

// GetCart handles GET /cart.
func (cc *CartController) GetCart(ctx *gin.Context) {
	userID := middleware.GetUserID(ctx)

	cart, err := cc.repo.GetCart(ctx.Request.Context(), userID)
	if err != nil {
		cc.logger.Error("Failed to get cart", zap.String("user_id", userID), zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get cart"})
		return
	}
	if cart == nil {
		cart = &models.Cart{UserID: userID, Lines: []models.CartLine{}}
	}

	ctx.JSON(http.StatusOK, cart)
}

// AddLine handles POST /cart/lines. Adding a line that already exists bumps
// its quantity.
func (cc *CartController) AddLine(ctx *gin.Context) {
	userID := middleware.GetUserID(ctx)

	var line models.CartLine
	if err := ctx.ShouldBindJSON(&line); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	// Reject lines for products or variants that don't exist.
	if _, svcErr := cc.catalog.ResolveLine(ctx.Request.Context(), line); svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	// A read failure must not pass for an empty cart: saving on top of it
	// would wipe the user's real contents.
	cart, err := cc.repo.GetCart(ctx.Request.Context(), userID)
	if err != nil {
		cc.logger.Error("Failed to get cart", zap.String("user_id", userID), zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get cart"})
		return
	}
	if cart == nil {
		cart = &models.Cart{UserID: userID, Lines: []models.CartLine{}}
	}

	found := false
	for i, existing := range cart.Lines {
		if sameLine(existing, line) {
			cart.Lines[i].Quantity += line.Quantity
			found = true
			break
		}
	}
	if !found {
		cart.Lines = append(cart.Lines, line)
	}

	if err := cc.repo.SaveCart(ctx.Request.Context(), cart); err != nil {
		cc.logger.Error("Failed to save cart", zap.String("user_id", userID), zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
		return
	}

	ctx.JSON(http.StatusOK, cart)
}

// UpdateQuantity handles PATCH /cart/lines.
func (cc *CartController) UpdateQuantity(ctx *gin.Context) {
	userID := middleware.GetUserID(ctx)

	var req models.UpdateQuantityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	cart, err := cc.repo.GetCart(ctx.Request.Context(), userID)
	if err != nil {
		cc.logger.Error("Failed to get cart", zap.String("user_id", userID), zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get cart"})
		return
	}
	if cart == nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
		return
	}

	target := models.CartLine{ProductID: req.ProductID, VariantID: req.VariantID}
	updated := false
	for i, existing := range cart.Lines {
		if sameLine(existing, target) {
			cart.Lines[i].Quantity = req.Quantity
			updated = true
			break
		}
	}
	if !updated {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Cart line not found"})
		return
	}

	if err := cc.repo.SaveCart(ctx.Request.Context(), cart); err != nil {
		cc.logger.Error("Failed to save cart", zap.String("user_id", userID), zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
		return
	}

	ctx.JSON(http.StatusOK, cart)
}

// RemoveLine handles DELETE /cart/lines/:product_id with an optional
// variant_id query parameter.
func (cc *CartController) RemoveLine(ctx *gin.Context) {
	userID := middleware.GetUserID(ctx)

	productID, err := uuid.Parse(ctx.Param("product_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}
	target := models.CartLine{ProductID: productID}
	if v := ctx.Query("variant_id"); v != "" {
		variantID, err := uuid.Parse(v)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid variant id"})
			return
		}
		target.VariantID = &variantID
	}

	cart, err := cc.repo.GetCart(ctx.Request.Context(), userID)
	if err != nil {
		cc.logger.Error("Failed to get cart", zap.String("user_id", userID), zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get cart"})
		return
	}
	if cart == nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
		return
	}

	remaining := cart.Lines[:0]
	for _, line := range cart.Lines {
		if !sameLine(line, target) {
			remaining = append(remaining, line)
		}
	}
	cart.Lines = remaining

	if err := cc.repo.SaveCart(ctx.Request.Context(), cart); err != nil {
		cc.logger.Error("Failed to save cart", zap.String("user_id", userID), zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
		return
	}

	ctx.JSON(http.StatusOK, cart)
}

// ClearCart handles DELETE /cart.
func (cc *CartController) ClearCart(ctx *gin.Context) {
	userID := middleware.GetUserID(ctx)

	if err := cc.repo.DeleteCart(ctx.Request.Context(), userID); err != nil {
		cc.logger.Error("Failed to clear cart", zap.String("user_id", userID), zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
}

// sameLine matches cart lines on product + variant identity.
func sameLine(a, b models.CartLine) bool {
	if a.ProductID != b.ProductID {
		return false
	}
	if (a.VariantID == nil) != (b.VariantID == nil) {
		return false
	}
	return a.VariantID == nil || *a.VariantID == *b.VariantID
}
