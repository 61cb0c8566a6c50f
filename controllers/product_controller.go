package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/GopalSonawane/ruprikal-artisan-e-commerce-platform/models"
	"github.com/GopalSonawane/ruprikal-artisan-e-commerce-platform/repository"
	"github.com/GopalSonawane/ruprikal-artisan-e-commerce-platform/services"
)

// ProductController handles HTTP requests for the product catalog.
type ProductController struct {
	catalog services.CatalogService
}

// NewProductController creates a new ProductController.
func NewProductController(catalog services.CatalogService) *ProductController {
	return &ProductController{catalog: catalog}
}

// CreateProduct handles POST /admin/products.
func (pc *ProductController) CreateProduct(ctx *gin.Context) {
	var req models.CreateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	product, svcErr := pc.catalog.CreateProduct(ctx.Request.Context(), &req)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"product": product})
}

// CreateVariant handles POST /admin/products/:id/variants.
func (pc *ProductController) CreateVariant(ctx *gin.Context) {
	productID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	var req models.CreateVariantRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	variant, svcErr := pc.catalog.CreateVariant(ctx.Request.Context(), productID, &req)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"variant": variant})
}

// GetProduct handles GET /products/:idOrSlug. UUIDs look up by id,
// anything else by slug.
func (pc *ProductController) GetProduct(ctx *gin.Context) {
	param := ctx.Param("idOrSlug")

	var product *models.Product
	var svcErr *services.ServiceError
	if id, err := uuid.Parse(param); err == nil {
		product, svcErr = pc.catalog.GetProduct(ctx.Request.Context(), id)
	} else {
		product, svcErr = pc.catalog.GetProductBySlug(ctx.Request.Context(), param)
	}
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"product": product})
}

// ListProducts handles GET /products with optional filters.
func (pc *ProductController) ListProducts(ctx *gin.Context) {
	page, limit := parsePaginationParams(ctx)

	filter := repository.ProductFilter{
		ActiveOnly: true,
		Search:     ctx.Query("search"),
	}
	if raw := ctx.Query("category_id"); raw != "" {
		categoryID, err := uuid.Parse(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category id"})
			return
		}
		filter.CategoryID = &categoryID
	}
	if raw := ctx.Query("featured"); raw != "" {
		featured, err := strconv.ParseBool(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid featured flag"})
			return
		}
		filter.Featured = &featured
	}

	products, total, svcErr := pc.catalog.ListProducts(ctx.Request.Context(), filter, page, limit)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"products": products,
		"meta":     paginationMeta(page, limit, total),
	})
}
