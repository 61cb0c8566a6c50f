package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GopalSonawane/ruprikal-artisan-e-commerce-platform/models"
	"github.com/GopalSonawane/ruprikal-artisan-e-commerce-platform/repository"
)

// ResolvedLine is a cart line priced against the current catalog. The unit
// price comes from the variant when one is set, else the product's base
// price. Names are carried so checkout can snapshot them onto order items.
type ResolvedLine struct {
	ProductID   uuid.UUID
	VariantID   *uuid.UUID
	ProductName string
	VariantName *string
	UnitPrice   float64
	Quantity    int
}

// CatalogService resolves products and variants to their current unit price.
type CatalogService interface {
	CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, *ServiceError)
	CreateVariant(ctx context.Context, productID uuid.UUID, req *models.CreateVariantRequest) (*models.ProductVariant, *ServiceError)
	GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, *ServiceError)
	GetProductBySlug(ctx context.Context, slug string) (*models.Product, *ServiceError)
	ListProducts(ctx context.Context, filter repository.ProductFilter, page, limit int) ([]models.Product, int64, *ServiceError)
	// ResolveLine prices a cart line. Read-only and idempotent.
	ResolveLine(ctx context.Context, line models.CartLine) (*ResolvedLine, *ServiceError)
}

type catalogServiceImpl struct {
	repo   repository.ProductRepository
	logger *zap.Logger
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(repo repository.ProductRepository, logger *zap.Logger) CatalogService {
	return &catalogServiceImpl{repo: repo, logger: logger}
}

// CreateProduct creates a new product.
func (s *catalogServiceImpl) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, *ServiceError) {
	product := &models.Product{
		Name:          req.Name,
		Slug:          req.Slug,
		Description:   req.Description,
		BasePrice:     req.BasePrice,
		SKU:           req.SKU,
		CategoryID:    req.CategoryID,
		StockQuantity: req.StockQuantity,
		Featured:      req.Featured,
		Active:        true,
	}

	if err := s.repo.CreateProduct(ctx, product); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, &ServiceError{StatusCode: 409, Message: "Product slug or SKU already exists"}
		}
		s.logger.Error("Failed to create product", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to create product"}
	}

	s.logger.Info("Product created", zap.String("slug", product.Slug), zap.String("sku", product.SKU))
	return product, nil
}

// CreateVariant adds a variant to an existing product.
func (s *catalogServiceImpl) CreateVariant(ctx context.Context, productID uuid.UUID, req *models.CreateVariantRequest) (*models.ProductVariant, *ServiceError) {
	if _, err := s.repo.FindProductByID(ctx, productID); err != nil {
		return nil, &ServiceError{StatusCode: 404, Message: "Product not found"}
	}

	variant := &models.ProductVariant{
		ProductID:     productID,
		VariantName:   req.VariantName,
		SKU:           req.SKU,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
		Active:        true,
	}

	if err := s.repo.CreateVariant(ctx, variant); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, &ServiceError{StatusCode: 409, Message: "Variant SKU already exists"}
		}
		s.logger.Error("Failed to create variant", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to create variant"}
	}

	return variant, nil
}

// GetProduct retrieves a product by id.
func (s *catalogServiceImpl) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, *ServiceError) {
	product, err := s.repo.FindProductByID(ctx, id)
	if err != nil {
		return nil, &ServiceError{StatusCode: 404, Message: "Product not found"}
	}
	return product, nil
}

// GetProductBySlug retrieves a product by slug.
func (s *catalogServiceImpl) GetProductBySlug(ctx context.Context, slug string) (*models.Product, *ServiceError) {
	product, err := s.repo.FindProductBySlug(ctx, slug)
	if err != nil {
		return nil, &ServiceError{StatusCode: 404, Message: "Product not found"}
	}
	return product, nil
}

// ListProducts returns paginated products.
func (s *catalogServiceImpl) ListProducts(ctx context.Context, filter repository.ProductFilter, page, limit int) ([]models.Product, int64, *ServiceError) {
	products, total, err := s.repo.FindAll(ctx, filter, page, limit)
	if err != nil {
		s.logger.Error("Failed to list products", zap.Error(err))
		return nil, 0, &ServiceError{StatusCode: 500, Message: "Failed to list products"}
	}
	return products, total, nil
}

// ResolveLine prices a single cart line against the current catalog.
func (s *catalogServiceImpl) ResolveLine(ctx context.Context, line models.CartLine) (*ResolvedLine, *ServiceError) {
	product, err := s.repo.FindProductByID(ctx, line.ProductID)
	if err != nil {
		return nil, &ServiceError{StatusCode: 404, Message: "Product not found"}
	}

	resolved := &ResolvedLine{
		ProductID:   product.ID,
		ProductName: product.Name,
		UnitPrice:   product.BasePrice,
		Quantity:    line.Quantity,
	}

	if line.VariantID != nil {
		variant, err := s.repo.FindVariant(ctx, line.ProductID, *line.VariantID)
		if err != nil {
			return nil, &ServiceError{StatusCode: 404, Message: "Product variant not found"}
		}
		resolved.VariantID = &variant.ID
		resolved.VariantName = &variant.VariantName
		resolved.UnitPrice = variant.Price
	}

	return resolved, nil
}
