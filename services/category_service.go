package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GopalSonawane/ruprikal-artisan-e-commerce-platform/models"
	"github.com/GopalSonawane/ruprikal-artisan-e-commerce-platform/repository"
)

// CategoryService defines the interface for category business logic.
type CategoryService interface {
	CreateCategory(ctx context.Context, req *models.CreateCategoryRequest) (*models.Category, *ServiceError)
	// GetCategory resolves idOrSlug as a UUID first, then as a slug.
	GetCategory(ctx context.Context, idOrSlug string) (*models.Category, *ServiceError)
	ListCategories(ctx context.Context, activeOnly bool) ([]models.Category, *ServiceError)
	DeactivateCategory(ctx context.Context, id uuid.UUID) *ServiceError
}

type categoryServiceImpl struct {
	repo   repository.CategoryRepository
	logger *zap.Logger
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(repo repository.CategoryRepository, logger *zap.Logger) CategoryService {
	return &categoryServiceImpl{repo: repo, logger: logger}
}

// CreateCategory creates a new category. Slugs are lowercased and must be
// unique across categories.
func (s *categoryServiceImpl) CreateCategory(ctx context.Context, req *models.CreateCategoryRequest) (*models.Category, *ServiceError) {
	category := &models.Category{
		Name:         strings.TrimSpace(req.Name),
		Slug:         strings.ToLower(strings.TrimSpace(req.Slug)),
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		ParentID:     req.ParentID,
		DisplayOrder: req.DisplayOrder,
		Active:       true,
	}

	if err := s.repo.Create(ctx, category); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, &ServiceError{StatusCode: 409, Message: "Category slug already exists"}
		}
		s.logger.Error("Failed to create category", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to create category"}
	}

	s.logger.Info("Category created", zap.String("slug", category.Slug))
	return category, nil
}

// GetCategory retrieves a category by id or slug.
func (s *categoryServiceImpl) GetCategory(ctx context.Context, idOrSlug string) (*models.Category, *ServiceError) {
	var category *models.Category
	var err error

	if id, parseErr := uuid.Parse(idOrSlug); parseErr == nil {
		category, err = s.repo.FindByID(ctx, id)
	} else {
		category, err = s.repo.FindBySlug(ctx, strings.ToLower(idOrSlug))
	}
	if err != nil {
		return nil, &ServiceError{StatusCode: 404, Message: "Category not found"}
	}
	return category, nil
}

// ListCategories returns categories in display order.
func (s *categoryServiceImpl) ListCategories(ctx context.Context, activeOnly bool) ([]models.Category, *ServiceError) {
	categories, err := s.repo.FindAll(ctx, activeOnly)
	if err != nil {
		s.logger.Error("Failed to list categories", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to list categories"}
	}
	return categories, nil
}

// DeactivateCategory hides a category from the storefront.
func (s *categoryServiceImpl) DeactivateCategory(ctx context.Context, id uuid.UUID) *ServiceError {
	if err := s.repo.Deactivate(ctx, id); err != nil {
		if err.Error() == "record not found" {
			return &ServiceError{StatusCode: 404, Message: "Category not found"}
		}
		s.logger.Error("Failed to deactivate category", zap.String("id", id.String()), zap.Error(err))
		return &ServiceError{StatusCode: 500, Message: "Failed to deactivate category"}
	}
	return nil
}
