package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GopalSonawane/ruprikal-artisan-e-commerce-platform/models"
	"github.com/GopalSonawane/ruprikal-artisan-e-commerce-platform/repository"
)

// HomepageSlideService defines the interface for homepage carousel logic.
type HomepageSlideService interface {
	CreateSlide(ctx context.Context, req *models.CreateSlideRequest) (*models.HomepageSlide, *ServiceError)
	// ListSlides returns slides in display order; when activeOnly is set,
	// hidden slides are excluded (the storefront view).
	ListSlides(ctx context.Context, activeOnly bool) ([]models.HomepageSlide, *ServiceError)
	DeleteSlide(ctx context.Context, id uuid.UUID) *ServiceError
}

type homepageSlideServiceImpl struct {
	repo   repository.HomepageSlideRepository
	logger *zap.Logger
}

// NewHomepageSlideService creates a new HomepageSlideService.
func NewHomepageSlideService(repo repository.HomepageSlideRepository, logger *zap.Logger) HomepageSlideService {
	return &homepageSlideServiceImpl{repo: repo, logger: logger}
}

// CreateSlide creates a new homepage slide.
func (s *homepageSlideServiceImpl) CreateSlide(ctx context.Context, req *models.CreateSlideRequest) (*models.HomepageSlide, *ServiceError) {
	slide := &models.HomepageSlide{
		Title:        strings.TrimSpace(req.Title),
		Subtitle:     strings.TrimSpace(req.Subtitle),
		ImageURL:     strings.TrimSpace(req.ImageURL),
		LinkURL:      strings.TrimSpace(req.LinkURL),
		ButtonText:   strings.TrimSpace(req.ButtonText),
		DisplayOrder: req.DisplayOrder,
		Active:       true,
	}
	if slide.Title == "" || slide.ImageURL == "" {
		return nil, &ServiceError{StatusCode: 400, Message: "Title and image URL are required"}
	}

	if err := s.repo.Create(ctx, slide); err != nil {
		s.logger.Error("Failed to create homepage slide", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to create homepage slide"}
	}

	s.logger.Info("Homepage slide created", zap.String("title", slide.Title), zap.Int("display_order", slide.DisplayOrder))
	return slide, nil
}

// ListSlides returns the carousel slides.
func (s *homepageSlideServiceImpl) ListSlides(ctx context.Context, activeOnly bool) ([]models.HomepageSlide, *ServiceError) {
	var slides []models.HomepageSlide
	var err error
	if activeOnly {
		slides, err = s.repo.FindActive(ctx)
	} else {
		slides, err = s.repo.FindAll(ctx)
	}
	if err != nil {
		s.logger.Error("Failed to list homepage slides", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to list homepage slides"}
	}
	return slides, nil
}

// DeleteSlide removes a slide.
func (s *homepageSlideServiceImpl) DeleteSlide(ctx context.Context, id uuid.UUID) *ServiceError {
	if err := s.repo.Delete(ctx, id); err != nil {
		if err.Error() == "record not found" {
			return &ServiceError{StatusCode: 404, Message: "Slide not found"}
		}
		s.logger.Error("Failed to delete homepage slide", zap.String("id", id.String()), zap.Error(err))
		return &ServiceError{StatusCode: 500, Message: "Failed to delete homepage slide"}
	}
	return nil
}
