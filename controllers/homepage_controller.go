package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/GopalSonawane/ruprikal-artisan-e-commerce-platform/models"
	"github.com/GopalSonawane/ruprikal-artisan-e-commerce-platform/services"
)

// HomepageController handles HTTP requests for the homepage hero carousel.
type HomepageController struct {
	slideService services.HomepageSlideService
}

// NewHomepageController creates a new HomepageController.
func NewHomepageController(slideService services.HomepageSlideService) *HomepageController {
	return &HomepageController{slideService: slideService}
}

// ListSlides handles GET /homepage/slides. The public view only returns
// active slides; admins pass include_inactive=true to see everything.
func (hc *HomepageController) ListSlides(ctx *gin.Context) {
	activeOnly := ctx.Query("include_inactive") != "true"

	slides, svcErr := hc.slideService.ListSlides(ctx.Request.Context(), activeOnly)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"slides": slides})
}

// CreateSlide handles POST /homepage/slides (admin only).
func (hc *HomepageController) CreateSlide(ctx *gin.Context) {
	var req models.CreateSlideRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	slide, svcErr := hc.slideService.CreateSlide(ctx.Request.Context(), &req)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"slide": slide})
}

// DeleteSlide handles DELETE /homepage/slides/:id (admin only).
func (hc *HomepageController) DeleteSlide(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid slide ID"})
		return
	}

	if svcErr := hc.slideService.DeleteSlide(ctx.Request.Context(), id); svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Slide deleted"})
}
