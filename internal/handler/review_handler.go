package handler

import (
	"errors"
	"net/http"

	"moviehub/internal/dto"
	"moviehub/internal/middleware"
	"moviehub/internal/service"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	reviewService service.ReviewService
}

func NewReviewHandler(reviewService service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

func (h *ReviewHandler) RegisterRoutes(rg *gin.RouterGroup, authRequired gin.HandlerFunc) {
	reviews := rg.Group("/reviews")
	{
		reviews.GET("", h.List)
		reviews.GET("/:id", h.Get)

		reviews.POST("", authRequired, h.Create)
		reviews.PUT("/:id", authRequired, h.Update)
		reviews.PATCH("/:id", authRequired, h.Update)
		reviews.DELETE("/:id", authRequired, h.Delete)
	}
}

func (h *ReviewHandler) List(c *gin.Context) {
	var query dto.ListReviewsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(err))
		return
	}

	page, err := h.reviewService.List(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to list reviews"})
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *ReviewHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	review, err := h.reviewService.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrReviewNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "review not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to fetch review"})
		return
	}
	c.JSON(http.StatusOK, review)
}

func (h *ReviewHandler) Create(c *gin.Context) {
	var req dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(err))
		return
	}

	userID := middleware.UserIDFromContext(c)
	review, err := h.reviewService.Create(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMovieNotFound):
			c.JSON(http.StatusNotFound, gin.H{"detail": "movie not found"})
		case errors.Is(err, service.ErrDuplicateReview):
			c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to create review"})
		}
		return
	}
	c.JSON(http.StatusCreated, review)
}

// Update serves both PUT and PATCH. The author and movie of a review
// never change; only title and body are editable.
func (h *ReviewHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(err))
		return
	}

	review, err := h.reviewService.Update(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrReviewNotFound):
			c.JSON(http.StatusNotFound, gin.H{"detail": "review not found"})
		case errors.Is(err, service.ErrDuplicateReview):
			c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to update review"})
		}
		return
	}
	c.JSON(http.StatusOK, review)
}

func (h *ReviewHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.reviewService.SoftDelete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrReviewNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "review not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to delete review"})
		return
	}
	c.Status(http.StatusNoContent)
}
