package handler

import (
	"errors"
	"net/http"
	"strconv"

	"moviehub/internal/dto"
	"moviehub/internal/middleware"
	"moviehub/internal/service"

	"github.com/gin-gonic/gin"
)

type MovieHandler struct {
	movieService  service.MovieService
	ratingService service.RatingService
}

func NewMovieHandler(movieService service.MovieService, ratingService service.RatingService) *MovieHandler {
	return &MovieHandler{
		movieService:  movieService,
		ratingService: ratingService,
	}
}

// RegisterRoutes mounts the movie endpoints. Reads are public; every
// write, rating included, needs an authenticated caller.
func (h *MovieHandler) RegisterRoutes(rg *gin.RouterGroup, authRequired gin.HandlerFunc) {
	movies := rg.Group("/movies")
	{
		movies.GET("", h.List)
		movies.GET("/:id", h.Get)

		movies.POST("/:id/rate", authRequired, h.Rate)

		authed := movies.Group("", authRequired)
		{
			authed.POST("", h.Create)
			authed.PUT("/:id", h.Update)
			authed.PATCH("/:id", h.Patch)
			authed.DELETE("/:id", h.Delete)
		}
	}
}

func (h *MovieHandler) List(c *gin.Context) {
	var query dto.ListMoviesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(err))
		return
	}

	page, err := h.movieService.List(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to list movies"})
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *MovieHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	movie, err := h.movieService.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrMovieNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "movie not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to fetch movie"})
		return
	}
	c.JSON(http.StatusOK, movie)
}

func (h *MovieHandler) Create(c *gin.Context) {
	var req dto.CreateMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(err))
		return
	}

	movie, err := h.movieService.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateMovie) {
			c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to create movie"})
		return
	}
	c.JSON(http.StatusCreated, movie)
}

func (h *MovieHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.CreateMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(err))
		return
	}

	movie, err := h.movieService.Update(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMovieNotFound):
			c.JSON(http.StatusNotFound, gin.H{"detail": "movie not found"})
		case errors.Is(err, service.ErrDuplicateMovie):
			c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to update movie"})
		}
		return
	}
	c.JSON(http.StatusOK, movie)
}

func (h *MovieHandler) Patch(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(err))
		return
	}

	movie, err := h.movieService.Patch(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMovieNotFound):
			c.JSON(http.StatusNotFound, gin.H{"detail": "movie not found"})
		case errors.Is(err, service.ErrDuplicateMovie):
			c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to update movie"})
		}
		return
	}
	c.JSON(http.StatusOK, movie)
}

func (h *MovieHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.movieService.SoftDelete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrMovieNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "movie not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to delete movie"})
		return
	}
	c.Status(http.StatusNoContent)
}

// Rate records the caller's score for a movie. Re-rating overwrites the
// previous score but still answers 201, matching the other creations.
func (h *MovieHandler) Rate(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.RateMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(err))
		return
	}

	userID := middleware.UserIDFromContext(c)
	rating, err := h.ratingService.Rate(c.Request.Context(), userID, id, req.Score)
	if err != nil {
		if errors.Is(err, service.ErrMovieNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "movie not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to rate movie"})
		return
	}
	c.JSON(http.StatusCreated, rating)
}

// pathID parses the :id segment, answering 404 itself on garbage so the
// handlers treat a malformed ID like a missing resource.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusNotFound, gin.H{"detail": "not found"})
		return 0, false
	}
	return id, true
}
