package handler

import (
	"errors"
	"net/http"

	"moviehub/internal/dto"
	"moviehub/internal/service"

	"github.com/gin-gonic/gin"
)

type GenreHandler struct {
	genreService service.GenreService
}

func NewGenreHandler(genreService service.GenreService) *GenreHandler {
	return &GenreHandler{genreService: genreService}
}

func (h *GenreHandler) RegisterRoutes(rg *gin.RouterGroup, authRequired gin.HandlerFunc) {
	genres := rg.Group("/genres")
	{
		genres.GET("", h.List)
		genres.GET("/:id", h.Get)

		authed := genres.Group("", authRequired)
		{
			authed.POST("", h.Create)
			authed.PUT("/:id", h.Update)
			authed.PATCH("/:id", h.Patch)
			authed.DELETE("/:id", h.Delete)
		}
	}
}

func (h *GenreHandler) List(c *gin.Context) {
	var query dto.ListCatalogQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(err))
		return
	}

	page, err := h.genreService.List(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to list genres"})
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *GenreHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	genre, err := h.genreService.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrGenreNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "genre not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to fetch genre"})
		return
	}
	c.JSON(http.StatusOK, genre)
}

func (h *GenreHandler) Create(c *gin.Context) {
	var req dto.CreateGenreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(err))
		return
	}

	genre, err := h.genreService.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateGenre) {
			c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to create genre"})
		return
	}
	c.JSON(http.StatusCreated, genre)
}

func (h *GenreHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.CreateGenreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(err))
		return
	}

	genre, err := h.genreService.Update(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrGenreNotFound):
			c.JSON(http.StatusNotFound, gin.H{"detail": "genre not found"})
		case errors.Is(err, service.ErrDuplicateGenre):
			c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to update genre"})
		}
		return
	}
	c.JSON(http.StatusOK, genre)
}

func (h *GenreHandler) Patch(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateGenreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(err))
		return
	}

	genre, err := h.genreService.Patch(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrGenreNotFound):
			c.JSON(http.StatusNotFound, gin.H{"detail": "genre not found"})
		case errors.Is(err, service.ErrDuplicateGenre):
			c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to update genre"})
		}
		return
	}
	c.JSON(http.StatusOK, genre)
}

func (h *GenreHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.genreService.SoftDelete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrGenreNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "genre not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to delete genre"})
		return
	}
	c.Status(http.StatusNoContent)
}
