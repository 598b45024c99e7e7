package handler

import (
	"errors"
	"net/http"

	"moviehub/internal/dto"
	"moviehub/internal/service"

	"github.com/gin-gonic/gin"
)

type PlatformHandler struct {
	platformService service.PlatformService
}

func NewPlatformHandler(platformService service.PlatformService) *PlatformHandler {
	return &PlatformHandler{platformService: platformService}
}

func (h *PlatformHandler) RegisterRoutes(rg *gin.RouterGroup, authRequired gin.HandlerFunc) {
	platforms := rg.Group("/platforms")
	{
		platforms.GET("", h.List)
		platforms.GET("/:id", h.Get)

		authed := platforms.Group("", authRequired)
		{
			authed.POST("", h.Create)
			authed.PUT("/:id", h.Update)
			authed.PATCH("/:id", h.Patch)
			authed.DELETE("/:id", h.Delete)
		}
	}
}

func (h *PlatformHandler) List(c *gin.Context) {
	var query dto.ListCatalogQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(err))
		return
	}

	page, err := h.platformService.List(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to list platforms"})
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *PlatformHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	platform, err := h.platformService.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrPlatformNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "platform not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to fetch platform"})
		return
	}
	c.JSON(http.StatusOK, platform)
}

func (h *PlatformHandler) Create(c *gin.Context) {
	var req dto.CreatePlatformRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(err))
		return
	}

	platform, err := h.platformService.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrDuplicatePlatform) {
			c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to create platform"})
		return
	}
	c.JSON(http.StatusCreated, platform)
}

func (h *PlatformHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.CreatePlatformRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(err))
		return
	}

	platform, err := h.platformService.Update(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPlatformNotFound):
			c.JSON(http.StatusNotFound, gin.H{"detail": "platform not found"})
		case errors.Is(err, service.ErrDuplicatePlatform):
			c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to update platform"})
		}
		return
	}
	c.JSON(http.StatusOK, platform)
}

func (h *PlatformHandler) Patch(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdatePlatformRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(err))
		return
	}

	platform, err := h.platformService.Patch(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPlatformNotFound):
			c.JSON(http.StatusNotFound, gin.H{"detail": "platform not found"})
		case errors.Is(err, service.ErrDuplicatePlatform):
			c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to update platform"})
		}
		return
	}
	c.JSON(http.StatusOK, platform)
}

func (h *PlatformHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.platformService.SoftDelete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrPlatformNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "platform not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to delete platform"})
		return
	}
	c.Status(http.StatusNoContent)
}
