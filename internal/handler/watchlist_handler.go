package handler

import (
	"errors"
	"net/http"

	"moviehub/internal/dto"
	"moviehub/internal/middleware"
	"moviehub/internal/service"

	"github.com/gin-gonic/gin"
)

type WatchlistHandler struct {
	watchlistService service.WatchlistService
}

func NewWatchlistHandler(watchlistService service.WatchlistService) *WatchlistHandler {
	return &WatchlistHandler{watchlistService: watchlistService}
}

// RegisterRoutes mounts the watchlist endpoints. The whole group is
// private; there is no public view of anybody's watchlist.
func (h *WatchlistHandler) RegisterRoutes(rg *gin.RouterGroup, authRequired gin.HandlerFunc) {
	watchlists := rg.Group("/watchlists", authRequired)
	{
		watchlists.GET("", h.List)
		watchlists.POST("", h.Create)
		watchlists.GET("/:id", h.Get)
		watchlists.PUT("/:id", h.Update)
		watchlists.PATCH("/:id", h.Patch)
		watchlists.DELETE("/:id", h.Delete)

		watchlists.POST("/:id/add-item", h.AddItem)
		watchlists.POST("/:id/remove-item", h.RemoveItem)
		watchlists.POST("/:id/bulk-add", h.BulkAdd)
	}
}

func (h *WatchlistHandler) List(c *gin.Context) {
	var query dto.ListWatchlistsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(err))
		return
	}

	userID := middleware.UserIDFromContext(c)
	page, err := h.watchlistService.List(c.Request.Context(), userID, query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to list watchlists"})
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *WatchlistHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	userID := middleware.UserIDFromContext(c)
	w, err := h.watchlistService.Get(c.Request.Context(), userID, id)
	if err != nil {
		if errors.Is(err, service.ErrWatchlistNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "watchlist not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to fetch watchlist"})
		return
	}
	c.JSON(http.StatusOK, w)
}

func (h *WatchlistHandler) Create(c *gin.Context) {
	var req dto.CreateWatchlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(err))
		return
	}

	userID := middleware.UserIDFromContext(c)
	w, err := h.watchlistService.Create(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateWatchlist) {
			c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to create watchlist"})
		return
	}
	c.JSON(http.StatusCreated, w)
}

func (h *WatchlistHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.CreateWatchlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(err))
		return
	}

	userID := middleware.UserIDFromContext(c)
	w, err := h.watchlistService.Update(c.Request.Context(), userID, id, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWatchlistNotFound):
			c.JSON(http.StatusNotFound, gin.H{"detail": "watchlist not found"})
		case errors.Is(err, service.ErrDuplicateWatchlist):
			c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to update watchlist"})
		}
		return
	}
	c.JSON(http.StatusOK, w)
}

func (h *WatchlistHandler) Patch(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateWatchlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(err))
		return
	}

	userID := middleware.UserIDFromContext(c)
	w, err := h.watchlistService.Patch(c.Request.Context(), userID, id, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWatchlistNotFound):
			c.JSON(http.StatusNotFound, gin.H{"detail": "watchlist not found"})
		case errors.Is(err, service.ErrDuplicateWatchlist):
			c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to update watchlist"})
		}
		return
	}
	c.JSON(http.StatusOK, w)
}

func (h *WatchlistHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	userID := middleware.UserIDFromContext(c)
	if err := h.watchlistService.SoftDelete(c.Request.Context(), userID, id); err != nil {
		if errors.Is(err, service.ErrWatchlistNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "watchlist not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to delete watchlist"})
		return
	}
	c.Status(http.StatusNoContent)
}

// AddItem answers 201 whether the movie was newly added or already on
// the list; the response body is the surviving item either way.
func (h *WatchlistHandler) AddItem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(err))
		return
	}

	userID := middleware.UserIDFromContext(c)
	item, err := h.watchlistService.AddItem(c.Request.Context(), userID, id, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWatchlistNotFound):
			c.JSON(http.StatusNotFound, gin.H{"detail": "watchlist not found"})
		case errors.Is(err, service.ErrMovieNotFound):
			c.JSON(http.StatusNotFound, gin.H{"detail": "movie not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to add item"})
		}
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *WatchlistHandler) RemoveItem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(err))
		return
	}

	userID := middleware.UserIDFromContext(c)
	if err := h.watchlistService.RemoveItem(c.Request.Context(), userID, id, req); err != nil {
		switch {
		case errors.Is(err, service.ErrWatchlistNotFound):
			c.JSON(http.StatusNotFound, gin.H{"detail": "watchlist not found"})
		case errors.Is(err, service.ErrItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{"detail": "movie is not in this watchlist"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to remove item"})
		}
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *WatchlistHandler) BulkAdd(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.BulkAddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(err))
		return
	}

	userID := middleware.UserIDFromContext(c)
	items, err := h.watchlistService.BulkAdd(c.Request.Context(), userID, id, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWatchlistNotFound):
			c.JSON(http.StatusNotFound, gin.H{"detail": "watchlist not found"})
		case errors.Is(err, service.ErrMovieNotFound):
			c.JSON(http.StatusNotFound, gin.H{"detail": "movie not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to add items"})
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"items": items})
}
