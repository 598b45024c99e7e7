package dto

import (
	"time"

	"moviehub/internal/models"
)

// CreateWatchlistRequest used for POST and PUT on /api/watchlists
type CreateWatchlistRequest struct {
	Name        string `json:"name" binding:"required,max=150"`
	Description string `json:"description"`
}

// UpdateWatchlistRequest used for PATCH (partial updates)
type UpdateWatchlistRequest struct {
	Name        *string `json:"name,omitempty" binding:"omitempty,max=150"`
	Description *string `json:"description,omitempty"`
}

// AddItemRequest for add-item and remove-item sub-operations
type AddItemRequest struct {
	Movie int64 `json:"movie" binding:"required"`
}

// BulkAddRequest for the bulk-add sub-operation; the list must be
// non-empty
type BulkAddRequest struct {
	Movies []int64 `json:"movies" binding:"required,min=1"`
}

// ListWatchlistsQuery captures the collection's query string
type ListWatchlistsQuery struct {
	Search   string `form:"search"`
	Page     int    `form:"page,default=1"`
	PageSize int    `form:"page_size,default=20"`
}

type WatchlistItemResponse struct {
	ID        int64     `json:"id"`
	Watchlist int64     `json:"watchlist"`
	Movie     int64     `json:"movie"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	IsActive  bool      `json:"is_active"`
}

type WatchlistResponse struct {
	ID          int64                   `json:"id"`
	User        string                  `json:"user"`
	Name        string                  `json:"name"`
	Description string                  `json:"description"`
	Items       []WatchlistItemResponse `json:"items"`
	CreatedAt   time.Time               `json:"created_at"`
	UpdatedAt   time.Time               `json:"updated_at"`
	IsActive    bool                    `json:"is_active"`
}

func (d UpdateWatchlistRequest) ApplyTo(w *models.Watchlist) {
	if d.Name != nil {
		w.Name = *d.Name
	}
	if d.Description != nil {
		w.Description = *d.Description
	}
}

func FromWatchlistItemModel(item models.WatchlistItem) WatchlistItemResponse {
	return WatchlistItemResponse{
		ID:        item.ID,
		Watchlist: item.WatchlistID,
		Movie:     item.MovieID,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
		IsActive:  item.IsActive,
	}
}

func FromWatchlistModel(w models.Watchlist) WatchlistResponse {
	items := make([]WatchlistItemResponse, 0, len(w.Items))
	for _, item := range w.Items {
		items = append(items, FromWatchlistItemModel(item))
	}
	return WatchlistResponse{
		ID:          w.ID,
		User:        w.UserID,
		Name:        w.Name,
		Description: w.Description,
		Items:       items,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
		IsActive:    w.IsActive,
	}
}
