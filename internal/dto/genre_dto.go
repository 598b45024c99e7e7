package dto

import (
	"time"

	"moviehub/internal/models"
)

// CreateGenreRequest used for POST and PUT on /api/genres
type CreateGenreRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

// UpdateGenreRequest used for PATCH (partial updates)
type UpdateGenreRequest struct {
	Name *string `json:"name,omitempty" binding:"omitempty,max=100"`
}

func (d UpdateGenreRequest) ApplyTo(g *models.Genre) {
	if d.Name != nil {
		g.Name = *d.Name
	}
}

// ListCatalogQuery is shared by the flat catalog collections
type ListCatalogQuery struct {
	Search   string `form:"search"`
	Name     string `form:"name"`
	IsActive *bool  `form:"is_active"`
	Page     int    `form:"page,default=1"`
	PageSize int    `form:"page_size,default=20"`
}

type GenreResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	IsActive  bool      `json:"is_active"`
}

func FromGenreModel(g models.Genre) GenreResponse {
	return GenreResponse{
		ID:        g.ID,
		Name:      g.Name,
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
		IsActive:  g.IsActive,
	}
}
