package dto

import (
	"time"

	"moviehub/internal/models"
)

// CreatePlatformRequest used for POST and PUT on /api/platforms
type CreatePlatformRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Website     string `json:"website" binding:"omitempty,url"`
	Description string `json:"description"`
}

// UpdatePlatformRequest used for PATCH (partial updates)
type UpdatePlatformRequest struct {
	Name        *string `json:"name,omitempty" binding:"omitempty,max=100"`
	Website     *string `json:"website,omitempty" binding:"omitempty,url"`
	Description *string `json:"description,omitempty"`
}

type PlatformResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Website     string    `json:"website"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	IsActive    bool      `json:"is_active"`
}

func (d UpdatePlatformRequest) ApplyTo(p *models.Platform) {
	if d.Name != nil {
		p.Name = *d.Name
	}
	if d.Website != nil {
		p.Website = *d.Website
	}
	if d.Description != nil {
		p.Description = *d.Description
	}
}

func FromPlatformModel(p models.Platform) PlatformResponse {
	return PlatformResponse{
		ID:          p.ID,
		Name:        p.Name,
		Website:     p.Website,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
		IsActive:    p.IsActive,
	}
}
