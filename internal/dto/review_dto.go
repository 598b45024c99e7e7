package dto

import (
	"time"

	"moviehub/internal/models"
)

// CreateReviewRequest used for POST /api/reviews. The author is taken
// from the access token, never from the payload.
type CreateReviewRequest struct {
	Movie int64  `json:"movie" binding:"required"`
	Title string `json:"title" binding:"required,max=255"`
	Body  string `json:"body"`
}

// UpdateReviewRequest used for PUT/PATCH /api/reviews/:id
type UpdateReviewRequest struct {
	Title *string `json:"title,omitempty" binding:"omitempty,max=255"`
	Body  *string `json:"body,omitempty"`
}

// ListReviewsQuery captures the collection's query string
type ListReviewsQuery struct {
	Movie    *int64  `form:"movie"`
	User     *string `form:"user"`
	Search   string  `form:"search"`
	Page     int     `form:"page,default=1"`
	PageSize int     `form:"page_size,default=20"`
}

type ReviewResponse struct {
	ID        int64     `json:"id"`
	User      string    `json:"user"`
	Movie     int64     `json:"movie"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	IsActive  bool      `json:"is_active"`
}

func (d UpdateReviewRequest) ApplyTo(r *models.Review) {
	if d.Title != nil {
		r.Title = *d.Title
	}
	if d.Body != nil {
		r.Body = *d.Body
	}
}

func FromReviewModel(r models.Review) ReviewResponse {
	return ReviewResponse{
		ID:        r.ID,
		User:      r.UserID,
		Movie:     r.MovieID,
		Title:     r.Title,
		Body:      r.Body,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
		IsActive:  r.IsActive,
	}
}
