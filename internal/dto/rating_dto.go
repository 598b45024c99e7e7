package dto

import (
	"time"

	"moviehub/internal/models"
)

// RateMovieRequest for POST /api/movies/:id/rate. Scores live on a
// 1..5 scale, enforced here and again by the database check constraint.
type RateMovieRequest struct {
	Score int `json:"score" binding:"required,min=1,max=5"`
}

type RatingResponse struct {
	ID        int64     `json:"id"`
	User      string    `json:"user"`
	Movie     int64     `json:"movie"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	IsActive  bool      `json:"is_active"`
}

func FromRatingModel(r *models.Rating) RatingResponse {
	return RatingResponse{
		ID:        r.ID,
		User:      r.UserID,
		Movie:     r.MovieID,
		Score:     r.Score,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
		IsActive:  r.IsActive,
	}
}
