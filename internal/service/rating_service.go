package service

import (
	"context"
	"errors"

	"moviehub/internal/dto"
	"moviehub/internal/models"
	"moviehub/internal/repository"

	"gorm.io/gorm"
)

type RatingService interface {
	Rate(ctx context.Context, userID string, movieID int64, score int) (*dto.RatingResponse, error)
	AverageForMovie(ctx context.Context, movieID int64) (float64, int64, error)
}

type ratingService struct {
	ratingRepo repository.RatingRepository
	movieRepo  repository.MovieRepository
}

func NewRatingService(ratingRepo repository.RatingRepository, movieRepo repository.MovieRepository) RatingService {
	return &ratingService{
		ratingRepo: ratingRepo,
		movieRepo:  movieRepo,
	}
}

// Rate upserts the acting user's score for a movie. The write is a
// single atomic insert-or-update keyed on the (user, movie) uniqueness
// constraint, so concurrent re-rates never produce a duplicate row.
func (s *ratingService) Rate(ctx context.Context, userID string, movieID int64, score int) (*dto.RatingResponse, error) {
	if _, err := s.movieRepo.GetByID(ctx, movieID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}

	rating := &models.Rating{
		UserID:  userID,
		MovieID: movieID,
		Score:   score,
	}
	if err := s.ratingRepo.Upsert(ctx, rating); err != nil {
		return nil, err
	}

	// reload the surviving row: on conflict the insert carries no ID
	stored, err := s.ratingRepo.GetByUserAndMovie(ctx, userID, movieID)
	if err != nil {
		return nil, err
	}

	resp := dto.FromRatingModel(stored)
	return &resp, nil
}

// AverageForMovie returns the current mean score and count over active
// ratings; exactly 0.0 and 0 when the movie has none.
func (s *ratingService) AverageForMovie(ctx context.Context, movieID int64) (float64, int64, error) {
	if _, err := s.movieRepo.GetByID(ctx, movieID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, 0, ErrMovieNotFound
		}
		return 0, 0, err
	}

	avg, err := s.ratingRepo.AverageForMovie(ctx, movieID)
	if err != nil {
		return 0, 0, err
	}
	count, err := s.ratingRepo.CountForMovie(ctx, movieID)
	if err != nil {
		return 0, 0, err
	}
	return avg, count, nil
}
