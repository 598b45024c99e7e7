package repository

import (
	"context"
	"fmt"
	"time"

	"moviehub/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RatingRepository interface {
	Upsert(ctx context.Context, rating *models.Rating) error
	GetByUserAndMovie(ctx context.Context, userID string, movieID int64) (*models.Rating, error)
	GetByID(ctx context.Context, id int64) (*models.Rating, error)
	AverageForMovie(ctx context.Context, movieID int64) (float64, error)
	CountForMovie(ctx context.Context, movieID int64) (int64, error)
}

type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

// Upsert writes the rating through a single INSERT ... ON CONFLICT so
// concurrent requests for the same (user, movie) pair collapse into one
// surviving row holding the latest accepted score.
func (r *ratingRepository) Upsert(ctx context.Context, rating *models.Rating) error {
	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "movie_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"score":      rating.Score,
			"is_active":  true,
			"deleted_at": nil,
			"updated_at": time.Now(),
		}),
	}).Create(rating).Error; err != nil {
		return fmt.Errorf("upsert rating: %w", err)
	}
	return nil
}

func (r *ratingRepository) GetByUserAndMovie(ctx context.Context, userID string, movieID int64) (*models.Rating, error) {
	var rating models.Rating
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND movie_id = ?", userID, movieID).
		First(&rating).Error; err != nil {
		return nil, err
	}
	return &rating, nil
}

// GetByID does not filter on lifecycle state: historical rows stay
// addressable after the movie (or the rating) is soft-deleted.
func (r *ratingRepository) GetByID(ctx context.Context, id int64) (*models.Rating, error) {
	var rating models.Rating
	if err := r.db.WithContext(ctx).First(&rating, id).Error; err != nil {
		return nil, err
	}
	return &rating, nil
}

// AverageForMovie computes the mean score over active ratings, exactly
// 0.0 when the movie has none.
func (r *ratingRepository) AverageForMovie(ctx context.Context, movieID int64) (float64, error) {
	var avg struct {
		Average float64
	}
	if err := r.db.WithContext(ctx).Model(&models.Rating{}).
		Select("COALESCE(AVG(score), 0) AS average").
		Where("movie_id = ? AND is_active = ?", movieID, true).
		Scan(&avg).Error; err != nil {
		return 0, fmt.Errorf("average rating: %w", err)
	}
	return avg.Average, nil
}

func (r *ratingRepository) CountForMovie(ctx context.Context, movieID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Rating{}).
		Where("movie_id = ? AND is_active = ?", movieID, true).
		Count(&count).Error
	return count, err
}
