package repository

import (
	"context"
	"fmt"
	"strings"

	"moviehub/internal/models"

	"gorm.io/gorm"
)

type ReviewFilter struct {
	MovieID  *int64
	UserID   *string
	Search   string
	Page     int
	PageSize int
}

type ReviewRepository interface {
	List(ctx context.Context, filter ReviewFilter) ([]models.Review, int64, error)
	GetByID(ctx context.Context, id int64) (*models.Review, error)
	Create(ctx context.Context, review *models.Review) error
	Update(ctx context.Context, review *models.Review) error
	SoftDelete(ctx context.Context, id int64) error
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) List(ctx context.Context, filter ReviewFilter) ([]models.Review, int64, error) {
	var list []models.Review
	var total int64

	q := r.db.WithContext(ctx).Model(&models.Review{}).Where("is_active = ?", true)

	if filter.MovieID != nil {
		q = q.Where("movie_id = ?", *filter.MovieID)
	}
	if filter.UserID != nil {
		q = q.Where("user_id = ?", *filter.UserID)
	}
	for _, t := range strings.Fields(filter.Search) {
		p := "%" + t + "%"
		q = q.Where("(title ILIKE ? OR body ILIKE ?)", p, p)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count reviews: %w", err)
	}

	limit, offset := paginate(filter.Page, filter.PageSize)
	if err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("list reviews: %w", err)
	}
	return list, total, nil
}

// GetByID only checks the review's own lifecycle flag; reviews of a
// soft-deleted movie stay addressable.
func (r *reviewRepository) GetByID(ctx context.Context, id int64) (*models.Review, error) {
	var rev models.Review
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		First(&rev, id).Error; err != nil {
		return nil, err
	}
	return &rev, nil
}

func (r *reviewRepository) Create(ctx context.Context, review *models.Review) error {
	if err := r.db.WithContext(ctx).Create(review).Error; err != nil {
		return fmt.Errorf("create review: %w", err)
	}
	return nil
}

func (r *reviewRepository) Update(ctx context.Context, review *models.Review) error {
	if err := r.db.WithContext(ctx).Save(review).Error; err != nil {
		return fmt.Errorf("update review: %w", err)
	}
	return nil
}

func (r *reviewRepository) SoftDelete(ctx context.Context, id int64) error {
	return softDeleteByID(r.db.WithContext(ctx), &models.Review{}, id)
}
