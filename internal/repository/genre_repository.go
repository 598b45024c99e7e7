package repository

import (
	"context"
	"fmt"

	"moviehub/internal/models"

	"gorm.io/gorm"
)

// CatalogFilter is shared by the flat catalog collections (genres,
// platforms): name search plus the common lifecycle filter.
type CatalogFilter struct {
	Search   string
	Name     string
	IsActive *bool
	Page     int
	PageSize int
}

type GenreRepository interface {
	List(ctx context.Context, filter CatalogFilter) ([]models.Genre, int64, error)
	GetByID(ctx context.Context, id int64) (*models.Genre, error)
	Create(ctx context.Context, genre *models.Genre) error
	Update(ctx context.Context, genre *models.Genre) error
	SoftDelete(ctx context.Context, id int64) error
}

type genreRepository struct {
	db *gorm.DB
}

func NewGenreRepository(db *gorm.DB) GenreRepository {
	return &genreRepository{db: db}
}

func (r *genreRepository) List(ctx context.Context, filter CatalogFilter) ([]models.Genre, int64, error) {
	var list []models.Genre
	var total int64

	q := r.db.WithContext(ctx).Model(&models.Genre{})

	active := true
	if filter.IsActive != nil {
		active = *filter.IsActive
	}
	q = q.Where("is_active = ?", active)

	if filter.Search != "" {
		q = q.Where("name ILIKE ?", "%"+filter.Search+"%")
	}
	if filter.Name != "" {
		q = q.Where("name = ?", filter.Name)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count genres: %w", err)
	}

	limit, offset := paginate(filter.Page, filter.PageSize)
	if err := q.Order("name ASC").Limit(limit).Offset(offset).Find(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("list genres: %w", err)
	}
	return list, total, nil
}

func (r *genreRepository) GetByID(ctx context.Context, id int64) (*models.Genre, error) {
	var g models.Genre
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		First(&g, id).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *genreRepository) Create(ctx context.Context, genre *models.Genre) error {
	if err := r.db.WithContext(ctx).Create(genre).Error; err != nil {
		return fmt.Errorf("create genre: %w", err)
	}
	return nil
}

func (r *genreRepository) Update(ctx context.Context, genre *models.Genre) error {
	if err := r.db.WithContext(ctx).Save(genre).Error; err != nil {
		return fmt.Errorf("update genre: %w", err)
	}
	return nil
}

func (r *genreRepository) SoftDelete(ctx context.Context, id int64) error {
	return softDeleteByID(r.db.WithContext(ctx), &models.Genre{}, id)
}
