package repository

import (
	"context"
	"fmt"

	"moviehub/internal/models"

	"gorm.io/gorm"
)

type PlatformRepository interface {
	List(ctx context.Context, filter CatalogFilter) ([]models.Platform, int64, error)
	GetByID(ctx context.Context, id int64) (*models.Platform, error)
	Create(ctx context.Context, platform *models.Platform) error
	Update(ctx context.Context, platform *models.Platform) error
	SoftDelete(ctx context.Context, id int64) error
}

type platformRepository struct {
	db *gorm.DB
}

func NewPlatformRepository(db *gorm.DB) PlatformRepository {
	return &platformRepository{db: db}
}

func (r *platformRepository) List(ctx context.Context, filter CatalogFilter) ([]models.Platform, int64, error) {
	var list []models.Platform
	var total int64

	q := r.db.WithContext(ctx).Model(&models.Platform{})

	active := true
	if filter.IsActive != nil {
		active = *filter.IsActive
	}
	q = q.Where("is_active = ?", active)

	if filter.Search != "" {
		p := "%" + filter.Search + "%"
		q = q.Where("(name ILIKE ? OR description ILIKE ?)", p, p)
	}
	if filter.Name != "" {
		q = q.Where("name = ?", filter.Name)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count platforms: %w", err)
	}

	limit, offset := paginate(filter.Page, filter.PageSize)
	if err := q.Order("name ASC").Limit(limit).Offset(offset).Find(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("list platforms: %w", err)
	}
	return list, total, nil
}

func (r *platformRepository) GetByID(ctx context.Context, id int64) (*models.Platform, error) {
	var p models.Platform
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *platformRepository) Create(ctx context.Context, platform *models.Platform) error {
	if err := r.db.WithContext(ctx).Create(platform).Error; err != nil {
		return fmt.Errorf("create platform: %w", err)
	}
	return nil
}

func (r *platformRepository) Update(ctx context.Context, platform *models.Platform) error {
	if err := r.db.WithContext(ctx).Save(platform).Error; err != nil {
		return fmt.Errorf("update platform: %w", err)
	}
	return nil
}

func (r *platformRepository) SoftDelete(ctx context.Context, id int64) error {
	return softDeleteByID(r.db.WithContext(ctx), &models.Platform{}, id)
}
