package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"moviehub/internal/models"

	"gorm.io/gorm"
)

// avgRatingJoin folds active rating scores into a scan-only avg_rating
// column; the average is recomputed on every read and never stored.
const avgRatingJoin = "LEFT JOIN (SELECT movie_id, AVG(score) AS avg_score FROM ratings WHERE is_active = true GROUP BY movie_id) ra ON ra.movie_id = movies.id"

const avgRatingSelect = "movies.*, COALESCE(ra.avg_score, 0) AS avg_rating"

// MovieFilter captures the query surface of the movie collection.
type MovieFilter struct {
	Search      string
	GenreID     *int64
	PlatformID  *int64
	ReleaseDate *time.Time
	IsActive    *bool
	Ordering    string
	Page        int
	PageSize    int
}

type MovieRepository interface {
	List(ctx context.Context, filter MovieFilter) ([]models.Movie, int64, error)
	GetByID(ctx context.Context, id int64) (*models.Movie, error)
	Create(ctx context.Context, movie *models.Movie) error
	Update(ctx context.Context, movie *models.Movie) error
	ReplaceGenres(ctx context.Context, movie *models.Movie, genres []models.Genre) error
	ReplacePlatforms(ctx context.Context, movie *models.Movie, platforms []models.Platform) error
	SoftDelete(ctx context.Context, id int64) error
	GenresByIDs(ctx context.Context, ids []int64) ([]models.Genre, error)
	PlatformsByIDs(ctx context.Context, ids []int64) ([]models.Platform, error)
}

type movieRepository struct {
	db *gorm.DB
}

func NewMovieRepository(db *gorm.DB) MovieRepository {
	return &movieRepository{db: db}
}

// orderings maps the public ordering keys onto real columns; anything
// else falls back to newest-first.
var orderings = map[string]string{
	"created_at":    "movies.created_at ASC",
	"-created_at":   "movies.created_at DESC",
	"release_date":  "movies.release_date ASC",
	"-release_date": "movies.release_date DESC",
	"title":         "movies.title ASC",
	"-title":        "movies.title DESC",
}

func (r *movieRepository) List(ctx context.Context, filter MovieFilter) ([]models.Movie, int64, error) {
	var list []models.Movie
	var total int64

	q := r.db.WithContext(ctx).Model(&models.Movie{})

	// Default listings only show active records
	active := true
	if filter.IsActive != nil {
		active = *filter.IsActive
	}
	q = q.Where("movies.is_active = ?", active)

	// Token search over title and description, every token must match
	for _, t := range strings.Fields(filter.Search) {
		p := "%" + t + "%"
		q = q.Where("(movies.title ILIKE ? OR movies.description ILIKE ?)", p, p)
	}

	if filter.GenreID != nil {
		q = q.Joins("JOIN movie_genres mg ON mg.movie_id = movies.id").
			Where("mg.genre_id = ?", *filter.GenreID)
	}
	if filter.PlatformID != nil {
		q = q.Joins("JOIN movie_platforms mp ON mp.movie_id = movies.id").
			Where("mp.platform_id = ?", *filter.PlatformID)
	}
	if filter.ReleaseDate != nil {
		q = q.Where("movies.release_date = ?", *filter.ReleaseDate)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count movies: %w", err)
	}

	order, ok := orderings[filter.Ordering]
	if !ok {
		order = "movies.created_at DESC"
	}

	limit, offset := paginate(filter.Page, filter.PageSize)
	if err := q.Select(avgRatingSelect).
		Joins(avgRatingJoin).
		Preload("Genres").
		Preload("Platforms").
		Order(order).
		Limit(limit).
		Offset(offset).
		Find(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("list movies: %w", err)
	}

	return list, total, nil
}

// GetByID returns a single active movie with nested genre/platform
// detail and a freshly computed average rating.
func (r *movieRepository) GetByID(ctx context.Context, id int64) (*models.Movie, error) {
	var m models.Movie
	if err := r.db.WithContext(ctx).
		Select(avgRatingSelect).
		Joins(avgRatingJoin).
		Preload("Genres").
		Preload("Platforms").
		Where("movies.is_active = ?", true).
		First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *movieRepository) Create(ctx context.Context, movie *models.Movie) error {
	// Omit the association targets themselves so only join rows are
	// written for pre-existing genres/platforms
	if err := r.db.WithContext(ctx).
		Omit("Genres.*", "Platforms.*").
		Create(movie).Error; err != nil {
		return fmt.Errorf("create movie: %w", err)
	}
	return nil
}

func (r *movieRepository) Update(ctx context.Context, movie *models.Movie) error {
	if err := r.db.WithContext(ctx).
		Omit("Genres", "Platforms").
		Save(movie).Error; err != nil {
		return fmt.Errorf("update movie: %w", err)
	}
	return nil
}

func (r *movieRepository) ReplaceGenres(ctx context.Context, movie *models.Movie, genres []models.Genre) error {
	if err := r.db.WithContext(ctx).Model(movie).Association("Genres").Replace(genres); err != nil {
		return fmt.Errorf("replace genres: %w", err)
	}
	return nil
}

func (r *movieRepository) ReplacePlatforms(ctx context.Context, movie *models.Movie, platforms []models.Platform) error {
	if err := r.db.WithContext(ctx).Model(movie).Association("Platforms").Replace(platforms); err != nil {
		return fmt.Errorf("replace platforms: %w", err)
	}
	return nil
}

func (r *movieRepository) SoftDelete(ctx context.Context, id int64) error {
	return softDeleteByID(r.db.WithContext(ctx), &models.Movie{}, id)
}

func (r *movieRepository) GenresByIDs(ctx context.Context, ids []int64) ([]models.Genre, error) {
	var genres []models.Genre
	if len(ids) == 0 {
		return genres, nil
	}
	if err := r.db.WithContext(ctx).
		Where("id IN ? AND is_active = ?", ids, true).
		Find(&genres).Error; err != nil {
		return nil, fmt.Errorf("load genres: %w", err)
	}
	return genres, nil
}

func (r *movieRepository) PlatformsByIDs(ctx context.Context, ids []int64) ([]models.Platform, error) {
	var platforms []models.Platform
	if len(ids) == 0 {
		return platforms, nil
	}
	if err := r.db.WithContext(ctx).
		Where("id IN ? AND is_active = ?", ids, true).
		Find(&platforms).Error; err != nil {
		return nil, fmt.Errorf("load platforms: %w", err)
	}
	return platforms, nil
}
