package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"moviehub/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// WatchlistRepository scopes every read and write by the owning user
// inside the query itself. A watchlist belonging to somebody else is
// indistinguishable from one that does not exist.
type WatchlistRepository interface {
	ListByUser(ctx context.Context, userID, search string, page, pageSize int) ([]models.Watchlist, int64, error)
	GetByIDForUser(ctx context.Context, userID string, id int64) (*models.Watchlist, error)
	Create(ctx context.Context, watchlist *models.Watchlist) error
	Update(ctx context.Context, watchlist *models.Watchlist) error
	SoftDeleteForUser(ctx context.Context, userID string, id int64) error

	EnsureItem(ctx context.Context, watchlistID, movieID int64) (*models.WatchlistItem, error)
	RemoveItem(ctx context.Context, watchlistID, movieID int64) error
	BulkEnsureItems(ctx context.Context, watchlistID int64, movieIDs []int64) ([]models.WatchlistItem, error)
}

type watchlistRepository struct {
	db *gorm.DB
}

func NewWatchlistRepository(db *gorm.DB) WatchlistRepository {
	return &watchlistRepository{db: db}
}

func (r *watchlistRepository) ListByUser(ctx context.Context, userID, search string, page, pageSize int) ([]models.Watchlist, int64, error) {
	var list []models.Watchlist
	var total int64

	q := r.db.WithContext(ctx).Model(&models.Watchlist{}).
		Where("user_id = ? AND is_active = ?", userID, true)

	for _, t := range strings.Fields(search) {
		p := "%" + t + "%"
		q = q.Where("(name ILIKE ? OR description ILIKE ?)", p, p)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count watchlists: %w", err)
	}

	limit, offset := paginate(page, pageSize)
	if err := q.Preload("Items").
		Order("name ASC").
		Limit(limit).
		Offset(offset).
		Find(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("list watchlists: %w", err)
	}
	return list, total, nil
}

func (r *watchlistRepository) GetByIDForUser(ctx context.Context, userID string, id int64) (*models.Watchlist, error) {
	var w models.Watchlist
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ? AND is_active = ?", userID, true).
		First(&w, id).Error; err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *watchlistRepository) Create(ctx context.Context, watchlist *models.Watchlist) error {
	if err := r.db.WithContext(ctx).Create(watchlist).Error; err != nil {
		return fmt.Errorf("create watchlist: %w", err)
	}
	return nil
}

func (r *watchlistRepository) Update(ctx context.Context, watchlist *models.Watchlist) error {
	if err := r.db.WithContext(ctx).
		Omit("Items", "User").
		Save(watchlist).Error; err != nil {
		return fmt.Errorf("update watchlist: %w", err)
	}
	return nil
}

func (r *watchlistRepository) SoftDeleteForUser(ctx context.Context, userID string, id int64) error {
	result := r.db.WithContext(ctx).Model(&models.Watchlist{}).
		Where("id = ? AND user_id = ? AND is_active = ?", id, userID, true).
		Updates(map[string]interface{}{
			"is_active":  false,
			"deleted_at": time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("delete watchlist: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// EnsureItem idempotently guarantees a (watchlist, movie) item exists.
// The insert rides on the uniqueness constraint; a second call is a
// no-op that returns the surviving row.
func (r *watchlistRepository) EnsureItem(ctx context.Context, watchlistID, movieID int64) (*models.WatchlistItem, error) {
	item := &models.WatchlistItem{WatchlistID: watchlistID, MovieID: movieID}
	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "watchlist_id"}, {Name: "movie_id"}},
		DoNothing: true,
	}).Create(item).Error; err != nil {
		return nil, fmt.Errorf("ensure watchlist item: %w", err)
	}

	// On conflict the insert assigns no ID; fetch the canonical row
	var out models.WatchlistItem
	if err := r.db.WithContext(ctx).
		Where("watchlist_id = ? AND movie_id = ?", watchlistID, movieID).
		First(&out).Error; err != nil {
		return nil, fmt.Errorf("load watchlist item: %w", err)
	}
	return &out, nil
}

// RemoveItem hard-deletes the link row. See the model comment for why
// items are the one place soft delete does not apply.
func (r *watchlistRepository) RemoveItem(ctx context.Context, watchlistID, movieID int64) error {
	result := r.db.WithContext(ctx).
		Where("watchlist_id = ? AND movie_id = ?", watchlistID, movieID).
		Delete(&models.WatchlistItem{})
	if result.Error != nil {
		return fmt.Errorf("remove watchlist item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// BulkEnsureItems runs the whole list in one transaction so a partial
// failure rolls everything back. Returns the full resulting item set
// for the requested movies, created and pre-existing alike.
func (r *watchlistRepository) BulkEnsureItems(ctx context.Context, watchlistID int64, movieIDs []int64) ([]models.WatchlistItem, error) {
	var items []models.WatchlistItem

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, movieID := range movieIDs {
			item := &models.WatchlistItem{WatchlistID: watchlistID, MovieID: movieID}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "watchlist_id"}, {Name: "movie_id"}},
				DoNothing: true,
			}).Create(item).Error; err != nil {
				return fmt.Errorf("ensure watchlist item %d: %w", movieID, err)
			}
		}
		if err := tx.
			Where("watchlist_id = ? AND movie_id IN ?", watchlistID, movieIDs).
			Order("id ASC").
			Find(&items).Error; err != nil {
			return fmt.Errorf("load watchlist items: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}
