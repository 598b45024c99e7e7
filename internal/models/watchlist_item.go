package models

// WatchlistItem links one watchlist to one movie. It carries the
// lifecycle envelope like every other entity, but removal is a hard
// delete: a soft-deleted row would block the (watchlist, movie)
// uniqueness constraint on re-add.
type WatchlistItem struct {
	ID          int64 `json:"id" gorm:"primaryKey;autoIncrement"`
	WatchlistID int64 `json:"watchlist" gorm:"not null;index;uniqueIndex:uniq_item_watchlist_movie"`
	MovieID     int64 `json:"movie" gorm:"not null;index;uniqueIndex:uniq_item_watchlist_movie"`
	Lifecycle

	// Associations
	Watchlist *Watchlist `json:"-" gorm:"foreignKey:WatchlistID;constraint:OnDelete:CASCADE;"`
	Movie     *Movie     `json:"movie_detail,omitempty" gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE;"`
}

func (WatchlistItem) TableName() string {
	return "watchlist_items"
}
