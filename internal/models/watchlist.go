package models

type Watchlist struct {
	ID          int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID      string `json:"user_id" gorm:"type:uuid;not null;index;uniqueIndex:uniq_watchlist_user_name"`
	Name        string `json:"name" gorm:"not null;size:150;uniqueIndex:uniq_watchlist_user_name"`
	Description string `json:"description,omitempty" gorm:"type:text"`
	Lifecycle

	// Associations
	User  *User           `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Items []WatchlistItem `json:"items,omitempty" gorm:"foreignKey:WatchlistID"`
}

func (Watchlist) TableName() string {
	return "watchlists"
}
