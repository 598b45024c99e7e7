package models

// Rating is an upsert target keyed on (user, movie): re-rating
// overwrites the previous score instead of appending a new row.
type Rating struct {
	ID      int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID  string `json:"user" gorm:"type:uuid;not null;index;uniqueIndex:uniq_rating_user_movie"`
	MovieID int64  `json:"movie" gorm:"not null;index;uniqueIndex:uniq_rating_user_movie"`
	Score   int    `json:"score" gorm:"not null;check:score >= 1 AND score <= 5"`
	Lifecycle

	// Associations
	User  *User  `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Movie *Movie `json:"-" gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE;"`
}

func (Rating) TableName() string {
	return "ratings"
}
