package models

type Review struct {
	ID      int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID  string `json:"user" gorm:"type:uuid;not null;index;uniqueIndex:uniq_review_user_movie_title"`
	MovieID int64  `json:"movie" gorm:"not null;index;uniqueIndex:uniq_review_user_movie_title"`
	Title   string `json:"title" gorm:"not null;size:255;uniqueIndex:uniq_review_user_movie_title"`
	Body    string `json:"body,omitempty" gorm:"type:text"`
	Lifecycle

	// Associations
	User  *User  `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Movie *Movie `json:"-" gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE;"`
}

func (Review) TableName() string {
	return "reviews"
}
