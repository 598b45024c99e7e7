package models

import "time"

type Movie struct {
	ID          int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	Title       string     `json:"title" gorm:"not null;index;size:255;uniqueIndex:uniq_movie_title_release"`
	Description string     `json:"description" gorm:"type:text"`
	ReleaseDate *time.Time `json:"release_date,omitempty" gorm:"type:date;uniqueIndex:uniq_movie_title_release"`
	Duration    *int       `json:"duration,omitempty"` // minutes
	PosterURL   *string    `json:"poster_url,omitempty"`
	Lifecycle

	// AvgRating is derived from active ratings on every read and is
	// never stored; the column only exists inside list/detail queries.
	AvgRating float64 `json:"avg_rating" gorm:"->;-:migration"`

	// Associations
	Genres    []Genre    `json:"genres,omitempty" gorm:"many2many:movie_genres;constraint:OnDelete:CASCADE;"`
	Platforms []Platform `json:"platforms,omitempty" gorm:"many2many:movie_platforms;constraint:OnDelete:CASCADE;"`
}

func (Movie) TableName() string {
	return "movies"
}
