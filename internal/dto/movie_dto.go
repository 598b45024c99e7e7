package dto

import (
	"time"

	"moviehub/internal/models"
)

// CreateMovieRequest used for POST /api/movies and PUT /api/movies/:id
type CreateMovieRequest struct {
	Title       string  `json:"title" binding:"required,max=255"`
	Description string  `json:"description"`
	ReleaseDate *string `json:"release_date,omitempty" binding:"omitempty,datetime=2006-01-02"`
	Duration    *int    `json:"duration,omitempty" binding:"omitempty,gt=0"` // minutes
	PosterURL   *string `json:"poster_url,omitempty" binding:"omitempty,url"`
	Genres      []int64 `json:"genres,omitempty"`
	Platforms   []int64 `json:"platforms,omitempty"`
}

// UpdateMovieRequest used for PATCH /api/movies/:id (partial updates)
type UpdateMovieRequest struct {
	Title       *string  `json:"title,omitempty" binding:"omitempty,max=255"`
	Description *string  `json:"description,omitempty"`
	ReleaseDate *string  `json:"release_date,omitempty" binding:"omitempty,datetime=2006-01-02"`
	Duration    *int     `json:"duration,omitempty" binding:"omitempty,gt=0"`
	PosterURL   *string  `json:"poster_url,omitempty" binding:"omitempty,url"`
	Genres      *[]int64 `json:"genres,omitempty"`
	Platforms   *[]int64 `json:"platforms,omitempty"`
}

// ListMoviesQuery captures the collection's query string
type ListMoviesQuery struct {
	Search      string  `form:"search"`
	Genre       *int64  `form:"genre"`
	Platform    *int64  `form:"platform"`
	ReleaseDate *string `form:"release_date" binding:"omitempty,datetime=2006-01-02"`
	IsActive    *bool   `form:"is_active"`
	Ordering    string  `form:"ordering"`
	Page        int     `form:"page,default=1"`
	PageSize    int     `form:"page_size,default=20"`
}

// MovieResponse is the list shape: associations as ID lists only
type MovieResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ReleaseDate *string   `json:"release_date"`
	Duration    *int      `json:"duration"`
	PosterURL   *string   `json:"poster_url"`
	Genres      []int64   `json:"genres"`
	Platforms   []int64   `json:"platforms"`
	AvgRating   float64   `json:"avg_rating"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	IsActive    bool      `json:"is_active"`
}

// MovieDetailResponse nests full genre/platform detail (retrieve only)
type MovieDetailResponse struct {
	ID          int64             `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	ReleaseDate *string           `json:"release_date"`
	Duration    *int              `json:"duration"`
	PosterURL   *string           `json:"poster_url"`
	Genres      []models.Genre    `json:"genres"`
	Platforms   []models.Platform `json:"platforms"`
	AvgRating   float64           `json:"avg_rating"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
	IsActive    bool              `json:"is_active"`
}

const dateLayout = "2006-01-02"

// ParseDate converts a YYYY-MM-DD string, nil-safe.
func ParseDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

// Converters
func (d CreateMovieRequest) ToModel() (models.Movie, error) {
	release, err := ParseDate(d.ReleaseDate)
	if err != nil {
		return models.Movie{}, err
	}
	return models.Movie{
		Title:       d.Title,
		Description: d.Description,
		ReleaseDate: release,
		Duration:    d.Duration,
		PosterURL:   d.PosterURL,
	}, nil
}

func (d UpdateMovieRequest) ApplyTo(m *models.Movie) error {
	if d.Title != nil {
		m.Title = *d.Title
	}
	if d.Description != nil {
		m.Description = *d.Description
	}
	if d.ReleaseDate != nil {
		release, err := ParseDate(d.ReleaseDate)
		if err != nil {
			return err
		}
		m.ReleaseDate = release
	}
	if d.Duration != nil {
		m.Duration = d.Duration
	}
	if d.PosterURL != nil {
		m.PosterURL = d.PosterURL
	}
	return nil
}

func FromMovieModel(m models.Movie) MovieResponse {
	genreIDs := make([]int64, 0, len(m.Genres))
	for _, g := range m.Genres {
		genreIDs = append(genreIDs, g.ID)
	}
	platformIDs := make([]int64, 0, len(m.Platforms))
	for _, p := range m.Platforms {
		platformIDs = append(platformIDs, p.ID)
	}
	return MovieResponse{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		ReleaseDate: formatDate(m.ReleaseDate),
		Duration:    m.Duration,
		PosterURL:   m.PosterURL,
		Genres:      genreIDs,
		Platforms:   platformIDs,
		AvgRating:   m.AvgRating,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		IsActive:    m.IsActive,
	}
}

func FromMovieModelDetail(m models.Movie) MovieDetailResponse {
	genres := m.Genres
	if genres == nil {
		genres = []models.Genre{}
	}
	platforms := m.Platforms
	if platforms == nil {
		platforms = []models.Platform{}
	}
	return MovieDetailResponse{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		ReleaseDate: formatDate(m.ReleaseDate),
		Duration:    m.Duration,
		PosterURL:   m.PosterURL,
		Genres:      genres,
		Platforms:   platforms,
		AvgRating:   m.AvgRating,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		IsActive:    m.IsActive,
	}
}
