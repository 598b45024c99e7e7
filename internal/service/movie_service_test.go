package service

import (
	"context"
	"testing"

	"moviehub/internal/dto"
	"moviehub/internal/models"
	"moviehub/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func TestMovieCreate_DuplicateTitleAndDate(t *testing.T) {
	mockMovieRepo := new(MockMovieRepository)
	movieService := NewMovieService(mockMovieRepo)

	mockMovieRepo.On("GenresByIDs", mock.Anything, mock.Anything).Return([]models.Genre{}, nil)
	mockMovieRepo.On("PlatformsByIDs", mock.Anything, mock.Anything).Return([]models.Platform{}, nil)
	mockMovieRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Movie")).Return(uniqueViolation())

	release := "2021-03-12"
	_, err := movieService.Create(context.Background(), dto.CreateMovieRequest{
		Title:       "Arrival Window",
		ReleaseDate: &release,
	})

	assert.Equal(t, ErrDuplicateMovie, err)
}

func TestMovieGet_Missing(t *testing.T) {
	mockMovieRepo := new(MockMovieRepository)
	movieService := NewMovieService(mockMovieRepo)

	mockMovieRepo.On("GetByID", mock.Anything, int64(42)).Return(nil, gorm.ErrRecordNotFound)

	_, err := movieService.Get(context.Background(), 42)
	assert.Equal(t, ErrMovieNotFound, err)
}

func TestMoviePatch_OnlyReplacesProvidedAssociations(t *testing.T) {
	mockMovieRepo := new(MockMovieRepository)
	movieService := NewMovieService(mockMovieRepo)

	movie := &models.Movie{ID: 7, Title: "Old Title"}
	mockMovieRepo.On("GetByID", mock.Anything, int64(7)).Return(movie, nil)
	mockMovieRepo.On("Update", mock.Anything, movie).Return(nil)

	genres := []models.Genre{{ID: 1, Name: "Drama"}}
	mockMovieRepo.On("GenresByIDs", mock.Anything, []int64{1}).Return(genres, nil)
	mockMovieRepo.On("ReplaceGenres", mock.Anything, movie, genres).Return(nil)

	title := "New Title"
	genreIDs := []int64{1}
	_, err := movieService.Patch(context.Background(), 7, dto.UpdateMovieRequest{
		Title:  &title,
		Genres: &genreIDs,
	})

	assert.NoError(t, err)
	assert.Equal(t, "New Title", movie.Title)
	// platforms were absent from the patch so they stay untouched
	mockMovieRepo.AssertNotCalled(t, "ReplacePlatforms", mock.Anything, mock.Anything, mock.Anything)
}

func TestMovieList_PassesFilterThrough(t *testing.T) {
	mockMovieRepo := new(MockMovieRepository)
	movieService := NewMovieService(mockMovieRepo)

	genreID := int64(2)
	expected := repository.MovieFilter{
		Search:   "arrival",
		GenreID:  &genreID,
		Ordering: "-release_date",
		Page:     1,
		PageSize: 20,
	}
	mockMovieRepo.On("List", mock.Anything, expected).Return([]models.Movie{{ID: 7, Title: "Arrival Window"}}, int64(1), nil)

	page, err := movieService.List(context.Background(), dto.ListMoviesQuery{
		Search:   "arrival",
		Genre:    &genreID,
		Ordering: "-release_date",
		Page:     1,
		PageSize: 20,
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, page.Total)
	assert.Len(t, page.Data, 1)
}
