package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"moviehub/internal/dto"
	"moviehub/internal/middleware"
	"moviehub/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func authedUser(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserIDKey, userID)
		c.Set(middleware.ContextClaimsKey, &service.Claims{UserID: userID, Username: userID})
		c.Next()
	}
}

func setupMovieRouter(movieSvc service.MovieService, ratingSvc service.RatingService, authMw gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewMovieHandler(movieSvc, ratingSvc).RegisterRoutes(r.Group("/api"), authMw)
	return r
}

func TestMovieGetEndpoint_NotFound(t *testing.T) {
	mockMovies := new(MockMovieService)
	mockMovies.On("Get", mock.Anything, int64(42)).Return(nil, service.ErrMovieNotFound)

	r := setupMovieRouter(mockMovies, new(MockRatingService), authedUser("user-1"))
	req := httptest.NewRequest(http.MethodGet, "/api/movies/42", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMovieGetEndpoint_GarbageID(t *testing.T) {
	mockMovies := new(MockMovieService)

	r := setupMovieRouter(mockMovies, new(MockRatingService), authedUser("user-1"))
	req := httptest.NewRequest(http.MethodGet, "/api/movies/not-a-number", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockMovies.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestMovieCreateEndpoint_Duplicate(t *testing.T) {
	mockMovies := new(MockMovieService)
	mockMovies.On("Create", mock.Anything, mock.AnythingOfType("dto.CreateMovieRequest")).Return(nil, service.ErrDuplicateMovie)

	r := setupMovieRouter(mockMovies, new(MockRatingService), authedUser("user-1"))
	w := postJSON(r, "/api/movies", gin.H{"title": "Arrival Window", "release_date": "2021-03-12"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMovieCreateEndpoint_Created(t *testing.T) {
	mockMovies := new(MockMovieService)
	detail := &dto.MovieDetailResponse{ID: 7, Title: "Arrival Window"}
	mockMovies.On("Create", mock.Anything, mock.AnythingOfType("dto.CreateMovieRequest")).Return(detail, nil)

	r := setupMovieRouter(mockMovies, new(MockRatingService), authedUser("user-1"))
	w := postJSON(r, "/api/movies", gin.H{"title": "Arrival Window"})

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestRateEndpoint_Created(t *testing.T) {
	mockRatings := new(MockRatingService)
	resp := &dto.RatingResponse{ID: 1, User: "user-1", Movie: 7, Score: 4}
	mockRatings.On("Rate", mock.Anything, "user-1", int64(7), 4).Return(resp, nil)

	r := setupMovieRouter(new(MockMovieService), mockRatings, authedUser("user-1"))
	w := postJSON(r, "/api/movies/7/rate", gin.H{"score": 4})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"score":4`)
}

func TestRateEndpoint_ScoreOutOfRange(t *testing.T) {
	mockRatings := new(MockRatingService)

	r := setupMovieRouter(new(MockMovieService), mockRatings, authedUser("user-1"))
	w := postJSON(r, "/api/movies/7/rate", gin.H{"score": 6})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockRatings.AssertNotCalled(t, "Rate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRateEndpoint_MovieMissing(t *testing.T) {
	mockRatings := new(MockRatingService)
	mockRatings.On("Rate", mock.Anything, "user-1", int64(99), 3).Return(nil, service.ErrMovieNotFound)

	r := setupMovieRouter(new(MockMovieService), mockRatings, authedUser("user-1"))
	w := postJSON(r, "/api/movies/99/rate", gin.H{"score": 3})

	assert.Equal(t, http.StatusNotFound, w.Code)
}
