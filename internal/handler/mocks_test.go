package handler

import (
	"context"

	"moviehub/internal/dto"
	"moviehub/internal/models"
	"moviehub/internal/service"

	"github.com/stretchr/testify/mock"
)

// MockAuthService mocks the AuthService interface
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Signup(ctx context.Context, username, password, email string) (*models.User, string, string, error) {
	args := m.Called(ctx, username, password, email)
	if args.Get(0) == nil {
		return nil, "", "", args.Error(3)
	}
	return args.Get(0).(*models.User), args.String(1), args.String(2), args.Error(3)
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (string, string, *models.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(2) == nil {
		return "", "", nil, args.Error(3)
	}
	return args.String(0), args.String(1), args.Get(2).(*models.User), args.Error(3)
}

func (m *MockAuthService) RefreshAccessToken(ctx context.Context, refreshToken string) (string, error) {
	args := m.Called(ctx, refreshToken)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) ValidateToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Claims), args.Error(1)
}

func (m *MockAuthService) RevokeToken(ctx context.Context, refreshToken string) error {
	args := m.Called(ctx, refreshToken)
	return args.Error(0)
}

// MockRatingService mocks the RatingService interface
type MockRatingService struct {
	mock.Mock
}

func (m *MockRatingService) Rate(ctx context.Context, userID string, movieID int64, score int) (*dto.RatingResponse, error) {
	args := m.Called(ctx, userID, movieID, score)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.RatingResponse), args.Error(1)
}

func (m *MockRatingService) AverageForMovie(ctx context.Context, movieID int64) (float64, int64, error) {
	args := m.Called(ctx, movieID)
	return args.Get(0).(float64), args.Get(1).(int64), args.Error(2)
}

// MockMovieService mocks the MovieService interface
type MockMovieService struct {
	mock.Mock
}

func (m *MockMovieService) List(ctx context.Context, query dto.ListMoviesQuery) (*dto.PaginatedResponse[dto.MovieResponse], error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PaginatedResponse[dto.MovieResponse]), args.Error(1)
}

func (m *MockMovieService) Get(ctx context.Context, id int64) (*dto.MovieDetailResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.MovieDetailResponse), args.Error(1)
}

func (m *MockMovieService) Create(ctx context.Context, req dto.CreateMovieRequest) (*dto.MovieDetailResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.MovieDetailResponse), args.Error(1)
}

func (m *MockMovieService) Update(ctx context.Context, id int64, req dto.CreateMovieRequest) (*dto.MovieDetailResponse, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.MovieDetailResponse), args.Error(1)
}

func (m *MockMovieService) Patch(ctx context.Context, id int64, req dto.UpdateMovieRequest) (*dto.MovieDetailResponse, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.MovieDetailResponse), args.Error(1)
}

func (m *MockMovieService) SoftDelete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockGenreService mocks the GenreService interface
type MockGenreService struct {
	mock.Mock
}

func (m *MockGenreService) List(ctx context.Context, query dto.ListCatalogQuery) (*dto.PaginatedResponse[dto.GenreResponse], error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PaginatedResponse[dto.GenreResponse]), args.Error(1)
}

func (m *MockGenreService) Get(ctx context.Context, id int64) (*dto.GenreResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.GenreResponse), args.Error(1)
}

func (m *MockGenreService) Create(ctx context.Context, req dto.CreateGenreRequest) (*dto.GenreResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.GenreResponse), args.Error(1)
}

func (m *MockGenreService) Update(ctx context.Context, id int64, req dto.CreateGenreRequest) (*dto.GenreResponse, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.GenreResponse), args.Error(1)
}

func (m *MockGenreService) Patch(ctx context.Context, id int64, req dto.UpdateGenreRequest) (*dto.GenreResponse, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.GenreResponse), args.Error(1)
}

func (m *MockGenreService) SoftDelete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockWatchlistService mocks the WatchlistService interface
type MockWatchlistService struct {
	mock.Mock
}

func (m *MockWatchlistService) List(ctx context.Context, userID string, query dto.ListWatchlistsQuery) (*dto.PaginatedResponse[dto.WatchlistResponse], error) {
	args := m.Called(ctx, userID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PaginatedResponse[dto.WatchlistResponse]), args.Error(1)
}

func (m *MockWatchlistService) Get(ctx context.Context, userID string, id int64) (*dto.WatchlistResponse, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.WatchlistResponse), args.Error(1)
}

func (m *MockWatchlistService) Create(ctx context.Context, userID string, req dto.CreateWatchlistRequest) (*dto.WatchlistResponse, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.WatchlistResponse), args.Error(1)
}

func (m *MockWatchlistService) Update(ctx context.Context, userID string, id int64, req dto.CreateWatchlistRequest) (*dto.WatchlistResponse, error) {
	args := m.Called(ctx, userID, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.WatchlistResponse), args.Error(1)
}

func (m *MockWatchlistService) Patch(ctx context.Context, userID string, id int64, req dto.UpdateWatchlistRequest) (*dto.WatchlistResponse, error) {
	args := m.Called(ctx, userID, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.WatchlistResponse), args.Error(1)
}

func (m *MockWatchlistService) SoftDelete(ctx context.Context, userID string, id int64) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *MockWatchlistService) AddItem(ctx context.Context, userID string, id int64, req dto.AddItemRequest) (*dto.WatchlistItemResponse, error) {
	args := m.Called(ctx, userID, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.WatchlistItemResponse), args.Error(1)
}

func (m *MockWatchlistService) RemoveItem(ctx context.Context, userID string, id int64, req dto.AddItemRequest) error {
	args := m.Called(ctx, userID, id, req)
	return args.Error(0)
}

func (m *MockWatchlistService) BulkAdd(ctx context.Context, userID string, id int64, req dto.BulkAddRequest) ([]dto.WatchlistItemResponse, error) {
	args := m.Called(ctx, userID, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.WatchlistItemResponse), args.Error(1)
}
