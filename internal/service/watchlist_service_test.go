package service

import (
	"context"
	"testing"

	"moviehub/internal/dto"
	"moviehub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func TestWatchlistGet_OtherUsersListLooksMissing(t *testing.T) {
	mockWatchlistRepo := new(MockWatchlistRepository)
	mockMovieRepo := new(MockMovieRepository)
	watchlistService := NewWatchlistService(mockWatchlistRepo, mockMovieRepo)

	// the repository never distinguishes "not yours" from "not there"
	mockWatchlistRepo.On("GetByIDForUser", mock.Anything, "intruder", int64(5)).Return(nil, gorm.ErrRecordNotFound)
	mockWatchlistRepo.On("GetByIDForUser", mock.Anything, "anyone", int64(999)).Return(nil, gorm.ErrRecordNotFound)

	_, errForeign := watchlistService.Get(context.Background(), "intruder", 5)
	_, errMissing := watchlistService.Get(context.Background(), "anyone", 999)

	assert.Equal(t, ErrWatchlistNotFound, errForeign)
	assert.Equal(t, errForeign, errMissing)
}

func TestWatchlistCreate_DuplicateName(t *testing.T) {
	mockWatchlistRepo := new(MockWatchlistRepository)
	watchlistService := NewWatchlistService(mockWatchlistRepo, new(MockMovieRepository))

	mockWatchlistRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Watchlist")).Return(uniqueViolation())

	_, err := watchlistService.Create(context.Background(), "user-1", dto.CreateWatchlistRequest{Name: "Weekend queue"})
	assert.Equal(t, ErrDuplicateWatchlist, err)
}

func TestAddItem_Idempotent(t *testing.T) {
	mockWatchlistRepo := new(MockWatchlistRepository)
	mockMovieRepo := new(MockMovieRepository)
	watchlistService := NewWatchlistService(mockWatchlistRepo, mockMovieRepo)

	w := &models.Watchlist{ID: 3, UserID: "user-1", Name: "Weekend queue"}
	item := &models.WatchlistItem{ID: 10, WatchlistID: 3, MovieID: 7}

	mockWatchlistRepo.On("GetByIDForUser", mock.Anything, "user-1", int64(3)).Return(w, nil)
	mockMovieRepo.On("GetByID", mock.Anything, int64(7)).Return(&models.Movie{ID: 7}, nil)
	mockWatchlistRepo.On("EnsureItem", mock.Anything, int64(3), int64(7)).Return(item, nil)

	first, err := watchlistService.AddItem(context.Background(), "user-1", 3, dto.AddItemRequest{Movie: 7})
	assert.NoError(t, err)
	second, err := watchlistService.AddItem(context.Background(), "user-1", 3, dto.AddItemRequest{Movie: 7})
	assert.NoError(t, err)

	// adding twice yields the same surviving item, no duplicate
	assert.Equal(t, first.ID, second.ID)
	mockWatchlistRepo.AssertNumberOfCalls(t, "EnsureItem", 2)
}

func TestAddItem_MovieMissing(t *testing.T) {
	mockWatchlistRepo := new(MockWatchlistRepository)
	mockMovieRepo := new(MockMovieRepository)
	watchlistService := NewWatchlistService(mockWatchlistRepo, mockMovieRepo)

	w := &models.Watchlist{ID: 3, UserID: "user-1"}
	mockWatchlistRepo.On("GetByIDForUser", mock.Anything, "user-1", int64(3)).Return(w, nil)
	mockMovieRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	_, err := watchlistService.AddItem(context.Background(), "user-1", 3, dto.AddItemRequest{Movie: 99})
	assert.Equal(t, ErrMovieNotFound, err)
	mockWatchlistRepo.AssertNotCalled(t, "EnsureItem", mock.Anything, mock.Anything, mock.Anything)
}

func TestRemoveItem_NotOnList(t *testing.T) {
	mockWatchlistRepo := new(MockWatchlistRepository)
	watchlistService := NewWatchlistService(mockWatchlistRepo, new(MockMovieRepository))

	w := &models.Watchlist{ID: 3, UserID: "user-1"}
	mockWatchlistRepo.On("GetByIDForUser", mock.Anything, "user-1", int64(3)).Return(w, nil)
	mockWatchlistRepo.On("RemoveItem", mock.Anything, int64(3), int64(7)).Return(gorm.ErrRecordNotFound)

	err := watchlistService.RemoveItem(context.Background(), "user-1", 3, dto.AddItemRequest{Movie: 7})
	assert.Equal(t, ErrItemNotFound, err)
}

func TestBulkAdd_DeduplicatesRequest(t *testing.T) {
	mockWatchlistRepo := new(MockWatchlistRepository)
	mockMovieRepo := new(MockMovieRepository)
	watchlistService := NewWatchlistService(mockWatchlistRepo, mockMovieRepo)

	w := &models.Watchlist{ID: 3, UserID: "user-1"}
	mockWatchlistRepo.On("GetByIDForUser", mock.Anything, "user-1", int64(3)).Return(w, nil)
	mockMovieRepo.On("GetByID", mock.Anything, int64(1)).Return(&models.Movie{ID: 1}, nil)
	mockMovieRepo.On("GetByID", mock.Anything, int64(2)).Return(&models.Movie{ID: 2}, nil)

	// [1, 2, 1] collapses into two items at the storage layer
	items := []models.WatchlistItem{
		{ID: 10, WatchlistID: 3, MovieID: 1},
		{ID: 11, WatchlistID: 3, MovieID: 2},
	}
	mockWatchlistRepo.On("BulkEnsureItems", mock.Anything, int64(3), []int64{1, 2, 1}).Return(items, nil)

	out, err := watchlistService.BulkAdd(context.Background(), "user-1", 3, dto.BulkAddRequest{Movies: []int64{1, 2, 1}})

	assert.NoError(t, err)
	assert.Len(t, out, 2)
}

func TestBulkAdd_UnknownMovieRejectsWholeBatch(t *testing.T) {
	mockWatchlistRepo := new(MockWatchlistRepository)
	mockMovieRepo := new(MockMovieRepository)
	watchlistService := NewWatchlistService(mockWatchlistRepo, mockMovieRepo)

	w := &models.Watchlist{ID: 3, UserID: "user-1"}
	mockWatchlistRepo.On("GetByIDForUser", mock.Anything, "user-1", int64(3)).Return(w, nil)
	mockMovieRepo.On("GetByID", mock.Anything, int64(1)).Return(&models.Movie{ID: 1}, nil)
	mockMovieRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	_, err := watchlistService.BulkAdd(context.Background(), "user-1", 3, dto.BulkAddRequest{Movies: []int64{1, 99}})

	assert.Equal(t, ErrMovieNotFound, err)
	mockWatchlistRepo.AssertNotCalled(t, "BulkEnsureItems", mock.Anything, mock.Anything, mock.Anything)
}

func TestWatchlistSoftDelete_Miss(t *testing.T) {
	mockWatchlistRepo := new(MockWatchlistRepository)
	watchlistService := NewWatchlistService(mockWatchlistRepo, new(MockMovieRepository))

	mockWatchlistRepo.On("SoftDeleteForUser", mock.Anything, "user-1", int64(42)).Return(gorm.ErrRecordNotFound)

	err := watchlistService.SoftDelete(context.Background(), "user-1", 42)
	assert.Equal(t, ErrWatchlistNotFound, err)
}
