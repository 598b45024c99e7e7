package service

import (
	"context"
	"errors"

	"moviehub/internal/dto"
	"moviehub/internal/models"
	"moviehub/internal/repository"

	"gorm.io/gorm"
)

var (
	ErrWatchlistNotFound  = errors.New("watchlist not found")
	ErrItemNotFound       = errors.New("movie is not in this watchlist")
	ErrDuplicateWatchlist = errors.New("you already have a watchlist with this name")
)

// WatchlistService exposes only caller-scoped operations; every method
// takes the acting user's ID and can never touch another user's lists.
type WatchlistService interface {
	List(ctx context.Context, userID string, query dto.ListWatchlistsQuery) (*dto.PaginatedResponse[dto.WatchlistResponse], error)
	Get(ctx context.Context, userID string, id int64) (*dto.WatchlistResponse, error)
	Create(ctx context.Context, userID string, req dto.CreateWatchlistRequest) (*dto.WatchlistResponse, error)
	Update(ctx context.Context, userID string, id int64, req dto.CreateWatchlistRequest) (*dto.WatchlistResponse, error)
	Patch(ctx context.Context, userID string, id int64, req dto.UpdateWatchlistRequest) (*dto.WatchlistResponse, error)
	SoftDelete(ctx context.Context, userID string, id int64) error

	AddItem(ctx context.Context, userID string, id int64, req dto.AddItemRequest) (*dto.WatchlistItemResponse, error)
	RemoveItem(ctx context.Context, userID string, id int64, req dto.AddItemRequest) error
	BulkAdd(ctx context.Context, userID string, id int64, req dto.BulkAddRequest) ([]dto.WatchlistItemResponse, error)
}

type watchlistService struct {
	watchlistRepo repository.WatchlistRepository
	movieRepo     repository.MovieRepository
}

func NewWatchlistService(watchlistRepo repository.WatchlistRepository, movieRepo repository.MovieRepository) WatchlistService {
	return &watchlistService{
		watchlistRepo: watchlistRepo,
		movieRepo:     movieRepo,
	}
}

func (s *watchlistService) List(ctx context.Context, userID string, query dto.ListWatchlistsQuery) (*dto.PaginatedResponse[dto.WatchlistResponse], error) {
	lists, total, err := s.watchlistRepo.ListByUser(ctx, userID, query.Search, query.Page, query.PageSize)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.WatchlistResponse, 0, len(lists))
	for _, w := range lists {
		responses = append(responses, dto.FromWatchlistModel(w))
	}
	return dto.NewPaginatedResponse(responses, int(total), query.Page, query.PageSize), nil
}

func (s *watchlistService) Get(ctx context.Context, userID string, id int64) (*dto.WatchlistResponse, error) {
	w, err := s.resolve(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	resp := dto.FromWatchlistModel(*w)
	return &resp, nil
}

func (s *watchlistService) Create(ctx context.Context, userID string, req dto.CreateWatchlistRequest) (*dto.WatchlistResponse, error) {
	w := models.Watchlist{
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.watchlistRepo.Create(ctx, &w); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrDuplicateWatchlist
		}
		return nil, err
	}
	resp := dto.FromWatchlistModel(w)
	return &resp, nil
}

func (s *watchlistService) Update(ctx context.Context, userID string, id int64, req dto.CreateWatchlistRequest) (*dto.WatchlistResponse, error) {
	w, err := s.resolve(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	w.Name = req.Name
	w.Description = req.Description
	if err := s.watchlistRepo.Update(ctx, w); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrDuplicateWatchlist
		}
		return nil, err
	}
	resp := dto.FromWatchlistModel(*w)
	return &resp, nil
}

func (s *watchlistService) Patch(ctx context.Context, userID string, id int64, req dto.UpdateWatchlistRequest) (*dto.WatchlistResponse, error) {
	w, err := s.resolve(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	req.ApplyTo(w)
	if err := s.watchlistRepo.Update(ctx, w); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrDuplicateWatchlist
		}
		return nil, err
	}
	resp := dto.FromWatchlistModel(*w)
	return &resp, nil
}

func (s *watchlistService) SoftDelete(ctx context.Context, userID string, id int64) error {
	if err := s.watchlistRepo.SoftDeleteForUser(ctx, userID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrWatchlistNotFound
		}
		return err
	}
	return nil
}

// AddItem is idempotent: adding a movie already on the list returns the
// existing item rather than an error or a duplicate.
func (s *watchlistService) AddItem(ctx context.Context, userID string, id int64, req dto.AddItemRequest) (*dto.WatchlistItemResponse, error) {
	w, err := s.resolve(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if _, err := s.movieRepo.GetByID(ctx, req.Movie); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}

	item, err := s.watchlistRepo.EnsureItem(ctx, w.ID, req.Movie)
	if err != nil {
		return nil, err
	}
	resp := dto.FromWatchlistItemModel(*item)
	return &resp, nil
}

func (s *watchlistService) RemoveItem(ctx context.Context, userID string, id int64, req dto.AddItemRequest) error {
	w, err := s.resolve(ctx, userID, id)
	if err != nil {
		return err
	}

	if err := s.watchlistRepo.RemoveItem(ctx, w.ID, req.Movie); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrItemNotFound
		}
		return err
	}
	return nil
}

// BulkAdd validates every movie up front, then ensures all items inside
// one transaction. Duplicates within the request and movies already on
// the list both collapse into the same item set.
func (s *watchlistService) BulkAdd(ctx context.Context, userID string, id int64, req dto.BulkAddRequest) ([]dto.WatchlistItemResponse, error) {
	w, err := s.resolve(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	for _, movieID := range req.Movies {
		if _, err := s.movieRepo.GetByID(ctx, movieID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrMovieNotFound
			}
			return nil, err
		}
	}

	items, err := s.watchlistRepo.BulkEnsureItems(ctx, w.ID, req.Movies)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.WatchlistItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, dto.FromWatchlistItemModel(item))
	}
	return responses, nil
}

// resolve maps both a genuinely missing list and somebody else's list
// to the same not-found error.
func (s *watchlistService) resolve(ctx context.Context, userID string, id int64) (*models.Watchlist, error) {
	w, err := s.watchlistRepo.GetByIDForUser(ctx, userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWatchlistNotFound
		}
		return nil, err
	}
	return w, nil
}
