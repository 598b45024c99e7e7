package service

import (
	"context"
	"errors"

	"moviehub/internal/dto"
	"moviehub/internal/repository"

	"gorm.io/gorm"
)

var (
	ErrMovieNotFound  = errors.New("movie not found")
	ErrDuplicateMovie = errors.New("a movie with this title and release date already exists")
)

type MovieService interface {
	List(ctx context.Context, query dto.ListMoviesQuery) (*dto.PaginatedResponse[dto.MovieResponse], error)
	Get(ctx context.Context, id int64) (*dto.MovieDetailResponse, error)
	Create(ctx context.Context, req dto.CreateMovieRequest) (*dto.MovieDetailResponse, error)
	Update(ctx context.Context, id int64, req dto.CreateMovieRequest) (*dto.MovieDetailResponse, error)
	Patch(ctx context.Context, id int64, req dto.UpdateMovieRequest) (*dto.MovieDetailResponse, error)
	SoftDelete(ctx context.Context, id int64) error
}

type movieService struct {
	movieRepo repository.MovieRepository
}

func NewMovieService(movieRepo repository.MovieRepository) MovieService {
	return &movieService{movieRepo: movieRepo}
}

func (s *movieService) List(ctx context.Context, query dto.ListMoviesQuery) (*dto.PaginatedResponse[dto.MovieResponse], error) {
	release, err := dto.ParseDate(query.ReleaseDate)
	if err != nil {
		return nil, err
	}

	filter := repository.MovieFilter{
		Search:      query.Search,
		GenreID:     query.Genre,
		PlatformID:  query.Platform,
		ReleaseDate: release,
		IsActive:    query.IsActive,
		Ordering:    query.Ordering,
		Page:        query.Page,
		PageSize:    query.PageSize,
	}

	movies, total, err := s.movieRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.MovieResponse, 0, len(movies))
	for _, m := range movies {
		responses = append(responses, dto.FromMovieModel(m))
	}
	return dto.NewPaginatedResponse(responses, int(total), query.Page, query.PageSize), nil
}

func (s *movieService) Get(ctx context.Context, id int64) (*dto.MovieDetailResponse, error) {
	movie, err := s.movieRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}
	resp := dto.FromMovieModelDetail(*movie)
	return &resp, nil
}

func (s *movieService) Create(ctx context.Context, req dto.CreateMovieRequest) (*dto.MovieDetailResponse, error) {
	movie, err := req.ToModel()
	if err != nil {
		return nil, err
	}

	movie.Genres, err = s.movieRepo.GenresByIDs(ctx, req.Genres)
	if err != nil {
		return nil, err
	}
	movie.Platforms, err = s.movieRepo.PlatformsByIDs(ctx, req.Platforms)
	if err != nil {
		return nil, err
	}

	if err := s.movieRepo.Create(ctx, &movie); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrDuplicateMovie
		}
		return nil, err
	}

	return s.Get(ctx, movie.ID)
}

func (s *movieService) Update(ctx context.Context, id int64, req dto.CreateMovieRequest) (*dto.MovieDetailResponse, error) {
	movie, err := s.movieRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}

	release, err := dto.ParseDate(req.ReleaseDate)
	if err != nil {
		return nil, err
	}
	movie.Title = req.Title
	movie.Description = req.Description
	movie.ReleaseDate = release
	movie.Duration = req.Duration
	movie.PosterURL = req.PosterURL

	if err := s.movieRepo.Update(ctx, movie); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrDuplicateMovie
		}
		return nil, err
	}

	// PUT replaces the association sets wholesale
	genres, err := s.movieRepo.GenresByIDs(ctx, req.Genres)
	if err != nil {
		return nil, err
	}
	if err := s.movieRepo.ReplaceGenres(ctx, movie, genres); err != nil {
		return nil, err
	}
	platforms, err := s.movieRepo.PlatformsByIDs(ctx, req.Platforms)
	if err != nil {
		return nil, err
	}
	if err := s.movieRepo.ReplacePlatforms(ctx, movie, platforms); err != nil {
		return nil, err
	}

	return s.Get(ctx, id)
}

func (s *movieService) Patch(ctx context.Context, id int64, req dto.UpdateMovieRequest) (*dto.MovieDetailResponse, error) {
	movie, err := s.movieRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}

	if err := req.ApplyTo(movie); err != nil {
		return nil, err
	}

	if err := s.movieRepo.Update(ctx, movie); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrDuplicateMovie
		}
		return nil, err
	}

	if req.Genres != nil {
		genres, err := s.movieRepo.GenresByIDs(ctx, *req.Genres)
		if err != nil {
			return nil, err
		}
		if err := s.movieRepo.ReplaceGenres(ctx, movie, genres); err != nil {
			return nil, err
		}
	}
	if req.Platforms != nil {
		platforms, err := s.movieRepo.PlatformsByIDs(ctx, *req.Platforms)
		if err != nil {
			return nil, err
		}
		if err := s.movieRepo.ReplacePlatforms(ctx, movie, platforms); err != nil {
			return nil, err
		}
	}

	return s.Get(ctx, id)
}

func (s *movieService) SoftDelete(ctx context.Context, id int64) error {
	if err := s.movieRepo.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMovieNotFound
		}
		return err
	}
	return nil
}
