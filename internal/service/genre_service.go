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
	ErrGenreNotFound  = errors.New("genre not found")
	ErrDuplicateGenre = errors.New("a genre with this name already exists")
)

type GenreService interface {
	List(ctx context.Context, query dto.ListCatalogQuery) (*dto.PaginatedResponse[dto.GenreResponse], error)
	Get(ctx context.Context, id int64) (*dto.GenreResponse, error)
	Create(ctx context.Context, req dto.CreateGenreRequest) (*dto.GenreResponse, error)
	Update(ctx context.Context, id int64, req dto.CreateGenreRequest) (*dto.GenreResponse, error)
	Patch(ctx context.Context, id int64, req dto.UpdateGenreRequest) (*dto.GenreResponse, error)
	SoftDelete(ctx context.Context, id int64) error
}

type genreService struct {
	genreRepo repository.GenreRepository
}

func NewGenreService(genreRepo repository.GenreRepository) GenreService {
	return &genreService{genreRepo: genreRepo}
}

func (s *genreService) List(ctx context.Context, query dto.ListCatalogQuery) (*dto.PaginatedResponse[dto.GenreResponse], error) {
	filter := repository.CatalogFilter{
		Search:   query.Search,
		Name:     query.Name,
		IsActive: query.IsActive,
		Page:     query.Page,
		PageSize: query.PageSize,
	}

	genres, total, err := s.genreRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.GenreResponse, 0, len(genres))
	for _, g := range genres {
		responses = append(responses, dto.FromGenreModel(g))
	}
	return dto.NewPaginatedResponse(responses, int(total), query.Page, query.PageSize), nil
}

func (s *genreService) Get(ctx context.Context, id int64) (*dto.GenreResponse, error) {
	genre, err := s.genreRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGenreNotFound
		}
		return nil, err
	}
	resp := dto.FromGenreModel(*genre)
	return &resp, nil
}

func (s *genreService) Create(ctx context.Context, req dto.CreateGenreRequest) (*dto.GenreResponse, error) {
	genre := models.Genre{Name: req.Name}
	if err := s.genreRepo.Create(ctx, &genre); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrDuplicateGenre
		}
		return nil, err
	}
	resp := dto.FromGenreModel(genre)
	return &resp, nil
}

func (s *genreService) Update(ctx context.Context, id int64, req dto.CreateGenreRequest) (*dto.GenreResponse, error) {
	genre, err := s.genreRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGenreNotFound
		}
		return nil, err
	}

	genre.Name = req.Name
	if err := s.genreRepo.Update(ctx, genre); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrDuplicateGenre
		}
		return nil, err
	}
	resp := dto.FromGenreModel(*genre)
	return &resp, nil
}

func (s *genreService) Patch(ctx context.Context, id int64, req dto.UpdateGenreRequest) (*dto.GenreResponse, error) {
	genre, err := s.genreRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGenreNotFound
		}
		return nil, err
	}

	req.ApplyTo(genre)
	if err := s.genreRepo.Update(ctx, genre); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrDuplicateGenre
		}
		return nil, err
	}
	resp := dto.FromGenreModel(*genre)
	return &resp, nil
}

func (s *genreService) SoftDelete(ctx context.Context, id int64) error {
	if err := s.genreRepo.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrGenreNotFound
		}
		return err
	}
	return nil
}
