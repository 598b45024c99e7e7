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
	ErrPlatformNotFound  = errors.New("platform not found")
	ErrDuplicatePlatform = errors.New("a platform with this name already exists")
)

type PlatformService interface {
	List(ctx context.Context, query dto.ListCatalogQuery) (*dto.PaginatedResponse[dto.PlatformResponse], error)
	Get(ctx context.Context, id int64) (*dto.PlatformResponse, error)
	Create(ctx context.Context, req dto.CreatePlatformRequest) (*dto.PlatformResponse, error)
	Update(ctx context.Context, id int64, req dto.CreatePlatformRequest) (*dto.PlatformResponse, error)
	Patch(ctx context.Context, id int64, req dto.UpdatePlatformRequest) (*dto.PlatformResponse, error)
	SoftDelete(ctx context.Context, id int64) error
}

type platformService struct {
	platformRepo repository.PlatformRepository
}

func NewPlatformService(platformRepo repository.PlatformRepository) PlatformService {
	return &platformService{platformRepo: platformRepo}
}

func (s *platformService) List(ctx context.Context, query dto.ListCatalogQuery) (*dto.PaginatedResponse[dto.PlatformResponse], error) {
	filter := repository.CatalogFilter{
		Search:   query.Search,
		Name:     query.Name,
		IsActive: query.IsActive,
		Page:     query.Page,
		PageSize: query.PageSize,
	}

	platforms, total, err := s.platformRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.PlatformResponse, 0, len(platforms))
	for _, p := range platforms {
		responses = append(responses, dto.FromPlatformModel(p))
	}
	return dto.NewPaginatedResponse(responses, int(total), query.Page, query.PageSize), nil
}

func (s *platformService) Get(ctx context.Context, id int64) (*dto.PlatformResponse, error) {
	platform, err := s.platformRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlatformNotFound
		}
		return nil, err
	}
	resp := dto.FromPlatformModel(*platform)
	return &resp, nil
}

func (s *platformService) Create(ctx context.Context, req dto.CreatePlatformRequest) (*dto.PlatformResponse, error) {
	platform := models.Platform{
		Name:        req.Name,
		Website:     req.Website,
		Description: req.Description,
	}
	if err := s.platformRepo.Create(ctx, &platform); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrDuplicatePlatform
		}
		return nil, err
	}
	resp := dto.FromPlatformModel(platform)
	return &resp, nil
}

func (s *platformService) Update(ctx context.Context, id int64, req dto.CreatePlatformRequest) (*dto.PlatformResponse, error) {
	platform, err := s.platformRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlatformNotFound
		}
		return nil, err
	}

	platform.Name = req.Name
	platform.Website = req.Website
	platform.Description = req.Description
	if err := s.platformRepo.Update(ctx, platform); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrDuplicatePlatform
		}
		return nil, err
	}
	resp := dto.FromPlatformModel(*platform)
	return &resp, nil
}

func (s *platformService) Patch(ctx context.Context, id int64, req dto.UpdatePlatformRequest) (*dto.PlatformResponse, error) {
	platform, err := s.platformRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlatformNotFound
		}
		return nil, err
	}

	req.ApplyTo(platform)
	if err := s.platformRepo.Update(ctx, platform); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrDuplicatePlatform
		}
		return nil, err
	}
	resp := dto.FromPlatformModel(*platform)
	return &resp, nil
}

func (s *platformService) SoftDelete(ctx context.Context, id int64) error {
	if err := s.platformRepo.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPlatformNotFound
		}
		return err
	}
	return nil
}
