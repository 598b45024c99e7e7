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
	ErrReviewNotFound  = errors.New("review not found")
	ErrDuplicateReview = errors.New("you already posted a review with this title for this movie")
)

type ReviewService interface {
	List(ctx context.Context, query dto.ListReviewsQuery) (*dto.PaginatedResponse[dto.ReviewResponse], error)
	Get(ctx context.Context, id int64) (*dto.ReviewResponse, error)
	Create(ctx context.Context, userID string, req dto.CreateReviewRequest) (*dto.ReviewResponse, error)
	Update(ctx context.Context, id int64, req dto.UpdateReviewRequest) (*dto.ReviewResponse, error)
	SoftDelete(ctx context.Context, id int64) error
}

type reviewService struct {
	reviewRepo repository.ReviewRepository
	movieRepo  repository.MovieRepository
}

func NewReviewService(reviewRepo repository.ReviewRepository, movieRepo repository.MovieRepository) ReviewService {
	return &reviewService{reviewRepo: reviewRepo, movieRepo: movieRepo}
}

func (s *reviewService) List(ctx context.Context, query dto.ListReviewsQuery) (*dto.PaginatedResponse[dto.ReviewResponse], error) {
	filter := repository.ReviewFilter{
		MovieID:  query.Movie,
		UserID:   query.User,
		Search:   query.Search,
		Page:     query.Page,
		PageSize: query.PageSize,
	}

	reviews, total, err := s.reviewRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		responses = append(responses, dto.FromReviewModel(r))
	}
	return dto.NewPaginatedResponse(responses, int(total), query.Page, query.PageSize), nil
}

func (s *reviewService) Get(ctx context.Context, id int64) (*dto.ReviewResponse, error) {
	review, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	resp := dto.FromReviewModel(*review)
	return &resp, nil
}

// Create stores a review authored by the acting user. Any user field in
// the payload is ignored; ownership comes from the token alone.
func (s *reviewService) Create(ctx context.Context, userID string, req dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	if _, err := s.movieRepo.GetByID(ctx, req.Movie); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}

	review := models.Review{
		UserID:  userID,
		MovieID: req.Movie,
		Title:   req.Title,
		Body:    req.Body,
	}
	if err := s.reviewRepo.Create(ctx, &review); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrDuplicateReview
		}
		return nil, err
	}

	resp := dto.FromReviewModel(review)
	return &resp, nil
}

func (s *reviewService) Update(ctx context.Context, id int64, req dto.UpdateReviewRequest) (*dto.ReviewResponse, error) {
	review, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}

	req.ApplyTo(review)
	if err := s.reviewRepo.Update(ctx, review); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrDuplicateReview
		}
		return nil, err
	}

	resp := dto.FromReviewModel(*review)
	return &resp, nil
}

func (s *reviewService) SoftDelete(ctx context.Context, id int64) error {
	if err := s.reviewRepo.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReviewNotFound
		}
		return err
	}
	return nil
}
