package service

import (
	"context"
	"errors"

	"cinehub/internal/cache"
	"cinehub/internal/http-api/dto"
	"cinehub/internal/http-api/models"
	"cinehub/internal/http-api/repository"

	"gorm.io/gorm"
)

type ReviewService interface {
	ListByTitle(ctx context.Context, movieID, seriesID *int64) ([]dto.ReviewResponse, error)
	Get(ctx context.Context, id int64) (*dto.ReviewResponse, error)
	Create(ctx context.Context, caller Identity, req *dto.ReviewCreateRequest) (*dto.ReviewResponse, error)
	Update(ctx context.Context, caller Identity, id int64, req *dto.ReviewUpdateRequest) (*dto.ReviewResponse, error)
	Delete(ctx context.Context, caller Identity, id int64) error
}

type reviewService struct {
	repo repository.ReviewRepository
	titleResolver
	titles *cache.TitleCache
}

func NewReviewService(repo repository.ReviewRepository, movies *repository.MovieRepo, series *repository.SeriesRepo, titles *cache.TitleCache) ReviewService {
	return &reviewService{
		repo:          repo,
		titleResolver: titleResolver{movies: movies, series: series},
		titles:        titles,
	}
}

func (s *reviewService) ListByTitle(ctx context.Context, movieID, seriesID *int64) ([]dto.ReviewResponse, error) {
	ref, err := models.NewTitleRef(movieID, seriesID)
	if err != nil {
		return nil, err
	}
	if err := s.ensureExists(ctx, ref); err != nil {
		return nil, err
	}

	reviews, err := s.repo.ListByTitle(ctx, ref)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		out = append(out, dto.FromModelToReviewResponse(&reviews[i]))
	}
	return out, nil
}

func (s *reviewService) Get(ctx context.Context, id int64) (*dto.ReviewResponse, error) {
	review, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	resp := dto.FromModelToReviewResponse(review)
	return &resp, nil
}

func (s *reviewService) Create(ctx context.Context, caller Identity, req *dto.ReviewCreateRequest) (*dto.ReviewResponse, error) {
	ref, err := models.NewTitleRef(req.MovieID, req.SeriesID)
	if err != nil {
		return nil, err
	}
	if err := s.ensureExists(ctx, ref); err != nil {
		return nil, err
	}

	_, err = s.repo.GetByUserAndTitle(ctx, caller.UserID, ref)
	if err == nil {
		return nil, models.ErrDuplicateAssociation
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	review := req.ToModel(caller.UserID, ref)
	if err := s.repo.Create(ctx, review); err != nil {
		return nil, err
	}

	s.titles.Invalidate(ctx, ref)
	review.User = models.User{ID: caller.UserID, Email: caller.Email}
	resp := dto.FromModelToReviewResponse(review)
	return &resp, nil
}

func (s *reviewService) Update(ctx context.Context, caller Identity, id int64, req *dto.ReviewUpdateRequest) (*dto.ReviewResponse, error) {
	review, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	if !CanModify(caller, review.UserID) {
		return nil, models.ErrForbidden
	}

	review.Text = req.Text
	review.Rating = req.Rating
	if err := s.repo.Update(ctx, review); err != nil {
		return nil, err
	}

	if ref, refErr := models.NewTitleRef(review.MovieID, review.SeriesID); refErr == nil {
		s.titles.Invalidate(ctx, ref)
	}
	resp := dto.FromModelToReviewResponse(review)
	return &resp, nil
}

func (s *reviewService) Delete(ctx context.Context, caller Identity, id int64) error {
	review, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrNotFound
		}
		return err
	}
	if !CanModify(caller, review.UserID) {
		return models.ErrForbidden
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrNotFound
		}
		return err
	}

	if ref, refErr := models.NewTitleRef(review.MovieID, review.SeriesID); refErr == nil {
		s.titles.Invalidate(ctx, ref)
	}
	return nil
}
