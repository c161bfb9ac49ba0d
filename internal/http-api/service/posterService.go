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

type PosterService interface {
	ListByTitle(ctx context.Context, movieID, seriesID *int64) ([]dto.PosterResponse, error)
	Get(ctx context.Context, id int64) (*dto.PosterResponse, error)
	Create(ctx context.Context, req *dto.PosterCreateRequest) (*dto.PosterResponse, error)
	Delete(ctx context.Context, id int64) error
}

type posterService struct {
	repo repository.PosterRepository
	titleResolver
	titles *cache.TitleCache
}

func NewPosterService(repo repository.PosterRepository, movies *repository.MovieRepo, series *repository.SeriesRepo, titles *cache.TitleCache) PosterService {
	return &posterService{
		repo:          repo,
		titleResolver: titleResolver{movies: movies, series: series},
		titles:        titles,
	}
}

func (s *posterService) ListByTitle(ctx context.Context, movieID, seriesID *int64) ([]dto.PosterResponse, error) {
	ref, err := models.NewTitleRef(movieID, seriesID)
	if err != nil {
		return nil, err
	}
	if err := s.ensureExists(ctx, ref); err != nil {
		return nil, err
	}

	posters, err := s.repo.ListByTitle(ctx, ref)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PosterResponse, 0, len(posters))
	for i := range posters {
		out = append(out, dto.FromModelToPosterResponse(&posters[i]))
	}
	return out, nil
}

func (s *posterService) Get(ctx context.Context, id int64) (*dto.PosterResponse, error) {
	poster, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	resp := dto.FromModelToPosterResponse(poster)
	return &resp, nil
}

func (s *posterService) Create(ctx context.Context, req *dto.PosterCreateRequest) (*dto.PosterResponse, error) {
	ref, err := models.NewTitleRef(req.MovieID, req.SeriesID)
	if err != nil {
		return nil, err
	}
	if err := s.ensureExists(ctx, ref); err != nil {
		return nil, err
	}

	poster := req.ToModel(ref)
	if err := s.repo.Create(ctx, poster); err != nil {
		return nil, err
	}

	s.titles.Invalidate(ctx, ref)
	resp := dto.FromModelToPosterResponse(poster)
	return &resp, nil
}

func (s *posterService) Delete(ctx context.Context, id int64) error {
	poster, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrNotFound
		}
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrNotFound
		}
		return err
	}

	ref, err := models.NewTitleRef(poster.MovieID, poster.SeriesID)
	if err == nil {
		s.titles.Invalidate(ctx, ref)
	}
	return nil
}
