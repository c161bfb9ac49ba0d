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

type SeriesService interface {
	List(ctx context.Context) ([]dto.SeriesListResponse, error)
	Get(ctx context.Context, id int64) (*dto.SeriesDetailsResponse, error)
	Create(ctx context.Context, req *dto.SeriesCreateRequest) (*dto.SeriesDetailsResponse, error)
	Update(ctx context.Context, id int64, req *dto.SeriesUpdateRequest) (*dto.SeriesDetailsResponse, error)
	Delete(ctx context.Context, id int64) error
}

type seriesService struct {
	repo   *repository.SeriesRepo
	titles *cache.TitleCache
}

func NewSeriesService(repo *repository.SeriesRepo, titles *cache.TitleCache) SeriesService {
	return &seriesService{repo: repo, titles: titles}
}

func (s *seriesService) List(ctx context.Context) ([]dto.SeriesListResponse, error) {
	series, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SeriesListResponse, 0, len(series))
	for i := range series {
		out = append(out, dto.FromModelToSeriesListResponse(&series[i]))
	}
	return out, nil
}

func (s *seriesService) Get(ctx context.Context, id int64) (*dto.SeriesDetailsResponse, error) {
	ref := models.SeriesRef(id)

	var cached dto.SeriesDetailsResponse
	if s.titles.Get(ctx, ref, &cached) {
		return &cached, nil
	}

	series, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}

	resp := dto.FromModelToSeriesDetailsResponse(series)
	s.titles.Set(ctx, ref, resp)
	return resp, nil
}

func (s *seriesService) Create(ctx context.Context, req *dto.SeriesCreateRequest) (*dto.SeriesDetailsResponse, error) {
	series := req.ToModel()
	if err := s.repo.Create(ctx, series); err != nil {
		return nil, err
	}
	return dto.FromModelToSeriesDetailsResponse(series), nil
}

func (s *seriesService) Update(ctx context.Context, id int64, req *dto.SeriesUpdateRequest) (*dto.SeriesDetailsResponse, error) {
	series, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}

	req.ApplyTo(series)
	if err := s.repo.Update(ctx, series); err != nil {
		return nil, err
	}

	s.titles.Invalidate(ctx, models.SeriesRef(id))
	return dto.FromModelToSeriesDetailsResponse(series), nil
}

func (s *seriesService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrNotFound
		}
		return err
	}
	s.titles.Invalidate(ctx, models.SeriesRef(id))
	return nil
}
