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

type MovieService interface {
	List(ctx context.Context) ([]dto.MovieListResponse, error)
	Get(ctx context.Context, id int64) (*dto.MovieDetailsResponse, error)
	Create(ctx context.Context, req *dto.MovieCreateRequest) (*dto.MovieDetailsResponse, error)
	Update(ctx context.Context, id int64, req *dto.MovieUpdateRequest) (*dto.MovieDetailsResponse, error)
	Delete(ctx context.Context, id int64) error
}

type movieService struct {
	repo   *repository.MovieRepo
	titles *cache.TitleCache
}

func NewMovieService(repo *repository.MovieRepo, titles *cache.TitleCache) MovieService {
	return &movieService{repo: repo, titles: titles}
}

func (s *movieService) List(ctx context.Context) ([]dto.MovieListResponse, error) {
	movies, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovieListResponse, 0, len(movies))
	for i := range movies {
		out = append(out, dto.FromModelToMovieListResponse(&movies[i]))
	}
	return out, nil
}

func (s *movieService) Get(ctx context.Context, id int64) (*dto.MovieDetailsResponse, error) {
	ref := models.MovieRef(id)

	var cached dto.MovieDetailsResponse
	if s.titles.Get(ctx, ref, &cached) {
		return &cached, nil
	}

	movie, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}

	resp := dto.FromModelToMovieDetailsResponse(movie)
	s.titles.Set(ctx, ref, resp)
	return resp, nil
}

func (s *movieService) Create(ctx context.Context, req *dto.MovieCreateRequest) (*dto.MovieDetailsResponse, error) {
	movie := req.ToModel()
	if err := s.repo.Create(ctx, movie); err != nil {
		return nil, err
	}
	return dto.FromModelToMovieDetailsResponse(movie), nil
}

func (s *movieService) Update(ctx context.Context, id int64, req *dto.MovieUpdateRequest) (*dto.MovieDetailsResponse, error) {
	movie, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}

	req.ApplyTo(movie)
	if err := s.repo.Update(ctx, movie); err != nil {
		return nil, err
	}

	s.titles.Invalidate(ctx, models.MovieRef(id))
	return dto.FromModelToMovieDetailsResponse(movie), nil
}

func (s *movieService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrNotFound
		}
		return err
	}
	s.titles.Invalidate(ctx, models.MovieRef(id))
	return nil
}
