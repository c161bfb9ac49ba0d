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

type EpisodeService interface {
	ListBySeries(ctx context.Context, seriesID int64) ([]dto.EpisodeResponse, error)
	Get(ctx context.Context, id int64) (*dto.EpisodeResponse, error)
	Create(ctx context.Context, seriesID int64, req *dto.EpisodeCreateRequest) (*dto.EpisodeResponse, error)
	Update(ctx context.Context, id int64, req *dto.EpisodeUpdateRequest) (*dto.EpisodeResponse, error)
	Delete(ctx context.Context, id int64) error
}

type episodeService struct {
	repo   repository.EpisodeRepository
	series *repository.SeriesRepo
	titles *cache.TitleCache
}

func NewEpisodeService(repo repository.EpisodeRepository, series *repository.SeriesRepo, titles *cache.TitleCache) EpisodeService {
	return &episodeService{repo: repo, series: series, titles: titles}
}

func (s *episodeService) ListBySeries(ctx context.Context, seriesID int64) ([]dto.EpisodeResponse, error) {
	ok, err := s.series.Exists(ctx, seriesID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, models.ErrNotFound
	}

	episodes, err := s.repo.ListBySeries(ctx, seriesID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EpisodeResponse, 0, len(episodes))
	for i := range episodes {
		out = append(out, dto.FromModelToEpisodeResponse(&episodes[i]))
	}
	return out, nil
}

func (s *episodeService) Get(ctx context.Context, id int64) (*dto.EpisodeResponse, error) {
	episode, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	resp := dto.FromModelToEpisodeResponse(episode)
	return &resp, nil
}

func (s *episodeService) Create(ctx context.Context, seriesID int64, req *dto.EpisodeCreateRequest) (*dto.EpisodeResponse, error) {
	ok, err := s.series.Exists(ctx, seriesID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, models.ErrTitleNotFound
	}

	taken, err := s.repo.NumberTaken(ctx, seriesID, req.SeasonNumber, req.EpisodeNumber, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, models.ErrDuplicateEpisodeNumber
	}

	episode := req.ToModel(seriesID)
	if err := s.repo.Create(ctx, episode); err != nil {
		return nil, err
	}

	s.titles.Invalidate(ctx, models.SeriesRef(seriesID))
	resp := dto.FromModelToEpisodeResponse(episode)
	return &resp, nil
}

func (s *episodeService) Update(ctx context.Context, id int64, req *dto.EpisodeUpdateRequest) (*dto.EpisodeResponse, error) {
	episode, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}

	// the episode itself is excluded, so renumbering to its own slot is fine
	taken, err := s.repo.NumberTaken(ctx, episode.SeriesID, req.SeasonNumber, req.EpisodeNumber, episode.ID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, models.ErrDuplicateEpisodeNumber
	}

	req.ApplyTo(episode)
	if err := s.repo.Update(ctx, episode); err != nil {
		return nil, err
	}

	s.titles.Invalidate(ctx, models.SeriesRef(episode.SeriesID))
	resp := dto.FromModelToEpisodeResponse(episode)
	return &resp, nil
}

func (s *episodeService) Delete(ctx context.Context, id int64) error {
	episode, err := s.repo.GetByID(ctx, id)
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

	s.titles.Invalidate(ctx, models.SeriesRef(episode.SeriesID))
	return nil
}
