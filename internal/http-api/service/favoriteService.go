package service

import (
	"context"
	"errors"

	"cinehub/internal/http-api/dto"
	"cinehub/internal/http-api/models"
	"cinehub/internal/http-api/repository"

	"gorm.io/gorm"
)

type FavoriteService interface {
	ListByUser(ctx context.Context, userID int64) ([]dto.FavoriteResponse, error)
	Create(ctx context.Context, caller Identity, req *dto.FavoriteCreateRequest) (*dto.FavoriteResponse, error)
	Delete(ctx context.Context, caller Identity, id int64) error
}

type favoriteService struct {
	repo repository.FavoriteRepository
	titleResolver
}

func NewFavoriteService(repo repository.FavoriteRepository, movies *repository.MovieRepo, series *repository.SeriesRepo) FavoriteService {
	return &favoriteService{
		repo:          repo,
		titleResolver: titleResolver{movies: movies, series: series},
	}
}

func (s *favoriteService) ListByUser(ctx context.Context, userID int64) ([]dto.FavoriteResponse, error) {
	favorites, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.FavoriteResponse, 0, len(favorites))
	for i := range favorites {
		out = append(out, dto.FromModelToFavoriteResponse(&favorites[i]))
	}
	return out, nil
}

func (s *favoriteService) Create(ctx context.Context, caller Identity, req *dto.FavoriteCreateRequest) (*dto.FavoriteResponse, error) {
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

	fav := req.ToModel(caller.UserID, ref)
	if err := s.repo.Create(ctx, fav); err != nil {
		return nil, err
	}

	resp := dto.FromModelToFavoriteResponse(fav)
	return &resp, nil
}

func (s *favoriteService) Delete(ctx context.Context, caller Identity, id int64) error {
	fav, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrNotFound
		}
		return err
	}
	if !CanModify(caller, fav.UserID) {
		return models.ErrForbidden
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrNotFound
		}
		return err
	}
	return nil
}
