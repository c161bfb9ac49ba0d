package repository

import (
	"context"
	"fmt"

	"cinehub/internal/http-api/models"

	"gorm.io/gorm"
)

type EpisodeRepository interface {
	ListBySeries(ctx context.Context, seriesID int64) ([]models.Episode, error)
	GetByID(ctx context.Context, id int64) (*models.Episode, error)
	Create(ctx context.Context, e *models.Episode) error
	Update(ctx context.Context, e *models.Episode) error
	Delete(ctx context.Context, id int64) error
	NumberTaken(ctx context.Context, seriesID int64, season, episode int, excludeID int64) (bool, error)
}

type episodeRepository struct {
	db *gorm.DB
}

func NewEpisodeRepository(db *gorm.DB) EpisodeRepository {
	return &episodeRepository{db: db}
}

func (r *episodeRepository) ListBySeries(ctx context.Context, seriesID int64) ([]models.Episode, error) {
	var list []models.Episode
	if err := r.db.WithContext(ctx).
		Where("series_id = ?", seriesID).
		Order("season_number, episode_number").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list episodes: %w", err)
	}
	return list, nil
}

func (r *episodeRepository) GetByID(ctx context.Context, id int64) (*models.Episode, error) {
	var e models.Episode
	if err := r.db.WithContext(ctx).First(&e, id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *episodeRepository) Create(ctx context.Context, e *models.Episode) error {
	if err := r.db.WithContext(ctx).Create(e).Error; err != nil {
		// a concurrent writer may slip past the application check; the
		// unique index is the authority
		if IsUniqueViolation(err) {
			return models.ErrDuplicateEpisodeNumber
		}
		return fmt.Errorf("create episode: %w", err)
	}
	return nil
}

// Update writes the request-mutable columns only; series_id is immutable.
func (r *episodeRepository) Update(ctx context.Context, e *models.Episode) error {
	if err := r.db.WithContext(ctx).Model(e).
		Select("season_number", "episode_number", "title", "description", "duration", "updated_at").
		Updates(e).Error; err != nil {
		if IsUniqueViolation(err) {
			return models.ErrDuplicateEpisodeNumber
		}
		return fmt.Errorf("update episode: %w", err)
	}
	return nil
}

func (r *episodeRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Episode{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete episode: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// NumberTaken checks whether another episode of the series already carries
// the (season, episode) pair. excludeID skips the row being updated.
func (r *episodeRepository) NumberTaken(ctx context.Context, seriesID int64, season, episode int, excludeID int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Episode{}).
		Where("series_id = ? AND season_number = ? AND episode_number = ? AND id <> ?",
			seriesID, season, episode, excludeID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("check episode number: %w", err)
	}
	return count > 0, nil
}
