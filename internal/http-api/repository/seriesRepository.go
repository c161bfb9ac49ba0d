package repository

import (
	"context"
	"fmt"

	"cinehub/internal/http-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SeriesRepo struct {
	db *gorm.DB
}

func NewSeriesRepo(db *gorm.DB) *SeriesRepo {
	return &SeriesRepo{db: db}
}

func (r *SeriesRepo) GetAll(ctx context.Context) ([]models.Series, error) {
	var list []models.Series
	if err := r.db.WithContext(ctx).
		Order("release_date desc").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list series: %w", err)
	}
	return list, nil
}

func (r *SeriesRepo) GetByID(ctx context.Context, id int64) (*models.Series, error) {
	var s models.Series
	if err := r.db.WithContext(ctx).
		Preload("Episodes", func(db *gorm.DB) *gorm.DB {
			return db.Order("season_number, episode_number")
		}).
		Preload("Posters").
		Preload("Reviews").
		Preload("Reviews.User").
		First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SeriesRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Series{}).
		Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("check series exists: %w", err)
	}
	return count > 0, nil
}

func (r *SeriesRepo) Create(ctx context.Context, s *models.Series) error {
	if err := r.db.WithContext(ctx).Create(s).Error; err != nil {
		return fmt.Errorf("create series: %w", err)
	}
	return nil
}

// Update writes the request-mutable columns only, leaving average_rating
// to the aggregation job and preloaded associations untouched.
func (r *SeriesRepo) Update(ctx context.Context, s *models.Series) error {
	if err := r.db.WithContext(ctx).Model(s).
		Select("title", "description", "release_date", "genre", "updated_at").
		Omit(clause.Associations).
		Updates(s).Error; err != nil {
		return fmt.Errorf("update series: %w", err)
	}
	return nil
}

// Delete removes the series; its episodes, posters, reviews and favorites
// are cascade-deleted by the store.
func (r *SeriesRepo) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Series{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete series: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
