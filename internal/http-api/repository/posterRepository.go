package repository

import (
	"context"
	"fmt"

	"cinehub/internal/http-api/models"

	"gorm.io/gorm"
)

type PosterRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Poster, error)
	ListByTitle(ctx context.Context, ref models.TitleRef) ([]models.Poster, error)
	Create(ctx context.Context, p *models.Poster) error
	Delete(ctx context.Context, id int64) error
}

type posterRepository struct {
	db *gorm.DB
}

func NewPosterRepository(db *gorm.DB) PosterRepository {
	return &posterRepository{db: db}
}

func (r *posterRepository) GetByID(ctx context.Context, id int64) (*models.Poster, error) {
	var p models.Poster
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *posterRepository) ListByTitle(ctx context.Context, ref models.TitleRef) ([]models.Poster, error) {
	var list []models.Poster
	if err := r.db.WithContext(ctx).
		Where(titleColumn(ref)+" = ?", ref.ID).
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list posters: %w", err)
	}
	return list, nil
}

func (r *posterRepository) Create(ctx context.Context, p *models.Poster) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		if IsCheckViolation(err) {
			return models.ErrInvalidAssociation
		}
		return fmt.Errorf("create poster: %w", err)
	}
	return nil
}

func (r *posterRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Poster{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete poster: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// titleColumn maps a title reference onto the nullable FK column holding it.
func titleColumn(ref models.TitleRef) string {
	if ref.Kind == models.TitleSeries {
		return "series_id"
	}
	return "movie_id"
}
