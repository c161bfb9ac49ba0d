package repository

import (
	"context"
	"fmt"

	"cinehub/internal/http-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MovieRepo struct {
	db *gorm.DB
}

func NewMovieRepo(db *gorm.DB) *MovieRepo {
	return &MovieRepo{db: db}
}

func (r *MovieRepo) GetAll(ctx context.Context) ([]models.Movie, error) {
	var list []models.Movie
	if err := r.db.WithContext(ctx).
		Order("release_date desc").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	return list, nil
}

func (r *MovieRepo) GetByID(ctx context.Context, id int64) (*models.Movie, error) {
	var m models.Movie
	if err := r.db.WithContext(ctx).
		Preload("Posters").
		Preload("Reviews").
		Preload("Reviews.User").
		First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MovieRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Movie{}).
		Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("check movie exists: %w", err)
	}
	return count > 0, nil
}

func (r *MovieRepo) Create(ctx context.Context, m *models.Movie) error {
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return fmt.Errorf("create movie: %w", err)
	}
	// GORM populates m.ID and m.CreatedAt
	return nil
}

// Update writes the request-mutable columns only. average_rating belongs
// to the aggregation job, and the associations preloaded by GetByID must
// not be re-upserted here.
func (r *MovieRepo) Update(ctx context.Context, m *models.Movie) error {
	if err := r.db.WithContext(ctx).Model(m).
		Select("title", "description", "release_date", "duration", "genre", "director", "box_office", "updated_at").
		Omit(clause.Associations).
		Updates(m).Error; err != nil {
		return fmt.Errorf("update movie: %w", err)
	}
	return nil
}

// Delete removes the movie; posters, reviews and favorites referencing it
// go with it via the cascade constraints.
func (r *MovieRepo) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Movie{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete movie: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
