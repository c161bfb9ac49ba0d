package repository

import (
	"context"
	"fmt"

	"cinehub/internal/http-api/models"

	"gorm.io/gorm"
)

// RatingRepository is the store surface of the rating aggregation job. InTx
// wraps a whole aggregation run in one transaction so a failure partway
// through rolls the batch back instead of leaving partial averages behind.
type RatingRepository interface {
	InTx(ctx context.Context, fn func(tx RatingRepository) error) error
	ListMovieIDs(ctx context.Context) ([]int64, error)
	ListSeriesIDs(ctx context.Context) ([]int64, error)
	RatingsForTitle(ctx context.Context, ref models.TitleRef) ([]int, error)
	SetAverageRating(ctx context.Context, ref models.TitleRef, avg float64) error
}

type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

func (r *ratingRepository) InTx(ctx context.Context, fn func(tx RatingRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&ratingRepository{db: tx})
	})
}

func (r *ratingRepository) ListMovieIDs(ctx context.Context) ([]int64, error) {
	var ids []int64
	if err := r.db.WithContext(ctx).Model(&models.Movie{}).
		Order("id").Pluck("id", &ids).Error; err != nil {
		return nil, fmt.Errorf("list movie ids: %w", err)
	}
	return ids, nil
}

func (r *ratingRepository) ListSeriesIDs(ctx context.Context) ([]int64, error) {
	var ids []int64
	if err := r.db.WithContext(ctx).Model(&models.Series{}).
		Order("id").Pluck("id", &ids).Error; err != nil {
		return nil, fmt.Errorf("list series ids: %w", err)
	}
	return ids, nil
}

func (r *ratingRepository) RatingsForTitle(ctx context.Context, ref models.TitleRef) ([]int, error) {
	var ratings []int
	if err := r.db.WithContext(ctx).Model(&models.Review{}).
		Where(titleColumn(ref)+" = ?", ref.ID).
		Pluck("rating", &ratings).Error; err != nil {
		return nil, fmt.Errorf("load ratings: %w", err)
	}
	return ratings, nil
}

func (r *ratingRepository) SetAverageRating(ctx context.Context, ref models.TitleRef, avg float64) error {
	var model interface{} = &models.Movie{}
	if ref.Kind == models.TitleSeries {
		model = &models.Series{}
	}
	if err := r.db.WithContext(ctx).Model(model).
		Where("id = ?", ref.ID).
		UpdateColumn("average_rating", avg).Error; err != nil {
		return fmt.Errorf("set average rating: %w", err)
	}
	return nil
}
