package repository

import (
	"context"
	"fmt"

	"cinehub/internal/http-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReviewRepository interface {
	ListByTitle(ctx context.Context, ref models.TitleRef) ([]models.Review, error)
	GetByID(ctx context.Context, id int64) (*models.Review, error)
	GetByUserAndTitle(ctx context.Context, userID int64, ref models.TitleRef) (*models.Review, error)
	Create(ctx context.Context, review *models.Review) error
	Update(ctx context.Context, review *models.Review) error
	Delete(ctx context.Context, id int64) error
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) ListByTitle(ctx context.Context, ref models.TitleRef) ([]models.Review, error) {
	var list []models.Review
	if err := r.db.WithContext(ctx).
		Where(titleColumn(ref)+" = ?", ref.ID).
		Preload("User").
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return list, nil
}

func (r *reviewRepository) GetByID(ctx context.Context, id int64) (*models.Review, error) {
	var review models.Review
	if err := r.db.WithContext(ctx).Preload("User").First(&review, id).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

// GetByUserAndTitle looks the review up on the FK branch the reference
// resolves to; exactly one of the two columns is ever populated.
func (r *reviewRepository) GetByUserAndTitle(ctx context.Context, userID int64, ref models.TitleRef) (*models.Review, error) {
	var review models.Review
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND "+titleColumn(ref)+" = ?", userID, ref.ID).
		First(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) Create(ctx context.Context, review *models.Review) error {
	if err := r.db.WithContext(ctx).Create(review).Error; err != nil {
		// two requests can race past the service-level duplicate check;
		// the partial unique indexes decide, and the loser gets the same
		// error kind the check would have produced
		if IsUniqueViolation(err) {
			return models.ErrDuplicateAssociation
		}
		if IsCheckViolation(err) {
			return models.ErrInvalidAssociation
		}
		return fmt.Errorf("create review: %w", err)
	}
	return nil
}

// Update writes text and rating only; the author and title reference are
// immutable and the preloaded User must not be re-upserted.
func (r *reviewRepository) Update(ctx context.Context, review *models.Review) error {
	if err := r.db.WithContext(ctx).Model(review).
		Select("text", "rating", "updated_at").
		Omit(clause.Associations).
		Updates(review).Error; err != nil {
		return fmt.Errorf("update review: %w", err)
	}
	return nil
}

func (r *reviewRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Review{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete review: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
