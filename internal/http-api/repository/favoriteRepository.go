package repository

import (
	"context"
	"fmt"

	"cinehub/internal/http-api/models"

	"gorm.io/gorm"
)

type FavoriteRepository interface {
	ListByUser(ctx context.Context, userID int64) ([]models.Favorite, error)
	GetByID(ctx context.Context, id int64) (*models.Favorite, error)
	GetByUserAndTitle(ctx context.Context, userID int64, ref models.TitleRef) (*models.Favorite, error)
	Create(ctx context.Context, fav *models.Favorite) error
	Delete(ctx context.Context, id int64) error
}

type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) ListByUser(ctx context.Context, userID int64) ([]models.Favorite, error) {
	var list []models.Favorite
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Movie").
		Preload("Series").
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	return list, nil
}

func (r *favoriteRepository) GetByID(ctx context.Context, id int64) (*models.Favorite, error) {
	var fav models.Favorite
	if err := r.db.WithContext(ctx).First(&fav, id).Error; err != nil {
		return nil, err
	}
	return &fav, nil
}

func (r *favoriteRepository) GetByUserAndTitle(ctx context.Context, userID int64, ref models.TitleRef) (*models.Favorite, error) {
	var fav models.Favorite
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND "+titleColumn(ref)+" = ?", userID, ref.ID).
		First(&fav).Error; err != nil {
		return nil, err
	}
	return &fav, nil
}

func (r *favoriteRepository) Create(ctx context.Context, fav *models.Favorite) error {
	if err := r.db.WithContext(ctx).Create(fav).Error; err != nil {
		if IsUniqueViolation(err) {
			return models.ErrDuplicateAssociation
		}
		if IsCheckViolation(err) {
			return models.ErrInvalidAssociation
		}
		return fmt.Errorf("create favorite: %w", err)
	}
	return nil
}

func (r *favoriteRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Favorite{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete favorite: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
