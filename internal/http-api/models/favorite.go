package models

import "time"

// Favorite has the same ownership shape as Review without text or rating:
// one per user per title, attached to exactly one of movie/series.
type Favorite struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    int64     `json:"user_id" gorm:"not null;index;uniqueIndex:uq_favorites_user_movie,where:movie_id IS NOT NULL;uniqueIndex:uq_favorites_user_series,where:series_id IS NOT NULL"`
	MovieID   *int64    `json:"movie_id,omitempty" gorm:"uniqueIndex:uq_favorites_user_movie,where:movie_id IS NOT NULL;check:chk_favorites_title_xor,(movie_id IS NOT NULL AND series_id IS NULL) OR (movie_id IS NULL AND series_id IS NOT NULL)"`
	SeriesID  *int64    `json:"series_id,omitempty" gorm:"uniqueIndex:uq_favorites_user_series,where:series_id IS NOT NULL"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	// Associations
	User   User    `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Movie  *Movie  `json:"movie,omitempty" gorm:"foreignKey:MovieID"`
	Series *Series `json:"series,omitempty" gorm:"foreignKey:SeriesID"`
}

func (Favorite) TableName() string {
	return "favorites"
}
