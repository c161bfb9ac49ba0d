package models

import "time"

// Review is authored by one user about exactly one title. Two partial
// unique indexes give "one review per user per title" under Postgres NULL
// semantics; the check constraint is the authoritative XOR guard.
type Review struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    int64     `json:"user_id" gorm:"not null;index;uniqueIndex:uq_reviews_user_movie,where:movie_id IS NOT NULL;uniqueIndex:uq_reviews_user_series,where:series_id IS NOT NULL"`
	MovieID   *int64    `json:"movie_id,omitempty" gorm:"uniqueIndex:uq_reviews_user_movie,where:movie_id IS NOT NULL;check:chk_reviews_title_xor,(movie_id IS NOT NULL AND series_id IS NULL) OR (movie_id IS NULL AND series_id IS NOT NULL)"`
	SeriesID  *int64    `json:"series_id,omitempty" gorm:"uniqueIndex:uq_reviews_user_series,where:series_id IS NOT NULL"`
	Text      string    `json:"text" gorm:"not null;size:2000"`
	Rating    int       `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 10"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	User User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
}

func (Review) TableName() string {
	return "reviews"
}
