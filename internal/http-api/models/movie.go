package models

import "time"

type Movie struct {
	ID            int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Title         string    `json:"title" gorm:"not null;size:200"`
	Description   string    `json:"description" gorm:"not null"`
	ReleaseDate   time.Time `json:"release_date" gorm:"not null"`
	Duration      int       `json:"duration" gorm:"not null;check:duration >= 1"`
	Genre         string    `json:"genre" gorm:"not null;size:100"`
	Director      string    `json:"director" gorm:"not null;size:100"`
	BoxOffice     *float64  `json:"box_office,omitempty" gorm:"type:decimal(18,2)"`
	AverageRating float64   `json:"average_rating" gorm:"not null;default:0"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	Posters   []Poster   `json:"posters,omitempty" gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE;"`
	Reviews   []Review   `json:"reviews,omitempty" gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE;"`
	Favorites []Favorite `json:"favorites,omitempty" gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE;"`
}

func (Movie) TableName() string {
	return "movies"
}
