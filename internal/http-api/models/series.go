package models

import "time"

type Series struct {
	ID            int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Title         string    `json:"title" gorm:"not null;size:200"`
	Description   string    `json:"description" gorm:"not null"`
	ReleaseDate   time.Time `json:"release_date" gorm:"not null"`
	Genre         string    `json:"genre" gorm:"not null;size:100"`
	AverageRating float64   `json:"average_rating" gorm:"not null;default:0"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	Episodes  []Episode  `json:"episodes,omitempty" gorm:"foreignKey:SeriesID;constraint:OnDelete:CASCADE;"`
	Posters   []Poster   `json:"posters,omitempty" gorm:"foreignKey:SeriesID;constraint:OnDelete:CASCADE;"`
	Reviews   []Review   `json:"reviews,omitempty" gorm:"foreignKey:SeriesID;constraint:OnDelete:CASCADE;"`
	Favorites []Favorite `json:"favorites,omitempty" gorm:"foreignKey:SeriesID;constraint:OnDelete:CASCADE;"`
}

func (Series) TableName() string {
	return "series"
}
