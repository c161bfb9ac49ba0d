package models

import "time"

// Poster is attached to exactly one title. The check constraint makes the
// database reject rows where both or neither foreign key is set.
type Poster struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	URL       string    `json:"url" gorm:"not null"`
	MimeType  string    `json:"mime_type" gorm:"not null;size:100"`
	MovieID   *int64    `json:"movie_id,omitempty" gorm:"index;check:chk_posters_title_xor,(movie_id IS NOT NULL AND series_id IS NULL) OR (movie_id IS NULL AND series_id IS NOT NULL)"`
	SeriesID  *int64    `json:"series_id,omitempty" gorm:"index"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Poster) TableName() string {
	return "posters"
}
