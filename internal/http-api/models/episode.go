package models

import "time"

// Episode belongs to exactly one series. The (series, season, episode)
// triple is unique, enforced by the composite index below.
type Episode struct {
	ID            int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	SeriesID      int64     `json:"series_id" gorm:"not null;uniqueIndex:uq_episodes_series_season_episode"`
	SeasonNumber  int       `json:"season_number" gorm:"not null;check:season_number >= 1;uniqueIndex:uq_episodes_series_season_episode"`
	EpisodeNumber int       `json:"episode_number" gorm:"not null;check:episode_number >= 1;uniqueIndex:uq_episodes_series_season_episode"`
	Title         string    `json:"title" gorm:"not null;size:200"`
	Description   string    `json:"description" gorm:"not null"`
	Duration      int       `json:"duration" gorm:"not null;check:duration >= 1"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Episode) TableName() string {
	return "episodes"
}
