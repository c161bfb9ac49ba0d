package dto

import (
	"time"

	"cinehub/internal/http-api/models"
)

// EpisodeCreateRequest for adding an episode to a series (admin only)
type EpisodeCreateRequest struct {
	SeasonNumber  int    `json:"season_number" binding:"required,min=1"`
	EpisodeNumber int    `json:"episode_number" binding:"required,min=1"`
	Title         string `json:"title" binding:"required,min=2,max=200"`
	Description   string `json:"description" binding:"required"`
	Duration      int    `json:"duration" binding:"required,min=1"`
}

// EpisodeUpdateRequest for updating an episode (admin only)
type EpisodeUpdateRequest struct {
	SeasonNumber  int    `json:"season_number" binding:"required,min=1"`
	EpisodeNumber int    `json:"episode_number" binding:"required,min=1"`
	Title         string `json:"title" binding:"required,min=2,max=200"`
	Description   string `json:"description" binding:"required"`
	Duration      int    `json:"duration" binding:"required,min=1"`
}

// EpisodeResponse for returning episode information
type EpisodeResponse struct {
	ID            int64     `json:"id"`
	SeriesID      int64     `json:"series_id"`
	SeasonNumber  int       `json:"season_number"`
	EpisodeNumber int       `json:"episode_number"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Duration      int       `json:"duration"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (e *EpisodeCreateRequest) ToModel(seriesID int64) *models.Episode {
	return &models.Episode{
		SeriesID:      seriesID,
		SeasonNumber:  e.SeasonNumber,
		EpisodeNumber: e.EpisodeNumber,
		Title:         e.Title,
		Description:   e.Description,
		Duration:      e.Duration,
	}
}

func (e *EpisodeUpdateRequest) ApplyTo(episode *models.Episode) {
	episode.SeasonNumber = e.SeasonNumber
	episode.EpisodeNumber = e.EpisodeNumber
	episode.Title = e.Title
	episode.Description = e.Description
	episode.Duration = e.Duration
}

func FromModelToEpisodeResponse(e *models.Episode) EpisodeResponse {
	return EpisodeResponse{
		ID:            e.ID,
		SeriesID:      e.SeriesID,
		SeasonNumber:  e.SeasonNumber,
		EpisodeNumber: e.EpisodeNumber,
		Title:         e.Title,
		Description:   e.Description,
		Duration:      e.Duration,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}
