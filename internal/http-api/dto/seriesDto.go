package dto

import (
	"time"

	"cinehub/internal/http-api/models"
)

// SeriesCreateRequest for creating a series (admin only)
type SeriesCreateRequest struct {
	Title       string    `json:"title" binding:"required,min=2,max=200"`
	Description string    `json:"description" binding:"required"`
	ReleaseDate time.Time `json:"release_date" binding:"required"`
	Genre       string    `json:"genre" binding:"required,max=100"`
}

// SeriesUpdateRequest for updating a series (admin only)
type SeriesUpdateRequest struct {
	Title       string    `json:"title" binding:"required,min=2,max=200"`
	Description string    `json:"description" binding:"required"`
	ReleaseDate time.Time `json:"release_date" binding:"required"`
	Genre       string    `json:"genre" binding:"required,max=100"`
}

// SeriesListResponse for list views
type SeriesListResponse struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	ReleaseDate   time.Time `json:"release_date"`
	Genre         string    `json:"genre"`
	AverageRating float64   `json:"average_rating"`
}

// SeriesDetailsResponse for detail views, with episodes in (season, episode) order
type SeriesDetailsResponse struct {
	ID            int64             `json:"id"`
	Title         string            `json:"title"`
	Description   string            `json:"description"`
	ReleaseDate   time.Time         `json:"release_date"`
	Genre         string            `json:"genre"`
	AverageRating float64           `json:"average_rating"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
	Episodes      []EpisodeResponse `json:"episodes"`
	Posters       []PosterResponse  `json:"posters"`
	Reviews       []ReviewResponse  `json:"reviews"`
}

func (s *SeriesCreateRequest) ToModel() *models.Series {
	return &models.Series{
		Title:       s.Title,
		Description: s.Description,
		ReleaseDate: s.ReleaseDate,
		Genre:       s.Genre,
	}
}

func (s *SeriesUpdateRequest) ApplyTo(series *models.Series) {
	series.Title = s.Title
	series.Description = s.Description
	series.ReleaseDate = s.ReleaseDate
	series.Genre = s.Genre
}

func FromModelToSeriesListResponse(s *models.Series) SeriesListResponse {
	return SeriesListResponse{
		ID:            s.ID,
		Title:         s.Title,
		ReleaseDate:   s.ReleaseDate,
		Genre:         s.Genre,
		AverageRating: s.AverageRating,
	}
}

func FromModelToSeriesDetailsResponse(s *models.Series) *SeriesDetailsResponse {
	resp := &SeriesDetailsResponse{
		ID:            s.ID,
		Title:         s.Title,
		Description:   s.Description,
		ReleaseDate:   s.ReleaseDate,
		Genre:         s.Genre,
		AverageRating: s.AverageRating,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
		Episodes:      make([]EpisodeResponse, 0, len(s.Episodes)),
		Posters:       make([]PosterResponse, 0, len(s.Posters)),
		Reviews:       make([]ReviewResponse, 0, len(s.Reviews)),
	}
	for i := range s.Episodes {
		resp.Episodes = append(resp.Episodes, FromModelToEpisodeResponse(&s.Episodes[i]))
	}
	for i := range s.Posters {
		resp.Posters = append(resp.Posters, FromModelToPosterResponse(&s.Posters[i]))
	}
	for i := range s.Reviews {
		resp.Reviews = append(resp.Reviews, FromModelToReviewResponse(&s.Reviews[i]))
	}
	return resp
}
