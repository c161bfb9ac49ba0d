package dto

import (
	"time"

	"cinehub/internal/http-api/models"
)

// MovieCreateRequest for creating a movie (admin only)
type MovieCreateRequest struct {
	Title       string    `json:"title" binding:"required,min=2,max=200"`
	Description string    `json:"description" binding:"required"`
	ReleaseDate time.Time `json:"release_date" binding:"required"`
	Duration    int       `json:"duration" binding:"required,min=1"`
	Genre       string    `json:"genre" binding:"required,max=100"`
	Director    string    `json:"director" binding:"required,max=100"`
	BoxOffice   *float64  `json:"box_office,omitempty"`
}

// MovieUpdateRequest for updating a movie (admin only)
type MovieUpdateRequest struct {
	Title       string    `json:"title" binding:"required,min=2,max=200"`
	Description string    `json:"description" binding:"required"`
	ReleaseDate time.Time `json:"release_date" binding:"required"`
	Duration    int       `json:"duration" binding:"required,min=1"`
	Genre       string    `json:"genre" binding:"required,max=100"`
	Director    string    `json:"director" binding:"required,max=100"`
	BoxOffice   *float64  `json:"box_office,omitempty"`
}

// MovieListResponse for list views (no associations)
type MovieListResponse struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	ReleaseDate   time.Time `json:"release_date"`
	Duration      int       `json:"duration"`
	Genre         string    `json:"genre"`
	Director      string    `json:"director"`
	AverageRating float64   `json:"average_rating"`
}

// MovieDetailsResponse for detail views, with posters and reviews
type MovieDetailsResponse struct {
	ID            int64            `json:"id"`
	Title         string           `json:"title"`
	Description   string           `json:"description"`
	ReleaseDate   time.Time        `json:"release_date"`
	Duration      int              `json:"duration"`
	Genre         string           `json:"genre"`
	Director      string           `json:"director"`
	BoxOffice     *float64         `json:"box_office,omitempty"`
	AverageRating float64          `json:"average_rating"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
	Posters       []PosterResponse `json:"posters"`
	Reviews       []ReviewResponse `json:"reviews"`
}

func (m *MovieCreateRequest) ToModel() *models.Movie {
	return &models.Movie{
		Title:       m.Title,
		Description: m.Description,
		ReleaseDate: m.ReleaseDate,
		Duration:    m.Duration,
		Genre:       m.Genre,
		Director:    m.Director,
		BoxOffice:   m.BoxOffice,
	}
}

// ApplyTo copies the updatable fields onto an existing movie. The aggregate
// rating is never written from request paths.
func (m *MovieUpdateRequest) ApplyTo(movie *models.Movie) {
	movie.Title = m.Title
	movie.Description = m.Description
	movie.ReleaseDate = m.ReleaseDate
	movie.Duration = m.Duration
	movie.Genre = m.Genre
	movie.Director = m.Director
	movie.BoxOffice = m.BoxOffice
}

func FromModelToMovieListResponse(m *models.Movie) MovieListResponse {
	return MovieListResponse{
		ID:            m.ID,
		Title:         m.Title,
		ReleaseDate:   m.ReleaseDate,
		Duration:      m.Duration,
		Genre:         m.Genre,
		Director:      m.Director,
		AverageRating: m.AverageRating,
	}
}

func FromModelToMovieDetailsResponse(m *models.Movie) *MovieDetailsResponse {
	resp := &MovieDetailsResponse{
		ID:            m.ID,
		Title:         m.Title,
		Description:   m.Description,
		ReleaseDate:   m.ReleaseDate,
		Duration:      m.Duration,
		Genre:         m.Genre,
		Director:      m.Director,
		BoxOffice:     m.BoxOffice,
		AverageRating: m.AverageRating,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
		Posters:       make([]PosterResponse, 0, len(m.Posters)),
		Reviews:       make([]ReviewResponse, 0, len(m.Reviews)),
	}
	for i := range m.Posters {
		resp.Posters = append(resp.Posters, FromModelToPosterResponse(&m.Posters[i]))
	}
	for i := range m.Reviews {
		resp.Reviews = append(resp.Reviews, FromModelToReviewResponse(&m.Reviews[i]))
	}
	return resp
}
