package dto

import (
	"time"

	"cinehub/internal/http-api/models"
)

// PosterCreateRequest for attaching a poster to a title (admin only).
// Exactly one of movie_id/series_id must be set when posting to the
// top-level posters endpoint; the nested title endpoints fill it in.
type PosterCreateRequest struct {
	URL      string `json:"url" binding:"required,url"`
	MimeType string `json:"mime_type" binding:"required,max=100"`
	MovieID  *int64 `json:"movie_id,omitempty"`
	SeriesID *int64 `json:"series_id,omitempty"`
}

// PosterResponse for returning poster information
type PosterResponse struct {
	ID        int64     `json:"id"`
	URL       string    `json:"url"`
	MimeType  string    `json:"mime_type"`
	MovieID   *int64    `json:"movie_id,omitempty"`
	SeriesID  *int64    `json:"series_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (p *PosterCreateRequest) ToModel(ref models.TitleRef) *models.Poster {
	return &models.Poster{
		URL:      p.URL,
		MimeType: p.MimeType,
		MovieID:  ref.MovieID(),
		SeriesID: ref.SeriesID(),
	}
}

func FromModelToPosterResponse(p *models.Poster) PosterResponse {
	return PosterResponse{
		ID:        p.ID,
		URL:       p.URL,
		MimeType:  p.MimeType,
		MovieID:   p.MovieID,
		SeriesID:  p.SeriesID,
		CreatedAt: p.CreatedAt,
	}
}
