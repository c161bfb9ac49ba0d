package dto

import (
	"time"

	"cinehub/internal/http-api/models"
)

// FavoriteCreateRequest for marking a title as favorite; exactly one of
// movie_id/series_id must be set
type FavoriteCreateRequest struct {
	MovieID  *int64 `json:"movie_id,omitempty"`
	SeriesID *int64 `json:"series_id,omitempty"`
}

// FavoriteResponse for returning favorite information with the title it
// points at
type FavoriteResponse struct {
	ID        int64     `json:"id"`
	MovieID   *int64    `json:"movie_id,omitempty"`
	SeriesID  *int64    `json:"series_id,omitempty"`
	TitleName string    `json:"title_name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (f *FavoriteCreateRequest) ToModel(userID int64, ref models.TitleRef) *models.Favorite {
	return &models.Favorite{
		UserID:   userID,
		MovieID:  ref.MovieID(),
		SeriesID: ref.SeriesID(),
	}
}

func FromModelToFavoriteResponse(f *models.Favorite) FavoriteResponse {
	resp := FavoriteResponse{
		ID:        f.ID,
		MovieID:   f.MovieID,
		SeriesID:  f.SeriesID,
		CreatedAt: f.CreatedAt,
	}
	if f.Movie != nil {
		resp.TitleName = f.Movie.Title
	}
	if f.Series != nil {
		resp.TitleName = f.Series.Title
	}
	return resp
}
