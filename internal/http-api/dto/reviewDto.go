package dto

import (
	"time"

	"cinehub/internal/http-api/models"
)

// ReviewCreateRequest for creating a review; exactly one of
// movie_id/series_id must be set
type ReviewCreateRequest struct {
	MovieID  *int64 `json:"movie_id,omitempty"`
	SeriesID *int64 `json:"series_id,omitempty"`
	Text     string `json:"text" binding:"required,min=5,max=2000"`
	Rating   int    `json:"rating" binding:"required,min=1,max=10"`
}

// ReviewUpdateRequest for updating one's own review; the title reference
// is immutable
type ReviewUpdateRequest struct {
	Text   string `json:"text" binding:"required,min=5,max=2000"`
	Rating int    `json:"rating" binding:"required,min=1,max=10"`
}

// ReviewResponse for returning review information
type ReviewResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	UserEmail string    `json:"user_email,omitempty"`
	MovieID   *int64    `json:"movie_id,omitempty"`
	SeriesID  *int64    `json:"series_id,omitempty"`
	Text      string    `json:"text"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *ReviewCreateRequest) ToModel(userID int64, ref models.TitleRef) *models.Review {
	return &models.Review{
		UserID:   userID,
		MovieID:  ref.MovieID(),
		SeriesID: ref.SeriesID(),
		Text:     r.Text,
		Rating:   r.Rating,
	}
}

func FromModelToReviewResponse(r *models.Review) ReviewResponse {
	return ReviewResponse{
		ID:        r.ID,
		UserID:    r.UserID,
		UserEmail: r.User.Email,
		MovieID:   r.MovieID,
		SeriesID:  r.SeriesID,
		Text:      r.Text,
		Rating:    r.Rating,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
