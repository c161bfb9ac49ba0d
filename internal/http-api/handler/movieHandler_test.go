package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cinehub/internal/http-api/dto"
	"cinehub/internal/http-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockMovieService mocks the MovieService interface
type MockMovieService struct {
	mock.Mock
}

func (m *MockMovieService) List(ctx context.Context) ([]dto.MovieListResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.MovieListResponse), args.Error(1)
}

func (m *MockMovieService) Get(ctx context.Context, id int64) (*dto.MovieDetailsResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.MovieDetailsResponse), args.Error(1)
}

func (m *MockMovieService) Create(ctx context.Context, req *dto.MovieCreateRequest) (*dto.MovieDetailsResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.MovieDetailsResponse), args.Error(1)
}

func (m *MockMovieService) Update(ctx context.Context, id int64, req *dto.MovieUpdateRequest) (*dto.MovieDetailsResponse, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.MovieDetailsResponse), args.Error(1)
}

func (m *MockMovieService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestMovieList(t *testing.T) {
	mockMovies := new(MockMovieService)
	h := NewMovieHandler(mockMovies, discardLogger())
	router := setupRouter()
	router.GET("/movies", h.List)

	list := []dto.MovieListResponse{
		{ID: 1, Title: "The Matrix", AverageRating: 8.7},
		{ID: 2, Title: "Inception", AverageRating: 8.8},
	}
	mockMovies.On("List", mock.Anything).Return(list, nil)

	req, _ := http.NewRequest("GET", "/movies", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var got []dto.MovieListResponse
	json.Unmarshal(w.Body.Bytes(), &got)
	assert.Len(t, got, 2)
	assert.Equal(t, "The Matrix", got[0].Title)
}

func TestMovieGet_NotFound(t *testing.T) {
	mockMovies := new(MockMovieService)
	h := NewMovieHandler(mockMovies, discardLogger())
	router := setupRouter()
	router.GET("/movies/:id", h.Get)

	mockMovies.On("Get", mock.Anything, int64(99)).Return(nil, models.ErrNotFound)

	req, _ := http.NewRequest("GET", "/movies/99", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMovieGet_BadID(t *testing.T) {
	mockMovies := new(MockMovieService)
	h := NewMovieHandler(mockMovies, discardLogger())
	router := setupRouter()
	router.GET("/movies/:id", h.Get)

	req, _ := http.NewRequest("GET", "/movies/abc", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockMovies.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestMovieCreate_Success(t *testing.T) {
	mockMovies := new(MockMovieService)
	h := NewMovieHandler(mockMovies, discardLogger())
	router := setupRouter()
	router.POST("/movies", h.Create)

	created := &dto.MovieDetailsResponse{ID: 3, Title: "Arrival"}
	mockMovies.On("Create", mock.Anything, mock.Anything).Return(created, nil)

	req, _ := http.NewRequest("POST", "/movies", jsonBody(t, dto.MovieCreateRequest{
		Title:       "Arrival",
		Description: "A linguist works with the military to communicate with alien lifeforms.",
		ReleaseDate: time.Date(2016, 11, 11, 0, 0, 0, 0, time.UTC),
		Duration:    116,
		Genre:       "Sci-Fi",
		Director:    "Denis Villeneuve",
	}))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestMovieCreate_MissingFields(t *testing.T) {
	mockMovies := new(MockMovieService)
	h := NewMovieHandler(mockMovies, discardLogger())
	router := setupRouter()
	router.POST("/movies", h.Create)

	req, _ := http.NewRequest("POST", "/movies", jsonBody(t, map[string]any{"title": "X"}))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockMovies.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestMovieDelete_Success(t *testing.T) {
	mockMovies := new(MockMovieService)
	h := NewMovieHandler(mockMovies, discardLogger())
	router := setupRouter()
	router.DELETE("/movies/:id", h.Delete)

	mockMovies.On("Delete", mock.Anything, int64(1)).Return(nil)

	req, _ := http.NewRequest("DELETE", "/movies/1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}
