package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"cinehub/internal/http-api/dto"
	"cinehub/internal/http-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockEpisodeService mocks the EpisodeService interface
type MockEpisodeService struct {
	mock.Mock
}

func (m *MockEpisodeService) ListBySeries(ctx context.Context, seriesID int64) ([]dto.EpisodeResponse, error) {
	args := m.Called(ctx, seriesID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.EpisodeResponse), args.Error(1)
}

func (m *MockEpisodeService) Get(ctx context.Context, id int64) (*dto.EpisodeResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.EpisodeResponse), args.Error(1)
}

func (m *MockEpisodeService) Create(ctx context.Context, seriesID int64, req *dto.EpisodeCreateRequest) (*dto.EpisodeResponse, error) {
	args := m.Called(ctx, seriesID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.EpisodeResponse), args.Error(1)
}

func (m *MockEpisodeService) Update(ctx context.Context, id int64, req *dto.EpisodeUpdateRequest) (*dto.EpisodeResponse, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.EpisodeResponse), args.Error(1)
}

func (m *MockEpisodeService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestEpisodeCreate_DuplicateNumber(t *testing.T) {
	mockEpisodes := new(MockEpisodeService)
	h := NewEpisodeHandler(mockEpisodes, discardLogger())
	router := setupRouter()
	router.POST("/series/:id/episodes", h.Create)

	mockEpisodes.On("Create", mock.Anything, int64(1), mock.Anything).
		Return(nil, models.ErrDuplicateEpisodeNumber)

	req, _ := http.NewRequest("POST", "/series/1/episodes", jsonBody(t, dto.EpisodeCreateRequest{
		SeasonNumber:  1,
		EpisodeNumber: 1,
		Title:         "Pilot again",
		Description:   "Same slot as the existing pilot.",
		Duration:      45,
	}))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestEpisodeCreate_SeriesMissing(t *testing.T) {
	mockEpisodes := new(MockEpisodeService)
	h := NewEpisodeHandler(mockEpisodes, discardLogger())
	router := setupRouter()
	router.POST("/series/:id/episodes", h.Create)

	mockEpisodes.On("Create", mock.Anything, int64(99), mock.Anything).
		Return(nil, models.ErrTitleNotFound)

	req, _ := http.NewRequest("POST", "/series/99/episodes", jsonBody(t, dto.EpisodeCreateRequest{
		SeasonNumber:  1,
		EpisodeNumber: 1,
		Title:         "Orphan",
		Description:   "Episode of a series that does not exist.",
		Duration:      45,
	}))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEpisodeCreate_InvalidNumbers(t *testing.T) {
	mockEpisodes := new(MockEpisodeService)
	h := NewEpisodeHandler(mockEpisodes, discardLogger())
	router := setupRouter()
	router.POST("/series/:id/episodes", h.Create)

	req, _ := http.NewRequest("POST", "/series/1/episodes", jsonBody(t, map[string]any{
		"season_number":  0,
		"episode_number": 1,
		"title":          "Season zero",
		"description":    "Season numbers start at one.",
		"duration":       45,
	}))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockEpisodes.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestEpisodeList_SeriesMissing(t *testing.T) {
	mockEpisodes := new(MockEpisodeService)
	h := NewEpisodeHandler(mockEpisodes, discardLogger())
	router := setupRouter()
	router.GET("/series/:id/episodes", h.ListBySeries)

	mockEpisodes.On("ListBySeries", mock.Anything, int64(99)).Return(nil, models.ErrNotFound)

	req, _ := http.NewRequest("GET", "/series/99/episodes", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
