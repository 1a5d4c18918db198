package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"lovewall/pkg/logger"
	"lovewall/services/songs/internal/entity"
	"lovewall/services/songs/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// MockSongsUseCase is a mock implementation of usecase.SongsUseCase
type MockSongsUseCase struct {
	mock.Mock
}

func (m *MockSongsUseCase) CreateRequest(request *entity.SongRequest) error {
	args := m.Called(request)
	if args.Error(0) == nil && request.ID == "" {
		request.ID = "req-1"
	}
	return args.Error(0)
}

func (m *MockSongsUseCase) ListRequests() ([]*entity.SongRequest, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.SongRequest), args.Error(1)
}

func (m *MockSongsUseCase) UpvoteRequest(id string) (*entity.SongRequest, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.SongRequest), args.Error(1)
}

func (m *MockSongsUseCase) SearchTracks(ctx context.Context, term string) []entity.TrackResult {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]entity.TrackResult)
}

func (m *MockSongsUseCase) DeleteRequest(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

var _ usecase.SongsUseCase = (*MockSongsUseCase)(nil)

func setupSongsRouter(uc usecase.SongsUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewSongsHandler(uc, logger.New())

	router := gin.New()
	router.GET("/songs", handler.ListRequests)
	router.POST("/songs", handler.CreateRequest)
	router.GET("/songs/search", handler.SearchTracks)
	router.POST("/songs/:id/upvote", handler.UpvoteRequest)
	router.DELETE("/songs/:id", handler.DeleteRequest)
	return router
}

func TestCreateRequest_Created(t *testing.T) {
	mockUseCase := new(MockSongsUseCase)
	mockUseCase.On("CreateRequest", mock.AnythingOfType("*entity.SongRequest")).Return(nil)

	router := setupSongsRouter(mockUseCase)

	body, _ := json.Marshal(map[string]string{
		"song_title":     "Perfect",
		"artist":         "Ed Sheeran",
		"requester_name": "Lisa",
	})
	req, _ := http.NewRequest("POST", "/songs", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestCreateRequest_MissingFields(t *testing.T) {
	mockUseCase := new(MockSongsUseCase)

	router := setupSongsRouter(mockUseCase)

	// Binding rejects the body before the use case runs
	body, _ := json.Marshal(map[string]string{"artist": "Ed Sheeran"})
	req, _ := http.NewRequest("POST", "/songs", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "CreateRequest", mock.Anything)
}

func TestListRequests_ReturnsRanked(t *testing.T) {
	mockUseCase := new(MockSongsUseCase)
	mockUseCase.On("ListRequests").Return([]*entity.SongRequest{
		{ID: "a", SongTitle: "Perfect", Upvotes: 7},
		{ID: "b", SongTitle: "All of Me", Upvotes: 3},
	}, nil)

	router := setupSongsRouter(mockUseCase)

	req, _ := http.NewRequest("GET", "/songs", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, float64(2), response["count"])
}

func TestUpvoteRequest_ReturnsUpdatedCount(t *testing.T) {
	mockUseCase := new(MockSongsUseCase)
	mockUseCase.On("UpvoteRequest", "req-1").Return(&entity.SongRequest{ID: "req-1", Upvotes: 4}, nil)

	router := setupSongsRouter(mockUseCase)

	req, _ := http.NewRequest("POST", "/songs/req-1/upvote", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Request entity.SongRequest `json:"request"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, 4, response.Request.Upvotes)
}

func TestUpvoteRequest_NotFound(t *testing.T) {
	mockUseCase := new(MockSongsUseCase)
	mockUseCase.On("UpvoteRequest", "missing").Return(nil, gorm.ErrRecordNotFound)

	router := setupSongsRouter(mockUseCase)

	req, _ := http.NewRequest("POST", "/songs/missing/upvote", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSearchTracks_EmptyResultsAreAList(t *testing.T) {
	mockUseCase := new(MockSongsUseCase)
	mockUseCase.On("SearchTracks", mock.Anything, "nothing").Return(nil)

	router := setupSongsRouter(mockUseCase)

	req, _ := http.NewRequest("GET", "/songs/search?term=nothing", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	// Clients always get a JSON array, never null
	assert.Equal(t, []interface{}{}, response["results"])
}

func TestSearchTracks_ForwardsTerm(t *testing.T) {
	mockUseCase := new(MockSongsUseCase)
	mockUseCase.On("SearchTracks", mock.Anything, "ed sheeran").Return([]entity.TrackResult{
		{Title: "Perfect", Artist: "Ed Sheeran"},
	})

	router := setupSongsRouter(mockUseCase)

	req, _ := http.NewRequest("GET", "/songs/search?term=ed+sheeran", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, float64(1), response["count"])
	mockUseCase.AssertExpectations(t)
}

func TestDeleteRequest_Success(t *testing.T) {
	mockUseCase := new(MockSongsUseCase)
	mockUseCase.On("DeleteRequest", "req-1").Return(nil)

	router := setupSongsRouter(mockUseCase)

	req, _ := http.NewRequest("DELETE", "/songs/req-1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}
