package usecase

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lovewall/pkg/logger"
	"lovewall/services/songs/internal/entity"
	"lovewall/services/songs/internal/itunes"
	"lovewall/services/songs/internal/repo/persistent"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// MockSongRepository is a mock implementation of persistent.SongRepository
type MockSongRepository struct {
	mock.Mock
}

func (m *MockSongRepository) Create(request *entity.SongRequest) error {
	args := m.Called(request)
	if args.Error(0) == nil && request.ID == "" {
		request.ID = "req-1"
	}
	return args.Error(0)
}

func (m *MockSongRepository) GetByID(id string) (*entity.SongRequest, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.SongRequest), args.Error(1)
}

func (m *MockSongRepository) ListRanked() ([]*entity.SongRequest, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.SongRequest), args.Error(1)
}

func (m *MockSongRepository) Upvote(id string) (*entity.SongRequest, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.SongRequest), args.Error(1)
}

func (m *MockSongRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

var _ persistent.SongRepository = (*MockSongRepository)(nil)

func newSongsUseCase(repo *MockSongRepository, baseURL string) SongsUseCase {
	client := itunes.NewClient(baseURL, 5*time.Second)
	return NewSongsUseCase(repo, client, nil, logger.New())
}

func TestCreateRequest_Success(t *testing.T) {
	repo := new(MockSongRepository)
	repo.On("Create", mock.AnythingOfType("*entity.SongRequest")).Return(nil)

	uc := newSongsUseCase(repo, "http://unused")

	request := &entity.SongRequest{
		SongTitle:     "Perfect",
		Artist:        "Ed Sheeran",
		RequesterName: "Lisa",
	}

	err := uc.CreateRequest(request)

	assert.NoError(t, err)
	assert.Equal(t, "req-1", request.ID)
	assert.False(t, request.CreatedAt.IsZero())
	repo.AssertExpectations(t)
}

func TestCreateRequest_DefaultsAnonymous(t *testing.T) {
	repo := new(MockSongRepository)
	repo.On("Create", mock.AnythingOfType("*entity.SongRequest")).Return(nil)

	uc := newSongsUseCase(repo, "http://unused")

	request := &entity.SongRequest{SongTitle: "Perfect", Artist: "Ed Sheeran"}

	assert.NoError(t, uc.CreateRequest(request))
	assert.Equal(t, "Anonymous", request.RequesterName)
}

func TestCreateRequest_RequiresTitleAndArtist(t *testing.T) {
	repo := new(MockSongRepository)

	uc := newSongsUseCase(repo, "http://unused")

	assert.ErrorIs(t, uc.CreateRequest(&entity.SongRequest{Artist: "Ed Sheeran"}), ErrMissingTrack)
	assert.ErrorIs(t, uc.CreateRequest(&entity.SongRequest{SongTitle: "Perfect"}), ErrMissingTrack)
	repo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestListRequests_Ranked(t *testing.T) {
	repo := new(MockSongRepository)
	repo.On("ListRanked").Return([]*entity.SongRequest{
		{ID: "a", Upvotes: 5},
		{ID: "b", Upvotes: 2},
	}, nil)

	uc := newSongsUseCase(repo, "http://unused")

	requests, err := uc.ListRequests()

	assert.NoError(t, err)
	assert.Len(t, requests, 2)
	assert.Equal(t, "a", requests[0].ID)
}

func TestUpvoteRequest_Missing(t *testing.T) {
	repo := new(MockSongRepository)
	repo.On("Upvote", "missing").Return(nil, gorm.ErrRecordNotFound)

	uc := newSongsUseCase(repo, "http://unused")

	_, err := uc.UpvoteRequest("missing")

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestSearchTracks_EmptyTerm(t *testing.T) {
	uc := newSongsUseCase(new(MockSongRepository), "http://unused")

	assert.Nil(t, uc.SearchTracks(context.Background(), ""))
	assert.Nil(t, uc.SearchTracks(context.Background(), "   "))
}

func TestSearchTracks_UpstreamFailureDegrades(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	uc := newSongsUseCase(new(MockSongRepository), server.URL)

	// A broken upstream never errors the caller, it just finds nothing
	results := uc.SearchTracks(context.Background(), "perfect")
	assert.Empty(t, results)
}

func TestSearchTracks_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"resultCount":1,"results":[{"trackName":"Perfect","artistName":"Ed Sheeran","collectionName":"Divide","artworkUrl100":"https://cdn/100x100bb.jpg","previewUrl":"https://cdn/preview.m4a"}]}`))
	}))
	defer server.Close()

	uc := newSongsUseCase(new(MockSongRepository), server.URL)

	results := uc.SearchTracks(context.Background(), "perfect")

	assert.Len(t, results, 1)
	assert.Equal(t, "Perfect", results[0].Title)
	assert.Equal(t, "https://cdn/300x300bb.jpg", results[0].AlbumArt)
}

func TestDeleteRequest(t *testing.T) {
	repo := new(MockSongRepository)
	repo.On("Delete", "req-1").Return(nil)

	uc := newSongsUseCase(repo, "http://unused")

	assert.NoError(t, uc.DeleteRequest("req-1"))
	repo.AssertExpectations(t)
}

func TestListRequests_RepositoryError(t *testing.T) {
	repo := new(MockSongRepository)
	repo.On("ListRanked").Return(nil, errors.New("db down"))

	uc := newSongsUseCase(repo, "http://unused")

	_, err := uc.ListRequests()

	assert.Error(t, err)
}
