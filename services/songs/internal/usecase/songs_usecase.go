package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"lovewall/pkg/logger"
	"lovewall/services/songs/internal/entity"
	"lovewall/services/songs/internal/itunes"
	"lovewall/services/songs/internal/repo/persistent"

	"github.com/redis/go-redis/v9"
)

var (
	// ErrMissingTrack rejects requests without a title or artist.
	ErrMissingTrack = errors.New("song title and artist are required")
)

const searchCacheTTL = 5 * time.Minute

type SongsUseCase interface {
	CreateRequest(request *entity.SongRequest) error
	ListRequests() ([]*entity.SongRequest, error)
	UpvoteRequest(id string) (*entity.SongRequest, error)
	SearchTracks(ctx context.Context, term string) []entity.TrackResult
	DeleteRequest(id string) error
}

type songsUseCase struct {
	songRepo     persistent.SongRepository
	itunesClient *itunes.Client
	redisClient  *redis.Client
	logger       *logger.Logger
}

func NewSongsUseCase(
	songRepo persistent.SongRepository,
	itunesClient *itunes.Client,
	redisClient *redis.Client,
	logger *logger.Logger,
) SongsUseCase {
	return &songsUseCase{
		songRepo:     songRepo,
		itunesClient: itunesClient,
		redisClient:  redisClient,
		logger:       logger,
	}
}

func (uc *songsUseCase) CreateRequest(request *entity.SongRequest) error {
	if request.SongTitle == "" || request.Artist == "" {
		return ErrMissingTrack
	}
	if request.RequesterName == "" {
		request.RequesterName = "Anonymous"
	}
	request.CreatedAt = time.Now()

	if err := uc.songRepo.Create(request); err != nil {
		return fmt.Errorf("failed to create song request: %w", err)
	}
	return nil
}

func (uc *songsUseCase) ListRequests() ([]*entity.SongRequest, error) {
	requests, err := uc.songRepo.ListRanked()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch song requests: %w", err)
	}
	return requests, nil
}

func (uc *songsUseCase) UpvoteRequest(id string) (*entity.SongRequest, error) {
	request, err := uc.songRepo.Upvote(id)
	if err != nil {
		return nil, err
	}
	return request, nil
}

// SearchTracks proxies the catalog search. Lookups never fail the caller:
// any upstream problem degrades to an empty result set with a warning.
func (uc *songsUseCase) SearchTracks(ctx context.Context, term string) []entity.TrackResult {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil
	}

	if cached, ok := uc.cachedSearch(ctx, term); ok {
		return cached
	}

	results, err := uc.itunesClient.Search(ctx, term)
	if err != nil {
		uc.logger.Warn("Track search for %q failed: %v", term, err)
		return nil
	}

	uc.cacheSearch(ctx, term, results)
	return results
}

func (uc *songsUseCase) DeleteRequest(id string) error {
	return uc.songRepo.Delete(id)
}

func searchCacheKey(term string) string {
	return fmt.Sprintf("track_search:%s", strings.ToLower(term))
}

func (uc *songsUseCase) cachedSearch(ctx context.Context, term string) ([]entity.TrackResult, bool) {
	if uc.redisClient == nil {
		return nil, false
	}

	data, err := uc.redisClient.Get(ctx, searchCacheKey(term)).Bytes()
	if err != nil {
		return nil, false
	}

	var results []entity.TrackResult
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, false
	}
	return results, true
}

func (uc *songsUseCase) cacheSearch(ctx context.Context, term string, results []entity.TrackResult) {
	if uc.redisClient == nil || len(results) == 0 {
		return
	}

	data, err := json.Marshal(results)
	if err != nil {
		return
	}
	uc.redisClient.Set(ctx, searchCacheKey(term), data, searchCacheTTL)
}
