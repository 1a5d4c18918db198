package itunes

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"lovewall/services/songs/internal/entity"

	"golang.org/x/time/rate"
)

const (
	searchLimit = 5

	// Apple asks for roughly 20 calls per minute from unauthenticated
	// clients; a token every 3s with a small burst stays under that.
	requestsPerSecond = 1.0 / 3.0
	burst             = 3
)

// Client queries the iTunes Search API for track metadata. The API is
// public and unauthenticated, so calls are rate limited client-side.
type Client struct {
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		limiter:    rate.NewLimiter(rate.Limit(requestsPerSecond), burst),
	}
}

type searchResponse struct {
	ResultCount int `json:"resultCount"`
	Results     []struct {
		TrackID        int64  `json:"trackId"`
		TrackName      string `json:"trackName"`
		ArtistName     string `json:"artistName"`
		CollectionName string `json:"collectionName"`
		ArtworkURL100  string `json:"artworkUrl100"`
		PreviewURL     string `json:"previewUrl"`
		TrackViewURL   string `json:"trackViewUrl"`
	} `json:"results"`
}

// Search looks up songs matching the term, best matches first.
func (c *Client) Search(ctx context.Context, term string) ([]entity.TrackResult, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	params := url.Values{}
	params.Set("term", term)
	params.Set("media", "music")
	params.Set("entity", "song")
	params.Set("limit", fmt.Sprintf("%d", searchLimit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search returned status %d", resp.StatusCode)
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	results := make([]entity.TrackResult, 0, len(payload.Results))
	for _, r := range payload.Results {
		results = append(results, entity.TrackResult{
			TrackID:  r.TrackID,
			Title:    r.TrackName,
			Artist:   r.ArtistName,
			Album:    r.CollectionName,
			AlbumArt: upgradeArtwork(r.ArtworkURL100),
			SongURL:  pickSongURL(r.PreviewURL, r.TrackViewURL),
		})
	}
	return results, nil
}

// upgradeArtwork swaps the 100px thumbnail for the 300px rendition; the CDN
// serves any size encoded in the filename.
func upgradeArtwork(artworkURL string) string {
	return strings.Replace(artworkURL, "100x100bb", "300x300bb", 1)
}

func pickSongURL(previewURL, trackViewURL string) string {
	if previewURL != "" {
		return previewURL
	}
	return trackViewURL
}
