package itunes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const sampleResponse = `{
	"resultCount": 2,
	"results": [
		{
			"trackId": 1441164599,
			"trackName": "Perfect",
			"artistName": "Ed Sheeran",
			"collectionName": "Divide",
			"artworkUrl100": "https://is1-ssl.mzstatic.com/image/thumb/abc/100x100bb.jpg",
			"previewUrl": "https://audio-ssl.itunes.apple.com/preview.m4a",
			"trackViewUrl": "https://music.apple.com/track/1"
		},
		{
			"trackId": 679734717,
			"trackName": "All of Me",
			"artistName": "John Legend",
			"collectionName": "Love in the Future",
			"artworkUrl100": "https://is1-ssl.mzstatic.com/image/thumb/def/100x100bb.jpg",
			"previewUrl": "",
			"trackViewUrl": "https://music.apple.com/track/2"
		}
	]
}`

func TestSearch_ParsesResults(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(sampleResponse))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)

	results, err := client.Search(context.Background(), "perfect")

	assert.NoError(t, err)
	assert.Len(t, results, 2)

	assert.Contains(t, gotQuery, "term=perfect")
	assert.Contains(t, gotQuery, "media=music")
	assert.Contains(t, gotQuery, "entity=song")
	assert.Contains(t, gotQuery, "limit=5")

	assert.Equal(t, int64(1441164599), results[0].TrackID)
	assert.Equal(t, "Perfect", results[0].Title)
	assert.Equal(t, "Ed Sheeran", results[0].Artist)
	assert.Equal(t, "Divide", results[0].Album)
}

func TestSearch_UpgradesArtwork(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sampleResponse))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)

	results, err := client.Search(context.Background(), "perfect")

	assert.NoError(t, err)
	assert.Equal(t, "https://is1-ssl.mzstatic.com/image/thumb/abc/300x300bb.jpg", results[0].AlbumArt)
}

func TestSearch_PrefersPreviewURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sampleResponse))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)

	results, err := client.Search(context.Background(), "perfect")

	assert.NoError(t, err)
	assert.Equal(t, "https://audio-ssl.itunes.apple.com/preview.m4a", results[0].SongURL)
	// Falls back to the store page when no preview exists
	assert.Equal(t, "https://music.apple.com/track/2", results[1].SongURL)
}

func TestSearch_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)

	_, err := client.Search(context.Background(), "perfect")

	assert.Error(t, err)
}

func TestSearch_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)

	_, err := client.Search(context.Background(), "perfect")

	assert.Error(t, err)
}

func TestSearch_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(time.Second)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Search(ctx, "perfect")

	assert.Error(t, err)
}
