package entity

import "time"

// SongRequest is one entry on the guest song request board. Requests are
// ranked by upvotes, ties broken by recency.
type SongRequest struct {
	ID            string    `json:"id"`
	SongTitle     string    `json:"song_title"`
	Artist        string    `json:"artist"`
	Album         string    `json:"album,omitempty"`
	AlbumArt      string    `json:"album_art,omitempty"`
	SongURL       string    `json:"song_url,omitempty"`
	RequesterName string    `json:"requester_name"`
	Upvotes       int       `json:"upvotes"`
	CreatedAt     time.Time `json:"created_at"`
}

// TrackResult is a catalog search hit offered to the guest while typing.
// It carries just enough to preview the track and turn it into a request.
type TrackResult struct {
	TrackID  int64  `json:"track_id"`
	Title    string `json:"title"`
	Artist   string `json:"artist"`
	Album    string `json:"album"`
	AlbumArt string `json:"album_art,omitempty"`
	SongURL  string `json:"song_url,omitempty"`
}
