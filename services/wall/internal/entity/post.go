package entity

import "time"

// Post is one shared contribution on the wall of love. Posts are never
// mutated after creation; the moderation view may only delete them.
type Post struct {
	ID              string    `json:"id"`
	Author          string    `json:"author"`
	Message         string    `json:"message"`
	ImageURL        string    `json:"image_url,omitempty"`
	AdditionalMedia []string  `json:"additional_media,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// MediaURLs returns the post's media in display order, primary first.
func (p *Post) MediaURLs() []string {
	if p.ImageURL == "" {
		return nil
	}
	urls := make([]string, 0, 1+len(p.AdditionalMedia))
	urls = append(urls, p.ImageURL)
	urls = append(urls, p.AdditionalMedia...)
	return urls
}
