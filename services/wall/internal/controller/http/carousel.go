package http

import (
	"errors"
	"sync"
)

var errNoMedia = errors.New("no media to navigate")

// carousel tracks which of a post's media is currently shown. Navigation
// wraps circularly; a single-element list makes next/prev no-ops.
type carousel struct {
	urls  []string
	index int
}

func (c *carousel) next() error {
	if len(c.urls) == 0 {
		return errNoMedia
	}
	c.index = (c.index + 1) % len(c.urls)
	return nil
}

func (c *carousel) prev() error {
	if len(c.urls) == 0 {
		return errNoMedia
	}
	c.index = (c.index - 1 + len(c.urls)) % len(c.urls)
	return nil
}

func (c *carousel) selectIndex(i int) error {
	if len(c.urls) == 0 {
		return errNoMedia
	}
	if i < 0 || i >= len(c.urls) {
		return errors.New("index out of range")
	}
	c.index = i
	return nil
}

func (c *carousel) current() string {
	if len(c.urls) == 0 {
		return ""
	}
	return c.urls[c.index]
}

// carouselState holds per-post view state, keyed by post ID. It belongs to
// the view layer; the data layer knows nothing about slide positions.
type carouselState struct {
	mu     sync.Mutex
	byPost map[string]*carousel
}

func newCarouselState() *carouselState {
	return &carouselState{byPost: make(map[string]*carousel)}
}

// get returns the carousel for a post, creating it at index 0 on first use.
func (s *carouselState) get(postID string, urls []string) *carousel {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.byPost[postID]; ok {
		return c
	}
	c := &carousel{urls: urls}
	s.byPost[postID] = c
	return c
}

func (s *carouselState) drop(postID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.byPost, postID)
}
