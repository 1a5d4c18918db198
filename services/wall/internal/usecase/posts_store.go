package usecase

import (
	"sync"
	"time"

	"lovewall/services/wall/internal/entity"
)

const (
	// refreshInterval is how stale the cached feed may get before a
	// refresh is attempted.
	refreshInterval = 10 * time.Minute
	// minRefreshInterval is the hard minimum spacing between fetches.
	minRefreshInterval = time.Minute
)

// PostsStore holds the most recently fetched feed so repeated reads don't
// hammer the database. A single fetch may be in flight at a time; a new
// post from a successful submission is prepended locally instead of
// forcing a refetch.
type PostsStore struct {
	mu          sync.Mutex
	posts       []*entity.Post
	lastFetched time.Time
	fetching    bool

	cooldown  time.Duration
	staleness time.Duration
	now       func() time.Time
}

func NewPostsStore() *PostsStore {
	return &PostsStore{
		cooldown:  minRefreshInterval,
		staleness: refreshInterval,
		now:       time.Now,
	}
}

// Snapshot returns the cached feed, newest first.
func (s *PostsStore) Snapshot() []*entity.Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	posts := make([]*entity.Post, len(s.posts))
	copy(posts, s.posts)
	return posts
}

// BeginFetch reports whether a fetch should proceed and, if so, marks one
// in flight. A fetch is allowed only when none is running AND the cache is
// empty, never filled, or both the minimum cooldown and the staleness
// threshold have elapsed since the last completed fetch.
func (s *PostsStore) BeginFetch() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.fetching {
		return false
	}

	if s.lastFetched.IsZero() || len(s.posts) == 0 {
		s.fetching = true
		return true
	}

	sinceLast := s.now().Sub(s.lastFetched)
	if sinceLast > s.cooldown && sinceLast > s.staleness {
		s.fetching = true
		return true
	}

	return false
}

// CompleteFetch replaces the whole cached list in one step and stamps the
// fetch time.
func (s *PostsStore) CompleteFetch(posts []*entity.Post) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts = posts
	s.lastFetched = s.now()
	s.fetching = false
}

// FailFetch releases the in-flight guard without touching the cache, so
// the previous snapshot keeps serving.
func (s *PostsStore) FailFetch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fetching = false
}

// PrependLocal puts a freshly created post at the head of the cache.
func (s *PostsStore) PrependLocal(post *entity.Post) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts = append([]*entity.Post{post}, s.posts...)
}

// Remove drops a deleted post from the cache.
func (s *PostsStore) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.posts {
		if p.ID == id {
			s.posts = append(s.posts[:i], s.posts[i+1:]...)
			return
		}
	}
}
