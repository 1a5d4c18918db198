package usecase

import (
	"errors"
	"testing"
	"time"

	"lovewall/pkg/logger"
	"lovewall/services/wall/internal/entity"
	"lovewall/services/wall/internal/repo/persistent"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockPostRepository is a mock implementation of persistent.PostRepository
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(post *entity.Post) error {
	args := m.Called(post)
	if args.Error(0) == nil && post.ID == "" {
		post.ID = "post-1"
	}
	return args.Error(0)
}

func (m *MockPostRepository) GetByID(id string) (*entity.Post, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostRepository) List() ([]*entity.Post, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Post), args.Error(1)
}

func (m *MockPostRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

var _ persistent.PostRepository = (*MockPostRepository)(nil)

func newTestUseCase(repo *MockPostRepository, store *fakeStore) WallUseCase {
	log := logger.New()
	return NewWallUseCase(repo, newTestPipeline(store), NewPostsStore(), nil, nil, log)
}

func TestCreatePost_WithMedia(t *testing.T) {
	repo := new(MockPostRepository)
	repo.On("Create", mock.AnythingOfType("*entity.Post")).Return(nil)

	uc := newTestUseCase(repo, &fakeStore{})

	post, statuses, err := uc.CreatePost("Lisa", "So happy for both of you!", imageFiles(3))

	assert.NoError(t, err)
	assert.NotNil(t, post)
	assert.Equal(t, "Lisa", post.Author)
	assert.Equal(t, "https://cdn.test/wall-of-love/1700000000000-ab12cd34-photo-0.jpg", post.ImageURL)
	assert.Equal(t, []string{
		"https://cdn.test/wall-of-love/1700000000000-ab12cd34-photo-1.jpg",
		"https://cdn.test/wall-of-love/1700000000000-ab12cd34-photo-2.jpg",
	}, post.AdditionalMedia)
	assert.Len(t, statuses, 3)

	repo.AssertExpectations(t)
}

func TestCreatePost_PartialFailureStillPosts(t *testing.T) {
	repo := new(MockPostRepository)
	repo.On("Create", mock.AnythingOfType("*entity.Post")).Return(nil)

	uc := newTestUseCase(repo, &fakeStore{failSubs: []string{"photo-1"}})

	post, statuses, err := uc.CreatePost("", "", imageFiles(3))

	assert.NoError(t, err)
	assert.Equal(t, "Anonymous", post.Author)
	assert.Equal(t, "https://cdn.test/wall-of-love/1700000000000-ab12cd34-photo-0.jpg", post.ImageURL)
	// The errored file is simply absent from the post
	assert.Equal(t, []string{"https://cdn.test/wall-of-love/1700000000000-ab12cd34-photo-2.jpg"}, post.AdditionalMedia)
	assert.Equal(t, entity.StateError, statuses[1].State)
}

func TestCreatePost_SingleSuccess(t *testing.T) {
	repo := new(MockPostRepository)
	repo.On("Create", mock.AnythingOfType("*entity.Post")).Return(nil)

	uc := newTestUseCase(repo, &fakeStore{failSubs: []string{"photo-1", "photo-2"}})

	post, _, err := uc.CreatePost("Michael", "", imageFiles(3))

	assert.NoError(t, err)
	assert.Equal(t, "https://cdn.test/wall-of-love/1700000000000-ab12cd34-photo-0.jpg", post.ImageURL)
	assert.Empty(t, post.AdditionalMedia)
}

func TestCreatePost_AllUploadsFailed(t *testing.T) {
	repo := new(MockPostRepository)

	uc := newTestUseCase(repo, &fakeStore{failSubs: []string{"photo"}})

	post, statuses, err := uc.CreatePost("Lisa", "hello", imageFiles(3))

	assert.ErrorIs(t, err, ErrAllUploadsFailed)
	assert.Nil(t, post)
	assert.Len(t, statuses, 3)

	// No post is persisted when nothing uploaded
	repo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCreatePost_TextOnly(t *testing.T) {
	repo := new(MockPostRepository)
	repo.On("Create", mock.AnythingOfType("*entity.Post")).Return(nil)

	uc := newTestUseCase(repo, &fakeStore{})

	post, statuses, err := uc.CreatePost("Unwana", "We can't wait to celebrate with everyone!", nil)

	assert.NoError(t, err)
	assert.Empty(t, post.ImageURL)
	assert.Empty(t, statuses)
	repo.AssertExpectations(t)
}

func TestCreatePost_EmptySubmissionRejected(t *testing.T) {
	repo := new(MockPostRepository)

	uc := newTestUseCase(repo, &fakeStore{})

	_, _, err := uc.CreatePost("Lisa", "", nil)

	assert.ErrorIs(t, err, ErrEmptyPost)
	repo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCreatePost_RepositoryFailure(t *testing.T) {
	repo := new(MockPostRepository)
	repo.On("Create", mock.AnythingOfType("*entity.Post")).Return(errors.New("insert failed"))

	uc := newTestUseCase(repo, &fakeStore{})

	post, statuses, err := uc.CreatePost("Lisa", "", imageFiles(2))

	// Uploads succeeded but the insert failed; stored objects stay behind
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrAllUploadsFailed)
	assert.Nil(t, post)
	assert.Len(t, statuses, 2)
}

func TestCreatePost_PrependsToFeedCache(t *testing.T) {
	repo := new(MockPostRepository)
	repo.On("Create", mock.AnythingOfType("*entity.Post")).Return(nil)
	repo.On("List").Return([]*entity.Post{}, nil)

	uc := newTestUseCase(repo, &fakeStore{})

	// Prime the cache with an empty fetch
	_, err := uc.ListPosts()
	assert.NoError(t, err)

	post, _, err := uc.CreatePost("Lisa", "hi", imageFiles(1))
	assert.NoError(t, err)

	// The new post is served from cache without a second repository read
	posts, err := uc.ListPosts()
	assert.NoError(t, err)
	assert.Len(t, posts, 1)
	assert.Equal(t, post.ID, posts[0].ID)

	repo.AssertNumberOfCalls(t, "List", 1)
}

func TestListPosts_FetchSuppressedWithinCooldown(t *testing.T) {
	repo := new(MockPostRepository)
	repo.On("List").Return([]*entity.Post{{ID: "a"}}, nil)

	uc := newTestUseCase(repo, &fakeStore{})

	first, err := uc.ListPosts()
	assert.NoError(t, err)
	assert.Len(t, first, 1)

	second, err := uc.ListPosts()
	assert.NoError(t, err)
	assert.Len(t, second, 1)

	// Only one network read for the two calls
	repo.AssertNumberOfCalls(t, "List", 1)
}

func TestListPosts_ErrorServesStaleCache(t *testing.T) {
	repo := new(MockPostRepository)
	repo.On("List").Return([]*entity.Post{{ID: "a"}}, nil).Once()
	repo.On("List").Return(nil, errors.New("db down"))

	uc := newTestUseCase(repo, &fakeStore{}).(*wallUseCase)

	posts, err := uc.ListPosts()
	assert.NoError(t, err)
	assert.Len(t, posts, 1)

	// Make the cache stale, then fail the refresh
	uc.postsStore.lastFetched = uc.postsStore.lastFetched.Add(-time.Hour)

	posts, err = uc.ListPosts()
	assert.NoError(t, err)
	assert.Len(t, posts, 1)
	assert.Equal(t, "a", posts[0].ID)
}

func TestDeletePost_RemovesFromCache(t *testing.T) {
	repo := new(MockPostRepository)
	repo.On("List").Return([]*entity.Post{{ID: "a"}, {ID: "b"}}, nil)
	repo.On("Delete", "a").Return(nil)

	uc := newTestUseCase(repo, &fakeStore{})

	_, err := uc.ListPosts()
	assert.NoError(t, err)

	err = uc.DeletePost("a")
	assert.NoError(t, err)

	posts, err := uc.ListPosts()
	assert.NoError(t, err)
	assert.Len(t, posts, 1)
	assert.Equal(t, "b", posts[0].ID)
}
