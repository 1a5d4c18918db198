package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"lovewall/pkg/logger"
	"lovewall/pkg/queue"
	"lovewall/services/wall/internal/entity"
	"lovewall/services/wall/internal/repo/persistent"

	"github.com/redis/go-redis/v9"
)

var (
	// ErrAllUploadsFailed means every file in the batch errored; no post is created.
	ErrAllUploadsFailed = errors.New("all media uploads failed")
	// ErrSubmissionInFlight rejects a second submission while one is running.
	ErrSubmissionInFlight = errors.New("another submission is already in progress")
	// ErrEmptyPost rejects submissions with neither a message nor media.
	ErrEmptyPost = errors.New("post must contain a message or media")
)

type WallUseCase interface {
	CreatePost(author, message string, files []entity.UploadFile) (*entity.Post, []entity.UploadStatus, error)
	ListPosts() ([]*entity.Post, error)
	GetPost(postID string) (*entity.Post, error)
	DeletePost(postID string) error
}

type wallUseCase struct {
	postRepo    persistent.PostRepository
	pipeline    *Pipeline
	postsStore  *PostsStore
	redisClient *redis.Client
	queueClient *queue.Client
	logger      *logger.Logger

	// Guards the submit path: one batch may be submitting at a time.
	submitting atomic.Bool
}

func NewWallUseCase(
	postRepo persistent.PostRepository,
	pipeline *Pipeline,
	postsStore *PostsStore,
	redisClient *redis.Client,
	queueClient *queue.Client,
	logger *logger.Logger,
) WallUseCase {
	return &wallUseCase{
		postRepo:    postRepo,
		pipeline:    pipeline,
		postsStore:  postsStore,
		redisClient: redisClient,
		queueClient: queueClient,
		logger:      logger,
	}
}

// CreatePost runs the full submission: normalize and upload the media batch
// sequentially, then persist one post referencing everything that made it.
// A batch succeeds if at least one file uploaded; a text-only submission
// (no files selected) is also fine. Uploaded objects are not rolled back
// when the insert fails afterwards.
func (uc *wallUseCase) CreatePost(author, message string, files []entity.UploadFile) (*entity.Post, []entity.UploadStatus, error) {
	if !uc.submitting.CompareAndSwap(false, true) {
		return nil, nil, ErrSubmissionInFlight
	}
	defer uc.submitting.Store(false)

	if len(files) == 0 && message == "" {
		return nil, nil, ErrEmptyPost
	}

	var urls []string
	var statuses []entity.UploadStatus

	if len(files) > 0 {
		batch := uc.pipeline.NewBatch(files)
		if advisory := batch.Advisory(); advisory != "" {
			uc.logger.Warn("Batch truncated: %s", advisory)
		}

		uc.pipeline.GeneratePreviews(batch)

		result := uc.pipeline.Run(batch)
		statuses = result.Statuses
		if len(result.URLs) == 0 {
			return nil, statuses, ErrAllUploadsFailed
		}
		if result.Errored > 0 {
			uc.logger.Warn("Batch finished with %d of %d files errored", result.Errored, batch.Size())
		}
		urls = result.URLs
	}

	if author == "" {
		author = "Anonymous"
	}

	post := &entity.Post{
		Author:    author,
		Message:   message,
		CreatedAt: time.Now(),
	}
	if len(urls) > 0 {
		post.ImageURL = urls[0]
		post.AdditionalMedia = urls[1:]
	}

	if err := uc.postRepo.Create(post); err != nil {
		// Stored objects stay behind unreferenced; reconciliation is a
		// manual cleanup, not worth a delete fan-out here.
		return nil, statuses, fmt.Errorf("failed to create post: %w", err)
	}

	uc.postsStore.PrependLocal(post)
	uc.cachePost(post)

	if uc.queueClient != nil {
		go uc.publishNewPostTask(post)
	}

	return post, statuses, nil
}

// ListPosts serves the cached feed, refetching only when the cache's
// cooldown and staleness rules allow it.
func (uc *wallUseCase) ListPosts() ([]*entity.Post, error) {
	if !uc.postsStore.BeginFetch() {
		return uc.postsStore.Snapshot(), nil
	}

	posts, err := uc.postRepo.List()
	if err != nil {
		uc.postsStore.FailFetch()
		if snapshot := uc.postsStore.Snapshot(); len(snapshot) > 0 {
			uc.logger.Warn("Feed refresh failed, serving cached posts: %v", err)
			return snapshot, nil
		}
		return nil, fmt.Errorf("failed to fetch posts: %w", err)
	}

	uc.postsStore.CompleteFetch(posts)
	return posts, nil
}

func (uc *wallUseCase) GetPost(postID string) (*entity.Post, error) {
	return uc.postRepo.GetByID(postID)
}

func (uc *wallUseCase) DeletePost(postID string) error {
	if err := uc.postRepo.Delete(postID); err != nil {
		return err
	}

	uc.postsStore.Remove(postID)

	if uc.redisClient != nil {
		ctx := context.Background()
		uc.redisClient.Del(ctx, fmt.Sprintf("post:%s", postID))
	}

	return nil
}

func (uc *wallUseCase) cachePost(post *entity.Post) {
	if uc.redisClient == nil {
		return
	}

	ctx := context.Background()
	postKey := fmt.Sprintf("post:%s", post.ID)
	postData := map[string]interface{}{
		"id":         post.ID,
		"author":     post.Author,
		"message":    post.Message,
		"image_url":  post.ImageURL,
		"created_at": post.CreatedAt.Format(time.RFC3339),
	}

	if len(post.AdditionalMedia) > 0 {
		mediaJSON, _ := json.Marshal(post.AdditionalMedia)
		postData["additional_media"] = string(mediaJSON)
	}

	for k, v := range postData {
		uc.redisClient.HSet(ctx, postKey, k, v)
	}
	uc.redisClient.Expire(ctx, postKey, 24*time.Hour)
}

func (uc *wallUseCase) publishNewPostTask(post *entity.Post) {
	task := map[string]interface{}{
		"type":       "new_post",
		"post_id":    post.ID,
		"author":     post.Author,
		"has_media":  post.ImageURL != "",
		"created_at": post.CreatedAt.Format(time.RFC3339),
	}

	if err := uc.queueClient.PublishNewPostTask(task); err != nil {
		uc.logger.Error("Failed to publish moderation task for post %s: %v", post.ID, err)
	}
}
