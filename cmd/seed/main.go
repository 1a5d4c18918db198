package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"lovewall/pkg/cache"
	"lovewall/pkg/config"
	"lovewall/pkg/database"
	"lovewall/pkg/logger"
	"lovewall/pkg/models"
	"lovewall/pkg/storage"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Seeds the wall and the song request board with demo content so the PWA
// has something to show before the first guest posts.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	store, err := storage.NewS3Store(cfg)
	if err != nil {
		log.Error("Failed to create S3 store: %v", err)
		panic(err)
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v", err)
		panic(err)
	}

	if err := seedWallPosts(db, store, redisClient, log); err != nil {
		log.Error("Failed to seed wall posts: %v", err)
		panic(err)
	}

	if err := seedSongRequests(db, log); err != nil {
		log.Error("Failed to seed song requests: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seedWallPosts(db *gorm.DB, store storage.ObjectStore, redisClient *redis.Client, log *logger.Logger) error {
	httpClient := &http.Client{
		Timeout: 30 * time.Second,
	}

	demoPosts := []struct {
		author  string
		message string
		images  int
	}{
		{"Obose & Unwana", "Welcome to our wall of love! Share your photos and wishes with us.", 1},
		{"Michael", "Congratulations to the most beautiful couple!", 2},
		{"Lisa", "What a wonderful celebration. Wishing you a lifetime of happiness!", 1},
		{"Anonymous", "So happy to be part of your special day.", 0},
	}

	for i, demo := range demoPosts {
		var existing models.Post
		result := db.Where("author = ? AND message = ?", demo.author, demo.message).First(&existing)
		if result.Error == nil {
			log.Info("Post by %s already exists, skipping", demo.author)
			continue
		}

		urls := make([]string, 0, demo.images)
		for j := 0; j < demo.images; j++ {
			url, err := uploadPlaceholderImage(store, httpClient, i, j, log)
			if err != nil {
				log.Error("Failed to upload seed image: %v", err)
				continue
			}
			urls = append(urls, url)
			time.Sleep(200 * time.Millisecond)
		}

		post := &models.Post{
			Author:  demo.author,
			Message: demo.message,
		}
		if len(urls) > 0 {
			post.ImageURL = urls[0]
			post.AdditionalMedia = urls[1:]
		}

		if err := post.BeforeCreate(nil); err != nil {
			return fmt.Errorf("failed to generate post ID: %w", err)
		}
		if err := db.Create(post).Error; err != nil {
			return fmt.Errorf("failed to create post: %w", err)
		}

		log.Info("Created post by %s", post.Author)
		cacheSeedPost(redisClient, post)
	}

	return nil
}

// uploadPlaceholderImage pulls a random photo from picsum and stores it
// under the wall's namespace.
func uploadPlaceholderImage(store storage.ObjectStore, httpClient *http.Client, postIndex, imageIndex int, log *logger.Logger) (string, error) {
	seedURL := fmt.Sprintf("https://picsum.photos/seed/lovewall-%d-%d/1200/800", postIndex, imageIndex)

	log.Info("Fetching placeholder image from %s", seedURL)
	resp, err := httpClient.Get(seedURL)
	if err != nil {
		return "", fmt.Errorf("failed to fetch placeholder image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("picsum returned status %d", resp.StatusCode)
	}

	imageData, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read image data: %w", err)
	}
	if len(imageData) == 0 {
		return "", fmt.Errorf("received empty image data")
	}

	key := fmt.Sprintf("wall-of-love/seed-%d-%d.jpg", postIndex, imageIndex)
	if err := store.Upload(key, bytes.NewReader(imageData), "image/jpeg"); err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	url := store.PublicURL(key)
	log.Info("Image uploaded successfully: %s", url)
	return url, nil
}

func cacheSeedPost(redisClient *redis.Client, post *models.Post) {
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
		mediaJSON, _ := json.Marshal([]string(post.AdditionalMedia))
		postData["additional_media"] = string(mediaJSON)
	}

	for k, v := range postData {
		redisClient.HSet(ctx, postKey, k, v)
	}
	redisClient.Expire(ctx, postKey, 24*time.Hour)
}

func seedSongRequests(db *gorm.DB, log *logger.Logger) error {
	demoRequests := []models.SongRequest{
		{
			SongTitle:     "Perfect",
			Artist:        "Ed Sheeran",
			Album:         "Divide",
			RequesterName: "Lisa",
			Upvotes:       5,
		},
		{
			SongTitle:     "All of Me",
			Artist:        "John Legend",
			Album:         "Love in the Future",
			RequesterName: "Michael",
			Upvotes:       3,
		},
		{
			SongTitle:     "Essence",
			Artist:        "Wizkid",
			Album:         "Made in Lagos",
			RequesterName: "Anonymous",
			Upvotes:       7,
		},
	}

	for _, demo := range demoRequests {
		var existing models.SongRequest
		result := db.Where("song_title = ? AND artist = ?", demo.SongTitle, demo.Artist).First(&existing)
		if result.Error == nil {
			log.Info("Song request %s already exists, skipping", demo.SongTitle)
			continue
		}

		request := demo
		if err := request.BeforeCreate(nil); err != nil {
			return fmt.Errorf("failed to generate song request ID: %w", err)
		}
		if err := db.Create(&request).Error; err != nil {
			return fmt.Errorf("failed to create song request: %w", err)
		}

		log.Info("Created song request: %s - %s", request.Artist, request.SongTitle)
	}

	return nil
}
