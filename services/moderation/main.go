package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lovewall/pkg/cache"
	"lovewall/pkg/config"
	"lovewall/pkg/logger"
	"lovewall/pkg/queue"
)

const pendingReviewKey = "moderation:pending"

// The moderation worker drains new-post tasks from the queue and parks
// them on a redis list so the couple can review fresh wall posts from the
// admin view. It has no HTTP surface of its own.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v", err)
		panic(err)
	}

	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Error("Failed to connect to RabbitMQ: %v", err)
		panic(err)
	}

	err = queueClient.ConsumeNewPostTasks(func(task map[string]interface{}) error {
		postID, _ := task["post_id"].(string)
		author, _ := task["author"].(string)
		if postID == "" {
			return fmt.Errorf("task missing post_id: %+v", task)
		}

		entry, err := json.Marshal(task)
		if err != nil {
			return fmt.Errorf("failed to marshal task: %w", err)
		}

		ctx := context.Background()
		if err := redisClient.LPush(ctx, pendingReviewKey, entry).Err(); err != nil {
			return fmt.Errorf("failed to enqueue post for review: %w", err)
		}
		redisClient.LTrim(ctx, pendingReviewKey, 0, 999)
		redisClient.Expire(ctx, pendingReviewKey, 7*24*time.Hour)

		log.Info("Post %s by %s queued for review", postID, author)
		return nil
	})
	if err != nil {
		log.Error("Failed to start consumer: %v", err)
		panic(err)
	}

	log.Info("Moderation worker started, waiting for new posts")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down moderation worker...")

	queueClient.Close()
	if err := redisClient.Close(); err != nil {
		log.Error("Error closing Redis: %v", err)
	}

	log.Info("Moderation worker exited")
}
