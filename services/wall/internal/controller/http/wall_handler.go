package http

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"lovewall/pkg/logger"
	"lovewall/services/wall/internal/entity"
	"lovewall/services/wall/internal/usecase"

	"github.com/gin-gonic/gin"
)

type WallHandler struct {
	wallUseCase usecase.WallUseCase
	carousels   *carouselState
	maxFiles    int
	logger      *logger.Logger
}

func NewWallHandler(wallUseCase usecase.WallUseCase, maxFiles int, logger *logger.Logger) *WallHandler {
	if maxFiles <= 0 {
		maxFiles = usecase.MaxBatchFiles
	}
	return &WallHandler{
		wallUseCase: wallUseCase,
		carousels:   newCarouselState(),
		maxFiles:    maxFiles,
		logger:      logger,
	}
}

type CreatePostRequest struct {
	Author  string `form:"author"`
	Message string `form:"message"`
}

// CreatePost godoc
// @Summary      Share a message on the wall of love
// @Description  Create a wall post with an optional message and up to 10 photos/videos. Selections beyond 10 are kept only up to the cap and an advisory is returned. The post is created as long as at least one file uploads (or the submission is text-only).
// @Tags         posts
// @Accept       multipart/form-data
// @Produce      json
// @Param        author formData string false "Guest name (defaults to Anonymous)"
// @Param        message formData string false "Message for the couple"
// @Param        media formData file false "Photo or video files (jpg/png/heic/mp4/mov) - multiple files allowed"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /posts [post]
func (h *WallHandler) CreatePost(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var fileHeaders []*multipart.FileHeader
	if form, err := c.MultipartForm(); err == nil {
		fileHeaders = form.File["media"]
	}

	files, err := readUploadFiles(fileHeaders)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var advisory string
	if len(files) > h.maxFiles {
		advisory = fmt.Sprintf("Only the first %d files were kept", h.maxFiles)
	}

	post, statuses, err := h.wallUseCase.CreatePost(req.Author, req.Message, files)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmptyPost):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, usecase.ErrSubmissionInFlight):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, usecase.ErrAllUploadsFailed):
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error(), "uploads": statuses})
		default:
			h.logger.Error("Failed to create post: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		}
		return
	}

	response := gin.H{"post": post, "uploads": statuses}
	if advisory != "" {
		response["advisory"] = advisory
	}
	c.JSON(http.StatusCreated, response)
}

// ListPosts godoc
// @Summary      List wall posts
// @Description  Get all wall posts, newest first. Served from an in-process cache that refreshes at most once a minute.
// @Tags         posts
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /posts [get]
func (h *WallHandler) ListPosts(c *gin.Context) {
	posts, err := h.wallUseCase.ListPosts()
	if err != nil {
		h.logger.Error("Failed to list posts: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts, "count": len(posts)})
}

// DeletePost godoc
// @Summary      Delete a wall post
// @Description  Remove a post from the wall. Moderation only; stored media objects are left in place.
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Success      200  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /posts/{id} [delete]
func (h *WallHandler) DeletePost(c *gin.Context) {
	postID := c.Param("id")

	if err := h.wallUseCase.DeletePost(postID); err != nil {
		h.logger.Error("Failed to delete post: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete post"})
		return
	}

	h.carousels.drop(postID)
	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}

// Carousel godoc
// @Summary      Navigate a post's media carousel
// @Description  Move the post's current slide. Action is one of next, prev or select (select requires an index). Navigation wraps around circularly.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        id path string true "Post ID"
// @Param        action path string true "Navigation action" Enums(next, prev, select)
// @Param        index query int false "Target index (select only)"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id}/carousel/{action} [post]
func (h *WallHandler) Carousel(c *gin.Context) {
	postID := c.Param("id")

	post, err := h.wallUseCase.GetPost(postID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	carousel := h.carousels.get(postID, post.MediaURLs())

	switch c.Param("action") {
	case "next":
		err = carousel.next()
	case "prev":
		err = carousel.prev()
	case "select":
		index, convErr := strconv.Atoi(c.Query("index"))
		if convErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "index query parameter is required"})
			return
		}
		err = carousel.selectIndex(index)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "action must be next, prev or select"})
		return
	}

	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"index": carousel.index, "url": carousel.current()})
}

// readUploadFiles buffers the selected files into memory. The pipeline owns
// truncation; everything selected is passed through.
func readUploadFiles(headers []*multipart.FileHeader) ([]entity.UploadFile, error) {
	files := make([]entity.UploadFile, 0, len(headers))
	for _, header := range headers {
		src, err := header.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open file %s: %w", header.Filename, err)
		}

		data, err := io.ReadAll(src)
		src.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read file %s: %w", header.Filename, err)
		}

		files = append(files, entity.UploadFile{
			Name:        header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Data:        data,
		})
	}
	return files, nil
}
