package http

import (
	"errors"
	"net/http"

	"lovewall/pkg/logger"
	"lovewall/services/songs/internal/entity"
	"lovewall/services/songs/internal/usecase"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SongsHandler struct {
	songsUseCase usecase.SongsUseCase
	logger       *logger.Logger
}

func NewSongsHandler(songsUseCase usecase.SongsUseCase, logger *logger.Logger) *SongsHandler {
	return &SongsHandler{
		songsUseCase: songsUseCase,
		logger:       logger,
	}
}

type CreateRequestBody struct {
	SongTitle     string `json:"song_title" binding:"required"`
	Artist        string `json:"artist" binding:"required"`
	Album         string `json:"album"`
	AlbumArt      string `json:"album_art"`
	SongURL       string `json:"song_url"`
	RequesterName string `json:"requester_name"`
}

// CreateRequest godoc
// @Summary      Request a song for the dance floor
// @Description  Add a song to the request board. Title and artist are required; everything else (album, artwork, preview link, requester name) is optional. Anonymous requests are welcome.
// @Tags         songs
// @Accept       json
// @Produce      json
// @Param        request body CreateRequestBody true "Song request"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /songs [post]
func (h *SongsHandler) CreateRequest(c *gin.Context) {
	var body CreateRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	request := &entity.SongRequest{
		SongTitle:     body.SongTitle,
		Artist:        body.Artist,
		Album:         body.Album,
		AlbumArt:      body.AlbumArt,
		SongURL:       body.SongURL,
		RequesterName: body.RequesterName,
	}

	if err := h.songsUseCase.CreateRequest(request); err != nil {
		if errors.Is(err, usecase.ErrMissingTrack) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("Failed to create song request: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create song request"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"request": request})
}

// ListRequests godoc
// @Summary      List song requests
// @Description  Get the request board ranked by upvotes, most wanted first. Ties go to the newest request.
// @Tags         songs
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /songs [get]
func (h *SongsHandler) ListRequests(c *gin.Context) {
	requests, err := h.songsUseCase.ListRequests()
	if err != nil {
		h.logger.Error("Failed to list song requests: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch song requests"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"requests": requests, "count": len(requests)})
}

// UpvoteRequest godoc
// @Summary      Upvote a song request
// @Description  Bump a request's upvote count by one. Votes are counted atomically, so simultaneous taps all land.
// @Tags         songs
// @Produce      json
// @Param        id path string true "Request ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /songs/{id}/upvote [post]
func (h *SongsHandler) UpvoteRequest(c *gin.Context) {
	request, err := h.songsUseCase.UpvoteRequest(c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Song request not found"})
			return
		}
		h.logger.Error("Failed to upvote song request: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upvote song request"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"request": request})
}

// SearchTracks godoc
// @Summary      Search the music catalog
// @Description  Look up songs by title or artist while the guest types. Returns up to 5 matches; upstream hiccups just return an empty list.
// @Tags         songs
// @Produce      json
// @Param        term query string true "Search term"
// @Success      200  {object}  map[string]interface{}
// @Router       /songs/search [get]
func (h *SongsHandler) SearchTracks(c *gin.Context) {
	results := h.songsUseCase.SearchTracks(c.Request.Context(), c.Query("term"))
	if results == nil {
		results = []entity.TrackResult{}
	}

	c.JSON(http.StatusOK, gin.H{"results": results, "count": len(results)})
}

// DeleteRequest godoc
// @Summary      Delete a song request
// @Description  Remove a request from the board. Moderation only.
// @Tags         songs
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Request ID"
// @Success      200  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /songs/{id} [delete]
func (h *SongsHandler) DeleteRequest(c *gin.Context) {
	if err := h.songsUseCase.DeleteRequest(c.Param("id")); err != nil {
		h.logger.Error("Failed to delete song request: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete song request"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Song request deleted successfully"})
}
