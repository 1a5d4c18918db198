package http

import (
	"errors"
	"net/http"
	"strconv"

	"lovewall/pkg/logger"
	"lovewall/services/program/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ProgramHandler struct {
	programUseCase usecase.ProgramUseCase
	logger         *logger.Logger
}

func NewProgramHandler(programUseCase usecase.ProgramUseCase, logger *logger.Logger) *ProgramHandler {
	return &ProgramHandler{
		programUseCase: programUseCase,
		logger:         logger,
	}
}

// ListEvents godoc
// @Summary      List the weekend's events
// @Description  Get every celebration on the program in chronological order, each with its venue and full schedule.
// @Tags         program
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /events [get]
func (h *ProgramHandler) ListEvents(c *gin.Context) {
	events := h.programUseCase.ListEvents()
	c.JSON(http.StatusOK, gin.H{"events": events, "count": len(events)})
}

// GetEvent godoc
// @Summary      Get one event's program
// @Description  Get a single event by its position on the program, including the timed schedule.
// @Tags         program
// @Produce      json
// @Param        id path int true "Event ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /events/{id} [get]
func (h *ProgramHandler) GetEvent(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "event id must be a number"})
		return
	}

	event, err := h.programUseCase.GetEvent(id)
	if err != nil {
		if errors.Is(err, usecase.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}
		h.logger.Error("Failed to get event: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get event"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"event": event})
}
