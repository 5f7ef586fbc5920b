package availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"nerdspace/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/rooms/:id/availability", h.BookedSlots)
	rg.GET("/rooms/:id/start-options", h.StartOptions)
	rg.POST("/availability/check", h.CheckSlot)
}

func (h *Handler) BookedSlots(c *gin.Context) {
	roomID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid room ID")
		return
	}
	date := c.Query("date")

	slots, err := h.service.BookedSlots(c.Request.Context(), roomID, date)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "date must be YYYY-MM-DD")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load availability")
		return
	}

	response.Success(c, http.StatusOK, SlotsResponse{
		RoomID:      roomID,
		Date:        date,
		BookedSlots: slots,
	})
}

func (h *Handler) StartOptions(c *gin.Context) {
	roomID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid room ID")
		return
	}
	options, err := h.service.StartOptions(c.Request.Context(), roomID, c.Query("date"), time.Now())
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "date must be YYYY-MM-DD")
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Room not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load start options")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"options": options})
}

// CheckSlot is the authoritative pre-submission check. A negative answer is
// recoverable: the client prompts for a different range, it never retries.
func (h *Handler) CheckSlot(c *gin.Context) {
	var req CheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	result, err := h.service.CheckSlot(c.Request.Context(), req.RoomID, req.Date, req.StartTime, req.EndTime)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid date or time range")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to check slot")
		return
	}

	response.Success(c, http.StatusOK, result)
}
