package calendar

import (
	"errors"
	"net/http"

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
	rg.GET("/admin/calendar", h.DayGrid)
}

func (h *Handler) DayGrid(c *gin.Context) {
	grid, err := h.service.DayGrid(c.Request.Context(), c.Query("date"))
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "date must be YYYY-MM-DD")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build calendar")
		return
	}

	response.Success(c, http.StatusOK, grid)
}
