package pricing

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
	rg.POST("/pricing/quote", h.Quote)
}

// Quote returns the price breakdown for the requested duration and party
// size. Inputs that cannot be priced yield a null result rather than an
// error: the form treats "no quote" as "cannot submit yet".
func (h *Handler) Quote(c *gin.Context) {
	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	breakdown, err := h.service.Quote(c.Request.Context(), req.ServiceType, req.DurationMinutes, req.Guests)
	if err != nil {
		switch {
		case errors.Is(err, ErrNoQuote):
			response.Success(c, http.StatusOK, nil)
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid quote inputs")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to calculate price")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"quote": breakdown})
}
