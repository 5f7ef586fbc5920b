package chat

import (
	"errors"
	"net/http"

	"nerdspace/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true }, // Allow all origins (configure in prod)
}

type Handler struct {
	hub     *Hub
	service *Service
}

func NewHandler(hub *Hub, service *Service) *Handler {
	return &Handler{hub: hub, service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/chat/ws", h.ServeWS)
	rg.GET("/chat/:conversation_id/messages", h.History)
	rg.POST("/chat/:conversation_id/messages", h.PostMessage)
}

// ServeWS upgrades the connection and subscribes it to the conversation the
// client names. The conversation ID is client-held state passed explicitly.
func (h *Handler) ServeWS(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return // Upgrade already wrote the error response
	}

	h.hub.ServeWS(conn, userID, []string{c.Query("conversation_id")})
}

type postMessageRequest struct {
	Body string `json:"body" binding:"required"`
}

func (h *Handler) PostMessage(c *gin.Context) {
	var req postMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Message body is required")
		return
	}

	msg, err := h.service.PostMessage(c.Request.Context(), c.Param("conversation_id"), c.GetInt64("user_id"), req.Body)
	if err != nil {
		if errors.Is(err, ErrEmptyMessage) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Message body is empty")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to send message")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"message": msg})
}

func (h *Handler) History(c *gin.Context) {
	messages, err := h.service.History(c.Request.Context(), c.Param("conversation_id"), 50)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load history")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"messages": messages})
}
