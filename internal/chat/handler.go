package chat

import (
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	client    Client
	wordLimit int
}

func NewHandler(client Client) *Handler {
	limit := DefaultWordLimit
	if v := os.Getenv("CHAT_WORD_LIMIT"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	return &Handler{client: client, wordLimit: limit}
}

type askRequest struct {
	Message string `json:"message"`
}

func (h *Handler) Ask(c *gin.Context) {
	var req askRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	reply, err := h.client.Ask(c.Request.Context(), req.Message, h.wordLimit)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "assistant unavailable: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": reply})
}
