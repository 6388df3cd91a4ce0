package scan

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stejus2010/stai-25/internal/history"
	"github.com/stejus2010/stai-25/internal/ocr"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Scan accepts a multipart label image. Works with or without a session; the
// auth middleware leaves userID empty for guests.
func (h *Handler) Scan(c *gin.Context) {
	userID := c.GetString("userID")
	guestKey := history.GuestKey(c.GetString("guestID"))

	file, header, err := c.Request.FormFile("label_image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "label_image is required"})
		return
	}
	defer file.Close()

	result, err := h.service.Scan(c.Request.Context(), userID, guestKey, file, header.Filename)
	if err != nil {
		if errors.Is(err, ocr.ErrRecognitionFailed) {
			c.JSON(http.StatusBadGateway, gin.H{"error": "OCR failed, try again"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if result.Denied != "" {
		// Denied at the analysis step still returns the extracted text so the
		// user keeps what the scan credit paid for.
		c.JSON(http.StatusTooManyRequests, gin.H{
			"error":          result.Denied,
			"extracted_text": result.Text,
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

type reanalyzeRequest struct {
	Text string `json:"text"`
}

// Reanalyze re-runs detection on edited OCR text without charging quota.
func (h *Handler) Reanalyze(c *gin.Context) {
	userID := c.GetString("userID")
	guestKey := history.GuestKey(c.GetString("guestID"))

	var req reanalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	result, err := h.service.Reanalyze(c.Request.Context(), userID, guestKey, req.Text)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
