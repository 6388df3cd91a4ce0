package history

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Handler serves the history view. Authenticated users read the persistent
// log; guests read their session's slice of the process-local fallback bucket.
type Handler struct {
	records      Repository
	guestRecords Repository
}

func NewHandler(records, guestRecords Repository) *Handler {
	return &Handler{records: records, guestRecords: guestRecords}
}

func (h *Handler) pick(c *gin.Context) (Repository, string) {
	userID := c.GetString("userID")
	if userID == "" {
		return h.guestRecords, GuestKey(c.GetString("guestID"))
	}
	return h.records, userID
}

func (h *Handler) List(c *gin.Context) {
	repo, userID := h.pick(c)

	limit := DefaultListLimit
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	records, err := repo.List(c.Request.Context(), userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if records == nil {
		records = []ScanRecord{}
	}

	c.JSON(http.StatusOK, gin.H{"history": records})
}

func (h *Handler) Clear(c *gin.Context) {
	repo, userID := h.pick(c)

	if err := repo.Clear(c.Request.Context(), userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "history cleared"})
}
