package handlers

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/irisdrone/tracker/auth"
	"github.com/irisdrone/tracker/logging"
)

// UpdateSettings handles POST /api/settings/update
//
// Nothing is persisted: the body is validated as JSON and echoed back.
func (h *Handler) UpdateSettings(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil || len(bytes.TrimSpace(body)) == 0 || !json.Valid(body) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if user, ok := auth.CurrentUser(c); ok {
		logging.Debug().Str("username", user.Username).Int("bytes", len(body)).Msg("Settings echoed")
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Settings updated successfully",
		"settings": json.RawMessage(body),
	})
}
