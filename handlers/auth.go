package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/irisdrone/tracker/auth"
	"github.com/irisdrone/tracker/logging"
	"github.com/irisdrone/tracker/metrics"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

// Login handles POST /api/auth/login
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	token, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			metrics.RecordLogin("invalid_credentials")
			logging.Info().Str("username", req.Username).Msg("Login rejected")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		metrics.RecordLogin("error")
		logging.Error().Err(err).Str("username", req.Username).Msg("Login failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	metrics.RecordLogin("success")
	logging.Info().Str("username", req.Username).Msg("Login succeeded")
	c.JSON(http.StatusOK, LoginResponse{Token: token})
}
