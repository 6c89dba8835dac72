package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/irisdrone/tracker/auth"
	"github.com/irisdrone/tracker/models"
)

// Store is the data the handlers read.
type Store interface {
	Employees(ctx context.Context) ([]models.Employee, error)
	EmployeesByID(ctx context.Context, id int64) ([]models.Employee, error)
	AppUsage(ctx context.Context) ([]models.AppUsage, error)
	WebsiteUsage(ctx context.Context) ([]models.WebsiteUsage, error)
}

// Handler serves the tracker API.
type Handler struct {
	store Store
	auth  *auth.Service
}

func New(store Store, authService *auth.Service) *Handler {
	return &Handler{store: store, auth: authService}
}

// Home handles GET /
func (h *Handler) Home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Employee Tracker Backend API"})
}

// Health handles GET /health
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// DownloadAgent handles GET /downloads/:platform
func (h *Handler) DownloadAgent(c *gin.Context) {
	platform := c.Param("platform")
	c.JSON(http.StatusOK, gin.H{
		"message": "Downloading " + platform + " agent. In production, serve actual file.",
	})
}
