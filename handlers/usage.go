package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/irisdrone/tracker/logging"
	"github.com/irisdrone/tracker/models"
)

type AppUsageResponse struct {
	App      string               `json:"app"`
	Time     float64              `json:"time"`
	Category models.UsageCategory `json:"category"`
	Icon     string               `json:"icon"`
}

type WebsiteUsageResponse struct {
	URL      string               `json:"url"`
	Time     float64              `json:"time"`
	Category models.UsageCategory `json:"category"`
	Visits   int                  `json:"visits"`
}

// GetApplications handles GET /api/analytics/applications
func (h *Handler) GetApplications(c *gin.Context) {
	apps, err := h.store.AppUsage(c.Request.Context())
	if err != nil {
		logging.Error().Err(err).Msg("Failed to fetch application usage")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch applications"})
		return
	}

	result := make([]AppUsageResponse, len(apps))
	for i, a := range apps {
		result[i] = AppUsageResponse{
			App:      a.AppName,
			Time:     a.TimeSpent,
			Category: a.Category,
			Icon:     a.Icon,
		}
	}
	c.JSON(http.StatusOK, result)
}

// GetWebsites handles GET /api/analytics/websites
func (h *Handler) GetWebsites(c *gin.Context) {
	sites, err := h.store.WebsiteUsage(c.Request.Context())
	if err != nil {
		logging.Error().Err(err).Msg("Failed to fetch website usage")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch websites"})
		return
	}

	result := make([]WebsiteUsageResponse, len(sites))
	for i, s := range sites {
		result[i] = WebsiteUsageResponse{
			URL:      s.URL,
			Time:     s.TimeSpent,
			Category: s.Category,
			Visits:   s.Visits,
		}
	}
	c.JSON(http.StatusOK, result)
}
