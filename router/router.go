package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/irisdrone/tracker/auth"
	"github.com/irisdrone/tracker/handlers"
	"github.com/irisdrone/tracker/middleware"
)

// Options configures New.
type Options struct {
	// CORSOrigins are allowed to call /api routes from a browser.
	CORSOrigins []string
}

// New builds the HTTP router with every tracker route registered.
func New(h *handlers.Handler, authService *auth.Service, opts Options) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.Logger(), middleware.Metrics())

	// CORS runs globally so preflight requests reach it before routing.
	if len(opts.CORSOrigins) > 0 {
		config := cors.DefaultConfig()
		config.AllowOrigins = opts.CORSOrigins
		config.AllowMethods = []string{"GET", "POST", "OPTIONS"}
		config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader}
		router.Use(cors.New(config))
	}

	router.GET("/", h.Home)
	router.GET("/health", h.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/downloads/:platform", h.DownloadAgent)

	// API Routes
	api := router.Group("/api")
	{
		api.POST("/auth/login", h.Login)

		protected := api.Group("", auth.RequireAuth(authService))
		{
			protected.GET("/employees", h.GetEmployees)

			analytics := protected.Group("/analytics")
			{
				analytics.GET("/productivity", h.GetProductivity)
				analytics.GET("/applications", h.GetApplications)
				analytics.GET("/websites", h.GetWebsites)
			}

			protected.POST("/reports/generate", h.GenerateReport)
			protected.POST("/settings/update", h.UpdateSettings)
		}
	}

	return router
}
