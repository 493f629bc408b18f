package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/swawe/analytics-go/internal/api/handlers"
	"github.com/swawe/analytics-go/internal/api/middleware"
	"github.com/swawe/analytics-go/internal/service"
)

func NewRouter(salesService *service.SalesService, allowedOrigins []string) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	defaultOrigins := []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	corsConfig := cors.Config{
		AllowOrigins:     defaultOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(allowedOrigins) > 0 {
		normalizedOrigins, allowAll := normalizeAllowedOrigins(allowedOrigins)
		if allowAll {
			corsConfig.AllowOrigins = nil
			corsConfig.AllowOriginFunc = func(origin string) bool { return true }
		} else if len(normalizedOrigins) > 0 {
			corsConfig.AllowOrigins = normalizedOrigins
		}
	}
	router.Use(cors.New(corsConfig))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"connected": salesService.Connected(),
		})
	})

	apiGroup := router.Group("/api/v1")

	salesHandler := handlers.NewSalesHandler(salesService)
	salesGroup := apiGroup.Group("/sales")
	{
		salesGroup.POST("/refresh", salesHandler.Refresh)
		salesGroup.POST("/check", salesHandler.CheckNewOrders)
		salesGroup.GET("/records", salesHandler.GetRecords)
		salesGroup.GET("/summary", salesHandler.GetSummary)
		salesGroup.GET("/pending", salesHandler.GetPending)
		salesGroup.GET("/costs", salesHandler.GetCosts)
		salesGroup.PUT("/costs", salesHandler.UpdateCosts)
		salesGroup.GET("/export", salesHandler.ExportRecords)
		salesGroup.GET("/export/summary", salesHandler.ExportSummary)
	}

	return router
}

func normalizeAllowedOrigins(origins []string) ([]string, bool) {
	var (
		parsed   []string
		allowAll bool
	)
	for _, origin := range origins {
		parts := strings.Split(origin, ",")
		for _, part := range parts {
			trimmed := strings.TrimSpace(part)
			if trimmed == "" {
				continue
			}
			if trimmed == "*" {
				allowAll = true
				continue
			}
			parsed = append(parsed, trimmed)
		}
	}
	return parsed, allowAll
}
