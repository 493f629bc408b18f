package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/swawe/analytics-go/internal/api"
	"github.com/swawe/analytics-go/internal/cache"
	"github.com/swawe/analytics-go/internal/config"
	"github.com/swawe/analytics-go/internal/domain"
	"github.com/swawe/analytics-go/internal/service"
	"github.com/swawe/analytics-go/internal/shopify"
	"github.com/swawe/analytics-go/pkg/logger"
)

func main() {
	cfg := config.Load()

	if cfg.Server.Mode == "debug" {
		logger.SetLevel("debug")
		gin.SetMode(gin.DebugMode)
	} else {
		logger.SetLevel("info")
		gin.SetMode(gin.ReleaseMode)
	}

	// Missing credentials degrade the whole session to disconnected
	// mode instead of failing startup.
	var source service.OrderSource
	if cfg.Shopify.Connected() {
		client, err := shopify.NewClient(cfg.Shopify)
		if err != nil {
			logger.Log.Fatal().Err(err).Msg("Failed to build shopify client")
		}
		source = client
	} else {
		logger.Log.Warn().Msg("Shopify credentials missing, running disconnected")
	}

	summaryCache, err := cache.NewSalesSummaryCache(cfg.Cache)
	if err != nil {
		logger.Log.Warn().Err(err).Msg("Summary cache unavailable, continuing without it")
		summaryCache = cache.NewNoopSummaryCache()
	}

	salesService := service.NewSalesService(source, summaryCache, service.Options{
		Costs: domain.CostConfig{
			HoodieBaseCost: cfg.Costs.HoodieBaseCost,
			TShirtBaseCost: cfg.Costs.TShirtBaseCost,
			AdditionalCost: cfg.Costs.AdditionalCost,
		},
		PollInterval: cfg.Shopify.PollInterval,
		ProbeLimit:   cfg.Shopify.ProbeLimit,
	})

	router := api.NewRouter(salesService, cfg.Server.AllowedOrigins)
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		logger.Log.Info().Str("port", cfg.Server.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.Log.Info().Msg("Server exiting")
}
