package main

import (
	"fmt"
	"log/slog"

	"github.com/gin-gonic/gin"

	"venue-map/internal/config"
	"venue-map/internal/routing"
	"venue-map/internal/timezone"
	"venue-map/internal/venue"

	_ "venue-map/docs" // Ensure docs are imported
)

// App encapsulates application dependencies
type App struct {
	router       *gin.Engine
	logger       *slog.Logger
	cfg          *config.Config
	routeService routing.Service
	venueService venue.Service
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())

	// Initialize timezone service
	tzService, err := timezone.NewService()
	if err != nil {
		return nil, fmt.Errorf("failed to create timezone service: %w", err)
	}

	// Initialize venue service
	venueService, err := venue.NewVenueService(cfg, tzService, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create venue service: %w", err)
	}

	if cfg.Mapbox.AccessToken == "" {
		logger.Warn("no Mapbox access token configured, all routes will use the fallback line")
	}

	app := &App{
		router:       router,
		logger:       logger,
		cfg:          cfg,
		routeService: routing.NewRouteService(cfg, venue.LandmarkEntrance, venue.LandmarkHall, logger),
		venueService: venueService,
	}

	// Register routes
	app.registerRoutes()

	return app, nil
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}
