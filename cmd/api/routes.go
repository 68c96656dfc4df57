package main

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// registerRoutes sets up all API endpoints
func (app *App) registerRoutes() {
	// Health check endpoint
	app.router.GET("/ping", app.handlePing)

	// Routing endpoints
	app.router.GET("/route", app.handlePlanRoute)
	app.router.GET("/route/current", app.handleCurrentRoute)

	// Venue endpoints
	app.router.GET("/venue/buildings", app.handleVenueBuildings)
	app.router.GET("/venue/markers", app.handleVenueMarkers)
	app.router.GET("/venue/model", app.handleVenueModel)
	app.router.GET("/venue/info", app.handleVenueInfo)

	// Swagger documentation
	app.router.GET("/swagger/*any", func(c *gin.Context) {
		path := c.Param("any")
		if path == "/" {
			c.Redirect(301, "/swagger/index.html")
			return
		}
		ginSwagger.WrapHandler(swaggerFiles.Handler)(c)
	})
}
