package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"venue-map/internal/providers/mapbox"
	"venue-map/internal/types"
)

// PlanRouteInput defines the query parameters for the route endpoint
type PlanRouteInput struct {
	From    string `form:"from" binding:"required"` // "lon,lat"
	To      string `form:"to" binding:"required"`   // "lon,lat"
	Profile string `form:"profile"`                 // walking (default), driving, driving-traffic, cycling
}

// handlePlanRoute godoc
// @Summary Plan a route between two points
// @Description Fetch a walking (or other profile) route between two coordinates from the Mapbox Directions API. On any upstream failure the response degrades to a synthesized straight-line route; this endpoint never surfaces a routing error.
// @Tags routing
// @Produce json
// @Param from query string true "Origin as lon,lat" example(-122.40310,37.78320)
// @Param to query string true "Destination as lon,lat" example(-122.40050,37.78485)
// @Param profile query string false "Routing profile" Enums(walking, driving, driving-traffic, cycling)
// @Success 200 {object} routing.DisplayedRoute
// @Failure 400 {object} map[string]string
// @Router /route [get]
func (app *App) handlePlanRoute(c *gin.Context) {
	var input PlanRouteInput

	// Bind and validate query parameters
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	from, err := types.ParseCoords(input.From)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from: " + err.Error()})
		return
	}
	to, err := types.ParseCoords(input.To)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to: " + err.Error()})
		return
	}
	// The configured profile is the default; the query parameter overrides it.
	if input.Profile == "" {
		input.Profile = app.cfg.Mapbox.Profile
	}
	profile, err := mapbox.ParseProfile(input.Profile)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// PlanRoute absorbs every upstream failure into a fallback route, so
	// from here on the answer is always 200.
	route := app.routeService.PlanRoute(c.Request.Context(), from, to, profile)
	c.JSON(http.StatusOK, route)
}

// handleCurrentRoute godoc
// @Summary Get the currently displayed route
// @Description Return the last route applied to the display slot. Before any request has been planned this is the default landmark walk.
// @Tags routing
// @Produce json
// @Success 200 {object} routing.DisplayedRoute
// @Router /route/current [get]
func (app *App) handleCurrentRoute(c *gin.Context) {
	c.JSON(http.StatusOK, app.routeService.Current())
}
