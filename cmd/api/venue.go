package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// handleVenueBuildings godoc
// @Summary Get extruded building footprints
// @Description GeoJSON FeatureCollection of the venue's building footprints with height, base_height, and color properties for the widget's fill-extrusion layer
// @Tags venue
// @Produce json
// @Success 200 {object} geojson.FeatureCollection
// @Router /venue/buildings [get]
func (app *App) handleVenueBuildings(c *gin.Context) {
	c.JSON(http.StatusOK, app.venueService.Buildings())
}

// handleVenueMarkers godoc
// @Summary Get venue markers
// @Description GeoJSON FeatureCollection of point markers (title, icon) placed on the venue map
// @Tags venue
// @Produce json
// @Success 200 {object} geojson.FeatureCollection
// @Router /venue/markers [get]
func (app *App) handleVenueMarkers(c *gin.Context) {
	c.JSON(http.StatusOK, app.venueService.Markers())
}

// handleVenueModel godoc
// @Summary Get the 3D model overlay definition
// @Description Model source URL, anchor coordinate, rotation, and the precomputed mercator transform for the widget's custom GL layer
// @Tags venue
// @Produce json
// @Success 200 {object} venue.ModelOverlay
// @Router /venue/model [get]
func (app *App) handleVenueModel(c *gin.Context) {
	c.JSON(http.StatusOK, app.venueService.Model())
}

// handleVenueInfo godoc
// @Summary Get venue metadata
// @Description Venue name, center coordinate, and IANA timezone
// @Tags venue
// @Produce json
// @Success 200 {object} venue.Info
// @Router /venue/info [get]
func (app *App) handleVenueInfo(c *gin.Context) {
	c.JSON(http.StatusOK, app.venueService.Info())
}
