package venue

import (
	"embed"
	"fmt"
	"log/slog"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"venue-map/internal/config"
	"venue-map/internal/mercator"
	"venue-map/internal/timezone"
	"venue-map/internal/types"
)

//go:embed assets/buildings.geojson assets/markers.geojson
var assetFS embed.FS

// Service serves the static map content of the venue: extruded building
// footprints, markers, the 3D model overlay, and venue metadata.
type Service interface {
	Buildings() *geojson.FeatureCollection
	Markers() *geojson.FeatureCollection
	Model() ModelOverlay
	Info() Info
}

type venueService struct {
	buildings *geojson.FeatureCollection
	markers   *geojson.FeatureCollection
	model     ModelOverlay
	info      Info
	logger    *slog.Logger
}

// NewVenueService loads and validates the embedded venue assets and resolves
// the venue timezone. Asset problems are startup errors.
func NewVenueService(cfg *config.Config, tzService timezone.Service, logger *slog.Logger) (Service, error) {
	log := logger.With("component", "venue-service")

	buildings, err := loadCollection("assets/buildings.geojson")
	if err != nil {
		return nil, fmt.Errorf("failed to load buildings: %w", err)
	}
	if err := validateBuildings(buildings); err != nil {
		return nil, fmt.Errorf("invalid buildings asset: %w", err)
	}

	markers, err := loadCollection("assets/markers.geojson")
	if err != nil {
		return nil, fmt.Errorf("failed to load markers: %w", err)
	}
	if err := validateMarkers(markers); err != nil {
		return nil, fmt.Errorf("invalid markers asset: %w", err)
	}

	info := Info{
		Name:   cfg.Venue.Name,
		Center: types.NewCoords(cfg.Venue.Longitude, cfg.Venue.Latitude),
	}

	// Timezone lookup failure degrades the metadata, it does not block
	// startup.
	tz, err := tzService.GetTimezone(cfg.Venue.Latitude, cfg.Venue.Longitude)
	if err != nil {
		log.Warn("failed to resolve venue timezone",
			"latitude", cfg.Venue.Latitude,
			"longitude", cfg.Venue.Longitude,
			"error", err,
		)
	} else {
		info.Timezone = tz
	}

	log.Info("venue assets loaded",
		"buildings", len(buildings.Features),
		"markers", len(markers.Features),
	)

	return &venueService{
		buildings: buildings,
		markers:   markers,
		model:     defaultModelOverlay(),
		info:      info,
		logger:    log,
	}, nil
}

func (s *venueService) Buildings() *geojson.FeatureCollection { return s.buildings }

func (s *venueService) Markers() *geojson.FeatureCollection { return s.markers }

func (s *venueService) Model() ModelOverlay { return s.model }

func (s *venueService) Info() Info { return s.info }

func loadCollection(name string) (*geojson.FeatureCollection, error) {
	data, err := assetFS.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return fc, nil
}

// validateBuildings requires at least one polygon footprint and an extrusion
// height on every feature.
func validateBuildings(fc *geojson.FeatureCollection) error {
	if len(fc.Features) == 0 {
		return fmt.Errorf("no building footprints")
	}
	for i, f := range fc.Features {
		switch f.Geometry.(type) {
		case orb.Polygon, orb.MultiPolygon:
		default:
			return fmt.Errorf("feature %d: geometry is %s, want Polygon", i, f.Geometry.GeoJSONType())
		}
		if _, ok := f.Properties["height"]; !ok {
			return fmt.Errorf("feature %d: missing height property", i)
		}
	}
	return nil
}

func validateMarkers(fc *geojson.FeatureCollection) error {
	for i, f := range fc.Features {
		if _, ok := f.Geometry.(orb.Point); !ok {
			return fmt.Errorf("feature %d: geometry is %s, want Point", i, f.Geometry.GeoJSONType())
		}
		if _, ok := f.Properties["title"]; !ok {
			return fmt.Errorf("feature %d: missing title property", i)
		}
	}
	return nil
}

// defaultModelOverlay anchors the venue's 3D model at the South Hall
// forecourt, rotated upright for the widget's GL coordinate system.
func defaultModelOverlay() ModelOverlay {
	anchor := types.NewCoords(-122.40124, 37.78367)
	const altitude = 0.0

	merc := mercator.FromLngLat(anchor.Longitude, anchor.Latitude, altitude)

	return ModelOverlay{
		URL:            "/static/models/venue.gltf",
		Anchor:         anchor,
		AltitudeMeters: altitude,
		RotationDeg:    [3]float64{90, 0, 0},
		Transform: ModelTransform{
			TranslateX: merc.X,
			TranslateY: merc.Y,
			TranslateZ: merc.Z,
			Scale:      mercator.MeterInMercatorUnits(anchor.Latitude),
		},
	}
}
