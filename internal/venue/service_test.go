package venue

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"venue-map/internal/config"
	"venue-map/internal/mercator"
)

type stubTimezone struct {
	name string
	err  error
}

func (s stubTimezone) GetTimezone(latitude, longitude float64) (string, error) {
	return s.name, s.err
}

func testConfig() *config.Config {
	return &config.Config{
		Venue: config.VenueConfig{
			Name:      "Moscone Center",
			Longitude: -122.40138,
			Latitude:  37.78413,
		},
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewVenueService_LoadsAssets(t *testing.T) {
	svc, err := NewVenueService(testConfig(), stubTimezone{name: "America/Los_Angeles"}, testLogger())
	if err != nil {
		t.Fatalf("NewVenueService unexpected error: %v", err)
	}

	buildings := svc.Buildings()
	if len(buildings.Features) == 0 {
		t.Fatal("no building features loaded")
	}
	for i, f := range buildings.Features {
		if _, ok := f.Geometry.(orb.Polygon); !ok {
			t.Errorf("building %d: geometry is %T, want orb.Polygon", i, f.Geometry)
		}
		if _, ok := f.Properties["height"]; !ok {
			t.Errorf("building %d: missing height property", i)
		}
	}

	markers := svc.Markers()
	if len(markers.Features) == 0 {
		t.Fatal("no marker features loaded")
	}
	for i, f := range markers.Features {
		if _, ok := f.Geometry.(orb.Point); !ok {
			t.Errorf("marker %d: geometry is %T, want orb.Point", i, f.Geometry)
		}
		if f.Properties.MustString("title", "") == "" {
			t.Errorf("marker %d: missing title property", i)
		}
	}
}

func TestNewVenueService_Info(t *testing.T) {
	svc, err := NewVenueService(testConfig(), stubTimezone{name: "America/Los_Angeles"}, testLogger())
	if err != nil {
		t.Fatalf("NewVenueService unexpected error: %v", err)
	}

	info := svc.Info()
	if info.Name != "Moscone Center" {
		t.Errorf("Name = %q, want Moscone Center", info.Name)
	}
	if info.Timezone != "America/Los_Angeles" {
		t.Errorf("Timezone = %q, want America/Los_Angeles", info.Timezone)
	}
	if info.Center.Longitude != -122.40138 || info.Center.Latitude != 37.78413 {
		t.Errorf("Center = %+v, want configured venue center", info.Center)
	}
}

func TestNewVenueService_TimezoneFailureDegrades(t *testing.T) {
	svc, err := NewVenueService(testConfig(), stubTimezone{err: errors.New("lookup failed")}, testLogger())
	if err != nil {
		t.Fatalf("NewVenueService unexpected error: %v", err)
	}

	if tz := svc.Info().Timezone; tz != "" {
		t.Errorf("Timezone = %q, want empty on lookup failure", tz)
	}
}

func TestVenueService_Model(t *testing.T) {
	svc, err := NewVenueService(testConfig(), stubTimezone{name: "America/Los_Angeles"}, testLogger())
	if err != nil {
		t.Fatalf("NewVenueService unexpected error: %v", err)
	}

	model := svc.Model()
	if model.URL == "" {
		t.Error("model URL is empty")
	}

	// The transform must be the mercator projection of the anchor.
	if model.Transform.TranslateX != mercator.XFromLng(model.Anchor.Longitude) {
		t.Errorf("TranslateX = %v, want %v", model.Transform.TranslateX, mercator.XFromLng(model.Anchor.Longitude))
	}
	if model.Transform.TranslateY != mercator.YFromLat(model.Anchor.Latitude) {
		t.Errorf("TranslateY = %v, want %v", model.Transform.TranslateY, mercator.YFromLat(model.Anchor.Latitude))
	}
	if model.Transform.Scale != mercator.MeterInMercatorUnits(model.Anchor.Latitude) {
		t.Errorf("Scale = %v, want %v", model.Transform.Scale, mercator.MeterInMercatorUnits(model.Anchor.Latitude))
	}
}

func TestValidateBuildings(t *testing.T) {
	polygon := orb.Polygon{{{0, 0}, {1, 0}, {1, 1}, {0, 0}}}

	valid := geojson.NewFeature(polygon)
	valid.Properties = geojson.Properties{"height": 20.0}

	noHeight := geojson.NewFeature(polygon)

	point := geojson.NewFeature(orb.Point{0, 0})
	point.Properties = geojson.Properties{"height": 20.0}

	tests := []struct {
		name      string
		features  []*geojson.Feature
		expectErr bool
	}{
		{"valid polygon", []*geojson.Feature{valid}, false},
		{"empty collection", nil, true},
		{"missing height", []*geojson.Feature{noHeight}, true},
		{"point geometry", []*geojson.Feature{point}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fc := geojson.NewFeatureCollection()
			fc.Features = tt.features

			err := validateBuildings(fc)
			if tt.expectErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.expectErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateMarkers(t *testing.T) {
	valid := geojson.NewFeature(orb.Point{0, 0})
	valid.Properties = geojson.Properties{"title": "Entrance"}

	noTitle := geojson.NewFeature(orb.Point{0, 0})

	line := geojson.NewFeature(orb.LineString{{0, 0}, {1, 1}})
	line.Properties = geojson.Properties{"title": "Not a point"}

	tests := []struct {
		name      string
		features  []*geojson.Feature
		expectErr bool
	}{
		{"valid marker", []*geojson.Feature{valid}, false},
		{"empty collection", nil, false},
		{"missing title", []*geojson.Feature{noTitle}, true},
		{"line geometry", []*geojson.Feature{line}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fc := geojson.NewFeatureCollection()
			fc.Features = tt.features

			err := validateMarkers(fc)
			if tt.expectErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.expectErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
