package routing

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/paulmach/orb"

	"venue-map/internal/types"
)

func TestFallbackLine(t *testing.T) {
	tests := []struct {
		name     string
		from, to types.Coords
		expected orb.LineString
	}{
		{
			name: "landmark pair",
			from: types.NewCoords(-122.40310, 37.78320),
			to:   types.NewCoords(-122.40050, 37.78485),
			expected: orb.LineString{
				types.NewCoords(-122.40310, 37.78320).Point(),
				types.NewCoords(-122.40310, 37.78320).Midpoint(types.NewCoords(-122.40050, 37.78485)).Point(),
				types.NewCoords(-122.40050, 37.78485).Point(),
			},
		},
		{
			name:     "axis aligned",
			from:     types.NewCoords(0, 0),
			to:       types.NewCoords(2, 0),
			expected: orb.LineString{{0, 0}, {1, 0}, {2, 0}},
		},
		{
			name:     "degenerate same point",
			from:     types.NewCoords(1, 1),
			to:       types.NewCoords(1, 1),
			expected: orb.LineString{{1, 1}, {1, 1}, {1, 1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FallbackLine(tt.from, tt.to)
			if len(result) != 3 {
				t.Fatalf("FallbackLine has %d points, want 3", len(result))
			}
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("FallbackLine = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestRouteFeatureCollection(t *testing.T) {
	line := orb.LineString{{-122.4031, 37.7832}, {-122.4005, 37.78485}}
	fc := RouteFeatureCollection(line, 412.7, 295.4)

	if len(fc.Features) != 1 {
		t.Fatalf("collection has %d features, want 1", len(fc.Features))
	}

	feature := fc.Features[0]
	if !reflect.DeepEqual(feature.Geometry, line) {
		t.Errorf("geometry = %v, want %v", feature.Geometry, line)
	}
	if feature.Properties["distance"] != 412.7 {
		t.Errorf("distance property = %v, want 412.7", feature.Properties["distance"])
	}
	if feature.Properties["duration"] != 295.4 {
		t.Errorf("duration property = %v, want 295.4", feature.Properties["duration"])
	}
}

func TestRouteFeatureCollection_MarshalsAsGeoJSON(t *testing.T) {
	line := orb.LineString{{0, 0}, {1, 1}}
	fc := RouteFeatureCollection(line, 10, 7)

	data, err := json.Marshal(fc)
	if err != nil {
		t.Fatalf("failed to marshal collection: %v", err)
	}

	var decoded struct {
		Type     string `json:"type"`
		Features []struct {
			Type     string `json:"type"`
			Geometry struct {
				Type        string       `json:"type"`
				Coordinates [][2]float64 `json:"coordinates"`
			} `json:"geometry"`
		} `json:"features"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("failed to decode marshaled collection: %v", err)
	}

	if decoded.Type != "FeatureCollection" {
		t.Errorf("type = %q, want FeatureCollection", decoded.Type)
	}
	if len(decoded.Features) != 1 || decoded.Features[0].Geometry.Type != "LineString" {
		t.Fatalf("unexpected features: %+v", decoded.Features)
	}
	if got := decoded.Features[0].Geometry.Coordinates; len(got) != 2 {
		t.Errorf("coordinates = %v, want 2 points", got)
	}
}

func TestFallbackRoute_Metadata(t *testing.T) {
	from := types.NewCoords(-122.40310, 37.78320)
	to := types.NewCoords(-122.40050, 37.78485)

	route := fallbackRoute(from, to)

	if route.Source != SourceFallback {
		t.Errorf("Source = %q, want %q", route.Source, SourceFallback)
	}
	if route.DistanceMeters <= 0 {
		t.Errorf("DistanceMeters = %v, want > 0", route.DistanceMeters)
	}

	// Duration derives from distance at walking pace.
	wantDuration := route.DistanceMeters / walkingSpeedMetersPerSecond
	if route.DurationSeconds != wantDuration {
		t.Errorf("DurationSeconds = %v, want %v", route.DurationSeconds, wantDuration)
	}
}
