//go:build integration

package mapbox

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"venue-map/internal/types"
)

func TestFetchRoute_Integration(t *testing.T) {
	token := os.Getenv("VENUE_MAP_MAPBOX_ACCESSTOKEN")
	if token == "" {
		t.Skip("VENUE_MAP_MAPBOX_ACCESSTOKEN not set, skipping live API test")
	}

	// Two points around the venue, a few hundred meters apart
	from := types.NewCoords(-122.40310, 37.78320)
	to := types.NewCoords(-122.40050, 37.78485)

	client := NewClient(token, slog.Default())

	t.Logf("Making API call to Mapbox Directions API...")
	t.Logf("From: %s  To: %s", from, to)

	result, err := client.FetchRoute(context.Background(), from, to, ProfileWalking)
	if err != nil {
		t.Fatalf("Failed to fetch route: %v", err)
	}

	if len(result.Line) < 2 {
		t.Errorf("Route has %d points, want >= 2", len(result.Line))
	}
	if result.DistanceMeters <= 0 {
		t.Errorf("DistanceMeters = %v, want > 0", result.DistanceMeters)
	}
	if result.DurationSeconds <= 0 {
		t.Errorf("DurationSeconds = %v, want > 0", result.DurationSeconds)
	}

	t.Logf("Route:")
	t.Logf("  Points: %d", len(result.Line))
	t.Logf("  Distance: %.1f m", result.DistanceMeters)
	t.Logf("  Duration: %.1f s", result.DurationSeconds)
}
