package routing

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/geojson"

	"venue-map/internal/types"
)

// Average walking pace used to estimate a duration for fallback lines,
// which have no service-supplied duration.
const walkingSpeedMetersPerSecond = 1.4

// RouteFeatureCollection wraps a route line in a single-feature GeoJSON
// FeatureCollection with distance and duration attached as feature
// properties, the payload shape the map widget's line layer consumes.
func RouteFeatureCollection(line orb.LineString, distanceMeters, durationSeconds float64) *geojson.FeatureCollection {
	feature := geojson.NewFeature(line)
	feature.Properties = geojson.Properties{
		"distance": distanceMeters,
		"duration": durationSeconds,
	}

	fc := geojson.NewFeatureCollection()
	fc.Append(feature)
	return fc
}

// FallbackLine synthesizes a three-point line between the requested
// endpoints: origin, midpoint, destination. The widget always has something
// line-shaped to draw even when the Directions API is unreachable.
func FallbackLine(from, to types.Coords) orb.LineString {
	mid := from.Midpoint(to)
	return orb.LineString{from.Point(), mid.Point(), to.Point()}
}

// fallbackRoute builds the degraded DisplayedRoute for a failed request.
// Distance is the geodesic length of the synthesized line; duration assumes
// walking pace.
func fallbackRoute(from, to types.Coords) *DisplayedRoute {
	line := FallbackLine(from, to)
	distance := geo.Length(line)
	duration := distance / walkingSpeedMetersPerSecond

	return &DisplayedRoute{
		Collection:      RouteFeatureCollection(line, distance, duration),
		DistanceMeters:  distance,
		DurationSeconds: duration,
		Source:          SourceFallback,
	}
}
