package types

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
)

// Coords is a longitude/latitude pair, GeoJSON axis order.
type Coords struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

func NewCoords(longitude, latitude float64) Coords {
	return Coords{
		Longitude: longitude,
		Latitude:  latitude,
	}
}

// ParseCoords parses a "lon,lat" pair as used in query parameters and
// Directions API path segments.
func ParseCoords(s string) (Coords, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Coords{}, fmt.Errorf("expected \"lon,lat\", got %q", s)
	}

	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Coords{}, fmt.Errorf("invalid longitude %q: %w", parts[0], err)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Coords{}, fmt.Errorf("invalid latitude %q: %w", parts[1], err)
	}

	return Coords{Longitude: lon, Latitude: lat}, nil
}

// Point converts to an orb point ([lon, lat]).
func (c Coords) Point() orb.Point {
	return orb.Point{c.Longitude, c.Latitude}
}

// Midpoint returns the arithmetic midpoint between c and other.
func (c Coords) Midpoint(other Coords) Coords {
	return Coords{
		Longitude: (c.Longitude + other.Longitude) / 2,
		Latitude:  (c.Latitude + other.Latitude) / 2,
	}
}

// String formats as "lon,lat" with full float precision.
func (c Coords) String() string {
	return strconv.FormatFloat(c.Longitude, 'f', -1, 64) + "," +
		strconv.FormatFloat(c.Latitude, 'f', -1, 64)
}
