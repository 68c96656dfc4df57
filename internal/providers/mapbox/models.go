package mapbox

import (
	"encoding/json"
	"fmt"

	"github.com/paulmach/orb"
)

// Profile selects the Directions routing profile.
type Profile string

const (
	ProfileWalking        Profile = "walking"
	ProfileDriving        Profile = "driving"
	ProfileDrivingTraffic Profile = "driving-traffic"
	ProfileCycling        Profile = "cycling"
)

// ParseProfile maps a user-supplied profile name to a known profile,
// defaulting to walking for empty input.
func ParseProfile(s string) (Profile, error) {
	switch Profile(s) {
	case "":
		return ProfileWalking, nil
	case ProfileWalking, ProfileDriving, ProfileDrivingTraffic, ProfileCycling:
		return Profile(s), nil
	}
	return "", fmt.Errorf("unknown routing profile %q", s)
}

// GeometryEncoding selects how the Directions API encodes route geometry.
type GeometryEncoding string

const (
	EncodingGeoJSON   GeometryEncoding = "geojson"
	EncodingPolyline6 GeometryEncoding = "polyline6"
)

// DirectionsResponse is the Directions API response body. On success Routes
// is populated; on failure the server answers with Code and Message instead,
// so both shapes decode into the same struct.
type DirectionsResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Routes  []DirectionsRoute `json:"routes"`
}

type DirectionsRoute struct {
	Geometry RouteGeometry `json:"geometry"`
	Distance float64       `json:"distance"` // meters
	Duration float64       `json:"duration"` // seconds
}

// RouteGeometry handles both geometry encodings the API can return:
// a GeoJSON LineString object or an encoded polyline string.
type RouteGeometry struct {
	// Line holds the decoded coordinates for GeoJSON geometry.
	Line orb.LineString
	// Encoded holds the raw polyline string; decoding needs the precision
	// the caller requested, so it happens in the client.
	Encoded string
}

func (g *RouteGeometry) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &g.Encoded)
	}

	var raw struct {
		Type        string       `json:"type"`
		Coordinates [][2]float64 `json:"coordinates"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Type != "" && raw.Type != "LineString" {
		return fmt.Errorf("unsupported geometry type: %s", raw.Type)
	}

	g.Line = make(orb.LineString, 0, len(raw.Coordinates))
	for _, c := range raw.Coordinates {
		g.Line = append(g.Line, orb.Point{c[0], c[1]})
	}
	return nil
}

// RouteResult is a successfully fetched route. Produced fresh per fetch and
// never mutated afterwards.
type RouteResult struct {
	Line            orb.LineString
	DistanceMeters  float64
	DurationSeconds float64
}
