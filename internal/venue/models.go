package venue

import (
	"venue-map/internal/types"
)

// Landmark coordinates of the default walk shown when the widget loads,
// before the user has clicked anywhere.
var (
	LandmarkEntrance = types.NewCoords(-122.40310, 37.78320)
	LandmarkHall     = types.NewCoords(-122.40050, 37.78485)
)

// Info is the venue metadata the widget shows alongside the map.
type Info struct {
	Name     string       `json:"name"`
	Center   types.Coords `json:"center"`
	Timezone string       `json:"timezone,omitempty"`
}

// ModelOverlay describes the custom 3D model layer: where the model sits and
// the precomputed mercator transform the GL layer applies to it.
type ModelOverlay struct {
	URL            string         `json:"url"`
	Anchor         types.Coords   `json:"anchor"`
	AltitudeMeters float64        `json:"altitude_meters"`
	RotationDeg    [3]float64     `json:"rotation_deg"`
	Transform      ModelTransform `json:"transform"`
}

// ModelTransform is the mercator-space placement of the model: a translation
// in world units and the scale of one meter at the anchor latitude.
type ModelTransform struct {
	TranslateX float64 `json:"translate_x"`
	TranslateY float64 `json:"translate_y"`
	TranslateZ float64 `json:"translate_z"`
	Scale      float64 `json:"scale"`
}
