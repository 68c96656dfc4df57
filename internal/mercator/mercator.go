// Package mercator implements the web-mercator coordinate conventions the
// map widget's custom GL layer expects: world coordinates in [0,1] with
// (0,0) at the north-west corner.
package mercator

import "math"

const (
	earthRadiusMeters        = 6371008.8
	earthCircumferenceMeters = 2 * math.Pi * earthRadiusMeters
)

// Coordinate is a position in mercator world units.
type Coordinate struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// XFromLng projects a longitude to mercator X.
func XFromLng(lng float64) float64 {
	return (180 + lng) / 360
}

// YFromLat projects a latitude to mercator Y.
func YFromLat(lat float64) float64 {
	return (180 - (180/math.Pi)*math.Log(math.Tan(math.Pi/4+lat*math.Pi/360))) / 360
}

// ZFromAltitude converts an altitude in meters to mercator Z at the given
// latitude. Mercator stretches with latitude, so the scale depends on it.
func ZFromAltitude(altitudeMeters, lat float64) float64 {
	return altitudeMeters / circumferenceAtLatitude(lat)
}

// FromLngLat projects a position to mercator world coordinates.
func FromLngLat(lng, lat, altitudeMeters float64) Coordinate {
	return Coordinate{
		X: XFromLng(lng),
		Y: YFromLat(lat),
		Z: ZFromAltitude(altitudeMeters, lat),
	}
}

// MeterInMercatorUnits returns the length of one meter in mercator units at
// the given latitude, the scale factor applied to real-world model sizes.
func MeterInMercatorUnits(lat float64) float64 {
	return 1 / circumferenceAtLatitude(lat)
}

func circumferenceAtLatitude(lat float64) float64 {
	return earthCircumferenceMeters * math.Cos(lat*math.Pi/180)
}
