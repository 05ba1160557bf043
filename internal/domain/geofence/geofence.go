// Package geofence decides whether a reported coordinate counts as being at
// a monitored location.
package geofence

import "math"

// metersPerDegree is the flat-earth conversion used by the check-in flow.
// It is accurate near the equator and for small radii only; callers that need
// geodesic precision should use Haversine instead.
const metersPerDegree = 111320.0

const earthRadiusMeters = 6371000.0

type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Validator admits or rejects an observed coordinate against a target point
// and radius. Implementations must be pure.
type Validator interface {
	WithinRadius(observed, target Coordinate, radiusMeters float64) bool
}

// Planar treats latitude/longitude as a flat plane and converts degree
// distance to meters with a fixed constant. The boundary is exclusive: a
// coordinate exactly on the radius is rejected.
type Planar struct{}

func (Planar) WithinRadius(observed, target Coordinate, radiusMeters float64) bool {
	degrees := math.Sqrt(
		math.Pow(observed.Latitude-target.Latitude, 2) +
			math.Pow(observed.Longitude-target.Longitude, 2),
	)
	return degrees < radiusMeters/metersPerDegree
}

// Haversine computes great-circle distance on a spherical earth. Kept as an
// alternative for deployments where the planar approximation is too coarse.
type Haversine struct{}

func (Haversine) WithinRadius(observed, target Coordinate, radiusMeters float64) bool {
	return Distance(observed, target) < radiusMeters
}

// Distance returns the great-circle distance in meters between two points.
func Distance(a, b Coordinate) float64 {
	latRad1 := a.Latitude * math.Pi / 180
	lonRad1 := a.Longitude * math.Pi / 180
	latRad2 := b.Latitude * math.Pi / 180
	lonRad2 := b.Longitude * math.Pi / 180

	diffLat := latRad2 - latRad1
	diffLon := lonRad2 - lonRad1

	h := math.Sin(diffLat/2)*math.Sin(diffLat/2) +
		math.Cos(latRad1)*math.Cos(latRad2)*
			math.Sin(diffLon/2)*math.Sin(diffLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusMeters * c
}
