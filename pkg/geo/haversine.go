package geo

import "math"

const earthRadiusMeters = 6_371_000.0

// MetersPerDegree is the length of one degree of latitude (and of longitude
// at the equator) on the spherical earth model.
const MetersPerDegree = math.Pi / 180 * earthRadiusMeters

const metersPerMile = 1609.344

// Haversine returns the great-circle distance in meters between two points.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	lat1r := lat1 * math.Pi / 180
	lat2r := lat2 * math.Pi / 180
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1r)*math.Cos(lat2r)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}

// EquirectangularDist returns an approximate distance in meters.
// Accurate to well under 1% over campus-sized distances.
// Use for candidate filtering and comparisons, not for final edge weights.
func EquirectangularDist(lat1, lon1, lat2, lon2 float64) float64 {
	x := (lon2 - lon1) * math.Cos((lat1+lat2)/2*math.Pi/180)
	y := lat2 - lat1
	return math.Sqrt(x*x+y*y) * MetersPerDegree
}

// MetersToMiles converts a distance in meters to statute miles.
func MetersToMiles(m float64) float64 {
	return m / metersPerMile
}
