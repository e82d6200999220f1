// Package geo provides the great-circle distance evaluation used to gate
// attendance submissions against the campus geofence.
package geo

import "math"

// earthRadiusKm is the mean Earth radius of the spherical approximation.
const earthRadiusKm = 6371

// Point is a WGS-84 coordinate in decimal degrees.
type Point struct {
	Lat float64
	Lng float64
}

// DistanceKm computes the haversine great-circle distance between two
// coordinates, in kilometers. Inputs are degrees. Identical points yield 0;
// antipodal points are handled without division errors.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := radians(lat2 - lat1)
	dLon := radians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(lat1))*math.Cos(radians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Fence is a circular boundary around a reference coordinate.
type Fence struct {
	Center   Point
	RadiusKm float64
}

// Distance returns the distance from the fence center to p, in kilometers.
func (f Fence) Distance(p Point) float64 {
	return DistanceKm(f.Center.Lat, f.Center.Lng, p.Lat, p.Lng)
}

// Contains reports whether p lies within the fence radius.
func (f Fence) Contains(p Point) bool {
	return f.Distance(p) <= f.RadiusKm
}
