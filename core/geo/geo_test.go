package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var campus = Point{Lat: 23.5492, Lng: 87.2912}

func TestDistanceKm_identicalPoints(t *testing.T) {
	assert.Equal(t, 0.0, DistanceKm(campus.Lat, campus.Lng, campus.Lat, campus.Lng))
	assert.Equal(t, 0.0, DistanceKm(0, 0, 0, 0))
	assert.Equal(t, 0.0, DistanceKm(-90, 45, -90, 45))
}

func TestDistanceKm_symmetry(t *testing.T) {
	points := []Point{
		{23.5492, 87.2912},
		{22.5726, 88.3639}, // Kolkata
		{-33.8688, 151.2093},
		{0, 180},
	}
	for _, a := range points {
		for _, b := range points {
			d1 := DistanceKm(a.Lat, a.Lng, b.Lat, b.Lng)
			d2 := DistanceKm(b.Lat, b.Lng, a.Lat, a.Lng)
			assert.Equal(t, d1, d2)
			assert.GreaterOrEqual(t, d1, 0.0)
		}
	}
}

func TestDistanceKm_oneKmDueNorth(t *testing.T) {
	// 1000 m due north: one degree of latitude spans ~111.195 km everywhere
	north := Point{Lat: campus.Lat + 1.0/111.195, Lng: campus.Lng}
	d := DistanceKm(campus.Lat, campus.Lng, north.Lat, north.Lng)
	assert.InDelta(t, 1.0, d, 0.01)
}

func TestDistanceKm_antipodal(t *testing.T) {
	// half the Earth's circumference
	assert.InDelta(t, 20015.09, DistanceKm(0, 0, 0, 180), 0.5)
}

func TestDistanceKm_knownDistance(t *testing.T) {
	// campus to Kolkata is ~155 km
	d := DistanceKm(campus.Lat, campus.Lng, 22.5726, 88.3639)
	assert.InDelta(t, 155, d, 5)
}

func TestFence(t *testing.T) {
	fence := Fence{Center: campus, RadiusKm: 0.5}

	assert.True(t, fence.Contains(campus))
	assert.True(t, fence.Contains(Point{Lat: campus.Lat + 0.0001, Lng: campus.Lng}))
	assert.False(t, fence.Contains(Point{Lat: campus.Lat + 1, Lng: campus.Lng}))

	assert.Equal(t, 0.0, fence.Distance(campus))
	assert.Greater(t, fence.Distance(Point{Lat: 22.5726, Lng: 88.3639}), 100.0)
}
