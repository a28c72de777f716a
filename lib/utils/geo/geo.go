package geo

import (
	"math"
)

// earthRadius in meters.
const earthRadius = 6371000

// Distance returns the great-circle (haversine) distance in meters between
// two lat/lon pairs given in degrees.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadius * c
}

// RoundedDistance is Distance rounded to the nearest whole meter for display.
func RoundedDistance(lat1, lon1, lat2, lon2 float64) int {
	return int(math.Round(Distance(lat1, lon1, lat2, lon2)))
}

func toRadians(degrees float64) float64 {
	return degrees * (math.Pi / 180)
}
