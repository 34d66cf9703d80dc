// Package geo provides the great-circle distance helper used to
// annotate places with their distance from a caller's origin.
package geo

import (
	"errors"
	"math"
)

// ErrInvalidCoordinate is returned for NaN or out-of-range inputs.
var ErrInvalidCoordinate = errors.New("invalid coordinate")

const earthRadiusMiles = 3959

// Distance returns the haversine distance in miles between two points,
// rounded to one decimal place. Invalid inputs fail fast rather than
// silently producing 0 or NaN.
func Distance(lat1, lon1, lat2, lon2 float64) (float64, error) {
	for _, lat := range []float64{lat1, lat2} {
		if math.IsNaN(lat) || lat < -90 || lat > 90 {
			return 0, ErrInvalidCoordinate
		}
	}
	for _, lon := range []float64{lon1, lon2} {
		if math.IsNaN(lon) || lon < -180 || lon > 180 {
			return 0, ErrInvalidCoordinate
		}
	}

	dLat := rad(lat2 - lat1)
	dLon := rad(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rad(lat1))*math.Cos(rad(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return math.Round(earthRadiusMiles*c*10) / 10, nil
}

func rad(deg float64) float64 {
	return deg * (math.Pi / 180)
}
