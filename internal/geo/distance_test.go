package geo_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obxstays/obx-backend/internal/geo"
)

func TestDistance_SamePointIsZero(t *testing.T) {
	d, err := geo.Distance(35.9582, -75.6201, 35.9582, -75.6201)
	require.NoError(t, err)
	assert.Equal(t, 0.0, d)
}

func TestDistance_Symmetric(t *testing.T) {
	// Nags Head to Buxton.
	d1, err := geo.Distance(35.9582, -75.6201, 35.2518, -75.5277)
	require.NoError(t, err)
	d2, err := geo.Distance(35.2518, -75.5277, 35.9582, -75.6201)
	require.NoError(t, err)
	assert.Equal(t, d1, d2)
	assert.Greater(t, d1, 0.0)
}

func TestDistance_KnownValue(t *testing.T) {
	// Corolla to Ocracoke spans most of the Outer Banks, roughly 88 miles
	// great-circle.
	d, err := geo.Distance(36.3762, -75.8269, 35.1151, -75.9877)
	require.NoError(t, err)
	assert.InDelta(t, 87.8, d, 1.0)
}

func TestDistance_OneDecimalRounding(t *testing.T) {
	d, err := geo.Distance(35.9582, -75.6201, 36.0162, -75.6699)
	require.NoError(t, err)
	assert.Equal(t, d, math.Round(d*10)/10)
}

func TestDistance_InvalidInputs(t *testing.T) {
	cases := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
	}{
		{"nan lat", math.NaN(), 0, 0, 0},
		{"nan lon", 0, 0, 0, math.NaN()},
		{"lat too big", 91, 0, 0, 0},
		{"lat too small", 0, 0, -90.5, 0},
		{"lon too big", 0, 180.1, 0, 0},
		{"lon too small", 0, 0, 0, -181},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := geo.Distance(tc.lat1, tc.lon1, tc.lat2, tc.lon2)
			assert.ErrorIs(t, err, geo.ErrInvalidCoordinate)
		})
	}
}
