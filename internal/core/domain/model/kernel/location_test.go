package kernel_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLocation(t *testing.T) {
	tests := []struct {
		name      string
		latitude  float64
		longitude float64
		wantErr   bool
	}{
		{"valid_kigali_coordinates", -1.9441, 30.0619, false},
		{"valid_boundary_min", -90, -180, false},
		{"valid_boundary_max", 90, 180, false},
		{"valid_equator_meridian", 0, 0, false},
		{"latitude_too_low", -90.5, 30, true},
		{"latitude_too_high", 91, 30, true},
		{"longitude_too_low", -1.9, -180.1, true},
		{"longitude_too_high", -1.9, 181, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := kernel.NewLocation(tt.latitude, tt.longitude)

			if tt.wantErr {
				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.latitude, loc.Latitude())
			assert.Equal(t, tt.longitude, loc.Longitude())
			require.NoError(t, loc.Validate())
		})
	}

	t.Run("both_coordinates_invalid_aggregates_errors", func(t *testing.T) {
		_, err := kernel.NewLocation(120, 200)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "latitude")
		assert.Contains(t, err.Error(), "longitude")
	})
}

func TestLocation_Validate(t *testing.T) {
	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var loc kernel.Location

		err := loc.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrLocationIsNotConstructed, err)
	})
}

func TestLocation_DistanceMeters(t *testing.T) {
	t.Run("distance_to_self_is_zero", func(t *testing.T) {
		loc, err := kernel.NewLocation(-1.9441, 30.0619)
		require.NoError(t, err)

		d, err := loc.DistanceMeters(loc)

		require.NoError(t, err)
		assert.InDelta(t, 0, d, 0.001)
	})

	t.Run("nearby_points_within_tolerance", func(t *testing.T) {
		site, err := kernel.NewLocation(-1.9441, 30.0619)
		require.NoError(t, err)
		fix, err := kernel.NewLocation(-1.9440, 30.0619)
		require.NoError(t, err)

		d, err := site.DistanceMeters(fix)

		require.NoError(t, err)
		// 0.0001 degrees of latitude is roughly 11 meters.
		assert.InDelta(t, 11.1, d, 0.5)
	})

	t.Run("distance_is_symmetric", func(t *testing.T) {
		a, _ := kernel.NewLocation(-1.9441, 30.0619)
		b, _ := kernel.NewLocation(-1.9500, 30.1000)

		d1, err := a.DistanceMeters(b)
		require.NoError(t, err)
		d2, err := b.DistanceMeters(a)
		require.NoError(t, err)

		assert.InDelta(t, d1, d2, 0.001)
	})

	t.Run("known_city_pair_distance", func(t *testing.T) {
		// Kigali to Huye is roughly 98 km as the crow flies.
		kigali, _ := kernel.NewLocation(-1.9441, 30.0619)
		huye, _ := kernel.NewLocation(-2.5967, 29.7392)

		d, err := kigali.DistanceMeters(huye)

		require.NoError(t, err)
		assert.InDelta(t, 81000, d, 5000)
	})

	t.Run("unconstructed_location_fails", func(t *testing.T) {
		var zero kernel.Location
		loc, _ := kernel.NewLocation(-1.9441, 30.0619)

		_, err := loc.DistanceMeters(zero)

		require.Error(t, err)
	})
}

func TestLocation_IsEqual(t *testing.T) {
	a, _ := kernel.NewLocation(-1.9441, 30.0619)
	b, _ := kernel.NewLocation(-1.9441, 30.0619)
	c, _ := kernel.NewLocation(-1.9442, 30.0619)

	equal, err := a.IsEqual(b)
	require.NoError(t, err)
	assert.True(t, equal)

	equal, err = a.IsEqual(c)
	require.NoError(t, err)
	assert.False(t, equal)
}

func TestLocation_String(t *testing.T) {
	loc, _ := kernel.NewLocation(-1.9441, 30.0619)

	assert.Equal(t, "Location(-1.944100,30.061900)", loc.String())
}
