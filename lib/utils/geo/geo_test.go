package geo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDistance(t *testing.T) {
	t.Run(`zero distance for identical points`, func(t *testing.T) {
		require.Equal(t, 0, RoundedDistance(39.9042, 116.4074, 39.9042, 116.4074))
	})

	t.Run(`short distance near the store`, func(t *testing.T) {
		// Roughly 111 meters per 0.001 degrees of latitude.
		dist := RoundedDistance(39.9042, 116.4074, 39.9052, 116.4074)
		require.InDelta(t, 111, dist, 1)
	})

	t.Run(`known city pair`, func(t *testing.T) {
		// Beijing to Shanghai, great-circle distance about 1068 km.
		dist := Distance(39.9042, 116.4074, 31.2304, 121.4737)
		require.InDelta(t, 1068000, dist, 2000)
	})

	t.Run(`symmetric`, func(t *testing.T) {
		d1 := Distance(39.9042, 116.4074, 31.2304, 121.4737)
		d2 := Distance(31.2304, 121.4737, 39.9042, 116.4074)
		require.InDelta(t, d1, d2, 0.0001)
	})
}
