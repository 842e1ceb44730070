package flatbush

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHilbertKnownValues(t *testing.T) {
	require.Equal(t, uint32(0), hilbert(0, 0))
	require.NotEqual(t, hilbert(0, 0), hilbert(1, 0))
	require.NotEqual(t, hilbert(0, 0), hilbert(0, 1))
}

func TestHilbertIsInjectiveOnSample(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	seen := make(map[uint32][2]uint32, 20000)

	for i := 0; i < 20000; i++ {
		x := uint32(rng.Intn(65536))
		y := uint32(rng.Intn(65536))
		v := hilbert(x, y)
		prev, dup := seen[v]
		require.False(t, dup && prev != [2]uint32{x, y}, "collision at (%d,%d) -> %d", x, y, v)
		seen[v] = [2]uint32{x, y}
	}
}

// TestHilbertLocality checks the curve's defining property: points adjacent
// on the grid land at Hilbert distances that are small relative to the
// full [0, 2^32) range, far more often than two uniformly random points do.
func TestHilbertLocality(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	const samples = 2000
	const maxJump = 1 << 24 // generous bound, well under the full 2^32 range

	closeJumps := 0
	for i := 0; i < samples; i++ {
		x := uint32(1 + rng.Intn(65534))
		y := uint32(1 + rng.Intn(65534))

		v := int64(hilbert(x, y))
		vRight := int64(hilbert(x+1, y))

		diff := v - vRight
		if diff < 0 {
			diff = -diff
		}
		if diff < maxJump {
			closeJumps++
		}
	}

	require.Greater(t, closeJumps, samples/10, "expected grid-adjacent points to have nearby Hilbert distances far more often than random points")
}

func TestInterleaveMasksToEvenBits(t *testing.T) {
	require.Equal(t, uint32(0), interleave(0))
	require.Equal(t, uint32(1), interleave(1))
	require.Equal(t, uint32(0x55555555), interleave(0xFFFF))
}
