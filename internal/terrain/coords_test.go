package terrain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestWorldToGrid(t *testing.T) {
	gx, gy := WorldToGrid(0, 0)
	assert.Equal(t, 32, gx)
	assert.Equal(t, 32, gy)

	gx, gy = WorldToGrid(16000, -16000)
	assert.Equal(t, 1, gx)
	assert.Equal(t, 62, gy)

	gx, gy = WorldToGrid(-8833.38, 628.62) // Stormwind
	assert.Equal(t, 48, gx)
	assert.Equal(t, 30, gy)
}

func TestGridBounds(t *testing.T) {
	minX, minY, maxX, maxY := GridBounds(31, 31)
	assert.InDelta(t, 0, minX, 0.001)
	assert.InDelta(t, 0, minY, 0.001)
	assert.InDelta(t, GridSize, maxX, 0.001)
	assert.InDelta(t, GridSize, maxY, 0.001)

	minX, _, maxX, _ = GridBounds(32, 32)
	assert.InDelta(t, -GridSize, minX, 0.001)
	assert.InDelta(t, 0, maxX, 0.001)
}

func TestGridRoundTrips(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		gx := rapid.IntRange(0, GridsPerMap-1).Draw(t, "gx")
		gy := rapid.IntRange(0, GridsPerMap-1).Draw(t, "gy")

		x, y := GridToWorldCenter(gx, gy)
		rx, ry := WorldToGrid(x, y)
		assert.Equal(t, gx, rx)
		assert.Equal(t, gy, ry)

		// Any interior point of the tile maps back to it. The offsets stay
		// clear of the shared edges where float truncation could go either
		// way.
		_, _, maxX, maxY := GridBounds(gx, gy)
		u := rapid.Float64Range(0.001, 533.0).Draw(t, "u")
		v := rapid.Float64Range(0.001, 533.0).Draw(t, "v")
		rx, ry = WorldToGrid(maxX-u, maxY-v)
		assert.Equal(t, gx, rx)
		assert.Equal(t, gy, ry)
	})
}

func TestValidGrid(t *testing.T) {
	assert.True(t, ValidGrid(0, 0))
	assert.True(t, ValidGrid(63, 63))
	assert.False(t, ValidGrid(-1, 0))
	assert.False(t, ValidGrid(0, 64))
	assert.False(t, ValidGrid(64, 64))
}

func TestTileName(t *testing.T) {
	assert.Equal(t, "0003148.map", TileName(0, 31, 48))
	assert.Equal(t, "5710102.map", TileName(571, 1, 2))
	assert.Equal(t, "5306003.map", TileName(530, 60, 3))
}
