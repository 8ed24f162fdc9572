package terrain

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTile(t *testing.T, dir string, mapID, gx, gy int, data []byte) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, TileName(mapID, gx, gy)), data, 0o644))
}

func TestTableLoadsAndCaches(t *testing.T) {
	dir := t.TempDir()
	writeTile(t, dir, 0, 31, 31, tileFile{height: planeHeightSection(42)}.bytes())

	tab := NewTable(dir)
	tile, err := tab.Tile(0, 31, 31)
	require.NoError(t, err)
	require.NotNil(t, tile)
	assert.Equal(t, 0, tile.MapID)
	assert.Equal(t, 31, tile.GridX)
	assert.Equal(t, 31, tile.GridY)

	again, err := tab.Tile(0, 31, 31)
	require.NoError(t, err)
	assert.Same(t, tile, again)
	assert.Equal(t, 1, tab.CachedTiles())
}

func TestTableMissingTile(t *testing.T) {
	tab := NewTable(t.TempDir())

	tile, err := tab.Tile(0, 31, 31)
	require.NoError(t, err)
	assert.Nil(t, tile)
	assert.Equal(t, 1, tab.CachedTiles(), "absence is cached too")
}

func TestTableMalformedTile(t *testing.T) {
	dir := t.TempDir()
	writeTile(t, dir, 0, 31, 31, []byte("not a map tile, certainly"))

	_, err := NewTable(dir).Tile(0, 31, 31)
	require.ErrorIs(t, err, ErrFormat)
	assert.Contains(t, err.Error(), "0003131.map")
}

func TestTableHeightAt(t *testing.T) {
	dir := t.TempDir()
	gx, gy := WorldToGrid(100, 100)
	writeTile(t, dir, 0, gx, gy, tileFile{height: planeHeightSection(42)}.bytes())

	tab := NewTable(dir)
	h, ok, err := tab.HeightAt(0, 100, 100)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, float32(42), h)

	// Valid grid, tile never extracted.
	_, ok, err = tab.HeightAt(0, 100, -16000)
	require.NoError(t, err)
	assert.False(t, ok)

	// Off the 64x64 grid entirely.
	_, ok, err = tab.HeightAt(0, 1e9, 0)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTableAreaAndLiquidAt(t *testing.T) {
	dir := t.TempDir()
	writeTile(t, dir, 0, 31, 31, tileFile{
		area: areaSection(areaNoArea, 1519, nil),
		liquid: liquidSection(liquidSpec{
			flags:       liquidNoType | liquidNoHeight,
			globalFlags: 0x01,
			typ:         2,
			level:       8,
		}),
	}.bytes())

	tab := NewTable(dir)
	area, ok, err := tab.AreaAt(0, 266.6, 266.6)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, uint16(1519), area)

	info, ok, err := tab.LiquidAt(0, 266.6, 266.6)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, uint16(2), info.Entry)
	assert.Equal(t, float32(8), info.Level)
}

func TestTilesCovering(t *testing.T) {
	dir := t.TempDir()
	flat := tileFile{height: planeHeightSection(1)}.bytes()
	writeTile(t, dir, 0, 31, 31, flat)
	writeTile(t, dir, 0, 32, 31, flat)
	writeTile(t, dir, 0, 31, 33, flat) // outside the query rectangle

	tab := NewTable(dir)
	tiles, err := tab.TilesCovering(0, -100, 100, 100, 200)
	require.NoError(t, err)
	require.Len(t, tiles, 2)

	got := map[[2]int]bool{}
	for _, tile := range tiles {
		got[[2]int{tile.GridX, tile.GridY}] = true
	}
	assert.True(t, got[[2]int{31, 31}])
	assert.True(t, got[[2]int{32, 31}])
}

func TestAvailableTiles(t *testing.T) {
	dir := t.TempDir()
	junk := []byte("ignored")
	for _, name := range []string{
		"0003148.map",
		"0000101.map",
		"5710102.map",
		"000banana.map", // map prefix but no grid indices
		"000.map",       // too short
		"readme.txt",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), junk, 0o644))
	}

	tab := NewTable(dir)
	coords, err := tab.AvailableTiles(0)
	require.NoError(t, err)
	assert.Equal(t, []GridCoord{{X: 1, Y: 1}, {X: 31, Y: 48}}, coords)

	coords, err = tab.AvailableTiles(571)
	require.NoError(t, err)
	assert.Equal(t, []GridCoord{{X: 1, Y: 2}}, coords)

	coords, err = tab.AvailableTiles(1)
	require.NoError(t, err)
	assert.Empty(t, coords)
}
