package terrain

import "fmt"

// WorldToGrid converts world coordinates to grid indices. The conversion
// truncates toward zero; callers must range-check the result, since world
// coordinates beyond roughly ±17066 land outside [0, 64).
func WorldToGrid(x, y float64) (gx, gy int) {
	gx = int(centerGrid - x/GridSize)
	gy = int(centerGrid - y/GridSize)
	return gx, gy
}

// GridToWorldCenter returns the world coordinates of a tile's center.
func GridToWorldCenter(gx, gy int) (x, y float64) {
	x = (centerGrid - float64(gx) - 0.5) * GridSize
	y = (centerGrid - float64(gy) - 0.5) * GridSize
	return x, y
}

// GridBounds returns the world extent of a tile. Higher grid indices cover
// lower world coordinates.
func GridBounds(gx, gy int) (minX, minY, maxX, maxY float64) {
	minX = (centerGrid - float64(gx) - 1) * GridSize
	maxX = (centerGrid - float64(gx)) * GridSize
	minY = (centerGrid - float64(gy) - 1) * GridSize
	maxY = (centerGrid - float64(gy)) * GridSize
	return minX, minY, maxX, maxY
}

// ValidGrid reports whether grid indices address a tile on the 64x64 grid.
func ValidGrid(gx, gy int) bool {
	return gx >= 0 && gx < GridsPerMap && gy >= 0 && gy < GridsPerMap
}

// TileName returns the on-disk file name for a tile.
func TileName(mapID, gx, gy int) string {
	return fmt.Sprintf("%03d%02d%02d.map", mapID, gx, gy)
}
