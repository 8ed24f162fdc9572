package terrain

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// GridCoord addresses one tile on a map's 64x64 grid.
type GridCoord struct {
	X int `json:"grid_x"`
	Y int `json:"grid_y"`
}

type tileKey struct {
	mapID, gx, gy int
}

// Table loads and caches map tiles from a directory. Misses are cached
// too, so repeated queries against tiles that were never extracted stay
// off the filesystem. Safe for concurrent use.
type Table struct {
	dir string

	mu    sync.RWMutex
	tiles map[tileKey]*Tile // nil value = known absent
}

// NewTable creates a tile table over a maps directory.
func NewTable(dir string) *Table {
	return &Table{dir: dir, tiles: make(map[tileKey]*Tile)}
}

// Dir returns the maps directory the table reads from.
func (t *Table) Dir() string { return t.dir }

// CachedTiles returns how many lookups are cached, absent tiles included.
func (t *Table) CachedTiles() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.tiles)
}

// Tile returns the parsed tile for (mapID, gx, gy), loading it on first
// use. A tile that was never extracted returns (nil, nil); a file that
// exists but does not decode is an error.
func (t *Table) Tile(mapID, gx, gy int) (*Tile, error) {
	key := tileKey{mapID, gx, gy}
	t.mu.RLock()
	tile, ok := t.tiles[key]
	t.mu.RUnlock()
	if ok {
		return tile, nil
	}

	path := filepath.Join(t.dir, TileName(mapID, gx, gy))
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		t.store(key, nil)
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	tile, err = DecodeTile(data, mapID, gx, gy)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	t.store(key, tile)
	return tile, nil
}

func (t *Table) store(key tileKey, tile *Tile) {
	t.mu.Lock()
	t.tiles[key] = tile
	t.mu.Unlock()
}

// HeightAt resolves the terrain height under a world coordinate. ok is
// false when the coordinate maps off the grid, the tile is absent, or the
// tile has no height data.
func (t *Table) HeightAt(mapID int, x, y float64) (h float32, ok bool, err error) {
	gx, gy := WorldToGrid(x, y)
	if !ValidGrid(gx, gy) {
		return 0, false, nil
	}
	tile, err := t.Tile(mapID, gx, gy)
	if err != nil || tile == nil {
		return 0, false, err
	}
	h, ok = tile.HeightAt(x, y)
	return h, ok, nil
}

// AreaAt resolves the area id under a world coordinate. ok is false when
// no tile covers the coordinate.
func (t *Table) AreaAt(mapID int, x, y float64) (area uint16, ok bool, err error) {
	gx, gy := WorldToGrid(x, y)
	if !ValidGrid(gx, gy) {
		return 0, false, nil
	}
	tile, err := t.Tile(mapID, gx, gy)
	if err != nil || tile == nil {
		return 0, false, err
	}
	return tile.AreaAt(x, y), true, nil
}

// LiquidAt resolves the liquid under a world coordinate. ok is false when
// no tile covers the coordinate or the tile holds no liquid there.
func (t *Table) LiquidAt(mapID int, x, y float64) (info LiquidInfo, ok bool, err error) {
	gx, gy := WorldToGrid(x, y)
	if !ValidGrid(gx, gy) {
		return LiquidInfo{}, false, nil
	}
	tile, err := t.Tile(mapID, gx, gy)
	if err != nil || tile == nil {
		return LiquidInfo{}, false, err
	}
	info, ok = tile.LiquidAt(x, y)
	return info, ok, nil
}

// TilesCovering loads every extracted tile overlapping a world-coordinate
// rectangle. Because world axes run opposite to grid indices, the maximum
// corner maps to the lowest grid indices. Absent tiles are skipped.
func (t *Table) TilesCovering(mapID int, minX, minY, maxX, maxY float64) ([]*Tile, error) {
	gxMin, gyMin := WorldToGrid(maxX, maxY)
	gxMax, gyMax := WorldToGrid(minX, minY)

	var tiles []*Tile
	for gx := gxMin; gx <= gxMax; gx++ {
		for gy := gyMin; gy <= gyMax; gy++ {
			if !ValidGrid(gx, gy) {
				continue
			}
			tile, err := t.Tile(mapID, gx, gy)
			if err != nil {
				return nil, err
			}
			if tile != nil {
				tiles = append(tiles, tile)
			}
		}
	}
	return tiles, nil
}

// AvailableTiles scans the maps directory for extracted tiles of one map,
// sorted by grid x then grid y. File names that carry the map prefix but
// no parseable grid indices are ignored.
func (t *Table) AvailableTiles(mapID int) ([]GridCoord, error) {
	entries, err := os.ReadDir(t.dir)
	if err != nil {
		return nil, fmt.Errorf("scan maps dir: %w", err)
	}

	prefix := fmt.Sprintf("%03d", mapID)
	var coords []GridCoord
	for _, e := range entries {
		name := e.Name()
		if !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, ".map") || len(name) < 11 {
			continue
		}
		gx, err := strconv.Atoi(name[3:5])
		if err != nil {
			continue
		}
		gy, err := strconv.Atoi(name[5:7])
		if err != nil {
			continue
		}
		coords = append(coords, GridCoord{X: gx, Y: gy})
	}
	sort.Slice(coords, func(i, j int) bool {
		if coords[i].X != coords[j].X {
			return coords[i].X < coords[j].X
		}
		return coords[i].Y < coords[j].Y
	})
	return coords, nil
}
