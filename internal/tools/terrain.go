package tools

import (
	"fmt"

	"github.com/azerothmcp/server/internal/terrain"
)

func (s *Service) mapName(id int) string {
	if s.MapIdx == nil {
		return fmt.Sprintf("Map %d", id)
	}
	return s.MapIdx.Name(id)
}

// HeightResult is a resolved ground position: height, area id, and any
// liquid surface covering it.
type HeightResult struct {
	MapID  int                 `json:"map_id"`
	Map    string              `json:"map"`
	X      float64             `json:"x"`
	Y      float64             `json:"y"`
	GridX  int                 `json:"grid_x"`
	GridY  int                 `json:"grid_y"`
	Tile   string              `json:"tile"`
	Height float32             `json:"height"`
	Area   uint16              `json:"area_id"`
	Liquid *terrain.LiquidInfo `json:"liquid,omitempty"`
}

// HeightAt samples the ground height at a world position. An uncovered
// position is a clean miss naming the tile that would cover it.
func (s *Service) HeightAt(mapID int, x, y float64) (any, error) {
	t, err := s.mapTable()
	if err != nil {
		return nil, err
	}
	h, ok, err := t.HeightAt(mapID, x, y)
	if err != nil {
		return nil, err
	}
	gx, gy := terrain.WorldToGrid(x, y)
	if !ok {
		return &Notice{
			Message: fmt.Sprintf("No height data for (%.1f, %.1f) on map %d", x, y, mapID),
			Hint:    fmt.Sprintf("Tile %s may not be extracted; check available_tiles", terrain.TileName(mapID, gx, gy)),
		}, nil
	}
	res := &HeightResult{
		MapID:  mapID,
		Map:    s.mapName(mapID),
		X:      x,
		Y:      y,
		GridX:  gx,
		GridY:  gy,
		Tile:   terrain.TileName(mapID, gx, gy),
		Height: h,
	}
	if area, ok, err := t.AreaAt(mapID, x, y); err == nil && ok {
		res.Area = area
	}
	if liq, ok, err := t.LiquidAt(mapID, x, y); err == nil && ok {
		res.Liquid = &liq
	}
	return res, nil
}

// Bounds is a world-space rectangle.
type Bounds struct {
	MinX float64 `json:"min_x"`
	MinY float64 `json:"min_y"`
	MaxX float64 `json:"max_x"`
	MaxY float64 `json:"max_y"`
}

// HeightSummary reports the vertical range of one tile. Flat tiles carry a
// single plane height instead of a vertex grid.
type HeightSummary struct {
	Flat bool    `json:"flat"`
	Min  float32 `json:"min"`
	Max  float32 `json:"max"`
}

func heightSummary(h *terrain.HeightData) *HeightSummary {
	if h == nil {
		return nil
	}
	hs := &HeightSummary{Flat: !h.HasHeight(), Min: h.GridHeight, Max: h.GridHeight}
	if h.HasHeight() {
		hs.Min, hs.Max = heightRange(h.V9)
	}
	return hs
}

func heightRange(v []float32) (lo, hi float32) {
	if len(v) == 0 {
		return 0, 0
	}
	lo, hi = v[0], v[0]
	for _, h := range v[1:] {
		if h < lo {
			lo = h
		}
		if h > hi {
			hi = h
		}
	}
	return lo, hi
}

// AreaSummary reports the area-id layout of one tile.
type AreaSummary struct {
	Uniform  bool   `json:"uniform"`
	GridArea uint16 `json:"grid_area"`
}

// LiquidSummary reports the liquid layer of one tile.
type LiquidSummary struct {
	Type  uint16  `json:"type"`
	Level float32 `json:"level"`
	Cells int     `json:"cells"`
}

// TileSummary describes one decoded tile: which sections it carries, its
// world bounds, and the height range. Absent sections are null.
type TileSummary struct {
	MapID   int            `json:"map_id"`
	Map     string         `json:"map"`
	GridX   int            `json:"grid_x"`
	GridY   int            `json:"grid_y"`
	File    string         `json:"file"`
	Version uint32         `json:"version"`
	Build   uint32         `json:"build"`
	Bounds  Bounds         `json:"world_bounds"`
	Height  *HeightSummary `json:"height"`
	Area    *AreaSummary   `json:"area"`
	Liquid  *LiquidSummary `json:"liquid"`
	Holes   int            `json:"hole_chunks"`
}

// TileInfo loads one grid tile and summarizes its sections.
func (s *Service) TileInfo(mapID, gx, gy int) (any, error) {
	t, err := s.mapTable()
	if err != nil {
		return nil, err
	}
	if !terrain.ValidGrid(gx, gy) {
		return nil, fmt.Errorf("grid coordinates (%d, %d) out of range 0-63", gx, gy)
	}
	tile, err := t.Tile(mapID, gx, gy)
	if err != nil {
		return nil, err
	}
	if tile == nil {
		return &Notice{
			Message: fmt.Sprintf("Tile %s not extracted for map %d", terrain.TileName(mapID, gx, gy), mapID),
			Hint:    "Run the map extractor or check the maps directory path",
		}, nil
	}
	return summarizeTile(s.mapName(mapID), tile), nil
}

func summarizeTile(mapName string, tile *terrain.Tile) *TileSummary {
	minX, minY, maxX, maxY := tile.WorldBounds()
	sum := &TileSummary{
		MapID:   tile.MapID,
		Map:     mapName,
		GridX:   tile.GridX,
		GridY:   tile.GridY,
		File:    terrain.TileName(tile.MapID, tile.GridX, tile.GridY),
		Version: tile.Header.Version,
		Build:   tile.Header.Build,
		Bounds:  Bounds{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY},
		Height:  heightSummary(tile.Height),
	}
	if a := tile.Area; a != nil {
		sum.Area = &AreaSummary{Uniform: a.Map == nil, GridArea: a.GridArea}
	}
	if l := tile.Liquid; l != nil {
		sum.Liquid = &LiquidSummary{
			Type:  l.Type,
			Level: l.Level,
			Cells: int(l.Width) * int(l.Height),
		}
	}
	for _, mask := range tile.Holes {
		if mask != 0 {
			sum.Holes++
		}
	}
	return sum
}

// RectTile is one tile entry of a rectangle query.
type RectTile struct {
	GridX  int            `json:"grid_x"`
	GridY  int            `json:"grid_y"`
	File   string         `json:"file"`
	Height *HeightSummary `json:"height"`
}

// RectTiles lists the extracted tiles overlapping a world rectangle.
type RectTiles struct {
	MapID int        `json:"map_id"`
	Map   string     `json:"map"`
	Count int        `json:"count"`
	Tiles []RectTile `json:"tiles"`
}

// TilesInRect loads every extracted tile overlapping a world rectangle
// and reports each tile's height range.
func (s *Service) TilesInRect(mapID int, minX, minY, maxX, maxY float64) (any, error) {
	t, err := s.mapTable()
	if err != nil {
		return nil, err
	}
	tiles, err := t.TilesCovering(mapID, minX, minY, maxX, maxY)
	if err != nil {
		return nil, err
	}
	if len(tiles) == 0 {
		return &Notice{
			Message: fmt.Sprintf("No extracted tiles cover (%.1f, %.1f)-(%.1f, %.1f) on map %d",
				minX, minY, maxX, maxY, mapID),
		}, nil
	}
	out := &RectTiles{MapID: mapID, Map: s.mapName(mapID), Count: len(tiles), Tiles: make([]RectTile, len(tiles))}
	for i, tile := range tiles {
		out.Tiles[i] = RectTile{
			GridX:  tile.GridX,
			GridY:  tile.GridY,
			File:   terrain.TileName(tile.MapID, tile.GridX, tile.GridY),
			Height: heightSummary(tile.Height),
		}
	}
	return out, nil
}

// TileInventory is the extracted-grid inventory of one map.
type TileInventory struct {
	MapID int                 `json:"map_id"`
	Map   string              `json:"map"`
	Count int                 `json:"count"`
	Tiles []terrain.GridCoord `json:"tiles"`
}

// AvailableTiles scans the maps directory for the extracted grids of one
// map.
func (s *Service) AvailableTiles(mapID int) (*TileInventory, error) {
	t, err := s.mapTable()
	if err != nil {
		return nil, err
	}
	coords, err := t.AvailableTiles(mapID)
	if err != nil {
		return nil, err
	}
	if coords == nil {
		coords = []terrain.GridCoord{}
	}
	return &TileInventory{MapID: mapID, Map: s.mapName(mapID), Count: len(coords), Tiles: coords}, nil
}
