// Package terrain parses AzerothCore .map terrain tiles and answers
// height, area, and liquid queries in world coordinates.
//
// A map is a 64x64 grid of tiles, each 533.3333 units square, stored one
// file per tile as MMMXXYY.map (map id, grid x, grid y). World axes run
// opposite to grid indices: grid (0,0) holds the highest world coordinates
// and index 0 of a tile's height map sits at the tile's maximum corner.
package terrain

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

const (
	// GridsPerMap is the tile grid dimension of every map.
	GridsPerMap = 64
	// GridSize is the side length of one tile in world units.
	GridSize = 533.3333
	// MapResolution is the per-tile resolution of liquid and hole lookups.
	MapResolution = 128

	centerGrid = GridsPerMap / 2
)

// Well known map ids.
const (
	MapEasternKingdoms = 0
	MapKalimdor        = 1
	MapOutland         = 530
	MapNorthrend       = 571
)

const (
	fileMagic   = "MAPS"
	areaMagic   = "AREA"
	heightMagic = "MHGT"
	liquidMagic = "MLIQ"

	mapVersion = 9
	headerSize = 44
)

// Height section flags.
const (
	heightNoHeight     = 0x0001
	heightAsInt16      = 0x0002
	heightAsInt8       = 0x0004
	heightFlightBounds = 0x0008
)

// Area section flags.
const areaNoArea = 0x0001

// Liquid section flags.
const (
	liquidNoType   = 0x0001
	liquidNoHeight = 0x0002
)

// ErrFormat is wrapped by every malformed-tile failure so callers can tell
// corrupt data from an absent tile.
var ErrFormat = errors.New("malformed map tile")

// Header is the fixed 44-byte .map file header after the magic tag. Offsets
// address sections from the start of the file; a zero size means the
// section is absent.
type Header struct {
	Version      uint32
	Build        uint32
	AreaOffset   uint32
	AreaSize     uint32
	HeightOffset uint32
	HeightSize   uint32
	LiquidOffset uint32
	LiquidSize   uint32
	HolesOffset  uint32
	HolesSize    uint32
}

// HeightData is a decoded MHGT section. V9 holds the 129x129 vertex
// heights and V8 the 128x128 triangle-center heights, both row-major and
// already rescaled to floats when the file stored quantized values.
type HeightData struct {
	Flags         uint32
	GridHeight    float32
	GridMaxHeight float32
	V9            []float32
	V8            []float32
}

// HasHeight reports whether the tile carries a real height map rather than
// a uniform plane.
func (h *HeightData) HasHeight() bool { return h.Flags&heightNoHeight == 0 }

// AreaData is a decoded AREA section. Map is the 16x16 per-chunk area id
// grid; when absent the whole tile shares GridArea.
type AreaData struct {
	Flags    uint16
	GridArea uint16
	Map      []uint16
}

// LiquidData is a decoded MLIQ section. Entries and EntryFlags are the
// 16x16 per-chunk liquid grids; Level and Map give the surface height,
// uniform or per-cell.
type LiquidData struct {
	Flags       uint8
	GlobalFlags uint8
	Type        uint16
	OffsetX     uint8
	OffsetY     uint8
	Width       uint8
	Height      uint8
	Level       float32
	Entries     []uint16
	EntryFlags  []uint8
	Map         []float32
}

// LiquidInfo is the result of a liquid query at one world coordinate.
type LiquidInfo struct {
	Entry uint16  `json:"entry"`
	Flags uint8   `json:"flags"`
	Level float32 `json:"level"`
}

// Tile is one fully decoded map tile. Height, Area, and Liquid are nil when
// the file carries no such section.
type Tile struct {
	MapID  int
	GridX  int
	GridY  int
	Header Header
	Height *HeightData
	Area   *AreaData
	Liquid *LiquidData
	Holes  []uint16
}

// DecodeTile parses an in-memory .map image. Truncated sections, a wrong
// magic, and an unsupported version are all hard errors: a tile either
// decodes completely or not at all.
func DecodeTile(data []byte, mapID, gridX, gridY int) (*Tile, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("%w: header: have %d bytes, want %d", ErrFormat, len(data), headerSize)
	}
	if string(data[:4]) != fileMagic {
		return nil, fmt.Errorf("%w: magic %q, want %q", ErrFormat, data[:4], fileMagic)
	}
	h := Header{
		Version:      binary.LittleEndian.Uint32(data[4:]),
		Build:        binary.LittleEndian.Uint32(data[8:]),
		AreaOffset:   binary.LittleEndian.Uint32(data[12:]),
		AreaSize:     binary.LittleEndian.Uint32(data[16:]),
		HeightOffset: binary.LittleEndian.Uint32(data[20:]),
		HeightSize:   binary.LittleEndian.Uint32(data[24:]),
		LiquidOffset: binary.LittleEndian.Uint32(data[28:]),
		LiquidSize:   binary.LittleEndian.Uint32(data[32:]),
		HolesOffset:  binary.LittleEndian.Uint32(data[36:]),
		HolesSize:    binary.LittleEndian.Uint32(data[40:]),
	}
	if h.Version != mapVersion {
		return nil, fmt.Errorf("%w: version %d, want %d", ErrFormat, h.Version, mapVersion)
	}

	tile := &Tile{MapID: mapID, GridX: gridX, GridY: gridY, Header: h}
	var err error

	if h.AreaSize > 0 {
		sec, serr := section(data, h.AreaOffset, h.AreaSize, "area")
		if serr != nil {
			return nil, serr
		}
		if tile.Area, err = parseArea(sec); err != nil {
			return nil, err
		}
	}
	if h.HeightSize > 0 {
		sec, serr := section(data, h.HeightOffset, h.HeightSize, "height")
		if serr != nil {
			return nil, serr
		}
		if tile.Height, err = parseHeight(sec); err != nil {
			return nil, err
		}
	}
	if h.LiquidSize > 0 {
		sec, serr := section(data, h.LiquidOffset, h.LiquidSize, "liquid")
		if serr != nil {
			return nil, serr
		}
		if tile.Liquid, err = parseLiquid(sec); err != nil {
			return nil, err
		}
	}
	if h.HolesSize > 0 {
		sec, serr := section(data, h.HolesOffset, h.HolesSize, "holes")
		if serr != nil {
			return nil, serr
		}
		if tile.Holes, err = parseHoles(sec); err != nil {
			return nil, err
		}
	}
	return tile, nil
}

func section(data []byte, off, size uint32, what string) ([]byte, error) {
	end := int64(off) + int64(size)
	if end > int64(len(data)) {
		return nil, fmt.Errorf("%w: %s section at %d+%d exceeds file size %d", ErrFormat, what, off, size, len(data))
	}
	return data[off:end], nil
}

func parseArea(sec []byte) (*AreaData, error) {
	if len(sec) < 8 {
		return nil, fmt.Errorf("%w: area header: have %d bytes, want 8", ErrFormat, len(sec))
	}
	if string(sec[:4]) != areaMagic {
		return nil, fmt.Errorf("%w: area magic %q, want %q", ErrFormat, sec[:4], areaMagic)
	}
	a := &AreaData{
		Flags:    binary.LittleEndian.Uint16(sec[4:]),
		GridArea: binary.LittleEndian.Uint16(sec[6:]),
	}
	if a.Flags&areaNoArea == 0 {
		grid, err := readUint16s(sec[8:], 16*16, "area grid")
		if err != nil {
			return nil, err
		}
		a.Map = grid
	}
	return a, nil
}

func parseHeight(sec []byte) (*HeightData, error) {
	if len(sec) < 12 {
		return nil, fmt.Errorf("%w: height header: have %d bytes, want 12", ErrFormat, len(sec))
	}
	if string(sec[:4]) != heightMagic {
		return nil, fmt.Errorf("%w: height magic %q, want %q", ErrFormat, sec[:4], heightMagic)
	}
	hd := &HeightData{
		Flags:      binary.LittleEndian.Uint32(sec[4:]),
		GridHeight: math.Float32frombits(binary.LittleEndian.Uint32(sec[8:])),
	}

	const v9Len = 129 * 129
	const v8Len = 128 * 128

	// A flat tile stores just the plane height; every vertex sits on it.
	if hd.Flags&heightNoHeight != 0 {
		hd.GridMaxHeight = hd.GridHeight
		hd.V9 = fill(v9Len, hd.GridHeight)
		hd.V8 = fill(v8Len, hd.GridHeight)
		return hd, nil
	}

	if len(sec) < 16 {
		return nil, fmt.Errorf("%w: height header: have %d bytes, want 16", ErrFormat, len(sec))
	}
	hd.GridMaxHeight = math.Float32frombits(binary.LittleEndian.Uint32(sec[12:]))
	body := sec[16:]
	span := hd.GridMaxHeight - hd.GridHeight

	switch {
	case hd.Flags&heightAsInt8 != 0:
		if len(body) < v9Len+v8Len {
			return nil, fmt.Errorf("%w: int8 height data: have %d bytes, want %d", ErrFormat, len(body), v9Len+v8Len)
		}
		hd.V9 = rescale8(body[:v9Len], hd.GridHeight, span)
		hd.V8 = rescale8(body[v9Len:v9Len+v8Len], hd.GridHeight, span)
	case hd.Flags&heightAsInt16 != 0:
		if len(body) < (v9Len+v8Len)*2 {
			return nil, fmt.Errorf("%w: int16 height data: have %d bytes, want %d", ErrFormat, len(body), (v9Len+v8Len)*2)
		}
		hd.V9 = rescale16(body[:v9Len*2], hd.GridHeight, span)
		hd.V8 = rescale16(body[v9Len*2:(v9Len+v8Len)*2], hd.GridHeight, span)
	default:
		if len(body) < (v9Len+v8Len)*4 {
			return nil, fmt.Errorf("%w: float height data: have %d bytes, want %d", ErrFormat, len(body), (v9Len+v8Len)*4)
		}
		hd.V9 = readFloats(body[:v9Len*4])
		hd.V8 = readFloats(body[v9Len*4 : (v9Len+v8Len)*4])
	}
	return hd, nil
}

func parseLiquid(sec []byte) (*LiquidData, error) {
	if len(sec) < 16 {
		return nil, fmt.Errorf("%w: liquid header: have %d bytes, want 16", ErrFormat, len(sec))
	}
	if string(sec[:4]) != liquidMagic {
		return nil, fmt.Errorf("%w: liquid magic %q, want %q", ErrFormat, sec[:4], liquidMagic)
	}
	lq := &LiquidData{
		Flags:       sec[4],
		GlobalFlags: sec[5],
		Type:        binary.LittleEndian.Uint16(sec[6:]),
		OffsetX:     sec[8],
		OffsetY:     sec[9],
		Width:       sec[10],
		Height:      sec[11],
		Level:       math.Float32frombits(binary.LittleEndian.Uint32(sec[12:])),
	}
	body := sec[16:]

	if lq.Flags&liquidNoType == 0 {
		entries, err := readUint16s(body, 16*16, "liquid entries")
		if err != nil {
			return nil, err
		}
		body = body[16*16*2:]
		if len(body) < 16*16 {
			return nil, fmt.Errorf("%w: liquid flags: have %d bytes, want %d", ErrFormat, len(body), 16*16)
		}
		lq.Entries = entries
		lq.EntryFlags = append([]uint8(nil), body[:16*16]...)
		body = body[16*16:]
	}
	if lq.Flags&liquidNoHeight == 0 {
		n := int(lq.Width) * int(lq.Height)
		if len(body) < n*4 {
			return nil, fmt.Errorf("%w: liquid level map: have %d bytes, want %d", ErrFormat, len(body), n*4)
		}
		lq.Map = readFloats(body[:n*4])
	}
	return lq, nil
}

func parseHoles(sec []byte) ([]uint16, error) {
	return readUint16s(sec, 16*16, "holes")
}

func readUint16s(b []byte, n int, what string) ([]uint16, error) {
	if len(b) < n*2 {
		return nil, fmt.Errorf("%w: %s: have %d bytes, want %d", ErrFormat, what, len(b), n*2)
	}
	out := make([]uint16, n)
	for i := range out {
		out[i] = binary.LittleEndian.Uint16(b[i*2:])
	}
	return out, nil
}

func readFloats(b []byte) []float32 {
	out := make([]float32, len(b)/4)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
	}
	return out
}

func rescale8(b []byte, base, span float32) []float32 {
	out := make([]float32, len(b))
	for i, v := range b {
		out[i] = float32(v)/255.0*span + base
	}
	return out
}

func rescale16(b []byte, base, span float32) []float32 {
	out := make([]float32, len(b)/2)
	for i := range out {
		v := binary.LittleEndian.Uint16(b[i*2:])
		out[i] = float32(v)/65535.0*span + base
	}
	return out
}

func fill(n int, v float32) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = v
	}
	return out
}

// WorldBounds returns the world extent of the tile. The height map's index
// 0 sits at (maxX, maxY).
func (t *Tile) WorldBounds() (minX, minY, maxX, maxY float64) {
	minX, minY, maxX, maxY = GridBounds(t.GridX, t.GridY)
	return
}

// HeightAt samples the vertex height map at a world coordinate. Coordinates
// outside the tile clamp to its edge. Returns false when the tile has no
// height section.
func (t *Tile) HeightAt(x, y float64) (float32, bool) {
	if t.Height == nil {
		return 0, false
	}
	_, _, maxX, maxY := t.WorldBounds()

	// World axes are mirrored against array indices.
	localX := clamp01((maxX - x) / GridSize)
	localY := clamp01((maxY - y) / GridSize)

	hx := clampIndex(int(localX * MapResolution))
	hy := clampIndex(int(localY * MapResolution))
	return t.Height.V9[hy*129+hx], true
}

// AreaAt returns the area id covering a world coordinate, falling back to
// the tile-wide id when the file has no per-chunk grid and 0 when the tile
// has no area section at all.
func (t *Tile) AreaAt(x, y float64) uint16 {
	if t.Area == nil {
		return 0
	}
	if t.Area.Map == nil {
		return t.Area.GridArea
	}
	lx := int(16*(centerGrid-x/GridSize)) & 15
	ly := int(16*(centerGrid-y/GridSize)) & 15
	return t.Area.Map[lx*16+ly]
}

// LiquidAt resolves the liquid under a world coordinate. ok is false when
// the tile has no liquid there, including coordinates outside the stored
// level-map window.
func (t *Tile) LiquidAt(x, y float64) (LiquidInfo, bool) {
	lq := t.Liquid
	if lq == nil {
		return LiquidInfo{}, false
	}
	cx := int(MapResolution*(centerGrid-x/GridSize)) & (MapResolution - 1)
	cy := int(MapResolution*(centerGrid-y/GridSize)) & (MapResolution - 1)

	info := LiquidInfo{Entry: lq.Type, Flags: lq.GlobalFlags, Level: lq.Level}
	if lq.Entries != nil {
		idx := (cx>>3)*16 + (cy >> 3)
		info.Entry = lq.Entries[idx]
		info.Flags = lq.EntryFlags[idx]
	}
	if info.Flags == 0 {
		return LiquidInfo{}, false
	}
	if lq.Map != nil {
		// Offsets swap axes: the row window is OffsetY, the column OffsetX.
		mx := cx - int(lq.OffsetY)
		my := cy - int(lq.OffsetX)
		if mx < 0 || mx >= int(lq.Height) || my < 0 || my >= int(lq.Width) {
			return LiquidInfo{}, false
		}
		info.Level = lq.Map[mx*int(lq.Width)+my]
	}
	return info, true
}

// Hole bit tables, one nibble column and one nibble row per 2x2 square.
var (
	holetabH = [4]uint16{0x1111, 0x2222, 0x4444, 0x8888}
	holetabV = [4]uint16{0x000F, 0x00F0, 0x0F00, 0xF000}
)

// IsHole reports whether terrain is cut out under a world coordinate.
func (t *Tile) IsHole(x, y float64) bool {
	if t.Holes == nil {
		return false
	}
	row := int(MapResolution*(centerGrid-x/GridSize)) & (MapResolution - 1)
	col := int(MapResolution*(centerGrid-y/GridSize)) & (MapResolution - 1)

	cellRow := row >> 3
	cellCol := col >> 3
	holeRow := row % 8 / 2
	holeCol := (col - cellCol<<3) / 2

	hole := t.Holes[cellRow*16+cellCol]
	return hole&holetabH[holeCol]&holetabV[holeRow] != 0
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clampIndex(i int) int {
	if i < 0 {
		return 0
	}
	if i > MapResolution {
		return MapResolution
	}
	return i
}
