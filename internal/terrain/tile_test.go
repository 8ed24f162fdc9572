package terrain

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// tileFile assembles a .map image with sections laid out after the header
// in area, height, liquid, holes order.
type tileFile struct {
	magic   string
	version uint32
	build   uint32
	area    []byte
	height  []byte
	liquid  []byte
	holes   []byte
}

func (tf tileFile) bytes() []byte {
	magic := tf.magic
	if magic == "" {
		magic = "MAPS"
	}
	version := tf.version
	if version == 0 {
		version = 9
	}

	sections := [][]byte{tf.area, tf.height, tf.liquid, tf.holes}
	var offs [8]uint32
	off := uint32(headerSize)
	for i, sec := range sections {
		if len(sec) > 0 {
			offs[i*2] = off
			offs[i*2+1] = uint32(len(sec))
			off += uint32(len(sec))
		}
	}

	buf := new(bytes.Buffer)
	buf.WriteString(magic)
	binary.Write(buf, binary.LittleEndian, version)
	binary.Write(buf, binary.LittleEndian, tf.build)
	for _, v := range offs {
		binary.Write(buf, binary.LittleEndian, v)
	}
	for _, sec := range sections {
		buf.Write(sec)
	}
	return buf.Bytes()
}

func planeHeightSection(h float32) []byte {
	buf := new(bytes.Buffer)
	buf.WriteString("MHGT")
	binary.Write(buf, binary.LittleEndian, uint32(heightNoHeight))
	binary.Write(buf, binary.LittleEndian, h)
	return buf.Bytes()
}

func floatHeightSection(base, max float32, mutate func(v9 []float32)) []byte {
	v9 := make([]float32, 129*129)
	v8 := make([]float32, 128*128)
	for i := range v9 {
		v9[i] = base
	}
	for i := range v8 {
		v8[i] = base
	}
	if mutate != nil {
		mutate(v9)
	}
	buf := new(bytes.Buffer)
	buf.WriteString("MHGT")
	binary.Write(buf, binary.LittleEndian, uint32(0))
	binary.Write(buf, binary.LittleEndian, base)
	binary.Write(buf, binary.LittleEndian, max)
	binary.Write(buf, binary.LittleEndian, v9)
	binary.Write(buf, binary.LittleEndian, v8)
	return buf.Bytes()
}

func int16HeightSection(base, max float32, v9 []uint16, v8 []uint16) []byte {
	buf := new(bytes.Buffer)
	buf.WriteString("MHGT")
	binary.Write(buf, binary.LittleEndian, uint32(heightAsInt16))
	binary.Write(buf, binary.LittleEndian, base)
	binary.Write(buf, binary.LittleEndian, max)
	binary.Write(buf, binary.LittleEndian, v9)
	binary.Write(buf, binary.LittleEndian, v8)
	return buf.Bytes()
}

func int8HeightSection(base, max float32, v9 []uint8, v8 []uint8) []byte {
	buf := new(bytes.Buffer)
	buf.WriteString("MHGT")
	binary.Write(buf, binary.LittleEndian, uint32(heightAsInt8))
	binary.Write(buf, binary.LittleEndian, base)
	binary.Write(buf, binary.LittleEndian, max)
	buf.Write(v9)
	buf.Write(v8)
	return buf.Bytes()
}

func areaSection(flags, gridArea uint16, grid []uint16) []byte {
	buf := new(bytes.Buffer)
	buf.WriteString("AREA")
	binary.Write(buf, binary.LittleEndian, flags)
	binary.Write(buf, binary.LittleEndian, gridArea)
	if grid != nil {
		binary.Write(buf, binary.LittleEndian, grid)
	}
	return buf.Bytes()
}

type liquidSpec struct {
	flags       uint8
	globalFlags uint8
	typ         uint16
	offX, offY  uint8
	w, h        uint8
	level       float32
	entries     []uint16
	entryFlags  []uint8
	levels      []float32
}

func liquidSection(ls liquidSpec) []byte {
	buf := new(bytes.Buffer)
	buf.WriteString("MLIQ")
	buf.WriteByte(ls.flags)
	buf.WriteByte(ls.globalFlags)
	binary.Write(buf, binary.LittleEndian, ls.typ)
	buf.WriteByte(ls.offX)
	buf.WriteByte(ls.offY)
	buf.WriteByte(ls.w)
	buf.WriteByte(ls.h)
	binary.Write(buf, binary.LittleEndian, ls.level)
	if ls.entries != nil {
		binary.Write(buf, binary.LittleEndian, ls.entries)
		buf.Write(ls.entryFlags)
	}
	if ls.levels != nil {
		binary.Write(buf, binary.LittleEndian, ls.levels)
	}
	return buf.Bytes()
}

func holesSection(holes []uint16) []byte {
	buf := new(bytes.Buffer)
	binary.Write(buf, binary.LittleEndian, holes)
	return buf.Bytes()
}

func TestDecodeTileHeaderErrors(t *testing.T) {
	cases := []struct {
		name string
		data []byte
	}{
		{"short file", []byte("MAPS\x09")},
		{"bad magic", tileFile{magic: "MAPX"}.bytes()},
		{"bad version", tileFile{version: 10}.bytes()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeTile(tc.data, 0, 31, 31)
			require.ErrorIs(t, err, ErrFormat)
		})
	}
}

func TestDecodeTileSectionOutOfBounds(t *testing.T) {
	data := tileFile{height: planeHeightSection(1)}.bytes()
	// Height size now reaches past the end of the file.
	binary.LittleEndian.PutUint32(data[24:], 4096)

	_, err := DecodeTile(data, 0, 31, 31)
	require.ErrorIs(t, err, ErrFormat)
}

func TestDecodeHeightBadMagic(t *testing.T) {
	sec := planeHeightSection(1)
	copy(sec, "MHGX")
	_, err := DecodeTile(tileFile{height: sec}.bytes(), 0, 31, 31)
	require.ErrorIs(t, err, ErrFormat)
}

func TestDecodeHeightTruncated(t *testing.T) {
	sec := floatHeightSection(0, 10, nil)
	_, err := DecodeTile(tileFile{height: sec[:len(sec)-8]}.bytes(), 0, 31, 31)
	require.ErrorIs(t, err, ErrFormat)
}

func TestDecodeFlatTile(t *testing.T) {
	tile, err := DecodeTile(tileFile{height: planeHeightSection(42.5)}.bytes(), 0, 31, 31)
	require.NoError(t, err)
	require.NotNil(t, tile.Height)

	assert.False(t, tile.Height.HasHeight())
	assert.Equal(t, float32(42.5), tile.Height.GridHeight)
	assert.Equal(t, float32(42.5), tile.Height.GridMaxHeight)
	assert.Len(t, tile.Height.V9, 129*129)
	assert.Len(t, tile.Height.V8, 128*128)

	for _, pt := range [][2]float64{{100, 100}, {0.5, 533}, {533, 0.5}} {
		h, ok := tile.HeightAt(pt[0], pt[1])
		require.True(t, ok)
		assert.Equal(t, float32(42.5), h)
	}
}

func TestHeightAtVertices(t *testing.T) {
	// Grid (31, 31) spans world (0, 0) .. (533.3333, 533.3333); index 0 of
	// the height map sits at the maximum corner.
	sec := floatHeightSection(10, 200, func(v9 []float32) {
		v9[0] = 100          // max corner
		v9[128*129+128] = 55 // min corner
		v9[64*129+64] = 77   // center vertex
	})
	tile, err := DecodeTile(tileFile{height: sec}.bytes(), 0, 31, 31)
	require.NoError(t, err)

	_, _, maxX, maxY := tile.WorldBounds()

	h, ok := tile.HeightAt(maxX, maxY)
	require.True(t, ok)
	assert.Equal(t, float32(100), h)

	h, _ = tile.HeightAt(0, 0)
	assert.Equal(t, float32(55), h)

	h, _ = tile.HeightAt(maxX-0.5001*GridSize, maxY-0.5001*GridSize)
	assert.Equal(t, float32(77), h)

	h, _ = tile.HeightAt(maxX-5, maxY-5)
	assert.Equal(t, float32(10), h, "unset vertices read the base height")
}

func TestHeightAtClampsToTile(t *testing.T) {
	sec := floatHeightSection(10, 200, func(v9 []float32) {
		v9[0] = 100
		v9[128*129+128] = 55
	})
	tile, err := DecodeTile(tileFile{height: sec}.bytes(), 0, 31, 31)
	require.NoError(t, err)

	h, ok := tile.HeightAt(9999, 9999)
	require.True(t, ok)
	assert.Equal(t, float32(100), h, "beyond the max corner clamps to index 0")

	h, _ = tile.HeightAt(-9999, -9999)
	assert.Equal(t, float32(55), h, "beyond the min corner clamps to index 128")
}

func TestHeightAtWithoutHeightSection(t *testing.T) {
	tile, err := DecodeTile(tileFile{}.bytes(), 0, 31, 31)
	require.NoError(t, err)
	require.Nil(t, tile.Height)

	_, ok := tile.HeightAt(100, 100)
	assert.False(t, ok)
}

func TestDecodeInt16Heights(t *testing.T) {
	v9 := make([]uint16, 129*129)
	v8 := make([]uint16, 128*128)
	v9[0] = 65535
	v9[1] = 0
	v9[2] = 32768

	tile, err := DecodeTile(tileFile{height: int16HeightSection(0, 100, v9, v8)}.bytes(), 0, 31, 31)
	require.NoError(t, err)

	got := tile.Height.V9
	assert.InDelta(t, 100.0, got[0], 0.001)
	assert.InDelta(t, 0.0, got[1], 0.001)
	assert.InDelta(t, 50.0, got[2], 0.01)
}

func TestDecodeInt8Heights(t *testing.T) {
	v9 := make([]uint8, 129*129)
	v8 := make([]uint8, 128*128)
	v9[0] = 255
	v9[1] = 0

	tile, err := DecodeTile(tileFile{height: int8HeightSection(-50, 50, v9, v8)}.bytes(), 0, 31, 31)
	require.NoError(t, err)

	got := tile.Height.V9
	assert.InDelta(t, 50.0, got[0], 0.001)
	assert.InDelta(t, -50.0, got[1], 0.001)
}

func TestQuantizedHeightsStayInRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		base := float32(rapid.Float64Range(-1000, 1000).Draw(t, "base"))
		span := float32(rapid.Float64Range(0, 500).Draw(t, "span"))
		max := base + span

		v9 := make([]uint16, 129*129)
		v8 := make([]uint16, 128*128)
		copy(v9, rapid.SliceOfN(rapid.Uint16(), 64, 64).Draw(t, "raws"))

		tile, err := DecodeTile(tileFile{height: int16HeightSection(base, max, v9, v8)}.bytes(), 0, 31, 31)
		require.NoError(t, err)

		for i := 0; i < 64; i++ {
			h := tile.Height.V9[i]
			assert.GreaterOrEqual(t, h, base-0.01)
			assert.LessOrEqual(t, h, max+0.01)
		}
	})
}

func TestDecodeAreaGrid(t *testing.T) {
	grid := make([]uint16, 16*16)
	grid[8*16+8] = 1519 // Stormwind City

	tile, err := DecodeTile(tileFile{area: areaSection(0, 12, grid)}.bytes(), 0, 31, 31)
	require.NoError(t, err)
	require.NotNil(t, tile.Area)

	assert.Equal(t, uint16(1519), tile.AreaAt(266.6, 266.6), "center chunk")
	assert.Equal(t, uint16(0), tile.AreaAt(533.0, 533.0), "corner chunk stays unset")
}

func TestDecodeAreaUniform(t *testing.T) {
	tile, err := DecodeTile(tileFile{area: areaSection(areaNoArea, 12, nil)}.bytes(), 0, 31, 31)
	require.NoError(t, err)

	assert.Nil(t, tile.Area.Map)
	assert.Equal(t, uint16(12), tile.AreaAt(266.6, 266.6))
	assert.Equal(t, uint16(12), tile.AreaAt(1, 1))
}

func TestAreaAtWithoutSection(t *testing.T) {
	tile, err := DecodeTile(tileFile{}.bytes(), 0, 31, 31)
	require.NoError(t, err)
	assert.Equal(t, uint16(0), tile.AreaAt(266.6, 266.6))
}

func TestDecodeLiquidUniform(t *testing.T) {
	sec := liquidSection(liquidSpec{
		flags:       liquidNoType | liquidNoHeight,
		globalFlags: 0x01,
		typ:         1,
		level:       23.5,
	})
	tile, err := DecodeTile(tileFile{liquid: sec}.bytes(), 0, 31, 31)
	require.NoError(t, err)

	info, ok := tile.LiquidAt(266.6, 266.6)
	require.True(t, ok)
	assert.Equal(t, uint16(1), info.Entry)
	assert.Equal(t, uint8(0x01), info.Flags)
	assert.Equal(t, float32(23.5), info.Level)
}

func TestDecodeLiquidNoLiquidInCell(t *testing.T) {
	entries := make([]uint16, 16*16)
	flags := make([]uint8, 16*16)
	entries[8*16+8] = 2
	flags[8*16+8] = 0x01

	sec := liquidSection(liquidSpec{
		flags:      liquidNoHeight,
		entries:    entries,
		entryFlags: flags,
		level:      5,
	})
	tile, err := DecodeTile(tileFile{liquid: sec}.bytes(), 0, 31, 31)
	require.NoError(t, err)

	info, ok := tile.LiquidAt(266.6, 266.6)
	require.True(t, ok)
	assert.Equal(t, uint16(2), info.Entry)
	assert.Equal(t, float32(5), info.Level)

	_, ok = tile.LiquidAt(530, 530)
	assert.False(t, ok, "chunk without liquid flags reports no liquid")
}

func TestDecodeLiquidLevelMap(t *testing.T) {
	entries := make([]uint16, 16*16)
	flags := make([]uint8, 16*16)
	for i := range flags {
		entries[i] = 2
		flags[i] = 0x01
	}
	levels := make([]float32, 128*128)
	for i := range levels {
		levels[i] = 31.25
	}

	sec := liquidSection(liquidSpec{
		w:          128,
		h:          128,
		entries:    entries,
		entryFlags: flags,
		levels:     levels,
	})
	tile, err := DecodeTile(tileFile{liquid: sec}.bytes(), 0, 31, 31)
	require.NoError(t, err)

	info, ok := tile.LiquidAt(266.6, 266.6)
	require.True(t, ok)
	assert.Equal(t, float32(31.25), info.Level)
}

func TestDecodeLiquidWindowMiss(t *testing.T) {
	entries := make([]uint16, 16*16)
	flags := make([]uint8, 16*16)
	for i := range flags {
		entries[i] = 2
		flags[i] = 0x01
	}
	levels := make([]float32, 8*8)

	sec := liquidSection(liquidSpec{
		offX:       60,
		offY:       60,
		w:          8,
		h:          8,
		entries:    entries,
		entryFlags: flags,
		levels:     levels,
	})
	tile, err := DecodeTile(tileFile{liquid: sec}.bytes(), 0, 31, 31)
	require.NoError(t, err)

	_, ok := tile.LiquidAt(266.6, 266.6) // cell 64 falls inside the 60..68 window
	assert.True(t, ok)

	_, ok = tile.LiquidAt(533.0, 533.0) // cell 0 falls outside
	assert.False(t, ok)
}

func TestDecodeLiquidTruncated(t *testing.T) {
	sec := liquidSection(liquidSpec{flags: liquidNoType | liquidNoHeight})
	_, err := DecodeTile(tileFile{liquid: sec[:10]}.bytes(), 0, 31, 31)
	require.ErrorIs(t, err, ErrFormat)
}

func TestIsHole(t *testing.T) {
	holes := make([]uint16, 16*16)
	holes[8*16+8] = 0x0001 // first 2x2 square of the center cell

	tile, err := DecodeTile(tileFile{holes: holesSection(holes)}.bytes(), 0, 31, 31)
	require.NoError(t, err)

	assert.True(t, tile.IsHole(266.6, 266.6))
	assert.False(t, tile.IsHole(533.0, 533.0), "different cell has no holes")
	assert.False(t, tile.IsHole(250.0, 250.0), "different square of the same cell")
}

func TestIsHoleWithoutSection(t *testing.T) {
	tile, err := DecodeTile(tileFile{}.bytes(), 0, 31, 31)
	require.NoError(t, err)
	assert.False(t, tile.IsHole(266.6, 266.6))
}
