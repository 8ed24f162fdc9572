// Package dbc parses WoW 3.3.5a client database (DBC) files.
//
// Layout: a 20-byte WDBC header, record_count fixed-width records, then a
// shared block of NUL-terminated strings. String fields hold byte offsets
// into that block. All values are little-endian.
package dbc

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"os"

	"golang.org/x/text/encoding/unicode"
)

// ErrFormat is wrapped by every malformed-file failure so callers can test
// with errors.Is without matching message text.
var ErrFormat = errors.New("malformed dbc file")

const (
	headerSize = 20
	magic      = "WDBC"
)

// Header is the fixed 20-byte WDBC file header (after the magic tag).
type Header struct {
	RecordCount     uint32
	FieldCount      uint32
	RecordSize      uint32
	StringBlockSize uint32
}

// FieldKind selects how one 4-byte field of a record is decoded.
type FieldKind int

const (
	Uint32 FieldKind = iota
	Int32
	Float32
	StringRef // uint32 offset into the string block, resolved at load time
	Skip      // advances the cursor, value never stored
)

// Field is one position in a record layout. An empty Name keeps the field's
// bytes for offset correctness but drops the value from the decoded record.
type Field struct {
	Kind FieldKind
	Name string
}

// FieldSpec is an ordered record layout. Every kind in this format is 4
// bytes wide.
type FieldSpec []Field

// Width returns the total byte width of one record under this spec.
func (s FieldSpec) Width() int { return len(s) * 4 }

// Value is one decoded field. Raw holds the little-endian 32-bit word; Str
// is the resolved string for StringRef fields.
type Value struct {
	Kind FieldKind
	Raw  uint32
	Str  string
}

func (v Value) Uint32() uint32   { return v.Raw }
func (v Value) Int32() int32     { return int32(v.Raw) }
func (v Value) Float32() float32 { return math.Float32frombits(v.Raw) }

// Record maps field names to decoded values. Absent names read as zero
// values, mirroring how callers treat missing columns.
type Record map[string]Value

func (r Record) Uint32(name string) uint32   { return r[name].Raw }
func (r Record) Int32(name string) int32     { return int32(r[name].Raw) }
func (r Record) Float32(name string) float32 { return math.Float32frombits(r[name].Raw) }

// Text returns the resolved string for a StringRef field ("" when absent).
func (r Record) Text(name string) string { return r[name].Str }

// File is a fully decoded DBC file. Records preserves file order, which is
// the iteration order search operations promise.
type File struct {
	Header  Header
	Records []Record
}

// Load reads and decodes the file at path with the given layout.
func Load(path string, spec FieldSpec) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Decode(data, spec)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Decode parses an in-memory DBC image. The spec's byte width must equal
// the header's record_size, and the file must contain every byte the header
// promises: a truncated record array or string block is a hard error, never
// a partial parse.
func Decode(data []byte, spec FieldSpec) (*File, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("%w: header: have %d bytes, want %d", ErrFormat, len(data), headerSize)
	}
	if string(data[:4]) != magic {
		return nil, fmt.Errorf("%w: magic %q, want %q", ErrFormat, data[:4], magic)
	}
	h := Header{
		RecordCount:     binary.LittleEndian.Uint32(data[4:]),
		FieldCount:      binary.LittleEndian.Uint32(data[8:]),
		RecordSize:      binary.LittleEndian.Uint32(data[12:]),
		StringBlockSize: binary.LittleEndian.Uint32(data[16:]),
	}
	if w := spec.Width(); w != int(h.RecordSize) {
		return nil, fmt.Errorf("%w: field spec is %d bytes, header says record_size=%d", ErrFormat, w, h.RecordSize)
	}
	recordBytes := int(h.RecordCount) * int(h.RecordSize)
	if headerSize+recordBytes > len(data) {
		return nil, fmt.Errorf("%w: record array: have %d bytes, want %d", ErrFormat, len(data)-headerSize, recordBytes)
	}
	pool := data[headerSize+recordBytes:]
	if len(pool) < int(h.StringBlockSize) {
		return nil, fmt.Errorf("%w: string block: have %d bytes, want %d", ErrFormat, len(pool), h.StringBlockSize)
	}
	pool = pool[:h.StringBlockSize]

	records := make([]Record, 0, h.RecordCount)
	off := headerSize
	for i := uint32(0); i < h.RecordCount; i++ {
		rec := make(Record, len(spec))
		for _, fld := range spec {
			raw := binary.LittleEndian.Uint32(data[off:])
			off += 4
			if fld.Kind == Skip || fld.Name == "" {
				continue
			}
			v := Value{Kind: fld.Kind, Raw: raw}
			if fld.Kind == StringRef {
				v.Str = poolString(pool, raw)
			}
			rec[fld.Name] = v
		}
		records = append(records, rec)
	}
	return &File{Header: h, Records: records}, nil
}

// poolString resolves a string block offset. Offset 0 and out-of-range
// offsets resolve to "": absent references are stored as 0, and client data
// in the wild carries dangling offsets.
func poolString(pool []byte, off uint32) string {
	if off == 0 || off >= uint32(len(pool)) {
		return ""
	}
	raw := pool[off:]
	if i := bytes.IndexByte(raw, 0); i >= 0 {
		raw = raw[:i]
	}
	return decodeText(raw)
}

// decodeText tolerantly decodes string block bytes to UTF-8. Pure ASCII
// passes through unchanged; anything else goes through the replacing UTF-8
// decoder so a bad byte never fails a load.
func decodeText(raw []byte) string {
	if len(raw) == 0 {
		return ""
	}
	allASCII := true
	for _, b := range raw {
		if b >= 0x80 {
			allASCII = false
			break
		}
	}
	if allASCII {
		return string(raw)
	}
	decoded, err := unicode.UTF8.NewDecoder().Bytes(raw)
	if err != nil {
		return string(raw)
	}
	return string(decoded)
}
