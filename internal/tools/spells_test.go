package tools

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/azerothmcp/server/internal/dbc"
)

// strPool lays out a DBC string block and returns each string's offset.
func strPool(strs ...string) ([]byte, map[string]uint32) {
	pool := []byte{0}
	off := make(map[string]uint32, len(strs))
	for _, s := range strs {
		off[s] = uint32(len(pool))
		pool = append(pool, s...)
		pool = append(pool, 0)
	}
	return pool, off
}

// buildSpellTable assembles an in-memory Spell.dbc image from sparse field
// maps, one map per record, and loads it.
func buildSpellTable(t *testing.T, pool []byte, recs ...map[string]uint32) *dbc.SpellTable {
	t.Helper()
	idx := make(map[string]int, len(dbc.SpellFields))
	for i, f := range dbc.SpellFields {
		if f.Name != "" {
			idx[f.Name] = i
		}
	}

	buf := new(bytes.Buffer)
	buf.WriteString("WDBC")
	binary.Write(buf, binary.LittleEndian, uint32(len(recs)))
	binary.Write(buf, binary.LittleEndian, uint32(len(dbc.SpellFields)))
	binary.Write(buf, binary.LittleEndian, uint32(len(dbc.SpellFields)*4))
	binary.Write(buf, binary.LittleEndian, uint32(len(pool)))
	for _, rec := range recs {
		words := make([]uint32, len(dbc.SpellFields))
		for name, v := range rec {
			i, ok := idx[name]
			require.True(t, ok, "unknown spell field %q", name)
			words[i] = v
		}
		binary.Write(buf, binary.LittleEndian, words)
	}
	buf.Write(pool)

	f, err := dbc.Decode(buf.Bytes(), dbc.SpellFields)
	require.NoError(t, err)
	table, err := dbc.NewSpellTable("Spell.dbc", f, 0)
	require.NoError(t, err)
	return table
}

// testSpellService builds a Service over a three-spell fixture: a priest
// buff without procs, a warrior strike with melee proc flags, and a paladin
// judgement with a spell proc flag.
func testSpellService(t *testing.T) *Service {
	t.Helper()
	pool, off := strPool("Power Word: Shield", "Rank 1", "Devastate", "Judgement")
	table := buildSpellTable(t, pool,
		map[string]uint32{
			"Id":              17,
			"SpellName_enUS":  off["Power Word: Shield"],
			"Rank_enUS":       off["Rank 1"],
			"SpellFamilyName": 6,
			"SchoolMask":      0x2,
			"ProcChance":      101,
		},
		map[string]uint32{
			"Id":              20243,
			"SpellName_enUS":  off["Devastate"],
			"SpellFamilyName": 4,
			"SchoolMask":      0x1,
			"ProcFlags":       0x14,
			"ProcChance":      100,
		},
		map[string]uint32{
			"Id":              20271,
			"SpellName_enUS":  off["Judgement"],
			"SpellFamilyName": 10,
			"SchoolMask":      0x2,
			"ProcFlags":       0x10,
			"ProcChance":      100,
		},
	)
	return &Service{Log: zap.NewNop(), Spells: table}
}

func TestGetSpell(t *testing.T) {
	svc := testSpellService(t)

	d, err := svc.GetSpell(20243)
	require.NoError(t, err)
	assert.Equal(t, "Devastate", d.Name)
	assert.Equal(t, "SPELLFAMILY_WARRIOR", d.FamilyName)

	require.Len(t, d.DecodedProcFlags, 2)
	assert.Equal(t, "0x4", d.DecodedProcFlags[0].Value)
	assert.Equal(t, "PROC_FLAG_DONE_MELEE_AUTO_ATTACK", d.DecodedProcFlags[0].Name)
	assert.Equal(t, "0x10", d.DecodedProcFlags[1].Value)

	require.Len(t, d.DecodedSchoolMask, 1)
	assert.Equal(t, "0x1", d.DecodedSchoolMask[0].Value)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	for _, key := range []string{`"_decoded_ProcFlags"`, `"_decoded_SchoolMask"`, `"_SpellFamilyNameStr"`, `"Id"`} {
		assert.Contains(t, string(data), key)
	}
}

func TestGetSpellMissing(t *testing.T) {
	svc := testSpellService(t)
	_, err := svc.GetSpell(999)
	assert.EqualError(t, err, "Spell 999 not found in Spell.dbc")
}

func TestSearchSpellsByName(t *testing.T) {
	svc := testSpellService(t)

	res, err := svc.SearchSpells("word: sh", nil, false, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Count)
	require.Len(t, res.Spells, 1)
	hit := res.Spells[0]
	assert.Equal(t, uint32(17), hit.ID)
	assert.Equal(t, "Power Word: Shield", hit.Name)
	assert.Equal(t, "Rank 1", hit.Rank)
	assert.Equal(t, "SPELLFAMILY_PRIEST", hit.Family)
	assert.Equal(t, "0x0", hit.ProcFlags)
	assert.Equal(t, int32(101), hit.ProcChance)
}

// Name beats family beats proc flags when several filters are set.
func TestSearchSpellsPriority(t *testing.T) {
	svc := testSpellService(t)
	paladin := int32(10)

	res, err := svc.SearchSpells("devastate", &paladin, true, 0)
	require.NoError(t, err)
	require.Len(t, res.Spells, 1)
	assert.Equal(t, uint32(20243), res.Spells[0].ID)

	res, err = svc.SearchSpells("", &paladin, true, 0)
	require.NoError(t, err)
	require.Len(t, res.Spells, 1)
	assert.Equal(t, uint32(20271), res.Spells[0].ID)

	res, err = svc.SearchSpells("", nil, true, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Count)
}

func TestSearchSpellsFamilyZeroIsGeneric(t *testing.T) {
	svc := testSpellService(t)
	generic := int32(0)

	res, err := svc.SearchSpells("", &generic, false, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Count)
}

func TestSearchSpellsLimit(t *testing.T) {
	svc := testSpellService(t)

	res, err := svc.SearchSpells("", nil, true, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Count)
}

func TestSearchSpellsNoParameters(t *testing.T) {
	svc := testSpellService(t)
	_, err := svc.SearchSpells("", nil, false, 0)
	assert.EqualError(t, err, "provide at least one search parameter: name, spell_family or has_proc_flags")
}

func TestSpellProcInfo(t *testing.T) {
	svc := testSpellService(t)

	p, err := svc.SpellProcInfo(20271)
	require.NoError(t, err)
	assert.Equal(t, "SPELLFAMILY_PALADIN", p.FamilyName)
	require.Len(t, p.DecodedProcFlags, 1)
	assert.Equal(t, "0x10", p.DecodedProcFlags[0].Value)

	_, err = svc.SpellProcInfo(1)
	assert.EqualError(t, err, "Spell 1 not found in Spell.dbc")
}

func TestSpellName(t *testing.T) {
	svc := testSpellService(t)

	n, err := svc.SpellName(17)
	require.NoError(t, err)
	assert.Equal(t, &NamedSpell{SpellID: 17, Name: "Power Word: Shield"}, n)

	n, err = svc.SpellName(999)
	require.NoError(t, err)
	assert.Equal(t, "Unknown Spell 999", n.Name)
}

func TestBatchSpellNames(t *testing.T) {
	svc := testSpellService(t)

	names, err := svc.BatchSpellNames(" 17, abc, 20243 ,, -5, 999")
	require.NoError(t, err)
	assert.Equal(t, map[uint32]string{
		17:    "Power Word: Shield",
		20243: "Devastate",
		999:   "Unknown Spell 999",
	}, names)
}

func TestBatchSpellNamesNoneValid(t *testing.T) {
	svc := testSpellService(t)
	_, err := svc.BatchSpellNames("abc, , -5")
	assert.EqualError(t, err, "No valid spell IDs provided")
}

func TestTableProcSide(t *testing.T) {
	row := map[string]any{
		"SpellId":          int64(51124),
		"ProcFlags":        int64(4),
		"Chance":           "7.5",
		"ProcsPerMinute":   int64(0),
		"Charges":          int64(2),
		"Cooldown":         int64(3000),
		"SpellFamilyName":  int64(15),
		"SpellFamilyMask0": int64(0x100),
		"SpellFamilyMask1": int64(0),
		"SpellFamilyMask2": int64(0),
		"SpellTypeMask":    int64(1),
		"SpellPhaseMask":   int64(2),
		"HitMask":          "2",
		"AttributesMask":   int64(0),
	}
	side := tableProcSide(row)

	assert.Equal(t, "0x4", side.ProcFlags)
	assert.Equal(t, 7.5, side.Chance)
	assert.Equal(t, int64(2), side.Charges)
	assert.Equal(t, int64(3000), side.Cooldown)
	assert.Equal(t, int64(15), side.SpellFamilyName)
	assert.Equal(t, [3]string{"0x100", "0x0", "0x0"}, side.SpellFamilyMask)
	assert.Equal(t, "0x1", side.SpellTypeMask)
	assert.Equal(t, "0x2", side.SpellPhaseMask)
	assert.Equal(t, "0x2", side.HitMask)
	assert.Equal(t, "0x0", side.AttributesMask)
}

func TestDBCStats(t *testing.T) {
	svc := testSpellService(t)

	stats, err := svc.DBCStats()
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalSpells)
	assert.Equal(t, 2, stats.SpellsWithProcFlags)
}
