package dbc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func spellFieldIndex(t *testing.T, name string) int {
	t.Helper()
	for i, f := range SpellFields {
		if f.Name == name {
			return i
		}
	}
	t.Fatalf("no spell field named %q", name)
	return -1
}

// spellWords builds one zeroed 234-word spell record with the named fields
// set.
func spellWords(t *testing.T, set map[string]uint32) []uint32 {
	t.Helper()
	words := make([]uint32, len(SpellFields))
	for name, v := range set {
		words[spellFieldIndex(t, name)] = v
	}
	return words
}

// buildPool lays out a string block and returns each string's offset.
func buildPool(strs ...string) ([]byte, map[string]uint32) {
	pool := []byte{0}
	offsets := make(map[string]uint32, len(strs))
	for _, s := range strs {
		offsets[s] = uint32(len(pool))
		pool = append(pool, s...)
		pool = append(pool, 0)
	}
	return pool, offsets
}

func newTestTable(t *testing.T, records [][]uint32, pool []byte) *SpellTable {
	t.Helper()
	f, err := Decode(buildDBC(records, len(SpellFields), pool), SpellFields)
	require.NoError(t, err)
	table, err := NewSpellTable("Spell.dbc", f, 0)
	require.NoError(t, err)
	return table
}

func TestSpellView(t *testing.T) {
	pool, off := buildPool("Power Word: Shield", "Rank 1")
	rec := spellWords(t, map[string]uint32{
		"Id":                   17,
		"SpellName_enUS":       off["Power Word: Shield"],
		"Rank_enUS":            off["Rank 1"],
		"Category":             30,
		"Attributes":           0x10050,
		"AttributesEx3":        0x80000000,
		"RecoveryTime":         4000,
		"ProcChance":           101,
		"PowerType":            0,
		"ManaCost":             45,
		"SchoolMask":           0x2,
		"SpellFamilyName":      6,
		"SpellFamilyFlags0":    0x1,
		"Effect0":              6,
		"EffectApplyAuraName0": 69,
		"EffectBasePoints0":    43,
		"EffectImplicitTargetA0": 21,
		"DmgClass":             1,
	})
	table := newTestTable(t, [][]uint32{rec}, pool)

	v := table.View(17)
	require.NotNil(t, v)
	assert.Equal(t, uint32(17), v.ID)
	assert.Equal(t, "Power Word: Shield", v.Name)
	assert.Equal(t, "Rank 1", v.Rank)
	assert.Equal(t, int32(30), v.Category)
	assert.Equal(t, "0x10050", v.Attributes)
	assert.Equal(t, "-0x80000000", v.AttributesEx3)
	assert.Equal(t, "0x0", v.ProcFlags)
	assert.Equal(t, int32(4000), v.RecoveryTime)
	assert.Equal(t, int32(101), v.ProcChance)
	assert.Equal(t, int32(45), v.ManaCost)
	assert.Equal(t, int32(6), v.SpellFamilyName)
	assert.Equal(t, [3]int32{1, 0, 0}, v.SpellFamilyFlags)
	assert.Equal(t, int32(2), v.SchoolMask)
	assert.Equal(t, int32(1), v.DmgClass)

	eff := v.Effects[0]
	assert.Equal(t, int32(6), eff.Effect)
	assert.Equal(t, int32(69), eff.AuraName)
	assert.Equal(t, int32(43), eff.BasePoints)
	assert.Equal(t, int32(21), eff.TargetA)
	assert.Zero(t, v.Effects[1].Effect)
	assert.Zero(t, v.Effects[2].Effect)
}

func TestSpellViewCached(t *testing.T) {
	pool, off := buildPool("Fireball")
	rec := spellWords(t, map[string]uint32{"Id": 133, "SpellName_enUS": off["Fireball"]})
	table := newTestTable(t, [][]uint32{rec}, pool)

	v1 := table.View(133)
	v2 := table.View(133)
	require.NotNil(t, v1)
	assert.Same(t, v1, v2, "repeated lookups should hit the view cache")
}

func TestSpellViewMissing(t *testing.T) {
	table := newTestTable(t, nil, nil)
	assert.Nil(t, table.View(99999))
	assert.Nil(t, table.Get(99999))
	assert.Nil(t, table.ProcInfo(99999))
}

func TestSpellName(t *testing.T) {
	pool, off := buildPool("Frostbolt")
	records := [][]uint32{
		spellWords(t, map[string]uint32{"Id": 116, "SpellName_enUS": off["Frostbolt"]}),
		spellWords(t, map[string]uint32{"Id": 204}),
	}
	table := newTestTable(t, records, pool)

	assert.Equal(t, "Frostbolt", table.Name(116))
	assert.Equal(t, "", table.Name(204), "present spell with empty name stays empty")
	assert.Equal(t, "Unknown Spell 999", table.Name(999))
}

func TestSearchByName(t *testing.T) {
	pool, off := buildPool("Fireball", "Frostbolt", "Fire Blast")
	records := [][]uint32{
		spellWords(t, map[string]uint32{"Id": 133, "SpellName_enUS": off["Fireball"]}),
		spellWords(t, map[string]uint32{"Id": 116, "SpellName_enUS": off["Frostbolt"]}),
		spellWords(t, map[string]uint32{"Id": 5}),
		spellWords(t, map[string]uint32{"Id": 2136, "SpellName_enUS": off["Fire Blast"]}),
	}
	table := newTestTable(t, records, pool)

	got := table.SearchByName("fire", 50)
	require.Len(t, got, 2)
	assert.Equal(t, uint32(133), got[0].ID, "results follow file order")
	assert.Equal(t, uint32(2136), got[1].ID)

	assert.Len(t, table.SearchByName("FIRE", 50), 2, "matching is case insensitive")
	assert.Len(t, table.SearchByName("fire", 1), 1, "limit caps results")
	assert.Empty(t, table.SearchByName("shadowmeld", 50))
}

func TestSearchByFamily(t *testing.T) {
	records := [][]uint32{
		spellWords(t, map[string]uint32{"Id": 1, "SpellFamilyName": 3}),
		spellWords(t, map[string]uint32{"Id": 2, "SpellFamilyName": 6}),
		spellWords(t, map[string]uint32{"Id": 3, "SpellFamilyName": 3}),
	}
	table := newTestTable(t, records, nil)

	got := table.SearchByFamily(3, 100)
	require.Len(t, got, 2)
	assert.Equal(t, uint32(1), got[0].ID)
	assert.Equal(t, uint32(3), got[1].ID)

	assert.Empty(t, table.SearchByFamily(11, 100))
}

func TestSearchWithProcFlags(t *testing.T) {
	records := [][]uint32{
		spellWords(t, map[string]uint32{"Id": 1}),
		spellWords(t, map[string]uint32{"Id": 2, "ProcFlags": 0x4}),
		spellWords(t, map[string]uint32{"Id": 3, "ProcFlags": 0x40000}),
	}
	table := newTestTable(t, records, nil)

	got := table.SearchWithProcFlags(50)
	require.Len(t, got, 2)
	assert.Equal(t, uint32(2), got[0].ID)
	assert.Equal(t, uint32(3), got[1].ID)
}

func TestProcInfo(t *testing.T) {
	pool, off := buildPool("Seal of Command")
	rec := spellWords(t, map[string]uint32{
		"Id":                20375,
		"SpellName_enUS":    off["Seal of Command"],
		"ProcFlags":         0x14,
		"ProcChance":        101,
		"SpellFamilyName":   10,
		"SpellFamilyFlags0": 0x2000000,
		"SchoolMask":        0x2,
		"Attributes":        0x40,
	})
	table := newTestTable(t, [][]uint32{rec}, pool)

	p := table.ProcInfo(20375)
	require.NotNil(t, p)
	assert.Equal(t, "Seal of Command", p.Name)
	assert.Equal(t, "0x14", p.ProcFlags)
	assert.Equal(t, int32(101), p.ProcChance)
	assert.Equal(t, int32(10), p.SpellFamilyName)
	assert.Equal(t, [3]string{"0x2000000", "0x0", "0x0"}, p.SpellFamilyFlags)
	assert.Equal(t, "0x40", p.Attributes)
}

func TestSpellStats(t *testing.T) {
	records := [][]uint32{
		spellWords(t, map[string]uint32{"Id": 1, "SpellFamilyName": 3}),
		spellWords(t, map[string]uint32{"Id": 2, "SpellFamilyName": 3, "ProcFlags": 0x4}),
		spellWords(t, map[string]uint32{"Id": 3, "SpellFamilyName": 6}),
		spellWords(t, map[string]uint32{"Id": 4, "SpellFamilyName": 99}),
	}
	table := newTestTable(t, records, nil)

	stats := table.Stats()
	assert.Equal(t, "Spell.dbc", stats.File)
	assert.Equal(t, 4, stats.TotalSpells)
	assert.Equal(t, 1, stats.SpellsWithProcFlags)

	require.NotEmpty(t, stats.SpellsByFamily)
	assert.Equal(t, FamilyCount{Family: "SPELLFAMILY_MAGE", Count: 2}, stats.SpellsByFamily[0])

	byName := make(map[string]int)
	for _, fc := range stats.SpellsByFamily {
		byName[fc.Family] = fc.Count
	}
	assert.Equal(t, 1, byName["SPELLFAMILY_PRIEST"])
	assert.Equal(t, 1, byName["UNKNOWN_FAMILY_99"])
}
