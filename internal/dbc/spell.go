package dbc

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/dgraph-io/ristretto/v2"
)

// EffectView is one of the three effect slots of a formatted spell.
type EffectView struct {
	Effect       int32 `json:"Effect"`
	DieSides     int32 `json:"DieSides"`
	BasePoints   int32 `json:"BasePoints"`
	Mechanic     int32 `json:"Mechanic"`
	TargetA      int32 `json:"TargetA"`
	TargetB      int32 `json:"TargetB"`
	RadiusIndex  int32 `json:"RadiusIndex"`
	AuraName     int32 `json:"AuraName"`
	Amplitude    int32 `json:"Amplitude"`
	MiscValue    int32 `json:"MiscValue"`
	MiscValueB   int32 `json:"MiscValueB"`
	TriggerSpell int32 `json:"TriggerSpell"`
}

// SpellView is the formatted subset of a spell record that tooling exposes.
// Bitmask columns render as hex strings, the way the game's sources and SQL
// dumps write them.
type SpellView struct {
	ID                   uint32        `json:"Id"`
	Name                 string        `json:"Name"`
	Rank                 string        `json:"Rank"`
	Category             int32         `json:"Category"`
	Dispel               int32         `json:"Dispel"`
	Mechanic             int32         `json:"Mechanic"`
	Attributes           string        `json:"Attributes"`
	AttributesEx         string        `json:"AttributesEx"`
	AttributesEx2        string        `json:"AttributesEx2"`
	AttributesEx3        string        `json:"AttributesEx3"`
	CastingTimeIndex     int32         `json:"CastingTimeIndex"`
	RecoveryTime         int32         `json:"RecoveryTime"`
	CategoryRecoveryTime int32         `json:"CategoryRecoveryTime"`
	ProcFlags            string        `json:"ProcFlags"`
	ProcChance           int32         `json:"ProcChance"`
	ProcCharges          int32         `json:"ProcCharges"`
	MaxLevel             int32         `json:"MaxLevel"`
	BaseLevel            int32         `json:"BaseLevel"`
	SpellLevel           int32         `json:"SpellLevel"`
	DurationIndex        int32         `json:"DurationIndex"`
	PowerType            int32         `json:"PowerType"`
	ManaCost             int32         `json:"ManaCost"`
	RangeIndex           int32         `json:"RangeIndex"`
	Speed                float32       `json:"Speed"`
	StackAmount          int32         `json:"StackAmount"`
	Effects              [3]EffectView `json:"Effects"`
	SpellFamilyName      int32         `json:"SpellFamilyName"`
	SpellFamilyFlags     [3]int32      `json:"SpellFamilyFlags"`
	MaxAffectedTargets   int32         `json:"MaxAffectedTargets"`
	DmgClass             int32         `json:"DmgClass"`
	SchoolMask           int32         `json:"SchoolMask"`
}

// ProcView carries just the proc-relevant columns of one spell.
type ProcView struct {
	ID               uint32    `json:"Id"`
	Name             string    `json:"Name"`
	ProcFlags        string    `json:"ProcFlags"`
	ProcChance       int32     `json:"ProcChance"`
	ProcCharges      int32     `json:"ProcCharges"`
	SpellFamilyName  int32     `json:"SpellFamilyName"`
	SpellFamilyFlags [3]string `json:"SpellFamilyFlags"`
	SchoolMask       int32     `json:"SchoolMask"`
	Attributes       string    `json:"Attributes"`
	AttributesEx     string    `json:"AttributesEx"`
	AttributesEx2    string    `json:"AttributesEx2"`
	AttributesEx3    string    `json:"AttributesEx3"`
}

// FamilyCount is one bucket of the per-family histogram, largest first.
type FamilyCount struct {
	Family string `json:"family"`
	Count  int    `json:"count"`
}

// SpellStats summarizes a loaded Spell.dbc.
type SpellStats struct {
	File                string        `json:"file"`
	TotalSpells         int           `json:"total_spells"`
	SpellsWithProcFlags int           `json:"spells_with_proc_flags"`
	SpellsByFamily      []FamilyCount `json:"spells_by_family"`
}

// SpellTable wraps a decoded Spell.dbc with id access and searches. Records
// keep file order; searches walk them in that order, so result sets are
// stable across calls. Formatted views are memoized in a ristretto cache.
type SpellTable struct {
	path    string
	records []Record
	byID    map[uint32]Record
	views   *ristretto.Cache[uint32, *SpellView]
}

// DefaultCacheEntries caps the view cache when the caller passes no size.
const DefaultCacheEntries = 1000

// LoadSpellTable reads Spell.dbc from path. cacheEntries bounds the
// formatted-view cache; <= 0 selects DefaultCacheEntries.
func LoadSpellTable(path string, cacheEntries int64) (*SpellTable, error) {
	f, err := Load(path, SpellFields)
	if err != nil {
		return nil, err
	}
	return NewSpellTable(path, f, cacheEntries)
}

// NewSpellTable indexes an already decoded file.
func NewSpellTable(path string, f *File, cacheEntries int64) (*SpellTable, error) {
	if cacheEntries <= 0 {
		cacheEntries = DefaultCacheEntries
	}
	views, err := ristretto.NewCache[uint32, *SpellView](&ristretto.Config[uint32, *SpellView]{
		NumCounters: cacheEntries * 10,
		MaxCost:     cacheEntries,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("view cache: %w", err)
	}
	t := &SpellTable{
		path:    path,
		records: f.Records,
		byID:    make(map[uint32]Record, len(f.Records)),
		views:   views,
	}
	for _, r := range f.Records {
		t.byID[r.Uint32("Id")] = r
	}
	return t, nil
}

func (t *SpellTable) Path() string { return t.path }

func (t *SpellTable) Count() int { return len(t.records) }

// Records lists the decoded records in file order.
func (t *SpellTable) Records() []Record { return t.records }

// Get returns the raw record for a spell id, nil when absent.
func (t *SpellTable) Get(id uint32) Record { return t.byID[id] }

// View returns the formatted view of a spell, nil when absent. Views are
// cached; repeated lookups of the same id return the same object.
func (t *SpellTable) View(id uint32) *SpellView {
	if v, ok := t.views.Get(id); ok {
		return v
	}
	r := t.byID[id]
	if r == nil {
		return nil
	}
	v := formatSpell(r)
	t.views.Set(id, v, 1)
	t.views.Wait()
	return v
}

// Name returns the enUS display name of a spell. Spells missing from the
// file resolve to a stable "Unknown Spell <id>" placeholder; present spells
// with an empty name stay empty.
func (t *SpellTable) Name(id uint32) string {
	if v := t.View(id); v != nil {
		return v.Name
	}
	return fmt.Sprintf("Unknown Spell %d", id)
}

// SearchByName lists spells whose enUS name contains the query, case
// insensitively. Unnamed spells never match.
func (t *SpellTable) SearchByName(query string, limit int) []*SpellView {
	query = strings.ToLower(query)
	var out []*SpellView
	for _, r := range t.records {
		name := r.Text("SpellName_enUS")
		if name == "" || !strings.Contains(strings.ToLower(name), query) {
			continue
		}
		out = append(out, formatSpell(r))
		if len(out) >= limit {
			break
		}
	}
	return out
}

// SearchByFamily lists spells with the given SpellFamilyName.
func (t *SpellTable) SearchByFamily(family int32, limit int) []*SpellView {
	var out []*SpellView
	for _, r := range t.records {
		if r.Int32("SpellFamilyName") != family {
			continue
		}
		out = append(out, formatSpell(r))
		if len(out) >= limit {
			break
		}
	}
	return out
}

// SearchWithProcFlags lists spells whose ProcFlags column is non-zero.
func (t *SpellTable) SearchWithProcFlags(limit int) []*SpellView {
	var out []*SpellView
	for _, r := range t.records {
		if r.Int32("ProcFlags") == 0 {
			continue
		}
		out = append(out, formatSpell(r))
		if len(out) >= limit {
			break
		}
	}
	return out
}

// ProcInfo returns the proc-relevant columns of a spell, nil when absent.
func (t *SpellTable) ProcInfo(id uint32) *ProcView {
	r := t.byID[id]
	if r == nil {
		return nil
	}
	return &ProcView{
		ID:          r.Uint32("Id"),
		Name:        r.Text("SpellName_enUS"),
		ProcFlags:   hexInt32(r.Int32("ProcFlags")),
		ProcChance:  r.Int32("ProcChance"),
		ProcCharges: r.Int32("ProcCharges"),

		SpellFamilyName: r.Int32("SpellFamilyName"),
		SpellFamilyFlags: [3]string{
			hexInt32(r.Int32("SpellFamilyFlags0")),
			hexInt32(r.Int32("SpellFamilyFlags1")),
			hexInt32(r.Int32("SpellFamilyFlags2")),
		},
		SchoolMask:    r.Int32("SchoolMask"),
		Attributes:    hexInt32(r.Int32("Attributes")),
		AttributesEx:  hexInt32(r.Int32("AttributesEx")),
		AttributesEx2: hexInt32(r.Int32("AttributesEx2")),
		AttributesEx3: hexInt32(r.Int32("AttributesEx3")),
	}
}

// Stats walks the whole table once and summarizes it.
func (t *SpellTable) Stats() SpellStats {
	counts := make(map[string]int)
	proc := 0
	for _, r := range t.records {
		counts[SpellFamilyName(r.Int32("SpellFamilyName"))]++
		if r.Int32("ProcFlags") != 0 {
			proc++
		}
	}
	families := make([]FamilyCount, 0, len(counts))
	for name, n := range counts {
		families = append(families, FamilyCount{Family: name, Count: n})
	}
	sort.Slice(families, func(i, j int) bool {
		if families[i].Count != families[j].Count {
			return families[i].Count > families[j].Count
		}
		return families[i].Family < families[j].Family
	})
	return SpellStats{
		File:                t.path,
		TotalSpells:         len(t.records),
		SpellsWithProcFlags: proc,
		SpellsByFamily:      families,
	}
}

func formatSpell(r Record) *SpellView {
	v := &SpellView{
		ID:                   r.Uint32("Id"),
		Name:                 r.Text("SpellName_enUS"),
		Rank:                 r.Text("Rank_enUS"),
		Category:             r.Int32("Category"),
		Dispel:               r.Int32("Dispel"),
		Mechanic:             r.Int32("Mechanic"),
		Attributes:           hexInt32(r.Int32("Attributes")),
		AttributesEx:         hexInt32(r.Int32("AttributesEx")),
		AttributesEx2:        hexInt32(r.Int32("AttributesEx2")),
		AttributesEx3:        hexInt32(r.Int32("AttributesEx3")),
		CastingTimeIndex:     r.Int32("CastingTimeIndex"),
		RecoveryTime:         r.Int32("RecoveryTime"),
		CategoryRecoveryTime: r.Int32("CategoryRecoveryTime"),
		ProcFlags:            hexInt32(r.Int32("ProcFlags")),
		ProcChance:           r.Int32("ProcChance"),
		ProcCharges:          r.Int32("ProcCharges"),
		MaxLevel:             r.Int32("MaxLevel"),
		BaseLevel:            r.Int32("BaseLevel"),
		SpellLevel:           r.Int32("SpellLevel"),
		DurationIndex:        r.Int32("DurationIndex"),
		PowerType:            r.Int32("PowerType"),
		ManaCost:             r.Int32("ManaCost"),
		RangeIndex:           r.Int32("RangeIndex"),
		Speed:                r.Float32("Speed"),
		StackAmount:          r.Int32("StackAmount"),
		SpellFamilyName:      r.Int32("SpellFamilyName"),
		SpellFamilyFlags: [3]int32{
			r.Int32("SpellFamilyFlags0"),
			r.Int32("SpellFamilyFlags1"),
			r.Int32("SpellFamilyFlags2"),
		},
		MaxAffectedTargets: r.Int32("MaxAffectedTargets"),
		DmgClass:           r.Int32("DmgClass"),
		SchoolMask:         r.Int32("SchoolMask"),
	}
	for i := range v.Effects {
		n := strconv.Itoa(i)
		v.Effects[i] = EffectView{
			Effect:       r.Int32("Effect" + n),
			DieSides:     r.Int32("EffectDieSides" + n),
			BasePoints:   r.Int32("EffectBasePoints" + n),
			Mechanic:     r.Int32("EffectMechanic" + n),
			TargetA:      r.Int32("EffectImplicitTargetA" + n),
			TargetB:      r.Int32("EffectImplicitTargetB" + n),
			RadiusIndex:  r.Int32("EffectRadiusIndex" + n),
			AuraName:     r.Int32("EffectApplyAuraName" + n),
			Amplitude:    r.Int32("EffectAmplitude" + n),
			MiscValue:    r.Int32("EffectMiscValue" + n),
			MiscValueB:   r.Int32("EffectMiscValueB" + n),
			TriggerSpell: r.Int32("EffectTriggerSpell" + n),
		}
	}
	return v
}

// hexInt32 renders a signed column as hex the way the original tables are
// documented, keeping the sign for values with the top bit set.
func hexInt32(v int32) string { return fmt.Sprintf("%#x", v) }
