package tools

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/azerothmcp/server/internal/dbc"
	"github.com/azerothmcp/server/internal/store"
)

// SpellDetail is one Spell.dbc record with its bitmask columns decoded.
type SpellDetail struct {
	*dbc.SpellView
	DecodedProcFlags  []dbc.FlagInfo `json:"_decoded_ProcFlags"`
	DecodedSchoolMask []dbc.FlagInfo `json:"_decoded_SchoolMask"`
	FamilyName        string         `json:"_SpellFamilyNameStr"`
}

// GetSpell returns the formatted view of one spell plus the decoded
// ProcFlags, SchoolMask and family name.
func (s *Service) GetSpell(id uint32) (*SpellDetail, error) {
	t, err := s.spellTable()
	if err != nil {
		return nil, err
	}
	v := t.View(id)
	if v == nil {
		return nil, fmt.Errorf("Spell %d not found in Spell.dbc", id)
	}
	r := t.Get(id)
	return &SpellDetail{
		SpellView:         v,
		DecodedProcFlags:  dbc.DecodeProcFlags(r.Uint32("ProcFlags")),
		DecodedSchoolMask: dbc.DecodeSchoolMask(r.Uint32("SchoolMask")),
		FamilyName:        dbc.SpellFamilyName(r.Int32("SpellFamilyName")),
	}, nil
}

// SpellHit is one compact row of a spell search.
type SpellHit struct {
	ID         uint32 `json:"Id"`
	Name       string `json:"Name"`
	Rank       string `json:"Rank"`
	Family     string `json:"Family"`
	ProcFlags  string `json:"ProcFlags"`
	ProcChance int32  `json:"ProcChance"`
}

// SpellSearch is the envelope of a spell search result.
type SpellSearch struct {
	Count  int        `json:"count"`
	Spells []SpellHit `json:"spells"`
}

// SearchSpells scans Spell.dbc by name substring, spell family, or
// non-zero proc flags, in that priority order. A nil family is
// unconstrained; family 0 searches GENERIC. Results keep file order.
func (s *Service) SearchSpells(name string, family *int32, hasProcFlags bool, limit int) (*SpellSearch, error) {
	t, err := s.spellTable()
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 50
	}
	var views []*dbc.SpellView
	switch {
	case name != "":
		views = t.SearchByName(name, limit)
	case family != nil:
		views = t.SearchByFamily(*family, limit)
	case hasProcFlags:
		views = t.SearchWithProcFlags(limit)
	default:
		return nil, errors.New("provide at least one search parameter: name, spell_family or has_proc_flags")
	}
	hits := make([]SpellHit, len(views))
	for i, v := range views {
		hits[i] = SpellHit{
			ID:         v.ID,
			Name:       v.Name,
			Rank:       v.Rank,
			Family:     dbc.SpellFamilyName(v.SpellFamilyName),
			ProcFlags:  v.ProcFlags,
			ProcChance: v.ProcChance,
		}
	}
	return &SpellSearch{Count: len(hits), Spells: hits}, nil
}

// ProcDetail is the proc-relevant view of one spell with ProcFlags decoded.
type ProcDetail struct {
	*dbc.ProcView
	DecodedProcFlags []dbc.FlagInfo `json:"_decoded_ProcFlags"`
	FamilyName       string         `json:"_SpellFamilyNameStr"`
}

// SpellProcInfo returns the proc columns Spell.dbc carries for one spell.
func (s *Service) SpellProcInfo(id uint32) (*ProcDetail, error) {
	t, err := s.spellTable()
	if err != nil {
		return nil, err
	}
	p := t.ProcInfo(id)
	if p == nil {
		return nil, fmt.Errorf("Spell %d not found in Spell.dbc", id)
	}
	r := t.Get(id)
	return &ProcDetail{
		ProcView:         p,
		DecodedProcFlags: dbc.DecodeProcFlags(r.Uint32("ProcFlags")),
		FamilyName:       dbc.SpellFamilyName(p.SpellFamilyName),
	}, nil
}

// NamedSpell pairs a spell id with its display name.
type NamedSpell struct {
	SpellID uint32 `json:"spell_id"`
	Name    string `json:"name"`
}

// SpellName resolves one display name, "Unknown Spell <id>" when the id is
// not in the file.
func (s *Service) SpellName(id uint32) (*NamedSpell, error) {
	t, err := s.spellTable()
	if err != nil {
		return nil, err
	}
	return &NamedSpell{SpellID: id, Name: t.Name(id)}, nil
}

// BatchSpellNames resolves a comma-separated id list in one call. Entries
// that do not parse as unsigned integers are skipped; at most the first
// 100 valid ids are looked up.
func (s *Service) BatchSpellNames(ids string) (map[uint32]string, error) {
	t, err := s.spellTable()
	if err != nil {
		return nil, err
	}
	var parsed []uint32
	for _, part := range strings.Split(ids, ",") {
		n, err := strconv.ParseUint(strings.TrimSpace(part), 10, 32)
		if err != nil {
			continue
		}
		parsed = append(parsed, uint32(n))
	}
	if len(parsed) == 0 {
		return nil, errors.New("No valid spell IDs provided")
	}
	if len(parsed) > 100 {
		parsed = parsed[:100]
	}
	out := make(map[uint32]string, len(parsed))
	for _, id := range parsed {
		out[id] = t.Name(id)
	}
	return out, nil
}

// ProcComparison shows the proc columns Spell.dbc carries for a spell next
// to its spell_proc row, and which source the core will use.
type ProcComparison struct {
	SpellID int64          `json:"spell_id"`
	Name    string         `json:"name"`
	DBC     *DBCProcSide   `json:"dbc"`
	Proc    *TableProcSide `json:"spell_proc"`
	Using   string         `json:"using"`
	Note    string         `json:"_note,omitempty"`
}

// DBCProcSide is the Spell.dbc half of a proc comparison.
type DBCProcSide struct {
	ProcFlags        string    `json:"ProcFlags"`
	ProcChance       int32     `json:"ProcChance"`
	ProcCharges      int32     `json:"ProcCharges"`
	SpellFamilyName  int32     `json:"SpellFamilyName"`
	SpellFamilyFlags [3]string `json:"SpellFamilyFlags"`
}

// TableProcSide is the spell_proc half of a proc comparison.
type TableProcSide struct {
	ProcFlags       string    `json:"ProcFlags"`
	Chance          float64   `json:"Chance"`
	ProcsPerMinute  float64   `json:"ProcsPerMinute"`
	Charges         int64     `json:"Charges"`
	Cooldown        int64     `json:"Cooldown"`
	SpellFamilyName int64     `json:"SpellFamilyName"`
	SpellFamilyMask [3]string `json:"SpellFamilyMask"`
	SpellTypeMask   string    `json:"SpellTypeMask"`
	SpellPhaseMask  string    `json:"SpellPhaseMask"`
	HitMask         string    `json:"HitMask"`
	AttributesMask  string    `json:"AttributesMask"`
}

// CompareProc lines up the DBC proc defaults of a spell with its
// spell_proc override row. spell_proc takes precedence when present.
func (s *Service) CompareProc(ctx context.Context, spellID int64) (*ProcComparison, error) {
	t, err := s.spellTable()
	if err != nil {
		return nil, err
	}
	st, err := s.worldStore()
	if err != nil {
		return nil, err
	}
	var rec dbc.Record
	if spellID >= 0 && spellID <= math.MaxUint32 {
		rec = t.Get(uint32(spellID))
	}
	cmp := &ProcComparison{SpellID: spellID, Name: "Not in DBC"}
	if rec != nil {
		cmp.Name = rec.Text("SpellName_enUS")
		cmp.DBC = &DBCProcSide{
			ProcFlags:       hexMask(int64(rec.Int32("ProcFlags"))),
			ProcChance:      rec.Int32("ProcChance"),
			ProcCharges:     rec.Int32("ProcCharges"),
			SpellFamilyName: rec.Int32("SpellFamilyName"),
			SpellFamilyFlags: [3]string{
				hexMask(int64(rec.Int32("SpellFamilyFlags0"))),
				hexMask(int64(rec.Int32("SpellFamilyFlags1"))),
				hexMask(int64(rec.Int32("SpellFamilyFlags2"))),
			},
		}
	}
	rows, err := st.Query(ctx, "world", `SELECT * FROM spell_proc WHERE SpellId = ?`, spellID)
	if err != nil {
		return nil, err
	}
	if len(rows) > 0 {
		cmp.Proc = tableProcSide(rows[0])
		cmp.Using = "spell_proc (overrides DBC)"
	} else {
		cmp.Using = "DBC defaults"
	}
	if rec != nil && len(rows) > 0 {
		dbcFlags := int64(rec.Int32("ProcFlags"))
		procFlags := store.Int64(rows[0]["ProcFlags"])
		if procFlags != 0 && dbcFlags != procFlags {
			cmp.Note = "spell_proc ProcFlags differ from DBC - spell_proc values are used"
		}
	}
	return cmp, nil
}

func tableProcSide(row map[string]any) *TableProcSide {
	return &TableProcSide{
		ProcFlags:       hexMask(store.Int64(row["ProcFlags"])),
		Chance:          store.Float64(row["Chance"]),
		ProcsPerMinute:  store.Float64(row["ProcsPerMinute"]),
		Charges:         store.Int64(row["Charges"]),
		Cooldown:        store.Int64(row["Cooldown"]),
		SpellFamilyName: store.Int64(row["SpellFamilyName"]),
		SpellFamilyMask: [3]string{
			hexMask(store.Int64(row["SpellFamilyMask0"])),
			hexMask(store.Int64(row["SpellFamilyMask1"])),
			hexMask(store.Int64(row["SpellFamilyMask2"])),
		},
		SpellTypeMask:  hexMask(store.Int64(row["SpellTypeMask"])),
		SpellPhaseMask: hexMask(store.Int64(row["SpellPhaseMask"])),
		HitMask:        hexMask(store.Int64(row["HitMask"])),
		AttributesMask: hexMask(store.Int64(row["AttributesMask"])),
	}
}

// DBCStats summarizes the loaded Spell.dbc.
func (s *Service) DBCStats() (dbc.SpellStats, error) {
	t, err := s.spellTable()
	if err != nil {
		return dbc.SpellStats{}, err
	}
	return t.Stats(), nil
}
