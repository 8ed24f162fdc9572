package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/azerothmcp/server/internal/dbc"
	"github.com/azerothmcp/server/internal/store"
)

// ProcDecoded is the "_decoded" block attached to a spell_proc row: every
// bitmask column expanded into named flags.
type ProcDecoded struct {
	ProcFlags       []dbc.FlagInfo `json:"ProcFlags"`
	SpellTypeMask   []dbc.FlagInfo `json:"SpellTypeMask"`
	SpellPhaseMask  []dbc.FlagInfo `json:"SpellPhaseMask"`
	HitMask         []dbc.FlagInfo `json:"HitMask"`
	AttributesMask  []dbc.FlagInfo `json:"AttributesMask"`
	SchoolMask      []dbc.FlagInfo `json:"SchoolMask"`
	SpellFamilyName string         `json:"SpellFamilyName"`
}

func decodeProcRow(row map[string]any) *ProcDecoded {
	u := func(col string) uint32 { return uint32(store.Int64(row[col])) }
	return &ProcDecoded{
		ProcFlags:       dbc.DecodeProcFlags(u("ProcFlags")),
		SpellTypeMask:   dbc.DecodeProcSpellType(u("SpellTypeMask")),
		SpellPhaseMask:  dbc.DecodeProcSpellPhase(u("SpellPhaseMask")),
		HitMask:         dbc.DecodeProcHit(u("HitMask")),
		AttributesMask:  dbc.DecodeProcAttributes(u("AttributesMask")),
		SchoolMask:      dbc.DecodeSchoolMask(u("SchoolMask")),
		SpellFamilyName: dbc.SpellFamilyName(int32(store.Int64(row["SpellFamilyName"]))),
	}
}

// LegacyProc reports a spell configured only in the pre-rewrite
// spell_proc_event table.
type LegacyProc struct {
	Message    string         `json:"message"`
	LegacyData map[string]any `json:"legacy_data"`
	Hint       string         `json:"hint"`
}

// GetSpellProc returns the spell_proc row of a spell with every bitmask
// decoded. A spell present only in spell_proc_event comes back with a
// migration hint; a spell in neither table is a clean miss, not an error.
func (s *Service) GetSpellProc(ctx context.Context, spellID int64) (any, error) {
	st, err := s.worldStore()
	if err != nil {
		return nil, err
	}
	rows, err := st.Query(ctx, "world", `SELECT * FROM spell_proc WHERE SpellId = ?`, spellID)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		legacy, err := st.Query(ctx, "world", `SELECT * FROM spell_proc_event WHERE entry = ?`, spellID)
		if err != nil {
			return nil, err
		}
		if len(legacy) > 0 {
			return &LegacyProc{
				Message:    fmt.Sprintf("Spell %d found in legacy spell_proc_event table (not spell_proc)", spellID),
				LegacyData: legacy[0],
				Hint:       "Consider migrating to spell_proc table for better control",
			}, nil
		}
		return &Notice{
			Message: fmt.Sprintf("No proc configuration found for spell %d", spellID),
			Hint:    "Spell may use default DBC proc data or have no proc effect",
		}, nil
	}
	row := rows[0]
	row["_decoded"] = decodeProcRow(row)
	return row, nil
}

// ProcHit is one compact row of a spell_proc search.
type ProcHit struct {
	SpellID     int64   `json:"SpellId"`
	SpellFamily string  `json:"SpellFamily"`
	ProcFlags   string  `json:"ProcFlags"`
	Chance      float64 `json:"Chance"`
	PPM         float64 `json:"PPM"`
	Cooldown    int64   `json:"Cooldown"`
	Charges     int64   `json:"Charges"`
}

// ProcSearch is the envelope of a spell_proc search result.
type ProcSearch struct {
	Count int       `json:"count"`
	Procs []ProcHit `json:"procs"`
}

// SearchSpellProcs filters spell_proc rows by family, proc-flag overlap,
// or a positive PPM rate. Nil criteria are unconstrained; limit caps at
// 100 and defaults to 50.
func (s *Service) SearchSpellProcs(ctx context.Context, family, procFlags *int64, hasPPM bool, limit int) (any, error) {
	st, err := s.worldStore()
	if err != nil {
		return nil, err
	}
	query, args := searchProcsQuery(family, procFlags, hasPPM, limit)
	rows, err := st.Query(ctx, "world", query, args...)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return &Notice{Message: "No proc entries found matching criteria"}, nil
	}
	hits := make([]ProcHit, len(rows))
	for i, row := range rows {
		hits[i] = ProcHit{
			SpellID:     store.Int64(row["SpellId"]),
			SpellFamily: dbc.SpellFamilyName(int32(store.Int64(row["SpellFamilyName"]))),
			ProcFlags:   hexMask(store.Int64(row["ProcFlags"])),
			Chance:      store.Float64(row["Chance"]),
			PPM:         store.Float64(row["ProcsPerMinute"]),
			Cooldown:    store.Int64(row["Cooldown"]),
			Charges:     store.Int64(row["Charges"]),
		}
	}
	return &ProcSearch{Count: len(hits), Procs: hits}, nil
}

func searchProcsQuery(family, procFlags *int64, hasPPM bool, limit int) (string, []any) {
	var b strings.Builder
	b.WriteString(`SELECT * FROM spell_proc WHERE 1=1`)
	var args []any
	if family != nil {
		b.WriteString(` AND SpellFamilyName = ?`)
		args = append(args, *family)
	}
	if procFlags != nil {
		b.WriteString(` AND (ProcFlags & ?) != 0`)
		args = append(args, *procFlags)
	}
	if hasPPM {
		b.WriteString(` AND ProcsPerMinute > 0`)
	}
	if limit <= 0 {
		limit = 50
	}
	if limit > 100 {
		limit = 100
	}
	fmt.Fprintf(&b, ` LIMIT %d`, limit)
	return b.String(), args
}

// MaskDecode is one decoded bitmask value.
type MaskDecode struct {
	Value   string         `json:"value"`
	Decoded []dbc.FlagInfo `json:"decoded"`
}

// MaskExplanation decodes whichever proc masks the caller passed.
type MaskExplanation struct {
	ProcFlags      *MaskDecode `json:"ProcFlags,omitempty"`
	HitMask        *MaskDecode `json:"HitMask,omitempty"`
	SpellTypeMask  *MaskDecode `json:"SpellTypeMask,omitempty"`
	SpellPhaseMask *MaskDecode `json:"SpellPhaseMask,omitempty"`
	AttributesMask *MaskDecode `json:"AttributesMask,omitempty"`
}

// procMaskUsage is what ExplainProcFlags returns when called without any
// mask at all.
var procMaskUsage = map[string]any{
	"usage": "Pass a bitmask value to decode. Examples:",
	"examples": map[string]string{
		"proc_flags":      "explain_proc_flags(proc_flags=0x00000014) - melee attacks",
		"hit_mask":        "explain_proc_flags(hit_mask=0x00000003) - normal or crit",
		"spell_type_mask": "explain_proc_flags(spell_type_mask=0x00000001) - damage spells",
	},
	"common_proc_flags": map[string]string{
		"0x00000004": "DONE_MELEE_AUTO_ATTACK",
		"0x00000010": "DONE_SPELL_MELEE_DMG_CLASS",
		"0x00000014": "Any melee attack done",
		"0x00010000": "DONE_SPELL_MAGIC_DMG_CLASS_NEG",
		"0x00040000": "DONE_PERIODIC",
	},
	"common_hit_masks": map[string]string{
		"0x00000001": "NORMAL hit only",
		"0x00000002": "CRITICAL hit only",
		"0x00000003": "Normal OR Critical",
	},
}

// ExplainProcFlags decodes the given proc bitmasks into named flags. With
// no arguments it returns usage notes and the most common values instead.
func (s *Service) ExplainProcFlags(procFlags, hitMask, spellTypeMask, spellPhaseMask, attributesMask *uint32) any {
	out := &MaskExplanation{}
	given := false
	if procFlags != nil {
		out.ProcFlags = &MaskDecode{Value: hexMask(int64(*procFlags)), Decoded: dbc.DecodeProcFlags(*procFlags)}
		given = true
	}
	if hitMask != nil {
		out.HitMask = &MaskDecode{Value: hexMask(int64(*hitMask)), Decoded: dbc.DecodeProcHit(*hitMask)}
		given = true
	}
	if spellTypeMask != nil {
		out.SpellTypeMask = &MaskDecode{Value: hexMask(int64(*spellTypeMask)), Decoded: dbc.DecodeProcSpellType(*spellTypeMask)}
		given = true
	}
	if spellPhaseMask != nil {
		out.SpellPhaseMask = &MaskDecode{Value: hexMask(int64(*spellPhaseMask)), Decoded: dbc.DecodeProcSpellPhase(*spellPhaseMask)}
		given = true
	}
	if attributesMask != nil {
		out.AttributesMask = &MaskDecode{Value: hexMask(int64(*attributesMask)), Decoded: dbc.DecodeProcAttributes(*attributesMask)}
		given = true
	}
	if !given {
		return procMaskUsage
	}
	return out
}

// ProcRef is the full proc reference: every bitmask vocabulary and the
// spell family list.
type ProcRef struct {
	ProcFlags        []dbc.FlagInfo `json:"ProcFlags"`
	SpellTypeMask    []dbc.FlagInfo `json:"SpellTypeMask"`
	SpellPhaseMask   []dbc.FlagInfo `json:"SpellPhaseMask"`
	HitMask          []dbc.FlagInfo `json:"HitMask"`
	AttributesMask   []dbc.FlagInfo `json:"AttributesMask"`
	SpellFamilyNames []dbc.Family   `json:"SpellFamilyNames"`
}

// ProcReference lists every proc flag type and its meaning.
func (s *Service) ProcReference() *ProcRef {
	return &ProcRef{
		ProcFlags:        dbc.Infos(dbc.ProcFlagBits),
		SpellTypeMask:    dbc.Infos(dbc.ProcSpellTypeBits),
		SpellPhaseMask:   dbc.Infos(dbc.ProcSpellPhaseBits),
		HitMask:          dbc.Infos(dbc.ProcHitBits),
		AttributesMask:   dbc.Infos(dbc.ProcAttributeBits),
		SpellFamilyNames: dbc.SpellFamilies,
	}
}

// ProcIssue is one finding of a proc diagnosis.
type ProcIssue struct {
	Severity string `json:"severity"`
	Issue    string `json:"issue"`
	FixHint  string `json:"fix_hint"`
}

// ProcConfig is the summarized spell_proc configuration of one spell.
type ProcConfig struct {
	ProcFlags        string         `json:"ProcFlags"`
	ProcFlagsDecoded []dbc.FlagInfo `json:"ProcFlags_decoded"`
	Chance           float64        `json:"Chance"`
	ProcsPerMinute   float64        `json:"ProcsPerMinute"`
	CooldownMS       int64          `json:"Cooldown_ms"`
	Charges          int64          `json:"Charges"`
	SpellFamily      string         `json:"SpellFamily"`
}

// ProcSource names the table supplying a spell's proc configuration and,
// for spell_proc rows, carries the summarized configuration.
type ProcSource struct {
	Source string      `json:"source"`
	Config *ProcConfig `json:"config,omitempty"`
}

// ProcDiagnosis is the result of DiagnoseSpellProc. Info and TotalIssues
// are only present when some proc configuration exists.
type ProcDiagnosis struct {
	SpellID       int64       `json:"spell_id"`
	HasProcConfig bool        `json:"has_proc_config"`
	Info          *ProcSource `json:"info,omitempty"`
	TotalIssues   *int        `json:"total_issues,omitempty"`
	Issues        []ProcIssue `json:"issues"`
}

// DiagnoseSpellProc checks a spell's proc configuration for the usual
// mistakes: conflicting tables, impossible chance values, family masks
// without a family.
func (s *Service) DiagnoseSpellProc(ctx context.Context, spellID int64) (*ProcDiagnosis, error) {
	st, err := s.worldStore()
	if err != nil {
		return nil, err
	}
	proc, err := st.Query(ctx, "world", `SELECT * FROM spell_proc WHERE SpellId = ?`, spellID)
	if err != nil {
		return nil, err
	}
	legacy, err := st.Query(ctx, "world", `SELECT * FROM spell_proc_event WHERE entry = ?`, spellID)
	if err != nil {
		return nil, err
	}
	issues := []ProcIssue{}
	if len(proc) > 0 && len(legacy) > 0 {
		issues = append(issues, ProcIssue{
			"WARNING",
			"Spell exists in BOTH spell_proc AND spell_proc_event tables",
			"spell_proc takes precedence. Remove from spell_proc_event if migrated.",
		})
	}
	if len(proc) == 0 && len(legacy) == 0 {
		issues = append(issues, ProcIssue{
			"INFO",
			"No proc configuration found in database",
			"Spell uses default DBC data. Add to spell_proc for custom behavior.",
		})
		return &ProcDiagnosis{SpellID: spellID, HasProcConfig: false, Issues: issues}, nil
	}
	info := &ProcSource{Source: "spell_proc_event (legacy)"}
	if len(proc) > 0 {
		info.Source = "spell_proc"
		cfg, found := diagnoseProcConfig(proc[0])
		info.Config = cfg
		issues = append(issues, found...)
	}
	n := len(issues)
	return &ProcDiagnosis{
		SpellID:       spellID,
		HasProcConfig: true,
		Info:          info,
		TotalIssues:   &n,
		Issues:        issues,
	}, nil
}

// diagnoseProcConfig runs the row-level checks of DiagnoseSpellProc and
// summarizes the row.
func diagnoseProcConfig(row map[string]any) (*ProcConfig, []ProcIssue) {
	procFlags := store.Int64(row["ProcFlags"])
	chance := store.Float64(row["Chance"])
	ppm := store.Float64(row["ProcsPerMinute"])
	cooldown := store.Int64(row["Cooldown"])
	family := store.Int64(row["SpellFamilyName"])

	var issues []ProcIssue
	if procFlags == 0 {
		issues = append(issues, ProcIssue{
			"WARNING",
			"ProcFlags is 0 - proc will use DBC default flags",
			"Set explicit ProcFlags for better control",
		})
	}
	if chance == 0 && ppm == 0 {
		issues = append(issues, ProcIssue{
			"INFO",
			"Both Chance and ProcsPerMinute are 0",
			"Uses DBC chance. Set Chance (0-100) or PPM for custom rate.",
		})
	}
	if chance > 100 {
		issues = append(issues, ProcIssue{
			"ERROR",
			fmt.Sprintf("Chance (%g) exceeds 100%%", chance),
			"Chance should be 0-100",
		})
	}
	if ppm > 0 && chance > 0 {
		issues = append(issues, ProcIssue{
			"WARNING",
			"Both PPM and Chance are set",
			"PPM takes precedence - Chance is ignored when PPM > 0",
		})
	}
	if cooldown < 0 {
		issues = append(issues, ProcIssue{
			"ERROR",
			fmt.Sprintf("Cooldown (%d) is negative", cooldown),
			"Cooldown should be >= 0 milliseconds",
		})
	}
	masked := store.Int64(row["SpellFamilyMask0"]) != 0 ||
		store.Int64(row["SpellFamilyMask1"]) != 0 ||
		store.Int64(row["SpellFamilyMask2"]) != 0
	if masked && family == 0 {
		issues = append(issues, ProcIssue{
			"WARNING",
			"SpellFamilyMask set but SpellFamilyName is 0 (GENERIC)",
			"SpellFamilyMask usually needs matching SpellFamilyName",
		})
	}
	cfg := &ProcConfig{
		ProcFlags:        hexMask(procFlags),
		ProcFlagsDecoded: dbc.DecodeProcFlags(uint32(procFlags)),
		Chance:           chance,
		ProcsPerMinute:   ppm,
		CooldownMS:       cooldown,
		Charges:          store.Int64(row["Charges"]),
		SpellFamily:      dbc.SpellFamilyName(int32(family)),
	}
	return cfg, issues
}

// ProcExample is the worked spell_proc row shown by ProcSchema: Killing
// Machine configured to proc on melee crits.
type ProcExample struct {
	Description      string `json:"description"`
	SpellID          int    `json:"SpellId"`
	SchoolMask       int    `json:"SchoolMask"`
	SpellFamilyName  int    `json:"SpellFamilyName"`
	SpellFamilyMask0 int    `json:"SpellFamilyMask0"`
	SpellFamilyMask1 int    `json:"SpellFamilyMask1"`
	SpellFamilyMask2 int    `json:"SpellFamilyMask2"`
	ProcFlags        string `json:"ProcFlags"`
	SpellTypeMask    int    `json:"SpellTypeMask"`
	SpellPhaseMask   int    `json:"SpellPhaseMask"`
	HitMask          int    `json:"HitMask"`
	AttributesMask   int    `json:"AttributesMask"`
	ProcsPerMinute   int    `json:"ProcsPerMinute"`
	Chance           int    `json:"Chance"`
	Cooldown         int    `json:"Cooldown"`
	Charges          int    `json:"Charges"`
}

// ProcSchemaDoc documents the spell_proc table for engineers adding rows.
type ProcSchemaDoc struct {
	Table         string            `json:"table"`
	Description   string            `json:"description"`
	Fields        []dbc.ColumnDoc   `json:"fields"`
	RelatedTables map[string]string `json:"related_tables"`
	UsageExample  *ProcExample      `json:"usage_example"`
}

// ProcSchema documents the spell_proc table, its relatives, and a worked
// example row.
func (s *Service) ProcSchema() *ProcSchemaDoc {
	return &ProcSchemaDoc{
		Table:       "spell_proc",
		Description: "QAston proc system configuration table (ported from TrinityCore)",
		Fields:      dbc.SpellProcColumns,
		RelatedTables: map[string]string{
			"spell_proc_event":        "Legacy proc table (spell_proc takes precedence)",
			"spell_enchant_proc_data": "Enchantment proc configuration",
		},
		UsageExample: &ProcExample{
			Description:     "Example: Configure Killing Machine to proc on melee crits",
			SpellID:         51124,
			SpellFamilyName: 15,
			ProcFlags:       "0x00000004",
			SpellTypeMask:   1,
			SpellPhaseMask:  2,
			HitMask:         2,
		},
	}
}

// ProcSummary is the mask and rate subset of a spell_proc row shown in
// table comparisons.
type ProcSummary struct {
	ProcFlags      string  `json:"ProcFlags"`
	SpellTypeMask  string  `json:"SpellTypeMask"`
	SpellPhaseMask string  `json:"SpellPhaseMask"`
	HitMask        string  `json:"HitMask"`
	Chance         float64 `json:"Chance"`
	PPM            float64 `json:"PPM"`
	Cooldown       int64   `json:"Cooldown"`
}

// ProcPresence is the spell_proc half of a table comparison.
type ProcPresence struct {
	Exists bool `json:"exists"`
	*ProcSummary
}

// LegacySummary is the subset of a spell_proc_event row shown in table
// comparisons, keeping that table's lowerCamel column names.
type LegacySummary struct {
	ProcFlags    string  `json:"procFlags"`
	ProcEx       string  `json:"procEx"`
	ProcPhase    string  `json:"procPhase"`
	CustomChance float64 `json:"CustomChance"`
	PPMRate      float64 `json:"ppmRate"`
	Cooldown     int64   `json:"Cooldown"`
}

// LegacyPresence is the spell_proc_event half of a table comparison.
type LegacyPresence struct {
	Exists bool `json:"exists"`
	*LegacySummary
}

// TableComparison reports which of the two proc tables configure a spell
// and which one the core will actually use.
type TableComparison struct {
	SpellID        int64           `json:"spell_id"`
	Proc           *ProcPresence   `json:"spell_proc"`
	Legacy         *LegacyPresence `json:"spell_proc_event"`
	ActiveTable    string          `json:"active_table"`
	Recommendation string          `json:"recommendation,omitempty"`
}

// CompareProcTables checks both proc tables for a spell and recommends a
// migration direction when the legacy table is still involved.
func (s *Service) CompareProcTables(ctx context.Context, spellID int64) (*TableComparison, error) {
	st, err := s.worldStore()
	if err != nil {
		return nil, err
	}
	proc, err := st.Query(ctx, "world", `SELECT * FROM spell_proc WHERE SpellId = ?`, spellID)
	if err != nil {
		return nil, err
	}
	legacy, err := st.Query(ctx, "world", `SELECT * FROM spell_proc_event WHERE entry = ?`, spellID)
	if err != nil {
		return nil, err
	}
	out := &TableComparison{
		SpellID: spellID,
		Proc:    &ProcPresence{},
		Legacy:  &LegacyPresence{},
	}
	if len(proc) > 0 {
		row := proc[0]
		out.Proc.Exists = true
		out.Proc.ProcSummary = &ProcSummary{
			ProcFlags:      hexMask(store.Int64(row["ProcFlags"])),
			SpellTypeMask:  hexMask(store.Int64(row["SpellTypeMask"])),
			SpellPhaseMask: hexMask(store.Int64(row["SpellPhaseMask"])),
			HitMask:        hexMask(store.Int64(row["HitMask"])),
			Chance:         store.Float64(row["Chance"]),
			PPM:            store.Float64(row["ProcsPerMinute"]),
			Cooldown:       store.Int64(row["Cooldown"]),
		}
	}
	if len(legacy) > 0 {
		row := legacy[0]
		out.Legacy.Exists = true
		out.Legacy.LegacySummary = &LegacySummary{
			ProcFlags:    hexMask(store.Int64(row["procFlags"])),
			ProcEx:       hexMask(store.Int64(row["procEx"])),
			ProcPhase:    hexMask(store.Int64(row["procPhase"])),
			CustomChance: store.Float64(row["CustomChance"]),
			PPMRate:      store.Float64(row["ppmRate"]),
			Cooldown:     store.Int64(row["Cooldown"]),
		}
	}
	switch {
	case out.Proc.Exists && out.Legacy.Exists:
		out.ActiveTable = "spell_proc (takes precedence)"
		out.Recommendation = "Consider removing spell_proc_event entry"
	case out.Proc.Exists:
		out.ActiveTable = "spell_proc"
	case out.Legacy.Exists:
		out.ActiveTable = "spell_proc_event (legacy)"
		out.Recommendation = "Consider migrating to spell_proc for better control"
	default:
		out.ActiveTable = "None (using DBC defaults)"
	}
	return out, nil
}
