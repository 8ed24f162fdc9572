package tools

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/azerothmcp/server/internal/conditions"
	"github.com/azerothmcp/server/internal/store"
)

// Condition types the audit cross-checks against reference tables.
const (
	condAura           = 1
	condItem           = 2
	condQuestRewarded  = 8
	condQuestTaken     = 9
	condNearCreature   = 29
	condNearGameObject = 30
	condQuestState     = 47
)

const conditionLogic = "Conditions with the SAME ElseGroup are ANDed together. " +
	"Different ElseGroups are ORed. " +
	"The overall condition passes if ANY ElseGroup passes."

// ConditionSet is the annotated listing of one source's conditions.
type ConditionSet struct {
	SourceInfo any              `json:"source_type_info"`
	Conditions []map[string]any `json:"conditions"`
	Logic      string           `json:"logic_explanation"`
}

// ConditionMiss reports an empty lookup with the source type documentation
// attached for orientation.
type ConditionMiss struct {
	Message    string `json:"message"`
	SourceInfo any    `json:"source_type_info"`
}

// GetConditions lists the conditions attached to one source with every row
// annotated: type name, what the type tests and what each value column means.
func (s *Service) GetConditions(ctx context.Context, sourceType, sourceEntry int64, sourceGroup, sourceID *int64) (any, error) {
	st, err := s.worldStore()
	if err != nil {
		return nil, err
	}
	rows, err := st.Conditions(ctx, store.ConditionFilter{
		SourceType:  sourceType,
		SourceEntry: sourceEntry,
		SourceGroup: sourceGroup,
		SourceID:    sourceID,
	})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return &ConditionMiss{
			Message:    fmt.Sprintf("No conditions found for source_type=%d, source_entry=%d", sourceType, sourceEntry),
			SourceInfo: sourceInfo(sourceType),
		}, nil
	}
	annotated := make([]map[string]any, len(rows))
	for i, row := range rows {
		annotated[i] = annotateCondition(row)
	}
	return &ConditionSet{
		SourceInfo: sourceInfo(sourceType),
		Conditions: annotated,
		Logic:      conditionLogic,
	}, nil
}

func sourceInfo(id int64) any {
	if d, ok := conditions.SourceTypes[id]; ok {
		return d
	}
	return map[string]string{"name": "UNKNOWN"}
}

func annotateCondition(row map[string]any) map[string]any {
	doc, ok := conditions.Types[store.Int64(row["ConditionTypeOrReference"])]
	if !ok {
		doc = conditions.TypeDoc{Name: "UNKNOWN", Description: "Unknown condition type"}
	}
	out := make(map[string]any, len(row)+6)
	for k, v := range row {
		out[k] = v
	}
	out["_condition_type_name"] = doc.Name
	out["_condition_description"] = doc.Description
	out["_value1_meaning"] = doc.Value1
	out["_value2_meaning"] = doc.Value2
	out["_value3_meaning"] = doc.Value3
	if store.Int64(row["NegativeCondition"]) != 0 {
		out["_inverted"] = "YES - condition is INVERTED (must NOT match)"
	}
	return out
}

// ConditionExplanation answers a documentation query for a source type, a
// condition type, or both. Each slot is the full doc or an UnknownRange.
type ConditionExplanation struct {
	SourceType    any `json:"source_type,omitempty"`
	ConditionType any `json:"condition_type,omitempty"`
}

// ConditionOverview is the summary returned when no specific type is asked
// about.
type ConditionOverview struct {
	SourceTypes []RefType `json:"source_types_summary"`
	CommonTypes []RefType `json:"common_condition_types"`
	UsageTip    string    `json:"usage_tip"`
}

// UnknownRange reports an undocumented type id and which ids are documented.
type UnknownRange struct {
	Error      string `json:"error"`
	ValidRange string `json:"valid_range"`
}

// ExplainCondition documents condition source types and condition types.
// With no arguments it returns an overview of both catalogs.
func (s *Service) ExplainCondition(sourceType, conditionType *int64) any {
	if sourceType == nil && conditionType == nil {
		return &ConditionOverview{
			SourceTypes: sourceRefTypes(),
			CommonTypes: commonConditionTypes(),
			UsageTip: "Call with source_type=X or condition_type=X for detailed info. " +
				"Example: explain_condition(source_type=15) for gossip menu option details.",
		}
	}
	var out ConditionExplanation
	if sourceType != nil {
		if d, ok := conditions.SourceTypes[*sourceType]; ok {
			out.SourceType = d
		} else {
			out.SourceType = &UnknownRange{
				Error:      fmt.Sprintf("Unknown source type %d", *sourceType),
				ValidRange: "0-24, 28-29",
			}
		}
	}
	if conditionType != nil {
		if d, ok := conditions.Types[*conditionType]; ok {
			out.ConditionType = d
		} else {
			out.ConditionType = &UnknownRange{
				Error:      fmt.Sprintf("Unknown condition type %d", *conditionType),
				ValidRange: "0-49, 101-103",
			}
		}
	}
	return &out
}

func sourceRefTypes() []RefType {
	out := make([]RefType, 0, len(conditions.SourceTypes))
	for id, d := range conditions.SourceTypes {
		out = append(out, RefType{ID: id, Name: d.Name, Desc: d.Description})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func conditionRefTypes() []RefType {
	out := make([]RefType, 0, len(conditions.Types))
	for id, d := range conditions.Types {
		out = append(out, RefType{ID: id, Name: d.Name, Desc: d.Description})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func commonConditionTypes() []RefType {
	out := make([]RefType, 0, len(conditions.CommonTypeIDs))
	for _, id := range conditions.CommonTypeIDs {
		if d, ok := conditions.Types[id]; ok {
			out = append(out, RefType{ID: id, Name: d.Name, Desc: d.Description})
		}
	}
	return out
}

// ConditionIssue is one finding from a conditions audit.
type ConditionIssue struct {
	Severity    string `json:"severity"`
	ConditionID string `json:"condition_id"`
	Issue       string `json:"issue"`
	FixHint     string `json:"fix_hint"`
}

// CompactCondition trims a conditions row to the columns that drive
// evaluation.
type CompactCondition struct {
	ElseGroup     int64  `json:"ElseGroup"`
	ConditionType int64  `json:"ConditionType"`
	ConditionName string `json:"ConditionName"`
	Value1        int64  `json:"Value1"`
	Value2        int64  `json:"Value2"`
	Value3        int64  `json:"Value3,omitempty"`
	Inverted      bool   `json:"Inverted,omitempty"`
	Comment       string `json:"Comment,omitempty"`
}

// ConditionDiagnosis is the audit result for one source's conditions.
type ConditionDiagnosis struct {
	SourceType      int64              `json:"source_type"`
	SourceEntry     int64              `json:"source_entry"`
	SourceGroup     *int64             `json:"source_group"`
	TotalConditions int                `json:"total_conditions"`
	TotalIssues     int                `json:"total_issues"`
	Issues          []ConditionIssue   `json:"issues"`
	Conditions      []CompactCondition `json:"conditions"`
	Hint            string             `json:"_hint"`
}

// templateLookup is the slice of the world store the condition audit needs,
// split out so tests can fake reference lookups.
type templateLookup interface {
	ItemName(ctx context.Context, entry int64) (string, bool, error)
	QuestTitle(ctx context.Context, id int64) (string, bool, error)
	CreatureName(ctx context.Context, entry int64) (string, bool, error)
	GameObjectName(ctx context.Context, entry int64) (string, bool, error)
}

// DiagnoseConditions audits one source's conditions for references to
// entities that do not exist and returns the findings with a compact view
// of the rows.
func (s *Service) DiagnoseConditions(ctx context.Context, sourceType, sourceEntry int64, sourceGroup *int64) (any, error) {
	st, err := s.worldStore()
	if err != nil {
		return nil, err
	}
	rows, err := st.Conditions(ctx, store.ConditionFilter{
		SourceType:  sourceType,
		SourceEntry: sourceEntry,
		SourceGroup: sourceGroup,
	})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return &Notice{
			Message: fmt.Sprintf("No conditions found for source_type=%d, source_entry=%d", sourceType, sourceEntry),
		}, nil
	}

	issues := []ConditionIssue{}
	for _, row := range rows {
		found, err := s.auditCondition(ctx, st, row)
		if err != nil {
			return nil, err
		}
		issues = append(issues, found...)
	}

	compact := make([]CompactCondition, len(rows))
	for i, row := range rows {
		compact[i] = compactCondition(row)
	}

	return &ConditionDiagnosis{
		SourceType:      sourceType,
		SourceEntry:     sourceEntry,
		SourceGroup:     sourceGroup,
		TotalConditions: len(rows),
		TotalIssues:     len(issues),
		Issues:          issues,
		Conditions:      compact,
		Hint:            "Use get_conditions() for full condition details with explanations",
	}, nil
}

func (s *Service) auditCondition(ctx context.Context, look templateLookup, row map[string]any) ([]ConditionIssue, error) {
	condType := store.Int64(row["ConditionTypeOrReference"])
	value1 := store.Int64(row["ConditionValue1"])
	if value1 <= 0 {
		return nil, nil
	}
	condID := fmt.Sprintf("ElseGroup=%d", store.Int64(row["ElseGroup"]))

	missing := func(kind, table string) ConditionIssue {
		return ConditionIssue{
			Severity:    "ERROR",
			ConditionID: condID,
			Issue:       fmt.Sprintf("%s references non-existent %s %d", conditions.TypeName(condType), kind, value1),
			FixHint:     fmt.Sprintf("Add %s %d to %s or correct ConditionValue1", kind, value1, table),
		}
	}

	switch condType {
	case condAura:
		return s.auditAura(value1, condID), nil
	case condItem:
		if _, ok, err := look.ItemName(ctx, value1); err != nil {
			return nil, err
		} else if !ok {
			return []ConditionIssue{missing("item", "item_template")}, nil
		}
	case condQuestRewarded, condQuestTaken, condQuestState:
		if _, ok, err := look.QuestTitle(ctx, value1); err != nil {
			return nil, err
		} else if !ok {
			return []ConditionIssue{missing("quest", "quest_template")}, nil
		}
	case condNearCreature:
		if _, ok, err := look.CreatureName(ctx, value1); err != nil {
			return nil, err
		} else if !ok {
			return []ConditionIssue{missing("creature", "creature_template")}, nil
		}
	case condNearGameObject:
		if _, ok, err := look.GameObjectName(ctx, value1); err != nil {
			return nil, err
		} else if !ok {
			return []ConditionIssue{missing("gameobject", "gameobject_template")}, nil
		}
	}
	return nil, nil
}

// auditAura checks an aura condition against the loaded Spell.dbc. Without
// one the spell id can only be flagged for manual review.
func (s *Service) auditAura(spellID int64, condID string) []ConditionIssue {
	if s.Spells == nil {
		return []ConditionIssue{{
			Severity:    "INFO",
			ConditionID: condID,
			Issue:       fmt.Sprintf("CONDITION_AURA checks for spell %d. Verify spell exists in client DBC files.", spellID),
			FixHint:     "Use a spell lookup tool to verify spell ID",
		}}
	}
	if spellID <= math.MaxUint32 && s.Spells.Get(uint32(spellID)) != nil {
		return nil
	}
	return []ConditionIssue{{
		Severity:    "WARNING",
		ConditionID: condID,
		Issue:       fmt.Sprintf("CONDITION_AURA references spell %d not present in Spell.dbc", spellID),
		FixHint:     "Correct ConditionValue1 or re-extract Spell.dbc",
	}}
}

func compactCondition(row map[string]any) CompactCondition {
	ct := store.Int64(row["ConditionTypeOrReference"])
	return CompactCondition{
		ElseGroup:     store.Int64(row["ElseGroup"]),
		ConditionType: ct,
		ConditionName: conditions.TypeName(ct),
		Value1:        store.Int64(row["ConditionValue1"]),
		Value2:        store.Int64(row["ConditionValue2"]),
		Value3:        store.Int64(row["ConditionValue3"]),
		Inverted:      store.Int64(row["NegativeCondition"]) != 0,
		Comment:       store.Text(row["Comment"]),
	}
}

// ConditionMatches is the result of a table-wide conditions search.
type ConditionMatches struct {
	Count      int              `json:"count"`
	Conditions []map[string]any `json:"conditions"`
}

// SearchConditions scans the conditions table by condition type, first
// value or source type, tagging each hit with its type names.
func (s *Service) SearchConditions(ctx context.Context, conditionType, value1, sourceType *int64, limit int) (any, error) {
	st, err := s.worldStore()
	if err != nil {
		return nil, err
	}
	rows, err := st.SearchConditions(ctx, store.ConditionSearch{
		ConditionType: conditionType,
		Value1:        value1,
		SourceType:    sourceType,
		Limit:         limit,
	})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return &Notice{Message: "No conditions found matching criteria"}, nil
	}
	out := make([]map[string]any, len(rows))
	for i, row := range rows {
		tagged := make(map[string]any, len(row)+2)
		for k, v := range row {
			tagged[k] = v
		}
		tagged["_source_type_name"] = conditions.SourceTypeName(store.Int64(row["SourceTypeOrReferenceId"]))
		tagged["_condition_type_name"] = conditions.TypeName(store.Int64(row["ConditionTypeOrReference"]))
		out[i] = tagged
	}
	return &ConditionMatches{Count: len(out), Conditions: out}, nil
}

// ConditionRef lists every documented condition type and source type.
type ConditionRef struct {
	ConditionTypes []RefType `json:"condition_types"`
	SourceTypes    []RefType `json:"source_types"`
}

// ConditionReference returns the full conditions catalog, each list sorted
// by id.
func (s *Service) ConditionReference() *ConditionRef {
	return &ConditionRef{
		ConditionTypes: conditionRefTypes(),
		SourceTypes:    sourceRefTypes(),
	}
}
