package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/azerothmcp/server/internal/sai"
)

// Name lookups return found=false on a clean miss so callers can pick
// their own placeholder text.

// CreatureName looks up creature_template.name by entry.
func (s *Store) CreatureName(ctx context.Context, entry int64) (string, bool, error) {
	return s.lookupName(ctx, `SELECT name FROM creature_template WHERE entry = ?`, entry)
}

// CreatureNameByGUID resolves a spawned creature to its template name.
func (s *Store) CreatureNameByGUID(ctx context.Context, guid int64) (string, bool, error) {
	return s.lookupName(ctx,
		`SELECT ct.name FROM creature c JOIN creature_template ct ON c.id1 = ct.entry WHERE c.guid = ?`, guid)
}

// GameObjectName looks up gameobject_template.name by entry.
func (s *Store) GameObjectName(ctx context.Context, entry int64) (string, bool, error) {
	return s.lookupName(ctx, `SELECT name FROM gameobject_template WHERE entry = ?`, entry)
}

// GameObjectNameByGUID resolves a spawned gameobject to its template name.
func (s *Store) GameObjectNameByGUID(ctx context.Context, guid int64) (string, bool, error) {
	return s.lookupName(ctx,
		`SELECT gt.name FROM gameobject g JOIN gameobject_template gt ON g.id = gt.entry WHERE g.guid = ?`, guid)
}

// QuestTitle looks up quest_template.LogTitle by quest id.
func (s *Store) QuestTitle(ctx context.Context, id int64) (string, bool, error) {
	return s.lookupName(ctx, `SELECT LogTitle FROM quest_template WHERE ID = ?`, id)
}

// ItemName looks up item_template.name by entry.
func (s *Store) ItemName(ctx context.Context, entry int64) (string, bool, error) {
	return s.lookupName(ctx, `SELECT name FROM item_template WHERE entry = ?`, entry)
}

func (s *Store) lookupName(ctx context.Context, query string, id int64) (string, bool, error) {
	if s.World == nil {
		return "", false, errors.New(`database "world" has no configured dsn`)
	}
	var name sql.NullString
	err := s.World.QueryRowContext(ctx, query, id).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return name.String, true, nil
}

// SmartScripts loads the smart_scripts rows of one entity in id order.
// Columns decode tolerantly; a schema variant with extra columns still
// loads the ones the row struct names.
func (s *Store) SmartScripts(ctx context.Context, entryOrGUID, sourceType int64) ([]sai.ScriptRow, error) {
	rows, err := s.Query(ctx, "world",
		`SELECT * FROM smart_scripts WHERE entryorguid = ? AND source_type = ? ORDER BY id`,
		entryOrGUID, sourceType)
	if err != nil {
		return nil, err
	}
	out := make([]sai.ScriptRow, 0, len(rows))
	for _, m := range rows {
		out = append(out, scriptRowFromMap(m))
	}
	return out, nil
}

func scriptRowFromMap(m map[string]any) sai.ScriptRow {
	return sai.ScriptRow{
		EntryOrGUID:    Int64(m["entryorguid"]),
		SourceType:     Int64(m["source_type"]),
		ID:             Int64(m["id"]),
		Link:           Int64(m["link"]),
		EventType:      Int64(m["event_type"]),
		EventPhaseMask: Int64(m["event_phase_mask"]),
		EventChance:    Int64(m["event_chance"]),
		EventFlags:     Int64(m["event_flags"]),
		EventParam1:    Int64(m["event_param1"]),
		EventParam2:    Int64(m["event_param2"]),
		EventParam3:    Int64(m["event_param3"]),
		EventParam4:    Int64(m["event_param4"]),
		EventParam5:    Int64(m["event_param5"]),
		EventParam6:    Int64(m["event_param6"]),
		ActionType:     Int64(m["action_type"]),
		ActionParam1:   Int64(m["action_param1"]),
		ActionParam2:   Int64(m["action_param2"]),
		ActionParam3:   Int64(m["action_param3"]),
		ActionParam4:   Int64(m["action_param4"]),
		ActionParam5:   Int64(m["action_param5"]),
		ActionParam6:   Int64(m["action_param6"]),
		TargetType:     Int64(m["target_type"]),
		TargetParam1:   Int64(m["target_param1"]),
		TargetParam2:   Int64(m["target_param2"]),
		TargetParam3:   Int64(m["target_param3"]),
		TargetParam4:   Int64(m["target_param4"]),
		TargetX:        Float64(m["target_x"]),
		TargetY:        Float64(m["target_y"]),
		TargetZ:        Float64(m["target_z"]),
		TargetO:        Float64(m["target_o"]),
		Comment:        Text(m["comment"]),
	}
}

// Int64 coerces whatever the driver produced for an integer column. The
// text protocol delivers numbers as strings, the binary protocol as int64.
func Int64(v any) int64 {
	switch x := v.(type) {
	case int64:
		return x
	case uint64:
		return int64(x)
	case int:
		return int64(x)
	case float64:
		return int64(x)
	case float32:
		return int64(x)
	case string:
		n, err := strconv.ParseInt(x, 10, 64)
		if err != nil {
			f, _ := strconv.ParseFloat(x, 64)
			return int64(f)
		}
		return n
	}
	return 0
}

// Float64 coerces a numeric column value of either wire protocol.
func Float64(v any) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case float32:
		return float64(x)
	case int64:
		return float64(x)
	case uint64:
		return float64(x)
	case int:
		return float64(x)
	case string:
		f, _ := strconv.ParseFloat(x, 64)
		return f
	}
	return 0
}

// Text coerces a textual column value, "" for NULL.
func Text(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

// ConditionFilter selects conditions rows for one source. Nil group and id
// leave those columns unconstrained.
type ConditionFilter struct {
	SourceType  int64
	SourceEntry int64
	SourceGroup *int64
	SourceID    *int64
}

// Conditions lists the conditions attached to one source, ordered the way
// the core groups them for evaluation.
func (s *Store) Conditions(ctx context.Context, f ConditionFilter) ([]map[string]any, error) {
	query, args := conditionsQuery(f)
	return s.Query(ctx, "world", query, args...)
}

func conditionsQuery(f ConditionFilter) (string, []any) {
	var b strings.Builder
	b.WriteString(`SELECT * FROM conditions WHERE SourceTypeOrReferenceId = ? AND SourceEntry = ?`)
	args := []any{f.SourceType, f.SourceEntry}
	if f.SourceGroup != nil {
		b.WriteString(` AND SourceGroup = ?`)
		args = append(args, *f.SourceGroup)
	}
	if f.SourceID != nil {
		b.WriteString(` AND SourceId = ?`)
		args = append(args, *f.SourceID)
	}
	b.WriteString(` ORDER BY ElseGroup, ConditionTypeOrReference`)
	return b.String(), args
}

// ConditionSearch filters a table-wide scan. Limit defaults to 50 and is
// capped at 100.
type ConditionSearch struct {
	ConditionType *int64
	Value1        *int64
	SourceType    *int64
	Limit         int
}

// SearchConditions scans the conditions table by type, first value or
// source type.
func (s *Store) SearchConditions(ctx context.Context, f ConditionSearch) ([]map[string]any, error) {
	query, args := searchConditionsQuery(f)
	return s.Query(ctx, "world", query, args...)
}

func searchConditionsQuery(f ConditionSearch) (string, []any) {
	var b strings.Builder
	b.WriteString(`SELECT * FROM conditions WHERE 1=1`)
	var args []any
	if f.ConditionType != nil {
		b.WriteString(` AND ConditionTypeOrReference = ?`)
		args = append(args, *f.ConditionType)
	}
	if f.Value1 != nil {
		b.WriteString(` AND ConditionValue1 = ?`)
		args = append(args, *f.Value1)
	}
	if f.SourceType != nil {
		b.WriteString(` AND SourceTypeOrReferenceId = ?`)
		args = append(args, *f.SourceType)
	}
	limit := f.Limit
	if limit <= 0 {
		limit = 50
	}
	if limit > 100 {
		limit = 100
	}
	fmt.Fprintf(&b, ` LIMIT %d`, limit)
	return b.String(), args
}
