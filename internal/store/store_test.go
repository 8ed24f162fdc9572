package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsReadStatement(t *testing.T) {
	cases := []struct {
		query string
		ok    bool
	}{
		{"SELECT 1", true},
		{"select entry FROM creature_template", true},
		{"  \n\tSELECT 1", true},
		{"SHOW TABLES", true},
		{"DESCRIBE smart_scripts", true},
		{"desc conditions", true},
		{"EXPLAIN SELECT 1", true},
		{"-- note\nSELECT 1", true},
		{"# note\nSELECT 1", true},
		{"/* lead */ SELECT 1", true},
		{"INSERT INTO t VALUES (1)", false},
		{"UPDATE t SET a = 1", false},
		{"DELETE FROM t", false},
		{"DROP TABLE t", false},
		{"TRUNCATE t", false},
		{"", false},
		{"-- only a comment", false},
		{"/* unterminated SELECT 1", false},
		{"(SELECT 1)", false},
		{"SELECTX", false},
	}
	for _, c := range cases {
		assert.Equal(t, c.ok, isReadStatement(c.query), "query %q", c.query)
	}
}

func TestQueryReadOnlyGuard(t *testing.T) {
	s := &Store{readOnly: true}
	_, err := s.Query(context.Background(), "world", "DELETE FROM conditions")
	assert.ErrorIs(t, err, ErrReadOnly)
}

func TestDBNames(t *testing.T) {
	s := &Store{}
	_, err := s.DB("bogus")
	assert.ErrorIs(t, err, ErrUnknownDatabase)

	_, err = s.DB("world")
	assert.ErrorContains(t, err, "no configured dsn")
}

func TestNormalizeValue(t *testing.T) {
	assert.Equal(t, "abc", normalizeValue([]byte("abc")))
	assert.Equal(t, int64(5), normalizeValue(int64(5)))
	assert.Nil(t, normalizeValue(nil))
}

func TestConditionsQuery(t *testing.T) {
	q, args := conditionsQuery(ConditionFilter{SourceType: 22, SourceEntry: 6})
	assert.Equal(t,
		`SELECT * FROM conditions WHERE SourceTypeOrReferenceId = ? AND SourceEntry = ? ORDER BY ElseGroup, ConditionTypeOrReference`, q)
	assert.Equal(t, []any{int64(22), int64(6)}, args)

	g, id := int64(3), int64(0)
	q, args = conditionsQuery(ConditionFilter{SourceType: 22, SourceEntry: 6, SourceGroup: &g, SourceID: &id})
	assert.Contains(t, q, "AND SourceGroup = ?")
	assert.Contains(t, q, "AND SourceId = ?")
	assert.Equal(t, []any{int64(22), int64(6), int64(3), int64(0)}, args)
}

func TestSearchConditionsQuery(t *testing.T) {
	q, args := searchConditionsQuery(ConditionSearch{})
	assert.Equal(t, `SELECT * FROM conditions WHERE 1=1 LIMIT 50`, q)
	assert.Empty(t, args)

	ct, v1, st := int64(8), int64(11668), int64(22)
	q, args = searchConditionsQuery(ConditionSearch{ConditionType: &ct, Value1: &v1, SourceType: &st, Limit: 500})
	assert.Equal(t,
		`SELECT * FROM conditions WHERE 1=1 AND ConditionTypeOrReference = ? AND ConditionValue1 = ? AND SourceTypeOrReferenceId = ? LIMIT 100`, q)
	assert.Equal(t, []any{int64(8), int64(11668), int64(22)}, args)

	q, _ = searchConditionsQuery(ConditionSearch{Limit: 10})
	assert.Contains(t, q, "LIMIT 10")
}

func TestScriptRowFromMap(t *testing.T) {
	m := map[string]any{
		"entryorguid":  int64(-136600),
		"source_type":  "0",
		"id":           int64(3),
		"link":         uint64(4),
		"event_type":   int64(61),
		"event_chance": 100,
		"action_type":  float64(80),
		"target_x":     "123.5",
		"target_o":     float32(1.5),
		"comment":      "Kobold Vermin - On Aggro - Say Line 0",
	}
	r := scriptRowFromMap(m)
	assert.Equal(t, int64(-136600), r.EntryOrGUID)
	assert.Equal(t, int64(0), r.SourceType)
	assert.Equal(t, int64(3), r.ID)
	assert.Equal(t, int64(4), r.Link)
	assert.Equal(t, int64(61), r.EventType)
	assert.Equal(t, int64(100), r.EventChance)
	assert.Equal(t, int64(80), r.ActionType)
	assert.Equal(t, 123.5, r.TargetX)
	assert.InDelta(t, 1.5, r.TargetO, 1e-9)
	assert.Equal(t, int64(0), r.EventParam1)
	assert.Zero(t, r.TargetY)
	assert.Equal(t, "Kobold Vermin - On Aggro - Say Line 0", r.Comment)
}

func TestValueCoercions(t *testing.T) {
	assert.Equal(t, int64(7), Int64("7"))
	assert.Equal(t, int64(7), Int64("7.9"))
	assert.Equal(t, int64(0), Int64(nil))
	assert.Equal(t, int64(0), Int64("junk"))
	assert.Equal(t, 2.5, Float64("2.5"))
	assert.Equal(t, 2.0, Float64(int64(2)))
	assert.Equal(t, "", Text(nil))
	assert.Equal(t, "x", Text("x"))
}
