package tools

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/azerothmcp/server/internal/conditions"
)

// fakeTemplates answers reference lookups from fixed maps.
type fakeTemplates struct {
	items       map[int64]string
	quests      map[int64]string
	creatures   map[int64]string
	gameobjects map[int64]string
}

func (f fakeTemplates) ItemName(_ context.Context, entry int64) (string, bool, error) {
	n, ok := f.items[entry]
	return n, ok, nil
}

func (f fakeTemplates) QuestTitle(_ context.Context, id int64) (string, bool, error) {
	n, ok := f.quests[id]
	return n, ok, nil
}

func (f fakeTemplates) CreatureName(_ context.Context, entry int64) (string, bool, error) {
	n, ok := f.creatures[entry]
	return n, ok, nil
}

func (f fakeTemplates) GameObjectName(_ context.Context, entry int64) (string, bool, error) {
	n, ok := f.gameobjects[entry]
	return n, ok, nil
}

func TestAnnotateCondition(t *testing.T) {
	row := map[string]any{
		"SourceTypeOrReferenceId":  int64(15),
		"ConditionTypeOrReference": "8", // text protocol delivers ints as strings
		"ConditionValue1":          int64(12345),
		"NegativeCondition":        int64(1),
	}
	out := annotateCondition(row)

	assert.Equal(t, int64(12345), out["ConditionValue1"])
	assert.Equal(t, "CONDITION_QUESTREWARDED", out["_condition_type_name"])
	assert.Equal(t, "Target has completed and been rewarded quest", out["_condition_description"])
	assert.Equal(t, "Quest ID", out["_value1_meaning"])
	assert.Equal(t, "Always 0", out["_value2_meaning"])
	assert.Equal(t, "YES - condition is INVERTED (must NOT match)", out["_inverted"])

	// The input row stays untouched.
	assert.NotContains(t, row, "_condition_type_name")
}

func TestAnnotateConditionUnknownType(t *testing.T) {
	out := annotateCondition(map[string]any{
		"ConditionTypeOrReference": int64(999),
		"NegativeCondition":        int64(0),
	})

	assert.Equal(t, "UNKNOWN", out["_condition_type_name"])
	assert.Equal(t, "Unknown condition type", out["_condition_description"])
	assert.NotContains(t, out, "_inverted")
}

func TestExplainCondition(t *testing.T) {
	svc := &Service{Log: zap.NewNop()}

	src := int64(15)
	exp := svc.ExplainCondition(&src, nil).(*ConditionExplanation)
	doc, ok := exp.SourceType.(conditions.SourceDoc)
	require.True(t, ok, "known source should carry its doc, got %T", exp.SourceType)
	assert.Equal(t, "CONDITION_SOURCE_TYPE_GOSSIP_MENU_OPTION", doc.Name)
	assert.Nil(t, exp.ConditionType)

	cond := int64(1)
	exp = svc.ExplainCondition(nil, &cond).(*ConditionExplanation)
	tdoc, ok := exp.ConditionType.(conditions.TypeDoc)
	require.True(t, ok)
	assert.Equal(t, "CONDITION_AURA", tdoc.Name)
	assert.Equal(t, "Spell ID", tdoc.Value1)
}

func TestExplainConditionUnknownIDs(t *testing.T) {
	svc := &Service{Log: zap.NewNop()}
	src, cond := int64(99), int64(777)
	exp := svc.ExplainCondition(&src, &cond).(*ConditionExplanation)

	u, ok := exp.SourceType.(*UnknownRange)
	require.True(t, ok)
	assert.Equal(t, "Unknown source type 99", u.Error)
	assert.Equal(t, "0-24, 28-29", u.ValidRange)

	u = exp.ConditionType.(*UnknownRange)
	assert.Equal(t, "Unknown condition type 777", u.Error)
	assert.Equal(t, "0-49, 101-103", u.ValidRange)
}

func TestExplainConditionOverview(t *testing.T) {
	svc := &Service{Log: zap.NewNop()}
	ov := svc.ExplainCondition(nil, nil).(*ConditionOverview)

	require.Len(t, ov.CommonTypes, len(conditions.CommonTypeIDs))
	assert.Equal(t, RefType{ID: 1, Name: "CONDITION_AURA", Desc: "Target has aura from spell"}, ov.CommonTypes[0])

	assert.Len(t, ov.SourceTypes, len(conditions.SourceTypes))
	for i := 1; i < len(ov.SourceTypes); i++ {
		assert.Greater(t, ov.SourceTypes[i].ID, ov.SourceTypes[i-1].ID)
	}
	assert.Contains(t, ov.UsageTip, "explain_condition(source_type=15)")
}

func TestCompactCondition(t *testing.T) {
	c := compactCondition(map[string]any{
		"ElseGroup":                int64(1),
		"ConditionTypeOrReference": "9",
		"ConditionValue1":          "11407",
		"ConditionValue2":          int64(0),
		"ConditionValue3":          int64(0),
		"NegativeCondition":        int64(0),
		"Comment":                  nil,
	})
	assert.Equal(t, CompactCondition{
		ElseGroup:     1,
		ConditionType: 9,
		ConditionName: "CONDITION_QUESTTAKEN",
		Value1:        11407,
	}, c)

	data, err := json.Marshal(c)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "Value3")
	assert.NotContains(t, string(data), "Inverted")
	assert.NotContains(t, string(data), "Comment")
}

func TestCompactConditionFullRow(t *testing.T) {
	c := compactCondition(map[string]any{
		"ElseGroup":                int64(0),
		"ConditionTypeOrReference": int64(2),
		"ConditionValue1":          int64(35),
		"ConditionValue2":          int64(1),
		"ConditionValue3":          int64(1),
		"NegativeCondition":        "1",
		"Comment":                  "show option only without the key",
	})

	assert.Equal(t, "CONDITION_ITEM", c.ConditionName)
	assert.Equal(t, int64(1), c.Value3)
	assert.True(t, c.Inverted)
	assert.Equal(t, "show option only without the key", c.Comment)
}

func TestAuditConditionMissingReferences(t *testing.T) {
	svc := &Service{Log: zap.NewNop()}
	look := fakeTemplates{}

	row := func(condType, value1 int64) map[string]any {
		return map[string]any{
			"ElseGroup":                int64(0),
			"ConditionTypeOrReference": condType,
			"ConditionValue1":          value1,
		}
	}

	cases := []struct {
		name     string
		condType int64
		value1   int64
		issue    string
		fixHint  string
	}{
		{
			"item", condItem, 99,
			"CONDITION_ITEM references non-existent item 99",
			"Add item 99 to item_template or correct ConditionValue1",
		},
		{
			"quest rewarded", condQuestRewarded, 5,
			"CONDITION_QUESTREWARDED references non-existent quest 5",
			"Add quest 5 to quest_template or correct ConditionValue1",
		},
		{
			"quest state", condQuestState, 123,
			"CONDITION_QUESTSTATE references non-existent quest 123",
			"Add quest 123 to quest_template or correct ConditionValue1",
		},
		{
			"creature", condNearCreature, 7,
			"CONDITION_NEAR_CREATURE references non-existent creature 7",
			"Add creature 7 to creature_template or correct ConditionValue1",
		},
		{
			"gameobject", condNearGameObject, 8,
			"CONDITION_NEAR_GAMEOBJECT references non-existent gameobject 8",
			"Add gameobject 8 to gameobject_template or correct ConditionValue1",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			issues, err := svc.auditCondition(context.Background(), look, row(tc.condType, tc.value1))
			require.NoError(t, err)
			require.Len(t, issues, 1)
			assert.Equal(t, "ERROR", issues[0].Severity)
			assert.Equal(t, "ElseGroup=0", issues[0].ConditionID)
			assert.Equal(t, tc.issue, issues[0].Issue)
			assert.Equal(t, tc.fixHint, issues[0].FixHint)
		})
	}
}

func TestAuditConditionClean(t *testing.T) {
	svc := &Service{Log: zap.NewNop()}
	look := fakeTemplates{
		items:  map[int64]string{35: "Bent Staff"},
		quests: map[int64]string{11407: "Free at Last"},
	}

	for _, row := range []map[string]any{
		{"ConditionTypeOrReference": int64(condItem), "ConditionValue1": int64(35)},
		{"ConditionTypeOrReference": int64(condQuestTaken), "ConditionValue1": int64(11407)},
		// Value1 of 0 means there is nothing to cross-check.
		{"ConditionTypeOrReference": int64(condItem), "ConditionValue1": int64(0)},
		// Reputation rank references a DBC faction, not a world table.
		{"ConditionTypeOrReference": int64(5), "ConditionValue1": int64(72)},
	} {
		issues, err := svc.auditCondition(context.Background(), look, row)
		require.NoError(t, err)
		assert.Empty(t, issues)
	}
}

func TestAuditAuraWithoutDBC(t *testing.T) {
	svc := &Service{Log: zap.NewNop()}
	issues, err := svc.auditCondition(context.Background(), fakeTemplates{}, map[string]any{
		"ElseGroup":                int64(2),
		"ConditionTypeOrReference": int64(condAura),
		"ConditionValue1":          int64(17),
	})
	require.NoError(t, err)

	require.Len(t, issues, 1)
	assert.Equal(t, "INFO", issues[0].Severity)
	assert.Equal(t, "ElseGroup=2", issues[0].ConditionID)
	assert.Equal(t, "CONDITION_AURA checks for spell 17. Verify spell exists in client DBC files.", issues[0].Issue)
	assert.Equal(t, "Use a spell lookup tool to verify spell ID", issues[0].FixHint)
}

// With Spell.dbc loaded the aura audit resolves the spell id for real.
func TestAuditAuraAgainstDBC(t *testing.T) {
	svc := testSpellService(t)

	assert.Nil(t, svc.auditAura(17, "ElseGroup=0"))

	issues := svc.auditAura(999, "ElseGroup=0")
	require.Len(t, issues, 1)
	assert.Equal(t, "WARNING", issues[0].Severity)
	assert.Equal(t, "CONDITION_AURA references spell 999 not present in Spell.dbc", issues[0].Issue)
	assert.Equal(t, "Correct ConditionValue1 or re-extract Spell.dbc", issues[0].FixHint)
}

func TestConditionReference(t *testing.T) {
	svc := &Service{Log: zap.NewNop()}
	ref := svc.ConditionReference()

	assert.Len(t, ref.ConditionTypes, len(conditions.Types))
	assert.Len(t, ref.SourceTypes, len(conditions.SourceTypes))
	assert.Equal(t, RefType{ID: 0, Name: "CONDITION_NONE", Desc: "Never used"}, ref.ConditionTypes[0])
	for i := 1; i < len(ref.ConditionTypes); i++ {
		assert.Greater(t, ref.ConditionTypes[i].ID, ref.ConditionTypes[i-1].ID)
	}
}

func TestSourceInfoFallback(t *testing.T) {
	doc, ok := sourceInfo(15).(conditions.SourceDoc)
	require.True(t, ok)
	assert.Equal(t, "CONDITION_SOURCE_TYPE_GOSSIP_MENU_OPTION", doc.Name)

	assert.Equal(t, map[string]string{"name": "UNKNOWN"}, sourceInfo(99))
}
