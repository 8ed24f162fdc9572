package tools

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/azerothmcp/server/internal/config"
	"github.com/azerothmcp/server/internal/sai"
)

func TestCompactScript(t *testing.T) {
	row := sai.ScriptRow{
		ID:           2,
		Link:         3,
		EventType:    4,
		ActionType:   11,
		TargetType:   2,
		EventParam2:  5000,
		ActionParam1: 12544,
		Comment:      "On Aggro - Cast Frost Armor",
	}
	c := compactScript(&row)

	require.NotNil(t, c.Link)
	assert.Equal(t, int64(3), *c.Link)
	assert.Equal(t, int64(4), c.Event)
	assert.Equal(t, []int64{5000}, c.EventParams)
	assert.Equal(t, []int64{12544}, c.ActionParams)
	assert.Nil(t, c.TargetParams)
	assert.Equal(t, "On Aggro - Cast Frost Armor", c.Comment)
}

// An unlinked row keeps its link key with an explicit null, while zero
// params and an empty comment drop out entirely.
func TestCompactScriptJSON(t *testing.T) {
	data, err := json.Marshal(compactScript(&sai.ScriptRow{ID: 0, EventType: 1}))
	require.NoError(t, err)

	assert.Contains(t, string(data), `"link":null`)
	assert.NotContains(t, string(data), "event_params")
	assert.NotContains(t, string(data), "comment")
}

func TestNonZero(t *testing.T) {
	assert.Nil(t, nonZero(0, 0, 0))
	assert.Equal(t, []int64{7, -1, 3}, nonZero(0, 7, -1, 0, 3))
}

func TestActionListRefs(t *testing.T) {
	refs := actionListRefs(&sai.ScriptRow{ActionType: sai.ActionCallTimedActionList, ActionParam1: 177100})
	assert.Equal(t, []int64{177100}, refs)

	refs = actionListRefs(&sai.ScriptRow{
		ActionType:   sai.ActionCallRandomTimedActionList,
		ActionParam1: 100, ActionParam3: 102, ActionParam6: 105,
	})
	assert.Equal(t, []int64{100, 102, 105}, refs)

	refs = actionListRefs(&sai.ScriptRow{
		ActionType:   sai.ActionCallRandomRangeTimedActionList,
		ActionParam1: 200, ActionParam2: 203,
	})
	assert.Equal(t, []int64{200, 201, 202, 203}, refs)

	// Non-list actions and empty references resolve to nothing.
	assert.Nil(t, actionListRefs(&sai.ScriptRow{ActionType: 1, ActionParam1: 5}))
	assert.Nil(t, actionListRefs(&sai.ScriptRow{ActionType: sai.ActionCallTimedActionList}))
}

func TestActionListRefsClampsCorruptRange(t *testing.T) {
	refs := actionListRefs(&sai.ScriptRow{
		ActionType:   sai.ActionCallRandomRangeTimedActionList,
		ActionParam1: 1, ActionParam2: 1 << 40,
	})
	assert.Len(t, refs, maxTracedLists)
	assert.Equal(t, int64(1), refs[0])
}

func TestSAIReference(t *testing.T) {
	svc := &Service{Log: zap.NewNop()}
	ref := svc.SAIReference()

	require.NotEmpty(t, ref.EventTypes)
	assert.Equal(t, RefType{ID: 0, Name: "SMART_EVENT_UPDATE_IC", Desc: "In combat pulse"}, ref.EventTypes[0])
	for i := 1; i < len(ref.EventTypes); i++ {
		assert.Greater(t, ref.EventTypes[i].ID, ref.EventTypes[i-1].ID)
	}

	// The listing is a projection; parameter docs stay with the explain
	// call.
	data, err := json.Marshal(ref.ActionTypes[0])
	require.NoError(t, err)
	assert.NotContains(t, string(data), "parameters")
}

func TestExplainSmartScript(t *testing.T) {
	svc := &Service{Log: zap.NewNop()}
	event := int64(0)
	action := int64(999)

	out, err := svc.ExplainSmartScript(&event, &action, nil)
	require.NoError(t, err)
	exp := out.(*TypeExplanation)

	doc, ok := exp.Event.(*sai.TypeDoc)
	require.True(t, ok, "known event should carry its doc, got %T", exp.Event)
	assert.Equal(t, "SMART_EVENT_UPDATE_IC", doc.Name)

	unknown, ok := exp.Action.(*UnknownType)
	require.True(t, ok)
	assert.Equal(t, "Unknown action type 999", unknown.Error)

	assert.Nil(t, exp.Target)
}

func TestExplainSmartScriptNoArguments(t *testing.T) {
	svc := &Service{Log: zap.NewNop()}
	_, err := svc.ExplainSmartScript(nil, nil, nil)
	assert.EqualError(t, err, "specify at least one of: event_type, action_type or target_type")
}

func TestCommentsForRowsWithoutResolver(t *testing.T) {
	svc := &Service{Log: zap.NewNop()}
	rows := []sai.ScriptRow{{ID: 0, EventType: 4}, {ID: 1, EventType: 6}}

	out := svc.CommentsForRows(context.Background(), rows, "Test Creature")
	require.Len(t, out, 2)
	assert.Equal(t, int64(1), out[1].ID)
	assert.Empty(t, out[0].Generated)
}

func TestChainTracerCollectsListReferences(t *testing.T) {
	svc := &Service{Log: zap.NewNop()}
	tr := &chainTracer{seen: map[int64]bool{}}

	rows := []sai.ScriptRow{
		{ID: 0, EventType: 4, ActionType: sai.ActionCallTimedActionList, ActionParam1: 177100},
		{ID: 1, Link: 2, EventType: 61, ActionType: 1},
		{ID: 2, EventType: 61, ActionType: sai.ActionCallTimedActionList, ActionParam1: 177100},
	}
	out := tr.scripts(context.Background(), svc, rows, "Test Creature")

	require.Len(t, out, 3)
	assert.Equal(t, []int64{177100}, out[0].CallsActionLists)
	assert.Equal(t, int64(2), out[1].LinksTo)
	assert.Zero(t, out[0].LinksTo)

	// The second reference to the same list is annotated but not queued
	// again.
	assert.Equal(t, []int64{177100}, out[2].CallsActionLists)
	assert.Equal(t, []int64{177100}, tr.queue)
}

func TestChainScriptJSON(t *testing.T) {
	data, err := json.Marshal(ChainScript{ID: 4, EventType: 0, ActionType: 80, Link: 0})
	require.NoError(t, err)

	assert.Contains(t, string(data), `"link":0`)
	assert.NotContains(t, string(data), "links_to")
	assert.NotContains(t, string(data), "calls_action_lists")
}

func TestSourceFileUnconfigured(t *testing.T) {
	svc := &Service{Log: zap.NewNop(), Config: &config.Config{}}
	_, err := svc.sourceFile()
	assert.EqualError(t, err, "AzerothCore source path not configured; set data.source_dir in the server config")
}

func TestSourceFileMissingCPP(t *testing.T) {
	dir := t.TempDir()
	svc := &Service{Log: zap.NewNop(), Config: &config.Config{
		Data: config.DataConfig{SourceDir: dir},
	}}

	_, err := svc.sourceFile()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SmartScript.cpp not found at ")
	assert.Contains(t, err.Error(), dir)
}

func writeSmartScriptCPP(t *testing.T, root, content string) {
	t.Helper()
	dir := filepath.Join(root, "src", "server", "game", "AI", "SmartScripts")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "SmartScript.cpp"), []byte(content), 0o644))
}

func TestSAISourceExcerpt(t *testing.T) {
	root := t.TempDir()
	src := strings.Repeat("// preamble\n", 30) +
		"switch (e.GetEventType())\n{\n" +
		"    case SMART_EVENT_UPDATE_IC:\n        ProcessTimedAction(...);\n        break;\n" +
		"    case SMART_EVENT_AGGRO:\n        break;\n}\n"
	writeSmartScriptCPP(t, root, src)

	svc := &Service{Log: zap.NewNop(), Config: &config.Config{
		Data: config.DataConfig{SourceDir: root},
	}}

	event := int64(0)
	out, err := svc.SAISourceExcerpt(&event, nil, nil)
	require.NoError(t, err)
	exc := out.(*SourceExcerpts)
	assert.Contains(t, exc.EventSource, "case SMART_EVENT_UPDATE_IC:")
	assert.Contains(t, exc.EventSource, "ProcessTimedAction")
	assert.Empty(t, exc.ActionSource)

	missing := int64(2)
	out, err = svc.SAISourceExcerpt(&missing, nil, nil)
	require.NoError(t, err)
	exc = out.(*SourceExcerpts)
	assert.Equal(t, "Event type 2 not found in SmartScript.cpp", exc.EventSource)

	_, err = svc.SAISourceExcerpt(nil, nil, nil)
	assert.EqualError(t, err, "specify at least one of: event_type, action_type or target_type")
}

func TestCaseBlockWindows(t *testing.T) {
	pad := strings.Repeat("x", 300)
	src := pad + "case SMART_ACTION_TALK:" + strings.Repeat("y", 2000)

	got := caseBlock(src, sai.ActionDoc(1), "SMART_ACTION_", 200, 1500, "miss")
	assert.True(t, strings.HasPrefix(got, strings.Repeat("x", 200)+"case"), "should keep 200 bytes of context")
	assert.Len(t, got, 200+len("case SMART_ACTION_TALK")+1500)
}

func TestCaseBlockFallbackPrefix(t *testing.T) {
	src := "case SMART_TARGET_SELF:\n    break;\n"

	// An undocumented id still lands in the right switch via the family
	// prefix.
	got := caseBlock(src, nil, "SMART_TARGET_", 10, 20, "miss")
	assert.Contains(t, got, "case SMART_TARGET_SELF:")

	assert.Equal(t, "miss", caseBlock("nothing here", nil, "SMART_TARGET_", 10, 20, "miss"))
}
