package tools

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRunPassesValueThrough(t *testing.T) {
	svc := &Service{Log: zap.NewNop()}
	want := &Notice{Message: "nothing here"}

	out := svc.Run("available_tiles", func() (any, error) { return want, nil })
	assert.Same(t, want, out)
}

func TestRunConvertsErrorToFailure(t *testing.T) {
	svc := &Service{Log: zap.NewNop()}

	out := svc.Run("get_spell", func() (any, error) {
		return nil, errors.New("Spell 999 not found in Spell.dbc")
	})
	f, ok := out.(*Failure)
	require.True(t, ok, "expected *Failure, got %T", out)

	assert.Equal(t, "get_spell", f.Tool)
	assert.EqualError(t, f, "Spell 999 not found in Spell.dbc")
	_, err := uuid.Parse(f.CallID)
	assert.NoError(t, err, "call id should be a uuid")

	data, err := json.Marshal(f)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"tool": "get_spell",
		"call_id": "`+f.CallID+`",
		"error": "Spell 999 not found in Spell.dbc"
	}`, string(data))
}

func TestRunMintsFreshCallIDs(t *testing.T) {
	svc := &Service{Log: zap.NewNop()}
	fail := func() (any, error) { return nil, errors.New("boom") }

	a := svc.Run("x", fail).(*Failure)
	b := svc.Run("x", fail).(*Failure)
	assert.NotEqual(t, a.CallID, b.CallID)
}

// A bad id in the middle of a batch must produce a Failure value for that
// call only; the surrounding calls keep their results.
func TestRunBatchIsolation(t *testing.T) {
	svc := testSpellService(t)

	ids := []uint32{17, 999, 20243}
	out := make([]any, len(ids))
	for i, id := range ids {
		id := id
		out[i] = svc.Run("get_spell", func() (any, error) { return svc.GetSpell(id) })
	}

	first, ok := out[0].(*SpellDetail)
	require.True(t, ok, "first call should succeed, got %T", out[0])
	assert.Equal(t, "Power Word: Shield", first.Name)

	fail, ok := out[1].(*Failure)
	require.True(t, ok, "second call should fail, got %T", out[1])
	assert.EqualError(t, fail, "Spell 999 not found in Spell.dbc")

	third, ok := out[2].(*SpellDetail)
	require.True(t, ok, "third call should succeed, got %T", out[2])
	assert.Equal(t, "Devastate", third.Name)
}

func TestUnconfiguredSubsystems(t *testing.T) {
	svc := &Service{Log: zap.NewNop()}
	ctx := context.Background()

	_, err := svc.GetSpell(17)
	assert.EqualError(t, err, "Spell.dbc not loaded")

	_, err = svc.HeightAt(0, 100, 100)
	assert.EqualError(t, err, "map data directory not configured")

	_, err = svc.GetSpellProc(ctx, 51124)
	assert.EqualError(t, err, "world database not connected")

	_, err = svc.SmartAIScript(ctx, 1234, 0, false)
	assert.EqualError(t, err, "world database not connected")

	_, err = svc.GetConditions(ctx, 15, 1234, nil, nil)
	assert.EqualError(t, err, "world database not connected")
}

func TestHexMask(t *testing.T) {
	assert.Equal(t, "0x0", hexMask(0))
	assert.Equal(t, "0x14", hexMask(20))
	assert.Equal(t, "0x6c8", hexMask(0x6c8))
	assert.Equal(t, "-0x1", hexMask(-1))
}
