package resolve

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeNames answers from canned maps and counts store round trips. With
// fail set, every lookup reports a connection error.
type fakeNames struct {
	creatures   map[int64]string
	gameobjects map[int64]string
	quests      map[int64]string
	items       map[int64]string
	calls       int
	fail        bool
}

func (f *fakeNames) lookup(m map[int64]string, id int64) (string, bool, error) {
	f.calls++
	if f.fail {
		return "", false, errors.New("connection refused")
	}
	n, ok := m[id]
	return n, ok, nil
}

func (f *fakeNames) CreatureName(_ context.Context, entry int64) (string, bool, error) {
	return f.lookup(f.creatures, entry)
}

func (f *fakeNames) CreatureNameByGUID(_ context.Context, guid int64) (string, bool, error) {
	return f.lookup(nil, guid)
}

func (f *fakeNames) GameObjectName(_ context.Context, entry int64) (string, bool, error) {
	return f.lookup(f.gameobjects, entry)
}

func (f *fakeNames) GameObjectNameByGUID(_ context.Context, guid int64) (string, bool, error) {
	return f.lookup(nil, guid)
}

func (f *fakeNames) QuestTitle(_ context.Context, id int64) (string, bool, error) {
	return f.lookup(f.quests, id)
}

func (f *fakeNames) ItemName(_ context.Context, entry int64) (string, bool, error) {
	return f.lookup(f.items, entry)
}

func newResolver(t *testing.T, names Names) *Resolver {
	t.Helper()
	r, err := New(names, nil, 0, zap.NewNop())
	require.NoError(t, err)
	return r
}

func TestPlaceholdersWhenStoreErrors(t *testing.T) {
	ctx := context.Background()
	r := newResolver(t, &fakeNames{fail: true})

	assert.Equal(t, "Creature 6", r.CreatureName(ctx, 6))
	assert.Equal(t, "Creature GUID 55", r.CreatureNameByGUID(ctx, 55))
	assert.Equal(t, "Gameobject 3714", r.GameObjectName(ctx, 3714))
	assert.Equal(t, "Gameobject GUID 99", r.GameObjectNameByGUID(ctx, 99))
	assert.Equal(t, "Quest 40", r.QuestTitle(ctx, 40))
	assert.Equal(t, "Item 117", r.ItemName(ctx, 117))
	assert.Equal(t, "Entity 6", r.EntityName(ctx, 6, 0))
}

func TestPlaceholdersWithoutStore(t *testing.T) {
	ctx := context.Background()
	r := newResolver(t, nil)

	assert.Equal(t, "Creature 6", r.CreatureName(ctx, 6))
	assert.Equal(t, "Quest 40", r.QuestTitle(ctx, 40))
	assert.Equal(t, "Entity -1", r.EntityName(ctx, -1, 0))
}

func TestSpellNameWithoutTable(t *testing.T) {
	ctx := context.Background()
	r := newResolver(t, nil)

	assert.Equal(t, "", r.SpellName(ctx, 0))
	assert.Equal(t, "Spell 12544", r.SpellName(ctx, 12544))
	assert.Equal(t, "Spell -3", r.SpellName(ctx, -3))
}

func TestResolveAndMemoize(t *testing.T) {
	ctx := context.Background()
	names := &fakeNames{creatures: map[int64]string{6: "Kobold Vermin"}}
	r := newResolver(t, names)

	assert.Equal(t, "Kobold Vermin", r.CreatureName(ctx, 6))
	assert.Equal(t, 1, names.calls)

	// Second hit comes from the cache even if the store goes away.
	names.fail = true
	assert.Equal(t, "Kobold Vermin", r.CreatureName(ctx, 6))
	assert.Equal(t, 1, names.calls)
}

func TestMissCachedUnderPlaceholder(t *testing.T) {
	ctx := context.Background()
	names := &fakeNames{quests: map[int64]string{}}
	r := newResolver(t, names)

	assert.Equal(t, "Quest 40", r.QuestTitle(ctx, 40))
	assert.Equal(t, "Quest 40", r.QuestTitle(ctx, 40))
	assert.Equal(t, 1, names.calls)
}

func TestErrorsNotCached(t *testing.T) {
	ctx := context.Background()
	names := &fakeNames{fail: true, items: map[int64]string{117: "Tough Jerky"}}
	r := newResolver(t, names)

	assert.Equal(t, "Item 117", r.ItemName(ctx, 117))
	names.fail = false
	assert.Equal(t, "Tough Jerky", r.ItemName(ctx, 117))
	assert.Equal(t, 2, names.calls)
}

func TestZeroIdsSkipStore(t *testing.T) {
	ctx := context.Background()
	names := &fakeNames{}
	r := newResolver(t, names)

	assert.Equal(t, "Creature 0", r.CreatureName(ctx, 0))
	assert.Equal(t, "Quest 0", r.QuestTitle(ctx, 0))
	assert.Equal(t, "Gameobject GUID 0", r.GameObjectNameByGUID(ctx, 0))
	assert.Equal(t, 0, names.calls)
}

func TestEntityName(t *testing.T) {
	ctx := context.Background()
	names := &fakeNames{
		creatures:   map[int64]string{136600: "Training Dummy"},
		gameobjects: map[int64]string{3714: "Alliance Chest"},
	}
	r := newResolver(t, names)

	assert.Equal(t, "Training Dummy", r.EntityName(ctx, 136600, 0))
	assert.Equal(t, "Training Dummy", r.EntityName(ctx, -136600, 0))
	assert.Equal(t, "Alliance Chest", r.EntityName(ctx, 3714, 1))
	assert.Equal(t, "Entity 123", r.EntityName(ctx, 123, 9))
	assert.Equal(t, "Entity 99", r.EntityName(ctx, 99, 0))
}

func TestBind(t *testing.T) {
	ctx := context.Background()
	names := &fakeNames{creatures: map[int64]string{6: "Kobold Vermin"}}
	r := newResolver(t, names)

	look := r.Bind(ctx)
	assert.Equal(t, "Kobold Vermin", look.CreatureName(6))
	assert.Equal(t, "", look.SpellName(0))
	assert.Equal(t, "Quest 40", look.QuestTitle(40))
}
