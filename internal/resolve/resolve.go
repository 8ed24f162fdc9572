// Package resolve memoizes entity name lookups over the SQL store and the
// spell table. Every method is total: a miss, a query error or a missing
// collaborator falls back to a stable placeholder, so comment synthesis
// and tool formatting never stall on one bad id.
package resolve

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"github.com/azerothmcp/server/internal/dbc"
	"github.com/azerothmcp/server/internal/sai"
	"github.com/dgraph-io/ristretto/v2"
	"go.uber.org/zap"
)

// Names is the slice of the store the resolver needs. A nil Names is
// valid and resolves everything to placeholders.
type Names interface {
	CreatureName(ctx context.Context, entry int64) (string, bool, error)
	CreatureNameByGUID(ctx context.Context, guid int64) (string, bool, error)
	GameObjectName(ctx context.Context, entry int64) (string, bool, error)
	GameObjectNameByGUID(ctx context.Context, guid int64) (string, bool, error)
	QuestTitle(ctx context.Context, id int64) (string, bool, error)
	ItemName(ctx context.Context, entry int64) (string, bool, error)
}

// Resolver caches resolved names in a bounded ristretto cache. Misses are
// cached under their placeholder; errors are not, so a recovering database
// starts answering again without a restart.
type Resolver struct {
	names  Names
	spells *dbc.SpellTable // nil when no Spell.dbc is loaded
	cache  *ristretto.Cache[string, string]
	log    *zap.Logger
}

// New builds a resolver. cacheEntries bounds the name cache; <= 0 selects
// the same default the spell view cache uses.
func New(names Names, spells *dbc.SpellTable, cacheEntries int64, log *zap.Logger) (*Resolver, error) {
	if cacheEntries <= 0 {
		cacheEntries = dbc.DefaultCacheEntries
	}
	cache, err := ristretto.NewCache[string, string](&ristretto.Config[string, string]{
		NumCounters: cacheEntries * 10,
		MaxCost:     cacheEntries,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("name cache: %w", err)
	}
	return &Resolver{names: names, spells: spells, cache: cache, log: log}, nil
}

// SpellName resolves a spell id against the loaded Spell.dbc. Id 0 is the
// empty string by convention; the comment vocabulary writes aura and cast
// lines without a name in that case.
func (r *Resolver) SpellName(ctx context.Context, id int64) string {
	if id == 0 {
		return ""
	}
	if r.spells != nil && id > 0 && id <= math.MaxUint32 {
		if v := r.spells.View(uint32(id)); v != nil {
			return v.Name
		}
	}
	return fmt.Sprintf("Spell %d", id)
}

func (r *Resolver) QuestTitle(ctx context.Context, id int64) string {
	fallback := fmt.Sprintf("Quest %d", id)
	if id == 0 {
		return fallback
	}
	return r.cached(ctx, "quest", id, fallback, Names.QuestTitle)
}

func (r *Resolver) CreatureName(ctx context.Context, entry int64) string {
	fallback := fmt.Sprintf("Creature %d", entry)
	if entry == 0 {
		return fallback
	}
	return r.cached(ctx, "creature", entry, fallback, Names.CreatureName)
}

func (r *Resolver) CreatureNameByGUID(ctx context.Context, guid int64) string {
	fallback := fmt.Sprintf("Creature GUID %d", guid)
	if guid == 0 {
		return fallback
	}
	return r.cached(ctx, "creature_guid", guid, fallback, Names.CreatureNameByGUID)
}

func (r *Resolver) GameObjectName(ctx context.Context, entry int64) string {
	fallback := fmt.Sprintf("Gameobject %d", entry)
	if entry == 0 {
		return fallback
	}
	return r.cached(ctx, "gameobject", entry, fallback, Names.GameObjectName)
}

func (r *Resolver) GameObjectNameByGUID(ctx context.Context, guid int64) string {
	fallback := fmt.Sprintf("Gameobject GUID %d", guid)
	if guid == 0 {
		return fallback
	}
	return r.cached(ctx, "gameobject_guid", guid, fallback, Names.GameObjectNameByGUID)
}

func (r *Resolver) ItemName(ctx context.Context, entry int64) string {
	fallback := fmt.Sprintf("Item %d", entry)
	if entry == 0 {
		return fallback
	}
	return r.cached(ctx, "item", entry, fallback, Names.ItemName)
}

// EntityName names the entity that owns a script block the way the script
// tools title their responses. Negative ids are GUID-keyed scripts; the
// template lookup still goes by the absolute value.
func (r *Resolver) EntityName(ctx context.Context, entryOrGUID, sourceType int64) string {
	name := fmt.Sprintf("Entity %d", entryOrGUID)
	if r.names == nil {
		return name
	}
	entry := entryOrGUID
	if entry < 0 {
		entry = -entry
	}
	switch sourceType {
	case sai.SourceCreature:
		if n, ok, err := r.names.CreatureName(ctx, entry); err == nil && ok {
			return n
		}
	case sai.SourceGameObject:
		if n, ok, err := r.names.GameObjectName(ctx, entry); err == nil && ok {
			return n
		}
	}
	return name
}

func (r *Resolver) cached(ctx context.Context, kind string, id int64, fallback string,
	fetch func(Names, context.Context, int64) (string, bool, error)) string {
	key := kind + ":" + strconv.FormatInt(id, 10)
	if v, ok := r.cache.Get(key); ok {
		return v
	}
	if r.names == nil {
		return fallback
	}
	name, ok, err := fetch(r.names, ctx, id)
	if err != nil {
		r.log.Debug("name lookup failed",
			zap.String("kind", kind), zap.Int64("id", id), zap.Error(err))
		return fallback
	}
	if !ok {
		name = fallback
	}
	r.cache.Set(key, name, 1)
	r.cache.Wait()
	return name
}

// Bind fixes the context for one batch, adapting the resolver to the
// comment generator's lookup interface.
func (r *Resolver) Bind(ctx context.Context) sai.Lookup {
	return boundLookup{ctx: ctx, r: r}
}

type boundLookup struct {
	ctx context.Context
	r   *Resolver
}

func (b boundLookup) SpellName(id int64) string  { return b.r.SpellName(b.ctx, id) }
func (b boundLookup) QuestTitle(id int64) string { return b.r.QuestTitle(b.ctx, id) }
func (b boundLookup) CreatureName(entry int64) string {
	return b.r.CreatureName(b.ctx, entry)
}
func (b boundLookup) CreatureNameByGUID(guid int64) string {
	return b.r.CreatureNameByGUID(b.ctx, guid)
}
func (b boundLookup) GameObjectName(entry int64) string {
	return b.r.GameObjectName(b.ctx, entry)
}
func (b boundLookup) GameObjectNameByGUID(guid int64) string {
	return b.r.GameObjectNameByGUID(b.ctx, guid)
}
func (b boundLookup) ItemName(entry int64) string { return b.r.ItemName(b.ctx, entry) }
