// Package tools implements the tool-call surface over the decoded game
// data: Spell.dbc lookups, terrain height queries, smart_scripts
// inspection with synthesized comments, and the proc and condition
// reference tables. Handlers return typed results and plain errors; the
// Run wrapper turns an error into a serializable Failure value, so one
// bad id or unreadable file degrades a single call instead of aborting a
// batch.
package tools

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/azerothmcp/server/internal/config"
	"github.com/azerothmcp/server/internal/dbc"
	"github.com/azerothmcp/server/internal/resolve"
	"github.com/azerothmcp/server/internal/store"
	"github.com/azerothmcp/server/internal/terrain"
)

// Service holds the shared dependencies injected into all tool handlers.
// Fields whose data source is not configured stay nil; handlers turn that
// into an error instead of panicking.
type Service struct {
	Config  *config.Config
	Log     *zap.Logger
	Spells  *dbc.SpellTable
	Maps    *terrain.Table
	MapIdx  *terrain.Index
	Store   *store.Store
	Resolve *resolve.Resolver
}

// Failure is the serialized form of a failed tool call.
type Failure struct {
	Tool    string `json:"tool"`
	CallID  string `json:"call_id"`
	Message string `json:"error"`
}

func (f *Failure) Error() string { return f.Message }

// Run executes one tool call under a fresh call id and converts an error
// result into a *Failure.
func (s *Service) Run(tool string, fn func() (any, error)) any {
	id := uuid.New().String()
	start := time.Now()
	out, err := fn()
	if err != nil {
		s.Log.Warn("tool call failed",
			zap.String("tool", tool),
			zap.String("call_id", id),
			zap.Error(err))
		return &Failure{Tool: tool, CallID: id, Message: err.Error()}
	}
	s.Log.Debug("tool call",
		zap.String("tool", tool),
		zap.String("call_id", id),
		zap.Duration("took", time.Since(start)))
	return out
}

// Notice reports a clean miss: the lookup ran but found nothing. Hint, when
// set, tells the caller where to look next.
type Notice struct {
	Message string `json:"message"`
	Hint    string `json:"hint,omitempty"`
}

func (s *Service) spellTable() (*dbc.SpellTable, error) {
	if s.Spells == nil {
		return nil, errors.New("Spell.dbc not loaded")
	}
	return s.Spells, nil
}

func (s *Service) mapTable() (*terrain.Table, error) {
	if s.Maps == nil {
		return nil, errors.New("map data directory not configured")
	}
	return s.Maps, nil
}

func (s *Service) worldStore() (*store.Store, error) {
	if s.Store == nil {
		return nil, errors.New("world database not connected")
	}
	return s.Store, nil
}

// hexMask renders a bitmask column the way the game's SQL dumps and C++
// sources write it, sign kept for negative values.
func hexMask(v int64) string { return fmt.Sprintf("%#x", v) }
