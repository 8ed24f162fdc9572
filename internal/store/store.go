// Package store provides read access to the three AzerothCore MySQL
// databases (world, characters, auth). The tool surface is read-only by
// policy; write statements are refused unless the config opts out.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/azerothmcp/server/internal/config"
	_ "github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
)

// ErrReadOnly rejects statements that could write while the store runs in
// read-only mode.
var ErrReadOnly = errors.New("only SELECT, SHOW, DESCRIBE and EXPLAIN statements are allowed in read-only mode")

// ErrUnknownDatabase rejects database names outside world/characters/auth.
var ErrUnknownDatabase = errors.New("unknown database")

// Store owns one connection pool per configured database. Handles for
// databases without a DSN stay nil and queries against them fail cleanly.
type Store struct {
	World      *sql.DB
	Characters *sql.DB
	Auth       *sql.DB

	readOnly bool
	log      *zap.Logger
}

// Open connects to every database with a configured DSN and verifies each
// with a short ping.
func Open(ctx context.Context, cfg config.DatabaseConfig, log *zap.Logger) (*Store, error) {
	s := &Store{readOnly: cfg.ReadOnly, log: log}
	for _, d := range []struct {
		name string
		dsn  string
		dst  **sql.DB
	}{
		{"world", cfg.WorldDSN, &s.World},
		{"characters", cfg.CharactersDSN, &s.Characters},
		{"auth", cfg.AuthDSN, &s.Auth},
	} {
		if d.dsn == "" {
			continue
		}
		db, err := open(ctx, d.dsn, cfg)
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("%s: %w", d.name, err)
		}
		*d.dst = db
		log.Info("database connected", zap.String("database", d.name))
	}
	return s, nil
}

func open(ctx context.Context, dsn string, cfg config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	// Verify connection
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}
	return db, nil
}

// Close closes whichever pools were opened.
func (s *Store) Close() {
	for _, db := range []*sql.DB{s.World, s.Characters, s.Auth} {
		if db != nil {
			db.Close()
		}
	}
}

// DB maps a database name from the tool surface to its pool.
func (s *Store) DB(name string) (*sql.DB, error) {
	var db *sql.DB
	switch name {
	case "world":
		db = s.World
	case "characters":
		db = s.Characters
	case "auth":
		db = s.Auth
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDatabase, name)
	}
	if db == nil {
		return nil, fmt.Errorf("database %q has no configured dsn", name)
	}
	return db, nil
}

// Query runs a statement against the named database and returns rows as
// column-name maps, byte columns decoded to strings. Read statements run
// through the query path; anything else needs read-only mode off and
// reports affected_rows and last_insert_id the way the tool surface
// documents writes.
func (s *Store) Query(ctx context.Context, database, query string, args ...any) ([]map[string]any, error) {
	read := isReadStatement(query)
	if !read && s.readOnly {
		return nil, ErrReadOnly
	}
	db, err := s.DB(database)
	if err != nil {
		return nil, err
	}
	if !read {
		res, err := db.ExecContext(ctx, query, args...)
		if err != nil {
			return nil, fmt.Errorf("exec %s: %w", database, err)
		}
		affected, _ := res.RowsAffected()
		lastID, _ := res.LastInsertId()
		return []map[string]any{{"affected_rows": affected, "last_insert_id": lastID}}, nil
	}
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", database, err)
	}
	defer rows.Close()
	return collectRows(rows)
}

func collectRows(rows *sql.Rows) ([]map[string]any, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	var out []map[string]any
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		m := make(map[string]any, len(cols))
		for i, c := range cols {
			m[c] = normalizeValue(vals[i])
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// normalizeValue turns driver byte slices into strings so row maps marshal
// as text rather than base64.
func normalizeValue(v any) any {
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return v
}

// readStatements are the leading keywords permitted in read-only mode.
var readStatements = map[string]bool{
	"SELECT":   true,
	"SHOW":     true,
	"DESCRIBE": true,
	"DESC":     true,
	"EXPLAIN":  true,
}

// isReadStatement reports whether the first keyword after leading
// whitespace and comments is a read. The driver refuses multi-statement
// strings, so inspecting the first keyword covers the whole query.
func isReadStatement(query string) bool {
	rest := strings.TrimSpace(query)
	for {
		if strings.HasPrefix(rest, "--") || strings.HasPrefix(rest, "#") {
			i := strings.IndexByte(rest, '\n')
			if i < 0 {
				return false
			}
			rest = strings.TrimSpace(rest[i+1:])
			continue
		}
		if strings.HasPrefix(rest, "/*") {
			i := strings.Index(rest, "*/")
			if i < 0 {
				return false
			}
			rest = strings.TrimSpace(rest[i+2:])
			continue
		}
		break
	}
	kw := rest
	if i := strings.IndexAny(kw, " \t\r\n(;"); i >= 0 {
		kw = kw[:i]
	}
	return readStatements[strings.ToUpper(kw)]
}
