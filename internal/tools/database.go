package tools

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/azerothmcp/server/internal/store"
)

// maxQueryRows bounds what one passthrough query returns.
const maxQueryRows = 100

var (
	fromTable   = regexp.MustCompile("(?i)FROM\\s+`?(\\w+)`?")
	safeName    = regexp.MustCompile(`^[A-Za-z0-9_]+$`)
	safePattern = regexp.MustCompile(`^[A-Za-z0-9_%]+$`)
)

// TruncatedRows is a query result cut down to the row cap.
type TruncatedRows struct {
	Warning    string           `json:"warning"`
	Results    []map[string]any `json:"results"`
	TotalCount int              `json:"total_count"`
}

// QueryDatabase runs one SQL statement against a configured database.
// Past maxQueryRows the result is truncated with a warning. The store's
// read-only policy applies before anything executes.
func (s *Service) QueryDatabase(ctx context.Context, database, query string) (any, error) {
	st, err := s.worldStore()
	if err != nil {
		return nil, err
	}
	rows, err := st.Query(ctx, database, query)
	if err != nil {
		if strings.Contains(err.Error(), "Unknown column") {
			return nil, fmt.Errorf("%w. Column name not found; check %s with the table_schema tool", err, describeTarget(query))
		}
		return nil, err
	}
	if len(rows) == 0 {
		return &Notice{Message: "Query returned no rows"}, nil
	}
	if len(rows) > maxQueryRows {
		return &TruncatedRows{
			Warning:    fmt.Sprintf("Query returned %d rows, showing first %d", len(rows), maxQueryRows),
			Results:    rows[:maxQueryRows],
			TotalCount: len(rows),
		}, nil
	}
	return rows, nil
}

func describeTarget(query string) string {
	if m := fromTable.FindStringSubmatch(query); m != nil {
		return "the " + m[1] + " schema"
	}
	return "the table schema"
}

// TableSchema returns the column definitions of one table.
func (s *Service) TableSchema(ctx context.Context, database, table string) (any, error) {
	if !safeName.MatchString(table) {
		return nil, fmt.Errorf("invalid table name %q", table)
	}
	st, err := s.worldStore()
	if err != nil {
		return nil, err
	}
	return st.Query(ctx, database, "DESCRIBE `"+table+"`")
}

// ListTables lists the tables of one database, optionally filtered with a
// LIKE pattern.
func (s *Service) ListTables(ctx context.Context, database, pattern string) (any, error) {
	query := "SHOW TABLES"
	if pattern != "" {
		if !safePattern.MatchString(pattern) {
			return nil, fmt.Errorf("invalid table pattern %q", pattern)
		}
		query += " LIKE '" + pattern + "'"
	}
	st, err := s.worldStore()
	if err != nil {
		return nil, err
	}
	rows, err := st.Query(ctx, database, query)
	if err != nil {
		return nil, err
	}
	// SHOW TABLES yields one column per row; flatten to plain names.
	names := make([]string, 0, len(rows))
	for _, row := range rows {
		for _, v := range row {
			names = append(names, store.Text(v))
		}
	}
	return names, nil
}
