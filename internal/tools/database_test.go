package tools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestTableSchemaRejectsBadName(t *testing.T) {
	svc := &Service{Log: zap.NewNop()}
	_, err := svc.TableSchema(context.Background(), "world", "creature; DROP TABLE x")
	assert.EqualError(t, err, `invalid table name "creature; DROP TABLE x"`)
}

func TestListTablesRejectsBadPattern(t *testing.T) {
	svc := &Service{Log: zap.NewNop()}
	_, err := svc.ListTables(context.Background(), "world", "smart%' OR '1'='1")
	assert.EqualError(t, err, `invalid table pattern "smart%' OR '1'='1"`)
}

func TestQueryDatabaseUnconfigured(t *testing.T) {
	svc := &Service{Log: zap.NewNop()}
	_, err := svc.QueryDatabase(context.Background(), "world", "SELECT 1")
	assert.EqualError(t, err, "world database not connected")
}

func TestDescribeTarget(t *testing.T) {
	cases := []struct {
		query string
		want  string
	}{
		{"SELECT guid FROM creature WHERE id1 = 299", "the creature schema"},
		{"select * from `smart_scripts` limit 5", "the smart_scripts schema"},
		{"SHOW STATUS", "the table schema"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, describeTarget(tc.query))
	}
}
