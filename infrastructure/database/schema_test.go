package database

import (
	"context"
	"testing"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/elt-dashboard-api/internal/config"
)

func newMemoryConnection(t *testing.T) *Connection {
	t.Helper()

	conn, err := NewConnection(context.Background(), config.Database{Driver: config.DriverSQLite, DSN: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return conn
}

func TestMigrate_Idempotent(t *testing.T) {
	ctx := context.Background()
	conn := newMemoryConnection(t)

	require.NoError(t, Migrate(ctx, conn))
	require.NoError(t, Migrate(ctx, conn))

	for _, name := range []string{"description", "target_value", "status", "metric_key"} {
		exists, err := columnExists(ctx, conn, TableQuarterlyData, name)
		require.NoError(t, err)
		assert.True(t, exists, name)
	}
}

func TestMigrate_AddsColumnsToLegacyTable(t *testing.T) {
	ctx := context.Background()
	conn := newMemoryConnection(t)

	_, err := conn.ExecContext(ctx, `CREATE TABLE quarterly_data (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		file_id BIGINT,
		quarter TEXT NOT NULL,
		year INTEGER NOT NULL,
		metric_name TEXT NOT NULL,
		metric_value REAL NOT NULL,
		metric_unit TEXT,
		category TEXT,
		created_at DATETIME NOT NULL
	)`)
	require.NoError(t, err)

	_, err = conn.ExecContext(ctx,
		"INSERT INTO quarterly_data (quarter, year, metric_name, metric_value, created_at) VALUES (?, ?, ?, ?, ?)",
		"Q1", 2024, "Total ARR", 6520000.0, time.Now().UTC())
	require.NoError(t, err)

	require.NoError(t, Migrate(ctx, conn))

	var key string
	require.NoError(t, conn.QueryRowContext(ctx, "SELECT metric_key FROM quarterly_data WHERE id = 1").Scan(&key))
	assert.Equal(t, "totalarr", key)
}

func TestParseDialect(t *testing.T) {
	d, err := ParseDialect("postgres")
	require.NoError(t, err)
	assert.Equal(t, Postgres, d)

	_, err = ParseDialect("oracle")
	assert.Error(t, err)

	sqlQuery, _, err := squirrel.StatementBuilder.PlaceholderFormat(SQLite.Placeholder()).Select("id").From("files").Where("id = ?", 1).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM files WHERE id = ?", sqlQuery)

	sqlQuery, _, err = squirrel.StatementBuilder.PlaceholderFormat(Postgres.Placeholder()).Select("id").From("files").Where("id = ?", 1).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM files WHERE id = $1", sqlQuery)
}

func TestTimestamp_Scan(t *testing.T) {
	var ts Timestamp

	require.NoError(t, ts.Scan("2024-03-01 10:20:30.5+00:00"))
	assert.True(t, ts.Valid)
	assert.Equal(t, 2024, ts.Time.Year())

	require.NoError(t, ts.Scan([]byte("2024-03-01T10:20:30Z")))
	assert.Equal(t, time.March, ts.Time.Month())

	require.NoError(t, ts.Scan(nil))
	assert.False(t, ts.Valid)

	assert.Error(t, ts.Scan("yesterday"))
}
