package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/elt-dashboard-api/internal/domain"
)

const (
	TableFiles           = "files"
	TableQuarterlyData   = "quarterly_data"
	TableDashboardConfig = "dashboard_config"
	TableInsights        = "insights"
)

type column struct {
	name       string
	postgres   string
	sqlite     string
	backfilled bool
}

// Columns added after the first release. Migrations only ever add nullable columns.
var additiveColumns = map[string][]column{
	TableQuarterlyData: {
		{name: "description", postgres: "TEXT", sqlite: "TEXT"},
		{name: "target_value", postgres: "DOUBLE PRECISION", sqlite: "REAL"},
		{name: "status", postgres: "TEXT", sqlite: "TEXT"},
		{name: "metric_key", postgres: "TEXT", sqlite: "TEXT", backfilled: true},
	},
}

func baseSchema(d Dialect) []string {
	id, ts, float := "INTEGER PRIMARY KEY AUTOINCREMENT", "DATETIME", "REAL"
	if d == Postgres {
		id, ts, float = "BIGSERIAL PRIMARY KEY", "TIMESTAMPTZ", "DOUBLE PRECISION"
	}

	return []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			id %s,
			filename TEXT NOT NULL,
			original_name TEXT NOT NULL,
			file_type TEXT NOT NULL,
			upload_date %s NOT NULL,
			file_size BIGINT NOT NULL DEFAULT 0,
			status TEXT NOT NULL DEFAULT 'uploaded'
		)`, TableFiles, id, ts),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			id %s,
			file_id BIGINT,
			quarter TEXT NOT NULL,
			year INTEGER NOT NULL,
			metric_name TEXT NOT NULL,
			metric_value %s NOT NULL,
			metric_unit TEXT,
			category TEXT,
			created_at %s NOT NULL
		)`, TableQuarterlyData, id, float, ts),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			id %s,
			config_name TEXT NOT NULL UNIQUE,
			config_data TEXT NOT NULL,
			created_at %s NOT NULL,
			updated_at %s NOT NULL
		)`, TableDashboardConfig, id, ts, ts),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			id %s,
			insights_text TEXT NOT NULL,
			qoq_data TEXT,
			current_quarter TEXT,
			created_at %s NOT NULL,
			updated_at %s NOT NULL
		)`, TableInsights, id, ts, ts),
	}
}

var indexes = []string{
	"CREATE INDEX IF NOT EXISTS idx_quarterly_data_period ON quarterly_data (year, quarter)",
	"CREATE INDEX IF NOT EXISTS idx_quarterly_data_file_id ON quarterly_data (file_id)",
	"CREATE INDEX IF NOT EXISTS idx_quarterly_data_metric_key ON quarterly_data (metric_key)",
}

// Migrate creates missing tables, adds missing columns and backfills derived values.
// It is safe to run on every start.
func Migrate(ctx context.Context, conn Conn) error {
	for _, stmt := range baseSchema(conn.Dialect()) {
		if _, err := conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("database: creating schema: %w", err)
		}
	}

	for table, columns := range additiveColumns {
		for _, col := range columns {
			added, err := addColumnIfMissing(ctx, conn, table, col)
			if err != nil {
				return err
			}
			if added {
				logrus.WithFields(logrus.Fields{
					"table":  table,
					"column": col.name,
				}).Info("database: column added")
			}
		}
	}

	for _, stmt := range indexes {
		if _, err := conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("database: creating index: %w", err)
		}
	}

	updated, err := backfillMetricKeys(ctx, conn)
	if err != nil {
		return err
	}
	if updated > 0 {
		logrus.WithField("rows", updated).Info("database: metric keys backfilled")
	}

	return nil
}

func addColumnIfMissing(ctx context.Context, conn Conn, table string, col column) (bool, error) {
	exists, err := columnExists(ctx, conn, table, col.name)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	colType := col.sqlite
	if conn.Dialect() == Postgres {
		colType = col.postgres
	}

	stmt := fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", table, col.name, colType)
	if _, err := conn.ExecContext(ctx, stmt); err != nil {
		return false, fmt.Errorf("database: adding column %s.%s: %w", table, col.name, err)
	}
	return true, nil
}

func columnExists(ctx context.Context, conn Conn, table, name string) (bool, error) {
	if conn.Dialect() == Postgres {
		var count int
		query, args, err := conn.Builder().
			Select("COUNT(*)").
			From("information_schema.columns").
			Where("table_name = ? AND column_name = ?", table, name).
			ToSql()
		if err != nil {
			return false, err
		}
		if err := conn.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
			return false, fmt.Errorf("database: inspecting %s: %w", table, err)
		}
		return count > 0, nil
	}

	rows, err := conn.QueryContext(ctx, fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return false, fmt.Errorf("database: inspecting %s: %w", table, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			cid       int
			colName   string
			colType   string
			notNull   int
			dfltValue sql.NullString
			pk        int
		)
		if err := rows.Scan(&cid, &colName, &colType, &notNull, &dfltValue, &pk); err != nil {
			return false, err
		}
		if colName == name {
			return true, nil
		}
	}
	return false, rows.Err()
}

// backfillMetricKeys fills metric_key for rows written before the column existed.
func backfillMetricKeys(ctx context.Context, conn Conn) (int, error) {
	query, args, err := conn.Builder().
		Select("id", "metric_name").
		From(TableQuarterlyData).
		Where("metric_key IS NULL").
		ToSql()
	if err != nil {
		return 0, err
	}

	rows, err := conn.QueryContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("database: reading rows to backfill: %w", err)
	}

	pending := make(map[int64]string)
	for rows.Next() {
		var (
			id   int64
			name string
		)
		if err := rows.Scan(&id, &name); err != nil {
			rows.Close()
			return 0, err
		}
		pending[id] = name
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return 0, err
	}

	if len(pending) == 0 {
		return 0, nil
	}

	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for id, name := range pending {
			stmt, args, err := conn.Builder().
				Update(TableQuarterlyData).
				Set("metric_key", domain.MetricKey(name)).
				Where("id = ?", id).
				ToSql()
			if err != nil {
				return err
			}
			if _, err := tx.ExecContext(ctx, stmt, args...); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("database: backfilling metric keys: %w", err)
	}

	return len(pending), nil
}
