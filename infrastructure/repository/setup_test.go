package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vfg2006/elt-dashboard-api/infrastructure/database"
	"github.com/vfg2006/elt-dashboard-api/internal/config"
	"github.com/vfg2006/elt-dashboard-api/internal/domain"
)

func newTestConn(t *testing.T) *database.Connection {
	t.Helper()

	ctx := context.Background()
	conn, err := database.NewConnection(ctx, config.Database{Driver: config.DriverSQLite, DSN: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	require.NoError(t, database.Migrate(ctx, conn))
	return conn
}

func strPtr(s string) *string { return &s }

func floatPtrOf(f float64) *float64 { return &f }

func metric(q domain.Quarter, year int, name string, value float64) *domain.MetricRecord {
	return &domain.MetricRecord{
		Quarter:     q,
		Year:        year,
		MetricName:  name,
		MetricValue: value,
	}
}
