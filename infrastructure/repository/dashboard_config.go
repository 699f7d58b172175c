package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/elt-dashboard-api/infrastructure/database"
	"github.com/vfg2006/elt-dashboard-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type ConfigRepository interface {
	Upsert(ctx context.Context, name string, data domain.ConfigData) error
	Get(ctx context.Context, name string) (*domain.DashboardConfig, error)
}

type configRepository struct {
	conn database.Conn
}

func NewConfigRepository(conn database.Conn) ConfigRepository {
	return &configRepository{
		conn: conn,
	}
}

// Upsert replaces the stored object for name. Existing data is overwritten, never merged.
func (r *configRepository) Upsert(ctx context.Context, name string, data domain.ConfigData) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return storageError("encode config", err)
	}

	now := time.Now().UTC()
	sqlQuery, args, err := r.conn.Builder().
		Insert(database.TableDashboardConfig).
		Columns("config_name", "config_data", "created_at", "updated_at").
		Values(name, string(payload), now, now).
		Suffix(`ON CONFLICT (config_name) DO UPDATE SET
			config_data = EXCLUDED.config_data,
			updated_at = EXCLUDED.updated_at`).
		ToSql()
	if err != nil {
		return storageError("upsert config", err)
	}

	if _, err := r.conn.ExecContext(ctx, sqlQuery, args...); err != nil {
		return storageError("upsert config", err)
	}

	return nil
}

func (r *configRepository) Get(ctx context.Context, name string) (*domain.DashboardConfig, error) {
	sqlQuery, args, err := r.conn.Builder().
		Select("config_name", "config_data", "created_at", "updated_at").
		From(database.TableDashboardConfig).
		Where(squirrel.Eq{"config_name": name}).
		ToSql()
	if err != nil {
		return nil, storageError("get config", err)
	}

	var (
		cfg       domain.DashboardConfig
		payload   string
		createdAt database.Timestamp
		updatedAt database.Timestamp
	)

	err = r.conn.QueryRowContext(ctx, sqlQuery, args...).Scan(&cfg.Name, &payload, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, storageError("get config", err)
	}

	if err := json.Unmarshal([]byte(payload), &cfg.Data); err != nil {
		return nil, storageError("decode config", err)
	}

	cfg.CreatedAt = createdAt.Time
	cfg.UpdatedAt = updatedAt.Time

	return &cfg, nil
}
