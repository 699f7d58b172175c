package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/vfg2006/elt-dashboard-api/infrastructure/database"
	"github.com/vfg2006/elt-dashboard-api/internal/domain"
)

type InsightRepository interface {
	Save(ctx context.Context, snapshot *domain.InsightSnapshot) (int64, error)
	Latest(ctx context.Context) (*domain.InsightSnapshot, error)
	UpdateLatest(ctx context.Context, snapshot *domain.InsightSnapshot) (int64, error)
}

type insightRepository struct {
	conn database.Conn
}

func NewInsightRepository(conn database.Conn) InsightRepository {
	return &insightRepository{
		conn: conn,
	}
}

// Save always appends a new snapshot; older snapshots are kept as history.
func (r *insightRepository) Save(ctx context.Context, snapshot *domain.InsightSnapshot) (int64, error) {
	qoqData, err := encodeNullable(snapshot.QoQData, len(snapshot.QoQData) > 0)
	if err != nil {
		return 0, storageError("encode insight comparisons", err)
	}

	currentQuarter, err := encodeNullable(snapshot.CurrentQuarter, snapshot.CurrentQuarter != nil)
	if err != nil {
		return 0, storageError("encode insight quarter", err)
	}

	now := time.Now().UTC()
	sqlQuery, args, err := r.conn.Builder().
		Insert(database.TableInsights).
		Columns("insights_text", "qoq_data", "current_quarter", "created_at", "updated_at").
		Values(snapshot.InsightsText, qoqData, currentQuarter, now, now).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, storageError("save insight", err)
	}

	var id int64
	if err := r.conn.QueryRowContext(ctx, sqlQuery, args...).Scan(&id); err != nil {
		return 0, storageError("save insight", err)
	}

	snapshot.ID = id
	snapshot.CreatedAt = now
	snapshot.UpdatedAt = now

	return id, nil
}

func (r *insightRepository) Latest(ctx context.Context) (*domain.InsightSnapshot, error) {
	sqlQuery, args, err := r.conn.Builder().
		Select("id", "insights_text", "qoq_data", "current_quarter", "created_at", "updated_at").
		From(database.TableInsights).
		OrderBy("created_at DESC", "id DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, storageError("latest insight", err)
	}

	var (
		snapshot       domain.InsightSnapshot
		qoqData        sql.NullString
		currentQuarter sql.NullString
		createdAt      database.Timestamp
		updatedAt      database.Timestamp
	)

	err = r.conn.QueryRowContext(ctx, sqlQuery, args...).Scan(
		&snapshot.ID,
		&snapshot.InsightsText,
		&qoqData,
		&currentQuarter,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, storageError("latest insight", err)
	}

	if qoqData.Valid && qoqData.String != "" {
		if err := json.Unmarshal([]byte(qoqData.String), &snapshot.QoQData); err != nil {
			return nil, storageError("decode insight comparisons", err)
		}
	}

	if currentQuarter.Valid && currentQuarter.String != "" {
		var period domain.Period
		if err := json.Unmarshal([]byte(currentQuarter.String), &period); err != nil {
			return nil, storageError("decode insight quarter", err)
		}
		snapshot.CurrentQuarter = &period
	}

	snapshot.CreatedAt = createdAt.Time
	snapshot.UpdatedAt = updatedAt.Time

	return &snapshot, nil
}

// UpdateLatest overwrites the most recent snapshot in place. With no snapshot stored
// yet it behaves like Save.
func (r *insightRepository) UpdateLatest(ctx context.Context, snapshot *domain.InsightSnapshot) (int64, error) {
	qoqData, err := encodeNullable(snapshot.QoQData, len(snapshot.QoQData) > 0)
	if err != nil {
		return 0, storageError("encode insight comparisons", err)
	}

	currentQuarter, err := encodeNullable(snapshot.CurrentQuarter, snapshot.CurrentQuarter != nil)
	if err != nil {
		return 0, storageError("encode insight quarter", err)
	}

	now := time.Now().UTC()
	sqlQuery, args, err := r.conn.Builder().
		Update(database.TableInsights).
		Set("insights_text", snapshot.InsightsText).
		Set("qoq_data", qoqData).
		Set("current_quarter", currentQuarter).
		Set("updated_at", now).
		Where("id = (SELECT id FROM " + database.TableInsights + " ORDER BY created_at DESC, id DESC LIMIT 1)").
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, storageError("update latest insight", err)
	}

	var id int64
	err = r.conn.QueryRowContext(ctx, sqlQuery, args...).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return r.Save(ctx, snapshot)
	}
	if err != nil {
		return 0, storageError("update latest insight", err)
	}

	snapshot.ID = id
	snapshot.UpdatedAt = now

	return id, nil
}

func encodeNullable(v any, present bool) (sql.NullString, error) {
	if !present {
		return sql.NullString{}, nil
	}

	payload, err := json.Marshal(v)
	if err != nil {
		return sql.NullString{}, err
	}
	return sql.NullString{String: string(payload), Valid: true}, nil
}
