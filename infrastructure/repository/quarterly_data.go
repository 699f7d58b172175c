package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/elt-dashboard-api/infrastructure/database"
	"github.com/vfg2006/elt-dashboard-api/internal/domain"
)

var metricColumns = []string{
	"id",
	"file_id",
	"quarter",
	"year",
	"metric_name",
	"metric_value",
	"metric_unit",
	"category",
	"description",
	"target_value",
	"status",
	"created_at",
}

// Newest period first; within a period and name, the latest upload first.
var metricOrder = []string{
	"year DESC",
	fiscalQuarterOrder + " DESC",
	"metric_name ASC",
	"created_at DESC",
	"id DESC",
}

type MetricRepository interface {
	Insert(ctx context.Context, record *domain.MetricRecord) (int64, error)
	InsertBatch(ctx context.Context, records []*domain.MetricRecord) error
	List(ctx context.Context, filter domain.MetricFilter) ([]*domain.MetricRecord, error)
	ListByPeriods(ctx context.Context, periods []domain.Period) ([]*domain.MetricRecord, error)
	ListByPeriod(ctx context.Context, period domain.Period) ([]*domain.MetricRecord, error)
	LatestPeriods(ctx context.Context, limit int) ([]domain.Period, error)
	FindLatest(ctx context.Context, metricName string, period domain.Period) (*domain.MetricRecord, error)
	History(ctx context.Context, metricName string, limit, offset int) ([]*domain.MetricRecord, error)
	Count(ctx context.Context, metricName string) (int, error)
	Trend(ctx context.Context, metricName string, count int) ([]*domain.MetricRecord, error)
}

type metricRepository struct {
	conn database.Conn
}

func NewMetricRepository(conn database.Conn) MetricRepository {
	return &metricRepository{
		conn: conn,
	}
}

func (r *metricRepository) Insert(ctx context.Context, record *domain.MetricRecord) (int64, error) {
	id, err := insertMetric(ctx, r.conn, r.conn.Builder(), record)
	if err != nil {
		return 0, storageError("insert metric", err)
	}
	return id, nil
}

// InsertBatch writes all records in one transaction; either every row is stored or none is.
func (r *metricRepository) InsertBatch(ctx context.Context, records []*domain.MetricRecord) error {
	if len(records) == 0 {
		return nil
	}

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, record := range records {
			if _, err := insertMetric(ctx, tx, r.conn.Builder(), record); err != nil {
				return err
			}
		}
		return nil
	})
	return storageError("insert metric batch", err)
}

func (r *metricRepository) List(ctx context.Context, filter domain.MetricFilter) ([]*domain.MetricRecord, error) {
	query := r.conn.Builder().
		Select(metricColumns...).
		From(database.TableQuarterlyData).
		OrderBy(metricOrder...)

	if filter.Quarter != "" {
		query = query.Where(squirrel.Eq{"quarter": string(filter.Quarter)})
	}
	if filter.Year != 0 {
		query = query.Where(squirrel.Eq{"year": filter.Year})
	}
	if filter.Category != "" {
		query = query.Where(squirrel.Eq{"category": filter.Category})
	}

	return r.queryMetrics(ctx, "list metrics", query)
}

func (r *metricRepository) ListByPeriods(ctx context.Context, periods []domain.Period) ([]*domain.MetricRecord, error) {
	if len(periods) == 0 {
		return []*domain.MetricRecord{}, nil
	}

	or := squirrel.Or{}
	for _, p := range periods {
		or = append(or, squirrel.Eq{"quarter": string(p.Quarter), "year": p.Year})
	}

	query := r.conn.Builder().
		Select(metricColumns...).
		From(database.TableQuarterlyData).
		Where(or).
		OrderBy(metricOrder...)

	return r.queryMetrics(ctx, "list metrics by periods", query)
}

func (r *metricRepository) ListByPeriod(ctx context.Context, period domain.Period) ([]*domain.MetricRecord, error) {
	query := r.conn.Builder().
		Select(metricColumns...).
		From(database.TableQuarterlyData).
		Where(squirrel.Eq{"quarter": string(period.Quarter), "year": period.Year}).
		OrderBy("category ASC", "metric_name ASC", "created_at DESC", "id DESC")

	return r.queryMetrics(ctx, "list metrics by period", query)
}

// LatestPeriods returns distinct periods, newest first. A limit of 0 returns all of them.
func (r *metricRepository) LatestPeriods(ctx context.Context, limit int) ([]domain.Period, error) {
	query := r.conn.Builder().
		Select("quarter", "year").
		From(database.TableQuarterlyData).
		GroupBy("quarter", "year").
		OrderBy("year DESC", fiscalQuarterOrder+" DESC")

	if limit > 0 {
		query = query.Limit(uint64(limit))
	}

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, storageError("list periods", err)
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, storageError("list periods", err)
	}
	defer rows.Close()

	periods := make([]domain.Period, 0)
	for rows.Next() {
		var (
			quarter string
			year    int
		)
		if err := rows.Scan(&quarter, &year); err != nil {
			return nil, storageError("scan period", err)
		}
		periods = append(periods, domain.Period{Quarter: domain.Quarter(quarter), Year: year})
	}

	if err := rows.Err(); err != nil {
		return nil, storageError("list periods", err)
	}

	return periods, nil
}

// FindLatest returns the most recently stored record for the metric in the period, or nil.
func (r *metricRepository) FindLatest(ctx context.Context, metricName string, period domain.Period) (*domain.MetricRecord, error) {
	sqlQuery, args, err := r.conn.Builder().
		Select(metricColumns...).
		From(database.TableQuarterlyData).
		Where(squirrel.Eq{
			"metric_key": domain.MetricKey(metricName),
			"quarter":    string(period.Quarter),
			"year":       period.Year,
		}).
		OrderBy("created_at DESC", "id DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, storageError("find metric", err)
	}

	record, err := scanMetric(r.conn.QueryRowContext(ctx, sqlQuery, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, storageError("find metric", err)
	}

	return record, nil
}

// History pages through records newest period first. An empty name matches every metric
// and a limit of 0 disables paging.
func (r *metricRepository) History(ctx context.Context, metricName string, limit, offset int) ([]*domain.MetricRecord, error) {
	query := r.conn.Builder().
		Select(metricColumns...).
		From(database.TableQuarterlyData).
		OrderBy(metricOrder...)

	if metricName != "" {
		query = query.Where(squirrel.Eq{"metric_key": domain.MetricKey(metricName)})
	}
	if limit > 0 {
		query = query.Limit(uint64(limit))
		if offset > 0 {
			query = query.Offset(uint64(offset))
		}
	}

	return r.queryMetrics(ctx, "metric history", query)
}

func (r *metricRepository) Count(ctx context.Context, metricName string) (int, error) {
	query := r.conn.Builder().
		Select("COUNT(*)").
		From(database.TableQuarterlyData)

	if metricName != "" {
		query = query.Where(squirrel.Eq{"metric_key": domain.MetricKey(metricName)})
	}

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return 0, storageError("count metrics", err)
	}

	var count int
	if err := r.conn.QueryRowContext(ctx, sqlQuery, args...).Scan(&count); err != nil {
		return 0, storageError("count metrics", err)
	}
	return count, nil
}

// Trend returns the count most recent records of a metric in chronological order.
func (r *metricRepository) Trend(ctx context.Context, metricName string, count int) ([]*domain.MetricRecord, error) {
	if count <= 0 {
		return []*domain.MetricRecord{}, nil
	}

	records, err := r.History(ctx, metricName, count, 0)
	if err != nil {
		return nil, err
	}

	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}

	return records, nil
}

func (r *metricRepository) queryMetrics(ctx context.Context, op string, query squirrel.SelectBuilder) ([]*domain.MetricRecord, error) {
	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, storageError(op, err)
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, storageError(op, err)
	}
	defer rows.Close()

	records := make([]*domain.MetricRecord, 0)
	for rows.Next() {
		record, err := scanMetric(rows)
		if err != nil {
			return nil, storageError(op, err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, storageError(op, err)
	}

	return records, nil
}

// insertMetric appends one record through q, which may be a transaction.
func insertMetric(ctx context.Context, q database.Queryer, builder squirrel.StatementBuilderType, record *domain.MetricRecord) (int64, error) {
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	var status sql.NullString
	if record.Status != nil {
		status = sql.NullString{String: string(*record.Status), Valid: true}
	}

	sqlQuery, args, err := builder.
		Insert(database.TableQuarterlyData).
		Columns(
			"file_id",
			"quarter",
			"year",
			"metric_name",
			"metric_key",
			"metric_value",
			"metric_unit",
			"category",
			"description",
			"target_value",
			"status",
			"created_at",
		).
		Values(
			nullInt64(record.SourceFileID),
			string(record.Quarter),
			record.Year,
			record.MetricName,
			domain.MetricKey(record.MetricName),
			record.MetricValue,
			nullString(record.MetricUnit),
			nullString(record.Category),
			nullString(record.Description),
			nullFloat(record.TargetValue),
			status,
			record.CreatedAt,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	if err := q.QueryRowContext(ctx, sqlQuery, args...).Scan(&id); err != nil {
		return 0, err
	}

	record.ID = id
	return id, nil
}

func scanMetric(row rowScanner) (*domain.MetricRecord, error) {
	var (
		record      domain.MetricRecord
		fileID      sql.NullInt64
		quarter     string
		unit        sql.NullString
		category    sql.NullString
		description sql.NullString
		target      sql.NullFloat64
		status      sql.NullString
		createdAt   database.Timestamp
	)

	err := row.Scan(
		&record.ID,
		&fileID,
		&quarter,
		&record.Year,
		&record.MetricName,
		&record.MetricValue,
		&unit,
		&category,
		&description,
		&target,
		&status,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	record.SourceFileID = int64Ptr(fileID)
	record.Quarter = domain.Quarter(quarter)
	record.MetricUnit = stringPtr(unit)
	record.Category = stringPtr(category)
	record.Description = stringPtr(description)
	record.TargetValue = floatPtr(target)
	record.CreatedAt = createdAt.Time

	if status.Valid {
		s := domain.Status(status.String)
		record.Status = &s
	}

	return &record, nil
}
