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

var fileColumns = []string{
	"id",
	"filename",
	"original_name",
	"file_type",
	"upload_date",
	"file_size",
	"status",
}

type FileRepository interface {
	Insert(ctx context.Context, file *domain.UploadedFile) (int64, error)
	CreateWithMetrics(ctx context.Context, file *domain.UploadedFile, records []*domain.MetricRecord) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.UploadedFile, error)
	List(ctx context.Context) ([]*domain.UploadedFile, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type fileRepository struct {
	conn database.Conn
}

func NewFileRepository(conn database.Conn) FileRepository {
	return &fileRepository{
		conn: conn,
	}
}

func (r *fileRepository) Insert(ctx context.Context, file *domain.UploadedFile) (int64, error) {
	id, err := r.insertFile(ctx, r.conn, file)
	if err != nil {
		return 0, storageError("insert file", err)
	}
	return id, nil
}

// CreateWithMetrics stores the file row and every metric row of the upload atomically.
// Each record's SourceFileID is set to the new file id.
func (r *fileRepository) CreateWithMetrics(ctx context.Context, file *domain.UploadedFile, records []*domain.MetricRecord) (int64, error) {
	var fileID int64

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		id, err := r.insertFile(ctx, tx, file)
		if err != nil {
			return err
		}
		fileID = id

		for _, record := range records {
			record.SourceFileID = &fileID
			if _, err := insertMetric(ctx, tx, r.conn.Builder(), record); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, storageError("store upload", err)
	}

	return fileID, nil
}

func (r *fileRepository) GetByID(ctx context.Context, id int64) (*domain.UploadedFile, error) {
	sqlQuery, args, err := r.conn.Builder().
		Select(fileColumns...).
		From(database.TableFiles).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, storageError("get file", err)
	}

	file, err := scanFile(r.conn.QueryRowContext(ctx, sqlQuery, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, storageError("get file", err)
	}

	return file, nil
}

func (r *fileRepository) List(ctx context.Context) ([]*domain.UploadedFile, error) {
	sqlQuery, args, err := r.conn.Builder().
		Select(fileColumns...).
		From(database.TableFiles).
		OrderBy("upload_date DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, storageError("list files", err)
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, storageError("list files", err)
	}
	defer rows.Close()

	files := make([]*domain.UploadedFile, 0)
	for rows.Next() {
		file, err := scanFile(rows)
		if err != nil {
			return nil, storageError("scan file", err)
		}
		files = append(files, file)
	}

	if err := rows.Err(); err != nil {
		return nil, storageError("list files", err)
	}

	return files, nil
}

// Delete removes the file row and every metric row it owns, returning how many metric rows went with it.
// Deleting an unknown id is not an error; callers check existence first when it matters.
func (r *fileRepository) Delete(ctx context.Context, id int64) (int64, error) {
	var removed int64

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		metricsQuery, args, err := r.conn.Builder().
			Delete(database.TableQuarterlyData).
			Where(squirrel.Eq{"file_id": id}).
			ToSql()
		if err != nil {
			return err
		}

		result, err := tx.ExecContext(ctx, metricsQuery, args...)
		if err != nil {
			return err
		}
		if removed, err = result.RowsAffected(); err != nil {
			return err
		}

		fileQuery, args, err := r.conn.Builder().
			Delete(database.TableFiles).
			Where(squirrel.Eq{"id": id}).
			ToSql()
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, fileQuery, args...)
		return err
	})
	if err != nil {
		return 0, storageError("delete file", err)
	}

	return removed, nil
}

func (r *fileRepository) insertFile(ctx context.Context, q database.Queryer, file *domain.UploadedFile) (int64, error) {
	if file.UploadedAt.IsZero() {
		file.UploadedAt = time.Now().UTC()
	}
	if file.Status == "" {
		file.Status = domain.FileStatusUploaded
	}

	sqlQuery, args, err := r.conn.Builder().
		Insert(database.TableFiles).
		Columns("filename", "original_name", "file_type", "upload_date", "file_size", "status").
		Values(file.StoredName, file.OriginalName, string(file.FileType), file.UploadedAt, file.SizeBytes, file.Status).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	if err := q.QueryRowContext(ctx, sqlQuery, args...).Scan(&id); err != nil {
		return 0, err
	}

	file.ID = id
	return id, nil
}

func scanFile(row rowScanner) (*domain.UploadedFile, error) {
	var (
		file       domain.UploadedFile
		fileType   string
		uploadedAt database.Timestamp
	)

	err := row.Scan(
		&file.ID,
		&file.StoredName,
		&file.OriginalName,
		&fileType,
		&uploadedAt,
		&file.SizeBytes,
		&file.Status,
	)
	if err != nil {
		return nil, err
	}

	file.FileType = domain.FileType(fileType)
	file.UploadedAt = uploadedAt.Time

	return &file, nil
}
