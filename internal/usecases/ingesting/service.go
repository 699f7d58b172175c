package ingesting

import (
	"context"
	"errors"
	"io"

	"github.com/vfg2006/elt-dashboard-api/infrastructure/fileparser"
	"github.com/vfg2006/elt-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/elt-dashboard-api/infrastructure/storage"
	"github.com/vfg2006/elt-dashboard-api/internal/domain"
	"github.com/vfg2006/elt-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/elt-dashboard-api/pkg/log"
)

// FileStore keeps the raw bytes of uploads. storage.LocalStore implements it.
type FileStore interface {
	Save(ext string, body io.Reader) (string, int64, error)
	Remove(name string) error
	Path(name string) string
}

type Uploader interface {
	Upload(ctx context.Context, input UploadInput) (*UploadResult, error)
	ListFiles(ctx context.Context) ([]*domain.UploadedFile, error)
	DeleteFile(ctx context.Context, id int64) (*DeleteResult, error)
}

type UploadInput struct {
	OriginalName string
	Body         io.Reader
}

type UploadResult struct {
	FileID        int64               `json:"fileId"`
	Filename      string              `json:"filename"`
	Stats         domain.DatasetStats `json:"stats"`
	ProcessedRows int                 `json:"processedRows"`
	Warnings      []Warning           `json:"warnings"`
}

type DeleteResult struct {
	FileID      int64 `json:"fileId"`
	RowsDeleted int64 `json:"rowsDeleted"`
}

type Service struct {
	fileRepository repository.FileRepository
	store          FileStore
	validator      RowValidator
}

func NewService(
	fileRepository repository.FileRepository,
	store FileStore,
	validator RowValidator,
) Uploader {
	return &Service{
		fileRepository: fileRepository,
		store:          store,
		validator:      validator,
	}
}

// Upload stores the bytes, parses and validates them, then writes the file row and every
// valid metric row in one transaction. The stored bytes are removed on any failure.
func (s *Service) Upload(ctx context.Context, input UploadInput) (*UploadResult, error) {
	logger := log.ForContext(ctx).WithField("upload_original_name", input.OriginalName)

	fileType, ok := domain.FileTypeFromName(input.OriginalName)
	if !ok {
		return nil, NewUploadError(ErrUnsupportedFileType, apiErrors.ErrInvalidFormat, input.OriginalName)
	}

	storedName, size, err := s.store.Save(fileType.Extension(), input.Body)
	if err != nil {
		if errors.Is(err, storage.ErrTooLarge) {
			return nil, NewUploadError(ErrFileTooLarge, apiErrors.ErrInvalidRequest, input.OriginalName)
		}
		return nil, err
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		if err := s.store.Remove(storedName); err != nil {
			logger.WithError(err).Warn("ingesting: failed to remove stored upload")
		}
	}()

	rows, err := fileparser.Parse(s.store.Path(storedName), fileType)
	if err != nil {
		return nil, NewUploadError(err, apiErrors.ErrInvalidFormat, "")
	}

	dataset, err := s.validator.ValidateDataset(rows)
	if err != nil {
		if dataset != nil {
			logger.WithField("upload_rejected_rows", len(dataset.Warnings)).Warn("ingesting: every row was rejected")
		}
		return nil, NewUploadError(err, apiErrors.ErrInvalidRequest, "")
	}

	file := &domain.UploadedFile{
		StoredName:   storedName,
		OriginalName: input.OriginalName,
		FileType:     fileType,
		SizeBytes:    size,
		Status:       domain.FileStatusUploaded,
	}

	fileID, err := s.fileRepository.CreateWithMetrics(ctx, file, dataset.Records)
	if err != nil {
		return nil, err
	}
	committed = true

	logger.WithFields(log.Fields{
		"upload_file_id":  fileID,
		"upload_rows":     len(dataset.Records),
		"upload_warnings": len(dataset.Warnings),
	}).Info("ingesting: file processed")

	return &UploadResult{
		FileID:        fileID,
		Filename:      input.OriginalName,
		Stats:         ComputeStats(dataset.Records),
		ProcessedRows: len(dataset.Records),
		Warnings:      dataset.Warnings,
	}, nil
}

func (s *Service) ListFiles(ctx context.Context) ([]*domain.UploadedFile, error) {
	return s.fileRepository.List(ctx)
}

// DeleteFile removes the file row, its metric rows and the stored bytes.
// Unknown ids fail with domain.ErrNotFound.
func (s *Service) DeleteFile(ctx context.Context, id int64) (*DeleteResult, error) {
	file, err := s.fileRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if file == nil {
		return nil, domain.ErrNotFound
	}

	removed, err := s.fileRepository.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.store.Remove(file.StoredName); err != nil {
		log.ForContext(ctx).WithError(err).WithField("upload_file_id", id).Warn("ingesting: failed to remove stored bytes")
	}

	return &DeleteResult{FileID: id, RowsDeleted: removed}, nil
}
