package ingesting

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/elt-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/elt-dashboard-api/infrastructure/storage"
	"github.com/vfg2006/elt-dashboard-api/internal/config"
	"github.com/vfg2006/elt-dashboard-api/internal/domain"
	"github.com/vfg2006/elt-dashboard-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

const sampleCSV = "quarter,year,metric_name,metric_value,category\n" +
	"Q1,2024,NRR,105,Growth & Retention\n" +
	"Q4,2023,NRR,102,Growth & Retention\n" +
	"Q7,2023,NRR,99,Growth & Retention\n"

func newTestService(t *testing.T, ctrl *gomock.Controller) (*Service, *mocks.MockFileRepository, string) {
	t.Helper()

	dir := t.TempDir()
	store, err := storage.NewLocalStore(dir, 1024)
	require.NoError(t, err)

	repo := mocks.NewMockFileRepository(ctrl)
	service := NewService(repo, store, NewRowValidator(config.Validation{})).(*Service)
	return service, repo, dir
}

func storedFiles(t *testing.T, dir string) []os.DirEntry {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	return entries
}

func TestService_Upload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, repo, dir := newTestService(t, ctrl)

	repo.EXPECT().
		CreateWithMetrics(gomock.Any(), gomock.Any(), gomock.Len(2)).
		DoAndReturn(func(_ context.Context, file *domain.UploadedFile, records []*domain.MetricRecord) (int64, error) {
			assert.Equal(t, "metrics.csv", file.OriginalName)
			assert.Equal(t, domain.FileTypeCSV, file.FileType)
			assert.Equal(t, int64(len(sampleCSV)), file.SizeBytes)
			assert.True(t, strings.HasSuffix(file.StoredName, ".csv"))
			return 7, nil
		})

	result, err := service.Upload(context.Background(), UploadInput{
		OriginalName: "metrics.csv",
		Body:         strings.NewReader(sampleCSV),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(7), result.FileID)
	assert.Equal(t, "metrics.csv", result.Filename)
	assert.Equal(t, 2, result.ProcessedRows)
	assert.Equal(t, []string{"2023-Q4", "2024-Q1"}, result.Stats.Quarters)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, 4, result.Warnings[0].Row)

	assert.Len(t, storedFiles(t, dir), 1)
}

func TestService_UploadRejectsUnsupportedExtension(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, dir := newTestService(t, ctrl)

	_, err := service.Upload(context.Background(), UploadInput{
		OriginalName: "report.pdf",
		Body:         strings.NewReader("%PDF-1.4"),
	})

	var uploadErr *UploadError
	require.ErrorAs(t, err, &uploadErr)
	assert.ErrorIs(t, err, ErrUnsupportedFileType)
	assert.Equal(t, apiErrors.ErrInvalidFormat, uploadErr.Code)
	assert.Empty(t, storedFiles(t, dir))
}

func TestService_UploadRemovesBytesOnFailure(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		setup   func(repo *mocks.MockFileRepository)
		wantErr error
	}{
		{
			name:    "no rows",
			body:    "quarter,year,metric_name,metric_value\n",
			setup:   func(*mocks.MockFileRepository) {},
			wantErr: ErrEmptyDataset,
		},
		{
			name:    "no valid rows",
			body:    "quarter,year,metric_name,metric_value\nQ1,1999,NRR,1\n",
			setup:   func(*mocks.MockFileRepository) {},
			wantErr: ErrNoValidRows,
		},
		{
			name:    "too large",
			body:    strings.Repeat("x", 2048),
			setup:   func(*mocks.MockFileRepository) {},
			wantErr: ErrFileTooLarge,
		},
		{
			name: "storage failure",
			body: sampleCSV,
			setup: func(repo *mocks.MockFileRepository) {
				repo.EXPECT().
					CreateWithMetrics(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(int64(0), domain.NewStorageError("store upload", errors.New("disk full")))
			},
			wantErr: domain.ErrStorage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, repo, dir := newTestService(t, ctrl)
			tt.setup(repo)

			_, err := service.Upload(context.Background(), UploadInput{
				OriginalName: "metrics.csv",
				Body:         strings.NewReader(tt.body),
			})
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, storedFiles(t, dir))
		})
	}
}

func TestService_DeleteFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, repo, dir := newTestService(t, ctrl)

	name, _, err := service.store.Save(".csv", strings.NewReader(sampleCSV))
	require.NoError(t, err)

	repo.EXPECT().GetByID(gomock.Any(), int64(4)).Return(&domain.UploadedFile{ID: 4, StoredName: name}, nil)
	repo.EXPECT().Delete(gomock.Any(), int64(4)).Return(int64(2), nil)

	result, err := service.DeleteFile(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, &DeleteResult{FileID: 4, RowsDeleted: 2}, result)
	assert.Empty(t, storedFiles(t, dir))
}

func TestService_DeleteFileNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, repo, _ := newTestService(t, ctrl)

	repo.EXPECT().GetByID(gomock.Any(), int64(99)).Return(nil, nil)

	_, err := service.DeleteFile(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
