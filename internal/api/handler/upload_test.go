package handler

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/elt-dashboard-api/internal/domain"
	"github.com/vfg2006/elt-dashboard-api/internal/usecases/ingesting"
	"github.com/vfg2006/elt-dashboard-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func multipartRequest(t *testing.T, field, filename, content string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload/file", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestUploadFile(t *testing.T) {
	s := newTestServer(t)

	s.uploader.EXPECT().
		Upload(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input ingesting.UploadInput) (*ingesting.UploadResult, error) {
			assert.Equal(t, "metrics.csv", input.OriginalName)
			data, err := io.ReadAll(input.Body)
			require.NoError(t, err)
			assert.Equal(t, "quarter,year\n", string(data))

			return &ingesting.UploadResult{
				FileID:        9,
				Filename:      input.OriginalName,
				ProcessedRows: 2,
				Warnings:      []ingesting.Warning{{Row: 3, Message: "Missing required columns: metric_value"}},
			}, nil
		})

	rec, body := s.do(t, multipartRequest(t, "file", "metrics.csv", "quarter,year\n"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(9), body["fileId"])
	assert.Equal(t, "metrics.csv", body["filename"])
	assert.Equal(t, float64(2), body["processedRows"])
	assert.Equal(t, []any{"Row 3: Missing required columns: metric_value"}, body["warnings"])
}

func TestUploadFile_RejectsUnsupportedType(t *testing.T) {
	s := newTestServer(t)

	s.uploader.EXPECT().
		Upload(gomock.Any(), gomock.Any()).
		Return(nil, ingesting.NewUploadError(ingesting.ErrUnsupportedFileType, apiErrors.ErrInvalidFormat, "report.pdf"))

	rec, body := s.do(t, multipartRequest(t, "file", "report.pdf", "%PDF-1.4"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrInvalidFormat, body["code"])
	assert.Equal(t, ingesting.ErrUnsupportedFileType.Error(), body["message"])
}

func TestUploadFile_MissingFile(t *testing.T) {
	s := newTestServer(t)

	rec, body := s.do(t, multipartRequest(t, "attachment", "metrics.csv", "x"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrMissingRequiredData, body["code"])
}

func TestUploadFile_TooLarge(t *testing.T) {
	s := newTestServer(t)

	content := strings.Repeat("x", testMaxUploadSize+multipartOverhead+1)
	rec, body := s.do(t, multipartRequest(t, "file", "metrics.csv", content))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrInvalidRequest, body["code"])
	assert.Equal(t, ingesting.ErrFileTooLarge.Error(), body["message"])
}

func TestListFiles_Empty(t *testing.T) {
	s := newTestServer(t)

	s.uploader.EXPECT().ListFiles(gomock.Any()).Return(nil, nil)

	rec, body := s.get(t, "/api/upload/files")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []any{}, body["files"])
}

func TestDownloadTemplate(t *testing.T) {
	s := newTestServer(t)

	rec, _ := s.get(t, "/api/upload/template/csv")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="elt-data-template.csv"`, rec.Header().Get("Content-Disposition"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "quarter,year,metric_name,metric_value"))

	rec, body := s.get(t, "/api/upload/template/pdf")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrInvalidFormat, body["code"])
}

func TestDeleteFile(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		s := newTestServer(t)

		rec, body := s.send(t, http.MethodDelete, "/api/upload/file/abc", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidRequest, body["code"])
	})

	t.Run("unknown id", func(t *testing.T) {
		s := newTestServer(t)

		s.uploader.EXPECT().DeleteFile(gomock.Any(), int64(99)).Return(nil, domain.ErrNotFound)

		rec, body := s.send(t, http.MethodDelete, "/api/upload/file/99", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "File not found", body["message"])
	})

	t.Run("deleted", func(t *testing.T) {
		s := newTestServer(t)

		s.uploader.EXPECT().DeleteFile(gomock.Any(), int64(4)).Return(&ingesting.DeleteResult{FileID: 4, RowsDeleted: 2}, nil)

		rec, body := s.send(t, http.MethodDelete, "/api/upload/file/4", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, float64(2), body["rowsDeleted"])
	})
}
