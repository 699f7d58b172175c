package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/elt-dashboard-api/internal/domain"
	"github.com/vfg2006/elt-dashboard-api/internal/usecases/ingesting"
	"github.com/vfg2006/elt-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/elt-dashboard-api/pkg/log"
)

const (
	uploadFormField     = "file"
	multipartOverhead   = 1 << 20
	multipartMemorySize = 1 << 20
)

// UploadFile accepts one spreadsheet in the multipart field "file". Bodies above maxSize
// plus the multipart overhead are cut off before they are buffered.
func UploadFile(service ingesting.Uploader, maxSize int64) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxSize+multipartOverhead)

		if err := r.ParseMultipartForm(multipartMemorySize); err != nil {
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				writeServiceError(w, r, ingesting.NewUploadError(ingesting.ErrFileTooLarge, apiErrors.ErrInvalidRequest, ""), "File upload failed")
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid multipart body", nil)
			return
		}
		defer r.MultipartForm.RemoveAll()

		file, header, err := r.FormFile(uploadFormField)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "No file uploaded", nil)
			return
		}
		defer file.Close()

		result, err := service.Upload(r.Context(), ingesting.UploadInput{
			OriginalName: header.Filename,
			Body:         file,
		})
		if err != nil {
			writeServiceError(w, r, err, "File upload failed")
			return
		}

		warnings := make([]string, 0, len(result.Warnings))
		for _, warning := range result.Warnings {
			warnings = append(warnings, warning.String())
		}

		writeJSON(w, http.StatusOK, envelope{
			"message":       "File uploaded and processed successfully",
			"fileId":        result.FileID,
			"filename":      result.Filename,
			"stats":         result.Stats,
			"processedRows": result.ProcessedRows,
			"warnings":      warnings,
		})
	})
}

func ListFiles(service ingesting.Uploader) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		files, err := service.ListFiles(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Failed to fetch files")
			return
		}
		if files == nil {
			files = []*domain.UploadedFile{}
		}

		writeJSON(w, http.StatusOK, envelope{"files": files})
	})
}

func DownloadTemplate() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		format := httprouter.ParamsFromContext(r.Context()).ByName("format")

		template, err := ingesting.Template(format)
		if err != nil {
			writeServiceError(w, r, err, "Failed to generate template")
			return
		}

		w.Header().Set("Content-Type", template.ContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", template.Name))
		w.Header().Set("Content-Length", strconv.Itoa(len(template.Data)))
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(template.Data); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("handler: failed to write template")
		}
	})
}

func DeleteFile(service ingesting.Uploader) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := httprouter.ParamsFromContext(r.Context()).ByName("fileId")

		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid file ID", raw)
			return
		}

		result, err := service.DeleteFile(r.Context(), id)
		if errors.Is(err, domain.ErrNotFound) {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "File not found", nil)
			return
		}
		if err != nil {
			writeServiceError(w, r, err, "Failed to delete file")
			return
		}

		writeJSON(w, http.StatusOK, envelope{
			"message":     "File deleted successfully",
			"fileId":      result.FileID,
			"rowsDeleted": result.RowsDeleted,
		})
	})
}
