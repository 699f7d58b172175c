package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/elt-dashboard-api/infrastructure/fileparser"
	"github.com/vfg2006/elt-dashboard-api/internal/domain"
	"github.com/vfg2006/elt-dashboard-api/internal/usecases/ingesting"
	"github.com/vfg2006/elt-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/elt-dashboard-api/internal/usecases/syncing"
	"github.com/vfg2006/elt-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/elt-dashboard-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type envelope map[string]any

// writeJSON writes body with "success": true added.
func writeJSON(w http.ResponseWriter, status int, body envelope) {
	if body == nil {
		body = envelope{}
	}
	body["success"] = true

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.L.WithError(err).Warn("handler: failed to encode response")
	}
}

// writeServiceError maps a use case error to its API error code. Client errors keep
// their message; server errors answer with fallback and only expose the cause in development.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	logger := log.ForContext(r.Context()).WithError(err)

	var (
		uploadErr     *ingesting.UploadError
		validationErr *reporting.ValidationError
		syncErr       *syncing.SyncError
		parseErr      *fileparser.ParseError
	)

	switch {
	case errors.As(err, &uploadErr):
		logger.Warn("handler: upload rejected")
		apiErrors.WriteError(w, uploadErr.Code, uploadErr.Err.Error(), details(uploadErr.Details))
	case errors.As(err, &validationErr):
		apiErrors.WriteError(w, validationErr.Code, validationErr.Err.Error(), details(validationErr.Details))
	case errors.As(err, &syncErr):
		logger.WithField("sync_data_type", syncErr.DataType).Warn("handler: sync rejected")
		apiErrors.WriteError(w, syncErr.Code, syncErr.Err.Error(), details(syncErr.Details))
	case errors.As(err, &parseErr), errors.Is(err, fileparser.ErrUnsupportedFormat):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
	case errors.Is(err, domain.ErrNotFound):
		apiErrors.WriteError(w, apiErrors.ErrNotFound, "Resource not found", nil)
	case errors.Is(err, domain.ErrExternalService):
		logger.Error(fallback)
		apiErrors.WriteError(w, apiErrors.ErrExternalService, fallback, cause(err))
	case errors.Is(err, domain.ErrStorage):
		logger.Error(fallback)
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, fallback, cause(err))
	default:
		logger.Error(fallback)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, cause(err))
	}
}

func details(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func cause(err error) any {
	if log.IsDevelopment() {
		return err.Error()
	}
	return nil
}
