package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/elt-dashboard-api/internal/domain"
	"github.com/vfg2006/elt-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/elt-dashboard-api/pkg/apiErrors"
)

type saveConfigRequest struct {
	ConfigName string            `json:"configName"`
	ConfigData domain.ConfigData `json:"configData"`
}

func SaveConfig(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request saveConfigRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body", nil)
			return
		}

		if err := service.UpsertConfig(r.Context(), request.ConfigName, request.ConfigData); err != nil {
			writeServiceError(w, r, err, "Failed to save configuration")
			return
		}

		writeJSON(w, http.StatusOK, envelope{"message": "Configuration saved successfully"})
	})
}

// GetConfig answers with "config": null for names that were never saved.
func GetConfig(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := httprouter.ParamsFromContext(r.Context()).ByName("configName")

		cfg, err := service.GetConfig(r.Context(), name)
		if err != nil {
			writeServiceError(w, r, err, "Failed to fetch configuration")
			return
		}

		writeJSON(w, http.StatusOK, envelope{"config": cfg})
	})
}
