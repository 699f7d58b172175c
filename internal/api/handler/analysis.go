package handler

import (
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/elt-dashboard-api/internal/domain"
	"github.com/vfg2006/elt-dashboard-api/internal/usecases/insighting"
	"github.com/vfg2006/elt-dashboard-api/pkg/apiErrors"
)

func GetLatestInsights(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		snapshot, err := service.Latest(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Failed to fetch insights")
			return
		}

		if snapshot == nil {
			writeJSON(w, http.StatusOK, envelope{
				"insights": nil,
				"message":  "No insights available. Generate insights to get started.",
			})
			return
		}

		writeJSON(w, http.StatusOK, envelope{
			"insights":       snapshot.InsightsText,
			"qoqData":        snapshot.QoQData,
			"currentQuarter": snapshot.CurrentQuarter,
			"timestamp":      snapshot.CreatedAt,
			"updatedAt":      snapshot.UpdatedAt,
		})
	})
}

// GenerateInsights accepts an empty body, which generates a narrative without comparison context.
func GenerateInsights(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request domain.InsightRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil && !errors.Is(err, io.EOF) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body", nil)
			return
		}

		generated, err := service.Generate(r.Context(), request)
		if err != nil {
			writeServiceError(w, r, err, "Failed to generate insights")
			return
		}

		writeJSON(w, http.StatusOK, envelope{
			"insights":  generated.Insights,
			"usage":     generated.Usage,
			"timestamp": generated.Timestamp,
			"saved":     generated.Saved,
		})
	})
}

func UpdateInsights(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var edit domain.InsightEdit
		if err := json.NewDecoder(r.Body).Decode(&edit); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body", nil)
			return
		}

		if strings.TrimSpace(edit.Insights) == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "insights is required", nil)
			return
		}

		snapshot, err := service.Overwrite(r.Context(), edit)
		if err != nil {
			writeServiceError(w, r, err, "Failed to update insights")
			return
		}

		writeJSON(w, http.StatusOK, envelope{
			"message":   "Insights updated successfully",
			"insights":  snapshot.InsightsText,
			"updatedAt": snapshot.UpdatedAt,
		})
	})
}

func GetDashboardData(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, err := service.DashboardData(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Failed to extract dashboard data")
			return
		}

		writeJSON(w, http.StatusOK, envelope{"data": data, "timestamp": time.Now().UTC()})
	})
}
