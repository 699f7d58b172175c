package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/vfg2006/elt-dashboard-api/infrastructure/integrator/hubspot"
	hubspotdomain "github.com/vfg2006/elt-dashboard-api/infrastructure/integrator/hubspot/domain"
	"github.com/vfg2006/elt-dashboard-api/internal/usecases/syncing"
	"github.com/vfg2006/elt-dashboard-api/pkg/apiErrors"
)

func GetHubSpotPipeline(service hubspot.HubSpotIntegrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		metrics, err := service.GetPipelineMetrics(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Failed to fetch pipeline metrics")
			return
		}

		writeJSON(w, http.StatusOK, envelope{"data": metrics, "timestamp": time.Now().UTC()})
	})
}

func GetHubSpotRevenue(service hubspot.HubSpotIntegrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		metrics, err := service.GetRevenueMetrics(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Failed to fetch revenue metrics")
			return
		}

		writeJSON(w, http.StatusOK, envelope{"data": metrics, "timestamp": time.Now().UTC()})
	})
}

type objectLister func(ctx context.Context) ([]hubspotdomain.Object, error)

// listHubSpotObjects serves the raw deal, contact and company listings.
func listHubSpotObjects(list objectLister, failure string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		objects, err := list(r.Context())
		if err != nil {
			writeServiceError(w, r, err, failure)
			return
		}
		if objects == nil {
			objects = []hubspotdomain.Object{}
		}

		writeJSON(w, http.StatusOK, envelope{
			"data":      objects,
			"count":     len(objects),
			"timestamp": time.Now().UTC(),
		})
	})
}

func GetHubSpotDeals(service hubspot.HubSpotIntegrator) http.Handler {
	return listHubSpotObjects(service.GetDeals, "Failed to fetch deals")
}

func GetHubSpotContacts(service hubspot.HubSpotIntegrator) http.Handler {
	return listHubSpotObjects(service.GetContacts, "Failed to fetch contacts")
}

func GetHubSpotCompanies(service hubspot.HubSpotIntegrator) http.Handler {
	return listHubSpotObjects(service.GetCompanies, "Failed to fetch companies")
}

func GetHubSpotOverview(service hubspot.HubSpotIntegrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		overview, err := service.GetOverview(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Failed to fetch HubSpot data")
			return
		}

		writeJSON(w, http.StatusOK, envelope{"data": overview, "timestamp": time.Now().UTC()})
	})
}

// SyncHubSpot copies one CRM view into the metric store as synthetic rows.
func SyncHubSpot(service syncing.CRMSyncer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request syncing.SyncRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body", nil)
			return
		}

		result, err := service.Sync(r.Context(), request)
		if err != nil {
			writeServiceError(w, r, err, "Failed to sync HubSpot data")
			return
		}

		writeJSON(w, http.StatusOK, envelope{
			"message":   "Successfully synced " + string(result.DataType) + " data from HubSpot",
			"period":    result.Period,
			"data":      result.Records,
			"timestamp": time.Now().UTC(),
		})
	})
}
