package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/elt-dashboard-api/internal/scheduler"
	"github.com/vfg2006/elt-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/elt-dashboard-api/pkg/log"
)

const CronJobTypeHubSpot = "hubspot"

// CRMSyncJob is the part of the scheduler the cron endpoints drive.
type CRMSyncJob interface {
	TriggerManualSync() bool
	GetStatus() scheduler.CRMSyncStatus
}

type CronJobServices struct {
	CRMSyncService CRMSyncJob
}

// RunCronJob starts a scheduled job outside its schedule.
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")

		switch cronType {
		case CronJobTypeHubSpot:
			if services.CRMSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "CRM sync service not available", nil)
				return
			}
			if !services.CRMSyncService.TriggerManualSync() {
				writeJSON(w, http.StatusAccepted, envelope{
					"message": "Cron job already running",
					"type":    cronType,
				})
				return
			}
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid cron job type. Accepted values: hubspot", cronType)
			return
		}

		log.ForContext(r.Context()).WithField("sync_cron_type", cronType).Info("handler: cron job triggered")
		writeJSON(w, http.StatusAccepted, envelope{
			"message": "Cron job started",
			"type":    cronType,
		})
	})
}

func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := envelope{}
		if services.CRMSyncService != nil {
			status[CronJobTypeHubSpot] = services.CRMSyncService.GetStatus()
		}

		writeJSON(w, http.StatusOK, envelope{"data": status})
	})
}
