package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/elt-dashboard-api/pkg/log"
)

func HealthcheckHandler(version string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		err := json.NewEncoder(w).Encode(map[string]any{
			"status":    "OK",
			"timestamp": time.Now().UTC(),
			"version":   version,
		})
		if err != nil {
			log.L.WithError(err).Warn("error responding to healthcheck")
		}
	})
}
