package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	hubspotmocks "github.com/vfg2006/elt-dashboard-api/infrastructure/integrator/hubspot/mocks"
	"github.com/vfg2006/elt-dashboard-api/internal/config"
	"github.com/vfg2006/elt-dashboard-api/internal/scheduler"
	ingestingmocks "github.com/vfg2006/elt-dashboard-api/internal/usecases/ingesting/mocks"
	insightingmocks "github.com/vfg2006/elt-dashboard-api/internal/usecases/insighting/mocks"
	reportingmocks "github.com/vfg2006/elt-dashboard-api/internal/usecases/reporting/mocks"
	syncingmocks "github.com/vfg2006/elt-dashboard-api/internal/usecases/syncing/mocks"
	"github.com/vfg2006/elt-dashboard-api/pkg/log"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		App:    config.App{Version: "2.1.0"},
		Server: config.Server{Host: "localhost", Port: "5000", BasePath: "/api", AllowedOrigins: []string{"http://localhost:3000"}},
		Upload: config.Upload{MaxSizeBytes: 10 << 20},
	}
}

func TestNewHandler(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)

	syncer := syncingmocks.NewMockCRMSyncer(ctrl)
	services := Services{
		Reporter:  reportingmocks.NewMockReporter(ctrl),
		Uploader:  ingestingmocks.NewMockUploader(ctrl),
		Insighter: insightingmocks.NewMockInsighter(ctrl),
		HubSpot:   hubspotmocks.NewMockHubSpotIntegrator(ctrl),
		Syncer:    syncer,
		CRMSync:   scheduler.NewCRMSyncService(syncer, config.HubSpotSync{}),
	}

	var handler http.Handler
	require.NotPanics(t, func() {
		handler = NewHandler(testConfig(), services)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"version":"2.1.0"`)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNew(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)

	server, err := New(testConfig(), Services{
		Reporter:  reportingmocks.NewMockReporter(ctrl),
		Uploader:  ingestingmocks.NewMockUploader(ctrl),
		Insighter: insightingmocks.NewMockInsighter(ctrl),
		HubSpot:   hubspotmocks.NewMockHubSpotIntegrator(ctrl),
		Syncer:    syncingmocks.NewMockCRMSyncer(ctrl),
	})
	require.NoError(t, err)
	assert.Equal(t, "localhost:5000", server.httpServer.Addr)
}
