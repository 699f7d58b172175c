package handler

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	hubspotmocks "github.com/vfg2006/elt-dashboard-api/infrastructure/integrator/hubspot/mocks"
	"github.com/vfg2006/elt-dashboard-api/internal/api/handler/router"
	ingestingmocks "github.com/vfg2006/elt-dashboard-api/internal/usecases/ingesting/mocks"
	insightingmocks "github.com/vfg2006/elt-dashboard-api/internal/usecases/insighting/mocks"
	reportingmocks "github.com/vfg2006/elt-dashboard-api/internal/usecases/reporting/mocks"
	syncingmocks "github.com/vfg2006/elt-dashboard-api/internal/usecases/syncing/mocks"
	"github.com/vfg2006/elt-dashboard-api/pkg/log"
	"go.uber.org/mock/gomock"
)

const testMaxUploadSize = 1 << 20

type testServer struct {
	handler   http.Handler
	reporter  *reportingmocks.MockReporter
	uploader  *ingestingmocks.MockUploader
	insighter *insightingmocks.MockInsighter
	hubspot   *hubspotmocks.MockHubSpotIntegrator
	syncer    *syncingmocks.MockCRMSyncer
	crmSync   *fakeCRMSyncJob
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	log.SetupTestLogger()
	log.SetEnvironment("production")

	ctrl := gomock.NewController(t)

	s := &testServer{
		reporter:  reportingmocks.NewMockReporter(ctrl),
		uploader:  ingestingmocks.NewMockUploader(ctrl),
		insighter: insightingmocks.NewMockInsighter(ctrl),
		hubspot:   hubspotmocks.NewMockHubSpotIntegrator(ctrl),
		syncer:    syncingmocks.NewMockCRMSyncer(ctrl),
		crmSync:   &fakeCRMSyncJob{},
	}

	s.handler = router.New(
		router.WithBasePath("/api"),
		router.WithRoutes(Healthcheck("1.0.0")...),
		router.WithRoutes(Data(s.reporter)...),
		router.WithRoutes(Upload(s.uploader, testMaxUploadSize)...),
		router.WithRoutes(Analysis(s.insighter)...),
		router.WithRoutes(HubSpot(s.hubspot, s.syncer)...),
		router.WithRoutes(CronJobs(CronJobServices{CRMSyncService: s.crmSync})...),
	)

	return s
}

func (s *testServer) do(t *testing.T, req *http.Request) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	var body map[string]any
	if rec.Header().Get("Content-Type") == "application/json" {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	}
	return rec, body
}

func (s *testServer) get(t *testing.T, path string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	return s.do(t, httptest.NewRequest(http.MethodGet, path, nil))
}

func (s *testServer) send(t *testing.T, method, path string, body io.Reader) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	return s.do(t, req)
}
