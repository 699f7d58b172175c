package handler

import (
	"net/http"

	"github.com/vfg2006/elt-dashboard-api/infrastructure/integrator/hubspot"
	"github.com/vfg2006/elt-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/elt-dashboard-api/internal/usecases/ingesting"
	"github.com/vfg2006/elt-dashboard-api/internal/usecases/insighting"
	"github.com/vfg2006/elt-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/elt-dashboard-api/internal/usecases/syncing"
)

func Healthcheck(version string) []router.Route {
	return []router.Route{
		{
			Path:    "/health",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(version),
		},
	}
}

func Data(service reporting.Reporter) []router.Route {
	return []router.Route{
		{Path: "/data/quarterly", Method: http.MethodGet, Handler: GetQuarterlyData(service)},
		{Path: "/data/comparison", Method: http.MethodGet, Handler: GetComparison(service)},
		{Path: "/data/quarters", Method: http.MethodGet, Handler: GetQuarters(service)},
		{Path: "/data/quarters/available", Method: http.MethodGet, Handler: GetAvailableQuarters(service)},
		{Path: "/data/metrics/:category", Method: http.MethodGet, Handler: GetMetricsByCategory(service)},
		{Path: "/data/summary", Method: http.MethodGet, Handler: GetSummary(service)},
		{Path: "/data/trend/:metricName", Method: http.MethodGet, Handler: GetTrend(service)},
		{Path: "/data/trend-data/:metricName", Method: http.MethodGet, Handler: GetTrendData(service)},
		{Path: "/data/historical", Method: http.MethodGet, Handler: GetHistory(service)},
		{Path: "/data/historical/:metricName", Method: http.MethodGet, Handler: GetMetricHistory(service)},
		{Path: "/data/qoq/:metricName", Method: http.MethodGet, Handler: GetQuarterOverQuarter(service)},
		{Path: "/data/quarter/:quarter/:year", Method: http.MethodGet, Handler: GetQuarterMetrics(service)},
		{Path: "/data/config", Method: http.MethodPost, Handler: SaveConfig(service)},
		{Path: "/data/config/:configName", Method: http.MethodGet, Handler: GetConfig(service)},
	}
}

func Upload(service ingesting.Uploader, maxSize int64) []router.Route {
	return []router.Route{
		{Path: "/upload/file", Method: http.MethodPost, Handler: UploadFile(service, maxSize)},
		{Path: "/upload/files", Method: http.MethodGet, Handler: ListFiles(service)},
		{Path: "/upload/template/:format", Method: http.MethodGet, Handler: DownloadTemplate()},
		{Path: "/upload/file/:fileId", Method: http.MethodDelete, Handler: DeleteFile(service)},
	}
}

func Analysis(service insighting.Insighter) []router.Route {
	return []router.Route{
		{Path: "/analysis/insights", Method: http.MethodGet, Handler: GetLatestInsights(service)},
		{Path: "/analysis/insights", Method: http.MethodPost, Handler: GenerateInsights(service)},
		{Path: "/analysis/insights", Method: http.MethodPut, Handler: UpdateInsights(service)},
		{Path: "/analysis/dashboard-data", Method: http.MethodGet, Handler: GetDashboardData(service)},
	}
}

func HubSpot(service hubspot.HubSpotIntegrator, syncer syncing.CRMSyncer) []router.Route {
	return []router.Route{
		{Path: "/hubspot/pipeline", Method: http.MethodGet, Handler: GetHubSpotPipeline(service)},
		{Path: "/hubspot/revenue", Method: http.MethodGet, Handler: GetHubSpotRevenue(service)},
		{Path: "/hubspot/deals", Method: http.MethodGet, Handler: GetHubSpotDeals(service)},
		{Path: "/hubspot/contacts", Method: http.MethodGet, Handler: GetHubSpotContacts(service)},
		{Path: "/hubspot/companies", Method: http.MethodGet, Handler: GetHubSpotCompanies(service)},
		{Path: "/hubspot/all", Method: http.MethodGet, Handler: GetHubSpotOverview(service)},
		{Path: "/hubspot/sync", Method: http.MethodPost, Handler: SyncHubSpot(syncer)},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/cron/run/:type",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
