package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/elt-dashboard-api/internal/domain"
	"github.com/vfg2006/elt-dashboard-api/internal/usecases/reporting"
)

func GetQuarterlyData(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		filter, err := reporting.ParseFilter(query.Get("quarter"), query.Get("year"))
		if err != nil {
			writeServiceError(w, r, err, "Failed to fetch quarterly data")
			return
		}

		records, err := service.QueryMetrics(r.Context(), filter)
		if err != nil {
			writeServiceError(w, r, err, "Failed to fetch quarterly data")
			return
		}

		writeJSON(w, http.StatusOK, envelope{"data": records, "count": len(records)})
	})
}

func GetComparison(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		periods, err := reporting.ParsePeriodKeys(r.URL.Query().Get("quarters"))
		if err != nil {
			writeServiceError(w, r, err, "Failed to fetch comparison data")
			return
		}

		comparison, err := service.CompareAcrossQuarters(r.Context(), periods)
		if err != nil {
			writeServiceError(w, r, err, "Failed to fetch comparison data")
			return
		}

		writeJSON(w, http.StatusOK, envelope{"data": comparison.Metrics, "quarters": comparison.Quarters})
	})
}

func GetQuarters(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		quarters, err := service.Quarters(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Failed to fetch quarters")
			return
		}

		writeJSON(w, http.StatusOK, envelope{"quarters": quarters})
	})
}

// GetMetricsByCategory serves /data/metrics/:category. "all" lists every category.
func GetMetricsByCategory(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		category := httprouter.ParamsFromContext(r.Context()).ByName("category")
		query := r.URL.Query()

		filter, err := reporting.ParseFilter(query.Get("quarter"), query.Get("year"))
		if err != nil {
			writeServiceError(w, r, err, "Failed to fetch metrics by category")
			return
		}

		records, err := service.MetricsByCategory(r.Context(), category, filter)
		if err != nil {
			writeServiceError(w, r, err, "Failed to fetch metrics by category")
			return
		}

		writeJSON(w, http.StatusOK, envelope{"category": category, "data": records, "count": len(records)})
	})
}

func GetSummary(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		summary, err := service.Summary(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Failed to fetch summary")
			return
		}

		writeJSON(w, http.StatusOK, envelope{"summary": summary})
	})
}

func GetTrend(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		metricName := httprouter.ParamsFromContext(r.Context()).ByName("metricName")

		trend, err := service.TrendAnalysis(r.Context(), metricName)
		if err != nil {
			writeServiceError(w, r, err, "Failed to fetch trend analysis")
			return
		}

		writeJSON(w, http.StatusOK, envelope{"trend": trend})
	})
}

func GetMetricHistory(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		metricName := httprouter.ParamsFromContext(r.Context()).ByName("metricName")

		limit, err := reporting.ParseCount(r.URL.Query().Get("limit"), 0)
		if err != nil {
			writeServiceError(w, r, err, "Failed to fetch historical data")
			return
		}

		page, err := service.Historical(r.Context(), metricName, limit, 0)
		if err != nil {
			writeServiceError(w, r, err, "Failed to fetch historical data")
			return
		}

		writeJSON(w, http.StatusOK, envelope{"data": page.Records, "count": len(page.Records)})
	})
}

// GetHistory pages through every stored record. A zero limit returns everything after offset.
func GetHistory(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		limit, err := reporting.ParseCount(query.Get("limit"), 0)
		if err != nil {
			writeServiceError(w, r, err, "Failed to fetch historical data")
			return
		}
		offset, err := reporting.ParseCount(query.Get("offset"), 0)
		if err != nil {
			writeServiceError(w, r, err, "Failed to fetch historical data")
			return
		}

		page, err := service.Historical(r.Context(), "", limit, offset)
		if err != nil {
			writeServiceError(w, r, err, "Failed to fetch historical data")
			return
		}

		writeJSON(w, http.StatusOK, envelope{
			"data":   page.Records,
			"count":  len(page.Records),
			"total":  page.Total,
			"offset": page.Offset,
			"limit":  page.Limit,
		})
	})
}

func GetQuarterOverQuarter(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		metricName := httprouter.ParamsFromContext(r.Context()).ByName("metricName")
		query := r.URL.Query()

		period, err := reporting.ParsePeriod(query.Get("quarter"), query.Get("year"))
		if err != nil {
			writeServiceError(w, r, err, "Failed to fetch quarter-over-quarter comparison")
			return
		}

		comparison, err := service.QuarterOverQuarter(r.Context(), metricName, period)
		if err != nil {
			writeServiceError(w, r, err, "Failed to fetch quarter-over-quarter comparison")
			return
		}

		writeJSON(w, http.StatusOK, envelope{
			"metric":         metricName,
			"currentQuarter": period.Key(),
			"comparison":     comparison,
		})
	})
}

func GetQuarterMetrics(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())

		period, err := reporting.ParsePeriod(params.ByName("quarter"), params.ByName("year"))
		if err != nil {
			writeServiceError(w, r, err, "Failed to fetch quarter data")
			return
		}

		records, err := service.QuarterMetrics(r.Context(), period)
		if err != nil {
			writeServiceError(w, r, err, "Failed to fetch quarter data")
			return
		}

		writeJSON(w, http.StatusOK, envelope{
			"quarter": period.Quarter,
			"year":    period.Year,
			"data":    records,
			"count":   len(records),
		})
	})
}

func GetAvailableQuarters(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		periods, err := service.AvailableQuarters(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Failed to fetch available quarters")
			return
		}
		if periods == nil {
			periods = []domain.Period{}
		}

		writeJSON(w, http.StatusOK, envelope{"quarters": periods})
	})
}

func GetTrendData(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		metricName := httprouter.ParamsFromContext(r.Context()).ByName("metricName")

		count, err := reporting.ParseCount(r.URL.Query().Get("quarters"), reporting.DefaultTrendPeriods)
		if err != nil {
			writeServiceError(w, r, err, "Failed to fetch trend data")
			return
		}

		records, err := service.TrendData(r.Context(), metricName, count)
		if err != nil {
			writeServiceError(w, r, err, "Failed to fetch trend data")
			return
		}

		writeJSON(w, http.StatusOK, envelope{"metric": metricName, "data": records, "count": len(records)})
	})
}
