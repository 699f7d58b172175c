package domain

import "sort"

// TrendThresholdPercent is the change, in percent, beyond which a series counts as moving.
const TrendThresholdPercent = 5.0

type TrendDirection string

const (
	TrendIncreasing TrendDirection = "increasing"
	TrendDecreasing TrendDirection = "decreasing"
	TrendStable     TrendDirection = "stable"
)

// QoQComparison compares a metric in one period against the previous fiscal period.
type QoQComparison struct {
	Current       *MetricRecord `json:"current"`
	Previous      *MetricRecord `json:"previous"`
	Change        *float64      `json:"change"`
	ChangePercent *float64      `json:"changePercent"`
}

// CompareQuarterOverQuarter computes the change between two observations. Change is
// nil when either side is missing; ChangePercent is also nil when previous is zero.
func CompareQuarterOverQuarter(current, previous *MetricRecord) QoQComparison {
	comparison := QoQComparison{
		Current:  current,
		Previous: previous,
	}

	if current == nil || previous == nil {
		return comparison
	}

	change := current.MetricValue - previous.MetricValue
	comparison.Change = &change

	if previous.MetricValue != 0 {
		percent := change / previous.MetricValue * 100
		comparison.ChangePercent = &percent
	}

	return comparison
}

type QuarterValue struct {
	Value   float64 `json:"value"`
	Quarter Quarter `json:"quarter"`
	Year    int     `json:"year"`
}

// MetricComparison holds the values of one metric across several periods, keyed by period key.
type MetricComparison struct {
	MetricName string                  `json:"metric_name"`
	MetricUnit *string                 `json:"metric_unit"`
	Category   *string                 `json:"category"`
	Quarters   map[string]QuarterValue `json:"quarters"`
}

// GroupByMetric groups records by metric name, keeping the order in which names first
// appear. When a name repeats within a period the first record seen wins.
func GroupByMetric(records []*MetricRecord) []*MetricComparison {
	grouped := make([]*MetricComparison, 0)
	index := make(map[string]*MetricComparison)

	for _, record := range records {
		comparison, ok := index[record.MetricName]
		if !ok {
			comparison = &MetricComparison{
				MetricName: record.MetricName,
				MetricUnit: record.MetricUnit,
				Category:   record.Category,
				Quarters:   make(map[string]QuarterValue),
			}
			index[record.MetricName] = comparison
			grouped = append(grouped, comparison)
		}

		key := record.Period().Key()
		if _, seen := comparison.Quarters[key]; seen {
			continue
		}

		comparison.Quarters[key] = QuarterValue{
			Value:   record.MetricValue,
			Quarter: record.Quarter,
			Year:    record.Year,
		}
	}

	return grouped
}

// TrendAnalysis describes how a metric moved across a chronological series.
type TrendAnalysis struct {
	MetricName       string          `json:"metric_name"`
	Data             []*MetricRecord `json:"data"`
	TrendDirection   TrendDirection  `json:"trend_direction"`
	ChangePercentage *float64        `json:"change_percentage,omitempty"`
}

// AnalyzeTrend compares the first and last points of a chronological series.
func AnalyzeTrend(metricName string, series []*MetricRecord) TrendAnalysis {
	analysis := TrendAnalysis{
		MetricName:     metricName,
		Data:           series,
		TrendDirection: TrendStable,
	}

	if len(series) < 2 {
		return analysis
	}

	first := series[0].MetricValue
	last := series[len(series)-1].MetricValue
	if first == 0 {
		return analysis
	}

	change := (last - first) / first * 100
	analysis.ChangePercentage = &change

	switch {
	case change > TrendThresholdPercent:
		analysis.TrendDirection = TrendIncreasing
	case change < -TrendThresholdPercent:
		analysis.TrendDirection = TrendDecreasing
	}

	return analysis
}

// DashboardSummary is the headline view over every stored record.
type DashboardSummary struct {
	TotalMetrics  int      `json:"totalMetrics"`
	UniqueMetrics int      `json:"uniqueMetrics"`
	Categories    []string `json:"categories"`
	Quarters      []string `json:"quarters"`
	Years         []int    `json:"years"`
	LatestQuarter *Period  `json:"latestQuarter"`
}

// Summarize builds a DashboardSummary. Period keys and years are returned chronologically.
func Summarize(records []*MetricRecord) DashboardSummary {
	summary := DashboardSummary{
		TotalMetrics: len(records),
		Categories:   make([]string, 0),
		Quarters:     make([]string, 0),
		Years:        make([]int, 0),
	}

	names := make(map[string]struct{})
	categories := make(map[string]struct{})
	periods := make(map[Period]struct{})
	years := make(map[int]struct{})

	var latest *Period
	for _, record := range records {
		names[record.MetricName] = struct{}{}

		if record.Category != nil && *record.Category != "" {
			if _, ok := categories[*record.Category]; !ok {
				categories[*record.Category] = struct{}{}
				summary.Categories = append(summary.Categories, *record.Category)
			}
		}

		period := record.Period()
		if _, ok := periods[period]; !ok {
			periods[period] = struct{}{}
			summary.Quarters = append(summary.Quarters, period.Key())
		}

		if _, ok := years[record.Year]; !ok {
			years[record.Year] = struct{}{}
			summary.Years = append(summary.Years, record.Year)
		}

		if latest == nil || latest.Before(period) {
			p := period
			latest = &p
		}
	}

	summary.UniqueMetrics = len(names)
	summary.LatestQuarter = latest
	SortPeriodKeys(summary.Quarters)
	sort.Ints(summary.Years)

	return summary
}
