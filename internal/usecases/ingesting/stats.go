package ingesting

import "github.com/vfg2006/elt-dashboard-api/internal/domain"

// ComputeStats summarizes validated records. Period keys come back in fiscal order,
// metric names and categories in first-seen order.
func ComputeStats(records []*domain.MetricRecord) domain.DatasetStats {
	stats := domain.DatasetStats{
		TotalRows:  len(records),
		Quarters:   make([]string, 0),
		Metrics:    make([]string, 0),
		Categories: make([]string, 0),
	}

	seenPeriods := make(map[string]struct{})
	seenMetrics := make(map[string]struct{})
	seenCategories := make(map[string]struct{})

	for i, record := range records {
		if key := record.Period().Key(); !contains(seenPeriods, key) {
			seenPeriods[key] = struct{}{}
			stats.Quarters = append(stats.Quarters, key)
		}

		if !contains(seenMetrics, record.MetricName) {
			seenMetrics[record.MetricName] = struct{}{}
			stats.Metrics = append(stats.Metrics, record.MetricName)
		}

		if record.Category != nil && *record.Category != "" && !contains(seenCategories, *record.Category) {
			seenCategories[*record.Category] = struct{}{}
			stats.Categories = append(stats.Categories, *record.Category)
		}

		if i == 0 || record.MetricValue < stats.ValueRange.Min {
			stats.ValueRange.Min = record.MetricValue
		}
		if i == 0 || record.MetricValue > stats.ValueRange.Max {
			stats.ValueRange.Max = record.MetricValue
		}
	}

	domain.SortPeriodKeys(stats.Quarters)
	return stats
}

func contains(set map[string]struct{}, key string) bool {
	_, ok := set[key]
	return ok
}
