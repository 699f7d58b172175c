package domain

import "time"

// InsightSnapshot is a stored narrative summary together with the comparison data it was built from.
type InsightSnapshot struct {
	ID             int64                    `json:"id"`
	InsightsText   string                   `json:"insights_text"`
	QoQData        map[string]QoQComparison `json:"qoq_data"`
	CurrentQuarter *Period                  `json:"current_quarter"`
	CreatedAt      time.Time                `json:"created_at"`
	UpdatedAt      time.Time                `json:"updated_at"`
}

// InsightRequest carries the client-side comparison context for a narrative run.
type InsightRequest struct {
	QoQComparisons map[string]QoQComparison `json:"qoqComparisons"`
	CurrentQuarter *Period                  `json:"currentQuarter"`
}

// InsightEdit replaces the narrative and its context on the latest snapshot.
type InsightEdit struct {
	Insights       string                   `json:"insights"`
	QoQComparisons map[string]QoQComparison `json:"qoqComparisons"`
	CurrentQuarter *Period                  `json:"currentQuarter"`
}

// KeyMetric is the condensed view of one metric used in dashboards and prompts.
type KeyMetric struct {
	MetricName string   `json:"metric_name"`
	Value      float64  `json:"value"`
	Target     *float64 `json:"target"`
	Unit       *string  `json:"unit"`
	Status     string   `json:"status"`
}

const StatusNeutral = "neutral"

// KeyMetrics is keyed by MetricKey of the metric name.
type KeyMetrics map[string]KeyMetric

// ExtractKeyMetrics condenses records into one entry per normalized metric name.
// The first record for a key wins, so callers pass records newest first.
func ExtractKeyMetrics(records []*MetricRecord) KeyMetrics {
	metrics := make(KeyMetrics, len(records))
	for _, record := range records {
		key := record.Key()
		if _, ok := metrics[key]; ok {
			continue
		}

		status := StatusNeutral
		if record.Status != nil {
			status = string(*record.Status)
		}

		metrics[key] = KeyMetric{
			MetricName: record.MetricName,
			Value:      record.MetricValue,
			Target:     record.TargetValue,
			Unit:       record.MetricUnit,
			Status:     status,
		}
	}
	return metrics
}

// DashboardData is the key-metric view of one period.
type DashboardData struct {
	Period  *Period    `json:"period"`
	Metrics KeyMetrics `json:"metrics"`
}

type TokenUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Narrative is the generated text and the tokens spent producing it.
type Narrative struct {
	Text  string     `json:"text"`
	Usage TokenUsage `json:"usage"`
}

// NarrativeInput is everything the narrative generator needs to write a summary.
type NarrativeInput struct {
	Period         *Period
	KeyMetrics     []KeyMetric
	QoQComparisons map[string]QoQComparison
}
