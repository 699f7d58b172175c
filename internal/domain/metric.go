package domain

import (
	"strings"
	"time"
	"unicode"
)

type Status string

const (
	StatusGreen Status = "green"
	StatusAmber Status = "amber"
	StatusRed   Status = "red"
)

func ParseStatus(s string) (Status, bool) {
	status := Status(strings.ToLower(strings.TrimSpace(s)))
	switch status {
	case StatusGreen, StatusAmber, StatusRed:
		return status, true
	}
	return "", false
}

// MetricRecord is one stored observation of a named metric in a period.
// Records are append-only; repeated uploads of the same period keep history.
type MetricRecord struct {
	ID           int64     `json:"id"`
	SourceFileID *int64    `json:"file_id,omitempty"`
	Quarter      Quarter   `json:"quarter"`
	Year         int       `json:"year"`
	MetricName   string    `json:"metric_name"`
	MetricValue  float64   `json:"metric_value"`
	MetricUnit   *string   `json:"metric_unit"`
	Category     *string   `json:"category"`
	Description  *string   `json:"description"`
	TargetValue  *float64  `json:"target_value"`
	Status       *Status   `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

func (m MetricRecord) Period() Period {
	return Period{Quarter: m.Quarter, Year: m.Year}
}

func (m MetricRecord) Key() string {
	return MetricKey(m.MetricName)
}

// MetricKey normalizes a metric name for lookups: lower case, letters and digits only.
// "eNPS (Employee Engagement)" and "enps employee-engagement" share the key "enpsemployeeengagement".
func MetricKey(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// MetricFilter narrows a metric listing. Zero values mean "any".
type MetricFilter struct {
	Quarter  Quarter
	Year     int
	Category string
}
