package openai

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/vfg2006/elt-dashboard-api/internal/domain"
)

const SystemPrompt = "You are a business intelligence analyst specializing in SaaS metrics. " +
	"Provide actionable insights and recommendations based on the dashboard data provided."

const promptInstructions = `
Please provide:
1. EXECUTIVE SUMMARY (2-3 sentences focusing on current performance and trends)
2. KEY INSIGHTS (3-5 bullet points highlighting both current metrics and QoQ changes)
3. AREAS OF CONCERN (red status items and declining trends)
4. RECOMMENDATIONS (actionable next steps based on current performance and trends)
5. TRENDS TO WATCH (metrics showing significant QoQ changes that need attention)

Format the response in clear, business-friendly language suitable for executive presentation.`

// BuildPrompt renders the user message: current key metrics first, then the
// quarter-over-quarter section when comparisons are present.
func BuildPrompt(input domain.NarrativeInput) string {
	var b strings.Builder

	b.WriteString("Please analyze the following SaaS dashboard metrics and provide insights:\n\n")

	if input.Period != nil {
		fmt.Fprintf(&b, "CURRENT QUARTER METRICS (%s %d):\n", input.Period.Quarter, input.Period.Year)
	} else {
		b.WriteString("CURRENT QUARTER METRICS:\n")
	}

	if len(input.KeyMetrics) == 0 {
		b.WriteString("- No metrics have been recorded yet.\n")
	}
	for _, metric := range input.KeyMetrics {
		b.WriteString(keyMetricLine(metric))
	}

	if len(input.QoQComparisons) > 0 {
		b.WriteString("\nQUARTER-OVER-QUARTER COMPARISON")
		if input.Period != nil {
			fmt.Fprintf(&b, " (%s %d vs Previous Quarter)", input.Period.Quarter, input.Period.Year)
		}
		b.WriteString(":\n")

		names := make([]string, 0, len(input.QoQComparisons))
		for name := range input.QoQComparisons {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			b.WriteString(comparisonLine(name, input.QoQComparisons[name]))
		}

		b.WriteString("\nAnalyze both the current quarter performance AND the quarter-over-quarter trends to provide comprehensive insights.\n")
	}

	b.WriteString(promptInstructions)

	return b.String()
}

func keyMetricLine(metric domain.KeyMetric) string {
	unit := ""
	if metric.Unit != nil {
		unit = " " + *metric.Unit
	}

	line := fmt.Sprintf("- %s: %s%s", metric.MetricName, formatNumber(metric.Value), unit)
	if metric.Target != nil {
		line += fmt.Sprintf(" (Target: %s%s)", formatNumber(*metric.Target), unit)
	}
	return line + " - Status: " + metric.Status + "\n"
}

func comparisonLine(name string, comparison domain.QoQComparison) string {
	if comparison.Change == nil || comparison.Current == nil || comparison.Previous == nil {
		return fmt.Sprintf("- %s: no previous quarter data\n", name)
	}

	change := *comparison.Change
	changeText := formatNumber(change)
	direction := "flat"
	switch {
	case change > 0:
		changeText = "+" + changeText
		direction = "up"
	case change < 0:
		direction = "down"
	}

	percent := "n/a"
	if comparison.ChangePercent != nil {
		percent = strconv.FormatFloat(*comparison.ChangePercent, 'f', 1, 64) + "%"
	}

	return fmt.Sprintf("- %s: %s (%s) %s - Current: %s, Previous: %s\n",
		name, changeText, percent, direction,
		recordValue(comparison.Current), recordValue(comparison.Previous))
}

func recordValue(record *domain.MetricRecord) string {
	value := formatNumber(record.MetricValue)
	if record.MetricUnit != nil && *record.MetricUnit != "" {
		value += " " + *record.MetricUnit
	}
	return value
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
