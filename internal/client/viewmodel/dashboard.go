// Package viewmodel turns raw API payloads into display-ready values.
// Everything here is a pure transformation; source data is never
// mutated and nothing talks to the network.
package viewmodel

import (
	"fmt"

	"github.com/jejakarbon/cli/internal/models"
)

// Timeframe pairs a server token with its display label.
type Timeframe struct {
	Token string
	Label string
}

// Timeframes returns the selectable trend windows, in display order.
func Timeframes() []Timeframe {
	return []Timeframe{
		{Token: "7_days", Label: "Last 7 days"},
		{Token: "1_month", Label: "Last month"},
		{Token: "3_months", Label: "Last 3 months"},
		{Token: "6_months", Label: "Last 6 months"},
		{Token: "1_year", Label: "Last year"},
	}
}

// TrendFor selects the series for a timeframe token. Changing the
// timeframe replaces the series wholesale; there is no merging. A
// missing key yields an empty series, not an error.
func TrendFor(d *models.Dashboard, timeframe string) []models.TrendPoint {
	if d == nil || d.CarbonTrend == nil {
		return nil
	}
	return d.CarbonTrend[timeframe]
}

// Arrow picks the indicator glyph from the server's is_increase field.
// The numeric sign of the percentage is deliberately ignored: whether
// "up" is good or bad depends on the category, and only the server
// knows which comparison was made.
func Arrow(isIncrease bool) string {
	if isIncrease {
		return "↑"
	}
	return "↓"
}

// FormatDelta renders an average stat's delta line, e.g.
// "↓ 12.0% vs yesterday".
func FormatDelta(stat models.AverageStat) string {
	s := fmt.Sprintf("%s %.1f%%", Arrow(stat.IsIncrease), stat.PercentageChange)
	if stat.ComparisonPeriod != "" {
		s += " vs " + stat.ComparisonPeriod
	}
	return s
}

// FormatKg renders a carbon amount for display.
func FormatKg(v float64) string {
	return fmt.Sprintf("%.1f kg CO₂", v)
}
