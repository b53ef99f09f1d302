package viewmodel

import (
	"sort"
	"time"

	"github.com/jejakarbon/cli/internal/models"
)

// DayGroup is one calendar day of activity history.
type DayGroup struct {
	// Date is the date-only key, midnight UTC.
	Date time.Time
	// Label is the display heading ("Today", "Yesterday", "Monday, Jan 2").
	Label string
	// Entries are the day's activities in fetch order.
	Entries []models.Activity
	// Total is the sum of the entries' carbon output.
	Total float64
}

// timestamp layouts the API has been seen emitting.
var createdAtLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseCreatedAt(s string) (time.Time, bool) {
	for _, layout := range createdAtLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// GroupByDay buckets entries by the calendar day of created_at, most
// recent day first, each with its carbon total. Days without entries
// never appear; entries whose timestamp cannot be parsed are dropped
// rather than poisoning the whole view. now anchors the Today and
// Yesterday labels.
func GroupByDay(entries []models.Activity, now time.Time) []DayGroup {
	buckets := make(map[time.Time][]models.Activity)
	for _, e := range entries {
		t, ok := parseCreatedAt(e.CreatedAt)
		if !ok {
			continue
		}
		day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		buckets[day] = append(buckets[day], e)
	}

	groups := make([]DayGroup, 0, len(buckets))
	for day, list := range buckets {
		var total float64
		for _, e := range list {
			total += e.CarbonOutput
		}
		groups = append(groups, DayGroup{
			Date:    day,
			Label:   dayLabel(day, now),
			Entries: list,
			Total:   total,
		})
	}

	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Date.After(groups[j].Date)
	})
	return groups
}

func dayLabel(day, now time.Time) string {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	switch {
	case day.Equal(today):
		return "Today"
	case day.Equal(today.AddDate(0, 0, -1)):
		return "Yesterday"
	default:
		return day.Format("Monday, Jan 2")
	}
}
