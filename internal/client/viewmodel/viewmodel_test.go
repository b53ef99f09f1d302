package viewmodel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jejakarbon/cli/internal/models"
)

func TestArrow_FollowsIsIncreaseOnly(t *testing.T) {
	// Direction comes from the server flag, never the numeric sign.
	up := models.AverageStat{PercentageChange: -12.5, IsIncrease: true}
	down := models.AverageStat{PercentageChange: 40, IsIncrease: false}

	assert.Equal(t, "↑", Arrow(up.IsIncrease))
	assert.Equal(t, "↓", Arrow(down.IsIncrease))
	assert.Contains(t, FormatDelta(up), "↑")
	assert.Contains(t, FormatDelta(down), "↓")
}

func TestFormatDelta(t *testing.T) {
	stat := models.AverageStat{Value: 2.4, PercentageChange: 12, ComparisonPeriod: "yesterday", IsIncrease: false}
	assert.Equal(t, "↓ 12.0% vs yesterday", FormatDelta(stat))
}

func TestTrendFor(t *testing.T) {
	dash := &models.Dashboard{
		CarbonTrend: map[string][]models.TrendPoint{
			"7_days": {{Label: "Mon", Value: 1}},
		},
	}

	assert.Len(t, TrendFor(dash, "7_days"), 1)
	assert.Empty(t, TrendFor(dash, "1_year"))
	assert.Empty(t, TrendFor(nil, "7_days"))
	assert.Empty(t, TrendFor(&models.Dashboard{}, "7_days"))
}

func TestGroupByDay(t *testing.T) {
	now := time.Date(2025, 6, 10, 15, 0, 0, 0, time.UTC)
	entries := []models.Activity{
		{ID: "1", CreatedAt: "2025-06-10T08:00:00Z", CarbonOutput: 1.2},
		{ID: "2", CreatedAt: "2025-06-10T12:30:00Z", CarbonOutput: 0.8},
		{ID: "3", CreatedAt: "2025-06-10T19:00:00Z", CarbonOutput: 1.5},
		{ID: "4", CreatedAt: "2025-06-09T10:00:00Z", CarbonOutput: 2.0},
		{ID: "5", CreatedAt: "2025-06-09T22:00:00Z", CarbonOutput: 0.5},
	}

	groups := GroupByDay(entries, now)
	require.Len(t, groups, 2)

	// Most recent day first.
	assert.Equal(t, "Today", groups[0].Label)
	assert.Len(t, groups[0].Entries, 3)
	assert.InDelta(t, 3.5, groups[0].Total, 1e-9)

	assert.Equal(t, "Yesterday", groups[1].Label)
	assert.Len(t, groups[1].Entries, 2)
	assert.InDelta(t, 2.5, groups[1].Total, 1e-9)
}

func TestGroupByDay_OlderDayGetsWeekdayLabel(t *testing.T) {
	now := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	groups := GroupByDay([]models.Activity{
		{ID: "1", CreatedAt: "2025-06-02T09:00:00Z", CarbonOutput: 1},
	}, now)
	require.Len(t, groups, 1)
	assert.Equal(t, "Monday, Jun 2", groups[0].Label)
}

func TestGroupByDay_SkipsUnparseableAndEmpty(t *testing.T) {
	now := time.Now().UTC()
	groups := GroupByDay([]models.Activity{
		{ID: "bad", CreatedAt: "not-a-date", CarbonOutput: 9},
	}, now)
	assert.Empty(t, groups)

	assert.Empty(t, GroupByDay(nil, now))
}

func TestOverlayBadges(t *testing.T) {
	all := []models.Badge{{ID: "A"}, {ID: "B"}, {ID: "C"}}

	got := OverlayBadges(all, []models.Badge{{ID: "B"}})
	require.Len(t, got, 3)
	assert.False(t, got[0].Unlocked)
	assert.True(t, got[1].Unlocked)
	assert.False(t, got[2].Unlocked)
}

func TestOverlayBadges_NilEarnedLocksEverything(t *testing.T) {
	all := []models.Badge{{ID: "A"}, {ID: "B"}, {ID: "C"}}

	// Failed user-badges fetch or anonymous user: full list still
	// renders, all locked.
	got := OverlayBadges(all, nil)
	require.Len(t, got, 3)
	for _, b := range got {
		assert.False(t, b.Unlocked)
	}
}

func TestChallengeProgress(t *testing.T) {
	ch := models.UserChallenge{
		CurrentProgress: 5,
		MilestoneProgress: []models.Milestone{
			{Target: 5, IsAchieved: true},
			{Target: 10},
		},
	}

	view := ChallengeProgress(ch)
	require.Len(t, view.Milestones, 2)
	assert.Equal(t, 100, view.Milestones[0].Percent)
	assert.Equal(t, 50, view.Milestones[1].Percent)
	assert.Equal(t, 50, view.Percent)
}

func TestChallengeProgress_ClampsAndCompletes(t *testing.T) {
	over := ChallengeProgress(models.UserChallenge{
		CurrentProgress:   25,
		MilestoneProgress: []models.Milestone{{Target: 10}},
	})
	assert.Equal(t, 100, over.Percent)

	done := ChallengeProgress(models.UserChallenge{IsCompleted: true})
	assert.Equal(t, 100, done.Percent)

	zero := ChallengeProgress(models.UserChallenge{CurrentProgress: 3})
	assert.Equal(t, 0, zero.Percent)
}

func TestOverallProgress(t *testing.T) {
	chs := []models.UserChallenge{
		{IsCompleted: true},
		{IsCompleted: true},
		{IsCompleted: true},
		{},
	}
	completed, total, percent := OverallProgress(chs)
	assert.Equal(t, 3, completed)
	assert.Equal(t, 4, total)
	assert.Equal(t, 75, percent)

	completed, total, percent = OverallProgress(nil)
	assert.Zero(t, completed)
	assert.Zero(t, total)
	assert.Zero(t, percent)
}
