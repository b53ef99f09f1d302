package viewmodel

import (
	"github.com/jejakarbon/cli/internal/models"
)

// MilestoneView is a milestone with its progress bar percentage.
type MilestoneView struct {
	models.Milestone
	Percent int
}

// ChallengeView is a user challenge shaped for the daily-challenge screen.
type ChallengeView struct {
	models.UserChallenge
	Milestones []MilestoneView
	// Percent is progress toward the final milestone target.
	Percent int
}

// percentOf clamps current/target to 0..100.
func percentOf(current, target float64) int {
	if target <= 0 {
		return 0
	}
	p := int(current / target * 100)
	if p < 0 {
		p = 0
	}
	if p > 100 {
		p = 100
	}
	return p
}

// ChallengeProgress shapes one user challenge for display.
func ChallengeProgress(ch models.UserChallenge) ChallengeView {
	view := ChallengeView{UserChallenge: ch}

	var finalTarget float64
	for _, m := range ch.MilestoneProgress {
		view.Milestones = append(view.Milestones, MilestoneView{
			Milestone: m,
			Percent:   percentOf(ch.CurrentProgress, m.Target),
		})
		if m.Target > finalTarget {
			finalTarget = m.Target
		}
	}
	view.Percent = percentOf(ch.CurrentProgress, finalTarget)
	if ch.IsCompleted {
		view.Percent = 100
	}
	return view
}

// OverallProgress summarises a challenge list as completed count and a
// whole-list percentage for the overview card.
func OverallProgress(chs []models.UserChallenge) (completed, total, percent int) {
	total = len(chs)
	for _, ch := range chs {
		if ch.IsCompleted {
			completed++
		}
	}
	if total > 0 {
		percent = completed * 100 / total
	}
	return completed, total, percent
}
