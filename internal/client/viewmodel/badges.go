package viewmodel

import (
	"github.com/jejakarbon/cli/internal/models"
)

// BadgeStatus is a badge definition with the user's unlock overlay.
type BadgeStatus struct {
	models.Badge
	Unlocked bool
}

// OverlayBadges marks each badge unlocked when its id appears in the
// earned list. "Unlocked" is pure set membership, never stored
// redundantly. A nil earned list (anonymous user, failed fetch) means
// everything renders locked; the list itself still renders.
func OverlayBadges(all, earned []models.Badge) []BadgeStatus {
	earnedIDs := make(map[string]struct{}, len(earned))
	for _, b := range earned {
		earnedIDs[b.ID] = struct{}{}
	}

	out := make([]BadgeStatus, 0, len(all))
	for _, b := range all {
		_, unlocked := earnedIDs[b.ID]
		out = append(out, BadgeStatus{Badge: b, Unlocked: unlocked})
	}
	return out
}
