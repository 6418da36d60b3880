package cooldown

import (
	"time"

	"github.com/osse101/RarityRoll_Go/internal/domain"
)

// Evaluate decides whether a user whose last admitted roll happened at
// lastRoll may roll at now. Both the roll path and the status path go through
// here so they can never disagree.
//
// A last roll in the future (clock skew) counts as ready. While cooling the
// remaining time is (d - elapsed) mod d, which is zero at the instant of the
// previous roll.
func Evaluate(now time.Time, lastRoll *time.Time, d time.Duration) domain.CooldownStatus {
	if lastRoll == nil || d <= 0 {
		return domain.CooldownStatus{}
	}

	elapsed := now.Sub(*lastRoll)
	if elapsed < 0 || elapsed >= d {
		return domain.CooldownStatus{}
	}

	return domain.CooldownStatus{
		OnCooldown: true,
		Remaining:  (d - elapsed) % d,
	}
}
