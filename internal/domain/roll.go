package domain

import "time"

// Cooldown defaults
const (
	// RollCooldownDuration is the minimum wait between two admitted rolls
	RollCooldownDuration = 10 * time.Second
)

// RollResult is the outcome of one admitted roll
type RollResult struct {
	BaseRarity int64  `json:"base_rarity"`
	Multiplier int64  `json:"multiplier"`
	Rarity     int64  `json:"rarity"`   // BaseRarity * Multiplier
	Modifier   string `json:"modifier"` // ModifierNone when absent
	Gradient   string `json:"gradient"` // display only, empty when absent
	Message    string `json:"message"`
}

// HasModifier reports whether the roll carries a modifier
func (r RollResult) HasModifier() bool {
	return r.Modifier != ModifierNone
}

// CooldownStatus is the gate state for one user at one instant
type CooldownStatus struct {
	OnCooldown bool          `json:"on_cooldown"`
	Remaining  time.Duration `json:"remaining"`
}
