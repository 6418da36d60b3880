package rarity

import (
	"github.com/osse101/RarityRoll_Go/internal/domain"
	"github.com/osse101/RarityRoll_Go/internal/rng"
)

// Modifier is a rare multiplicative overlay on a base rarity
type Modifier struct {
	Name       string
	Threshold  float64 // exclusive upper bound on the draw
	Multiplier int64
	Gradient   string
}

// IsNone reports whether this is the absent modifier
func (m Modifier) IsNone() bool {
	return m.Name == domain.ModifierNone
}

// None is returned when the draw clears every threshold
var None = Modifier{Name: domain.ModifierNone, Threshold: 1, Multiplier: 1}

// modifierTable is ordered rarest first. The thresholds are nested, so
// checking in this order turns them into a partition of [0, 1).
var modifierTable = [...]Modifier{
	{Name: ModifierDeveloper, Threshold: 0.00001, Multiplier: 100_000, Gradient: GradientDeveloper},
	{Name: ModifierNegative, Threshold: 0.001, Multiplier: 1_000, Gradient: GradientNegative},
	{Name: ModifierPolychrome, Threshold: 0.01, Multiplier: 100, Gradient: GradientPolychrome},
	{Name: ModifierHolographic, Threshold: 0.1, Multiplier: 10, Gradient: GradientHolographic},
}

// Modifiers returns the table rarest first
func Modifiers() []Modifier {
	out := make([]Modifier, len(modifierTable))
	copy(out[:], modifierTable[:])
	return out
}

// Classify maps a draw in [0, 1) to the rarest modifier whose threshold it is below
func Classify(d float64) Modifier {
	for _, m := range modifierTable {
		if d < m.Threshold {
			return m
		}
	}
	return None
}

// Draw samples a modifier independently of the base rarity
func Draw(src rng.Source) Modifier {
	return Classify(src.Float64())
}

// Lookup finds a modifier by its stored name. ModifierNone resolves to None.
func Lookup(name string) (Modifier, bool) {
	if name == domain.ModifierNone {
		return None, true
	}
	for _, m := range modifierTable {
		if m.Name == name {
			return m, true
		}
	}
	return Modifier{}, false
}

// Apply returns the true rarity for a base rarity under m
func (m Modifier) Apply(base int64) int64 {
	return base * m.Multiplier
}
