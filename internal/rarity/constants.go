package rarity

// Sampler bounds
const (
	// MinRarity is the smallest rarity the sampler can return ("1 in 2")
	MinRarity = 2

	// SafetyCeiling stops the walk once the rarity passes it. The value
	// returned at that point is SafetyCeiling+1. Not a probability-correct cap.
	SafetyCeiling = 1_000_000
)

// Modifier names
const (
	ModifierDeveloper   = "Developer"
	ModifierNegative    = "Negative"
	ModifierPolychrome  = "Polychrome"
	ModifierHolographic = "Holographic"
)

// Display gradients, passed through to clients untouched
const (
	GradientDeveloper   = "linear-gradient(135deg, #00ff00 0%, #ffff00 100%)"
	GradientNegative    = "linear-gradient(135deg, #000000 0%, #ffffff 100%)"
	GradientPolychrome  = "linear-gradient(135deg, #ff0000 0%, #ff7f00 16%, #ffff00 33%, #00ff00 50%, #0000ff 66%, #4b0082 83%, #9400d3 100%)"
	GradientHolographic = "linear-gradient(135deg, #00ff00 0%, #00bfff 100%)"
)
