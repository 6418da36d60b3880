package domain

// ModifierNone is the stored key for a roll without a modifier.
// It is a real value, never a wildcard, so (rarity, none) and
// (rarity, Holographic) are different inventory rows.
const ModifierNone = ""

// InventoryEntry is one unique (rarity, modifier) combination a user has rolled
type InventoryEntry struct {
	Rarity   int64  `json:"rarity"`
	Modifier string `json:"modifier"` // ModifierNone when absent
	Count    int    `json:"count"`
}

// HasModifier reports whether the entry carries a modifier
func (e InventoryEntry) HasModifier() bool {
	return e.Modifier != ModifierNone
}

// Inventory is a user's ledger ordered rarest first
type Inventory struct {
	Entries []InventoryEntry `json:"entries"`
	Rarest  int64            `json:"rarest"`
}
