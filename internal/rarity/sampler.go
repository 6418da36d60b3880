// Package rarity draws base rarities and modifiers for a roll.
package rarity

import "github.com/osse101/RarityRoll_Go/internal/rng"

// Sample draws a base rarity >= MinRarity.
//
// Starting at r = 2 it draws uniformly from [1, r]; a 1 ends the walk at r,
// anything else moves on to r+1. P(k) = 1/(k(k-1)), which has no finite mean.
func Sample(src rng.Source) int64 {
	r := int64(MinRarity)
	for {
		if src.Int64N(r)+1 == 1 {
			return r
		}
		r++
		if r > SafetyCeiling {
			return r
		}
	}
}
