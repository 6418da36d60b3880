package cooldown

import (
	"time"

	"github.com/osse101/RarityRoll_Go/internal/domain"
)

// Config holds cooldown service configuration
type Config struct {
	// DevMode bypasses the gate but still records roll times
	DevMode bool

	// Duration overrides the roll cooldown; zero means domain.RollCooldownDuration
	Duration time.Duration

	// CacheSize and CacheTTL size the status read cache; a zero size disables it
	CacheSize int
	CacheTTL  time.Duration
}

// GetCooldownDuration returns the effective roll cooldown
func (c *Config) GetCooldownDuration() time.Duration {
	if c.Duration > 0 {
		return c.Duration
	}
	return domain.RollCooldownDuration
}
