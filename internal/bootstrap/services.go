package bootstrap

import (
	"github.com/osse101/RarityRoll_Go/internal/config"
	"github.com/osse101/RarityRoll_Go/internal/cooldown"
	"github.com/osse101/RarityRoll_Go/internal/event"
	"github.com/osse101/RarityRoll_Go/internal/inventory"
	"github.com/osse101/RarityRoll_Go/internal/repository"
	"github.com/osse101/RarityRoll_Go/internal/rng"
	"github.com/osse101/RarityRoll_Go/internal/roll"
)

// InitializeRollService composes the cooldown gate and ledger over store
func InitializeRollService(cfg *config.Config, store repository.Roll, src rng.Source, bus event.Bus) roll.Service {
	cooldownSvc := cooldown.NewService(store, cooldown.Config{
		DevMode:   cfg.DevMode,
		Duration:  cfg.EffectiveRollCooldown(),
		CacheSize: cfg.CooldownCacheSize,
		CacheTTL:  cfg.CooldownCacheTTL,
	})
	return roll.NewService(cooldownSvc, inventory.NewService(store), src, bus)
}
