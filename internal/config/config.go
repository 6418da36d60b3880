package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int    `env:"PORT" envDefault:"8080" validate:"min=1,max=65535"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn warning error DEBUG INFO WARN WARNING ERROR"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"text" validate:"oneof=text json"`
	Environment string `env:"ENVIRONMENT" envDefault:"dev"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"rarity-roll"`
	Version     string `env:"VERSION" envDefault:"dev"`

	StorageDriver string `env:"STORAGE_DRIVER" envDefault:"postgres" validate:"oneof=postgres memory"`
	AutoMigrate   bool   `env:"AUTO_MIGRATE" envDefault:"true"`

	DBUser        string        `env:"DB_USER" envDefault:"postgres"`
	DBPassword    string        `env:"DB_PASSWORD" envDefault:"postgres"`
	DBHost        string        `env:"DB_HOST" envDefault:"localhost"`
	DBPort        string        `env:"DB_PORT" envDefault:"5432" validate:"numeric"`
	DBName        string        `env:"DB_NAME" envDefault:"rarityroll"`
	DBSSLMode     string        `env:"DB_SSLMODE" envDefault:"disable" validate:"oneof=disable allow prefer require verify-ca verify-full"`
	DBMaxConns    int           `env:"DB_MAX_CONNS" envDefault:"20" validate:"min=1"`
	DBMaxIdle     time.Duration `env:"DB_MAX_IDLE" envDefault:"5m"`
	DBMaxLifetime time.Duration `env:"DB_MAX_LIFETIME" envDefault:"30m"`

	SessionSecret string        `env:"SESSION_SECRET,required" validate:"min=32"`
	SessionCookie string        `env:"SESSION_COOKIE" envDefault:"session"`
	SessionTTL    time.Duration `env:"SESSION_TTL" envDefault:"24h" validate:"gt=0"`

	RollCooldown      time.Duration `env:"ROLL_COOLDOWN" envDefault:"10s" validate:"gt=0"`
	DevMode           bool          `env:"DEV_MODE" envDefault:"false"`
	CooldownCacheSize int           `env:"COOLDOWN_CACHE_SIZE" envDefault:"10000" validate:"min=0"`
	CooldownCacheTTL  time.Duration `env:"COOLDOWN_CACHE_TTL" envDefault:"2s" validate:"min=0"`

	SentryDSN      string   `env:"SENTRY_DSN"`
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`
}

// Load reads .env when present, then the process environment, and validates the result
func Load() (*Config, error) {
	// a missing .env is fine, real env vars may be set
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgParseEnv, err)
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// EffectiveRollCooldown is ROLL_COOLDOWN in the dev and test environments and
// FixedRollCooldown everywhere else
func (c *Config) EffectiveRollCooldown() time.Duration {
	if c.cooldownOverridable() {
		return c.RollCooldown
	}
	return FixedRollCooldown
}

func (c *Config) cooldownOverridable() bool {
	return c.Environment == EnvironmentDev || c.Environment == EnvironmentTest
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     c.DBHost + ":" + c.DBPort,
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=" + c.DBSSLMode,
	}
	return u.String()
}
