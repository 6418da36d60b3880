package config

import "time"

// Storage drivers
const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

// Environments where ROLL_COOLDOWN may differ from the fixed cooldown
const (
	EnvironmentDev  = "dev"
	EnvironmentTest = "test"
)

// FixedRollCooldown is the cooldown every other environment runs with
const FixedRollCooldown = 10 * time.Second

// Example values shipped in .env.example; running with them is allowed but warned about
const (
	ExampleDBPassword    = "change_this_secure_password"
	ExampleSessionSecret = "generate_with_openssl_rand_hex_32_generate_with"
)

// Error messages
const (
	ErrMsgParseEnv       = "parse env"
	ErrMsgInvalidConfig  = "invalid configuration"
	ErrFmtInvalidField   = "%s: failed %q"
	WarnMsgExamplePass   = "DB_PASSWORD appears to be using the example value - please use a secure password"
	WarnMsgExampleSecret = "SESSION_SECRET appears to be using the example value - generate one with: openssl rand -hex 32"
	WarnMsgDevMode       = "DEV_MODE is enabled outside the dev environment - the roll cooldown is bypassed"
	WarnFmtRollCooldown  = "ROLL_COOLDOWN=%s is ignored in the %q environment - using %s"
)
