package postgres

// Advisory Lock Constants
const (
	// RollLockNamespace prefixes user ids before hashing so roll locks never
	// collide with other advisory lock users of the same database
	RollLockNamespace = "roll:"

	// HashMaskPositiveInt64 keeps advisory lock keys positive
	HashMaskPositiveInt64 = 0x7FFFFFFFFFFFFFFF
)

// SQL Queries - Roll Transaction
const (
	SQLAdvisoryLock = `SELECT pg_advisory_xact_lock($1)`

	SQLEnsureUser = `
		INSERT INTO users (user_id)
		VALUES ($1)
		ON CONFLICT (user_id) DO NOTHING
	`

	SQLSelectLastRollTime = `
		SELECT last_roll_time
		FROM users
		WHERE user_id = $1
	`

	SQLSelectLastRollTimeForUpdate = SQLSelectLastRollTime + ` FOR UPDATE`

	SQLUpdateLastRollTime = `
		UPDATE users
		SET last_roll_time = $2
		WHERE user_id = $1
	`

	SQLUpsertInventory = `
		INSERT INTO inventory (user_id, rarity, modifier, count)
		VALUES ($1, $2, $3, 1)
		ON CONFLICT (user_id, rarity, modifier) DO UPDATE
		SET count = inventory.count + 1
		RETURNING count
	`

	SQLSelectInventory = `
		SELECT rarity, modifier, count
		FROM inventory
		WHERE user_id = $1
		ORDER BY rarity DESC, modifier ASC
	`
)

// Error Messages - Roll Operations
const (
	ErrMsgFailedToBeginTransaction = "failed to begin roll transaction"
	ErrMsgFailedToAcquireLock      = "failed to acquire roll lock"
	ErrMsgFailedToEnsureUser       = "failed to ensure user row"
	ErrMsgFailedToGetLastRollTime  = "failed to get last roll time"
	ErrMsgFailedToSetLastRollTime  = "failed to set last roll time"
	ErrMsgFailedToUpsertInventory  = "failed to upsert inventory entry"
	ErrMsgFailedToGetInventory     = "failed to get inventory"
	ErrMsgFailedToScanInventory    = "failed to scan inventory row"
	ErrMsgFailedToCommit           = "failed to commit roll transaction"
)
