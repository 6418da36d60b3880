// Package memory is an in-process implementation of repository.Roll for
// local development and tests. Each user has a roll lock that a RollTx holds
// from BeginRollTx until Commit or Rollback, matching the PostgreSQL advisory
// lock semantics. Writes are staged and applied only on Commit.
package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/osse101/RarityRoll_Go/internal/domain"
	"github.com/osse101/RarityRoll_Go/internal/inventory"
	"github.com/osse101/RarityRoll_Go/internal/repository"
)

// ErrTxDone is returned when a finished transaction is used again
var ErrTxDone = errors.New("transaction has already been committed or rolled back")

type inventoryKey struct {
	rarity   int64
	modifier string
}

// Store implements repository.Roll in memory
type Store struct {
	mu        sync.Mutex
	lastRolls map[string]time.Time
	ledgers   map[string]map[inventoryKey]int
	locks     map[string]chan struct{}

	commitErr error // injected failure for tests
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		lastRolls: make(map[string]time.Time),
		ledgers:   make(map[string]map[inventoryKey]int),
		locks:     make(map[string]chan struct{}),
	}
}

// FailCommits makes every following Commit fail with err (nil restores normal behavior)
func (s *Store) FailCommits(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.commitErr = err
}

// SetLastRollTime seeds a user's last roll time outside any roll
func (s *Store) SetLastRollTime(userID string, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastRolls[userID] = at
}

func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (s *Store) GetLastRollTime(ctx context.Context, userID string) (*time.Time, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastRollLocked(userID), nil
}

func (s *Store) GetInventory(ctx context.Context, userID string) ([]domain.InventoryEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	ledger := s.ledgers[userID]
	entries := make([]domain.InventoryEntry, 0, len(ledger))
	for k, count := range ledger {
		entries = append(entries, domain.InventoryEntry{Rarity: k.rarity, Modifier: k.modifier, Count: count})
	}
	inventory.SortEntries(entries)
	return entries, nil
}

func (s *Store) BeginRollTx(ctx context.Context, userID string) (repository.RollTx, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	lock := s.userLock(userID)
	select {
	case lock <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	return &rollTx{
		store:  s,
		userID: userID,
		lock:   lock,
		staged: make(map[inventoryKey]int),
	}, nil
}

func (s *Store) userLock(userID string) chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[userID]
	if !ok {
		lock = make(chan struct{}, 1)
		s.locks[userID] = lock
	}
	return lock
}

// lastRollLocked requires s.mu
func (s *Store) lastRollLocked(userID string) *time.Time {
	t, ok := s.lastRolls[userID]
	if !ok {
		return nil
	}
	return &t
}

type rollTx struct {
	store  *Store
	userID string
	lock   chan struct{}
	done   bool

	lastRoll *time.Time
	staged   map[inventoryKey]int
}

func (tx *rollTx) GetLastRollTimeForUpdate(ctx context.Context, userID string) (*time.Time, error) {
	if tx.done {
		return nil, ErrTxDone
	}
	if tx.lastRoll != nil && userID == tx.userID {
		t := *tx.lastRoll
		return &t, nil
	}
	tx.store.mu.Lock()
	defer tx.store.mu.Unlock()
	return tx.store.lastRollLocked(userID), nil
}

func (tx *rollTx) SetLastRollTime(ctx context.Context, userID string, at time.Time) error {
	if tx.done {
		return ErrTxDone
	}
	tx.lastRoll = &at
	return nil
}

func (tx *rollTx) UpsertInventory(ctx context.Context, userID string, rarity int64, modifier string) (int, error) {
	if tx.done {
		return 0, ErrTxDone
	}
	key := inventoryKey{rarity: rarity, modifier: modifier}
	tx.staged[key]++

	tx.store.mu.Lock()
	committed := tx.store.ledgers[tx.userID][key]
	tx.store.mu.Unlock()

	return committed + tx.staged[key], nil
}

func (tx *rollTx) Commit(ctx context.Context) error {
	if tx.done {
		return ErrTxDone
	}
	defer tx.release()

	s := tx.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.commitErr != nil {
		return s.commitErr
	}

	if tx.lastRoll != nil {
		s.lastRolls[tx.userID] = *tx.lastRoll
	}
	if len(tx.staged) > 0 {
		ledger, ok := s.ledgers[tx.userID]
		if !ok {
			ledger = make(map[inventoryKey]int)
			s.ledgers[tx.userID] = ledger
		}
		for k, n := range tx.staged {
			ledger[k] += n
		}
	}
	return nil
}

func (tx *rollTx) Rollback(ctx context.Context) error {
	if tx.done {
		return nil
	}
	tx.release()
	return nil
}

func (tx *rollTx) release() {
	tx.done = true
	<-tx.lock
}
