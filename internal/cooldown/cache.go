package cooldown

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// lastRollEntry wraps a possibly absent last roll time so that "never rolled"
// can be cached too
type lastRollEntry struct {
	at *time.Time
}

// lastRollCache is a short-lived LRU of last roll times used by status reads.
// The roll path never consults it.
type lastRollCache struct {
	mu  sync.Mutex
	lru *expirable.LRU[string, lastRollEntry]
}

func newLastRollCache(size int, ttl time.Duration) *lastRollCache {
	return &lastRollCache{
		lru: expirable.NewLRU[string, lastRollEntry](size, nil, ttl),
	}
}

func (c *lastRollCache) Get(userID string) (*time.Time, bool) {
	entry, found := c.lru.Get(userID)
	if !found {
		return nil, false
	}
	return entry.at, true
}

// Set records at unless a later roll time is already cached. A status read
// that raced a committing roll must not replace the roll's time.
func (c *lastRollCache) Set(userID string, at *time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if cur, found := c.lru.Peek(userID); found && cur.at != nil {
		if at == nil || at.Before(*cur.at) {
			return
		}
	}
	if at != nil {
		t := *at
		at = &t
	}
	c.lru.Add(userID, lastRollEntry{at: at})
}

func (c *lastRollCache) Invalidate(userID string) {
	c.lru.Remove(userID)
}
