package history

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Snapshot is one user's last successful load
type Snapshot struct {
	View     View
	LoadedAt time.Time
}

// Cache holds the latest snapshot per user. Snapshots are replaced whole,
// never edited in place. Safe for concurrent use.
type Cache struct {
	mu   sync.RWMutex
	byID map[uuid.UUID]Snapshot
}

// NewCache returns an empty cache; build one per process and pass it around
func NewCache() *Cache { return &Cache{byID: make(map[uuid.UUID]Snapshot)} }

// Get returns the user's snapshot
func (c *Cache) Get(user uuid.UUID) (Snapshot, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s, ok := c.byID[user]
	return s, ok
}

// Put replaces the user's snapshot
func (c *Cache) Put(user uuid.UUID, s Snapshot) {
	c.mu.Lock()
	c.byID[user] = s
	c.mu.Unlock()
}

// Drop forgets the user's snapshot so the next read reloads it
func (c *Cache) Drop(user uuid.UUID) {
	c.mu.Lock()
	delete(c.byID, user)
	c.mu.Unlock()
}

// Len is the number of cached users
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.byID)
}
