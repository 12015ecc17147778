// internal/app/system/userset/manager.go
package userset

import (
	"sync"
	"time"
)

// defaultTTL bounds how long an idle working set is kept before the
// janitor drops it. A dropped set is rebuilt by the next full fetch.
const defaultTTL = 30 * time.Minute

type entry struct {
	set      *Set
	lastUsed time.Time
}

// Manager hands out working sets keyed by the session's set id. One
// Manager lives for the process; sets are dropped on logout, on
// session expiry, and by TTL for sessions that simply went away.
type Manager struct {
	mu   sync.Mutex
	sets map[string]*entry
	ttl  time.Duration
}

// NewManager constructs an empty Manager.
func NewManager() *Manager {
	return &Manager{
		sets: make(map[string]*entry),
		ttl:  defaultTTL,
	}
}

// Get returns the working set for key, creating it if needed.
func (m *Manager) Get(key string) *Set {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sweep()

	e, ok := m.sets[key]
	if !ok {
		e = &entry{set: &Set{}}
		m.sets[key] = e
	}
	e.lastUsed = time.Now()
	return e.set
}

// Drop discards the working set for key, if any.
func (m *Manager) Drop(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sets, key)
}

// sweep drops idle sets. Caller holds m.mu.
func (m *Manager) sweep() {
	cutoff := time.Now().Add(-m.ttl)
	for k, e := range m.sets {
		if e.lastUsed.Before(cutoff) {
			delete(m.sets, k)
		}
	}
}
