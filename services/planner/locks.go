// File: services/planner/locks.go
package planner

import "sync"

// conversationLocks serializes turns per conversation id. Two turns for the
// same conversation racing on the stored record would both read the same
// stage and both try to transition; holding the lock for the whole turn
// closes that hazard. Turns of different conversations never contend.
//
// Entries are reference counted and evicted once the last holder or waiter
// releases, so the map never outgrows the set of conversations currently
// in flight.
type conversationLocks struct {
	mu    sync.Mutex
	locks map[string]*lockEntry
}

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

func newConversationLocks() *conversationLocks {
	return &conversationLocks{locks: make(map[string]*lockEntry)}
}

// Lock blocks until this conversation's previous turn has finished.
func (c *conversationLocks) Lock(id string) {
	c.mu.Lock()
	e, exists := c.locks[id]
	if !exists {
		e = &lockEntry{}
		c.locks[id] = e
	}
	e.refs++
	c.mu.Unlock()

	e.mu.Lock()
}

func (c *conversationLocks) Unlock(id string) {
	c.mu.Lock()
	e := c.locks[id]
	e.refs--
	if e.refs == 0 {
		delete(c.locks, id)
	}
	c.mu.Unlock()

	e.mu.Unlock()
}
