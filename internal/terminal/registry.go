package terminal

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Registry maps session ids to terminals. Terminals are created at login and dropped at logout.
type Registry struct {
	mu        sync.RWMutex
	terminals map[uuid.UUID]*Terminal
}

func NewRegistry() *Registry {
	return &Registry{terminals: make(map[uuid.UUID]*Terminal)}
}

func (r *Registry) Create(sessionID uuid.UUID, staff Staff) *Terminal {
	t := New(sessionID, staff)

	r.mu.Lock()
	r.terminals[sessionID] = t
	r.mu.Unlock()

	return t
}

func (r *Registry) Get(sessionID uuid.UUID) (*Terminal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.terminals[sessionID]
	if !ok {
		return nil, ErrNoTerminal
	}

	return t, nil
}

func (r *Registry) Remove(sessionID uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.terminals, sessionID)
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.terminals)
}

// Sweep drops terminals idle for longer than maxIdle and returns their session ids.
func (r *Registry) Sweep(maxIdle time.Duration) []uuid.UUID {
	cutoff := time.Now().Add(-maxIdle)

	r.mu.Lock()
	defer r.mu.Unlock()

	var dropped []uuid.UUID

	for id, t := range r.terminals {
		if t.idleSince().Before(cutoff) {
			delete(r.terminals, id)
			dropped = append(dropped, id)
		}
	}

	return dropped
}
