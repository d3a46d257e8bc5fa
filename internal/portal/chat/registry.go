package chat

import "sync"

// Session is a live, writable connection to one user. The registry only
// addresses sessions; it never owns them, so closing a connection is the
// transport's job, not the registry's.
type Session interface {
	// Deliver sends one event to the session. Implementations must be safe
	// for concurrent use; delivery failures are the caller's to handle.
	Deliver(event any) error
}

// Registry is the process-wide addressing table from user ID to live
// session. It is the only shared mutable state of the messaging core, so
// it is injected everywhere rather than reached as a global.
type Registry interface {
	// Register binds a user ID to a session. A second registration for the
	// same user replaces the first; the displaced session is left to close
	// on its own.
	Register(userID string, s Session)

	// Unregister removes the user's entry. Unregistering an absent user is
	// a no-op.
	Unregister(userID string)

	// Lookup returns the user's live session, if any.
	Lookup(userID string) (Session, bool)
}

// MemoryRegistry is the in-process Registry used by the single-instance
// portal. A plain mutex is enough: entries change only on connect and
// disconnect, lookups are per message.
type MemoryRegistry struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{sessions: make(map[string]Session)}
}

func (r *MemoryRegistry) Register(userID string, s Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[userID] = s
}

func (r *MemoryRegistry) Unregister(userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, userID)
}

func (r *MemoryRegistry) Lookup(userID string) (Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[userID]
	return s, ok
}
