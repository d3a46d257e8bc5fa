// Package chat holds the transport-agnostic pieces of the messaging core:
// the role policy, the live-connection registry, and the wire events. The
// WebSocket layer and the HTTP history endpoint both build on it.
package chat

import "github.com/psicoconecta/portal/internal/portal/domain"

// Allowed is the single authorization decision for direct messaging: a
// patient and a psychologist may talk to each other, nothing else may.
// Unknown roles always deny. Both the send path and the history path must
// call this same function so the policy cannot drift between them.
func Allowed(a, b domain.Role) bool {
	if !a.Valid() || !b.Valid() {
		return false
	}
	return a != b
}
