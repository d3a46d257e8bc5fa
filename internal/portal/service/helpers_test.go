package service

import (
	"context"
	"sync"
	"testing"

	"github.com/psicoconecta/portal/internal/portal/domain"
	"github.com/psicoconecta/portal/internal/portal/store"
	"github.com/psicoconecta/portal/internal/portal/store/drivers/sqlite"
	"github.com/psicoconecta/portal/pkg/cryptox"
	"github.com/psicoconecta/portal/pkg/idx"

	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func seedUser(t *testing.T, s store.Store, role domain.Role, password string) domain.User {
	t.Helper()

	hash, err := cryptox.HashPassword(password)
	require.NoError(t, err)

	u := domain.User{
		ID:           idx.New().String(),
		Email:        idx.New().String() + "@example.com",
		FirstName:    "Test",
		LastName:     string(role),
		Role:         role,
		PasswordHash: hash,
	}
	require.NoError(t, s.Users().CreateUser(context.Background(), u))
	return u
}

// recordingSession captures delivered events for assertions.
type recordingSession struct {
	mu     sync.Mutex
	events []any
	err    error
}

func (r *recordingSession) Deliver(event any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.events = append(r.events, event)
	return nil
}

func (r *recordingSession) delivered() []any {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]any(nil), r.events...)
}
