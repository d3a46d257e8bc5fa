package chat_test

import (
	"sync"
	"testing"

	"github.com/psicoconecta/portal/internal/portal/chat"
	"github.com/stretchr/testify/require"
)

type stubSession struct {
	name string
}

func (s *stubSession) Deliver(event any) error { return nil }

func TestRegistryRegisterLookup(t *testing.T) {
	t.Parallel()

	r := chat.NewMemoryRegistry()

	_, ok := r.Lookup("u1")
	require.False(t, ok)

	s := &stubSession{name: "first"}
	r.Register("u1", s)

	got, ok := r.Lookup("u1")
	require.True(t, ok)
	require.Same(t, s, got)
}

func TestRegistryLastRegisteredWins(t *testing.T) {
	t.Parallel()

	r := chat.NewMemoryRegistry()

	first := &stubSession{name: "first"}
	second := &stubSession{name: "second"}
	r.Register("u1", first)
	r.Register("u1", second)

	got, ok := r.Lookup("u1")
	require.True(t, ok)
	require.Same(t, second, got)
}

func TestRegistryUnregisterIsIdempotent(t *testing.T) {
	t.Parallel()

	r := chat.NewMemoryRegistry()
	r.Register("u1", &stubSession{})

	r.Unregister("u1")
	_, ok := r.Lookup("u1")
	require.False(t, ok)

	// Absent and repeated unregisters must not panic or error.
	r.Unregister("u1")
	r.Unregister("never-registered")
}

func TestRegistryConcurrentAccess(t *testing.T) {
	t.Parallel()

	r := chat.NewMemoryRegistry()

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(3)
		id := string(rune('a' + i%10))
		go func() {
			defer wg.Done()
			r.Register(id, &stubSession{})
		}()
		go func() {
			defer wg.Done()
			r.Lookup(id)
		}()
		go func() {
			defer wg.Done()
			r.Unregister(id)
		}()
	}
	wg.Wait()
}
