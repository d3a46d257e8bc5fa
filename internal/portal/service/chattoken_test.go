package service

import (
	"context"
	"testing"
	"time"

	"github.com/psicoconecta/portal/internal/portal/domain"
	"github.com/psicoconecta/portal/pkg/jwtx"

	"github.com/stretchr/testify/require"
)

const testChatIssuer = "psicoconecta-ws"

func newChatTokenService(t *testing.T) (*ChatTokenService, domain.User) {
	t.Helper()

	st := newTestStore(t)
	secret := []byte("test-secret-32-bytes-long-enough")

	svc := &ChatTokenService{
		Store:    st,
		Signer:   jwtx.NewSignerHS256(secret),
		Verifier: jwtx.NewVerifierHS256(secret, testChatIssuer),
		Issuer:   testChatIssuer,
		TTL:      jwtx.DefaultChatTokenTTL,
	}
	return svc, seedUser(t, st, domain.RolePatient, "pw")
}

func TestChatTokenRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc, user := newChatTokenService(t)

	token, err := svc.Issue(ctx, user.ID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	admitted, err := svc.Admit(ctx, token)
	require.NoError(t, err)
	require.Equal(t, user.ID, admitted.ID)
	require.Equal(t, domain.RolePatient, admitted.Role)
}

func TestChatTokenExpired(t *testing.T) {
	ctx := context.Background()
	svc, user := newChatTokenService(t)
	svc.TTL = -time.Minute

	token, err := svc.Issue(ctx, user.ID)
	require.NoError(t, err)

	_, err = svc.Admit(ctx, token)
	require.ErrorIs(t, err, ErrAuthRejected)
}

func TestChatTokenUnknownSubject(t *testing.T) {
	ctx := context.Background()
	svc, _ := newChatTokenService(t)

	_, err := svc.Issue(ctx, "nonexistent")
	require.ErrorIs(t, err, ErrAuthRejected)
}

func TestChatTokenGarbage(t *testing.T) {
	ctx := context.Background()
	svc, _ := newChatTokenService(t)

	_, err := svc.Admit(ctx, "not.a.token")
	require.ErrorIs(t, err, ErrAuthRejected)
}

func TestChatTokenWrongIssuer(t *testing.T) {
	ctx := context.Background()
	svc, user := newChatTokenService(t)

	// A session token signed with the same secret but a different issuer
	// tag must not open a socket.
	claims := jwtx.NewClaims(user.ID, user.Role.String(), "psicoconecta-api", time.Hour, time.Now().UTC())
	token, err := svc.Signer.Sign(claims)
	require.NoError(t, err)

	_, err = svc.Admit(ctx, token)
	require.ErrorIs(t, err, ErrAuthRejected)
}

func TestChatTokenWrongSecret(t *testing.T) {
	ctx := context.Background()
	svc, user := newChatTokenService(t)

	forged := jwtx.NewSignerHS256([]byte("some-other-secret-entirely-here!"))
	claims := jwtx.NewClaims(user.ID, user.Role.String(), testChatIssuer, time.Hour, time.Now().UTC())
	token, err := forged.Sign(claims)
	require.NoError(t, err)

	_, err = svc.Admit(ctx, token)
	require.ErrorIs(t, err, ErrAuthRejected)
}
