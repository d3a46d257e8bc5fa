package service

import (
	"context"
	"testing"

	"github.com/psicoconecta/portal/internal/portal/domain"
	"github.com/psicoconecta/portal/pkg/jwtx"

	"github.com/stretchr/testify/require"
)

const testSessionIssuer = "psicoconecta-api"

func TestSessionLogin(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	secret := []byte("test-secret-32-bytes-long-enough")

	svc := &SessionService{
		Store:  st,
		Signer: jwtx.NewSignerHS256(secret),
		Issuer: testSessionIssuer,
		TTL:    jwtx.DefaultSessionTokenTTL,
	}
	verifier := jwtx.NewVerifierHS256(secret, testSessionIssuer)

	user := seedUser(t, st, domain.RolePatient, "correct horse battery staple")

	t.Run("Success", func(t *testing.T) {
		token, got, err := svc.Login(ctx, user.Email, "correct horse battery staple")
		require.NoError(t, err)
		require.Equal(t, user.ID, got.ID)

		claims, err := verifier.Verify(token)
		require.NoError(t, err)
		require.Equal(t, user.ID, claims.Subject)
		require.Equal(t, string(domain.RolePatient), claims.Role)
		require.Equal(t, user.Email, claims.Email)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		_, _, err := svc.Login(ctx, user.Email, "wrong")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "nobody@example.com", "whatever")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
