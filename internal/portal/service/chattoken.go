package service

import (
	"context"
	"errors"
	"time"

	"github.com/psicoconecta/portal/internal/portal/domain"
	"github.com/psicoconecta/portal/internal/portal/store"
	"github.com/psicoconecta/portal/pkg/jwtx"
	"github.com/psicoconecta/portal/pkg/slogx"
)

// ErrAuthRejected covers every way a chat connection token can fail
// admission: bad signature, expiry, wrong issuer, or a subject that no
// longer exists. Callers must not leak which one it was.
var ErrAuthRejected = errors.New("auth_rejected")

// ChatTokenService mints and verifies the short-lived connection tokens
// that gate the WebSocket endpoint. Tokens are single-purpose: they carry
// their own issuer tag and TTL, so a session token can never be used to
// open a socket.
type ChatTokenService struct {
	Store    store.Store
	Signer   jwtx.Signer
	Verifier jwtx.Verifier
	Issuer   string
	TTL      time.Duration
}

// Issue mints a connection token for the given user. The subject and role
// are re-read from the store so a stale session cannot mint a token for a
// deleted account.
func (s *ChatTokenService) Issue(ctx context.Context, userID string) (string, error) {
	u, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrAuthRejected
		}
		return "", err
	}

	claims := jwtx.NewClaims(u.ID, u.Role.String(), s.Issuer, s.TTL, time.Now().UTC())
	return s.Signer.Sign(claims)
}

// Admit verifies a connection token and resolves its subject to a live
// user record. Every failure collapses to ErrAuthRejected; the connection
// handler closes with the auth-failed code without saying why.
func (s *ChatTokenService) Admit(ctx context.Context, token string) (domain.User, error) {
	l := slogx.FromContext(ctx)

	claims, err := s.Verifier.Verify(token)
	if err != nil {
		l.Info("chat token rejected", "error", err)
		return domain.User{}, ErrAuthRejected
	}

	u, err := s.Store.Users().GetUserByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			l.Info("chat token subject no longer exists", "user_id", claims.Subject)
			return domain.User{}, ErrAuthRejected
		}
		return domain.User{}, err
	}

	return u, nil
}
