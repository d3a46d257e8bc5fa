package service

import (
	"context"
	"errors"
	"time"

	"github.com/psicoconecta/portal/internal/portal/domain"
	"github.com/psicoconecta/portal/internal/portal/store"
	"github.com/psicoconecta/portal/pkg/cryptox"
	"github.com/psicoconecta/portal/pkg/jwtx"
	"github.com/psicoconecta/portal/pkg/slogx"
)

var ErrInvalidCredentials = errors.New("invalid_credentials")

// SessionService handles password login and session token issuance.
type SessionService struct {
	Store  store.Store
	Signer jwtx.Signer
	Issuer string
	TTL    time.Duration
}

// Login verifies the email/password pair and returns a signed session
// token plus the authenticated user. Unknown emails and wrong passwords
// are indistinguishable to the caller.
func (s *SessionService) Login(ctx context.Context, email, password string) (string, domain.User, error) {
	l := slogx.FromContext(ctx)

	u, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", domain.User{}, ErrInvalidCredentials
		}
		return "", domain.User{}, err
	}

	if err := cryptox.VerifyPassword(password, u.PasswordHash); err != nil {
		l.Info("login failed", "user_id", u.ID)
		return "", domain.User{}, ErrInvalidCredentials
	}

	claims := jwtx.NewClaims(u.ID, u.Role.String(), s.Issuer, s.TTL, time.Now().UTC())
	claims.Email = u.Email
	claims.Name = u.FirstName + " " + u.LastName

	token, err := s.Signer.Sign(claims)
	if err != nil {
		return "", domain.User{}, err
	}

	return token, u, nil
}
