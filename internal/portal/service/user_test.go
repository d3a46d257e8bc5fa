package service

import (
	"context"
	"testing"
	"time"

	"github.com/psicoconecta/portal/internal/portal/domain"

	"github.com/stretchr/testify/require"
)

func TestUserServiceUpdateProfile(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &UserService{Store: st}

	user := seedUser(t, st, domain.RolePatient, "pw")

	t.Run("PartialUpdate", func(t *testing.T) {
		dob := time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC)
		got, err := svc.UpdateProfile(ctx, user.ID, ProfileUpdate{
			FirstName:   strPtr("Ana"),
			Phone:       strPtr("+34 600 111 222"),
			DateOfBirth: &dob,
		})
		require.NoError(t, err)
		require.Equal(t, "Ana", got.FirstName)
		require.Equal(t, user.LastName, got.LastName, "untouched fields keep their value")
		require.Equal(t, "+34 600 111 222", got.Phone)
		require.NotNil(t, got.DateOfBirth)
		require.True(t, dob.Equal(*got.DateOfBirth))
	})

	t.Run("IdentityImmutable", func(t *testing.T) {
		got, err := svc.GetUser(ctx, user.ID)
		require.NoError(t, err)
		require.Equal(t, user.Email, got.Email)
		require.Equal(t, user.Role, got.Role)
		require.Equal(t, user.PasswordHash, got.PasswordHash)
	})

	t.Run("PersonalNotes", func(t *testing.T) {
		got, err := svc.UpdatePersonalNotes(ctx, user.ID, "prefers morning sessions")
		require.NoError(t, err)
		require.Equal(t, "prefers morning sessions", got.PersonalNotes)
	})
}
