package service

import (
	"context"
	"time"

	"github.com/psicoconecta/portal/internal/portal/domain"
	"github.com/psicoconecta/portal/internal/portal/store"
)

// ProfileUpdate is a partial profile change. Nil fields are left alone.
// Identity fields (id, email, role) and the password hash are not
// updatable through this path.
type ProfileUpdate struct {
	FirstName       *string
	LastName        *string
	Phone           *string
	DateOfBirth     *time.Time
	ProfileImageURL *string
	PersonalNotes   *string
}

// UserService covers profile reads and edits plus the practice-level user
// lookups (patient roster, default psychologist).
type UserService struct {
	Store store.Store
}

func (s *UserService) GetUser(ctx context.Context, id string) (domain.User, error) {
	return s.Store.Users().GetUserByID(ctx, id)
}

// UpdateProfile applies the non-nil fields of upd to the user's profile
// and returns the refreshed record.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, upd ProfileUpdate) (domain.User, error) {
	u, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return domain.User{}, err
	}

	if upd.FirstName != nil {
		u.FirstName = *upd.FirstName
	}
	if upd.LastName != nil {
		u.LastName = *upd.LastName
	}
	if upd.Phone != nil {
		u.Phone = *upd.Phone
	}
	if upd.DateOfBirth != nil {
		u.DateOfBirth = upd.DateOfBirth
	}
	if upd.ProfileImageURL != nil {
		u.ProfileImageURL = *upd.ProfileImageURL
	}
	if upd.PersonalNotes != nil {
		u.PersonalNotes = *upd.PersonalNotes
	}

	if err := s.Store.Users().UpdateUser(ctx, u); err != nil {
		return domain.User{}, err
	}

	return s.Store.Users().GetUserByID(ctx, userID)
}

// UpdatePersonalNotes replaces the user's private notes.
func (s *UserService) UpdatePersonalNotes(ctx context.Context, userID, notes string) (domain.User, error) {
	if err := s.Store.Users().UpdatePersonalNotes(ctx, userID, notes); err != nil {
		return domain.User{}, err
	}
	return s.Store.Users().GetUserByID(ctx, userID)
}

// ListPatients returns the patient roster, newest first.
func (s *UserService) ListPatients(ctx context.Context) ([]domain.User, error) {
	return s.Store.Users().ListPatients(ctx)
}

// GetDefaultPsychologist returns the practice's psychologist account.
func (s *UserService) GetDefaultPsychologist(ctx context.Context) (domain.User, error) {
	return s.Store.Users().GetDefaultPsychologist(ctx)
}
