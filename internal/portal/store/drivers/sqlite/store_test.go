package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/psicoconecta/portal/internal/portal/domain"
	"github.com/psicoconecta/portal/internal/portal/store"
	"github.com/psicoconecta/portal/pkg/idx"

	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func seedUser(t *testing.T, s *Store, role domain.Role) domain.User {
	t.Helper()

	u := domain.User{
		ID:           idx.New().String(),
		Email:        idx.New().String() + "@example.com",
		FirstName:    "Test",
		LastName:     "User",
		Role:         role,
		PasswordHash: "$argon2id$v=19$m=65536,t=3,p=2$c2FsdA$aGFzaA",
	}
	require.NoError(t, s.Users().CreateUser(context.Background(), u))
	return u
}

func TestUsersRepo(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	patient := seedUser(t, s, domain.RolePatient)

	t.Run("GetUserByID", func(t *testing.T) {
		got, err := s.Users().GetUserByID(ctx, patient.ID)
		require.NoError(t, err)
		require.Equal(t, patient.Email, got.Email)
		require.Equal(t, domain.RolePatient, got.Role)
	})

	t.Run("GetUserByEmail", func(t *testing.T) {
		got, err := s.Users().GetUserByEmail(ctx, patient.Email)
		require.NoError(t, err)
		require.Equal(t, patient.ID, got.ID)
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := s.Users().GetUserByID(ctx, "missing")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("UpdateUser", func(t *testing.T) {
		patient.FirstName = "Updated"
		patient.Phone = "+34 600 000 000"
		require.NoError(t, s.Users().UpdateUser(ctx, patient))

		got, err := s.Users().GetUserByID(ctx, patient.ID)
		require.NoError(t, err)
		require.Equal(t, "Updated", got.FirstName)
		require.Equal(t, "+34 600 000 000", got.Phone)
	})

	t.Run("UpdatePersonalNotes", func(t *testing.T) {
		require.NoError(t, s.Users().UpdatePersonalNotes(ctx, patient.ID, "weekly sessions"))

		got, err := s.Users().GetUserByID(ctx, patient.ID)
		require.NoError(t, err)
		require.Equal(t, "weekly sessions", got.PersonalNotes)
	})

	t.Run("ListPatients", func(t *testing.T) {
		seedUser(t, s, domain.RolePsychologist)

		patients, err := s.Users().ListPatients(ctx)
		require.NoError(t, err)
		require.Len(t, patients, 1)
		require.Equal(t, domain.RolePatient, patients[0].Role)
	})

	t.Run("GetDefaultPsychologist", func(t *testing.T) {
		got, err := s.Users().GetDefaultPsychologist(ctx)
		require.NoError(t, err)
		require.Equal(t, domain.RolePsychologist, got.Role)
	})
}

func TestMessagesRepo(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	patient := seedUser(t, s, domain.RolePatient)
	psych := seedUser(t, s, domain.RolePsychologist)
	other := seedUser(t, s, domain.RolePatient)

	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	seedMsg := func(sender, receiver string, body string, at time.Time) domain.ChatMessage {
		m := domain.ChatMessage{
			ID:         idx.NewAt(at).String(),
			SenderID:   sender,
			ReceiverID: receiver,
			Message:    body,
			CreatedAt:  at,
		}
		require.NoError(t, s.Messages().CreateMessage(ctx, m))
		return m
	}

	seedMsg(patient.ID, psych.ID, "hello", base)
	seedMsg(psych.ID, patient.ID, "hi, how are you?", base.Add(time.Minute))
	seedMsg(patient.ID, psych.ID, "doing well", base.Add(2*time.Minute))
	seedMsg(other.ID, psych.ID, "unrelated", base.Add(3*time.Minute))

	t.Run("ListConversationBothDirections", func(t *testing.T) {
		msgs, err := s.Messages().ListConversation(ctx, patient.ID, psych.ID)
		require.NoError(t, err)
		require.Len(t, msgs, 3)

		// Chronological, oldest first.
		require.Equal(t, "hello", msgs[0].Message)
		require.Equal(t, "hi, how are you?", msgs[1].Message)
		require.Equal(t, "doing well", msgs[2].Message)
	})

	t.Run("ListConversationSymmetric", func(t *testing.T) {
		a, err := s.Messages().ListConversation(ctx, patient.ID, psych.ID)
		require.NoError(t, err)
		b, err := s.Messages().ListConversation(ctx, psych.ID, patient.ID)
		require.NoError(t, err)
		require.Equal(t, a, b)
	})

	t.Run("MarkConversationRead", func(t *testing.T) {
		// Psychologist reads the patient's messages. Only the
		// patient->psychologist direction flips.
		require.NoError(t, s.Messages().MarkConversationRead(ctx, psych.ID, patient.ID))

		msgs, err := s.Messages().ListConversation(ctx, patient.ID, psych.ID)
		require.NoError(t, err)
		for _, m := range msgs {
			if m.SenderID == patient.ID {
				require.True(t, m.IsRead, "message %q should be read", m.Message)
			} else {
				require.False(t, m.IsRead, "message %q should stay unread", m.Message)
			}
		}

		// The other patient's conversation is untouched.
		msgs, err = s.Messages().ListConversation(ctx, other.ID, psych.ID)
		require.NoError(t, err)
		require.Len(t, msgs, 1)
		require.False(t, msgs[0].IsRead)
	})
}

func TestAppointmentsRepo(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	patient := seedUser(t, s, domain.RolePatient)
	psych := seedUser(t, s, domain.RolePsychologist)

	a := domain.Appointment{
		ID:             idx.New().String(),
		PatientID:      patient.ID,
		PsychologistID: psych.ID,
		ScheduledAt:    time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC),
		Duration:       60,
		Status:         domain.AppointmentScheduled,
	}
	require.NoError(t, s.Appointments().CreateAppointment(ctx, a))

	t.Run("GetByID", func(t *testing.T) {
		got, err := s.Appointments().GetAppointmentByID(ctx, a.ID)
		require.NoError(t, err)
		require.Equal(t, domain.AppointmentScheduled, got.Status)
		require.Equal(t, 60, got.Duration)
	})

	t.Run("ListByPatient", func(t *testing.T) {
		got, err := s.Appointments().ListAppointmentsByPatient(ctx, patient.ID)
		require.NoError(t, err)
		require.Len(t, got, 1)
	})

	t.Run("Update", func(t *testing.T) {
		a.Status = domain.AppointmentCancelled
		a.Notes = "patient requested reschedule"
		require.NoError(t, s.Appointments().UpdateAppointment(ctx, a))

		got, err := s.Appointments().GetAppointmentByID(ctx, a.ID)
		require.NoError(t, err)
		require.Equal(t, domain.AppointmentCancelled, got.Status)
		require.Equal(t, "patient requested reschedule", got.Notes)
	})
}

func TestTestimonialsRepo(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	patient := seedUser(t, s, domain.RolePatient)

	tm := domain.Testimonial{
		ID:        idx.New().String(),
		PatientID: patient.ID,
		Rating:    5,
		Comment:   "very helpful sessions",
	}
	require.NoError(t, s.Testimonials().CreateTestimonial(ctx, tm))

	t.Run("UnpublishedHiddenFromPublicList", func(t *testing.T) {
		published, err := s.Testimonials().ListPublishedTestimonials(ctx)
		require.NoError(t, err)
		require.Empty(t, published)

		all, err := s.Testimonials().ListAllTestimonials(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
	})

	t.Run("Publish", func(t *testing.T) {
		require.NoError(t, s.Testimonials().SetTestimonialPublished(ctx, tm.ID, true))

		published, err := s.Testimonials().ListPublishedTestimonials(ctx)
		require.NoError(t, err)
		require.Len(t, published, 1)
		require.True(t, published[0].IsPublished)
	})

	t.Run("PublishMissing", func(t *testing.T) {
		err := s.Testimonials().SetTestimonialPublished(ctx, "missing", true)
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestWithTx(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	t.Run("CommitOnSuccess", func(t *testing.T) {
		u := domain.User{
			ID:           idx.New().String(),
			Email:        "tx@example.com",
			FirstName:    "Tx",
			LastName:     "User",
			Role:         domain.RolePatient,
			PasswordHash: "x",
		}
		err := s.WithTx(ctx, func(tx store.Tx) error {
			return tx.Users().CreateUser(ctx, u)
		})
		require.NoError(t, err)

		_, err = s.Users().GetUserByID(ctx, u.ID)
		require.NoError(t, err)
	})

	t.Run("RollbackOnError", func(t *testing.T) {
		u := domain.User{
			ID:           idx.New().String(),
			Email:        "rollback@example.com",
			FirstName:    "Tx",
			LastName:     "User",
			Role:         domain.RolePatient,
			PasswordHash: "x",
		}
		boom := errors.New("boom")
		err := s.WithTx(ctx, func(tx store.Tx) error {
			if err := tx.Users().CreateUser(ctx, u); err != nil {
				return err
			}
			return boom
		})
		require.ErrorIs(t, err, boom)

		_, err = s.Users().GetUserByID(ctx, u.ID)
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}
