package service

import (
	"context"
	"testing"
	"time"

	"github.com/psicoconecta/portal/internal/portal/domain"
	"github.com/psicoconecta/portal/internal/portal/store"

	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestAppointmentService(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &AppointmentService{Store: st}

	patient := seedUser(t, st, domain.RolePatient, "pw")
	otherPatient := seedUser(t, st, domain.RolePatient, "pw")
	psych := seedUser(t, st, domain.RolePsychologist, "pw")

	when := time.Date(2025, 5, 12, 11, 0, 0, 0, time.UTC)

	t.Run("CreateDefaults", func(t *testing.T) {
		a, err := svc.Create(ctx, patient.ID, "", when, 0, "")
		require.NoError(t, err)
		require.Equal(t, psych.ID, a.PsychologistID)
		require.Equal(t, domain.AppointmentScheduled, a.Status)
		require.Equal(t, 60, a.Duration)
	})

	t.Run("CreateRejectsZeroTime", func(t *testing.T) {
		_, err := svc.Create(ctx, patient.ID, "", time.Time{}, 60, "")
		require.ErrorIs(t, err, ErrInvalidAppointment)
	})

	t.Run("CreateRejectsNonPsychologist", func(t *testing.T) {
		_, err := svc.Create(ctx, patient.ID, otherPatient.ID, when, 60, "")
		require.ErrorIs(t, err, ErrInvalidAppointment)
	})

	t.Run("ListByRole", func(t *testing.T) {
		_, err := svc.Create(ctx, otherPatient.ID, psych.ID, when.Add(24*time.Hour), 45, "intake")
		require.NoError(t, err)

		own, err := svc.List(ctx, patient.ID, domain.RolePatient)
		require.NoError(t, err)
		require.Len(t, own, 1)

		all, err := svc.List(ctx, psych.ID, domain.RolePsychologist)
		require.NoError(t, err)
		require.Len(t, all, 2)
	})

	t.Run("UpdateOwnership", func(t *testing.T) {
		a, err := svc.Create(ctx, patient.ID, "", when.Add(48*time.Hour), 60, "")
		require.NoError(t, err)

		// Another patient cannot touch it.
		_, err = svc.Update(ctx, otherPatient.ID, domain.RolePatient, a.ID, AppointmentUpdate{
			Status: strPtr(domain.AppointmentCancelled),
		})
		require.ErrorIs(t, err, ErrAccessDenied)

		// The owner can cancel.
		got, err := svc.Update(ctx, patient.ID, domain.RolePatient, a.ID, AppointmentUpdate{
			Status: strPtr(domain.AppointmentCancelled),
		})
		require.NoError(t, err)
		require.Equal(t, domain.AppointmentCancelled, got.Status)

		// The psychologist can update anything.
		got, err = svc.Update(ctx, psych.ID, domain.RolePsychologist, a.ID, AppointmentUpdate{
			Notes:    strPtr("follow up in two weeks"),
			Duration: intPtr(30),
		})
		require.NoError(t, err)
		require.Equal(t, "follow up in two weeks", got.Notes)
		require.Equal(t, 30, got.Duration)
	})

	t.Run("UpdateRejectsBadStatus", func(t *testing.T) {
		a, err := svc.Create(ctx, patient.ID, "", when.Add(72*time.Hour), 60, "")
		require.NoError(t, err)

		_, err = svc.Update(ctx, patient.ID, domain.RolePatient, a.ID, AppointmentUpdate{
			Status: strPtr("rescheduled"),
		})
		require.ErrorIs(t, err, ErrInvalidAppointment)
	})

	t.Run("UpdateMissing", func(t *testing.T) {
		_, err := svc.Update(ctx, patient.ID, domain.RolePatient, "nonexistent", AppointmentUpdate{})
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}
