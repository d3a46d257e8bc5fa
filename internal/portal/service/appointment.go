package service

import (
	"context"
	"errors"
	"time"

	"github.com/psicoconecta/portal/internal/portal/domain"
	"github.com/psicoconecta/portal/internal/portal/store"
	"github.com/psicoconecta/portal/pkg/idx"
)

var (
	ErrInvalidAppointment = errors.New("invalid_appointment")
	ErrAccessDenied       = errors.New("access_denied")
)

const defaultAppointmentMinutes = 60

// AppointmentUpdate is a partial appointment change. Nil fields are left
// alone.
type AppointmentUpdate struct {
	Status   *string
	Notes    *string
	Duration *int
}

// AppointmentService books and manages sessions between a patient and the
// practice's psychologist.
type AppointmentService struct {
	Store store.Store
}

// Create books a session for the calling patient. An empty psychologistID
// falls back to the practice's default psychologist. Duration defaults to
// one hour.
func (s *AppointmentService) Create(ctx context.Context, patientID, psychologistID string, scheduledAt time.Time, duration int, notes string) (domain.Appointment, error) {
	if scheduledAt.IsZero() {
		return domain.Appointment{}, ErrInvalidAppointment
	}
	if duration <= 0 {
		duration = defaultAppointmentMinutes
	}

	var (
		psych domain.User
		err   error
	)
	if psychologistID == "" {
		psych, err = s.Store.Users().GetDefaultPsychologist(ctx)
	} else {
		psych, err = s.Store.Users().GetUserByID(ctx, psychologistID)
	}
	if err != nil {
		return domain.Appointment{}, err
	}
	if psych.Role != domain.RolePsychologist {
		return domain.Appointment{}, ErrInvalidAppointment
	}

	a := domain.Appointment{
		ID:             idx.New().String(),
		PatientID:      patientID,
		PsychologistID: psych.ID,
		ScheduledAt:    scheduledAt.UTC(),
		Duration:       duration,
		Status:         domain.AppointmentScheduled,
		Notes:          notes,
	}

	if err := s.Store.Appointments().CreateAppointment(ctx, a); err != nil {
		return domain.Appointment{}, err
	}

	return s.Store.Appointments().GetAppointmentByID(ctx, a.ID)
}

// List returns the caller's view of the schedule: patients see their own
// appointments, the psychologist sees everything.
func (s *AppointmentService) List(ctx context.Context, callerID string, role domain.Role) ([]domain.Appointment, error) {
	if role == domain.RolePsychologist {
		return s.Store.Appointments().ListAllAppointments(ctx)
	}
	return s.Store.Appointments().ListAppointmentsByPatient(ctx, callerID)
}

// Update applies the non-nil fields of upd. Patients may only touch their
// own appointments; the psychologist may touch any.
func (s *AppointmentService) Update(ctx context.Context, callerID string, role domain.Role, id string, upd AppointmentUpdate) (domain.Appointment, error) {
	a, err := s.Store.Appointments().GetAppointmentByID(ctx, id)
	if err != nil {
		return domain.Appointment{}, err
	}

	if role != domain.RolePsychologist && a.PatientID != callerID {
		return domain.Appointment{}, ErrAccessDenied
	}

	if upd.Status != nil {
		if !domain.ValidAppointmentStatus(*upd.Status) {
			return domain.Appointment{}, ErrInvalidAppointment
		}
		a.Status = *upd.Status
	}
	if upd.Notes != nil {
		a.Notes = *upd.Notes
	}
	if upd.Duration != nil {
		if *upd.Duration <= 0 {
			return domain.Appointment{}, ErrInvalidAppointment
		}
		a.Duration = *upd.Duration
	}

	if err := s.Store.Appointments().UpdateAppointment(ctx, a); err != nil {
		return domain.Appointment{}, err
	}

	return s.Store.Appointments().GetAppointmentByID(ctx, id)
}
