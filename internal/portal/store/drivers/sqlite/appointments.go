package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/psicoconecta/portal/internal/portal/domain"
)

type appointmentsRepo struct {
	db dbtx
}

const appointmentColumns = `id, patient_id, psychologist_id, scheduled_at, duration, status, notes, created_at, updated_at`

func (r *appointmentsRepo) CreateAppointment(ctx context.Context, a domain.Appointment) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO appointments (id, patient_id, psychologist_id, scheduled_at, duration, status, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.PatientID, a.PsychologistID, a.ScheduledAt, a.Duration, a.Status,
		mapStringNull(a.Notes), now, now,
	)
	return err
}

func (r *appointmentsRepo) GetAppointmentByID(ctx context.Context, id string) (domain.Appointment, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+appointmentColumns+` FROM appointments WHERE id = ?`, id)
	return scanAppointment(row)
}

func (r *appointmentsRepo) ListAppointmentsByPatient(ctx context.Context, patientID string) ([]domain.Appointment, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+appointmentColumns+` FROM appointments WHERE patient_id = ? ORDER BY scheduled_at ASC`,
		patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectAppointments(rows)
}

func (r *appointmentsRepo) ListAllAppointments(ctx context.Context) ([]domain.Appointment, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+appointmentColumns+` FROM appointments ORDER BY scheduled_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectAppointments(rows)
}

func (r *appointmentsRepo) UpdateAppointment(ctx context.Context, a domain.Appointment) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE appointments SET status = ?, notes = ?, duration = ?, updated_at = ?
		WHERE id = ?`,
		a.Status, mapStringNull(a.Notes), a.Duration, time.Now().UTC(), a.ID,
	)
	return err
}

func scanAppointment(s scanner) (domain.Appointment, error) {
	var (
		a     domain.Appointment
		notes sql.NullString
	)
	err := s.Scan(
		&a.ID, &a.PatientID, &a.PsychologistID, &a.ScheduledAt,
		&a.Duration, &a.Status, &notes, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return domain.Appointment{}, mapNotFound(err)
	}
	a.Notes = mapNullString(notes)
	return a, nil
}

func collectAppointments(rows *sql.Rows) ([]domain.Appointment, error) {
	var appointments []domain.Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		appointments = append(appointments, a)
	}
	return appointments, rows.Err()
}
