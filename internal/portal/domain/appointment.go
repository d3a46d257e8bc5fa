package domain

import "time"

// Appointment statuses. Appointments never get deleted, they get cancelled.
const (
	AppointmentScheduled = "scheduled"
	AppointmentCompleted = "completed"
	AppointmentCancelled = "cancelled"
)

type Appointment struct {
	ID             string    `json:"id"`
	PatientID      string    `json:"patientId"`
	PsychologistID string    `json:"psychologistId"`
	ScheduledAt    time.Time `json:"scheduledAt"`
	Duration       int       `json:"duration"` // minutes
	Status         string    `json:"status"`
	Notes          string    `json:"notes,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// ValidAppointmentStatus reports whether s is a known appointment status.
func ValidAppointmentStatus(s string) bool {
	return s == AppointmentScheduled || s == AppointmentCompleted || s == AppointmentCancelled
}
