package store

import (
	"context"
	"errors"

	"github.com/psicoconecta/portal/internal/portal/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today,
// postgres later) implement this. It exposes sub-repositories to keep
// concerns tidy and testable.
type Store interface {
	Users() Users
	Messages() Messages
	Appointments() Appointments
	Testimonials() Testimonials

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise committed. Prefer this over Tx.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds
// Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail is used during login.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by the app via ULID).
	CreateUser(ctx context.Context, u domain.User) error

	// UpdateUser rewrites the mutable profile fields and bumps updated_at.
	// Identity fields (id, email, role) and the password hash are not
	// touched by this call.
	UpdateUser(ctx context.Context, u domain.User) error

	// UpdatePersonalNotes sets the personal_notes column only.
	UpdatePersonalNotes(ctx context.Context, userID, notes string) error

	// ListPatients returns all users with the patient role, newest first.
	ListPatients(ctx context.Context) ([]domain.User, error)

	// GetDefaultPsychologist returns the practice's psychologist account.
	GetDefaultPsychologist(ctx context.Context) (domain.User, error)
}

type Messages interface {
	// CreateMessage persists one chat message.
	CreateMessage(ctx context.Context, m domain.ChatMessage) error

	// ListConversation returns every message exchanged between the two
	// users (either direction), ordered by creation time ascending.
	ListConversation(ctx context.Context, userA, userB string) ([]domain.ChatMessage, error)

	// MarkConversationRead flips is_read on all unread messages sent by
	// senderID to receiverID. Messages in the other direction are
	// untouched.
	MarkConversationRead(ctx context.Context, receiverID, senderID string) error
}

type Appointments interface {
	CreateAppointment(ctx context.Context, a domain.Appointment) error

	GetAppointmentByID(ctx context.Context, id string) (domain.Appointment, error)

	// ListAppointmentsByPatient returns a patient's appointments ordered by
	// scheduled time ascending.
	ListAppointmentsByPatient(ctx context.Context, patientID string) ([]domain.Appointment, error)

	// ListAllAppointments returns every appointment, for the psychologist's
	// schedule view.
	ListAllAppointments(ctx context.Context) ([]domain.Appointment, error)

	// UpdateAppointment rewrites status, notes and duration and bumps
	// updated_at.
	UpdateAppointment(ctx context.Context, a domain.Appointment) error
}

type Testimonials interface {
	CreateTestimonial(ctx context.Context, t domain.Testimonial) error

	GetTestimonialByID(ctx context.Context, id string) (domain.Testimonial, error)

	// ListPublishedTestimonials returns testimonials visible on the public
	// landing page, newest first.
	ListPublishedTestimonials(ctx context.Context) ([]domain.Testimonial, error)

	// ListAllTestimonials returns every testimonial for moderation.
	ListAllTestimonials(ctx context.Context) ([]domain.Testimonial, error)

	// SetTestimonialPublished toggles the published flag.
	SetTestimonialPublished(ctx context.Context, id string, published bool) error
}
