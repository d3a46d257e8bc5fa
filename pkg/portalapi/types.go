package portalapi

import "time"

// LoginRequest is the payload for POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the session token for subsequent requests.
type LoginResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"tokenType"` // always "Bearer"
	ExpiresIn int64  `json:"expiresIn"` // seconds until expiry
}

// ChatTokenResponse is the payload of GET /api/auth/ws-token. The token is
// a short-lived credential for the WebSocket endpoint only; it is not a
// session token.
type ChatTokenResponse struct {
	Token string `json:"token"`
}

// UpdateProfileRequest lists the profile fields a user may change about
// themselves. Identity fields (id, email, role) are deliberately absent.
type UpdateProfileRequest struct {
	FirstName       *string    `json:"firstName"`
	LastName        *string    `json:"lastName"`
	Phone           *string    `json:"phone"`
	DateOfBirth     *time.Time `json:"dateOfBirth"`
	ProfileImageURL *string    `json:"profileImageUrl"`
	PersonalNotes   *string    `json:"personalNotes"`
}

// UpdateNotesRequest is the payload for PATCH /api/profile/notes.
type UpdateNotesRequest struct {
	Notes string `json:"notes"`
}

// CreateAppointmentRequest is the payload for POST /api/appointments.
// The patient is taken from the session, never from the payload.
type CreateAppointmentRequest struct {
	PsychologistID string    `json:"psychologistId"`
	ScheduledAt    time.Time `json:"scheduledAt"`
	Duration       int       `json:"duration"`
	Notes          string    `json:"notes"`
}

// UpdateAppointmentRequest is the payload for PATCH /api/appointments/{id}.
// Only these three fields may change after creation.
type UpdateAppointmentRequest struct {
	Status   *string `json:"status"`
	Notes    *string `json:"notes"`
	Duration *int    `json:"duration"`
}

// CreateTestimonialRequest is the payload for POST /api/testimonials.
type CreateTestimonialRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// UpdateTestimonialRequest is the payload for PATCH /api/admin/testimonials/{id}.
type UpdateTestimonialRequest struct {
	IsPublished *bool `json:"isPublished"`
}

// HealthResponse is returned by /livez and /readyz.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Uptime  string `json:"uptime"`
}
