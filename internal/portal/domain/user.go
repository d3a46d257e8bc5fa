package domain

import "time"

type User struct {
	ID              string     `json:"id"`
	Email           string     `json:"email"`
	FirstName       string     `json:"firstName"`
	LastName        string     `json:"lastName"`
	Role            Role       `json:"role"`
	Phone           string     `json:"phone,omitempty"`
	DateOfBirth     *time.Time `json:"dateOfBirth,omitempty"`
	ProfileImageURL string     `json:"profileImageUrl,omitempty"`
	PersonalNotes   string     `json:"personalNotes,omitempty"`
	PasswordHash    string     `json:"-"` // argon2id encoded, never serialized
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}
