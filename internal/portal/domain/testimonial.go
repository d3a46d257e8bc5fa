package domain

import "time"

type Testimonial struct {
	ID          string    `json:"id"`
	PatientID   string    `json:"patientId"`
	Rating      int       `json:"rating"` // 1-5 stars
	Comment     string    `json:"comment"`
	IsPublished bool      `json:"isPublished"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
