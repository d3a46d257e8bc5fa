package service

import (
	"context"
	"errors"

	"github.com/psicoconecta/portal/internal/portal/domain"
	"github.com/psicoconecta/portal/internal/portal/store"
	"github.com/psicoconecta/portal/pkg/idx"
)

var ErrInvalidTestimonial = errors.New("invalid_testimonial")

// TestimonialService manages patient reviews. New testimonials start
// unpublished and only appear publicly after the psychologist approves
// them.
type TestimonialService struct {
	Store store.Store
}

func (s *TestimonialService) Create(ctx context.Context, patientID string, rating int, comment string) (domain.Testimonial, error) {
	if rating < 1 || rating > 5 || comment == "" {
		return domain.Testimonial{}, ErrInvalidTestimonial
	}

	t := domain.Testimonial{
		ID:        idx.New().String(),
		PatientID: patientID,
		Rating:    rating,
		Comment:   comment,
	}

	if err := s.Store.Testimonials().CreateTestimonial(ctx, t); err != nil {
		return domain.Testimonial{}, err
	}

	return s.Store.Testimonials().GetTestimonialByID(ctx, t.ID)
}

// ListPublished returns the approved testimonials for the public site.
func (s *TestimonialService) ListPublished(ctx context.Context) ([]domain.Testimonial, error) {
	return s.Store.Testimonials().ListPublishedTestimonials(ctx)
}

// ListAll returns every testimonial for moderation.
func (s *TestimonialService) ListAll(ctx context.Context) ([]domain.Testimonial, error) {
	return s.Store.Testimonials().ListAllTestimonials(ctx)
}

// SetPublished toggles a testimonial's visibility.
func (s *TestimonialService) SetPublished(ctx context.Context, id string, published bool) (domain.Testimonial, error) {
	if err := s.Store.Testimonials().SetTestimonialPublished(ctx, id, published); err != nil {
		return domain.Testimonial{}, err
	}
	return s.Store.Testimonials().GetTestimonialByID(ctx, id)
}
