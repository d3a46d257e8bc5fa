package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/psicoconecta/portal/internal/portal/domain"
)

type testimonialsRepo struct {
	db dbtx
}

const testimonialColumns = `id, patient_id, rating, comment, is_published, created_at, updated_at`

func (r *testimonialsRepo) CreateTestimonial(ctx context.Context, t domain.Testimonial) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO testimonials (id, patient_id, rating, comment, is_published, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.PatientID, t.Rating, t.Comment, t.IsPublished, now, now,
	)
	return err
}

func (r *testimonialsRepo) GetTestimonialByID(ctx context.Context, id string) (domain.Testimonial, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+testimonialColumns+` FROM testimonials WHERE id = ?`, id)
	return scanTestimonial(row)
}

func (r *testimonialsRepo) ListPublishedTestimonials(ctx context.Context) ([]domain.Testimonial, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+testimonialColumns+` FROM testimonials WHERE is_published = TRUE ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTestimonials(rows)
}

func (r *testimonialsRepo) ListAllTestimonials(ctx context.Context) ([]domain.Testimonial, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+testimonialColumns+` FROM testimonials ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTestimonials(rows)
}

func (r *testimonialsRepo) SetTestimonialPublished(ctx context.Context, id string, published bool) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE testimonials SET is_published = ?, updated_at = ? WHERE id = ?`,
		published, time.Now().UTC(), id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return mapNotFound(sql.ErrNoRows)
	}
	return nil
}

func scanTestimonial(s scanner) (domain.Testimonial, error) {
	var t domain.Testimonial
	err := s.Scan(&t.ID, &t.PatientID, &t.Rating, &t.Comment, &t.IsPublished, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return domain.Testimonial{}, mapNotFound(err)
	}
	return t, nil
}

func collectTestimonials(rows *sql.Rows) ([]domain.Testimonial, error) {
	var testimonials []domain.Testimonial
	for rows.Next() {
		t, err := scanTestimonial(rows)
		if err != nil {
			return nil, err
		}
		testimonials = append(testimonials, t)
	}
	return testimonials, rows.Err()
}
