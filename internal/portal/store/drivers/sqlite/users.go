package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/psicoconecta/portal/internal/portal/domain"
)

type usersRepo struct {
	db dbtx
}

const userColumns = `id, email, first_name, last_name, role, phone, date_of_birth,
	profile_image_url, personal_notes, password_hash, created_at, updated_at`

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ?`, email)
	return scanUser(row)
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (
			id, email, first_name, last_name, role, phone, date_of_birth,
			profile_image_url, personal_notes, password_hash, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID,
		u.Email,
		u.FirstName,
		u.LastName,
		string(u.Role),
		mapStringNull(u.Phone),
		mapOptionalTime(u.DateOfBirth),
		mapStringNull(u.ProfileImageURL),
		mapStringNull(u.PersonalNotes),
		u.PasswordHash,
		now,
		now,
	)
	return err
}

func (r *usersRepo) UpdateUser(ctx context.Context, u domain.User) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE users SET
			first_name = ?,
			last_name = ?,
			phone = ?,
			date_of_birth = ?,
			profile_image_url = ?,
			personal_notes = ?,
			updated_at = ?
		WHERE id = ?`,
		u.FirstName,
		u.LastName,
		mapStringNull(u.Phone),
		mapOptionalTime(u.DateOfBirth),
		mapStringNull(u.ProfileImageURL),
		mapStringNull(u.PersonalNotes),
		time.Now().UTC(),
		u.ID,
	)
	return err
}

func (r *usersRepo) UpdatePersonalNotes(ctx context.Context, userID, notes string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE users SET personal_notes = ?, updated_at = ? WHERE id = ?`,
		mapStringNull(notes), time.Now().UTC(), userID)
	return err
}

func (r *usersRepo) ListPatients(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE role = ? ORDER BY created_at DESC`,
		string(domain.RolePatient))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *usersRepo) GetDefaultPsychologist(ctx context.Context) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE role = ? ORDER BY created_at ASC LIMIT 1`,
		string(domain.RolePsychologist))
	return scanUser(row)
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanUser(s scanner) (domain.User, error) {
	var (
		u           domain.User
		role        string
		phone       sql.NullString
		dateOfBirth sql.NullTime
		imageURL    sql.NullString
		notes       sql.NullString
	)
	err := s.Scan(
		&u.ID,
		&u.Email,
		&u.FirstName,
		&u.LastName,
		&role,
		&phone,
		&dateOfBirth,
		&imageURL,
		&notes,
		&u.PasswordHash,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}

	u.Role = domain.Role(role)
	u.Phone = mapNullString(phone)
	u.DateOfBirth = mapNullTimePtr(dateOfBirth)
	u.ProfileImageURL = mapNullString(imageURL)
	u.PersonalNotes = mapNullString(notes)
	return u, nil
}
