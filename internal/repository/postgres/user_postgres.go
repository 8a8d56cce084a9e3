package postgres

import (
	"context"
	"database/sql"

	"recipeshare/internal/model"
	"recipeshare/internal/repository"
)

// UserPostgres is a PostgreSQL implementation of repository.UserRepository.
type UserPostgres struct {
	db *sql.DB
}

// NewUserPostgres creates a new UserPostgres repository.
func NewUserPostgres(db *sql.DB) *UserPostgres {
	return &UserPostgres{db: db}
}

var _ repository.UserRepository = (*UserPostgres)(nil)

const userColumns = `id, email, fullname, password_hash, phone, profile_picture, created_at, updated_at`

func scanUser(s scanner) (*model.User, error) {
	var u model.User
	if err := s.Scan(
		&u.ID,
		&u.Email,
		&u.Fullname,
		&u.PasswordHash,
		&u.Phone,
		&u.ProfilePicture,
		&u.CreatedAt,
		&u.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a new user row and returns the stored record.
func (r *UserPostgres) Create(ctx context.Context, u *model.User) (*model.User, error) {
	const q = `
		INSERT INTO users (email, fullname, password_hash, phone, profile_picture)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + userColumns
	row := r.db.QueryRowContext(ctx, q, u.Email, u.Fullname, u.PasswordHash, u.Phone, u.ProfilePicture)
	out, err := scanUser(row)
	if err != nil {
		return nil, repository.MapError(err)
	}
	return out, nil
}

// FindByID fetches a user by id.
func (r *UserPostgres) FindByID(ctx context.Context, id int64) (*model.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.db.QueryRowContext(ctx, q, id))
}

// FindByEmail fetches a user by email.
func (r *UserPostgres) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return scanUser(r.db.QueryRowContext(ctx, q, email))
}

// List returns every user ordered by id.
func (r *UserPostgres) List(ctx context.Context) ([]model.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users ORDER BY id`
	return queryUsers(ctx, r.db, q)
}

// Update rewrites the mutable columns and bumps updated_at.
func (r *UserPostgres) Update(ctx context.Context, u *model.User) (*model.User, error) {
	const q = `
		UPDATE users
		SET email = $2, fullname = $3, password_hash = $4, phone = $5, profile_picture = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + userColumns
	row := r.db.QueryRowContext(ctx, q, u.ID, u.Email, u.Fullname, u.PasswordHash, u.Phone, u.ProfilePicture)
	out, err := scanUser(row)
	if err != nil {
		return nil, repository.MapError(err)
	}
	return out, nil
}

// Delete removes a user. Follow edges go with it via ON DELETE CASCADE.
func (r *UserPostgres) Delete(ctx context.Context, id int64) error {
	return execDelete(ctx, r.db, `DELETE FROM users WHERE id = $1`, id)
}

func queryUsers(ctx context.Context, db *sql.DB, q string, args ...any) ([]model.User, error) {
	rows, err := db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
