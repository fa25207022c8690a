package auth

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/southlake-academy/admin-api/internal/models"
)

// Repository handles staff user persistence.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates an auth repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// GetByEmail returns a user by email, or nil when none exists.
func (r *Repository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	const q = `SELECT id, email, password_hash, full_name, role, created_at, updated_at
		FROM users WHERE email = $1`
	var u models.User
	err := r.pool.QueryRow(ctx, q, email).
		Scan(&u.ID, &u.Email, &u.Password, &u.FullName, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a staff user and returns the stored row.
func (r *Repository) Create(ctx context.Context, email, passwordHash, fullName string, role models.Role) (*models.User, error) {
	const q = `INSERT INTO users (email, password_hash, full_name, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`
	u := models.User{Email: email, Password: passwordHash, FullName: fullName, Role: role}
	err := r.pool.QueryRow(ctx, q, email, passwordHash, fullName, role).
		Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// EnsureAdmin seeds the initial admin account when no user exists for the
// configured email. Does nothing when the password is empty.
func (r *Repository) EnsureAdmin(ctx context.Context, email, passwordHash, fullName string) error {
	if email == "" || passwordHash == "" {
		return nil
	}
	const q = `INSERT INTO users (email, password_hash, full_name, role)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (email) DO NOTHING`
	_, err := r.pool.Exec(ctx, q, email, passwordHash, fullName, models.RoleAdmin)
	return err
}
