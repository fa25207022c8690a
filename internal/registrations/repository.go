package registrations

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/southlake-academy/admin-api/internal/models"
)

// Repository handles registration persistence.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a registrations repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const registrationColumns = `registration_id, parent_first_name, parent_last_name, first_name, last_name,
	address, city, state, zip_code, country, phone, email, amount, expiry_date, forms, created_at, updated_at`

func scanRegistration(row pgx.Row) (*models.Registration, error) {
	var r models.Registration
	var forms []byte
	err := row.Scan(&r.RegistrationID, &r.ParentFirstName, &r.ParentLastName, &r.FirstName, &r.LastName,
		&r.Address, &r.City, &r.State, &r.ZipCode, &r.Country, &r.Phone, &r.Email,
		&r.Amount, &r.ExpiryDate, &forms, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if len(forms) > 0 {
		if err := json.Unmarshal(forms, &r.Forms); err != nil {
			return nil, err
		}
	}
	return &r, nil
}

func (r *Repository) queryList(ctx context.Context, q string, args ...any) ([]models.Registration, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []models.Registration
	for rows.Next() {
		reg, err := scanRegistration(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *reg)
	}
	return list, rows.Err()
}

// List returns every registration across all categories, newest last.
func (r *Repository) List(ctx context.Context) ([]models.Registration, error) {
	return r.queryList(ctx,
		`SELECT `+registrationColumns+` FROM registrations ORDER BY registration_id`)
}

// ListByCategory returns registrations holding at least one form
// submission in the given category.
func (r *Repository) ListByCategory(ctx context.Context, category string) ([]models.Registration, error) {
	return r.queryList(ctx,
		`SELECT `+registrationColumns+` FROM registrations
		WHERE jsonb_array_length(COALESCE(forms->$1, '[]'::jsonb)) > 0
		ORDER BY registration_id`, category)
}

// GetByID returns one registration, or nil when it does not exist.
func (r *Repository) GetByID(ctx context.Context, id int64) (*models.Registration, error) {
	reg, err := scanRegistration(r.pool.QueryRow(ctx,
		`SELECT `+registrationColumns+` FROM registrations WHERE registration_id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return reg, nil
}

// Create inserts an admin-created registration and fills its generated
// fields.
func (r *Repository) Create(ctx context.Context, reg *models.Registration) error {
	forms := reg.Forms
	if forms == nil {
		forms = map[string][]models.FormSubmission{}
	}
	formsJSON, err := json.Marshal(forms)
	if err != nil {
		return err
	}
	const q = `INSERT INTO registrations
		(parent_first_name, parent_last_name, first_name, last_name, address, city, state, zip_code, country, phone, email, amount, forms)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING registration_id, expiry_date, created_at, updated_at`
	return r.pool.QueryRow(ctx, q,
		reg.ParentFirstName, reg.ParentLastName, reg.FirstName, reg.LastName,
		reg.Address, reg.City, reg.State, reg.ZipCode, reg.Country, reg.Phone, reg.Email,
		reg.Amount, formsJSON).
		Scan(&reg.RegistrationID, &reg.ExpiryDate, &reg.CreatedAt, &reg.UpdatedAt)
}
