package catalog

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/southlake-academy/admin-api/internal/models"
)

// Repository handles program persistence.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a catalog repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const programColumns = `id, category, program_name, price, image, attributes, session_types, created_at, updated_at`

func scanProgram(row pgx.Row) (*models.Program, error) {
	var p models.Program
	var attrs []byte
	var sessions []byte
	err := row.Scan(&p.ID, &p.Category, &p.Name, &p.Price, &p.Image, &attrs, &sessions, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if len(attrs) > 0 {
		if err := json.Unmarshal(attrs, &p.Attributes); err != nil {
			return nil, err
		}
	}
	if len(sessions) > 0 {
		if err := json.Unmarshal(sessions, &p.SessionTypes); err != nil {
			return nil, err
		}
	}
	return &p, nil
}

// ListByCategory returns all programs in a category in insertion order.
func (r *Repository) ListByCategory(ctx context.Context, category string) ([]models.Program, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+programColumns+` FROM programs WHERE category = $1 ORDER BY id`, category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []models.Program
	for rows.Next() {
		p, err := scanProgram(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *p)
	}
	return list, rows.Err()
}

// GetByID returns one program, or nil when the id is not in the category.
func (r *Repository) GetByID(ctx context.Context, category string, id int64) (*models.Program, error) {
	p, err := scanProgram(r.pool.QueryRow(ctx,
		`SELECT `+programColumns+` FROM programs WHERE category = $1 AND id = $2`, category, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Create inserts a program and fills its generated fields.
func (r *Repository) Create(ctx context.Context, p *models.Program) error {
	attrs, sessions, err := encodeProgram(p)
	if err != nil {
		return err
	}
	const q = `INSERT INTO programs (category, program_name, price, image, attributes, session_types)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, q, p.Category, p.Name, p.Price, p.Image, attrs, sessions).
		Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

// Update replaces the whole stored record with p. Saving never patches
// individual columns; the edit screen always sends the full record back.
func (r *Repository) Update(ctx context.Context, p *models.Program) (bool, error) {
	attrs, sessions, err := encodeProgram(p)
	if err != nil {
		return false, err
	}
	const q = `UPDATE programs
		SET program_name = $3, price = $4, image = $5, attributes = $6, session_types = $7, updated_at = NOW()
		WHERE category = $1 AND id = $2`
	tag, err := r.pool.Exec(ctx, q, p.Category, p.ID, p.Name, p.Price, p.Image, attrs, sessions)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// Delete removes a program by category and id.
func (r *Repository) Delete(ctx context.Context, category string, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM programs WHERE category = $1 AND id = $2`, category, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func encodeProgram(p *models.Program) (attrs []byte, sessions []byte, err error) {
	a := p.Attributes
	if a == nil {
		a = map[string]string{}
	}
	attrs, err = json.Marshal(a)
	if err != nil {
		return nil, nil, err
	}
	if p.SessionTypes != nil {
		sessions, err = json.Marshal(p.SessionTypes)
		if err != nil {
			return nil, nil, err
		}
	}
	return attrs, sessions, nil
}
