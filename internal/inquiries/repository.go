// Package inquiries covers the two public-intake inboxes staff review and
// clear: contact-us messages and tutoring schedule requests.
package inquiries

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/southlake-academy/admin-api/internal/models"
)

// Repository handles contact and schedule-request persistence.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates an inquiries repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// ListContacts returns all contact messages, newest first.
func (r *Repository) ListContacts(ctx context.Context) ([]models.Contact, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, email, phone, message, created_at FROM contacts ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []models.Contact
	for rows.Next() {
		var m models.Contact
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Phone, &m.Message, &m.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// DeleteContact removes a contact message by id.
func (r *Repository) DeleteContact(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// ListScheduleRequests returns all schedule requests in submission order.
func (r *Repository) ListScheduleRequests(ctx context.Context) ([]models.ScheduleRequest, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, student_name, parent_phone_number, created_at, updated_at FROM schedule_requests ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []models.ScheduleRequest
	for rows.Next() {
		var s models.ScheduleRequest
		if err := rows.Scan(&s.ID, &s.StudentName, &s.ParentPhoneNumber, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// DeleteScheduleRequest removes a schedule request by id.
func (r *Repository) DeleteScheduleRequest(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM schedule_requests WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
