package sqlstore

import (
	"context"
	"fmt"

	"github.com/martijn/bizdesk/internal/core/domain"
	"github.com/martijn/bizdesk/internal/core/repository"
)

const appointmentColumns = `id, title, client_name, date, time, duration, location, type, status, created_at`

type appointmentRepository struct {
	db *DB
}

func NewAppointmentRepository(db *DB) repository.AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *domain.Appointment) error {
	query := `
		INSERT INTO appointments (title, client_name, date, time, duration, location, type, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	createdAt := r.db.now()
	id, err := r.db.insert(ctx, query,
		appointment.Title,
		appointment.ClientName,
		appointment.Date,
		appointment.Time,
		appointment.Duration,
		appointment.Location,
		appointment.Type,
		appointment.Status,
		createdAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create appointment: %w", classify(err))
	}

	appointment.ID = id
	appointment.CreatedAt = createdAt
	return nil
}

func (r *appointmentRepository) FindByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	query := r.db.Rebind(`SELECT ` + appointmentColumns + ` FROM appointments WHERE id = ?`)

	var appointment domain.Appointment
	if err := r.db.GetContext(ctx, &appointment, query, id); err != nil {
		return nil, fmt.Errorf("failed to find appointment %d: %w", id, classify(err))
	}
	return &appointment, nil
}

// Delete removes the appointment if present; deleting a missing id is not an error.
func (r *appointmentRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM appointments WHERE id = ?`), id); err != nil {
		return fmt.Errorf("failed to delete appointment: %w", classify(err))
	}
	return nil
}

func (r *appointmentRepository) List(ctx context.Context, filter repository.AppointmentFilter) ([]*domain.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE 1=1`
	args := []interface{}{}

	query, args = ApplyFilters(query, args, filter.Filters)
	query = ApplyOrdering(query, filter.Order, "created_at DESC, id DESC")
	query, args = ApplyPagination(query, args, filter.Page, filter.PerPage)

	appointments := []*domain.Appointment{}
	if err := r.db.SelectContext(ctx, &appointments, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", classify(err))
	}
	return appointments, nil
}

func (r *appointmentRepository) Count(ctx context.Context, filter repository.AppointmentFilter) (int, error) {
	query := `SELECT COUNT(*) FROM appointments WHERE 1=1`
	args := []interface{}{}

	query, args = ApplyFilters(query, args, filter.Filters)

	var count int
	if err := r.db.GetContext(ctx, &count, r.db.Rebind(query), args...); err != nil {
		return 0, fmt.Errorf("failed to count appointments: %w", classify(err))
	}
	return count, nil
}
