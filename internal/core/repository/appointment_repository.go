package repository

import (
	"context"

	"github.com/martijn/bizdesk/internal/api/util"
	"github.com/martijn/bizdesk/internal/core/domain"
)

// AppointmentFilter embeds ListFilter for generic query/order/pagination
type AppointmentFilter struct {
	util.ListFilter
}

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *domain.Appointment) error
	FindByID(ctx context.Context, id int64) (*domain.Appointment, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter AppointmentFilter) ([]*domain.Appointment, error)
	Count(ctx context.Context, filter AppointmentFilter) (int, error)
}
