package service

import (
	"context"
	"fmt"

	"github.com/martijn/bizdesk/internal/core/domain"
	"github.com/martijn/bizdesk/internal/core/repository"
)

type AppointmentService struct {
	repo repository.AppointmentRepository
}

func NewAppointmentService(repo repository.AppointmentRepository) *AppointmentService {
	return &AppointmentService{repo: repo}
}

// ListAppointments returns appointments matching filter, newest first unless
// the filter orders otherwise.
func (s *AppointmentService) ListAppointments(ctx context.Context, filter repository.AppointmentFilter) ([]*domain.Appointment, error) {
	appointments, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fromRepoError(err, "appointments")
	}
	return appointments, nil
}

func (s *AppointmentService) CountAppointments(ctx context.Context, filter repository.AppointmentFilter) (int, error) {
	count, err := s.repo.Count(ctx, filter)
	if err != nil {
		return 0, fromRepoError(err, "appointments")
	}
	return count, nil
}

func (s *AppointmentService) GetAppointment(ctx context.Context, id int64) (*domain.Appointment, error) {
	appointment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fromRepoError(err, fmt.Sprintf("appointment %d", id))
	}
	return appointment, nil
}

// CreateAppointment defaults the status to Pending, validates and stores the
// appointment. On success ID and CreatedAt are populated.
func (s *AppointmentService) CreateAppointment(ctx context.Context, appointment *domain.Appointment) error {
	appointment.ApplyDefaults()
	if err := validateEntity(appointment); err != nil {
		return err
	}

	if err := s.repo.Create(ctx, appointment); err != nil {
		return fromRepoError(err, "appointment")
	}
	return nil
}

func (s *AppointmentService) DeleteAppointment(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fromRepoError(err, fmt.Sprintf("appointment %d", id))
	}
	return nil
}
