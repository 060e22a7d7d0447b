package dto

import (
	"time"

	"github.com/martijn/bizdesk/internal/core/domain"
)

// CreateAppointmentRequest is the POST /api/appointments body. Status is
// optional and defaults to "Pending".
type CreateAppointmentRequest struct {
	Title      string      `json:"title" example:"Project kickoff"`
	ClientName string      `json:"clientName" example:"Acme Corp"`
	Date       domain.Date `json:"date" swaggertype:"string" example:"2025-03-14"`
	Time       string      `json:"time" example:"10:30"`
	Duration   string      `json:"duration" example:"1h"`
	Location   string      `json:"location" example:"Office"`
	Type       string      `json:"type" example:"Meeting"`
	Status     string      `json:"status,omitempty" example:"Pending"`
}

func (r CreateAppointmentRequest) ToDomain() *domain.Appointment {
	return &domain.Appointment{
		Title:      r.Title,
		ClientName: r.ClientName,
		Date:       r.Date,
		Time:       r.Time,
		Duration:   r.Duration,
		Location:   r.Location,
		Type:       r.Type,
		Status:     r.Status,
	}
}

type AppointmentResponse struct {
	ID         int64       `json:"id"`
	Title      string      `json:"title"`
	ClientName string      `json:"clientName"`
	Date       domain.Date `json:"date" swaggertype:"string"`
	Time       string      `json:"time"`
	Duration   string      `json:"duration"`
	Location   string      `json:"location"`
	Type       string      `json:"type"`
	Status     string      `json:"status"`
	CreatedAt  time.Time   `json:"createdAt"`
}

func ToAppointmentResponse(a *domain.Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:         a.ID,
		Title:      a.Title,
		ClientName: a.ClientName,
		Date:       a.Date,
		Time:       a.Time,
		Duration:   a.Duration,
		Location:   a.Location,
		Type:       a.Type,
		Status:     a.Status,
		CreatedAt:  a.CreatedAt.UTC(),
	}
}

func ToAppointmentResponses(appointments []*domain.Appointment) []AppointmentResponse {
	out := make([]AppointmentResponse, len(appointments))
	for i, a := range appointments {
		out[i] = ToAppointmentResponse(a)
	}
	return out
}
