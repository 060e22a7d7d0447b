package domain

import "time"

const (
	AppointmentStatusPending   = "Pending"
	AppointmentStatusConfirmed = "Confirmed"
)

// Appointment is a scheduled meeting. ClientName is free text and is not
// linked to a Client row.
type Appointment struct {
	ID         int64     `db:"id"`
	Title      string    `db:"title" validate:"required"`
	ClientName string    `db:"client_name" validate:"required"`
	Date       Date      `db:"date" validate:"required"`
	Time       string    `db:"time" validate:"required"`
	Duration   string    `db:"duration" validate:"required"`
	Location   string    `db:"location" validate:"required"`
	Type       string    `db:"type" validate:"required"`
	Status     string    `db:"status" validate:"required"`
	CreatedAt  time.Time `db:"created_at"`
}

// ApplyDefaults fills optional fields the caller left empty.
func (a *Appointment) ApplyDefaults() {
	if a.Status == "" {
		a.Status = AppointmentStatusPending
	}
}
