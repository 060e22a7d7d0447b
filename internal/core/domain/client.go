package domain

import "time"

const (
	ClientStatusLead     = "Lead"
	ClientStatusActive   = "Active"
	ClientStatusInactive = "Inactive"
)

type Client struct {
	ID          int64     `db:"id"`
	Name        string    `db:"name" validate:"required"`
	Company     string    `db:"company" validate:"required"`
	Email       string    `db:"email" validate:"required"`
	Phone       string    `db:"phone" validate:"required"`
	Location    string    `db:"location" validate:"required"`
	Status      string    `db:"status" validate:"required"`
	Tags        Tags      `db:"tags"`
	CreatedAt   time.Time `db:"created_at"`
	LastContact time.Time `db:"last_contact"`
}

func (c *Client) ApplyDefaults() {
	if c.Status == "" {
		c.Status = ClientStatusLead
	}
	if c.Tags == nil {
		c.Tags = Tags{}
	}
}
