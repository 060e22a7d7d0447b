package dto

import (
	"time"

	"github.com/martijn/bizdesk/internal/core/domain"
)

// CreateClientRequest is the POST /api/clients body. Status defaults to
// "Lead" and tags to an empty list.
type CreateClientRequest struct {
	Name     string   `json:"name" example:"Jane Doe"`
	Company  string   `json:"company" example:"Acme Corp"`
	Email    string   `json:"email" example:"jane@acme.test"`
	Phone    string   `json:"phone" example:"+31 20 123 4567"`
	Location string   `json:"location" example:"Amsterdam"`
	Status   string   `json:"status,omitempty" example:"Lead"`
	Tags     []string `json:"tags,omitempty"`
}

func (r CreateClientRequest) ToDomain() *domain.Client {
	return &domain.Client{
		Name:     r.Name,
		Company:  r.Company,
		Email:    r.Email,
		Phone:    r.Phone,
		Location: r.Location,
		Status:   r.Status,
		Tags:     domain.Tags(r.Tags),
	}
}

type ClientResponse struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	Company     string      `json:"company"`
	Email       string      `json:"email"`
	Phone       string      `json:"phone"`
	Location    string      `json:"location"`
	Status      string      `json:"status"`
	Tags        domain.Tags `json:"tags" swaggertype:"array,string"`
	CreatedAt   time.Time   `json:"createdAt"`
	LastContact time.Time   `json:"lastContact"`
}

func ToClientResponse(c *domain.Client) ClientResponse {
	return ClientResponse{
		ID:          c.ID,
		Name:        c.Name,
		Company:     c.Company,
		Email:       c.Email,
		Phone:       c.Phone,
		Location:    c.Location,
		Status:      c.Status,
		Tags:        c.Tags,
		CreatedAt:   c.CreatedAt.UTC(),
		LastContact: c.LastContact.UTC(),
	}
}

func ToClientResponses(clients []*domain.Client) []ClientResponse {
	out := make([]ClientResponse, len(clients))
	for i, c := range clients {
		out[i] = ToClientResponse(c)
	}
	return out
}
