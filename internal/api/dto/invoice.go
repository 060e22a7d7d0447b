package dto

import (
	"time"

	"github.com/martijn/bizdesk/internal/core/domain"
)

// CreateInvoiceRequest is the POST /api/invoices body. Amount may be sent as
// a string or a number; items defaults to 1 when absent and status to
// "Pending". An explicit items of 0 is kept and fails validation.
type CreateInvoiceRequest struct {
	InvoiceNumber string       `json:"invoiceNumber" example:"INV-2025-001"`
	ClientName    string       `json:"clientName" example:"Acme Corp"`
	Amount        domain.Money `json:"amount" swaggertype:"string" example:"1250.00"`
	Status        string       `json:"status,omitempty" example:"Pending"`
	Items         *int         `json:"items,omitempty" example:"1"`
	DueDate       domain.Date  `json:"dueDate" swaggertype:"string" example:"2025-04-01"`
}

func (r CreateInvoiceRequest) ToDomain() *domain.Invoice {
	items := domain.DefaultInvoiceItems
	if r.Items != nil {
		items = *r.Items
	}
	return &domain.Invoice{
		InvoiceNumber: r.InvoiceNumber,
		ClientName:    r.ClientName,
		Amount:        r.Amount,
		Status:        r.Status,
		Items:         items,
		DueDate:       r.DueDate,
	}
}

// UpdateInvoiceStatusRequest is the PATCH /api/invoices/:id/status body.
type UpdateInvoiceStatusRequest struct {
	Status string `json:"status" binding:"required" example:"Paid"`
}

type InvoiceResponse struct {
	ID            int64        `json:"id"`
	InvoiceNumber string       `json:"invoiceNumber"`
	ClientName    string       `json:"clientName"`
	Amount        domain.Money `json:"amount" swaggertype:"string"`
	Status        string       `json:"status"`
	Items         int          `json:"items"`
	DueDate       domain.Date  `json:"dueDate" swaggertype:"string"`
	CreatedAt     time.Time    `json:"createdAt"`
}

func ToInvoiceResponse(i *domain.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:            i.ID,
		InvoiceNumber: i.InvoiceNumber,
		ClientName:    i.ClientName,
		Amount:        i.Amount,
		Status:        i.Status,
		Items:         i.Items,
		DueDate:       i.DueDate,
		CreatedAt:     i.CreatedAt.UTC(),
	}
}

func ToInvoiceResponses(invoices []*domain.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, len(invoices))
	for i, inv := range invoices {
		out[i] = ToInvoiceResponse(inv)
	}
	return out
}

type InvoiceStatusTotalResponse struct {
	Status string       `json:"status"`
	Count  int          `json:"count"`
	Total  domain.Money `json:"total" swaggertype:"string"`
}

func ToInvoiceSummaryResponse(totals []domain.InvoiceStatusTotal) []InvoiceStatusTotalResponse {
	out := make([]InvoiceStatusTotalResponse, len(totals))
	for i, t := range totals {
		out[i] = InvoiceStatusTotalResponse{Status: t.Status, Count: t.Count, Total: t.Total}
	}
	return out
}
