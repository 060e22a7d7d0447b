package domain

import "time"

const (
	InvoiceStatusPending = "Pending"
	InvoiceStatusPaid    = "Paid"
	InvoiceStatusOverdue = "Overdue"

	DefaultInvoiceItems = 1
)

// Invoice is billed to a client by name. InvoiceNumber is unique across all
// invoices; Status is the only field that changes after creation.
type Invoice struct {
	ID            int64     `db:"id"`
	InvoiceNumber string    `db:"invoice_number" validate:"required"`
	ClientName    string    `db:"client_name" validate:"required"`
	Amount        Money     `db:"amount" validate:"required,money"`
	Status        string    `db:"status" validate:"required"`
	Items         int       `db:"items" validate:"min=1"`
	DueDate       Date      `db:"due_date" validate:"required"`
	CreatedAt     time.Time `db:"created_at"`
}

// ApplyDefaults fills in the status. Items has no zero-value default here:
// callers start from DefaultInvoiceItems, so 0 always means an explicit 0.
func (i *Invoice) ApplyDefaults() {
	if i.Status == "" {
		i.Status = InvoiceStatusPending
	}
}

// InvoiceStatusTotal aggregates invoices sharing one status.
type InvoiceStatusTotal struct {
	Status string `db:"status"`
	Count  int    `db:"count"`
	Total  Money  `db:"total"`
}
