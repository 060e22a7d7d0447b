package repository

import (
	"context"

	"github.com/martijn/bizdesk/internal/api/util"
	"github.com/martijn/bizdesk/internal/core/domain"
)

type InvoiceFilter struct {
	util.ListFilter
}

type InvoiceRepository interface {
	Create(ctx context.Context, invoice *domain.Invoice) error
	FindByID(ctx context.Context, id int64) (*domain.Invoice, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter InvoiceFilter) ([]*domain.Invoice, error)
	Count(ctx context.Context, filter InvoiceFilter) (int, error)

	// UpdateStatus overwrites only the status column and returns the updated row.
	UpdateStatus(ctx context.Context, id int64, status string) (*domain.Invoice, error)

	// TotalsByStatus groups invoices by status with count and summed amount.
	TotalsByStatus(ctx context.Context) ([]domain.InvoiceStatusTotal, error)
}
