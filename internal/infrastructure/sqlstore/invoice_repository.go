package sqlstore

import (
	"context"
	"fmt"

	"github.com/martijn/bizdesk/internal/core/domain"
	"github.com/martijn/bizdesk/internal/core/repository"
)

const invoiceColumns = `id, invoice_number, client_name, amount, status, items, due_date, created_at`

type invoiceRepository struct {
	db *DB
}

func NewInvoiceRepository(db *DB) repository.InvoiceRepository {
	return &invoiceRepository{db: db}
}

func (r *invoiceRepository) Create(ctx context.Context, invoice *domain.Invoice) error {
	query := `
		INSERT INTO invoices (invoice_number, client_name, amount, status, items, due_date, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	createdAt := r.db.now()
	id, err := r.db.insert(ctx, query,
		invoice.InvoiceNumber,
		invoice.ClientName,
		invoice.Amount,
		invoice.Status,
		invoice.Items,
		invoice.DueDate,
		createdAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create invoice: %w", classify(err))
	}

	invoice.ID = id
	invoice.CreatedAt = createdAt
	return nil
}

func (r *invoiceRepository) FindByID(ctx context.Context, id int64) (*domain.Invoice, error) {
	query := r.db.Rebind(`SELECT ` + invoiceColumns + ` FROM invoices WHERE id = ?`)

	var invoice domain.Invoice
	if err := r.db.GetContext(ctx, &invoice, query, id); err != nil {
		return nil, fmt.Errorf("failed to find invoice %d: %w", id, classify(err))
	}
	return &invoice, nil
}

func (r *invoiceRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM invoices WHERE id = ?`), id); err != nil {
		return fmt.Errorf("failed to delete invoice: %w", classify(err))
	}
	return nil
}

// UpdateStatus changes only the status column. MySQL reports zero affected
// rows when the status is unchanged, so existence is checked by re-reading
// the row rather than by RowsAffected.
func (r *invoiceRepository) UpdateStatus(ctx context.Context, id int64, status string) (*domain.Invoice, error) {
	query := r.db.Rebind(`UPDATE invoices SET status = ? WHERE id = ?`)
	if _, err := r.db.ExecContext(ctx, query, status, id); err != nil {
		return nil, fmt.Errorf("failed to update invoice status: %w", classify(err))
	}
	return r.FindByID(ctx, id)
}

func (r *invoiceRepository) List(ctx context.Context, filter repository.InvoiceFilter) ([]*domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE 1=1`
	args := []interface{}{}

	query, args = ApplyFilters(query, args, filter.Filters)
	query = ApplyOrdering(query, filter.Order, "created_at DESC, id DESC")
	query, args = ApplyPagination(query, args, filter.Page, filter.PerPage)

	invoices := []*domain.Invoice{}
	if err := r.db.SelectContext(ctx, &invoices, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", classify(err))
	}
	return invoices, nil
}

func (r *invoiceRepository) Count(ctx context.Context, filter repository.InvoiceFilter) (int, error) {
	query := `SELECT COUNT(*) FROM invoices WHERE 1=1`
	args := []interface{}{}

	query, args = ApplyFilters(query, args, filter.Filters)

	var count int
	if err := r.db.GetContext(ctx, &count, r.db.Rebind(query), args...); err != nil {
		return 0, fmt.Errorf("failed to count invoices: %w", classify(err))
	}
	return count, nil
}

func (r *invoiceRepository) TotalsByStatus(ctx context.Context) ([]domain.InvoiceStatusTotal, error) {
	query := `
		SELECT status, COUNT(*) AS count, COALESCE(SUM(CAST(amount AS DECIMAL(12,2))), 0) AS total
		FROM invoices
		GROUP BY status
		ORDER BY status
	`

	totals := []domain.InvoiceStatusTotal{}
	if err := r.db.SelectContext(ctx, &totals, query); err != nil {
		return nil, fmt.Errorf("failed to total invoices: %w", classify(err))
	}
	return totals, nil
}
