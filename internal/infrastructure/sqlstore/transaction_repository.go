package sqlstore

import (
	"context"
	"fmt"

	"github.com/martijn/bizdesk/internal/core/domain"
	"github.com/martijn/bizdesk/internal/core/repository"
)

const transactionColumns = `id, title, client, amount, type, created_at`

type transactionRepository struct {
	db *DB
}

func NewTransactionRepository(db *DB) repository.TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(ctx context.Context, transaction *domain.Transaction) error {
	query := `
		INSERT INTO transactions (title, client, amount, type, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	createdAt := r.db.now()
	id, err := r.db.insert(ctx, query,
		transaction.Title,
		transaction.Client,
		transaction.Amount,
		string(transaction.Type),
		createdAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", classify(err))
	}

	transaction.ID = id
	transaction.CreatedAt = createdAt
	return nil
}

func (r *transactionRepository) FindByID(ctx context.Context, id int64) (*domain.Transaction, error) {
	query := r.db.Rebind(`SELECT ` + transactionColumns + ` FROM transactions WHERE id = ?`)

	var transaction domain.Transaction
	if err := r.db.GetContext(ctx, &transaction, query, id); err != nil {
		return nil, fmt.Errorf("failed to find transaction %d: %w", id, classify(err))
	}
	return &transaction, nil
}

func (r *transactionRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM transactions WHERE id = ?`), id); err != nil {
		return fmt.Errorf("failed to delete transaction: %w", classify(err))
	}
	return nil
}

func (r *transactionRepository) List(ctx context.Context, filter repository.TransactionFilter) ([]*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE 1=1`
	args := []interface{}{}

	query, args = ApplyFilters(query, args, filter.Filters)
	query = ApplyOrdering(query, filter.Order, "created_at DESC, id DESC")
	query, args = ApplyPagination(query, args, filter.Page, filter.PerPage)

	transactions := []*domain.Transaction{}
	if err := r.db.SelectContext(ctx, &transactions, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", classify(err))
	}
	return transactions, nil
}

func (r *transactionRepository) Count(ctx context.Context, filter repository.TransactionFilter) (int, error) {
	query := `SELECT COUNT(*) FROM transactions WHERE 1=1`
	args := []interface{}{}

	query, args = ApplyFilters(query, args, filter.Filters)

	var count int
	if err := r.db.GetContext(ctx, &count, r.db.Rebind(query), args...); err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", classify(err))
	}
	return count, nil
}

func (r *transactionRepository) TotalsByType(ctx context.Context) ([]domain.TransactionTypeTotal, error) {
	query := `
		SELECT type, COUNT(*) AS count, COALESCE(SUM(CAST(amount AS DECIMAL(12,2))), 0) AS total
		FROM transactions
		GROUP BY type
		ORDER BY type
	`

	totals := []domain.TransactionTypeTotal{}
	if err := r.db.SelectContext(ctx, &totals, query); err != nil {
		return nil, fmt.Errorf("failed to total transactions: %w", classify(err))
	}
	return totals, nil
}
