package repository

import (
	"context"

	"github.com/martijn/bizdesk/internal/api/util"
	"github.com/martijn/bizdesk/internal/core/domain"
)

type TransactionFilter struct {
	util.ListFilter
}

type TransactionRepository interface {
	Create(ctx context.Context, transaction *domain.Transaction) error
	FindByID(ctx context.Context, id int64) (*domain.Transaction, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter TransactionFilter) ([]*domain.Transaction, error)
	Count(ctx context.Context, filter TransactionFilter) (int, error)

	// TotalsByType groups transactions by type with count and summed amount.
	TotalsByType(ctx context.Context) ([]domain.TransactionTypeTotal, error)
}
