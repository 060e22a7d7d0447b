package service

import (
	"context"
	"fmt"

	"github.com/martijn/bizdesk/internal/core/domain"
	"github.com/martijn/bizdesk/internal/core/repository"
)

type TransactionService struct {
	repo repository.TransactionRepository
}

func NewTransactionService(repo repository.TransactionRepository) *TransactionService {
	return &TransactionService{repo: repo}
}

func (s *TransactionService) ListTransactions(ctx context.Context, filter repository.TransactionFilter) ([]*domain.Transaction, error) {
	transactions, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fromRepoError(err, "transactions")
	}
	return transactions, nil
}

func (s *TransactionService) CountTransactions(ctx context.Context, filter repository.TransactionFilter) (int, error) {
	count, err := s.repo.Count(ctx, filter)
	if err != nil {
		return 0, fromRepoError(err, "transactions")
	}
	return count, nil
}

func (s *TransactionService) GetTransaction(ctx context.Context, id int64) (*domain.Transaction, error) {
	transaction, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fromRepoError(err, fmt.Sprintf("transaction %d", id))
	}
	return transaction, nil
}

func (s *TransactionService) CreateTransaction(ctx context.Context, transaction *domain.Transaction) error {
	if err := validateEntity(transaction); err != nil {
		return err
	}

	if err := s.repo.Create(ctx, transaction); err != nil {
		return fromRepoError(err, "transaction")
	}
	return nil
}

func (s *TransactionService) DeleteTransaction(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fromRepoError(err, fmt.Sprintf("transaction %d", id))
	}
	return nil
}

// FinanceSummary totals transactions per type and nets income against
// expenses and travel.
func (s *TransactionService) FinanceSummary(ctx context.Context) (domain.FinanceSummary, error) {
	totals, err := s.repo.TotalsByType(ctx)
	if err != nil {
		return domain.FinanceSummary{}, fromRepoError(err, "transactions")
	}
	return domain.Summarize(totals), nil
}
