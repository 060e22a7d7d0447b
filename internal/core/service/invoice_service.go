package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/martijn/bizdesk/internal/core/domain"
	"github.com/martijn/bizdesk/internal/core/repository"
)

type InvoiceService struct {
	repo repository.InvoiceRepository
}

func NewInvoiceService(repo repository.InvoiceRepository) *InvoiceService {
	return &InvoiceService{repo: repo}
}

func (s *InvoiceService) ListInvoices(ctx context.Context, filter repository.InvoiceFilter) ([]*domain.Invoice, error) {
	invoices, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fromRepoError(err, "invoices")
	}
	return invoices, nil
}

func (s *InvoiceService) CountInvoices(ctx context.Context, filter repository.InvoiceFilter) (int, error) {
	count, err := s.repo.Count(ctx, filter)
	if err != nil {
		return 0, fromRepoError(err, "invoices")
	}
	return count, nil
}

func (s *InvoiceService) GetInvoice(ctx context.Context, id int64) (*domain.Invoice, error) {
	invoice, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fromRepoError(err, fmt.Sprintf("invoice %d", id))
	}
	return invoice, nil
}

// CreateInvoice defaults status to Pending and items to 1. A duplicate
// invoice number is a 409.
func (s *InvoiceService) CreateInvoice(ctx context.Context, invoice *domain.Invoice) error {
	invoice.ApplyDefaults()
	if err := validateEntity(invoice); err != nil {
		return err
	}

	if err := s.repo.Create(ctx, invoice); err != nil {
		return fromRepoError(err, fmt.Sprintf("invoice %s", invoice.InvoiceNumber))
	}
	return nil
}

func (s *InvoiceService) DeleteInvoice(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fromRepoError(err, fmt.Sprintf("invoice %d", id))
	}
	return nil
}

// UpdateInvoiceStatus replaces the status of an existing invoice, leaving
// every other field untouched. Any non-empty status is accepted.
func (s *InvoiceService) UpdateInvoiceStatus(ctx context.Context, id int64, status string) (*domain.Invoice, error) {
	if strings.TrimSpace(status) == "" {
		return nil, newValidationError("status is required")
	}

	invoice, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, fromRepoError(err, fmt.Sprintf("invoice %d", id))
	}
	return invoice, nil
}

// InvoiceSummary returns invoice count and amount per status.
func (s *InvoiceService) InvoiceSummary(ctx context.Context) ([]domain.InvoiceStatusTotal, error) {
	totals, err := s.repo.TotalsByStatus(ctx)
	if err != nil {
		return nil, fromRepoError(err, "invoices")
	}
	return totals, nil
}
