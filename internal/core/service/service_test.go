package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/martijn/bizdesk/internal/core/domain"
	"github.com/martijn/bizdesk/internal/core/repository"
	"github.com/martijn/bizdesk/internal/infrastructure/sqlstore"
)

type services struct {
	appointments *AppointmentService
	clients      *ClientService
	invoices     *InvoiceService
	transactions *TransactionService
}

func newServices(t *testing.T) *services {
	t.Helper()

	db, err := sqlstore.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &services{
		appointments: NewAppointmentService(sqlstore.NewAppointmentRepository(db)),
		clients:      NewClientService(sqlstore.NewClientRepository(db)),
		invoices:     NewInvoiceService(sqlstore.NewInvoiceRepository(db)),
		transactions: NewTransactionService(sqlstore.NewTransactionRepository(db)),
	}
}

func requireServiceError(t *testing.T, err error, code int) *ServiceError {
	t.Helper()

	var svcErr *ServiceError
	require.True(t, errors.As(err, &svcErr), "expected ServiceError, got %v", err)
	assert.Equal(t, code, svcErr.Code)
	return svcErr
}

func TestCreateAppointment_DefaultsStatus(t *testing.T) {
	s := newServices(t)

	a := &domain.Appointment{
		Title:      "Kickoff",
		ClientName: "Acme",
		Date:       domain.MustDate("2025-03-14"),
		Time:       "10:30",
		Duration:   "1h",
		Location:   "Office",
		Type:       "Meeting",
	}
	require.NoError(t, s.appointments.CreateAppointment(context.Background(), a))
	assert.Equal(t, domain.AppointmentStatusPending, a.Status)
	assert.NotZero(t, a.ID)
}

func TestCreateAppointment_MissingFields(t *testing.T) {
	s := newServices(t)

	err := s.appointments.CreateAppointment(context.Background(), &domain.Appointment{Title: "Kickoff"})
	svcErr := requireServiceError(t, err, http.StatusBadRequest)
	assert.Contains(t, svcErr.Message, "clientName is required")
	assert.Contains(t, svcErr.Message, "date is required")
}

func TestCreateClient_Defaults(t *testing.T) {
	s := newServices(t)

	c := &domain.Client{Name: "Jane", Company: "Acme", Email: "jane@acme.test", Phone: "1", Location: "NL"}
	require.NoError(t, s.clients.CreateClient(context.Background(), c))
	assert.Equal(t, domain.ClientStatusLead, c.Status)
	assert.Equal(t, domain.Tags{}, c.Tags)
	assert.False(t, c.LastContact.IsZero())
}

func TestCreateInvoice(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()

	inv := &domain.Invoice{
		InvoiceNumber: "INV-001",
		ClientName:    "Acme",
		Amount:        domain.MustMoney("100"),
		Items:         domain.DefaultInvoiceItems,
		DueDate:       domain.MustDate("2025-04-01"),
	}
	require.NoError(t, s.invoices.CreateInvoice(ctx, inv))
	assert.Equal(t, domain.InvoiceStatusPending, inv.Status)
	assert.Equal(t, domain.DefaultInvoiceItems, inv.Items)

	dup := *inv
	dup.ID = 0
	err := s.invoices.CreateInvoice(ctx, &dup)
	requireServiceError(t, err, http.StatusConflict)

	missingAmount := &domain.Invoice{InvoiceNumber: "INV-002", ClientName: "Acme", Items: 1, DueDate: domain.MustDate("2025-04-01")}
	svcErr := requireServiceError(t, s.invoices.CreateInvoice(ctx, missingAmount), http.StatusBadRequest)
	assert.Equal(t, "amount is required", svcErr.Message)

	zeroItems := &domain.Invoice{InvoiceNumber: "INV-003", ClientName: "Acme", Amount: domain.MustMoney("1"), DueDate: domain.MustDate("2025-04-01")}
	svcErr = requireServiceError(t, s.invoices.CreateInvoice(ctx, zeroItems), http.StatusBadRequest)
	assert.Equal(t, "items must be at least 1", svcErr.Message)
}

func TestCreateInvoice_AmountOutOfRange(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()

	for _, amount := range []string{"123456789012.34", "-100000000"} {
		inv := &domain.Invoice{
			InvoiceNumber: "INV-" + amount,
			ClientName:    "Acme",
			Amount:        domain.NewMoney(decimal.RequireFromString(amount)),
			Items:         1,
			DueDate:       domain.MustDate("2025-04-01"),
		}
		svcErr := requireServiceError(t, s.invoices.CreateInvoice(ctx, inv), http.StatusBadRequest)
		assert.Equal(t, "amount must be between -99999999.99 and 99999999.99", svcErr.Message)
	}

	limit := &domain.Invoice{
		InvoiceNumber: "INV-MAX",
		ClientName:    "Acme",
		Amount:        domain.MustMoney("99999999.99"),
		Items:         1,
		DueDate:       domain.MustDate("2025-04-01"),
	}
	require.NoError(t, s.invoices.CreateInvoice(ctx, limit))
}

func TestUpdateInvoiceStatus(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()

	inv := &domain.Invoice{
		InvoiceNumber: "INV-001",
		ClientName:    "Acme",
		Amount:        domain.MustMoney("100"),
		Items:         domain.DefaultInvoiceItems,
		DueDate:       domain.MustDate("2025-04-01"),
	}
	require.NoError(t, s.invoices.CreateInvoice(ctx, inv))

	updated, err := s.invoices.UpdateInvoiceStatus(ctx, inv.ID, domain.InvoiceStatusPaid)
	require.NoError(t, err)
	assert.Equal(t, domain.InvoiceStatusPaid, updated.Status)

	_, err = s.invoices.UpdateInvoiceStatus(ctx, inv.ID, " ")
	requireServiceError(t, err, http.StatusBadRequest)

	_, err = s.invoices.UpdateInvoiceStatus(ctx, 999, domain.InvoiceStatusPaid)
	svcErr := requireServiceError(t, err, http.StatusNotFound)
	assert.Equal(t, "invoice 999 not found", svcErr.Message)
}

func TestDeleteMissingIsNotAnError(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()

	assert.NoError(t, s.appointments.DeleteAppointment(ctx, 42))
	assert.NoError(t, s.clients.DeleteClient(ctx, 42))
	assert.NoError(t, s.invoices.DeleteInvoice(ctx, 42))
	assert.NoError(t, s.transactions.DeleteTransaction(ctx, 42))
}

func TestGetMissingIsNotFound(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()

	_, err := s.transactions.GetTransaction(ctx, 7)
	requireServiceError(t, err, http.StatusNotFound)

	_, err = s.clients.GetClient(ctx, 7)
	requireServiceError(t, err, http.StatusNotFound)
}

func TestFinanceSummary(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()

	for _, tx := range []*domain.Transaction{
		{Title: "Consulting", Client: "Acme", Amount: domain.MustMoney("500"), Type: domain.TransactionTypeIncome},
		{Title: "Lunch", Client: "Acme", Amount: domain.MustMoney("12.50"), Type: domain.TransactionTypeExpense},
		{Title: "Train", Client: "Acme", Amount: domain.MustMoney("40"), Type: domain.TransactionTypeTravel},
	} {
		require.NoError(t, s.transactions.CreateTransaction(ctx, tx))
	}

	summary, err := s.transactions.FinanceSummary(ctx)
	require.NoError(t, err)
	assert.Equal(t, "447.50", summary.Net.String())
	assert.Equal(t, 3, summary.Transactions)
}

func TestCreateTransaction_RequiresType(t *testing.T) {
	s := newServices(t)

	err := s.transactions.CreateTransaction(context.Background(), &domain.Transaction{
		Title: "Lunch", Client: "Acme", Amount: domain.MustMoney("12.50"),
	})
	svcErr := requireServiceError(t, err, http.StatusBadRequest)
	assert.Equal(t, "type is required", svcErr.Message)
}

func TestCreateTransaction_AmountOutOfRange(t *testing.T) {
	s := newServices(t)

	err := s.transactions.CreateTransaction(context.Background(), &domain.Transaction{
		Title:  "Windfall",
		Client: "Acme",
		Amount: domain.NewMoney(decimal.RequireFromString("123456789012.34")),
		Type:   domain.TransactionTypeIncome,
	})
	svcErr := requireServiceError(t, err, http.StatusBadRequest)
	assert.Equal(t, "amount must be between -99999999.99 and 99999999.99", svcErr.Message)
}

func TestFromRepoError(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{fmt.Errorf("find: %w", repository.ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("insert: %w", repository.ErrConflict), http.StatusConflict},
		{fmt.Errorf("ping: %w", repository.ErrUnavailable), http.StatusServiceUnavailable},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		err := fromRepoError(tt.err, "invoice 1")
		svcErr := requireServiceError(t, err, tt.code)
		assert.ErrorIs(t, svcErr, tt.err)
	}

	assert.NoError(t, fromRepoError(nil, "invoice 1"))
}
