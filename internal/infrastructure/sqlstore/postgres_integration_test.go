//go:build integration

package sqlstore

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/martijn/bizdesk/internal/api/util"
	"github.com/martijn/bizdesk/internal/core/domain"
	"github.com/martijn/bizdesk/internal/core/repository"
)

func newPostgresDB(t *testing.T) *DB {
	t.Helper()

	ctr, err := postgres.Run(ctx(), "postgres:16-alpine",
		postgres.WithDatabase("bizdesk"),
		postgres.WithUsername("bizdesk"),
		postgres.WithPassword("bizdesk"),
		postgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, ctr)
	require.NoError(t, err)

	dsn, err := ctr.ConnectionString(ctx(), "sslmode=disable")
	require.NoError(t, err)

	db, err := Open(ctx(), Options{Driver: DriverPostgres, DSN: dsn})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.Migrate(ctx()))
	return db
}

func TestPostgres_Invoices(t *testing.T) {
	db := newPostgresDB(t)
	repo := NewInvoiceRepository(db)

	inv := newInvoice("INV-001", "99.995", domain.InvoiceStatusPending)
	require.NoError(t, repo.Create(ctx(), inv))
	require.NoError(t, repo.Create(ctx(), newInvoice("INV-002", "250", domain.InvoiceStatusPaid)))

	err := repo.Create(ctx(), newInvoice("INV-001", "1", domain.InvoiceStatusPending))
	assert.True(t, errors.Is(err, repository.ErrConflict))

	found, err := repo.FindByID(ctx(), inv.ID)
	require.NoError(t, err)
	assert.Equal(t, "100.00", found.Amount.String())
	assert.Equal(t, "2025-04-01", found.DueDate.String())
	assert.Equal(t, inv.CreatedAt, found.CreatedAt)

	filtered, err := repo.List(ctx(), repository.InvoiceFilter{ListFilter: util.ListFilter{
		Filters: []util.QueryFilter{{Field: "amount", Operator: util.OpGte, Value: "200"}},
	}})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "INV-002", filtered[0].InvoiceNumber)

	updated, err := repo.UpdateStatus(ctx(), inv.ID, domain.InvoiceStatusPaid)
	require.NoError(t, err)
	assert.Equal(t, domain.InvoiceStatusPaid, updated.Status)

	totals, err := repo.TotalsByStatus(ctx())
	require.NoError(t, err)
	require.Len(t, totals, 1)
	assert.Equal(t, 2, totals[0].Count)
	assert.Equal(t, "350.00", totals[0].Total.String())

	_, err = repo.UpdateStatus(ctx(), 999, domain.InvoiceStatusPaid)
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}

func TestPostgres_ClientsAndTransactions(t *testing.T) {
	db := newPostgresDB(t)

	clients := NewClientRepository(db)
	c := &domain.Client{
		Name: "Jane Doe", Company: "Acme Corp", Email: "jane@acme.test",
		Phone: "123", Location: "Amsterdam", Status: domain.ClientStatusLead,
		Tags: domain.Tags{"vip", "design"},
	}
	require.NoError(t, clients.Create(ctx(), c))

	found, err := clients.FindByID(ctx(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.Tags{"vip", "design"}, found.Tags)

	transactions := NewTransactionRepository(db)
	for _, tx := range []*domain.Transaction{
		{Title: "Website", Client: "Acme", Amount: domain.MustMoney("1500"), Type: domain.TransactionTypeIncome},
		{Title: "Lunch", Client: "Acme", Amount: domain.MustMoney("12.50"), Type: domain.TransactionTypeExpense},
		{Title: "Train", Client: "Acme", Amount: domain.MustMoney("42.25"), Type: domain.TransactionTypeTravel},
	} {
		require.NoError(t, transactions.Create(ctx(), tx))
	}

	totals, err := transactions.TotalsByType(ctx())
	require.NoError(t, err)
	summary := domain.Summarize(totals)
	assert.Equal(t, "1445.25", summary.Net.String())
	assert.Equal(t, 3, summary.Transactions)

	require.NoError(t, transactions.Delete(ctx(), 999))
}
