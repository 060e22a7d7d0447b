package sqlstore

import (
	"context"
	"fmt"

	"github.com/martijn/bizdesk/internal/core/domain"
	"github.com/martijn/bizdesk/internal/core/repository"
)

const clientColumns = `id, name, company, email, phone, location, status, tags, created_at, last_contact`

type clientRepository struct {
	db *DB
}

func NewClientRepository(db *DB) repository.ClientRepository {
	return &clientRepository{db: db}
}

// Create stores the client; both created_at and last_contact are set to now.
func (r *clientRepository) Create(ctx context.Context, client *domain.Client) error {
	query := `
		INSERT INTO clients (name, company, email, phone, location, status, tags, created_at, last_contact)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	now := r.db.now()
	id, err := r.db.insert(ctx, query,
		client.Name,
		client.Company,
		client.Email,
		client.Phone,
		client.Location,
		client.Status,
		client.Tags,
		now,
		now,
	)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", classify(err))
	}

	client.ID = id
	client.CreatedAt = now
	client.LastContact = now
	if client.Tags == nil {
		client.Tags = domain.Tags{}
	}
	return nil
}

func (r *clientRepository) FindByID(ctx context.Context, id int64) (*domain.Client, error) {
	query := r.db.Rebind(`SELECT ` + clientColumns + ` FROM clients WHERE id = ?`)

	var client domain.Client
	if err := r.db.GetContext(ctx, &client, query, id); err != nil {
		return nil, fmt.Errorf("failed to find client %d: %w", id, classify(err))
	}
	return &client, nil
}

func (r *clientRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM clients WHERE id = ?`), id); err != nil {
		return fmt.Errorf("failed to delete client: %w", classify(err))
	}
	return nil
}

func (r *clientRepository) List(ctx context.Context, filter repository.ClientFilter) ([]*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE 1=1`
	args := []interface{}{}

	query, args = ApplyFilters(query, args, filter.Filters)
	query = ApplyOrdering(query, filter.Order, "created_at DESC, id DESC")
	query, args = ApplyPagination(query, args, filter.Page, filter.PerPage)

	clients := []*domain.Client{}
	if err := r.db.SelectContext(ctx, &clients, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", classify(err))
	}
	return clients, nil
}

func (r *clientRepository) Count(ctx context.Context, filter repository.ClientFilter) (int, error) {
	query := `SELECT COUNT(*) FROM clients WHERE 1=1`
	args := []interface{}{}

	query, args = ApplyFilters(query, args, filter.Filters)

	var count int
	if err := r.db.GetContext(ctx, &count, r.db.Rebind(query), args...); err != nil {
		return 0, fmt.Errorf("failed to count clients: %w", classify(err))
	}
	return count, nil
}
