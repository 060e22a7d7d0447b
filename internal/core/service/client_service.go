package service

import (
	"context"
	"fmt"

	"github.com/martijn/bizdesk/internal/core/domain"
	"github.com/martijn/bizdesk/internal/core/repository"
)

type ClientService struct {
	repo repository.ClientRepository
}

func NewClientService(repo repository.ClientRepository) *ClientService {
	return &ClientService{repo: repo}
}

func (s *ClientService) ListClients(ctx context.Context, filter repository.ClientFilter) ([]*domain.Client, error) {
	clients, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fromRepoError(err, "clients")
	}
	return clients, nil
}

func (s *ClientService) CountClients(ctx context.Context, filter repository.ClientFilter) (int, error) {
	count, err := s.repo.Count(ctx, filter)
	if err != nil {
		return 0, fromRepoError(err, "clients")
	}
	return count, nil
}

func (s *ClientService) GetClient(ctx context.Context, id int64) (*domain.Client, error) {
	client, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fromRepoError(err, fmt.Sprintf("client %d", id))
	}
	return client, nil
}

// CreateClient defaults status to Lead and tags to an empty list.
func (s *ClientService) CreateClient(ctx context.Context, client *domain.Client) error {
	client.ApplyDefaults()
	if err := validateEntity(client); err != nil {
		return err
	}

	if err := s.repo.Create(ctx, client); err != nil {
		return fromRepoError(err, "client")
	}
	return nil
}

func (s *ClientService) DeleteClient(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fromRepoError(err, fmt.Sprintf("client %d", id))
	}
	return nil
}
