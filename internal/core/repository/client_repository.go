package repository

import (
	"context"

	"github.com/martijn/bizdesk/internal/api/util"
	"github.com/martijn/bizdesk/internal/core/domain"
)

type ClientFilter struct {
	util.ListFilter
}

type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) error
	FindByID(ctx context.Context, id int64) (*domain.Client, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter ClientFilter) ([]*domain.Client, error)
	Count(ctx context.Context, filter ClientFilter) (int, error)
}
