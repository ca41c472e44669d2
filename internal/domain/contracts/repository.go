package contracts

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("contract not found")

type Repository interface {
	List(ctx context.Context) ([]Contract, error)
	GetByID(ctx context.Context, id int64) (Contract, error)
	Create(ctx context.Context, c Contract) (int64, error)
	Update(ctx context.Context, c Contract) error
	Delete(ctx context.Context, id int64) error
}
