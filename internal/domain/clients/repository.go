package clients

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("client not found")

type Repository interface {
	List(ctx context.Context) ([]Client, error)
	GetByID(ctx context.Context, id int64) (Client, error)
	// Create persiste c ignorando c.ID y devuelve el id asignado por el store.
	Create(ctx context.Context, c Client) (int64, error)
	Update(ctx context.Context, c Client) error
	Delete(ctx context.Context, id int64) error
}
