package pets

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("pet not found")

type Repository interface {
	List(ctx context.Context) ([]Pet, error)
	GetByID(ctx context.Context, id int64) (Pet, error)
	Create(ctx context.Context, p Pet) (int64, error)
	Update(ctx context.Context, p Pet) error
	Delete(ctx context.Context, id int64) error
}
