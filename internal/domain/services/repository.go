package services

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("service not found")

type Repository interface {
	List(ctx context.Context) ([]Service, error)
	GetByID(ctx context.Context, id int64) (Service, error)
	Create(ctx context.Context, s Service) (int64, error)
	Update(ctx context.Context, s Service) error
	Delete(ctx context.Context, id int64) error
}
