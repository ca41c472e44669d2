package memory

import (
	"context"

	"petcare-api/internal/domain/clients"
)

type clientRepo struct {
	t *table[clients.Client]
}

func NewClientRepo() clients.Repository {
	return &clientRepo{t: newTable[clients.Client]()}
}

func (r *clientRepo) List(ctx context.Context) ([]clients.Client, error) {
	return r.t.all(), nil
}

func (r *clientRepo) GetByID(ctx context.Context, id int64) (clients.Client, error) {
	c, ok := r.t.get(id)
	if !ok {
		return clients.Client{}, clients.ErrNotFound
	}
	return c, nil
}

func (r *clientRepo) Create(ctx context.Context, c clients.Client) (int64, error) {
	return r.t.insert(func(id int64) clients.Client {
		c.ID = id
		return c
	}), nil
}

func (r *clientRepo) Update(ctx context.Context, c clients.Client) error {
	if !r.t.replace(c.ID, c) {
		return clients.ErrNotFound
	}
	return nil
}

func (r *clientRepo) Delete(ctx context.Context, id int64) error {
	if !r.t.remove(id) {
		return clients.ErrNotFound
	}
	return nil
}
