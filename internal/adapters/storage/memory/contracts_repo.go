package memory

import (
	"context"

	"petcare-api/internal/domain/contracts"
)

type contractRepo struct {
	t *table[contracts.Contract]
}

func NewContractRepo() contracts.Repository {
	return &contractRepo{t: newTable[contracts.Contract]()}
}

func (r *contractRepo) List(ctx context.Context) ([]contracts.Contract, error) {
	return r.t.all(), nil
}

func (r *contractRepo) GetByID(ctx context.Context, id int64) (contracts.Contract, error) {
	c, ok := r.t.get(id)
	if !ok {
		return contracts.Contract{}, contracts.ErrNotFound
	}
	return c, nil
}

func (r *contractRepo) Create(ctx context.Context, c contracts.Contract) (int64, error) {
	return r.t.insert(func(id int64) contracts.Contract {
		c.ID = id
		return c
	}), nil
}

func (r *contractRepo) Update(ctx context.Context, c contracts.Contract) error {
	if !r.t.replace(c.ID, c) {
		return contracts.ErrNotFound
	}
	return nil
}

func (r *contractRepo) Delete(ctx context.Context, id int64) error {
	if !r.t.remove(id) {
		return contracts.ErrNotFound
	}
	return nil
}
