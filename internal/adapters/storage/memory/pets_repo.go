package memory

import (
	"context"

	"petcare-api/internal/domain/pets"
)

type petRepo struct {
	t *table[pets.Pet]
}

func NewPetRepo() pets.Repository {
	return &petRepo{t: newTable[pets.Pet]()}
}

func (r *petRepo) List(ctx context.Context) ([]pets.Pet, error) {
	return r.t.all(), nil
}

func (r *petRepo) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	p, ok := r.t.get(id)
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	return p, nil
}

func (r *petRepo) Create(ctx context.Context, p pets.Pet) (int64, error) {
	return r.t.insert(func(id int64) pets.Pet {
		p.ID = id
		return p
	}), nil
}

func (r *petRepo) Update(ctx context.Context, p pets.Pet) error {
	if !r.t.replace(p.ID, p) {
		return pets.ErrNotFound
	}
	return nil
}

func (r *petRepo) Delete(ctx context.Context, id int64) error {
	if !r.t.remove(id) {
		return pets.ErrNotFound
	}
	return nil
}
