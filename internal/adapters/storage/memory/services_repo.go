package memory

import (
	"context"

	"petcare-api/internal/domain/services"
)

type serviceRepo struct {
	t *table[services.Service]
}

func NewServiceRepo() services.Repository {
	return &serviceRepo{t: newTable[services.Service]()}
}

func (r *serviceRepo) List(ctx context.Context) ([]services.Service, error) {
	return r.t.all(), nil
}

func (r *serviceRepo) GetByID(ctx context.Context, id int64) (services.Service, error) {
	s, ok := r.t.get(id)
	if !ok {
		return services.Service{}, services.ErrNotFound
	}
	return s, nil
}

func (r *serviceRepo) Create(ctx context.Context, s services.Service) (int64, error) {
	return r.t.insert(func(id int64) services.Service {
		s.ID = id
		return s
	}), nil
}

func (r *serviceRepo) Update(ctx context.Context, s services.Service) error {
	if !r.t.replace(s.ID, s) {
		return services.ErrNotFound
	}
	return nil
}

func (r *serviceRepo) Delete(ctx context.Context, id int64) error {
	if !r.t.remove(id) {
		return services.ErrNotFound
	}
	return nil
}
