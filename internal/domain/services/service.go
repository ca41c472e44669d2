package services

import (
	"context"

	"petcare-api/internal/platform/patch"
)

// Catalog es el caso de uso del módulo. No se llama Service para no
// chocar con la entidad.
type Catalog struct {
	repo Repository
}

func NewCatalog(repo Repository) *Catalog {
	return &Catalog{repo: repo}
}

type CreateInput struct {
	Title       string
	Price       float64
	Description string
	CarerID     int64
}

// UpdateInput: nil = no tocar. carer_id en null deja el servicio sin cuidador.
type UpdateInput struct {
	Title       *string
	Price       *float64
	Description *string
	CarerID     patch.Field[int64]
}

func (c *Catalog) List(ctx context.Context) ([]Service, error) {
	return c.repo.List(ctx)
}

func (c *Catalog) GetByID(ctx context.Context, id int64) (Service, error) {
	return c.repo.GetByID(ctx, id)
}

func (c *Catalog) Create(ctx context.Context, in CreateInput) (Service, error) {
	s := Service{
		Title:       in.Title,
		Price:       in.Price,
		Description: in.Description,
		CarerID:     in.CarerID,
	}

	id, err := c.repo.Create(ctx, s)
	if err != nil {
		return Service{}, err
	}
	s.ID = id
	return s, nil
}

func (c *Catalog) Update(ctx context.Context, id int64, in UpdateInput) (Service, error) {
	s, err := c.repo.GetByID(ctx, id)
	if err != nil {
		return Service{}, err
	}

	setIfPresent(&s.Title, in.Title)
	setIfPresent(&s.Price, in.Price)
	setIfPresent(&s.Description, in.Description)
	in.CarerID.ApplyZero(&s.CarerID)

	if err := c.repo.Update(ctx, s); err != nil {
		return Service{}, err
	}
	return s, nil
}

func (c *Catalog) Delete(ctx context.Context, id int64) error {
	return c.repo.Delete(ctx, id)
}

func setIfPresent[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
