package contracts

import (
	"context"

	"petcare-api/internal/platform/patch"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateInput struct {
	PetID     int64
	ServiceID int64
	Date      string
	Price     float64
}

// UpdateInput: nil = no tocar. Los campos patch.Field aceptan null,
// que vacía la columna (FK a NULL, assessment/comments a NULL).
type UpdateInput struct {
	PetID      patch.Field[int64]
	ServiceID  patch.Field[int64]
	Date       *string
	Price      *float64
	Assessment patch.Field[int64]
	Comments   patch.Field[string]
}

func (s *Service) List(ctx context.Context) ([]Contract, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Contract, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Contract, error) {
	c := Contract{
		PetID:     in.PetID,
		ServiceID: in.ServiceID,
		Date:      in.Date,
		Price:     in.Price,
	}

	id, err := s.repo.Create(ctx, c)
	if err != nil {
		return Contract{}, err
	}
	c.ID = id
	return c, nil
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (Contract, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Contract{}, err
	}

	in.PetID.ApplyZero(&c.PetID)
	in.ServiceID.ApplyZero(&c.ServiceID)
	setIfPresent(&c.Date, in.Date)
	setIfPresent(&c.Price, in.Price)
	in.Assessment.ApplyPtr(&c.Assessment)
	in.Comments.ApplyPtr(&c.Comments)

	if err := s.repo.Update(ctx, c); err != nil {
		return Contract{}, err
	}
	return c, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func setIfPresent[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
