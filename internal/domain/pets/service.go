package pets

import "context"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateInput struct {
	Name        string
	Image       string
	Description string
	OwnerID     int64
}

// UpdateInput no incluye OwnerID: el dueño no cambia por PUT.
type UpdateInput struct {
	Name        *string
	Image       *string
	Description *string
}

func (s *Service) List(ctx context.Context) ([]Pet, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Pet, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Pet, error) {
	p := Pet{
		Name:        in.Name,
		Image:       in.Image,
		Description: in.Description,
		OwnerID:     in.OwnerID,
	}

	id, err := s.repo.Create(ctx, p)
	if err != nil {
		return Pet{}, err
	}
	p.ID = id
	return p, nil
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (Pet, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Pet{}, err
	}

	setIfPresent(&p.Name, in.Name)
	setIfPresent(&p.Image, in.Image)
	setIfPresent(&p.Description, in.Description)

	if err := s.repo.Update(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func setIfPresent[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
