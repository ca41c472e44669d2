package clients

import "context"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateInput struct {
	Roles       string
	Name        string
	Surname     string
	Email       string
	Password    string
	Avatar      string
	Description string
	City        string
}

// UpdateInput: nil = no tocar.
type UpdateInput struct {
	Roles       *string
	Name        *string
	Surname     *string
	Email       *string
	Password    *string
	Avatar      *string
	Description *string
	City        *string
}

func (s *Service) List(ctx context.Context) ([]Client, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Client, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Client, error) {
	c := Client{
		Roles:       in.Roles,
		Name:        in.Name,
		Surname:     in.Surname,
		Email:       in.Email,
		Password:    in.Password,
		Avatar:      in.Avatar,
		Description: in.Description,
		City:        in.City,
	}

	id, err := s.repo.Create(ctx, c)
	if err != nil {
		return Client{}, err
	}
	c.ID = id
	return c, nil
}

// Update aplica un update parcial: solo cambian los campos presentes en in.
func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (Client, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Client{}, err
	}

	setIfPresent(&c.Roles, in.Roles)
	setIfPresent(&c.Name, in.Name)
	setIfPresent(&c.Surname, in.Surname)
	setIfPresent(&c.Email, in.Email)
	setIfPresent(&c.Password, in.Password)
	setIfPresent(&c.Avatar, in.Avatar)
	setIfPresent(&c.Description, in.Description)
	setIfPresent(&c.City, in.City)

	if err := s.repo.Update(ctx, c); err != nil {
		return Client{}, err
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
