package customer

import (
	"context"
	"strings"
)

type UpdateRequest struct {
	Name    *string
	Email   *string
	Phone   *string
	Address *string
	Notes   *string
}

type Service interface {
	GetByID(ctx context.Context, id string) (*Customer, error)
	List(ctx context.Context, filter Filter) ([]*Customer, int, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Customer, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetByID(ctx context.Context, id string) (*Customer, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Customer, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Customer, error) {
	cust, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrNameRequired
		}
		cust.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		if !ValidEmail(*req.Email) {
			return nil, ErrInvalidEmail
		}
		cust.Email = NormalizeEmail(*req.Email)
	}
	if req.Phone != nil {
		cust.Phone = req.Phone
	}
	if req.Address != nil {
		cust.Address = req.Address
	}
	if req.Notes != nil {
		cust.Notes = req.Notes
	}

	if err := s.repo.Update(ctx, cust); err != nil {
		return nil, err
	}
	return cust, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
