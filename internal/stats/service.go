package stats

import (
	"context"
	"time"
)

type Service interface {
	Dashboard(ctx context.Context) (*Dashboard, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) Service {
	return &service{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

func (s *service) Dashboard(ctx context.Context) (*Dashboard, error) {
	return s.repo.Dashboard(ctx, s.now())
}
