package employee

import (
	"context"

	"coffeeshop-be/internal/codec"
	"coffeeshop-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	Hire(ctx context.Context, name, email string, birthDate codec.Date) (*Employee, error)
	Get(ctx context.Context, id uuid.UUID) (*Employee, error)
	List(ctx context.Context) ([]*Employee, error)
	Update(ctx context.Context, id uuid.UUID, patch UpdateParams) (*Employee, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Hire(ctx context.Context, name, email string, birthDate codec.Date) (*Employee, error) {
	draft, err := NewDraft(name, email, birthDate)
	if err != nil {
		return nil, err
	}

	e, err := s.repo.Create(ctx, draft)
	if err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Info("employee hired",
		zap.String("employee_id", e.ID.String()),
	)
	return e, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*Employee, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]*Employee, error) {
	return s.repo.List(ctx)
}

func (s *service) Update(ctx context.Context, id uuid.UUID, patch UpdateParams) (*Employee, error) {
	return s.repo.Update(ctx, id, patch)
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.SoftDelete(ctx, id)
}
