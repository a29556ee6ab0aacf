package customer

import (
	"context"

	"coffeeshop-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	Register(ctx context.Context, name, email string) (*Customer, error)
	Get(ctx context.Context, id uuid.UUID) (*Customer, error)
	List(ctx context.Context) ([]*Customer, error)
	Update(ctx context.Context, id uuid.UUID, patch UpdateParams) (*Customer, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Register(ctx context.Context, name, email string) (*Customer, error) {
	draft, err := NewDraft(name, email)
	if err != nil {
		return nil, err
	}

	c, err := s.repo.Create(ctx, draft)
	if err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Info("customer registered",
		zap.String("customer_id", c.ID.String()),
	)
	return c, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*Customer, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]*Customer, error) {
	return s.repo.List(ctx)
}

func (s *service) Update(ctx context.Context, id uuid.UUID, patch UpdateParams) (*Customer, error) {
	return s.repo.Update(ctx, id, patch)
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return err
	}

	logger.FromCtx(ctx).Info("customer deleted",
		zap.String("customer_id", id.String()),
	)
	return nil
}
