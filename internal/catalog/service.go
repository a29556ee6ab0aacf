package catalog

import (
	"context"

	"coffeeshop-be/internal/codec"
	"coffeeshop-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	AddDrink(ctx context.Context, name string, basePrice codec.Money) (*Drink, error)
	GetDrink(ctx context.Context, id uuid.UUID) (*Drink, error)
	ListDrinks(ctx context.Context) ([]*Drink, error)

	AddExtra(ctx context.Context, name string, price codec.Money, available bool) (*Extra, error)
	GetExtra(ctx context.Context, id uuid.UUID) (*Extra, error)
	ListExtras(ctx context.Context, availableOnly bool) ([]*Extra, error)
}

type service struct {
	drinks DrinkRepository
	extras ExtraRepository
}

func NewService(drinks DrinkRepository, extras ExtraRepository) Service {
	return &service{drinks: drinks, extras: extras}
}

func (s *service) AddDrink(ctx context.Context, name string, basePrice codec.Money) (*Drink, error) {
	draft, err := NewDrinkDraft(name, basePrice)
	if err != nil {
		return nil, err
	}

	d, err := s.drinks.Create(ctx, draft)
	if err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Info("drink added to catalog",
		zap.String("drink_id", d.ID.String()),
		zap.String("name", d.Name),
		zap.String("base_price", d.BasePrice.String()),
	)
	return d, nil
}

func (s *service) GetDrink(ctx context.Context, id uuid.UUID) (*Drink, error) {
	return s.drinks.GetByID(ctx, id)
}

func (s *service) ListDrinks(ctx context.Context) ([]*Drink, error) {
	return s.drinks.List(ctx)
}

func (s *service) AddExtra(ctx context.Context, name string, price codec.Money, available bool) (*Extra, error) {
	draft, err := NewExtraDraft(name, price, available)
	if err != nil {
		return nil, err
	}

	e, err := s.extras.Create(ctx, draft)
	if err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Info("extra added to catalog",
		zap.String("extra_id", e.ID.String()),
		zap.String("name", e.Name),
	)
	return e, nil
}

func (s *service) GetExtra(ctx context.Context, id uuid.UUID) (*Extra, error) {
	return s.extras.GetByID(ctx, id)
}

func (s *service) ListExtras(ctx context.Context, availableOnly bool) ([]*Extra, error) {
	return s.extras.List(ctx, availableOnly)
}
