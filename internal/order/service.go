package order

import (
	"context"

	"coffeeshop-be/internal/catalog"
	"coffeeshop-be/internal/codec"
	"coffeeshop-be/internal/customer"
	"coffeeshop-be/internal/employee"
	"coffeeshop-be/internal/logger"
	"coffeeshop-be/internal/validate"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	// Create composes and persists a new order in pending status, returning
	// the order together with its price breakdown.
	Create(ctx context.Context, req CreateRequest) (*Order, *PriceBreakdown, error)
	Get(ctx context.Context, id uuid.UUID) (*Order, error)
	List(ctx context.Context) ([]*Order, error)
	// UpdateStatus moves the order along its lifecycle; disallowed moves fail
	// with *TransitionError and leave the stored status unchanged.
	UpdateStatus(ctx context.Context, id uuid.UUID, to Status) (*Order, error)
}

type service struct {
	repo      Repository
	customers customer.Repository
	employees employee.Repository
	drinks    catalog.DrinkRepository
	extras    catalog.ExtraRepository
}

func NewService(
	repo Repository,
	customers customer.Repository,
	employees employee.Repository,
	drinks catalog.DrinkRepository,
	extras catalog.ExtraRepository,
) Service {
	return &service{
		repo:      repo,
		customers: customers,
		employees: employees,
		drinks:    drinks,
		extras:    extras,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Order, *PriceBreakdown, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("customer_id", req.CustomerID.String()),
		zap.Int("item_count", len(req.Items)),
	)

	if err := validate.Check(
		validate.FieldCheck{Field: "customer_id", OK: req.CustomerID != uuid.Nil},
		validate.FieldCheck{Field: "employee_id", OK: req.EmployeeID != uuid.Nil},
		validate.FieldCheck{Field: "items", OK: len(req.Items) > 0},
	); err != nil {
		return nil, nil, err
	}

	// Both references must point at live rows before anything is written.
	if _, err := s.customers.GetByID(ctx, req.CustomerID); err != nil {
		return nil, nil, err
	}
	if _, err := s.employees.GetByID(ctx, req.EmployeeID); err != nil {
		return nil, nil, err
	}

	now := codec.Now()
	o := &Order{
		ID:         codec.NewID(),
		CustomerID: req.CustomerID,
		EmployeeID: req.EmployeeID,
		Status:     StatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	var (
		itemExtras []ItemExtra
		itemTotals []codec.Money
	)

	for _, itemReq := range req.Items {
		drink, err := s.drinks.GetByID(ctx, itemReq.DrinkID)
		if err != nil {
			return nil, nil, err
		}

		resolved, err := s.extras.GetByIDs(ctx, itemReq.ExtraIDs)
		if err != nil {
			return nil, nil, err
		}

		extraPrices := make([]codec.Money, 0, len(itemReq.ExtraIDs))
		for _, extraID := range itemReq.ExtraIDs {
			extra, ok := resolved[extraID]
			if !ok {
				return nil, nil, catalog.ErrExtraNotFound
			}
			if !bool(extra.IsAvailable) {
				return nil, nil, ErrExtraUnavailable
			}
			extraPrices = append(extraPrices, extra.Price)
		}

		total := ItemTotal(drink.BasePrice, itemReq.Size, extraPrices)
		itemTotals = append(itemTotals, total)

		item := Item{
			ID:         codec.NewID(),
			OrderID:    o.ID,
			DrinkID:    itemReq.DrinkID,
			Size:       itemReq.Size,
			TotalPrice: total,
			ExtraIDs:   itemReq.ExtraIDs,
		}
		o.Items = append(o.Items, item)

		for _, extraID := range itemReq.ExtraIDs {
			itemExtras = append(itemExtras, ItemExtra{
				ID:          codec.NewID(),
				OrderItemID: item.ID,
				ExtraID:     extraID,
			})
		}
	}

	if err := s.repo.CreateTx(ctx, o, itemExtras); err != nil {
		return nil, nil, err
	}

	breakdown := Breakdown(itemTotals)
	log.Info("order created",
		zap.String("order_id", o.ID.String()),
		zap.String("total", breakdown.Total.String()),
	)
	return o, breakdown, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*Order, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]*Order, error) {
	return s.repo.List(ctx)
}

func (s *service) UpdateStatus(ctx context.Context, id uuid.UUID, to Status) (*Order, error) {
	current, err := s.repo.GetStatus(ctx, id)
	if err != nil {
		return nil, err
	}

	if !current.CanTransitionTo(to) {
		return nil, &TransitionError{From: current, To: to}
	}

	changed, err := s.repo.UpdateStatus(ctx, id, current, to, codec.Now())
	if err != nil {
		return nil, err
	}
	if !changed {
		// The status moved underneath us; report the transition against the
		// fresh value.
		fresh, err := s.repo.GetStatus(ctx, id)
		if err != nil {
			return nil, err
		}
		return nil, &TransitionError{From: fresh, To: to}
	}

	logger.FromCtx(ctx).Info("order status updated",
		zap.String("order_id", id.String()),
		zap.String("from", current.String()),
		zap.String("to", to.String()),
	)
	return s.repo.GetByID(ctx, id)
}
