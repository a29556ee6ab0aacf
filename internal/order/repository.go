package order

import (
	"context"
	"database/sql"
	"errors"

	"coffeeshop-be/internal/codec"
	"coffeeshop-be/internal/db"
	"coffeeshop-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Repository interface {
	// CreateTx persists the order, its items and their extra rows inside one
	// transaction; either every row lands or none does.
	CreateTx(ctx context.Context, o *Order, extras []ItemExtra) error
	GetByID(ctx context.Context, id uuid.UUID) (*Order, error)
	List(ctx context.Context) ([]*Order, error)
	GetStatus(ctx context.Context, id uuid.UUID) (Status, error)
	// UpdateStatus flips the status only while the stored value still equals
	// from, refreshing updated_at. It reports whether a row was changed.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to Status, at codec.DateTime) (bool, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(database *sql.DB) Repository {
	return &repository{db: database}
}

func (r *repository) CreateTx(ctx context.Context, o *Order, extras []ItemExtra) error {
	log := logger.FromCtx(ctx).With(
		zap.String("order_id", o.ID.String()),
		zap.Int("item_count", len(o.Items)),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("failed to begin transaction", zap.Error(err))
		return db.Wrap("create order", err)
	}

	committed := false
	defer func() {
		if !committed {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error("failed to rollback transaction", zap.Error(rbErr))
			}
		}
	}()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO orders (id, customer_id, employee_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, o.ID, o.CustomerID, o.EmployeeID, o.Status, o.CreatedAt, o.UpdatedAt)
	if err != nil {
		log.Error("failed to insert order", zap.Error(err))
		return db.Wrap("create order", err)
	}

	for i, item := range o.Items {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO order_items (id, order_id, drink_id, size, total_price)
			VALUES ($1, $2, $3, $4, $5)
		`, item.ID, o.ID, item.DrinkID, item.Size, item.TotalPrice)
		if err != nil {
			log.Error("failed to insert order item",
				zap.Int("item_index", i),
				zap.Error(err),
			)
			return db.Wrap("create order item", err)
		}
	}

	for _, ie := range extras {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO order_item_extras (id, order_item_id, extra_id)
			VALUES ($1, $2, $3)
		`, ie.ID, ie.OrderItemID, ie.ExtraID)
		if err != nil {
			log.Error("failed to insert order item extra", zap.Error(err))
			return db.Wrap("create order item extra", err)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("failed to commit order transaction", zap.Error(err))
		return db.Wrap("create order", err)
	}

	committed = true
	log.Info("order persisted")
	return nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Order, error) {
	var o Order
	err := r.db.QueryRowContext(ctx, `
		SELECT id, customer_id, employee_id, status, created_at, updated_at
		FROM orders
		WHERE id = $1
	`, id).Scan(&o.ID, &o.CustomerID, &o.EmployeeID, &o.Status, &o.CreatedAt, &o.UpdatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, db.Wrap("get order", err)
	}

	if err := r.loadItems(ctx, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *repository) loadItems(ctx context.Context, o *Order) error {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, order_id, drink_id, size, total_price
		FROM order_items
		WHERE order_id = $1
	`, o.ID)
	if err != nil {
		return db.Wrap("get order items", err)
	}
	defer rows.Close()

	itemIdx := make(map[uuid.UUID]int)
	for rows.Next() {
		var item Item
		if err := rows.Scan(&item.ID, &item.OrderID, &item.DrinkID, &item.Size, &item.TotalPrice); err != nil {
			return db.Wrap("scan order item row", err)
		}
		itemIdx[item.ID] = len(o.Items)
		o.Items = append(o.Items, item)
	}
	if err := rows.Err(); err != nil {
		return db.Wrap("get order items", err)
	}

	extraRows, err := r.db.QueryContext(ctx, `
		SELECT oie.order_item_id, oie.extra_id
		FROM order_item_extras oie
		JOIN order_items oi ON oi.id = oie.order_item_id
		WHERE oi.order_id = $1
	`, o.ID)
	if err != nil {
		return db.Wrap("get order item extras", err)
	}
	defer extraRows.Close()

	for extraRows.Next() {
		var itemID, extraID uuid.UUID
		if err := extraRows.Scan(&itemID, &extraID); err != nil {
			return db.Wrap("scan order item extra row", err)
		}
		if idx, ok := itemIdx[itemID]; ok {
			o.Items[idx].ExtraIDs = append(o.Items[idx].ExtraIDs, extraID)
		}
	}
	return db.Wrap("get order item extras", extraRows.Err())
}

func (r *repository) List(ctx context.Context) ([]*Order, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, customer_id, employee_id, status, created_at, updated_at
		FROM orders
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, db.Wrap("list orders", err)
	}
	defer rows.Close()

	var orders []*Order
	for rows.Next() {
		var o Order
		if err := rows.Scan(&o.ID, &o.CustomerID, &o.EmployeeID, &o.Status, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, db.Wrap("scan order row", err)
		}
		orders = append(orders, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, db.Wrap("list orders", err)
	}

	return orders, nil
}

func (r *repository) GetStatus(ctx context.Context, id uuid.UUID) (Status, error) {
	var s Status
	err := r.db.QueryRowContext(ctx,
		`SELECT status FROM orders WHERE id = $1`, id,
	).Scan(&s)

	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrOrderNotFound
	}
	if err != nil {
		return "", db.Wrap("get order status", err)
	}
	return s, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to Status, at codec.DateTime) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE orders
		SET status = $1, updated_at = $2
		WHERE id = $3 AND status = $4
	`, to, at, id, from)
	if err != nil {
		return false, db.Wrap("update order status", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, db.Wrap("update order status", err)
	}
	return affected > 0, nil
}
