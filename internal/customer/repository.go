package customer

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

// emailLiveIdx is the partial unique index covering non-deleted rows only, so
// a soft-deleted customer's email can be registered again.
const emailLiveIdx = "customers_email_live_idx"

type Repository interface {
	Create(ctx context.Context, draft Draft) (*Customer, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Customer, error)
	List(ctx context.Context) ([]*Customer, error)
	Update(ctx context.Context, id uuid.UUID, patch UpdateParams) (*Customer, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(database *sql.DB) Repository {
	return &repository{db: database}
}

func (r *repository) Create(ctx context.Context, draft Draft) (*Customer, error) {
	log := logger.FromCtx(ctx)

	now := codec.Now()
	c := &Customer{
		ID:        codec.NewID(),
		Name:      draft.Name,
		Email:     draft.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO customers (id, name, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`, c.ID, c.Name, c.Email, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		if db.IsUniqueViolation(err, emailLiveIdx) {
			return nil, ErrEmailTaken
		}
		log.Error("db: failed to insert customer",
			zap.String("email", draft.Email),
			zap.Error(err),
		)
		return nil, db.Wrap("create customer", err)
	}

	return c, nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Customer, error) {
	var c Customer
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, email, created_at, updated_at, deleted_at
		FROM customers
		WHERE id = $1 AND deleted_at IS NULL
	`, id).Scan(&c.ID, &c.Name, &c.Email, &c.CreatedAt, &c.UpdatedAt, &c.DeletedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, db.Wrap("get customer", err)
	}

	return &c, nil
}

func (r *repository) List(ctx context.Context) ([]*Customer, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, email, created_at, updated_at, deleted_at
		FROM customers
		WHERE deleted_at IS NULL
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, db.Wrap("list customers", err)
	}
	defer rows.Close()

	var customers []*Customer
	for rows.Next() {
		var c Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.CreatedAt, &c.UpdatedAt, &c.DeletedAt); err != nil {
			return nil, db.Wrap("scan customer row", err)
		}
		customers = append(customers, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, db.Wrap("list customers", err)
	}

	return customers, nil
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, patch UpdateParams) (*Customer, error) {
	var c Customer
	err := r.db.QueryRowContext(ctx, `
		UPDATE customers
		SET name = COALESCE($1, name),
		    email = COALESCE($2, email),
		    updated_at = $3
		WHERE id = $4 AND deleted_at IS NULL
		RETURNING id, name, email, created_at, updated_at, deleted_at
	`, patch.Name, patch.Email, codec.Now(), id).
		Scan(&c.ID, &c.Name, &c.Email, &c.CreatedAt, &c.UpdatedAt, &c.DeletedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		if db.IsUniqueViolation(err, emailLiveIdx) {
			return nil, ErrEmailTaken
		}
		return nil, db.Wrap("update customer", err)
	}

	return &c, nil
}

// SoftDelete marks the customer deleted. Deleting an already-deleted customer
// is a no-op success.
func (r *repository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE customers
		SET deleted_at = $1, updated_at = $1
		WHERE id = $2 AND deleted_at IS NULL
	`, codec.Now(), id)
	if err != nil {
		return db.Wrap("soft delete customer", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return db.Wrap("soft delete customer", err)
	}
	if affected > 0 {
		return nil
	}

	// Nothing updated: either the row is already deleted (fine) or it never
	// existed.
	var exists bool
	err = r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM customers WHERE id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		return db.Wrap("soft delete customer", err)
	}
	if !exists {
		return ErrCustomerNotFound
	}
	return nil
}
