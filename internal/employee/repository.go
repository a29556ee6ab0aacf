package employee

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

const emailLiveIdx = "employees_email_live_idx"

type Repository interface {
	Create(ctx context.Context, draft Draft) (*Employee, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Employee, error)
	List(ctx context.Context) ([]*Employee, error)
	Update(ctx context.Context, id uuid.UUID, patch UpdateParams) (*Employee, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(database *sql.DB) Repository {
	return &repository{db: database}
}

func (r *repository) Create(ctx context.Context, draft Draft) (*Employee, error) {
	now := codec.Now()
	e := &Employee{
		ID:        codec.NewID(),
		Name:      draft.Name,
		Email:     draft.Email,
		BirthDate: draft.BirthDate,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO employees (id, name, email, birth_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, e.ID, e.Name, e.Email, e.BirthDate, e.CreatedAt, e.UpdatedAt)
	if err != nil {
		if db.IsUniqueViolation(err, emailLiveIdx) {
			return nil, ErrEmailTaken
		}
		logger.FromCtx(ctx).Error("db: failed to insert employee",
			zap.String("email", draft.Email),
			zap.Error(err),
		)
		return nil, db.Wrap("create employee", err)
	}

	return e, nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Employee, error) {
	var e Employee
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, email, birth_date, created_at, updated_at, deleted_at
		FROM employees
		WHERE id = $1 AND deleted_at IS NULL
	`, id).Scan(&e.ID, &e.Name, &e.Email, &e.BirthDate, &e.CreatedAt, &e.UpdatedAt, &e.DeletedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEmployeeNotFound
	}
	if err != nil {
		return nil, db.Wrap("get employee", err)
	}

	return &e, nil
}

func (r *repository) List(ctx context.Context) ([]*Employee, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, email, birth_date, created_at, updated_at, deleted_at
		FROM employees
		WHERE deleted_at IS NULL
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, db.Wrap("list employees", err)
	}
	defer rows.Close()

	var employees []*Employee
	for rows.Next() {
		var e Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.Email, &e.BirthDate, &e.CreatedAt, &e.UpdatedAt, &e.DeletedAt); err != nil {
			return nil, db.Wrap("scan employee row", err)
		}
		employees = append(employees, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, db.Wrap("list employees", err)
	}

	return employees, nil
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, patch UpdateParams) (*Employee, error) {
	var e Employee
	err := r.db.QueryRowContext(ctx, `
		UPDATE employees
		SET name = COALESCE($1, name),
		    email = COALESCE($2, email),
		    updated_at = $3
		WHERE id = $4 AND deleted_at IS NULL
		RETURNING id, name, email, birth_date, created_at, updated_at, deleted_at
	`, patch.Name, patch.Email, codec.Now(), id).
		Scan(&e.ID, &e.Name, &e.Email, &e.BirthDate, &e.CreatedAt, &e.UpdatedAt, &e.DeletedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEmployeeNotFound
	}
	if err != nil {
		if db.IsUniqueViolation(err, emailLiveIdx) {
			return nil, ErrEmailTaken
		}
		return nil, db.Wrap("update employee", err)
	}

	return &e, nil
}

// SoftDelete is idempotent: re-deleting a deleted employee succeeds.
func (r *repository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE employees
		SET deleted_at = $1, updated_at = $1
		WHERE id = $2 AND deleted_at IS NULL
	`, codec.Now(), id)
	if err != nil {
		return db.Wrap("soft delete employee", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return db.Wrap("soft delete employee", err)
	}
	if affected > 0 {
		return nil
	}

	var exists bool
	err = r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM employees WHERE id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		return db.Wrap("soft delete employee", err)
	}
	if !exists {
		return ErrEmployeeNotFound
	}
	return nil
}
