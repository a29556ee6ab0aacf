package catalog

import (
	"context"
	"database/sql"
	"errors"

	"coffeeshop-be/internal/codec"
	"coffeeshop-be/internal/db"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type DrinkRepository interface {
	Create(ctx context.Context, draft DrinkDraft) (*Drink, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Drink, error)
	List(ctx context.Context) ([]*Drink, error)
}

type ExtraRepository interface {
	Create(ctx context.Context, draft ExtraDraft) (*Extra, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Extra, error)
	// GetByIDs returns the extras for the given ids; an id with no row is
	// simply absent from the result.
	GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*Extra, error)
	List(ctx context.Context, availableOnly bool) ([]*Extra, error)
}

type drinkRepository struct {
	db *sql.DB
}

func NewDrinkRepository(database *sql.DB) DrinkRepository {
	return &drinkRepository{db: database}
}

func (r *drinkRepository) Create(ctx context.Context, draft DrinkDraft) (*Drink, error) {
	d := &Drink{
		ID:        codec.NewID(),
		Name:      draft.Name,
		BasePrice: draft.BasePrice,
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO drinks (id, name, base_price)
		VALUES ($1, $2, $3)
	`, d.ID, d.Name, d.BasePrice)
	if err != nil {
		return nil, db.Wrap("create drink", err)
	}

	return d, nil
}

func (r *drinkRepository) GetByID(ctx context.Context, id uuid.UUID) (*Drink, error) {
	var d Drink
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, base_price FROM drinks WHERE id = $1
	`, id).Scan(&d.ID, &d.Name, &d.BasePrice)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrDrinkNotFound
	}
	if err != nil {
		return nil, db.Wrap("get drink", err)
	}

	return &d, nil
}

func (r *drinkRepository) List(ctx context.Context) ([]*Drink, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, base_price FROM drinks ORDER BY name ASC
	`)
	if err != nil {
		return nil, db.Wrap("list drinks", err)
	}
	defer rows.Close()

	var drinks []*Drink
	for rows.Next() {
		var d Drink
		if err := rows.Scan(&d.ID, &d.Name, &d.BasePrice); err != nil {
			return nil, db.Wrap("scan drink row", err)
		}
		drinks = append(drinks, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, db.Wrap("list drinks", err)
	}

	return drinks, nil
}

type extraRepository struct {
	db *sql.DB
}

func NewExtraRepository(database *sql.DB) ExtraRepository {
	return &extraRepository{db: database}
}

func (r *extraRepository) Create(ctx context.Context, draft ExtraDraft) (*Extra, error) {
	e := &Extra{
		ID:          codec.NewID(),
		Name:        draft.Name,
		Price:       draft.Price,
		IsAvailable: draft.IsAvailable,
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO extras (id, name, price, is_available)
		VALUES ($1, $2, $3, $4)
	`, e.ID, e.Name, e.Price, e.IsAvailable)
	if err != nil {
		return nil, db.Wrap("create extra", err)
	}

	return e, nil
}

func (r *extraRepository) GetByID(ctx context.Context, id uuid.UUID) (*Extra, error) {
	var e Extra
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, price, is_available FROM extras WHERE id = $1
	`, id).Scan(&e.ID, &e.Name, &e.Price, &e.IsAvailable)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrExtraNotFound
	}
	if err != nil {
		return nil, db.Wrap("get extra", err)
	}

	return &e, nil
}

func (r *extraRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*Extra, error) {
	if len(ids) == 0 {
		return map[uuid.UUID]*Extra{}, nil
	}

	textIDs := make([]string, len(ids))
	for i, id := range ids {
		textIDs[i] = id.String()
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, price, is_available FROM extras WHERE id = ANY($1)
	`, pq.Array(textIDs))
	if err != nil {
		return nil, db.Wrap("get extras", err)
	}
	defer rows.Close()

	extras := make(map[uuid.UUID]*Extra, len(ids))
	for rows.Next() {
		var e Extra
		if err := rows.Scan(&e.ID, &e.Name, &e.Price, &e.IsAvailable); err != nil {
			return nil, db.Wrap("scan extra row", err)
		}
		extras[e.ID] = &e
	}
	if err := rows.Err(); err != nil {
		return nil, db.Wrap("get extras", err)
	}

	return extras, nil
}

func (r *extraRepository) List(ctx context.Context, availableOnly bool) ([]*Extra, error) {
	query := `SELECT id, name, price, is_available FROM extras`
	if availableOnly {
		query += ` WHERE is_available = 1`
	}
	query += ` ORDER BY name ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, db.Wrap("list extras", err)
	}
	defer rows.Close()

	var extras []*Extra
	for rows.Next() {
		var e Extra
		if err := rows.Scan(&e.ID, &e.Name, &e.Price, &e.IsAvailable); err != nil {
			return nil, db.Wrap("scan extra row", err)
		}
		extras = append(extras, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, db.Wrap("list extras", err)
	}

	return extras, nil
}
