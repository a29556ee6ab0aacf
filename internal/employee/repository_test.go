package employee

import (
	"context"
	"testing"
	"time"

	"coffeeshop-be/internal/codec"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_Create(t *testing.T) {
	database, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer database.Close()

	repo := NewRepository(database)
	ctx := context.Background()
	birth := codec.NewDate(1990, time.July, 14)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO employees`).
			WithArgs(sqlmock.AnyArg(), "Bo", "bo@example.com", "1990-07-14", sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		e, err := repo.Create(ctx, Draft{Name: "Bo", Email: "bo@example.com", BirthDate: birth})
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, e.ID)
		assert.Equal(t, "1990-07-14", e.BirthDate.String())
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO employees`).
			WillReturnError(&pq.Error{Code: "23505", Constraint: "employees_email_live_idx"})

		_, err := repo.Create(ctx, Draft{Name: "Bo", Email: "bo@example.com", BirthDate: birth})
		assert.ErrorIs(t, err, ErrEmailTaken)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_ExcludesDeleted(t *testing.T) {
	database, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer database.Close()

	repo := NewRepository(database)
	id := uuid.New()

	// The query filters on deleted_at IS NULL, so a deleted row comes back as
	// no rows at all.
	mock.ExpectQuery(`SELECT .* FROM employees WHERE id = \$1 AND deleted_at IS NULL`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "birth_date", "created_at", "updated_at", "deleted_at"}))

	_, err = repo.GetByID(context.Background(), id)
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SoftDelete_Idempotent(t *testing.T) {
	database, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer database.Close()

	repo := NewRepository(database)
	id := uuid.New()

	mock.ExpectExec(`UPDATE employees SET deleted_at = \$1, updated_at = \$1`).
		WithArgs(sqlmock.AnyArg(), id).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	assert.NoError(t, repo.SoftDelete(context.Background(), id))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewDraft_Validation(t *testing.T) {
	_, err := NewDraft("", "bad-email", codec.Date{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name")
	assert.Contains(t, err.Error(), "email")
	assert.Contains(t, err.Error(), "birth_date")
}
