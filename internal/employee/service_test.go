package employee

import (
	"context"
	"testing"
	"time"

	"coffeeshop-be/internal/codec"
	"coffeeshop-be/internal/validate"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mocks ---

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, draft Draft) (*Employee, error) {
	args := m.Called(ctx, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Employee), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id uuid.UUID) (*Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Employee), args.Error(1)
}

func (m *MockRepository) List(ctx context.Context) ([]*Employee, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Employee), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, id uuid.UUID, patch UpdateParams) (*Employee, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Employee), args.Error(1)
}

func (m *MockRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestService_Hire(t *testing.T) {
	ctx := context.Background()
	birthDate := codec.NewDate(1995, time.March, 12)

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("Create", ctx, Draft{Name: "Bram", Email: "bram@example.com", BirthDate: birthDate}).
			Return(&Employee{ID: uuid.New(), Name: "Bram", Email: "bram@example.com", BirthDate: birthDate}, nil)

		e, err := svc.Hire(ctx, "Bram", "bram@example.com", birthDate)
		require.NoError(t, err)
		assert.Equal(t, "Bram", e.Name)
		repo.AssertExpectations(t)
	})

	t.Run("MissingBirthDate", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		_, err := svc.Hire(ctx, "Bram", "bram@example.com", codec.Date{})

		var vErr *validate.Error
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, []string{"birth_date"}, vErr.Fields)
		repo.AssertNotCalled(t, "Create")
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("Create", ctx, mock.Anything).Return(nil, ErrEmailTaken)

		_, err := svc.Hire(ctx, "Bram", "bram@example.com", birthDate)
		assert.ErrorIs(t, err, ErrEmailTaken)
	})
}
