package order

import (
	"context"
	"testing"

	"coffeeshop-be/internal/catalog"
	"coffeeshop-be/internal/codec"
	"coffeeshop-be/internal/customer"
	"coffeeshop-be/internal/employee"
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

func (m *MockRepository) CreateTx(ctx context.Context, o *Order, extras []ItemExtra) error {
	args := m.Called(ctx, o, extras)
	return args.Error(0)
}

func (m *MockRepository) GetByID(ctx context.Context, id uuid.UUID) (*Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Order), args.Error(1)
}

func (m *MockRepository) List(ctx context.Context) ([]*Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Order), args.Error(1)
}

func (m *MockRepository) GetStatus(ctx context.Context, id uuid.UUID) (Status, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(Status), args.Error(1)
}

func (m *MockRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to Status, at codec.DateTime) (bool, error) {
	args := m.Called(ctx, id, from, to, at)
	return args.Bool(0), args.Error(1)
}

type MockCustomerRepo struct {
	mock.Mock
}

func (m *MockCustomerRepo) Create(ctx context.Context, draft customer.Draft) (*customer.Customer, error) {
	args := m.Called(ctx, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

func (m *MockCustomerRepo) GetByID(ctx context.Context, id uuid.UUID) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

func (m *MockCustomerRepo) List(ctx context.Context) ([]*customer.Customer, error) {
	args := m.Called(ctx)
	return nil, args.Error(1)
}

func (m *MockCustomerRepo) Update(ctx context.Context, id uuid.UUID, patch customer.UpdateParams) (*customer.Customer, error) {
	args := m.Called(ctx, id, patch)
	return nil, args.Error(1)
}

func (m *MockCustomerRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockEmployeeRepo struct {
	mock.Mock
}

func (m *MockEmployeeRepo) Create(ctx context.Context, draft employee.Draft) (*employee.Employee, error) {
	args := m.Called(ctx, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*employee.Employee), args.Error(1)
}

func (m *MockEmployeeRepo) GetByID(ctx context.Context, id uuid.UUID) (*employee.Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*employee.Employee), args.Error(1)
}

func (m *MockEmployeeRepo) List(ctx context.Context) ([]*employee.Employee, error) {
	args := m.Called(ctx)
	return nil, args.Error(1)
}

func (m *MockEmployeeRepo) Update(ctx context.Context, id uuid.UUID, patch employee.UpdateParams) (*employee.Employee, error) {
	args := m.Called(ctx, id, patch)
	return nil, args.Error(1)
}

func (m *MockEmployeeRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockDrinkRepo struct {
	mock.Mock
}

func (m *MockDrinkRepo) Create(ctx context.Context, draft catalog.DrinkDraft) (*catalog.Drink, error) {
	args := m.Called(ctx, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Drink), args.Error(1)
}

func (m *MockDrinkRepo) GetByID(ctx context.Context, id uuid.UUID) (*catalog.Drink, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Drink), args.Error(1)
}

func (m *MockDrinkRepo) List(ctx context.Context) ([]*catalog.Drink, error) {
	args := m.Called(ctx)
	return nil, args.Error(1)
}

type MockExtraRepo struct {
	mock.Mock
}

func (m *MockExtraRepo) Create(ctx context.Context, draft catalog.ExtraDraft) (*catalog.Extra, error) {
	args := m.Called(ctx, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Extra), args.Error(1)
}

func (m *MockExtraRepo) GetByID(ctx context.Context, id uuid.UUID) (*catalog.Extra, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Extra), args.Error(1)
}

func (m *MockExtraRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*catalog.Extra, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uuid.UUID]*catalog.Extra), args.Error(1)
}

func (m *MockExtraRepo) List(ctx context.Context, availableOnly bool) ([]*catalog.Extra, error) {
	args := m.Called(ctx, availableOnly)
	return nil, args.Error(1)
}

type serviceMocks struct {
	repo      *MockRepository
	customers *MockCustomerRepo
	employees *MockEmployeeRepo
	drinks    *MockDrinkRepo
	extras    *MockExtraRepo
}

func newServiceWithMocks() (Service, *serviceMocks) {
	m := &serviceMocks{
		repo:      new(MockRepository),
		customers: new(MockCustomerRepo),
		employees: new(MockEmployeeRepo),
		drinks:    new(MockDrinkRepo),
		extras:    new(MockExtraRepo),
	}
	return NewService(m.repo, m.customers, m.employees, m.drinks, m.extras), m
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()
	employeeID := uuid.New()
	drinkID := uuid.New()
	extraID := uuid.New()

	latte := &catalog.Drink{ID: drinkID, Name: "Latte", BasePrice: money(t, "3.99")}
	cream := &catalog.Extra{ID: extraID, Name: "Whipped Cream", Price: money(t, "0.50"), IsAvailable: true}

	t.Run("Success", func(t *testing.T) {
		svc, m := newServiceWithMocks()

		m.customers.On("GetByID", ctx, customerID).Return(&customer.Customer{ID: customerID}, nil)
		m.employees.On("GetByID", ctx, employeeID).Return(&employee.Employee{ID: employeeID}, nil)
		m.drinks.On("GetByID", ctx, drinkID).Return(latte, nil)
		m.extras.On("GetByIDs", ctx, []uuid.UUID{extraID}).
			Return(map[uuid.UUID]*catalog.Extra{extraID: cream}, nil)
		m.repo.On("CreateTx", ctx, mock.Anything, mock.Anything).Return(nil)

		o, breakdown, err := svc.Create(ctx, CreateRequest{
			CustomerID: customerID,
			EmployeeID: employeeID,
			Items: []ItemRequest{
				{DrinkID: drinkID, Size: SizeMedium, ExtraIDs: []uuid.UUID{extraID}},
			},
		})
		require.NoError(t, err)

		assert.Equal(t, StatusPending, o.Status)
		require.Len(t, o.Items, 1)
		assert.Equal(t, "4.49", o.Items[0].TotalPrice.String())
		assert.Equal(t, "4.49", breakdown.Total.String())
		assert.True(t, o.CreatedAt.Equal(o.UpdatedAt))
		m.repo.AssertExpectations(t)
	})

	t.Run("NoItems", func(t *testing.T) {
		svc, m := newServiceWithMocks()

		_, _, err := svc.Create(ctx, CreateRequest{CustomerID: customerID, EmployeeID: employeeID})

		var vErr *validate.Error
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, []string{"items"}, vErr.Fields)
		m.repo.AssertNotCalled(t, "CreateTx")
	})

	t.Run("UnknownCustomer", func(t *testing.T) {
		svc, m := newServiceWithMocks()

		m.customers.On("GetByID", ctx, customerID).Return(nil, customer.ErrCustomerNotFound)

		_, _, err := svc.Create(ctx, CreateRequest{
			CustomerID: customerID,
			EmployeeID: employeeID,
			Items:      []ItemRequest{{DrinkID: drinkID, Size: SizeSmall}},
		})
		assert.ErrorIs(t, err, customer.ErrCustomerNotFound)
		m.repo.AssertNotCalled(t, "CreateTx")
	})

	t.Run("UnknownDrink", func(t *testing.T) {
		svc, m := newServiceWithMocks()

		m.customers.On("GetByID", ctx, customerID).Return(&customer.Customer{ID: customerID}, nil)
		m.employees.On("GetByID", ctx, employeeID).Return(&employee.Employee{ID: employeeID}, nil)
		m.drinks.On("GetByID", ctx, drinkID).Return(nil, catalog.ErrDrinkNotFound)

		_, _, err := svc.Create(ctx, CreateRequest{
			CustomerID: customerID,
			EmployeeID: employeeID,
			Items:      []ItemRequest{{DrinkID: drinkID, Size: SizeSmall}},
		})
		assert.ErrorIs(t, err, catalog.ErrDrinkNotFound)
		m.repo.AssertNotCalled(t, "CreateTx")
	})

	t.Run("UnavailableExtra", func(t *testing.T) {
		svc, m := newServiceWithMocks()
		soldOut := &catalog.Extra{ID: extraID, Name: "Whipped Cream", Price: money(t, "0.50"), IsAvailable: false}

		m.customers.On("GetByID", ctx, customerID).Return(&customer.Customer{ID: customerID}, nil)
		m.employees.On("GetByID", ctx, employeeID).Return(&employee.Employee{ID: employeeID}, nil)
		m.drinks.On("GetByID", ctx, drinkID).Return(latte, nil)
		m.extras.On("GetByIDs", ctx, []uuid.UUID{extraID}).
			Return(map[uuid.UUID]*catalog.Extra{extraID: soldOut}, nil)

		_, _, err := svc.Create(ctx, CreateRequest{
			CustomerID: customerID,
			EmployeeID: employeeID,
			Items:      []ItemRequest{{DrinkID: drinkID, Size: SizeMedium, ExtraIDs: []uuid.UUID{extraID}}},
		})
		assert.ErrorIs(t, err, ErrExtraUnavailable)
		m.repo.AssertNotCalled(t, "CreateTx")
	})

	t.Run("MissingExtra", func(t *testing.T) {
		svc, m := newServiceWithMocks()

		m.customers.On("GetByID", ctx, customerID).Return(&customer.Customer{ID: customerID}, nil)
		m.employees.On("GetByID", ctx, employeeID).Return(&employee.Employee{ID: employeeID}, nil)
		m.drinks.On("GetByID", ctx, drinkID).Return(latte, nil)
		m.extras.On("GetByIDs", ctx, []uuid.UUID{extraID}).
			Return(map[uuid.UUID]*catalog.Extra{}, nil)

		_, _, err := svc.Create(ctx, CreateRequest{
			CustomerID: customerID,
			EmployeeID: employeeID,
			Items:      []ItemRequest{{DrinkID: drinkID, Size: SizeMedium, ExtraIDs: []uuid.UUID{extraID}}},
		})
		assert.ErrorIs(t, err, catalog.ErrExtraNotFound)
	})
}

func TestService_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("ValidTransition", func(t *testing.T) {
		svc, m := newServiceWithMocks()

		m.repo.On("GetStatus", ctx, id).Return(StatusPending, nil)
		m.repo.On("UpdateStatus", ctx, id, StatusPending, StatusPaid, mock.Anything).Return(true, nil)
		m.repo.On("GetByID", ctx, id).Return(&Order{ID: id, Status: StatusPaid}, nil)

		o, err := svc.UpdateStatus(ctx, id, StatusPaid)
		require.NoError(t, err)
		assert.Equal(t, StatusPaid, o.Status)
		m.repo.AssertExpectations(t)
	})

	t.Run("SkippingAStateFails", func(t *testing.T) {
		svc, m := newServiceWithMocks()

		m.repo.On("GetStatus", ctx, id).Return(StatusPaid, nil)

		_, err := svc.UpdateStatus(ctx, id, StatusCompleted)

		var trErr *TransitionError
		require.ErrorAs(t, err, &trErr)
		assert.Equal(t, StatusPaid, trErr.From)
		assert.Equal(t, StatusCompleted, trErr.To)
		m.repo.AssertNotCalled(t, "UpdateStatus")
	})

	t.Run("TerminalAdmitsNothing", func(t *testing.T) {
		for _, terminal := range []Status{StatusCompleted, StatusCancelled} {
			svc, m := newServiceWithMocks()
			m.repo.On("GetStatus", ctx, id).Return(terminal, nil)

			_, err := svc.UpdateStatus(ctx, id, StatusPending)

			var trErr *TransitionError
			require.ErrorAs(t, err, &trErr, "from %s", terminal)
			m.repo.AssertNotCalled(t, "UpdateStatus")
		}
	})

	t.Run("CancelFromAnyNonTerminal", func(t *testing.T) {
		for _, from := range []Status{StatusPending, StatusPaid, StatusPreparing, StatusReady} {
			svc, m := newServiceWithMocks()
			m.repo.On("GetStatus", ctx, id).Return(from, nil)
			m.repo.On("UpdateStatus", ctx, id, from, StatusCancelled, mock.Anything).Return(true, nil)
			m.repo.On("GetByID", ctx, id).Return(&Order{ID: id, Status: StatusCancelled}, nil)

			_, err := svc.UpdateStatus(ctx, id, StatusCancelled)
			assert.NoError(t, err, "from %s", from)
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		svc, m := newServiceWithMocks()
		m.repo.On("GetStatus", ctx, id).Return(Status(""), ErrOrderNotFound)

		_, err := svc.UpdateStatus(ctx, id, StatusPaid)
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})

	t.Run("ConcurrentChange", func(t *testing.T) {
		svc, m := newServiceWithMocks()

		m.repo.On("GetStatus", ctx, id).Return(StatusPending, nil).Once()
		m.repo.On("UpdateStatus", ctx, id, StatusPending, StatusPaid, mock.Anything).Return(false, nil)
		m.repo.On("GetStatus", ctx, id).Return(StatusCancelled, nil).Once()

		_, err := svc.UpdateStatus(ctx, id, StatusPaid)

		var trErr *TransitionError
		require.ErrorAs(t, err, &trErr)
		assert.Equal(t, StatusCancelled, trErr.From)
	})
}
