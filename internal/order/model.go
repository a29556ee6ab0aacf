package order

import (
	"coffeeshop-be/internal/codec"

	"github.com/google/uuid"
)

type Order struct {
	ID         uuid.UUID
	CustomerID uuid.UUID
	EmployeeID uuid.UUID
	Status     Status
	CreatedAt  codec.DateTime
	UpdatedAt  codec.DateTime
	Items      []Item
}

// Item is one drink line of an order. TotalPrice is computed once at
// composition time and stored denormalized.
type Item struct {
	ID         uuid.UUID
	OrderID    uuid.UUID
	DrinkID    uuid.UUID
	Size       DrinkSize
	TotalPrice codec.Money
	ExtraIDs   []uuid.UUID
}

// ItemExtra is a row of the item/extra join table.
type ItemExtra struct {
	ID          uuid.UUID
	OrderItemID uuid.UUID
	ExtraID     uuid.UUID
}

// ItemRequest is what a caller asks for: a drink, a size and the chosen
// extras. Resolution against the catalog and pricing happen in the service.
type ItemRequest struct {
	DrinkID  uuid.UUID
	Size     DrinkSize
	ExtraIDs []uuid.UUID
}

type CreateRequest struct {
	CustomerID uuid.UUID
	EmployeeID uuid.UUID
	Items      []ItemRequest
}

// PriceBreakdown lists the item totals in request order plus their grand sum.
type PriceBreakdown struct {
	ItemTotals []codec.Money
	Total      codec.Money
}
