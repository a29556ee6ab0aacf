// Package catalog holds the immutable menu entries an order is priced
// against: drinks with a size-independent base price and the extras that can
// be added to an item.
package catalog

import (
	"strings"

	"coffeeshop-be/internal/codec"
	"coffeeshop-be/internal/validate"

	"github.com/google/uuid"
)

type Drink struct {
	ID        uuid.UUID
	Name      string
	BasePrice codec.Money
}

// DrinkDraft is consumed by DrinkRepository.Create; NewDrinkDraft rejects
// empty names and negative prices.
type DrinkDraft struct {
	Name      string
	BasePrice codec.Money
}

func NewDrinkDraft(name string, basePrice codec.Money) (DrinkDraft, error) {
	if err := validate.Check(
		validate.FieldCheck{Field: "name", OK: strings.TrimSpace(name) != ""},
		validate.FieldCheck{Field: "base_price", OK: !basePrice.IsNegative()},
	); err != nil {
		return DrinkDraft{}, err
	}
	return DrinkDraft{Name: name, BasePrice: basePrice}, nil
}

type Extra struct {
	ID          uuid.UUID
	Name        string
	Price       codec.Money
	IsAvailable codec.Bool
}

type ExtraDraft struct {
	Name        string
	Price       codec.Money
	IsAvailable codec.Bool
}

func NewExtraDraft(name string, price codec.Money, available bool) (ExtraDraft, error) {
	if err := validate.Check(
		validate.FieldCheck{Field: "name", OK: strings.TrimSpace(name) != ""},
		validate.FieldCheck{Field: "price", OK: !price.IsNegative()},
	); err != nil {
		return ExtraDraft{}, err
	}
	return ExtraDraft{Name: name, Price: price, IsAvailable: codec.Bool(available)}, nil
}
