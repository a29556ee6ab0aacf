package order

import (
	"database/sql/driver"
	"fmt"

	"coffeeshop-be/internal/codec"

	"github.com/shopspring/decimal"
)

// DrinkSize scales the drink's base price. Stored as its lowercase text form.
type DrinkSize string

const (
	SizeSmall    DrinkSize = "small"
	SizeMedium   DrinkSize = "medium"
	SizeLarge    DrinkSize = "large"
	SizeStandard DrinkSize = "standard"
)

var sizeMultipliers = map[DrinkSize]decimal.Decimal{
	SizeSmall:    decimal.RequireFromString("0.8"),
	SizeMedium:   decimal.RequireFromString("1"),
	SizeLarge:    decimal.RequireFromString("1.3"),
	SizeStandard: decimal.RequireFromString("1"),
}

func ParseDrinkSize(text string) (DrinkSize, error) {
	switch s := DrinkSize(text); s {
	case SizeSmall, SizeMedium, SizeLarge, SizeStandard:
		return s, nil
	}
	return "", &codec.UnknownEnumVariantError{Enum: "drink size", Text: text}
}

func (s DrinkSize) String() string { return string(s) }

func (s DrinkSize) Multiplier() decimal.Decimal {
	return sizeMultipliers[s]
}

func (s DrinkSize) Value() (driver.Value, error) {
	return string(s), nil
}

func (s *DrinkSize) Scan(src any) error {
	var text string
	switch v := src.(type) {
	case string:
		text = v
	case []byte:
		text = string(v)
	default:
		return &codec.UnknownEnumVariantError{Enum: "drink size", Text: fmt.Sprintf("%v", src)}
	}

	parsed, err := ParseDrinkSize(text)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
