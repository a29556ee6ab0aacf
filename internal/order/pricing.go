package order

import "coffeeshop-be/internal/codec"

// ItemTotal prices one item: the drink's base price scaled by the size
// multiplier, plus the chosen extras, rounded half-up to two decimal places
// in a single final step.
func ItemTotal(basePrice codec.Money, size DrinkSize, extraPrices []codec.Money) codec.Money {
	total := basePrice.Decimal().Mul(size.Multiplier())
	for _, p := range extraPrices {
		total = total.Add(p.Decimal())
	}
	return codec.NewMoney(total)
}

// Breakdown sums per-item totals into the order's price breakdown, keeping
// the item order of the request.
func Breakdown(itemTotals []codec.Money) *PriceBreakdown {
	var grand codec.Money
	for _, t := range itemTotals {
		grand = grand.Add(t)
	}
	return &PriceBreakdown{ItemTotals: itemTotals, Total: grand}
}
