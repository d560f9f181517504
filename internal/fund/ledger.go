package fund

import (
	"LemonadeStand/internal/model"

	"github.com/shopspring/decimal"
)

// Ledger owns the stand's supplies and cash. It is mutated only by
// purchases and by weekly settlement.
type Ledger struct {
	state model.InventoryState
}

// NewLedger creates an empty ledger holding the starting cash.
func NewLedger(startingCash decimal.Decimal) *Ledger {
	return &Ledger{state: model.InventoryState{Cash: startingCash, StartingCash: startingCash}}
}

// State returns a copy of the current inventory and cash.
func (l *Ledger) State() model.InventoryState {
	return l.state
}

// Purchase buys qty boxes or bags at the store's current cost. Negative
// quantities and purchases beyond the available cash are rejected and leave
// the ledger unchanged. Buying zero is a no-op.
func (l *Ledger) Purchase(stock model.IngredientStock, qty int) (model.PurchaseReceipt, error) {
	if qty < 0 {
		return model.PurchaseReceipt{}, model.Rejectf(model.InvalidQuantity, "The quantity must not be negative.")
	}
	cost := stock.Cost.Mul(decimal.NewFromInt(int64(qty)))
	if cost.GreaterThan(l.state.Cash) {
		return model.PurchaseReceipt{}, model.Rejectf(model.InsufficientFunds, "You do not have enough cash.")
	}

	units := qty * stock.CountPerUnit
	switch stock.Ingredient {
	case model.Cups:
		l.state.Cups += units
	case model.Lemons:
		l.state.Lemons += units
	case model.Sugar:
		l.state.Sugar += units
	}
	l.state.Cash = l.state.Cash.Sub(cost)

	return model.PurchaseReceipt{
		Ingredient: stock.Ingredient,
		Quantity:   qty,
		Units:      units,
		Cost:       cost,
		Inventory:  l.state,
	}, nil
}

// Settle consumes one unit of every ingredient per serving sold and banks
// the gross. Sales never exceed the scarcest ingredient.
func (l *Ledger) Settle(sales int, gross decimal.Decimal) {
	l.state.Cups -= sales
	l.state.Lemons -= sales
	l.state.Sugar -= sales
	l.state.Cash = l.state.Cash.Add(gross)
}

// OutOf lists the ingredients that have run out.
func (l *Ledger) OutOf() []model.Ingredient {
	var out []model.Ingredient
	for _, ing := range model.Ingredients {
		if l.state.Quantity(ing) <= 0 {
			out = append(out, ing)
		}
	}
	return out
}
