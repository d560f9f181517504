package model

import "github.com/shopspring/decimal"

// MarketBoard is what the operator sees before buying: weather, demand
// estimate, store prices and the stand's current supplies.
type MarketBoard struct {
	Week       int
	TotalWeeks int
	Weather    Weather
	Potential  int
	Stocks     [3]IngredientStock
	UnitCost   decimal.Decimal // per serving
	Inventory  InventoryState
}

// Stock returns the store offer for an ingredient.
func (b *MarketBoard) Stock(i Ingredient) IngredientStock {
	return b.Stocks[i]
}

// SalesOutcome is the result of selling at one price.
type SalesOutcome struct {
	Price    decimal.Decimal
	UnitCost decimal.Decimal
	Margin   decimal.Decimal
	Sales    int
	Gross    decimal.Decimal
	Net      decimal.Decimal
}

// OptimalPrice is the best grid price for a week's conditions.
type OptimalPrice struct {
	SalesOutcome
	Found bool
}

// WeekReport is emitted after settlement.
type WeekReport struct {
	Week       int
	TotalWeeks int
	Outcome    SalesOutcome
	Inventory  InventoryState
	Log        []WeekRecord
	Optimal    OptimalPrice
	Perfect    bool // the actual net matched or beat the best grid price
	OutOf      []Ingredient
}
