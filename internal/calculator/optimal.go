package calculator

import (
	"LemonadeStand/internal/model"

	"github.com/shopspring/decimal"
)

// Price grid scanned by OptimalPrice, in cents: 0.25, 0.50 ... 24.75.
const (
	GridStartCents = 25
	GridEndCents   = 2500 // exclusive
	GridStepCents  = 25
)

// GridPrices returns the scanned prices in ascending order.
func GridPrices() []decimal.Decimal {
	prices := make([]decimal.Decimal, 0, (GridEndCents-GridStartCents)/GridStepCents)
	for c := GridStartCents; c < GridEndCents; c += GridStepCents {
		prices = append(prices, decimal.New(int64(c), -2))
	}
	return prices
}

// Feasible reports whether an outcome counts for the optimal search:
// something sells, no more than the potential, and not below cost.
func Feasible(o model.SalesOutcome, potential int) bool {
	return o.Sales > 0 && o.Sales <= potential && o.UnitCost.LessThanOrEqual(o.Price)
}

// OptimalPrice scans the price grid for the highest positive net profit under
// the week's potential and unit cost. Supplies on hand are ignored. Ties keep
// the lowest price.
func OptimalPrice(potential int, unitCost decimal.Decimal) model.OptimalPrice {
	var best model.OptimalPrice
	for _, price := range GridPrices() {
		o := Outcome(RawSales(potential, unitCost, price), unitCost, price)
		if !Feasible(o, potential) {
			continue
		}
		if o.Net.GreaterThan(best.Net) {
			best = model.OptimalPrice{SalesOutcome: o, Found: true}
		}
	}
	return best
}
