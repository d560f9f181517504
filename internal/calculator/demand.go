package calculator

import (
	"math"

	"LemonadeStand/internal/model"

	"github.com/shopspring/decimal"
)

// DemandExponent bends sales along a curve rather than a straight line:
// sales fall off faster than the cost/price ratio alone.
const DemandExponent = 1.5

// Potential is the week's ceiling on sales regardless of price.
// Cooler days and worse weather mean fewer customers.
func Potential(maxWeeklySales, temperature int, forecast model.ForecastEntry) int {
	return int(math.Floor(float64(maxWeeklySales) * (float64(temperature) / 100) * forecast.DemandFactor))
}

// RawSales converts the potential into sales at a price. Non-positive
// prices are rejected before this is called; they yield 0 here.
func RawSales(potential int, unitCost, price decimal.Decimal) int {
	if !price.IsPositive() || potential <= 0 {
		return 0
	}
	ratio := unitCost.InexactFloat64() / price.InexactFloat64()
	sales := math.Floor(float64(potential) * math.Pow(ratio, DemandExponent))
	if sales < 0 {
		return 0
	}
	return int(sales)
}

// ActualSales caps raw sales by the potential and by the scarcest ingredient.
func ActualSales(raw, potential int, inv model.InventoryState) int {
	return max(0, min(raw, potential, inv.Cups, inv.Lemons, inv.Sugar))
}

// Outcome prices a given number of sales.
func Outcome(sales int, unitCost, price decimal.Decimal) model.SalesOutcome {
	n := decimal.NewFromInt(int64(sales))
	margin := price.Sub(unitCost)
	return model.SalesOutcome{
		Price:    price,
		UnitCost: unitCost,
		Margin:   margin,
		Sales:    sales,
		Gross:    n.Mul(price),
		Net:      n.Mul(margin),
	}
}

// Sell runs the full demand model for one week against the stand's supplies.
func Sell(potential int, unitCost, price decimal.Decimal, inv model.InventoryState) model.SalesOutcome {
	raw := RawSales(potential, unitCost, price)
	return Outcome(ActualSales(raw, potential, inv), unitCost, price)
}
