package strategy

import (
	"context"

	"LemonadeStand/internal/calculator"
	"LemonadeStand/internal/model"

	"github.com/shopspring/decimal"
)

// FallbackPrice is charged when no grid price turns a profit.
var FallbackPrice = decimal.NewFromInt(1)

// Autopilot plays a season without an operator: it aims for the sales of
// the optimal grid price and buys just enough supplies to serve them.
type Autopilot struct{}

// NewAutopilot creates an Autopilot.
func NewAutopilot() *Autopilot { return &Autopilot{} }

// Plan is the week's intended purchases, in boxes or bags per ingredient.
type Plan struct {
	Target  int
	Boxes   [3]int
	Cost    decimal.Decimal
	Optimal model.OptimalPrice
}

// PlanWeek picks the largest affordable serving target up to the optimal
// price's sales, given the supplies and cash shown on the board.
func PlanWeek(board *model.MarketBoard) Plan {
	best := calculator.OptimalPrice(board.Potential, board.UnitCost)
	plan := Plan{Optimal: best}
	if !best.Found {
		return plan
	}
	for target := best.Sales; target > 0; target-- {
		boxes, cost := restock(board, target)
		if cost.LessThanOrEqual(board.Inventory.Cash) {
			plan.Target, plan.Boxes, plan.Cost = target, boxes, cost
			return plan
		}
	}
	return plan
}

func restock(board *model.MarketBoard, target int) ([3]int, decimal.Decimal) {
	var boxes [3]int
	cost := decimal.Zero
	for _, ing := range model.Ingredients {
		stock := board.Stock(ing)
		short := target - board.Inventory.Quantity(ing)
		if short <= 0 || stock.CountPerUnit <= 0 {
			continue
		}
		n := (short + stock.CountPerUnit - 1) / stock.CountPerUnit
		boxes[ing] = n
		cost = cost.Add(stock.Cost.Mul(decimal.NewFromInt(int64(n))))
	}
	return boxes, cost
}

// Quantity returns the planned boxes for ing. After an insufficient-funds
// rejection it buys as many as the remaining cash allows.
func (a *Autopilot) Quantity(_ context.Context, board *model.MarketBoard, inv model.InventoryState, ing model.Ingredient, rejected error) (int, error) {
	want := PlanWeek(board).Boxes[ing]
	if kind, ok := model.KindOf(rejected); ok && kind == model.InsufficientFunds {
		cost := board.Stock(ing).Cost
		if !cost.IsPositive() {
			return 0, nil
		}
		affordable := int(inv.Cash.Div(cost).IntPart())
		return min(want, affordable), nil
	}
	return want, nil
}

// Price charges the optimal grid price.
func (a *Autopilot) Price(_ context.Context, board *model.MarketBoard, _ model.InventoryState, _ error) (decimal.Decimal, error) {
	best := calculator.OptimalPrice(board.Potential, board.UnitCost)
	if !best.Found {
		return FallbackPrice, nil
	}
	return best.Price, nil
}
