package model

import "github.com/shopspring/decimal"

// Ingredient identifies one of the three supplies a serving consumes.
type Ingredient int

const (
	Cups Ingredient = iota
	Lemons
	Sugar
)

// Ingredients lists the supplies in the order they are bought each week.
var Ingredients = [...]Ingredient{Cups, Lemons, Sugar}

func (i Ingredient) String() string {
	switch i {
	case Cups:
		return "cups"
	case Lemons:
		return "lemons"
	case Sugar:
		return "sugar"
	default:
		return "unknown"
	}
}

// Package names the unit the store sells the ingredient in.
func (i Ingredient) Package() string {
	if i == Cups {
		return "box"
	}
	return "bag"
}

// Packages is the plural of Package.
func (i Ingredient) Packages() string {
	if i == Cups {
		return "boxes"
	}
	return "bags"
}

// IngredientStock is the grocery store's current offer for one ingredient.
type IngredientStock struct {
	Ingredient   Ingredient
	Cost         decimal.Decimal // price of one box or bag
	CountPerUnit int             // servings per box or bag
	MinCost      decimal.Decimal
}

// UnitCost is the per-serving cost, rounded to cents.
func (s IngredientStock) UnitCost() decimal.Decimal {
	if s.CountPerUnit <= 0 {
		return decimal.Zero
	}
	return s.Cost.DivRound(decimal.NewFromInt(int64(s.CountPerUnit)), 2)
}

// Perturb shifts the cost by delta (rounded to cents) and clamps it at the floor.
func (s *IngredientStock) Perturb(delta decimal.Decimal) {
	s.Cost = s.Cost.Add(delta.Round(2))
	if s.Cost.LessThan(s.MinCost) {
		s.Cost = s.MinCost
	}
}

// ServingCost sums the per-serving cost of every ingredient.
func ServingCost(stocks [3]IngredientStock) decimal.Decimal {
	total := decimal.Zero
	for _, s := range stocks {
		total = total.Add(s.UnitCost())
	}
	return total
}
