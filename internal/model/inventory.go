package model

import "github.com/shopspring/decimal"

// InventoryState is a snapshot of the stand's supplies and money.
type InventoryState struct {
	Cups         int
	Lemons       int
	Sugar        int
	Cash         decimal.Decimal
	StartingCash decimal.Decimal
}

// Quantity returns the servings on hand for an ingredient.
func (s InventoryState) Quantity(i Ingredient) int {
	switch i {
	case Cups:
		return s.Cups
	case Lemons:
		return s.Lemons
	case Sugar:
		return s.Sugar
	}
	return 0
}

// Servings is the number of complete servings the supplies allow.
func (s InventoryState) Servings() int {
	return min(s.Cups, s.Lemons, s.Sugar)
}

// GainLoss is cash relative to the start of the season.
func (s InventoryState) GainLoss() decimal.Decimal {
	return s.Cash.Sub(s.StartingCash)
}

// PurchaseReceipt describes an accepted purchase.
type PurchaseReceipt struct {
	Ingredient Ingredient
	Quantity   int // boxes or bags
	Units      int // servings added
	Cost       decimal.Decimal
	Inventory  InventoryState
}
