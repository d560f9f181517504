package console

import (
	"regexp"
	"strconv"
	"strings"

	"LemonadeStand/internal/model"

	"github.com/shopspring/decimal"
)

var nonPriceChars = regexp.MustCompile(`[^0-9.\-]`)

// ParseQuantity reads a box or bag count. Empty input buys nothing.
func ParseQuantity(raw string) (int, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, model.Rejectf(model.InvalidQuantity, "Please enter a whole number.")
	}
	if n < 0 {
		return 0, model.Rejectf(model.InvalidQuantity, "The quantity must not be negative.")
	}
	return n, nil
}

// ParsePrice reads a price, ignoring currency symbols and other decoration.
func ParsePrice(raw string) (decimal.Decimal, error) {
	s := nonPriceChars.ReplaceAllString(raw, "")
	if s == "" {
		return decimal.Zero, model.Rejectf(model.InvalidPrice, "The price must be greater than zero.")
	}
	price, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, model.Rejectf(model.InvalidPrice, "Please enter a price such as 1.25.")
	}
	if !price.IsPositive() {
		return decimal.Zero, model.Rejectf(model.InvalidPrice, "The price must be greater than zero.")
	}
	return price, nil
}
