package console

import (
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Money formats amounts in the currency of a locale.
type Money struct {
	printer *message.Printer
	unit    currency.Unit
}

// NewMoney creates a formatter for tag, falling back to US dollars when the
// locale has no currency.
func NewMoney(tag language.Tag) Money {
	unit, conf := currency.FromTag(tag)
	if conf == language.No {
		unit = currency.USD
	}
	return Money{printer: message.NewPrinter(tag), unit: unit}
}

// Format renders an amount with the narrow currency symbol, grouping and
// two decimals. Negative amounts put the sign before the symbol: -$17.50.
func (m Money) Format(d decimal.Decimal) string {
	d = d.Round(2)
	sign := ""
	if d.IsNegative() {
		sign = "-"
	}
	sym := strings.TrimSpace(m.printer.Sprint(currency.NarrowSymbol(m.unit)))
	amount := m.printer.Sprint(number.Decimal(d.Abs().InexactFloat64(), number.Scale(2)))
	return sign + sym + amount
}

// SystemLocale reads the locale from LC_ALL, LC_MONETARY or LANG
// ("en_GB.UTF-8" style), defaulting to American English.
func SystemLocale() language.Tag {
	for _, name := range []string{"LC_ALL", "LC_MONETARY", "LANG"} {
		v := os.Getenv(name)
		if v == "" || v == "C" || v == "POSIX" {
			continue
		}
		if i := strings.IndexAny(v, ".@"); i >= 0 {
			v = v[:i]
		}
		if tag, err := language.Parse(strings.ReplaceAll(v, "_", "-")); err == nil {
			return tag
		}
	}
	return language.AmericanEnglish
}
