package console

import (
	"fmt"
	"strconv"
	"strings"

	"LemonadeStand/internal/model"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

const stand = ` .===================.
 |  FRESH  LEMONADE  |
 '==================='
   !!             !!
   !!             !!
   !!             !!
   !!             !!
   !!             !!
   !!             !!
   !!  ______     !!
   !!  \..../     !!
   !!  (::::)O    !!
=======================
 \___________________/
  | | | | | | | | | |
  | | | | | | | | | |
  | | | | | | | | | |
  | | | | | | | | | |
 v| | | | | | | | | |v
'"'"'"'"'"'"'"'"'"'"'"'`

var standLines = strings.Split(stand, "\n")

// FormatBoard renders the week's market board beside the stand.
func (c *Console) FormatBoard(b *model.MarketBoard) string {
	text := make([]string, len(standLines))
	text[1] = yellow.Render(fmt.Sprintf("%sWeek #%d", c.Title, b.Week))
	text[3] = "Weather Forecast:  " + c.formatWeather(b.Weather)
	text[4] = fmt.Sprintf("Estimated Sales:   %d cups", b.Potential)

	text[6] = "Grocery Store Prices"
	cups, lemons, sugar := b.Stock(model.Cups), b.Stock(model.Lemons), b.Stock(model.Sugar)
	text[7] = fmt.Sprintf("  Cups:    %s box of %d", c.Money.Format(cups.Cost), cups.CountPerUnit)
	text[8] = fmt.Sprintf("  Lemons:  %s bag of %d", c.Money.Format(lemons.Cost), lemons.CountPerUnit)
	text[9] = fmt.Sprintf("  Sugar:   %s bag for %d cups", c.Money.Format(sugar.Cost), sugar.CountPerUnit)
	text[10] = fmt.Sprintf("           %s cost per serving", c.Money.Format(b.UnitCost))

	inv := b.Inventory
	text[12] = "My Current Inventory"
	text[13] = fmt.Sprintf("  Cups:    %d", inv.Cups)
	text[14] = fmt.Sprintf("  Lemons:  %d", inv.Lemons)
	text[15] = fmt.Sprintf("  Sugar:   %d", inv.Sugar)

	text[17] = "My Cash:    " + c.Money.Format(inv.Cash)
	text[18] = "Gain/Loss:  " + c.Money.Format(inv.GainLoss())

	return lipgloss.JoinHorizontal(lipgloss.Top,
		dimYellow.Render(stand), "  ", strings.Join(text, "\n")) + "\n"
}

func (c *Console) formatWeather(w model.Weather) string {
	f := w.Forecast()
	temp, unit := w.Temperature, "ºF"
	if c.Celsius {
		temp, unit = w.Celsius(), "ºC"
	}
	s := fmt.Sprintf("%d%s %s", temp, unit, f.Label)
	if c.Glyphs {
		s += " " + string(f.Glyph)
	}
	return s
}

// FormatPurchase describes an accepted purchase.
func (c *Console) FormatPurchase(p *model.PurchaseReceipt) string {
	ing := p.Ingredient
	if p.Quantity == 0 {
		if ing == model.Sugar {
			return "  No additional sugar was purchased\n"
		}
		return fmt.Sprintf("  No additional %s were purchased\n", ing)
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "  Purchased %d %s of %s for %s\n",
		p.Quantity, packageCount(ing), ing, c.Money.Format(p.Cost))
	fmt.Fprintf(&sb, "  %d %s inventory, %s cash remaining\n",
		p.Inventory.Quantity(ing), inventoryNoun(ing), c.Money.Format(p.Inventory.Cash))
	return sb.String()
}

func packageCount(ing model.Ingredient) string {
	if ing == model.Cups {
		return "box(es)"
	}
	return "bag(s)"
}

func inventoryNoun(ing model.Ingredient) string {
	switch ing {
	case model.Cups:
		return "cup"
	case model.Lemons:
		return "lemon"
	default:
		return "sugar"
	}
}

// FormatWeek renders the sales results, remaining inventory, the weekly
// summary table and the best-price counterfactual.
func (c *Console) FormatWeek(r *model.WeekReport) string {
	var sb strings.Builder
	o, inv := r.Outcome, r.Inventory

	fmt.Fprintf(&sb, "\n%s\n", yellow.Render(fmt.Sprintf("Sales Results Week #%d of %d", r.Week, r.TotalWeeks)))
	fmt.Fprintf(&sb, "  Unit Cost (per serving):  %s\n", c.Money.Format(o.UnitCost))
	fmt.Fprintf(&sb, "  Actual Price:             %s\n", c.Money.Format(o.Price))
	fmt.Fprintf(&sb, "  Profit Margin:            %s\n", c.Money.Format(o.Margin))
	fmt.Fprintf(&sb, "  Actual Sales:             %d x %s\n", o.Sales, c.Money.Format(o.Price))
	fmt.Fprintf(&sb, "  Gross Profit:             %s\n", c.Money.Format(o.Gross))
	fmt.Fprintf(&sb, "  Net Profit:               %s\n", c.Money.Format(o.Net))
	fmt.Fprintf(&sb, "  Current Cash:             %s\n", c.Money.Format(inv.Cash))
	fmt.Fprintf(&sb, "  Total Gain/Loss:          %s\n", c.Money.Format(inv.GainLoss()))

	sb.WriteString("\nRemaining Inventory\n")
	fmt.Fprintf(&sb, "  Cups:                     %d\n", inv.Cups)
	fmt.Fprintf(&sb, "  Lemons:                   %d\n", inv.Lemons)
	fmt.Fprintf(&sb, "  Sugar:                    %d\n", inv.Sugar)

	padWeek := len(strconv.Itoa(r.TotalWeeks))
	padSale := len(strconv.Itoa(c.MaxWeeklySales))
	sb.WriteString("\nWeekly Sales Summary\n")
	for _, rec := range r.Log {
		fmt.Fprintf(&sb, "  Week %*d:  %*d sold x %s ea.\n",
			padWeek, rec.Week, padSale, rec.Sales, c.Money.Format(rec.Price))
	}

	if r.Perfect {
		sb.WriteString("\nCongratulations -- your sales were perfect!\n")
		return sb.String()
	}
	best := r.Optimal
	sb.WriteString("\nYour sales could have been:\n")
	fmt.Fprintf(&sb, "  %d sold x %s ea. = %s for a net profit of %s\n",
		best.Sales, c.Money.Format(best.Price), c.Money.Format(best.Gross), c.Money.Format(best.Net))
	for _, ing := range r.OutOf {
		fmt.Fprintf(&sb, "  You ran out of %s.\n", ing)
	}
	return sb.String()
}

// FormatSeason renders the final score.
func (c *Console) FormatSeason(s *model.SeasonSummary) string {
	return fmt.Sprintf("\nYou've made %s out of a possible %s for a score of %d%%\n"+
		"You've sold %s total cups -- see you again next time!\n",
		c.Money.Format(s.Achieved), c.Money.Format(s.Possible), s.Score, humanize.Comma(int64(s.TotalSold)))
}
