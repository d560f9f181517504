package recorder

import (
	"log"

	"LemonadeStand/internal/model"
)

// LogRecorder writes one log line per season step. Used by the headless autopilot.
type LogRecorder struct {
	SeasonID string
	Verbose  bool // also log market boards and purchases
}

func NewLogRecorder(seasonID string, verbose bool) *LogRecorder {
	return &LogRecorder{SeasonID: seasonID, Verbose: verbose}
}

func (r *LogRecorder) RecordMarket(b *model.MarketBoard) error {
	if !r.Verbose {
		return nil
	}
	f := b.Weather.Forecast()
	log.Printf("[INFO] season=%s week=%d/%d forecast=%s temp=%d potential=%d unit_cost=%s cash=%s",
		r.SeasonID, b.Week, b.TotalWeeks, f.Key, b.Weather.Temperature, b.Potential,
		b.UnitCost.StringFixed(2), b.Inventory.Cash.StringFixed(2))
	return nil
}

func (r *LogRecorder) RecordPurchase(p *model.PurchaseReceipt) error {
	if !r.Verbose || p.Quantity == 0 {
		return nil
	}
	log.Printf("[INFO] season=%s bought %d %s of %s for %s (%d on hand)",
		r.SeasonID, p.Quantity, p.Ingredient.Package(), p.Ingredient, p.Cost.StringFixed(2),
		p.Inventory.Quantity(p.Ingredient))
	return nil
}

func (r *LogRecorder) RecordRejection(err error) error {
	log.Printf("[WARN] season=%s decision rejected: %v", r.SeasonID, err)
	return nil
}

func (r *LogRecorder) RecordWeek(w *model.WeekReport) error {
	o := w.Outcome
	log.Printf("[INFO] season=%s week=%d/%d sold=%d price=%s net=%s best_price=%s best_net=%s cash=%s",
		r.SeasonID, w.Week, w.TotalWeeks, o.Sales, o.Price.StringFixed(2), o.Net.StringFixed(2),
		w.Optimal.Price.StringFixed(2), w.Optimal.Net.StringFixed(2), w.Inventory.Cash.StringFixed(2))
	return nil
}

func (r *LogRecorder) RecordSeason(s *model.SeasonSummary) error {
	log.Printf("[INFO] season=%s complete: made %s of a possible %s, score %d%%, %d cups sold",
		s.ID, s.Achieved.StringFixed(2), s.Possible.StringFixed(2), s.Score, s.TotalSold)
	return nil
}

func (r *LogRecorder) Close() error { return nil }
