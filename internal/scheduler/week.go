package scheduler

import (
	"errors"
	"fmt"

	"LemonadeStand/internal/calculator"
	"LemonadeStand/internal/collector"
	"LemonadeStand/internal/fund"
	"LemonadeStand/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrWrongPhase is returned when an operation is called out of order.
var ErrWrongPhase = errors.New("operation not allowed in current phase")

// Phase is a step of the weekly cycle.
type Phase int

const (
	GenerateMarket Phase = iota
	AwaitPurchases
	AwaitPrice
	Settle
	Report
	SeasonComplete
)

func (p Phase) String() string {
	switch p {
	case GenerateMarket:
		return "generate-market"
	case AwaitPurchases:
		return "await-purchases"
	case AwaitPrice:
		return "await-price"
	case Settle:
		return "settle"
	case Report:
		return "report"
	case SeasonComplete:
		return "season-complete"
	default:
		return "unknown"
	}
}

// Season is the fixed setup of one run.
type Season struct {
	Weeks        int
	StartingCash decimal.Decimal
	Stocks       [3]model.IngredientStock // indexed by model.Ingredient
}

// WeekScheduler drives a season one week at a time. It exclusively owns the
// ledger, the score and the season log; none of them change outside
// Purchase and SetPrice.
type WeekScheduler struct {
	id        string
	collector *collector.Collector
	weeks     int
	stocks    [3]model.IngredientStock
	ledger    *fund.Ledger
	score     model.ScoreAccumulator
	log       model.SeasonLog

	phase   Phase
	week    int
	pending model.Ingredient
	market  collector.Conditions
}

// NewWeekScheduler creates a scheduler ready to open week 1.
func NewWeekScheduler(col *collector.Collector, season Season) *WeekScheduler {
	return &WeekScheduler{
		id:        uuid.NewString(),
		collector: col,
		weeks:     season.Weeks,
		stocks:    season.Stocks,
		ledger:    fund.NewLedger(season.StartingCash),
		phase:     GenerateMarket,
		week:      1,
	}
}

// ID identifies the season in logs.
func (s *WeekScheduler) ID() string { return s.id }

// Phase returns the current phase.
func (s *WeekScheduler) Phase() Phase { return s.phase }

// Week returns the current week, starting at 1.
func (s *WeekScheduler) Week() int { return s.week }

// PendingIngredient is the ingredient the next Purchase must be for.
func (s *WeekScheduler) PendingIngredient() model.Ingredient { return s.pending }

// Inventory returns the current supplies and cash.
func (s *WeekScheduler) Inventory() model.InventoryState { return s.ledger.State() }

// Score returns the running score totals.
func (s *WeekScheduler) Score() model.ScoreAccumulator { return s.score }

// Log returns a copy of the season log.
func (s *WeekScheduler) Log() []model.WeekRecord { return s.log.Records() }

func (s *WeekScheduler) expect(p Phase) error {
	if s.phase != p {
		return fmt.Errorf("%w: in %s, want %s", ErrWrongPhase, s.phase, p)
	}
	return nil
}

// OpenWeek draws the weather, reprices the store and shows the board.
func (s *WeekScheduler) OpenWeek() (*model.MarketBoard, error) {
	if err := s.expect(GenerateMarket); err != nil {
		return nil, err
	}
	s.market = s.collector.Collect(&s.stocks)
	s.pending = model.Cups
	s.phase = AwaitPurchases
	return s.Board(), nil
}

// Board returns the current week's market board.
func (s *WeekScheduler) Board() *model.MarketBoard {
	return &model.MarketBoard{
		Week:       s.week,
		TotalWeeks: s.weeks,
		Weather:    s.market.Weather,
		Potential:  s.market.Potential,
		Stocks:     s.stocks,
		UnitCost:   s.market.UnitCost,
		Inventory:  s.ledger.State(),
	}
}

// Purchase buys boxes or bags of the pending ingredient. Ingredients are
// bought in order: cups, lemons, sugar. A rejected purchase leaves the
// phase unchanged so the same decision can be asked again.
func (s *WeekScheduler) Purchase(ing model.Ingredient, qty int) (*model.PurchaseReceipt, error) {
	if err := s.expect(AwaitPurchases); err != nil {
		return nil, err
	}
	if ing != s.pending {
		return nil, fmt.Errorf("%w: expected %s purchase, got %s", ErrWrongPhase, s.pending, ing)
	}
	receipt, err := s.ledger.Purchase(s.stocks[ing], qty)
	if err != nil {
		return nil, err
	}
	if ing == model.Sugar {
		s.phase = AwaitPrice
	} else {
		s.pending = ing + 1
	}
	return &receipt, nil
}

// SetPrice accepts the week's price and settles the week. Prices must be
// greater than zero; a rejected price computes nothing.
func (s *WeekScheduler) SetPrice(price decimal.Decimal) (*model.WeekReport, error) {
	if err := s.expect(AwaitPrice); err != nil {
		return nil, err
	}
	if !price.IsPositive() {
		return nil, model.Rejectf(model.InvalidPrice, "The price must be greater than zero.")
	}
	s.phase = Settle
	return s.settle(price), nil
}

func (s *WeekScheduler) settle(price decimal.Decimal) *model.WeekReport {
	potential, unitCost := s.market.Potential, s.market.UnitCost

	outcome := calculator.Sell(potential, unitCost, price, s.ledger.State())
	s.ledger.Settle(outcome.Sales, outcome.Gross)

	best := calculator.OptimalPrice(potential, unitCost)
	s.log.Append(model.WeekRecord{Week: s.week, Price: price, Sales: outcome.Sales})
	s.score.Add(outcome.Net, best.Net)

	s.phase = Report
	return &model.WeekReport{
		Week:       s.week,
		TotalWeeks: s.weeks,
		Outcome:    outcome,
		Inventory:  s.ledger.State(),
		Log:        s.log.Records(),
		Optimal:    best,
		Perfect:    !best.Net.GreaterThan(outcome.Net),
		OutOf:      s.ledger.OutOf(),
	}
}

// CloseWeek moves on to the next week, or completes the season after the last one.
func (s *WeekScheduler) CloseWeek() error {
	if err := s.expect(Report); err != nil {
		return err
	}
	if s.week >= s.weeks {
		s.phase = SeasonComplete
		return nil
	}
	s.week++
	s.phase = GenerateMarket
	return nil
}

// Summary returns the final score once the season is complete.
func (s *WeekScheduler) Summary() (*model.SeasonSummary, error) {
	if err := s.expect(SeasonComplete); err != nil {
		return nil, err
	}
	return &model.SeasonSummary{
		ID:        s.id,
		Weeks:     s.weeks,
		Achieved:  s.score.Achieved,
		Possible:  s.score.Possible,
		Score:     s.score.Percent(),
		TotalSold: s.log.TotalSold(),
		Log:       s.log.Records(),
		Inventory: s.ledger.State(),
	}, nil
}
