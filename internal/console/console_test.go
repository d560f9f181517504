package console

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"LemonadeStand/internal/collector"
	"LemonadeStand/internal/model"
	"LemonadeStand/internal/scheduler"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func testSeason() scheduler.Season {
	return scheduler.Season{
		Weeks:        1,
		StartingCash: dec("30.00"),
		Stocks: [3]model.IngredientStock{
			{Ingredient: model.Cups, Cost: dec("2.50"), CountPerUnit: 25, MinCost: dec("0.99")},
			{Ingredient: model.Lemons, Cost: dec("4.00"), CountPerUnit: 8, MinCost: dec("2.00")},
			{Ingredient: model.Sugar, Cost: dec("3.00"), CountPerUnit: 15, MinCost: dec("1.50")},
		},
	}
}

// player stands in for a running Screen: it keeps everything shown and
// answers questions from a script.
type player struct {
	answers []string
	shown   strings.Builder
	onAsk   func()
}

func (p *player) send(msg tea.Msg) {
	switch msg := msg.(type) {
	case pageMsg:
		p.shown.WriteString(msg.text)
	case textMsg:
		p.shown.WriteString(msg.text)
	case askMsg:
		p.shown.WriteString(msg.prompt)
		if p.onAsk != nil {
			p.onAsk()
		}
		if len(p.answers) == 0 {
			return
		}
		p.shown.WriteString(p.answers[0] + "\n")
		msg.reply <- p.answers[0]
		p.answers = p.answers[1:]
	}
}

func newTestConsole(ctx context.Context, answers ...string) (*Console, *player) {
	p := &player{answers: answers}
	c := NewConsole(ctx, p.send, NewMoney(language.AmericanEnglish), &collector.ScriptedSource{})
	c.Title = "Corner Stand "
	return c, p
}

func TestFormatBoard(t *testing.T) {
	c, _ := newTestConsole(context.Background())
	c.Celsius = true
	b := &model.MarketBoard{
		Week:       3,
		TotalWeeks: 12,
		Weather:    model.Weather{ForecastIndex: 0, Temperature: 84},
		Potential:  83,
		Stocks:     testSeason().Stocks,
		UnitCost:   dec("0.80"),
		Inventory:  model.InventoryState{Cups: 10, Lemons: 1, Cash: dec("31.50"), StartingCash: dec("30.00")},
	}

	out := c.FormatBoard(b)
	for _, want := range []string{
		"Corner Stand Week #3",
		"29ºC Sunny ☀",
		"Estimated Sales:   83 cups",
		"Lemons:  " + c.Money.Format(dec("4.00")) + " bag of 8",
		c.Money.Format(dec("0.80")) + " cost per serving",
		"Cups:    10",
		"Gain/Loss:  " + c.Money.Format(dec("1.50")),
	} {
		if !strings.Contains(out, want) {
			t.Errorf("board is missing %q:\n%s", want, out)
		}
	}
	if lines := strings.Count(out, "\n"); lines != len(standLines) {
		t.Errorf("expected %d lines, got %d", len(standLines), lines)
	}

	c.Celsius, c.Glyphs = false, false
	if out := c.FormatBoard(b); !strings.Contains(out, "84ºF Sunny") || strings.Contains(out, "☀") {
		t.Errorf("expected Fahrenheit without a glyph:\n%s", out)
	}
}

func TestFormatPurchase(t *testing.T) {
	c, _ := newTestConsole(context.Background())
	inv := model.InventoryState{Lemons: 16, Cash: dec("22.00")}
	got := c.FormatPurchase(&model.PurchaseReceipt{Ingredient: model.Lemons, Quantity: 2, Units: 16, Cost: dec("8.00"), Inventory: inv})
	if !strings.Contains(got, "Purchased 2 bag(s) of lemons") || !strings.Contains(got, "16 lemon inventory") {
		t.Errorf("unexpected purchase line %q", got)
	}
	if got := c.FormatPurchase(&model.PurchaseReceipt{Ingredient: model.Sugar}); got != "  No additional sugar was purchased\n" {
		t.Errorf("unexpected empty purchase line %q", got)
	}
	if got := c.FormatPurchase(&model.PurchaseReceipt{Ingredient: model.Cups}); got != "  No additional cups were purchased\n" {
		t.Errorf("unexpected empty purchase line %q", got)
	}
}

func TestConsoleSeason(t *testing.T) {
	c, p := newTestConsole(context.Background(),
		"lots", // rejected
		"1",
		"2",
		"1",
		"$0", // rejected
		"$1.00",
		"", // final pause
	)
	var naps int
	c.Pace = func() time.Duration { naps++; return 0 }

	// Sunny, 84ºF, prices unchanged.
	src := &collector.ScriptedSource{Fractions: []float64{0, 0.5, 0.5, 0.5, 0.5}}
	ws := scheduler.NewWeekScheduler(collector.NewCollector(src, collector.DefaultMarket()), testSeason())

	s, err := scheduler.RunSeason(context.Background(), ws, c, c)
	if err != nil {
		t.Fatalf("season failed: %v\n%s", err, p.shown.String())
	}
	if s.TotalSold != 15 || s.Score != 12 {
		t.Fatalf("expected 15 sold and a score of 12, got %d and %d", s.TotalSold, s.Score)
	}
	if naps != 15 {
		t.Errorf("expected one pause per sale, got %d", naps)
	}
	if len(p.answers) != 0 {
		t.Errorf("unused answers %q", p.answers)
	}

	text := p.shown.String()
	for _, want := range []string{
		"Corner Stand Week #1",
		"How many boxes of cups to buy? ",
		"Please enter a whole number.",
		"Purchased 1 box(es) of cups",
		"How many bags of sugar to buy? ",
		"The price must be greater than zero.",
		"Setting the price at $1.00",
		"Now Serving:",
		"Actual Sales:             15 x",
		"Week 1:  15 sold x",
		"Your sales could have been:",
		"You ran out of sugar.",
		"for a score of 12%",
		"You've sold 15 total cups",
		"Press ENTER to Continue",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("output is missing %q", want)
		}
	}
}

func TestQuantity_StopsWhenCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	c, p := newTestConsole(ctx)
	p.onAsk = cancel // the player never answers

	_, err := c.Quantity(ctx, nil, model.InventoryState{}, model.Cups, nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestServing_StopsWhenCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	c, _ := newTestConsole(ctx)
	c.Pace = func() time.Duration { return time.Hour }
	cancel()

	start := time.Now()
	err := c.RecordWeek(&model.WeekReport{Week: 1, TotalWeeks: 12, Outcome: model.SalesOutcome{Sales: 99}})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if time.Since(start) > time.Second {
		t.Fatal("serving kept pacing after cancellation")
	}
}

func TestPace(t *testing.T) {
	c, _ := newTestConsole(context.Background())
	c.Pace = NewConsole(context.Background(), nil, c.Money, &collector.ScriptedSource{Fractions: []float64{0, 0.999}}).Pace
	if d := c.Pace(); d != 250*time.Millisecond {
		t.Errorf("expected 250ms, got %s", d)
	}
	if d := c.Pace(); d != 1498*time.Millisecond {
		t.Errorf("expected 1498ms, got %s", d)
	}
}

func TestFormatSeason(t *testing.T) {
	c, _ := newTestConsole(context.Background())
	got := c.FormatSeason(&model.SeasonSummary{Score: 87, TotalSold: 1234})
	if !strings.Contains(got, "score of 87%") || !strings.Contains(got, "1,234 total cups") {
		t.Errorf("unexpected summary %q", got)
	}
}
