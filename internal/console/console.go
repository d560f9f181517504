package console

import (
	"context"
	"fmt"
	"time"

	"LemonadeStand/internal/collector"
	"LemonadeStand/internal/model"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
)

// Console is the interactive front end. It renders every season step onto
// a Screen and answers the scheduler's questions with what the player types.
type Console struct {
	Title          string // already trimmed, with trailing separator
	Celsius        bool
	Glyphs         bool
	Wait           bool // pace the "now serving" dots
	MaxWeeklySales int
	Money          Money

	// Pace returns the pause after each "now serving" dot.
	Pace func() time.Duration

	ctx  context.Context
	send func(tea.Msg)
}

// NewConsole creates a Console that sends its output to a running Screen
// through send, usually (*tea.Program).Send. Recorder calls stop waiting
// for the player once ctx is done.
func NewConsole(ctx context.Context, send func(tea.Msg), money Money, pace collector.Source) *Console {
	return &Console{
		Glyphs:         true,
		Wait:           true,
		MaxWeeklySales: 99,
		Money:          money,
		Pace: func() time.Duration {
			return time.Duration(250+collector.IntN(pace, 0, 1250)) * time.Millisecond
		},
		ctx:  ctx,
		send: send,
	}
}

func (c *Console) page(text string) { c.send(pageMsg{text: text}) }

func (c *Console) print(text string) { c.send(textMsg{text: text}) }

func (c *Console) ask(ctx context.Context, prompt string) (string, error) {
	reply := make(chan string, 1)
	c.send(askMsg{prompt: prompt, reply: reply})
	select {
	case line := <-reply:
		return line, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func (c *Console) pause() error {
	_, err := c.ask(c.ctx, "\nPress ENTER to Continue")
	return err
}

// Quantity prompts for the number of boxes or bags of ing to buy.
func (c *Console) Quantity(ctx context.Context, _ *model.MarketBoard, _ model.InventoryState, ing model.Ingredient, _ error) (int, error) {
	raw, err := c.ask(ctx, fmt.Sprintf("How many %s of %s to buy? ", ing.Packages(), ing))
	if err != nil {
		return 0, err
	}
	return ParseQuantity(raw)
}

// Price prompts for the week's price.
func (c *Console) Price(ctx context.Context, _ *model.MarketBoard, _ model.InventoryState, _ error) (decimal.Decimal, error) {
	raw, err := c.ask(ctx, "How much should the lemonade cost? ")
	if err != nil {
		return decimal.Zero, err
	}
	return ParsePrice(raw)
}

func (c *Console) RecordMarket(b *model.MarketBoard) error {
	c.page(c.FormatBoard(b))
	return nil
}

func (c *Console) RecordPurchase(p *model.PurchaseReceipt) error {
	c.print(c.FormatPurchase(p))
	return nil
}

func (c *Console) RecordRejection(err error) error {
	c.print(fmt.Sprintf("  %v\n", err))
	return nil
}

func (c *Console) RecordWeek(r *model.WeekReport) error {
	c.print(fmt.Sprintf("  Setting the price at %s\n", c.Money.Format(r.Outcome.Price)))
	if err := c.serve(r.Outcome.Sales); err != nil {
		return err
	}

	c.page(c.FormatWeek(r))
	if r.Week == r.TotalWeeks {
		return nil // the season summary pauses instead
	}
	return c.pause()
}

// serve prints one dot per sale, with a random pause after each to suggest
// time passing.
func (c *Console) serve(sales int) error {
	if !c.Wait {
		return nil
	}
	c.print("\nNow Serving:\n")
	for range sales {
		c.print(". ")
		select {
		case <-time.After(c.Pace()):
		case <-c.ctx.Done():
			return c.ctx.Err()
		}
	}
	c.print("\n")
	return nil
}

func (c *Console) RecordSeason(s *model.SeasonSummary) error {
	c.print(c.FormatSeason(s))
	return c.pause()
}

func (c *Console) Close() error { return nil }
