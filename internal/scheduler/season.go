package scheduler

import (
	"context"
	"fmt"
	"log"

	"LemonadeStand/internal/model"
	"LemonadeStand/internal/recorder"

	"github.com/shopspring/decimal"
)

// Decider supplies the operator's weekly decisions. rejected carries the
// validation error of the previous answer to the same question, or nil.
// Returning a *model.ValidationError asks the same question again.
type Decider interface {
	Quantity(ctx context.Context, board *model.MarketBoard, inv model.InventoryState, ing model.Ingredient, rejected error) (int, error)
	Price(ctx context.Context, board *model.MarketBoard, inv model.InventoryState, rejected error) (decimal.Decimal, error)
}

// RunSeason plays every remaining week of ws with decisions from d,
// reporting each step to rec.
func RunSeason(ctx context.Context, ws *WeekScheduler, d Decider, rec recorder.Recorder) (*model.SeasonSummary, error) {
	for ws.Phase() != SeasonComplete {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := runWeek(ctx, ws, d, rec); err != nil {
			return nil, fmt.Errorf("week %d: %w", ws.Week(), err)
		}
	}

	summary, err := ws.Summary()
	if err != nil {
		return nil, err
	}
	if err := rec.RecordSeason(summary); err != nil {
		log.Printf("[ERROR] record season: %v", err)
	}
	return summary, nil
}

func runWeek(ctx context.Context, ws *WeekScheduler, d Decider, rec recorder.Recorder) error {
	board, err := ws.OpenWeek()
	if err != nil {
		return err
	}
	if err := rec.RecordMarket(board); err != nil {
		log.Printf("[ERROR] record market: %v", err)
	}

	for _, ing := range model.Ingredients {
		var rejected error
		for {
			if err := ctx.Err(); err != nil {
				return err
			}
			qty, err := d.Quantity(ctx, board, ws.Inventory(), ing, rejected)
			if err == nil {
				var receipt *model.PurchaseReceipt
				receipt, err = ws.Purchase(ing, qty)
				if err == nil {
					if rerr := rec.RecordPurchase(receipt); rerr != nil {
						log.Printf("[ERROR] record purchase: %v", rerr)
					}
					break
				}
			}
			if rejected, err = reject(rec, err); err != nil {
				return fmt.Errorf("%s purchase: %w", ing, err)
			}
		}
	}

	var rejected error
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		price, err := d.Price(ctx, board, ws.Inventory(), rejected)
		if err == nil {
			var report *model.WeekReport
			report, err = ws.SetPrice(price)
			if err == nil {
				if rerr := rec.RecordWeek(report); rerr != nil {
					log.Printf("[ERROR] record week: %v", rerr)
				}
				break
			}
		}
		if rejected, err = reject(rec, err); err != nil {
			return fmt.Errorf("price: %w", err)
		}
	}

	return ws.CloseWeek()
}

// reject passes validation errors back as the next attempt's rejection and
// returns anything else as fatal.
func reject(rec recorder.Recorder, err error) (rejected, fatal error) {
	if _, ok := model.KindOf(err); !ok {
		return nil, err
	}
	if rerr := rec.RecordRejection(err); rerr != nil {
		log.Printf("[ERROR] record rejection: %v", rerr)
	}
	return err, nil
}
