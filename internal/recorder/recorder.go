package recorder

import "LemonadeStand/internal/model"

// Recorder receives every observable step of a season.
type Recorder interface {
	RecordMarket(board *model.MarketBoard) error
	RecordPurchase(receipt *model.PurchaseReceipt) error
	RecordRejection(err error) error
	RecordWeek(report *model.WeekReport) error
	RecordSeason(summary *model.SeasonSummary) error
	Close() error
}

// Multi fans each record out to several recorders, stopping at the first error.
type Multi []Recorder

func (m Multi) RecordMarket(board *model.MarketBoard) error {
	for _, r := range m {
		if err := r.RecordMarket(board); err != nil {
			return err
		}
	}
	return nil
}

func (m Multi) RecordPurchase(receipt *model.PurchaseReceipt) error {
	for _, r := range m {
		if err := r.RecordPurchase(receipt); err != nil {
			return err
		}
	}
	return nil
}

func (m Multi) RecordRejection(err error) error {
	for _, r := range m {
		if rerr := r.RecordRejection(err); rerr != nil {
			return rerr
		}
	}
	return nil
}

func (m Multi) RecordWeek(report *model.WeekReport) error {
	for _, r := range m {
		if err := r.RecordWeek(report); err != nil {
			return err
		}
	}
	return nil
}

func (m Multi) RecordSeason(summary *model.SeasonSummary) error {
	for _, r := range m {
		if err := r.RecordSeason(summary); err != nil {
			return err
		}
	}
	return nil
}

func (m Multi) Close() error {
	var first error
	for _, r := range m {
		if err := r.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
