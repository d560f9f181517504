package recorder

import "LemonadeStand/internal/model"

// NoopRecorder discards everything.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordMarket(_ *model.MarketBoard) error       { return nil }
func (n *NoopRecorder) RecordPurchase(_ *model.PurchaseReceipt) error { return nil }
func (n *NoopRecorder) RecordRejection(_ error) error                 { return nil }
func (n *NoopRecorder) RecordWeek(_ *model.WeekReport) error          { return nil }
func (n *NoopRecorder) RecordSeason(_ *model.SeasonSummary) error     { return nil }
func (n *NoopRecorder) Close() error                                  { return nil }
