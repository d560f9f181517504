package model

import "github.com/shopspring/decimal"

// WeekRecord is one completed week in the season log.
type WeekRecord struct {
	Week  int
	Price decimal.Decimal
	Sales int
}

// SeasonLog is the append-only record of completed weeks.
type SeasonLog struct {
	records []WeekRecord
}

// Append adds a completed week.
func (l *SeasonLog) Append(r WeekRecord) {
	l.records = append(l.records, r)
}

// Records returns a copy of the log.
func (l *SeasonLog) Records() []WeekRecord {
	out := make([]WeekRecord, len(l.records))
	copy(out, l.records)
	return out
}

// Len returns the number of completed weeks.
func (l *SeasonLog) Len() int { return len(l.records) }

// TotalSold sums sales across the season.
func (l *SeasonLog) TotalSold() int {
	total := 0
	for _, r := range l.records {
		total += r.Sales
	}
	return total
}

// ScoreAccumulator tracks achieved net against the best achievable net.
type ScoreAccumulator struct {
	Achieved decimal.Decimal
	Possible decimal.Decimal
}

// Add records one week's actual and best nets.
func (a *ScoreAccumulator) Add(achieved, possible decimal.Decimal) {
	a.Achieved = a.Achieved.Add(achieved)
	a.Possible = a.Possible.Add(possible)
}

// Percent is achieved/possible as a whole percentage in [0, 100].
// Half-way values round to even. With nothing possible the score is 0.
func (a ScoreAccumulator) Percent() int {
	if !a.Possible.IsPositive() {
		return 0
	}
	pct := a.Achieved.Div(a.Possible).Mul(decimal.NewFromInt(100)).RoundBank(0).IntPart()
	switch {
	case pct < 0:
		return 0
	case pct > 100:
		return 100
	}
	return int(pct)
}

// SeasonSummary is emitted once the last week has been reported.
type SeasonSummary struct {
	ID        string
	Weeks     int
	Achieved  decimal.Decimal
	Possible  decimal.Decimal
	Score     int
	TotalSold int
	Log       []WeekRecord
	Inventory InventoryState
}
