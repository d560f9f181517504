package model

import "math"

// ForecastEntry is one weather category and its pull on demand.
type ForecastEntry struct {
	Key          string
	DemandFactor float64 // 0 < f <= 1
	Label        string
	Glyph        rune
}

// Forecasts is the fixed forecast table. Order only matters for random index selection.
var Forecasts = [...]ForecastEntry{
	{Key: "sunny", DemandFactor: 1.00, Label: "Sunny", Glyph: 0x2600},
	{Key: "partly", DemandFactor: 0.90, Label: "Partly Sunny", Glyph: 0x26C5},
	{Key: "cloudy", DemandFactor: 0.70, Label: "Mostly Cloudy", Glyph: 0x2601},
	{Key: "rainy", DemandFactor: 0.40, Label: "Rainy", Glyph: 0x2602},
	{Key: "stormy", DemandFactor: 0.10, Label: "Stormy", Glyph: 0x26C8},
}

// Weather is the week's drawn forecast and temperature (Fahrenheit).
type Weather struct {
	ForecastIndex int
	Temperature   int
}

// Forecast returns the table entry for the drawn index.
func (w Weather) Forecast() ForecastEntry {
	return Forecasts[w.ForecastIndex]
}

// Celsius converts the temperature for display.
func (w Weather) Celsius() int {
	return int(math.Round(float64(w.Temperature-32) * 5 / 9))
}
