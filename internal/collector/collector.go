package collector

import (
	"LemonadeStand/internal/calculator"
	"LemonadeStand/internal/model"

	"github.com/shopspring/decimal"
)

// Market holds the tunables for weekly weather and grocery prices.
type Market struct {
	MinTemperature int     // inclusive, Fahrenheit
	MaxTemperature int     // exclusive
	Volatility     float64 // max weekly cost swing either way
	MaxWeeklySales int
}

// DefaultMarket mirrors the classic game's constants.
func DefaultMarket() Market {
	return Market{MinTemperature: 69, MaxTemperature: 100, Volatility: 1.50, MaxWeeklySales: 99}
}

// Collector draws each week's weather and store prices.
type Collector struct {
	Source Source
	Market Market
}

// NewCollector creates a new Collector.
func NewCollector(src Source, market Market) *Collector {
	return &Collector{Source: src, Market: market}
}

// Weather draws a forecast uniformly from the table and a temperature from
// [MinTemperature, MaxTemperature).
func (c *Collector) Weather() model.Weather {
	return model.Weather{
		ForecastIndex: IntN(c.Source, 0, len(model.Forecasts)),
		Temperature:   IntN(c.Source, c.Market.MinTemperature, c.Market.MaxTemperature),
	}
}

// Reprice perturbs every ingredient's cost in buying order, keeping each at
// or above its floor.
func (c *Collector) Reprice(stocks *[3]model.IngredientStock) {
	for i := range stocks {
		delta := c.Source.Uniform(-c.Market.Volatility, c.Market.Volatility)
		stocks[i].Perturb(decimal.NewFromFloat(delta))
	}
}

// Conditions is one week's generated market.
type Conditions struct {
	Weather   model.Weather
	Potential int
	UnitCost  decimal.Decimal
}

// Collect draws the weather, reprices the store and derives the week's
// potential sales and per-serving cost.
func (c *Collector) Collect(stocks *[3]model.IngredientStock) Conditions {
	w := c.Weather()
	c.Reprice(stocks)
	return Conditions{
		Weather:   w,
		Potential: calculator.Potential(c.Market.MaxWeeklySales, w.Temperature, w.Forecast()),
		UnitCost:  model.ServingCost(*stocks),
	}
}
