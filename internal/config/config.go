package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"LemonadeStand/internal/collector"
	"LemonadeStand/internal/model"
	"LemonadeStand/internal/scheduler"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// MaxTitleLength is the longest stand title shown before truncation.
const MaxTitleLength = 30

// Ingredient is the store's opening offer for one ingredient.
type Ingredient struct {
	Cost    float64 `yaml:"cost"`
	Count   int     `yaml:"count"`
	MinCost float64 `yaml:"min_cost"`
}

// Config holds all application configuration.
type Config struct {
	Stand struct {
		Title    string `yaml:"title"`
		Celsius  bool   `yaml:"celsius"`
		NoGlyphs bool   `yaml:"no_glyphs"`
		NoWait   bool   `yaml:"no_wait"`
	} `yaml:"stand"`
	Season struct {
		Weeks          int     `yaml:"weeks"`
		MaxWeeklySales int     `yaml:"max_weekly_sales"`
		StartingCash   float64 `yaml:"starting_cash"`
		Seed           int64   `yaml:"seed"` // 0 picks a seed at startup
	} `yaml:"season"`
	Weather struct {
		MinTemperature int `yaml:"min_temperature"`
		MaxTemperature int `yaml:"max_temperature"`
	} `yaml:"weather"`
	Market struct {
		Volatility float64    `yaml:"volatility"`
		Cups       Ingredient `yaml:"cups"`
		Lemons     Ingredient `yaml:"lemons"`
		Sugar      Ingredient `yaml:"sugar"`
	} `yaml:"market"`
	Autopilot struct {
		Cron    string `yaml:"cron"`
		Seasons int    `yaml:"seasons"`
		Verbose bool   `yaml:"verbose"`
	} `yaml:"autopilot"`
}

// Load starts from Default, overlays the keys present in the YAML file, then
// applies .env and environment variable overrides. A missing file is not an
// error. Keys set to zero or "" in the file stay that way.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// .env is optional; real environment variables win over it.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv("LEMONADE_TITLE"); ok {
		c.Stand.Title = v
	}
	for name, dst := range map[string]*bool{
		"LEMONADE_CELSIUS":   &c.Stand.Celsius,
		"LEMONADE_NO_GLYPHS": &c.Stand.NoGlyphs,
		"LEMONADE_NO_WAIT":   &c.Stand.NoWait,
		"AUTOPILOT_VERBOSE":  &c.Autopilot.Verbose,
	} {
		if v := os.Getenv(name); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			*dst = b
		}
	}
	if v := os.Getenv("LEMONADE_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("LEMONADE_SEED: %w", err)
		}
		c.Season.Seed = seed
	}
	if v := os.Getenv("LEMONADE_STARTING_CASH"); v != "" {
		cash, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("LEMONADE_STARTING_CASH: %w", err)
		}
		c.Season.StartingCash = cash
	}
	if v := os.Getenv("AUTOPILOT_CRON"); v != "" {
		c.Autopilot.Cron = v
	}
	if v := os.Getenv("AUTOPILOT_SEASONS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("AUTOPILOT_SEASONS: %w", err)
		}
		c.Autopilot.Seasons = n
	}
	return nil
}

// Default returns the stand as the original game sets it up.
func Default() *Config {
	c := &Config{}
	c.Stand.Title = "Lemonade Stand"
	c.Season.Weeks = 12
	c.Season.MaxWeeklySales = 99
	c.Season.StartingCash = 30.00
	c.Weather.MinTemperature = 69
	c.Weather.MaxTemperature = 100
	c.Market.Volatility = 1.50
	c.Market.Cups = Ingredient{Cost: 2.50, Count: 25, MinCost: 0.99}
	c.Market.Lemons = Ingredient{Cost: 4.00, Count: 8, MinCost: 2.00}
	c.Market.Sugar = Ingredient{Cost: 3.00, Count: 15, MinCost: 1.50}
	c.Autopilot.Seasons = 1
	return c
}

// Validate checks that the simulation can run with these values.
func (c *Config) Validate() error {
	if c.Season.Weeks <= 0 {
		return fmt.Errorf("season.weeks must be positive")
	}
	if c.Season.MaxWeeklySales <= 0 {
		return fmt.Errorf("season.max_weekly_sales must be positive")
	}
	if c.Season.StartingCash < 0 {
		return fmt.Errorf("season.starting_cash must not be negative")
	}
	if c.Weather.MinTemperature >= c.Weather.MaxTemperature {
		return fmt.Errorf("weather.min_temperature must be below weather.max_temperature")
	}
	if c.Market.Volatility < 0 {
		return fmt.Errorf("market.volatility must not be negative")
	}
	ingredients := []struct {
		name string
		Ingredient
	}{
		{"cups", c.Market.Cups}, {"lemons", c.Market.Lemons}, {"sugar", c.Market.Sugar},
	}
	for _, ing := range ingredients {
		name := ing.name
		if ing.Count <= 0 {
			return fmt.Errorf("market.%s.count must be positive", name)
		}
		if ing.MinCost <= 0 {
			return fmt.Errorf("market.%s.min_cost must be positive", name)
		}
		if ing.Cost < ing.MinCost {
			return fmt.Errorf("market.%s.cost must be at least min_cost", name)
		}
	}
	if c.Autopilot.Seasons < 0 {
		return fmt.Errorf("autopilot.seasons must not be negative")
	}
	return nil
}

// DisplayTitle trims the title, truncating long ones, and adds the
// separator shown before "Week #n".
func (c *Config) DisplayTitle() string {
	t := strings.TrimSpace(c.Stand.Title)
	switch {
	case t == "":
		return ""
	case len([]rune(t)) > MaxTitleLength:
		return string([]rune(t)[:MaxTitleLength]) + "... "
	default:
		return t + " "
	}
}

// MarketSettings returns the weather and pricing tunables.
func (c *Config) MarketSettings() collector.Market {
	return collector.Market{
		MinTemperature: c.Weather.MinTemperature,
		MaxTemperature: c.Weather.MaxTemperature,
		Volatility:     c.Market.Volatility,
		MaxWeeklySales: c.Season.MaxWeeklySales,
	}
}

// SeasonSettings returns the fixed setup of a season.
func (c *Config) SeasonSettings() scheduler.Season {
	return scheduler.Season{
		Weeks:        c.Season.Weeks,
		StartingCash: decimal.NewFromFloat(c.Season.StartingCash),
		Stocks: [3]model.IngredientStock{
			c.Market.Cups.stock(model.Cups),
			c.Market.Lemons.stock(model.Lemons),
			c.Market.Sugar.stock(model.Sugar),
		},
	}
}

func (i Ingredient) stock(ing model.Ingredient) model.IngredientStock {
	return model.IngredientStock{
		Ingredient:   ing,
		Cost:         decimal.NewFromFloat(i.Cost),
		CountPerUnit: i.Count,
		MinCost:      decimal.NewFromFloat(i.MinCost),
	}
}
