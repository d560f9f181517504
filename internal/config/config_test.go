package config

import (
	"os"
	"path/filepath"
	"testing"

	"LemonadeStand/internal/model"
)

func load(t *testing.T, path string) *Config {
	t.Helper()
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return cfg
}

func TestLoad_Defaults(t *testing.T) {
	cfg := load(t, filepath.Join(t.TempDir(), "missing.yaml"))
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
	if cfg.Season.Weeks != 12 || cfg.Season.MaxWeeklySales != 99 || cfg.Season.StartingCash != 30 {
		t.Errorf("unexpected season defaults %+v", cfg.Season)
	}
	if cfg.Weather.MinTemperature != 69 || cfg.Weather.MaxTemperature != 100 {
		t.Errorf("unexpected weather defaults %+v", cfg.Weather)
	}
	if cfg.Market.Lemons != (Ingredient{Cost: 4.00, Count: 8, MinCost: 2.00}) {
		t.Errorf("unexpected lemon defaults %+v", cfg.Market.Lemons)
	}

	season := cfg.SeasonSettings()
	if season.Weeks != 12 || season.Stocks[model.Sugar].CountPerUnit != 15 {
		t.Errorf("unexpected season settings %+v", season)
	}
	if got := model.ServingCost(season.Stocks); got.StringFixed(2) != "0.80" {
		t.Errorf("expected serving cost 0.80, got %s", got)
	}
	if m := cfg.MarketSettings(); m.Volatility != 1.50 || m.MaxWeeklySales != 99 {
		t.Errorf("unexpected market settings %+v", m)
	}
}

func TestLoad_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
stand:
  title: "Corner Stand"
  celsius: true
season:
  weeks: 6
market:
  cups: {cost: 3.00, count: 50, min_cost: 1.00}
autopilot:
  cron: "0 0 * * * *"
  seasons: 4
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := load(t, path)
	if cfg.Stand.Title != "Corner Stand" || !cfg.Stand.Celsius {
		t.Errorf("unexpected stand %+v", cfg.Stand)
	}
	if cfg.Season.Weeks != 6 || cfg.Season.StartingCash != 30 {
		t.Errorf("expected 6 weeks and default cash, got %+v", cfg.Season)
	}
	if cfg.Market.Cups.Count != 50 || cfg.Market.Sugar.Count != 15 {
		t.Errorf("unexpected market %+v", cfg.Market)
	}
	if cfg.Autopilot.Cron != "0 0 * * * *" || cfg.Autopilot.Seasons != 4 {
		t.Errorf("unexpected autopilot %+v", cfg.Autopilot)
	}
}

func TestLoad_KeepsExplicitZeroValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
stand:
  title: ""
season:
  starting_cash: 0
market:
  cups: {cost: 3.00}
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := load(t, path)
	if cfg.Stand.Title != "" || cfg.DisplayTitle() != "" {
		t.Errorf("expected a blank title, got %q", cfg.Stand.Title)
	}
	if cfg.Season.StartingCash != 0 {
		t.Errorf("expected no starting cash, got %v", cfg.Season.StartingCash)
	}
	if cfg.Market.Cups != (Ingredient{Cost: 3.00, Count: 25, MinCost: 0.99}) {
		t.Errorf("expected only the cup cost to change, got %+v", cfg.Market.Cups)
	}
	if cfg.Season.Weeks != 12 {
		t.Errorf("expected absent keys to keep defaults, got %d weeks", cfg.Season.Weeks)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected validation error: %v", err)
	}
}

func TestLoad_BlankTitleFromEnv(t *testing.T) {
	t.Setenv("LEMONADE_TITLE", "")
	cfg := load(t, filepath.Join(t.TempDir(), "missing.yaml"))
	if cfg.DisplayTitle() != "" {
		t.Fatalf("expected a blank title, got %q", cfg.Stand.Title)
	}
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("season: [unterminated"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("LEMONADE_TITLE", "Env Stand")
	t.Setenv("LEMONADE_SEED", "42")
	t.Setenv("LEMONADE_NO_WAIT", "true")
	t.Setenv("LEMONADE_STARTING_CASH", "50.25")
	t.Setenv("AUTOPILOT_SEASONS", "3")

	cfg := load(t, filepath.Join(t.TempDir(), "missing.yaml"))
	if cfg.Stand.Title != "Env Stand" || !cfg.Stand.NoWait {
		t.Errorf("unexpected stand %+v", cfg.Stand)
	}
	if cfg.Season.Seed != 42 || cfg.Season.StartingCash != 50.25 {
		t.Errorf("unexpected season %+v", cfg.Season)
	}
	if cfg.Autopilot.Seasons != 3 {
		t.Errorf("expected 3 seasons, got %d", cfg.Autopilot.Seasons)
	}
}

func TestLoad_BadEnv(t *testing.T) {
	for _, name := range []string{"LEMONADE_SEED", "LEMONADE_CELSIUS", "AUTOPILOT_SEASONS"} {
		t.Run(name, func(t *testing.T) {
			t.Setenv(name, "not-a-value")
			if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
				t.Fatalf("expected %s to be rejected", name)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"no weeks", func(c *Config) { c.Season.Weeks = -1 }},
		{"negative cash", func(c *Config) { c.Season.StartingCash = -5 }},
		{"inverted weather", func(c *Config) { c.Weather.MinTemperature = 100 }},
		{"negative volatility", func(c *Config) { c.Market.Volatility = -1 }},
		{"cost under floor", func(c *Config) { c.Market.Sugar.Cost = 1.00 }},
		{"empty box", func(c *Config) { c.Market.Cups.Count = -25 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := load(t, filepath.Join(t.TempDir(), "missing.yaml"))
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected a validation error")
			}
		})
	}
}

func TestValidate_ReportsFirstIngredient(t *testing.T) {
	for range 20 {
		cfg := load(t, filepath.Join(t.TempDir(), "missing.yaml"))
		cfg.Market.Cups.Count = 0
		cfg.Market.Lemons.Count = 0
		cfg.Market.Sugar.Count = 0
		err := cfg.Validate()
		if err == nil || err.Error() != "market.cups.count must be positive" {
			t.Fatalf("expected the cups error, got %v", err)
		}
	}
}

func TestDisplayTitle(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"", ""},
		{"   ", ""},
		{"  Corner Stand ", "Corner Stand "},
		{"123456789012345678901234567890", "123456789012345678901234567890 "},
		{"1234567890123456789012345678901", "123456789012345678901234567890... "},
	}
	for _, tt := range tests {
		c := &Config{}
		c.Stand.Title = tt.title
		if got := c.DisplayTitle(); got != tt.want {
			t.Errorf("DisplayTitle(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}
