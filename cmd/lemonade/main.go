package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"LemonadeStand/internal/collector"
	"LemonadeStand/internal/config"
	"LemonadeStand/internal/console"
	"LemonadeStand/internal/model"
	"LemonadeStand/internal/scheduler"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}

	var (
		path     string
		title    string
		celsius  bool
		noGlyphs bool
		noWait   bool
		seed     int64
	)
	flag.StringVar(&path, "config", cfgPath, "path to the YAML config file")
	flag.StringVar(&title, "title", "", "alternate title for the stand (up to 30 characters)")
	flag.BoolVar(&celsius, "celsius", false, "display temperatures in Celsius")
	flag.BoolVar(&noGlyphs, "noglyphs", false, "do not display the weather glyphs")
	flag.BoolVar(&noWait, "nowait", false, "skip the \"now serving\" wait loop")
	flag.Int64Var(&seed, "seed", 0, "random seed for a reproducible season")
	flag.Parse()

	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if title != "" {
		cfg.Stand.Title = title
	}
	cfg.Stand.Celsius = cfg.Stand.Celsius || celsius
	cfg.Stand.NoGlyphs = cfg.Stand.NoGlyphs || noGlyphs
	cfg.Stand.NoWait = cfg.Stand.NoWait || noWait
	if seed != 0 {
		cfg.Season.Seed = seed
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}
	if cfg.Season.Seed == 0 {
		cfg.Season.Seed = time.Now().UnixNano()
	}

	col := collector.NewCollector(collector.NewRandSource(cfg.Season.Seed), cfg.MarketSettings())
	ws := scheduler.NewWeekScheduler(col, cfg.SeasonSettings())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	prog := tea.NewProgram(console.NewScreen(), tea.WithAltScreen(), tea.WithContext(ctx))
	pace := collector.NewRandSource(cfg.Season.Seed ^ 0x5eed)
	con := console.NewConsole(ctx, prog.Send, console.NewMoney(console.SystemLocale()), pace)
	con.Title = cfg.DisplayTitle()
	con.Celsius = cfg.Stand.Celsius
	con.Glyphs = !cfg.Stand.NoGlyphs
	con.Wait = !cfg.Stand.NoWait
	con.MaxWeeklySales = cfg.Season.MaxWeeklySales

	type result struct {
		summary *model.SeasonSummary
		err     error
	}
	done := make(chan result, 1)
	go func() {
		summary, err := scheduler.RunSeason(ctx, ws, con, con)
		done <- result{summary, err}
		prog.Quit()
	}()

	if _, err := prog.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		log.Printf("[ERROR] terminal: %v", err)
	}
	// Quitting the screen ends the season too.
	cancel()
	res := <-done
	if res.err != nil {
		if errors.Is(res.err, context.Canceled) {
			log.Printf("[INFO] season %s (seed %d) stopped", ws.ID(), cfg.Season.Seed)
			return
		}
		log.Fatalf("[FATAL] season %s (seed %d): %v", ws.ID(), cfg.Season.Seed, res.err)
	}
	fmt.Print(con.FormatSeason(res.summary))
}
