package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"LemonadeStand/internal/collector"
	"LemonadeStand/internal/config"
	"LemonadeStand/internal/model"
	"LemonadeStand/internal/recorder"
	"LemonadeStand/internal/scheduler"
	"LemonadeStand/internal/strategy"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] lemonade autopilot starting...")

	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	path := flag.String("config", cfgPath, "path to the YAML config file")
	flag.Parse()

	cfg, err := config.Load(*path)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}
	if cfg.Season.Seed == 0 {
		cfg.Season.Seed = time.Now().UnixNano()
	}
	log.Printf("[INFO] base seed %d, %d season(s)", cfg.Season.Seed, cfg.Autopilot.Seasons)

	play := func(ctx context.Context, run int) (*model.SeasonSummary, error) {
		src := collector.NewRandSource(cfg.Season.Seed + int64(run))
		ws := scheduler.NewWeekScheduler(collector.NewCollector(src, cfg.MarketSettings()), cfg.SeasonSettings())
		rec := recorder.NewLogRecorder(ws.ID(), cfg.Autopilot.Verbose)
		defer rec.Close()
		return scheduler.RunSeason(ctx, ws, strategy.NewAutopilot(), rec)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runner := scheduler.NewRunner(ctx, play, cfg.Autopilot.Seasons)

	if cfg.Autopilot.Cron == "" {
		for range cfg.Autopilot.Seasons {
			runner.RunNow()
		}
		report(runner.Results())
		return
	}

	if err := runner.Register(cfg.Autopilot.Cron); err != nil {
		log.Fatalf("[FATAL] %v", err)
	}
	runner.Start()
	log.Printf("[INFO] playing seasons on schedule %q. Press Ctrl+C to stop.", cfg.Autopilot.Cron)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sigCh:
		log.Println("[INFO] shutdown signal received, stopping...")
	case <-runner.Done():
	}
	cancel()
	runner.Stop()
	report(runner.Results())
}

func report(results []*model.SeasonSummary) {
	if len(results) == 0 {
		log.Println("[WARN] no seasons completed")
		return
	}
	total := 0
	for _, s := range results {
		total += s.Score
	}
	log.Printf("[INFO] %d season(s) completed, average score %d%%", len(results), total/len(results))
}
