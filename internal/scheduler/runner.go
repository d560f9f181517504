package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"

	"LemonadeStand/internal/model"

	"github.com/robfig/cron/v3"
)

// SeasonFunc plays one complete season. run counts from 0.
type SeasonFunc func(ctx context.Context, run int) (*model.SeasonSummary, error)

// Runner plays seasons on a cron schedule until a run limit is reached.
type Runner struct {
	Cron  *cron.Cron
	Ctx   context.Context
	Play  SeasonFunc
	Limit int // 0 means unlimited

	mu      sync.Mutex
	runs    int
	results []*model.SeasonSummary
	done    chan struct{}
	once    sync.Once
}

// NewRunner creates a Runner. Overlapping ticks are skipped.
func NewRunner(ctx context.Context, play SeasonFunc, limit int) *Runner {
	return &Runner{
		Cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)),
		),
		Ctx:   ctx,
		Play:  play,
		Limit: limit,
		done:  make(chan struct{}),
	}
}

// Register schedules a season on every tick of spec.
func (r *Runner) Register(spec string) error {
	if _, err := r.Cron.AddFunc(spec, r.RunNow); err != nil {
		return fmt.Errorf("register season task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (r *Runner) Start() {
	r.Cron.Start()
	log.Println("[INFO] season runner started")
}

// Stop stops the cron scheduler and waits for a running season to finish.
func (r *Runner) Stop() {
	<-r.Cron.Stop().Done()
	log.Println("[INFO] season runner stopped")
}

// Done is closed once Limit seasons have been played.
func (r *Runner) Done() <-chan struct{} { return r.done }

// Results returns the summaries of every completed season.
func (r *Runner) Results() []*model.SeasonSummary {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*model.SeasonSummary, len(r.results))
	copy(out, r.results)
	return out
}

// RunNow plays one season immediately.
func (r *Runner) RunNow() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Limit > 0 && r.runs >= r.Limit {
		return
	}
	run := r.runs
	r.runs++

	summary, err := r.Play(r.Ctx, run)
	if err != nil {
		log.Printf("[ERROR] season run %d: %v", run, err)
	} else {
		r.results = append(r.results, summary)
	}

	if r.Limit > 0 && r.runs >= r.Limit {
		r.once.Do(func() { close(r.done) })
	}
}
