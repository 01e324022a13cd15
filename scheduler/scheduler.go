// Package scheduler re-analyzes stored pages on a cron schedule so scores
// don't go stale.
package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/pagepulse/backend/store"
)

// AnalyzeFunc runs one analysis for a URL/keyword pair.
type AnalyzeFunc func(ctx context.Context, pageURL, keyword string, now time.Time) error

// Scheduler sweeps the store for analyses older than maxAge and re-runs
// them.
type Scheduler struct {
	cron    *cron.Cron
	store   *store.Store
	analyze AnalyzeFunc
	maxAge  time.Duration
	timeout time.Duration
}

// New builds a Scheduler. maxAge is the staleness threshold for a stored
// analysis.
func New(st *store.Store, analyze AnalyzeFunc, maxAge time.Duration) *Scheduler {
	return &Scheduler{
		cron:    cron.New(),
		store:   st,
		analyze: analyze,
		maxAge:  maxAge,
		timeout: 2 * time.Minute,
	}
}

// Start registers the sweep under the given cron spec and starts the
// scheduler.
func (s *Scheduler) Start(spec string) error {
	if _, err := s.cron.AddFunc(spec, s.Sweep); err != nil {
		return err
	}
	s.cron.Start()
	log.Printf("Re-analysis scheduled: %q", spec)
	return nil
}

// Stop stops the cron scheduler and waits for a running sweep to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

// Sweep re-analyzes every stale page, oldest first. Failures are logged
// and skipped; one unreachable site must not block the rest.
func (s *Scheduler) Sweep() {
	now := time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	stale, err := s.store.StaleURLs(ctx, s.maxAge, now)
	if err != nil {
		log.Printf("Stale sweep failed: %v", err)
		return
	}
	if len(stale) == 0 {
		return
	}

	log.Printf("Re-analyzing %d stale pages", len(stale))
	var failed int
	for _, a := range stale {
		if err := s.analyze(ctx, a.URL, a.Keyword, time.Now()); err != nil {
			log.Printf("Re-analysis of %s failed: %v", a.URL, err)
			failed++
		}
	}
	log.Printf("Sweep finished: %d re-analyzed, %d failed", len(stale)-failed, failed)
}
