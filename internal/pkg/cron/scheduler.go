package cron

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Job is a named function the scheduler fires at a fixed interval.
type Job struct {
	Name     string
	Interval time.Duration
	Fn       func(ctx context.Context) error
}

// Scheduler drives the background sweeps (absence materialization) on plain
// tickers, one goroutine per job. Jobs must be registered before Start.
type Scheduler struct {
	jobs   []Job
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	mu     sync.Mutex
}

func NewScheduler() *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		jobs:   make([]Job, 0),
		ctx:    ctx,
		cancel: cancel,
	}
}

// AddJob registers a job; it starts ticking once Start is called.
func (s *Scheduler) AddJob(name string, interval time.Duration, fn func(ctx context.Context) error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.jobs = append(s.jobs, Job{
		Name:     name,
		Interval: interval,
		Fn:       fn,
	})
	slog.Info("Scheduler: job registered", "name", name, "interval", interval)
}

// Start launches one goroutine per registered job. Each job also fires once
// immediately, so a restart never waits a full interval to catch up.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, job := range s.jobs {
		s.wg.Add(1)
		go s.tick(job)
	}

	slog.Info("Scheduler: started", "job_count", len(s.jobs))
}

// Stop cancels every job and waits for in-flight runs to finish.
func (s *Scheduler) Stop() {
	s.cancel()
	s.wg.Wait()
	slog.Info("Scheduler: stopped")
}

func (s *Scheduler) tick(job Job) {
	defer s.wg.Done()

	ticker := time.NewTicker(job.Interval)
	defer ticker.Stop()

	s.run(job)

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			s.run(job)
		}
	}
}

func (s *Scheduler) run(job Job) {
	start := time.Now()

	if err := job.Fn(s.ctx); err != nil {
		slog.Error("Scheduler: job failed", "name", job.Name, "error", err, "duration", time.Since(start))
		return
	}
	slog.Debug("Scheduler: job completed", "name", job.Name, "duration", time.Since(start))
}

// RunOnce fires every registered job a single time on the caller's context,
// bypassing the tickers. Tests use it to drive jobs deterministically.
func (s *Scheduler) RunOnce(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, job := range s.jobs {
		if err := job.Fn(ctx); err != nil {
			slog.Error("Scheduler: job failed", "name", job.Name, "error", err)
		}
	}
}
