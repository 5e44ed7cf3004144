package scheduler

import (
	"context"
	"log"
	"sync"
	"sync/atomic"
	"time"
)

// Task is one run of a periodic job. A returned error is logged and kept as
// the last error; it never stops the schedule.
type Task func(ctx context.Context) error

// Scheduler runs a named task at a fixed interval until stopped
type Scheduler struct {
	name     string
	interval time.Duration
	task     Task

	wg      sync.WaitGroup
	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc

	runs    atomic.Int64
	lastErr atomic.Value // errorHolder
}

type errorHolder struct{ err error }

// New creates a Scheduler; name is used only in log lines
func New(name string, interval time.Duration, task Task) *Scheduler {
	return &Scheduler{
		name:     name,
		interval: interval,
		task:     task,
	}
}

// Start begins executing the task at the configured interval
func (s *Scheduler) Start(ctx context.Context, firstRunImmediately bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return
	}

	ctx, s.cancel = context.WithCancel(ctx)
	s.running = true

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		if firstRunImmediately {
			s.run(ctx)
		}

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.run(ctx)
			case <-ctx.Done():
				return
			}
		}
	}()
}

func (s *Scheduler) run(ctx context.Context) {
	// a tick and a cancellation can be ready together; cancellation wins
	if ctx.Err() != nil {
		return
	}

	err := s.task(ctx)
	s.runs.Add(1)
	s.lastErr.Store(errorHolder{err: err})

	if err != nil && ctx.Err() == nil {
		log.Printf("Scheduler[%s]: task failed: %v", s.name, err)
	}
}

// Stop cancels the task context and waits for the loop to exit. No task run
// starts after Stop returns.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	s.running = false
}

// IsRunning returns true if the task loop is active
func (s *Scheduler) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Runs returns how many times the task has completed
func (s *Scheduler) Runs() int64 {
	return s.runs.Load()
}

// LastError returns the error of the most recent run, nil if it succeeded
func (s *Scheduler) LastError() error {
	holder, _ := s.lastErr.Load().(errorHolder)
	return holder.err
}
