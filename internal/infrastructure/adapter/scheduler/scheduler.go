// Package scheduler runs periodic maintenance jobs on a cron.
package scheduler

import (
	"context"
	"fmt"
	"sort"
	"sync"

	coreport "github.com/amirhossein-jamali/payment-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-api/internal/infrastructure/adapter/metrics"
	"github.com/robfig/cron/v3"
)

// Scheduler wraps robfig/cron with named jobs, panic recovery and overlap protection
type Scheduler struct {
	cron    *cron.Cron
	logger  coreport.Logger
	metrics *metrics.Metrics

	mu      sync.Mutex
	entries map[string]cron.EntryID
}

// New creates a stopped scheduler
func New(logger coreport.Logger, m *metrics.Metrics) *Scheduler {
	cl := cronLogger{logger: logger}
	return &Scheduler{
		cron: cron.New(
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		logger:  logger,
		metrics: m,
		entries: make(map[string]cron.EntryID),
	}
}

// Schedule registers job under name. spec accepts the standard five fields or descriptors such as "@every 30s".
func (s *Scheduler) Schedule(name, spec string, job func()) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.entries[name]; exists {
		return fmt.Errorf("job %q already scheduled", name)
	}

	id, err := s.cron.AddFunc(spec, func() {
		s.metrics.JobRan(name)
		job()
	})
	if err != nil {
		return fmt.Errorf("invalid schedule %q for job %q: %w", spec, name, err)
	}

	s.entries[name] = id
	s.logger.Info("Job scheduled", map[string]any{"job": name, "spec": spec})
	return nil
}

// Remove unschedules a job
func (s *Scheduler) Remove(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id, ok := s.entries[name]; ok {
		s.cron.Remove(id)
		delete(s.entries, name)
	}
}

// Jobs returns the scheduled job names in order
func (s *Scheduler) Jobs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	names := make([]string, 0, len(s.entries))
	for name := range s.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Start runs the scheduler in its own goroutine
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop prevents new runs and waits for running jobs until ctx is done
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

type cronLogger struct {
	logger coreport.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, toFields(keysAndValues))
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	fields := toFields(keysAndValues)
	fields["error"] = err.Error()
	l.logger.Error(msg, fields)
}

func toFields(keysAndValues []any) map[string]any {
	fields := make(map[string]any, len(keysAndValues)/2+1)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		fields[fmt.Sprint(keysAndValues[i])] = keysAndValues[i+1]
	}
	return fields
}
