package log

import (
	"log/slog"
	"sync"
	"time"
)

// StepTimer records named step start/stop events and logs the elapsed time
// of each completed step.
type StepTimer struct {
	logger *slog.Logger
	now    func() time.Time

	mu     sync.Mutex
	starts map[string]time.Time
	totals map[string]time.Duration
}

// NewStepTimer creates a StepTimer writing to logger. A nil logger uses the default logger.
func NewStepTimer(logger *slog.Logger) *StepTimer {
	if logger == nil {
		logger = slog.Default()
	}
	return &StepTimer{
		logger: logger,
		now:    time.Now,
		starts: make(map[string]time.Time),
		totals: make(map[string]time.Duration),
	}
}

// LogStepTime marks the start of step, or its end when done is true.
// An end without a matching start is logged and otherwise ignored.
func (s *StepTimer) LogStepTime(step string, done bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if !done {
		s.starts[step] = now
		s.logger.Debug("Step started", "step", step)
		return
	}

	start, ok := s.starts[step]
	if !ok {
		s.logger.Warn("Step stopped without start", "step", step)
		return
	}
	delete(s.starts, step)

	elapsed := now.Sub(start)
	s.totals[step] += elapsed
	s.logger.Info("Step completed", "step", step, "elapsed", elapsed)
}

// Total returns the accumulated time spent in step across all completed runs.
func (s *StepTimer) Total(step string) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totals[step]
}
