// ABOUTME: Cache refresher re-fetches upstream data in the background on a fixed interval
// ABOUTME: Keeps cached articles, projects and posts warm so visitors rarely wait on upstreams

package workers

import (
	"context"
	"sync"
	"time"

	"portfolio-api/core/domain"
	"portfolio-api/core/interfaces"
)

// Job is one refresh task, typically a service's Refresh method
type Job struct {
	Name string
	Run  func(ctx context.Context) domain.FetchStatus
}

// Config holds configuration for the refresher
type Config struct {
	// Interval between refresh rounds
	Interval time.Duration

	// Timeout bounds a single round; zero uses DefaultConfig's value
	Timeout time.Duration
}

// DefaultConfig returns the default refresher configuration
func DefaultConfig() Config {
	return Config{
		Interval: 50 * time.Minute,
		Timeout:  time.Minute,
	}
}

// Refresher runs its jobs once at start and then on every tick
type Refresher struct {
	jobs     []Job
	interval time.Duration
	timeout  time.Duration
	logger   interfaces.Logger

	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	mu      sync.Mutex
	running bool
}

// NewRefresher creates a refresher. A nil logger discards output.
func NewRefresher(jobs []Job, config Config, logger interfaces.Logger) *Refresher {
	if config.Timeout <= 0 {
		config.Timeout = DefaultConfig().Timeout
	}
	if logger == nil {
		logger = interfaces.NopLogger{}
	}
	return &Refresher{
		jobs:     jobs,
		interval: config.Interval,
		timeout:  config.Timeout,
		logger:   logger,
	}
}

// Start launches the background loop
func (r *Refresher) Start() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.running {
		return nil
	}
	if r.interval <= 0 {
		return ErrInvalidInterval
	}

	r.ctx, r.cancel = context.WithCancel(context.Background())
	r.wg.Add(1)
	go r.loop()

	r.running = true
	r.logger.Info("Cache refresher started", map[string]interface{}{
		"interval": r.interval.String(),
		"jobs":     len(r.jobs),
	})
	return nil
}

// Stop cancels any round in progress and waits for the loop to exit
func (r *Refresher) Stop() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.running {
		return ErrNotRunning
	}

	r.cancel()
	r.wg.Wait()

	r.running = false
	r.logger.Info("Cache refresher stopped", nil)
	return nil
}

// RunOnce runs every job sequentially and reports each outcome
func (r *Refresher) RunOnce(ctx context.Context) map[string]domain.FetchStatus {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	results := make(map[string]domain.FetchStatus, len(r.jobs))
	for _, job := range r.jobs {
		if ctx.Err() != nil {
			break
		}

		start := time.Now()
		status := job.Run(ctx)
		results[job.Name] = status

		fields := map[string]interface{}{
			"job":         job.Name,
			"status":      string(status),
			"duration_ms": time.Since(start).Milliseconds(),
		}
		if status == domain.StatusFailed {
			r.logger.Warn("Cache refresh failed", fields)
		} else {
			r.logger.Debug("Cache refreshed", fields)
		}
	}
	return results
}

func (r *Refresher) loop() {
	defer r.wg.Done()

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.RunOnce(r.ctx)
	for {
		select {
		case <-ticker.C:
			r.RunOnce(r.ctx)
		case <-r.ctx.Done():
			return
		}
	}
}

// Error definitions
var (
	ErrNotRunning      = &WorkerError{Message: "refresher is not running"}
	ErrInvalidInterval = &WorkerError{Message: "refresh interval must be positive"}
)

// WorkerError represents a worker-specific error
type WorkerError struct {
	Message string
}

func (e *WorkerError) Error() string {
	return e.Message
}
