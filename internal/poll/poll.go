package poll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/giantswarm/portcheck/internal/sentinel"
	"k8s.io/apimachinery/pkg/util/wait"
)

// Sentinel errors returned by Until for invalid configuration.
const (
	// ErrIntervalNotPositive indicates a non-positive poll interval.
	ErrIntervalNotPositive = sentinel.Error("interval must be positive")

	// ErrTimeoutNotPositive indicates a non-positive timeout.
	ErrTimeoutNotPositive = sentinel.Error("timeout must be positive")
)

// Condition reports whether the awaited state has been reached. The attempt
// parameter is 1-based. A non-nil error aborts polling.
type Condition func(ctx context.Context, attempt int) (done bool, err error)

// Config configures Until.
type Config struct {
	Interval time.Duration // Poll interval
	Timeout  time.Duration // Overall timeout
	Name     string        // For logging (e.g., "listener 127.0.0.1:8080")
	Logger   *slog.Logger  // Optional logger (defaults to slog.Default())
}

// Until calls cond immediately and then every Interval until it returns
// true, returns an error, or Timeout elapses.
func Until(ctx context.Context, cfg Config, cond Condition) error {
	if cfg.Name == "" {
		return errors.New("poll: name must not be empty")
	}
	if cfg.Interval <= 0 {
		return fmt.Errorf("poll %s: %w", cfg.Name, ErrIntervalNotPositive)
	}
	if cfg.Timeout <= 0 {
		return fmt.Errorf("poll %s: %w", cfg.Name, ErrTimeoutNotPositive)
	}

	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}

	// PollUntilContextTimeout runs the condition sequentially, so attempt
	// needs no synchronization.
	attempt := 0
	if err := wait.PollUntilContextTimeout(ctx, cfg.Interval, cfg.Timeout, true,
		func(pollCtx context.Context) (bool, error) {
			attempt++
			done, err := cond(pollCtx, attempt)
			if err != nil {
				return false, err
			}
			if done {
				log.Debug("poll succeeded", "name", cfg.Name, "attempt", attempt)
			}
			return done, nil
		}); err != nil {
		return fmt.Errorf("poll %s after %d attempts: %w", cfg.Name, attempt, err)
	}
	return nil
}
