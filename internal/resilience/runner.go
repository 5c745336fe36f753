// Package resilience guards calls to an unreliable dependency with retry,
// circuit-breaker, and per-attempt timeout policies, composed outermost to
// innermost as Retry -> CircuitBreaker -> TimeLimiter. A timed-out attempt
// counts toward both the breaker's failure tally and the retry budget.
package resilience

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker/v2"
)

type Config struct {
	// Name identifies the guarded dependency in breaker state logs.
	Name string

	// CallTimeout bounds a single attempt.
	CallTimeout time.Duration

	// MaxRetries is the number of re-attempts after the first call.
	MaxRetries uint64
	// RetryInterval is the initial backoff between attempts; it grows
	// exponentially.
	RetryInterval time.Duration

	// FailureRatio trips the breaker once at least MinRequests calls have
	// been observed in the current window.
	FailureRatio float64
	MinRequests  uint32
	// OpenTimeout is the cooldown before an open breaker allows trial calls.
	OpenTimeout time.Duration
	// HalfOpenCalls is how many trial calls the half-open state admits.
	HalfOpenCalls uint32
}

// Runner applies the configured policies around an operation returning T.
// Safe for concurrent use; the breaker's counters are shared across callers.
type Runner[T any] struct {
	cfg     Config
	breaker *gobreaker.CircuitBreaker[T]
}

func NewRunner[T any](cfg Config) *Runner[T] {
	settings := gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.HalfOpenCalls,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(c gobreaker.Counts) bool {
			return c.Requests >= cfg.MinRequests &&
				float64(c.TotalFailures)/float64(c.Requests) >= cfg.FailureRatio
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().Str("dependency", name).
				Stringer("from", from).Stringer("to", to).
				Msg("circuit breaker state change")
		},
	}
	return &Runner[T]{cfg: cfg, breaker: gobreaker.NewCircuitBreaker[T](settings)}
}

// Do runs op under the full policy stack. An open breaker short-circuits the
// remaining retry budget: there is no point re-attempting until the cooldown
// elapses, and the caller gets the failure immediately.
func (r *Runner[T]) Do(ctx context.Context, op func(context.Context) (T, error)) (T, error) {
	eb := backoff.NewExponentialBackOff()
	if r.cfg.RetryInterval > 0 {
		eb.InitialInterval = r.cfg.RetryInterval
	}
	policy := backoff.WithContext(backoff.WithMaxRetries(eb, r.cfg.MaxRetries), ctx)

	return backoff.RetryWithData(func() (T, error) {
		v, err := r.breaker.Execute(func() (T, error) {
			return r.limited(ctx, op)
		})
		if err != nil {
			if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
				return v, backoff.Permanent(err)
			}
			return v, err
		}
		return v, nil
	}, policy)
}

// limited aborts the attempt once CallTimeout elapses, even if op is slow to
// notice its context. The abandoned goroutine's result is dropped.
func (r *Runner[T]) limited(ctx context.Context, op func(context.Context) (T, error)) (T, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, r.cfg.CallTimeout)
	defer cancel()

	type outcome struct {
		v   T
		err error
	}
	done := make(chan outcome, 1)
	go func() {
		v, err := op(attemptCtx)
		done <- outcome{v: v, err: err}
	}()

	select {
	case out := <-done:
		return out.v, out.err
	case <-attemptCtx.Done():
		var zero T
		return zero, fmt.Errorf("call timed out after %s: %w", r.cfg.CallTimeout, attemptCtx.Err())
	}
}
