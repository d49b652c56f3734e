package circuitbreaker

import (
	"errors"

	"github.com/sony/gobreaker/v2"
)

// CircuitBreaker is a typed wrapper around gobreaker that guards calls
// to flaky downstreams such as payment networks.
type CircuitBreaker[T any] struct {
	cb *gobreaker.CircuitBreaker[T]
}

// New builds a circuit breaker from cfg. A disabled configuration
// yields nil, and Execute treats a nil breaker as a pass-through.
func New[T any](cfg Config) *CircuitBreaker[T] {
	if !cfg.Enabled {
		return nil
	}

	settings := gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: uint32(cfg.MaxRequests),
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= uint32(cfg.FailureThreshold)
		},
	}

	return &CircuitBreaker[T]{cb: gobreaker.NewCircuitBreaker[T](settings)}
}

// Name returns the configured breaker name.
func (c *CircuitBreaker[T]) Name() string {
	return c.cb.Name()
}

// Execute runs fn through the breaker, translating gobreaker's state
// errors into this package's sentinels. A nil breaker runs fn directly.
func Execute[T any](cb *CircuitBreaker[T], fn func() (T, error)) (T, error) {
	if cb == nil {
		return fn()
	}

	result, err := cb.cb.Execute(fn)
	if err != nil {
		return result, translateError(err)
	}

	return result, nil
}

func translateError(err error) error {
	switch {
	case errors.Is(err, gobreaker.ErrOpenState):
		return ErrCircuitOpen
	case errors.Is(err, gobreaker.ErrTooManyRequests):
		return ErrTooManyRequests
	default:
		return err
	}
}
