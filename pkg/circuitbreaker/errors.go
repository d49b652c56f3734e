package circuitbreaker

import "errors"

var (
	// ErrCircuitOpen is returned while the breaker rejects all calls so
	// the downstream can recover.
	ErrCircuitOpen = errors.New("circuit breaker is open")

	// ErrTooManyRequests is returned in the half-open state once the
	// probe request budget is spent.
	ErrTooManyRequests = errors.New("too many requests in half-open state")
)
