package circuitbreaker

import "time"

// Config drives New. The zero value is a disabled breaker.
type Config struct {
	// Name identifies the breaker in logs.
	Name string

	// Enabled toggles the breaker; when false New returns nil.
	Enabled bool

	// MaxRequests caps the requests allowed through in the half-open
	// state. Zero means a single probe request.
	MaxRequests uint

	// Interval is how often the closed-state failure counts reset.
	// Zero keeps counts for the lifetime of the closed state.
	Interval time.Duration

	// Timeout is how long the breaker stays open before probing again.
	// Zero falls back to gobreaker's 60 second default.
	Timeout time.Duration

	// FailureThreshold is the number of consecutive failures that trips
	// the breaker open.
	FailureThreshold uint
}
