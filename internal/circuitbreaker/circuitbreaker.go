// Package circuitbreaker wraps sony/gobreaker with project defaults.
package circuitbreaker

import (
	"time"

	"github.com/sony/gobreaker/v2"
)

// Config is the breaker configuration, see gobreaker.Settings.
type Config = gobreaker.Settings

// DefaultConfig returns a named configuration that opens the circuit after 5
// consecutive failures and probes again after 30 seconds.
func DefaultConfig(name string) Config {
	return Config{
		Name:        name,
		MaxRequests: 1,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	}
}

// Breaker is a typed circuit breaker.
type Breaker[T any] struct {
	cb *gobreaker.CircuitBreaker[T]
}

// New creates a Breaker from the given configuration.
func New[T any](cfg Config) *Breaker[T] {
	return &Breaker[T]{
		cb: gobreaker.NewCircuitBreaker[T](cfg),
	}
}

// Execute runs fn under the breaker's protection.
func (b *Breaker[T]) Execute(fn func() (T, error)) (T, error) {
	return b.cb.Execute(fn)
}

// State returns the current breaker state.
func (b *Breaker[T]) State() gobreaker.State {
	return b.cb.State()
}

// IsOpen reports whether the circuit is currently open.
func (b *Breaker[T]) IsOpen() bool {
	return b.cb.State() == gobreaker.StateOpen
}
