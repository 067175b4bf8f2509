package circuitbreaker

import (
	"errors"

	"github.com/sony/gobreaker/v2"
)

type (
	// Breaker guards calls to a flaky dependency such as the database.
	Breaker[T any] struct {
		cb *gobreaker.CircuitBreaker[T]
	}

	// StateChangeFunc observes transitions, e.g. to log them.
	StateChangeFunc func(name string, from, to State)

	// State mirrors gobreaker's state names.
	State string

	Option func(*gobreaker.Settings)
)

const (
	StateClosed   State = "closed"
	StateHalfOpen State = "half-open"
	StateOpen     State = "open"
)

// WithStateChange registers fn to be called on every transition.
func WithStateChange(fn StateChangeFunc) Option {
	return func(s *gobreaker.Settings) {
		s.OnStateChange = func(name string, from, to gobreaker.State) {
			fn(name, toState(from), toState(to))
		}
	}
}

// New returns nil when cfg is disabled. A nil Breaker runs calls directly.
func New[T any](cfg Config, opts ...Option) *Breaker[T] {
	if !cfg.Enabled {
		return nil
	}

	threshold := uint32(max(cfg.FailureThreshold, 1))

	settings := gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: uint32(cfg.MaxRequests),
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
	}

	for _, opt := range opts {
		opt(&settings)
	}

	return &Breaker[T]{cb: gobreaker.NewCircuitBreaker[T](settings)}
}

func (b *Breaker[T]) Name() string {
	if b == nil {
		return ""
	}

	return b.cb.Name()
}

// State reports StateClosed for a nil Breaker.
func (b *Breaker[T]) State() State {
	if b == nil {
		return StateClosed
	}

	return toState(b.cb.State())
}

// Execute runs fn through b, translating gobreaker rejections into ErrCircuitOpen
// and ErrTooManyRequests.
func Execute[T any](b *Breaker[T], fn func() (T, error)) (T, error) {
	if b == nil {
		return fn()
	}

	result, err := b.cb.Execute(fn)

	switch {
	case err == nil:
		return result, nil
	case errors.Is(err, gobreaker.ErrOpenState):
		var zero T

		return zero, ErrCircuitOpen
	case errors.Is(err, gobreaker.ErrTooManyRequests):
		var zero T

		return zero, ErrTooManyRequests
	default:
		return result, err
	}
}

func toState(s gobreaker.State) State {
	switch s {
	case gobreaker.StateOpen:
		return StateOpen
	case gobreaker.StateHalfOpen:
		return StateHalfOpen
	default:
		return StateClosed
	}
}
