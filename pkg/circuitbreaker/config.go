package circuitbreaker

import "time"

// Config describes a breaker. Zero MaxRequests lets a single probe through while half-open,
// zero Timeout falls back to gobreaker's 60s.
type Config struct {
	Name             string
	Enabled          bool
	MaxRequests      uint
	Interval         time.Duration
	Timeout          time.Duration
	FailureThreshold uint
}
