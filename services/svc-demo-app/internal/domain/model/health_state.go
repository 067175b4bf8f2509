package model

import "sync/atomic"

type (
	// HealthState holds the liveness and readiness flags observed by the kubelet.
	// One instance exists per process and is shared by reference. Each flag is
	// read and written atomically, so concurrent probes never see a torn value.
	HealthState struct {
		healthy atomic.Bool
		ready   atomic.Bool
	}

	// HealthSnapshot is a point-in-time copy of both flags.
	HealthSnapshot struct {
		Healthy bool `json:"healthy"`
		Ready   bool `json:"ready"`
	}
)

// NewHealthState returns a state that is both healthy and ready.
func NewHealthState() *HealthState {
	s := &HealthState{}
	s.healthy.Store(true)
	s.ready.Store(true)

	return s
}

// SimulateCrash marks the process unhealthy. Readiness is left untouched.
func (s *HealthState) SimulateCrash() {
	s.healthy.Store(false)
}

// SimulateNotReady marks the process not ready. Liveness is left untouched.
func (s *HealthState) SimulateNotReady() {
	s.ready.Store(false)
}

// Reset marks the process healthy and ready.
func (s *HealthState) Reset() {
	s.healthy.Store(true)
	s.ready.Store(true)
}

// IsHealthy reports the liveness flag.
func (s *HealthState) IsHealthy() bool {
	return s.healthy.Load()
}

// IsReady reports the readiness flag.
func (s *HealthState) IsReady() bool {
	return s.ready.Load()
}

// Snapshot copies both flags for reporting.
func (s *HealthState) Snapshot() HealthSnapshot {
	return HealthSnapshot{
		Healthy: s.healthy.Load(),
		Ready:   s.ready.Load(),
	}
}
