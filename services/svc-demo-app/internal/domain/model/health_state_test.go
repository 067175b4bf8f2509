package model_test

import (
	"sync"
	"testing"

	"github.com/architeacher/k8s-simulator/services/svc-demo-app/internal/domain/model"
	"github.com/stretchr/testify/require"
)

func TestNewHealthState(t *testing.T) {
	t.Parallel()

	state := model.NewHealthState()

	require.True(t, state.IsHealthy())
	require.True(t, state.IsReady())
	require.Equal(t, model.HealthSnapshot{Healthy: true, Ready: true}, state.Snapshot())
}

func TestHealthState_Transitions(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		apply    func(*model.HealthState)
		expected model.HealthSnapshot
	}{
		{
			name:     "crash only affects liveness",
			apply:    (*model.HealthState).SimulateCrash,
			expected: model.HealthSnapshot{Healthy: false, Ready: true},
		},
		{
			name: "repeated crash is idempotent",
			apply: func(s *model.HealthState) {
				for range 5 {
					s.SimulateCrash()
				}
			},
			expected: model.HealthSnapshot{Healthy: false, Ready: true},
		},
		{
			name:     "not ready only affects readiness",
			apply:    (*model.HealthState).SimulateNotReady,
			expected: model.HealthSnapshot{Healthy: true, Ready: false},
		},
		{
			name: "repeated not ready is idempotent",
			apply: func(s *model.HealthState) {
				s.SimulateNotReady()
				s.SimulateNotReady()
			},
			expected: model.HealthSnapshot{Healthy: true, Ready: false},
		},
		{
			name: "crash and not ready combine",
			apply: func(s *model.HealthState) {
				s.SimulateNotReady()
				s.SimulateCrash()
			},
			expected: model.HealthSnapshot{Healthy: false, Ready: false},
		},
		{
			name: "reset restores both",
			apply: func(s *model.HealthState) {
				s.SimulateCrash()
				s.SimulateNotReady()
				s.SimulateCrash()
				s.Reset()
			},
			expected: model.HealthSnapshot{Healthy: true, Ready: true},
		},
		{
			name:     "reset on a fresh state is a no-op",
			apply:    (*model.HealthState).Reset,
			expected: model.HealthSnapshot{Healthy: true, Ready: true},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			state := model.NewHealthState()
			tc.apply(state)

			require.Equal(t, tc.expected, state.Snapshot())
			require.Equal(t, tc.expected.Healthy, state.IsHealthy())
			require.Equal(t, tc.expected.Ready, state.IsReady())
		})
	}
}

// Writers serialise on a test-side lock that records the last applied operation,
// which defines the linearization. Readers run unsynchronised alongside them.
func TestHealthState_ConcurrentCrashAndReset(t *testing.T) {
	t.Parallel()

	const workers = 64

	state := model.NewHealthState()

	var (
		wg          sync.WaitGroup
		orderMu     sync.Mutex
		lastHealthy = true
	)

	stop := make(chan struct{})

	for range 4 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for {
				select {
				case <-stop:
					return
				default:
					_ = state.Snapshot()
					_ = state.IsHealthy()
				}
			}
		}()
	}

	var writers sync.WaitGroup

	for i := range workers {
		writers.Add(1)

		go func(i int) {
			defer writers.Done()

			for range 100 {
				orderMu.Lock()

				if i%2 == 0 {
					state.SimulateCrash()
					lastHealthy = false
				} else {
					state.Reset()
					lastHealthy = true
				}

				orderMu.Unlock()
			}
		}(i)
	}

	writers.Wait()
	close(stop)
	wg.Wait()

	require.Equal(t, lastHealthy, state.IsHealthy())
	require.True(t, state.IsReady())
}

func TestHealthState_UnorderedWritersLeaveValidState(t *testing.T) {
	t.Parallel()

	state := model.NewHealthState()

	var wg sync.WaitGroup

	for i := range 200 {
		wg.Add(1)

		go func(i int) {
			defer wg.Done()

			switch i % 3 {
			case 0:
				state.SimulateCrash()
			case 1:
				state.SimulateNotReady()
			default:
				state.Reset()
			}
		}(i)
	}

	wg.Wait()

	state.SimulateCrash()
	require.Equal(t, model.HealthSnapshot{Healthy: false, Ready: state.IsReady()}, state.Snapshot())

	state.Reset()
	require.Equal(t, model.HealthSnapshot{Healthy: true, Ready: true}, state.Snapshot())
}
