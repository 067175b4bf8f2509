package commands_test

import (
	"context"
	"testing"

	"github.com/architeacher/k8s-simulator/pkg/logger"
	"github.com/architeacher/k8s-simulator/pkg/metrics/noop"
	"github.com/architeacher/k8s-simulator/services/svc-demo-app/internal/domain/model"
	"github.com/architeacher/k8s-simulator/services/svc-demo-app/internal/mocks"
	"github.com/architeacher/k8s-simulator/services/svc-demo-app/internal/usecases/commands"
	"github.com/stretchr/testify/require"
	otelNoop "go.opentelemetry.io/otel/trace/noop"
)

func TestHealthCommandHandlers(t *testing.T) {
	t.Parallel()

	log := logger.NewTestLogger()
	tp := otelNoop.NewTracerProvider()
	mc := noop.NewMetricsClient()

	cases := []struct {
		name      string
		setup     func(*mocks.FakeHealthSimulator)
		run       func(context.Context, *mocks.FakeHealthSimulator) (model.HealthSnapshot, error)
		callCount func(*mocks.FakeHealthSimulator) int
		expected  model.HealthSnapshot
	}{
		{
			name: "simulate crash",
			setup: func(fake *mocks.FakeHealthSimulator) {
				fake.SimulateCrashReturns(model.HealthSnapshot{Healthy: false, Ready: true})
			},
			run: func(ctx context.Context, fake *mocks.FakeHealthSimulator) (model.HealthSnapshot, error) {
				return commands.NewSimulateCrashCommandHandler(fake, log, mc, tp).
					Handle(ctx, commands.SimulateCrashCommand{})
			},
			callCount: (*mocks.FakeHealthSimulator).SimulateCrashCallCount,
			expected:  model.HealthSnapshot{Healthy: false, Ready: true},
		},
		{
			name: "simulate not ready",
			setup: func(fake *mocks.FakeHealthSimulator) {
				fake.SimulateNotReadyReturns(model.HealthSnapshot{Healthy: true, Ready: false})
			},
			run: func(ctx context.Context, fake *mocks.FakeHealthSimulator) (model.HealthSnapshot, error) {
				return commands.NewSimulateNotReadyCommandHandler(fake, log, mc, tp).
					Handle(ctx, commands.SimulateNotReadyCommand{})
			},
			callCount: (*mocks.FakeHealthSimulator).SimulateNotReadyCallCount,
			expected:  model.HealthSnapshot{Healthy: true, Ready: false},
		},
		{
			name: "reset",
			setup: func(fake *mocks.FakeHealthSimulator) {
				fake.ResetReturns(model.HealthSnapshot{Healthy: true, Ready: true})
			},
			run: func(ctx context.Context, fake *mocks.FakeHealthSimulator) (model.HealthSnapshot, error) {
				return commands.NewResetHealthCommandHandler(fake, log, mc, tp).
					Handle(ctx, commands.ResetHealthCommand{})
			},
			callCount: (*mocks.FakeHealthSimulator).ResetCallCount,
			expected:  model.HealthSnapshot{Healthy: true, Ready: true},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			fake := &mocks.FakeHealthSimulator{}
			tc.setup(fake)

			snapshot, err := tc.run(context.Background(), fake)
			require.NoError(t, err)
			require.Equal(t, tc.expected, snapshot)
			require.Equal(t, 1, tc.callCount(fake))
		})
	}
}
