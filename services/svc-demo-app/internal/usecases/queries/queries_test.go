package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/architeacher/k8s-simulator/pkg/decorator"
	"github.com/architeacher/k8s-simulator/pkg/logger"
	"github.com/architeacher/k8s-simulator/pkg/metrics/noop"
	"github.com/architeacher/k8s-simulator/services/svc-demo-app/internal/domain/model"
	"github.com/architeacher/k8s-simulator/services/svc-demo-app/internal/mocks"
	"github.com/architeacher/k8s-simulator/services/svc-demo-app/internal/usecases/queries"
	"github.com/stretchr/testify/require"
	otelNoop "go.opentelemetry.io/otel/trace/noop"
)

func TestProbeQueryHandlers(t *testing.T) {
	t.Parallel()

	log := logger.NewTestLogger()
	tp := otelNoop.NewTracerProvider()
	mc := noop.NewMetricsClient()
	ctx := context.Background()

	checker := &mocks.FakeHealthChecker{}
	checker.LivenessReturns(&model.LivenessReport{Status: model.HealthStatusDown}, nil)
	checker.ReadinessReturns(&model.ReadinessReport{Status: model.HealthStatusOK}, nil)
	checker.HealthReturns(&model.HealthReport{Status: model.HealthStatusDown}, nil)

	live, err := queries.NewFetchLivenessQueryHandler(checker, log, mc, tp).Execute(ctx, queries.FetchLivenessQuery{})
	require.NoError(t, err)
	require.False(t, live.IsHealthy())

	ready, err := queries.NewFetchReadinessQueryHandler(checker, log, mc, tp).Execute(ctx, queries.FetchReadinessQuery{})
	require.NoError(t, err)
	require.True(t, ready.IsReady())

	report, err := queries.NewFetchHealthReportQueryHandler(checker, log, mc, tp).Execute(ctx, queries.FetchHealthReportQuery{})
	require.NoError(t, err)
	require.Equal(t, model.HealthStatusDown, report.Status)

	require.Equal(t, 1, checker.LivenessCallCount())
	require.Equal(t, 1, checker.ReadinessCallCount())
	require.Equal(t, 1, checker.HealthCallCount())
}

func TestFetchAppInfoQueryHandler(t *testing.T) {
	t.Parallel()

	provider := &mocks.FakeAppInfoProvider{}
	provider.AppInfoReturns(model.AppInfo{AppName: "k8s-demo-app", Environment: "production", Status: model.AppStatusRunning})

	handler := queries.NewFetchAppInfoQueryHandler(provider, logger.NewTestLogger(), noop.NewMetricsClient(), otelNoop.NewTracerProvider())

	info, err := handler.Execute(context.Background(), queries.FetchAppInfoQuery{})
	require.NoError(t, err)
	require.Equal(t, "k8s-demo-app", info.AppName)
	require.Equal(t, "production", info.Environment)
}

func TestFetchDatabaseStatusQueryHandler(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name          string
		cache         decorator.CacheConfig
		setup         func(*mocks.FakeDatabaseHealthChecker)
		calls         int
		expectedErr   error
		expectedCheck int
	}{
		{
			name:  "caches successful checks",
			cache: decorator.CacheConfig{Enabled: true, TTL: time.Minute},
			setup: func(fake *mocks.FakeDatabaseHealthChecker) {
				fake.CheckReturns(&model.DatabaseStatus{Connected: true, Target: "postgres-service:5432/db"}, nil)
			},
			calls:         3,
			expectedCheck: 1,
		},
		{
			name:  "does not cache failures",
			cache: decorator.CacheConfig{Enabled: true, TTL: time.Minute},
			setup: func(fake *mocks.FakeDatabaseHealthChecker) {
				fake.CheckReturns(&model.DatabaseStatus{Connected: false}, errors.Join(model.ErrDatabaseUnavailable, errors.New("refused")))
			},
			calls:         2,
			expectedErr:   model.ErrDatabaseUnavailable,
			expectedCheck: 2,
		},
		{
			name:  "disabled cache always checks",
			cache: decorator.CacheConfig{Enabled: false},
			setup: func(fake *mocks.FakeDatabaseHealthChecker) {
				fake.CheckReturns(&model.DatabaseStatus{Connected: true}, nil)
			},
			calls:         2,
			expectedCheck: 2,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			fake := &mocks.FakeDatabaseHealthChecker{}
			tc.setup(fake)

			handler := queries.NewFetchDatabaseStatusQueryHandler(
				fake,
				tc.cache,
				logger.NewTestLogger(),
				noop.NewMetricsClient(),
				otelNoop.NewTracerProvider(),
			)

			for range tc.calls {
				status, err := handler.Execute(context.Background(), queries.FetchDatabaseStatusQuery{})
				require.NotNil(t, status)

				if tc.expectedErr != nil {
					require.ErrorIs(t, err, tc.expectedErr)
					require.False(t, status.Connected)

					continue
				}

				require.NoError(t, err)
				require.True(t, status.Connected)
			}

			require.Equal(t, tc.expectedCheck, fake.CheckCallCount())
		})
	}
}
