package repos

import (
	"context"
	"fmt"
	"time"

	"github.com/architeacher/k8s-simulator/pkg/circuitbreaker"
	"github.com/architeacher/k8s-simulator/pkg/logger"
	"github.com/architeacher/k8s-simulator/services/svc-demo-app/internal/config"
	"github.com/architeacher/k8s-simulator/services/svc-demo-app/internal/domain/model"
	"github.com/architeacher/k8s-simulator/services/svc-demo-app/internal/ports"
)

var _ ports.DatabaseHealthChecker = (*DatabaseRepository)(nil)

type (
	// PingOps is the part of pgxpool.Pool the connectivity check needs.
	PingOps interface {
		Ping(ctx context.Context) error
	}

	// DatabaseRepository checks database connectivity through a circuit breaker.
	DatabaseRepository struct {
		pool        PingOps
		target      string
		pingTimeout time.Duration
		breaker     *circuitbreaker.Breaker[time.Duration]
		logger      logger.Logger
	}
)

// NewDatabaseRepository accepts a nil pool, in which case every check reports
// model.ErrDatabaseNotConfigured.
func NewDatabaseRepository(pool PingOps, cfg config.Database, log logger.Logger) *DatabaseRepository {
	log = log.Component("database")

	breaker := circuitbreaker.New[time.Duration](
		cfg.CircuitBreaker.Breaker("database"),
		circuitbreaker.WithStateChange(func(name string, from, to circuitbreaker.State) {
			event := log.Warn()
			if to == circuitbreaker.StateClosed {
				event = log.Info()
			}

			event.Str("breaker", name).
				Str("from", string(from)).
				Str("to", string(to)).
				Msg("database circuit breaker state changed")
		}),
	)

	return &DatabaseRepository{
		pool:        pool,
		target:      model.DatabaseTarget(cfg.URL),
		pingTimeout: cfg.PingTimeout,
		breaker:     breaker,
		logger:      log,
	}
}

func (r *DatabaseRepository) Check(ctx context.Context) (*model.DatabaseStatus, error) {
	if r.pool == nil {
		return nil, model.ErrDatabaseNotConfigured
	}

	status := &model.DatabaseStatus{
		Target:    r.target,
		CheckedAt: time.Now().UTC(),
	}

	latency, err := circuitbreaker.Execute(r.breaker, func() (time.Duration, error) {
		return r.ping(ctx)
	})

	status.BreakerState = string(r.breaker.State())

	if err != nil {
		status.Error = err.Error()

		log := r.logger.WithContext(ctx)
		log.Debug().Err(err).Str("target", r.target).Msg("database ping failed")

		return status, fmt.Errorf("%w: %w", model.ErrDatabaseUnavailable, err)
	}

	status.Connected = true
	status.Latency = latency

	return status, nil
}

func (r *DatabaseRepository) ping(ctx context.Context) (time.Duration, error) {
	if r.pingTimeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, r.pingTimeout)
		defer cancel()
	}

	start := time.Now()

	if err := r.pool.Ping(ctx); err != nil {
		return 0, err
	}

	return time.Since(start), nil
}
