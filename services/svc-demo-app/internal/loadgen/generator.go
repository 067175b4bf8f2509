// Package loadgen drives steady GET traffic at an ordinary endpoint so the
// HorizontalPodAutoscaler has CPU load to react to.
package loadgen

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/architeacher/k8s-simulator/pkg/logger"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

const DefaultPath = "/api/info"

var ErrInvalidConfig = errors.New("invalid load generator configuration")

type (
	Config struct {
		TargetURL      string
		RequestsPerSec float64
		Concurrency    int
		Duration       time.Duration
		RequestTimeout time.Duration
	}

	Summary struct {
		Total       uint64         `json:"total"`
		Failures    uint64         `json:"failures"`
		StatusCodes map[int]uint64 `json:"status_codes"`
		Errors      uint64         `json:"errors"`
		Elapsed     time.Duration  `json:"elapsed"`
	}

	Generator struct {
		cfg     Config
		target  string
		client  *http.Client
		limiter *rate.Limiter
		logger  logger.Logger

		mu      sync.Mutex
		summary Summary
	}

	Option func(*Generator)
)

// WithHTTPClient replaces the default client, whose timeout is Config.RequestTimeout.
func WithHTTPClient(client *http.Client) Option {
	return func(g *Generator) {
		g.client = client
	}
}

func New(cfg Config, log logger.Logger, opts ...Option) (*Generator, error) {
	target, err := cfg.validate()
	if err != nil {
		return nil, err
	}

	g := &Generator{
		cfg:     cfg,
		target:  target,
		client:  &http.Client{Timeout: cfg.RequestTimeout},
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSec), cfg.Concurrency),
		logger:  log.Component("loadgen"),
		summary: Summary{StatusCodes: make(map[int]uint64)},
	}

	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// Run sends requests until Duration elapses or ctx is cancelled. Requests cut short by
// the end of the run are not counted.
func (g *Generator) Run(ctx context.Context) (Summary, error) {
	runCtx, cancel := context.WithTimeout(ctx, g.cfg.Duration)
	defer cancel()

	g.logger.Info().
		Str("target", g.target).
		Float64("requests_per_second", g.cfg.RequestsPerSec).
		Int("concurrency", g.cfg.Concurrency).
		Dur("duration", g.cfg.Duration).
		Msg("starting load generation")

	start := time.Now()
	group, groupCtx := errgroup.WithContext(runCtx)

	for range g.cfg.Concurrency {
		group.Go(func() error {
			return g.worker(groupCtx)
		})
	}

	err := group.Wait()

	g.mu.Lock()
	defer g.mu.Unlock()

	summary := g.summary
	summary.Elapsed = time.Since(start)
	summary.StatusCodes = make(map[int]uint64, len(g.summary.StatusCodes))

	for code, count := range g.summary.StatusCodes {
		summary.StatusCodes[code] = count
	}

	return summary, err
}

func (g *Generator) worker(ctx context.Context) error {
	for {
		if err := g.limiter.Wait(ctx); err != nil {
			// Deadline or cancellation ends the run.
			return nil
		}

		status, err := g.send(ctx)
		if ctx.Err() != nil {
			return nil
		}

		g.record(status, err)
	}
}

func (g *Generator) send(ctx context.Context) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.target, nil)
	if err != nil {
		return 0, err
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return 0, err
	}

	defer resp.Body.Close()

	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode, nil
}

func (g *Generator) record(status int, err error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.summary.Total++

	if err != nil {
		g.summary.Errors++
		g.summary.Failures++

		return
	}

	g.summary.StatusCodes[status]++

	if status >= http.StatusBadRequest {
		g.summary.Failures++
	}
}

// Log writes the summary as one structured line.
func (s Summary) Log(log logger.Logger) {
	event := log.Info().
		Uint64("total", s.Total).
		Uint64("failures", s.Failures).
		Uint64("errors", s.Errors).
		Dur("elapsed", s.Elapsed)

	for code, count := range s.StatusCodes {
		event = event.Uint64(fmt.Sprintf("status_%d", code), count)
	}

	if s.Elapsed > 0 {
		event = event.Float64("achieved_rps", float64(s.Total)/s.Elapsed.Seconds())
	}

	event.Msg("load generation finished")
}

func (c Config) validate() (string, error) {
	switch {
	case c.RequestsPerSec <= 0:
		return "", fmt.Errorf("%w: rate must be positive", ErrInvalidConfig)
	case c.Concurrency <= 0:
		return "", fmt.Errorf("%w: concurrency must be positive", ErrInvalidConfig)
	case c.Duration <= 0:
		return "", fmt.Errorf("%w: duration must be positive", ErrInvalidConfig)
	}

	target, err := url.Parse(c.TargetURL)
	if err != nil || target.Host == "" || (target.Scheme != "http" && target.Scheme != "https") {
		return "", fmt.Errorf("%w: target %q must be an absolute http(s) URL", ErrInvalidConfig, c.TargetURL)
	}

	if target.Path == "" {
		target.Path = DefaultPath
	}

	return target.String(), nil
}
