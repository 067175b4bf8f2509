// Command loadgen sends steady GET traffic to the demo app so the HPA scales it.
//
// Usage:
//
//	loadgen --target http://k8s-demo-app:8000 --rate 200 --concurrency 20 --duration 2m
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/architeacher/k8s-simulator/pkg/logger"
	"github.com/architeacher/k8s-simulator/services/svc-demo-app/internal/loadgen"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		cfg       loadgen.Config
		logLevel  string
		logFormat string
	)

	cmd := &cobra.Command{
		Use:   "loadgen",
		Short: "Generate HTTP load against the demo app",
		Long: `loadgen issues concurrent GET requests against an ordinary endpoint of the demo app
(/api/info unless the target URL has a path) to raise CPU usage and trigger the HorizontalPodAutoscaler.

Examples:
    loadgen --target http://localhost:8000
    loadgen --target http://k8s-demo-app:8000/ready --rate 50 --duration 30s`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := logger.New(logLevel, logFormat)

			gen, err := loadgen.New(cfg, log)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			summary, err := gen.Run(ctx)
			summary.Log(log)

			return err
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&cfg.TargetURL, "target", "t", "http://localhost:8000", "Base URL or full endpoint URL")
	flags.Float64VarP(&cfg.RequestsPerSec, "rate", "r", 100, "Requests per second across all workers")
	flags.IntVarP(&cfg.Concurrency, "concurrency", "c", 10, "Number of concurrent workers")
	flags.DurationVarP(&cfg.Duration, "duration", "d", time.Minute, "How long to generate load")
	flags.DurationVar(&cfg.RequestTimeout, "timeout", 5*time.Second, "Per request timeout")
	flags.StringVar(&logLevel, "log-level", logger.LogLevelInfo, "Log level")
	flags.StringVar(&logFormat, "log-format", logger.ConsoleLoggingFormat, "Log format: json or console")

	return cmd
}
