package runtime

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"syscall"
)

type ServiceCtx struct {
	deps            *dependencies
	dependencyOpts  []DependencyOption
	shutdownChannel chan os.Signal
	serverCtx       context.Context
	serverStopFunc  context.CancelFunc
	serverReady     chan struct{}
	publicAddr      net.Addr
}

func New(opts ...ServiceOption) *ServiceCtx {
	ctx := &ServiceCtx{
		shutdownChannel: make(chan os.Signal, 1),
	}

	for _, opt := range opts {
		opt(ctx)
	}

	return ctx
}

func (c *ServiceCtx) Run() {
	if err := c.build(); err != nil {
		log.Fatalf("failed to build service: %v", err)
	}

	if err := c.startService(); err != nil {
		log.Fatalf("failed to start service: %v", err)
	}

	c.shutdownHook()
	c.monitorConfigChanges()

	// Waits for one of the following shutdown conditions to happen.
	select {
	case <-c.serverCtx.Done():
	case <-c.shutdownChannel:
		defer close(c.shutdownChannel)
	}

	c.shutdown()
}

func (c *ServiceCtx) build() error {
	c.serverCtx, c.serverStopFunc = context.WithCancel(context.Background())

	var err error

	c.deps, err = initializeDependencies(c.serverCtx, c.dependencyOpts...)
	if err != nil {
		return fmt.Errorf("initializing dependencies: %w", err)
	}

	return nil
}

// startService binds every listener before returning so a failed bind aborts startup
// instead of leaving a half-running pod.
func (c *ServiceCtx) startService() error {
	publicListener, err := net.Listen("tcp", c.deps.infra.publicHttpServer.Addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", c.deps.infra.publicHttpServer.Addr, err)
	}

	c.publicAddr = publicListener.Addr()
	c.serveHTTP("public", c.deps.infra.publicHttpServer, publicListener)

	if server := c.deps.infra.adminHttpServer; server != nil {
		listener, err := net.Listen("tcp", server.Addr)
		if err != nil {
			return fmt.Errorf("listening on admin address %s: %w", server.Addr, err)
		}

		c.serveHTTP("admin", server, listener)
	}

	if err := c.startGRPCServer(); err != nil {
		return err
	}

	if c.serverReady != nil {
		close(c.serverReady)
	}

	return nil
}

func (c *ServiceCtx) serveHTTP(name string, server *http.Server, listener net.Listener) {
	c.deps.infra.logger.Info().
		Str("server", name).
		Str("address", listener.Addr().String()).
		Msg("starting the http server")

	go func() {
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			c.deps.infra.logger.Error().Err(err).Str("server", name).Msg("http server stopped unexpectedly")
			c.serverStopFunc()
		}
	}()
}

func (c *ServiceCtx) startGRPCServer() error {
	server := c.deps.infra.grpcServer
	if server == nil {
		return nil
	}

	cfg := c.deps.config.GRPCHealthServer
	addr := hostPort(cfg.Host, cfg.Port)

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listening on gRPC address %s: %w", addr, err)
	}

	c.deps.infra.logger.Info().
		Str("address", listener.Addr().String()).
		Msg("starting the gRPC health server")

	go func() {
		if err := server.Serve(listener); err != nil {
			c.deps.infra.logger.Error().Err(err).Msg("gRPC server stopped unexpectedly")
			c.serverStopFunc()
		}
	}()

	return nil
}

func (c *ServiceCtx) monitorConfigChanges() {
	if c.deps.configLoader == nil {
		return
	}

	reloadErrors := c.deps.configLoader.WatchConfigSignals(c.serverCtx)
	go func() {
		for err := range reloadErrors {
			if err != nil {
				c.deps.infra.logger.Error().Err(err).Msg("config reload failed")
			} else {
				c.deps.infra.logger.Info().Msg("config reloaded successfully")
			}
		}
	}()
}

func (c *ServiceCtx) shutdownHook() {
	signal.Notify(c.shutdownChannel, syscall.SIGINT, syscall.SIGTERM)
}

func (c *ServiceCtx) shutdown() {
	signal.Stop(c.shutdownChannel)

	c.deps.infra.logger.Info().Msg("shutting down service...")

	// Cancel context that underlying processes would start cleanup.
	c.serverStopFunc()

	shutdownCtx, cancel := context.WithTimeout(
		context.WithoutCancel(c.serverCtx),
		c.deps.config.PublicHTTPServer.ShutdownTimeout,
	)
	defer cancel()

	go func() {
		<-shutdownCtx.Done()

		if errors.Is(shutdownCtx.Err(), context.DeadlineExceeded) {
			c.deps.infra.logger.Error().Msg("graceful shutdown timed out.. forcing exit.")
			os.Exit(1)
		}
	}()

	c.cleanup(shutdownCtx)

	c.deps.infra.logger.Info().Msg("service shutdown complete")
}

// WaitForServer blocks until every listener is bound.
// The service must be created with WithWaitingForServer.
//
// Example:
//
//	srv := runtime.New(runtime.WithWaitingForServer())
//	go srv.Run()
//
//	srv.WaitForServer()
func (c *ServiceCtx) WaitForServer() {
	if c.serverReady != nil {
		<-c.serverReady
	}
}

// PublicAddr is the bound address of the public server, valid after WaitForServer.
func (c *ServiceCtx) PublicAddr() net.Addr {
	return c.publicAddr
}

func (c *ServiceCtx) cleanup(shutdownCtx context.Context) {
	c.deps.infra.logger.Info().Msg("cleaning up resources...")

	for _, cleanupFn := range slices.Backward(c.deps.cleanupFuncs) {
		if err := cleanupFn.fn(shutdownCtx); err != nil {
			c.deps.infra.logger.Error().
				Err(err).
				Str("resource", cleanupFn.resource).
				Msg("failed to shutdown the resource gracefully")
		}
	}

	c.deps.infra.logger.Info().Msg("cleanup completed")
}
