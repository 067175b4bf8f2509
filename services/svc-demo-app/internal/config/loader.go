package config

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/architeacher/k8s-simulator/pkg/logger"
	"github.com/architeacher/k8s-simulator/services/svc-demo-app/internal/ports"
	"github.com/kelseyhightower/envconfig"
)

var (
	ErrSecretsStorageDisabled = errors.New("secret storage is not enabled")
	ErrInvalidSecretFormat    = errors.New("invalid secret format")
)

type Loader struct {
	store            *Store
	secretsRepo      ports.SecretsRepository
	logger           logger.Logger
	out              io.Writer
	configSignalChan chan os.Signal
	reloadErrors     chan error
	lastVersion      uint
}

func Init() (*ServiceConfig, error) {
	cfg := &ServiceConfig{}

	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("unable to parse service configuration: %w", err)
	}

	if len(ServiceVersion) != 0 {
		cfg.App.ServiceVersion = ServiceVersion
	}

	if len(CommitSHA) != 0 {
		cfg.App.CommitSHA = CommitSHA
	}

	if cfg.App.PodName == "" {
		cfg.App.PodName, _ = os.Hostname()
	}

	return cfg, nil
}

func NewLoader(store *Store, secretsRepo ports.SecretsRepository, log logger.Logger) *Loader {
	return &Loader{
		store:            store,
		secretsRepo:      secretsRepo,
		logger:           log,
		out:              os.Stdout,
		configSignalChan: make(chan os.Signal, 1),
		reloadErrors:     make(chan error, 1),
	}
}

// Load authenticates against Vault and overlays the secrets onto the current configuration.
func (l *Loader) Load(ctx context.Context) error {
	return l.load(ctx, false)
}

func (l *Loader) load(ctx context.Context, reloading bool) error {
	cfg := l.store.Load()
	if !cfg.SecretsStorage.Enabled {
		return ErrSecretsStorageDisabled
	}

	if err := l.authenticate(ctx, cfg.SecretsStorage); err != nil {
		return fmt.Errorf("failed to authenticate with Vault: %w", err)
	}

	data, version, err := l.readSecrets(ctx, cfg.SecretsStorage)
	if err != nil {
		return fmt.Errorf("failed to load secrets from Vault: %w", err)
	}

	if err := l.store.Update(func(next *ServiceConfig) error {
		applySecrets(next, data, reloading)

		return nil
	}); err != nil {
		return fmt.Errorf("failed to apply secrets to config: %w", err)
	}

	l.lastVersion = version

	return nil
}

// WatchConfigSignals reloads on SIGHUP or every poll interval, and dumps the redacted
// configuration on SIGUSR1. The returned channel reports reload outcomes.
func (l *Loader) WatchConfigSignals(ctx context.Context) <-chan error {
	signal.Notify(l.configSignalChan, syscall.SIGHUP, syscall.SIGUSR1)

	secrets := l.store.Load().SecretsStorage

	go func() {
		defer signal.Stop(l.configSignalChan)
		defer close(l.reloadErrors)

		var ticks <-chan time.Time

		if secrets.Enabled && secrets.PollInterval > 0 {
			ticker := time.NewTicker(secrets.PollInterval)
			defer ticker.Stop()

			ticks = ticker.C
		}

		for {
			select {
			case <-ctx.Done():
				return

			case <-ticks:
				l.reload(ctx)

			case sig := <-l.configSignalChan:
				switch sig {
				case syscall.SIGHUP:
					l.reload(ctx)

				case syscall.SIGUSR1:
					l.DumpConfig()
				}
			}
		}
	}()

	return l.reloadErrors
}

func (l *Loader) DumpConfig() {
	configJSON, err := json.MarshalIndent(l.store.Load().Redacted(), "", "  ")
	if err != nil {
		l.logger.Error().Err(err).Msg("failed to marshal config")

		return
	}

	_, _ = fmt.Fprintf(l.out, "\n=== Configuration Dump ===\n%s\n=== End Configuration ===\n\n", configJSON)
}

func (l *Loader) reload(ctx context.Context) {
	cfg := l.store.Load()
	if !cfg.SecretsStorage.Enabled {
		return
	}

	_, version, err := l.readSecrets(ctx, cfg.SecretsStorage)
	if err != nil {
		l.reportReloadStatus(err)

		return
	}

	if version == l.lastVersion {
		return
	}

	if err := l.load(ctx, true); err != nil {
		l.reportReloadStatus(err)

		return
	}

	l.logger.Info().Uint("version", version).Msg("secrets reloaded")
	l.reportReloadStatus(nil)
}

func (l *Loader) authenticate(ctx context.Context, storage SecretsStorage) error {
	switch strings.ToLower(storage.AuthMethod) {
	case "token":
		if storage.Token == "" {
			return errors.New("token is required for token auth method")
		}

		l.secretsRepo.SetToken(storage.Token)

		return nil

	case "approle":
		if storage.RoleID == "" || storage.SecretID == "" {
			return errors.New("role_id and secret_id are required for approle auth method")
		}

		resp, err := l.secretsRepo.WriteWithContext(ctx, "auth/approle/login", map[string]any{
			"role_id":   storage.RoleID,
			"secret_id": storage.SecretID,
		})
		if err != nil {
			return fmt.Errorf("failed to authenticate via approle: %w", err)
		}

		if resp == nil || resp.Auth == nil {
			return errors.New("no auth info returned from Vault")
		}

		l.secretsRepo.SetToken(resp.Auth.ClientToken)

		return nil

	default:
		return fmt.Errorf("unsupported auth method: %s", storage.AuthMethod)
	}
}

// readSecrets reads the KV v2 entry of the service and returns its data and version.
func (l *Loader) readSecrets(ctx context.Context, storage SecretsStorage) (map[string]any, uint, error) {
	path := fmt.Sprintf("apps/data/%s", storage.MountPath)

	ctx, cancel := context.WithTimeout(ctx, storage.Timeout)
	defer cancel()

	var (
		data    map[string]any
		version uint
		err     error
	)

	for attempt := uint(0); attempt <= storage.MaxRetries; attempt++ {
		secret, readErr := l.secretsRepo.GetSecrets(ctx, path)
		if readErr == nil {
			if secret == nil || secret.Data == nil {
				return nil, 0, nil
			}

			data, version, err = parseKV(secret.Data, path)

			return data, version, err
		}

		err = readErr

		if attempt == storage.MaxRetries {
			break
		}

		select {
		case <-ctx.Done():
			return nil, 0, fmt.Errorf("reading %s: %w", path, ctx.Err())
		case <-time.After(time.Duration(attempt+1) * storage.RetryDelay):
		}
	}

	return nil, 0, fmt.Errorf("failed to read from path %s after %d retries: %w", path, storage.MaxRetries, err)
}

func parseKV(raw map[string]any, path string) (map[string]any, uint, error) {
	data, ok := raw["data"].(map[string]any)
	if !ok {
		return nil, 0, fmt.Errorf("%w at %s: missing 'data' key", ErrInvalidSecretFormat, path)
	}

	metadata, _ := raw["metadata"].(map[string]any)

	version, err := secretVersion(metadata)
	if err != nil {
		return nil, 0, err
	}

	return data, version, nil
}

func secretVersion(metadata map[string]any) (uint, error) {
	v, ok := metadata["version"]
	if !ok {
		return 0, nil
	}

	switch v := v.(type) {
	case float64:
		return uint(v), nil
	case int:
		return uint(v), nil
	case json.Number:
		version, err := v.Int64()
		if err != nil {
			return 0, fmt.Errorf("failed to parse version: %w", err)
		}

		return uint(version), nil
	default:
		return 0, fmt.Errorf("unexpected version type: %T", v)
	}
}

// startupOnlySecrets feed the database pool and cache client, which are built once.
// Reloads leave them at their startup values.
var startupOnlySecrets = map[string]bool{
	"DATABASE_URL":   true,
	"CACHE_PASSWORD": true,
}

func applySecrets(cfg *ServiceConfig, data map[string]any, reloading bool) {
	for key, value := range data {
		str, ok := value.(string)
		if !ok || str == "" {
			continue
		}

		if reloading && startupOnlySecrets[key] {
			continue
		}

		switch key {
		case "SECRET_TOKEN":
			cfg.App.SecretToken = str
		case "DATABASE_URL":
			cfg.Database.URL = str
		case "CACHE_PASSWORD":
			cfg.Cache.Password = str
		}
	}
}

func (l *Loader) reportReloadStatus(err error) {
	select {
	case l.reloadErrors <- err:
	default:
	}
}

func redactDSN(dsn string) string {
	u, err := url.Parse(dsn)
	if err != nil || u.Host == "" {
		return redactedValue
	}

	return u.Redacted()
}
