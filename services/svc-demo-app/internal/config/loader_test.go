package config

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/architeacher/k8s-simulator/pkg/logger"
	"github.com/architeacher/k8s-simulator/services/svc-demo-app/internal/mocks"
	"github.com/hashicorp/vault/api"
	"github.com/stretchr/testify/suite"
)

type LoaderTestSuite struct {
	suite.Suite

	secretsRepo *mocks.FakeSecretsRepository
	store       *Store
	loader      *Loader
}

func TestLoaderTestSuite(t *testing.T) {
	t.Parallel()

	suite.Run(t, new(LoaderTestSuite))
}

func (s *LoaderTestSuite) SetupTest() {
	s.secretsRepo = &mocks.FakeSecretsRepository{}
	s.store = NewStore(&ServiceConfig{
		App: App{Name: "k8s-demo-app", SecretToken: NoSecretConfigured},
		SecretsStorage: SecretsStorage{
			Enabled:    true,
			AuthMethod: "token",
			Token:      "hvs.test",
			MountPath:  "k8s-demo-app",
			Timeout:    time.Second,
			MaxRetries: 0,
			RetryDelay: time.Millisecond,
		},
	})
	s.loader = NewLoader(s.store, s.secretsRepo, logger.NewTestLogger())
}

func kvSecret(version any, data map[string]any) *api.Secret {
	return &api.Secret{
		Data: map[string]any{
			"data":     data,
			"metadata": map[string]any{"version": version},
		},
	}
}

func (s *LoaderTestSuite) TestLoad_TokenAuthAppliesSecrets() {
	s.secretsRepo.GetSecretsReturns(kvSecret(json.Number("3"), map[string]any{
		"SECRET_TOKEN": "from-vault",
		"DATABASE_URL": "postgresql://u:p@postgres-service:5432/k8s_demo_db",
		"UNRELATED":    "ignored",
		"EMPTY":        "",
	}), nil)

	s.Require().NoError(s.loader.Load(context.Background()))

	s.Require().Equal(1, s.secretsRepo.SetTokenCallCount())
	s.Require().Equal("hvs.test", s.secretsRepo.SetTokenArgsForCall(0))

	_, path := s.secretsRepo.GetSecretsArgsForCall(0)
	s.Require().Equal("apps/data/k8s-demo-app", path)

	cfg := s.store.Load()
	s.Require().Equal("from-vault", cfg.App.SecretToken)
	s.Require().True(cfg.App.SecretConfigured())
	s.Require().Equal("postgresql://u:p@postgres-service:5432/k8s_demo_db", cfg.Database.URL)
	s.Require().Equal(uint(3), s.loader.lastVersion)
}

func (s *LoaderTestSuite) TestLoad_AppRole() {
	s.store = NewStore(&ServiceConfig{
		SecretsStorage: SecretsStorage{
			Enabled:    true,
			AuthMethod: "approle",
			RoleID:     "role",
			SecretID:   "secret",
			MountPath:  "k8s-demo-app",
			Timeout:    time.Second,
		},
	})
	s.loader = NewLoader(s.store, s.secretsRepo, logger.NewTestLogger())

	s.secretsRepo.WriteWithContextReturns(&api.Secret{Auth: &api.SecretAuth{ClientToken: "client-token"}}, nil)
	s.secretsRepo.GetSecretsReturns(kvSecret(float64(1), map[string]any{"SECRET_TOKEN": "x"}), nil)

	s.Require().NoError(s.loader.Load(context.Background()))

	_, path, data := s.secretsRepo.WriteWithContextArgsForCall(0)
	s.Require().Equal("auth/approle/login", path)
	s.Require().Equal("role", data["role_id"])
	s.Require().Equal("client-token", s.secretsRepo.SetTokenArgsForCall(0))
}

func (s *LoaderTestSuite) TestLoad_Errors() {
	cases := []struct {
		name    string
		mutate  func(cfg *ServiceConfig)
		setup   func(repo *mocks.FakeSecretsRepository)
		wantErr error
		errText string
	}{
		{
			name:    "disabled storage",
			mutate:  func(cfg *ServiceConfig) { cfg.SecretsStorage.Enabled = false },
			wantErr: ErrSecretsStorageDisabled,
		},
		{
			name:    "missing token",
			mutate:  func(cfg *ServiceConfig) { cfg.SecretsStorage.Token = "" },
			errText: "token is required",
		},
		{
			name:    "unsupported auth method",
			mutate:  func(cfg *ServiceConfig) { cfg.SecretsStorage.AuthMethod = "kubernetes" },
			errText: "unsupported auth method",
		},
		{
			name: "read failure",
			setup: func(repo *mocks.FakeSecretsRepository) {
				repo.GetSecretsReturns(nil, errors.New("connection refused"))
			},
			errText: "connection refused",
		},
		{
			name: "malformed payload",
			setup: func(repo *mocks.FakeSecretsRepository) {
				repo.GetSecretsReturns(&api.Secret{Data: map[string]any{"data": "not-a-map"}}, nil)
			},
			wantErr: ErrInvalidSecretFormat,
		},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.SetupTest()

			if tc.mutate != nil {
				s.Require().NoError(s.store.Update(func(cfg *ServiceConfig) error {
					tc.mutate(cfg)

					return nil
				}))
			}

			if tc.setup != nil {
				tc.setup(s.secretsRepo)
			}

			err := s.loader.Load(context.Background())
			s.Require().Error(err)

			if tc.wantErr != nil {
				s.Require().ErrorIs(err, tc.wantErr)
			}

			if tc.errText != "" {
				s.Require().Contains(err.Error(), tc.errText)
			}

			s.Require().Equal(NoSecretConfigured, s.store.Load().App.SecretToken)
		})
	}
}

func (s *LoaderTestSuite) TestReload_SkipsSameVersion() {
	s.secretsRepo.GetSecretsReturns(kvSecret(json.Number("2"), map[string]any{"SECRET_TOKEN": "v2"}), nil)
	s.Require().NoError(s.loader.Load(context.Background()))

	s.loader.reload(context.Background())
	s.Require().Equal(1, s.secretsRepo.SetTokenCallCount())

	s.secretsRepo.GetSecretsReturns(kvSecret(json.Number("3"), map[string]any{"SECRET_TOKEN": "v3"}), nil)
	s.loader.reload(context.Background())

	s.Require().Equal("v3", s.store.Load().App.SecretToken)
	s.Require().NoError(<-s.loader.reloadErrors)
}

func (s *LoaderTestSuite) TestReload_KeepsStartupOnlySecrets() {
	s.secretsRepo.GetSecretsReturns(kvSecret(json.Number("1"), map[string]any{
		"SECRET_TOKEN":   "v1",
		"DATABASE_URL":   "postgresql://u:p@postgres-a:5432/k8s_demo_db",
		"CACHE_PASSWORD": "cache-v1",
	}), nil)
	s.Require().NoError(s.loader.Load(context.Background()))

	s.secretsRepo.GetSecretsReturns(kvSecret(json.Number("2"), map[string]any{
		"SECRET_TOKEN":   "v2",
		"DATABASE_URL":   "postgresql://u:p@postgres-b:5432/k8s_demo_db",
		"CACHE_PASSWORD": "cache-v2",
	}), nil)
	s.loader.reload(context.Background())
	s.Require().NoError(<-s.loader.reloadErrors)

	cfg := s.store.Load()
	s.Require().Equal("v2", cfg.App.SecretToken)
	s.Require().Equal("postgresql://u:p@postgres-a:5432/k8s_demo_db", cfg.Database.URL)
	s.Require().Equal("cache-v1", cfg.Cache.Password)
	s.Require().Equal(uint(2), s.loader.lastVersion)
}

func (s *LoaderTestSuite) TestDumpConfig_Redacts() {
	var buf bytes.Buffer

	s.loader.out = &buf
	s.Require().NoError(s.store.Update(func(cfg *ServiceConfig) error {
		cfg.App.SecretToken = "do-not-print"

		return nil
	}))

	s.loader.DumpConfig()

	s.Require().Contains(buf.String(), "=== Configuration Dump ===")
	s.Require().Contains(buf.String(), redactedValue)
	s.Require().NotContains(buf.String(), "do-not-print")
	s.Require().NotContains(buf.String(), "hvs.test")
}
