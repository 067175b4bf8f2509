package ports

//counterfeiter:generate -o ../mocks/secrets_repository.go . SecretsRepository

import (
	"context"

	"github.com/hashicorp/vault/api"
)

// SecretsRepository is the subset of the Vault client the config loader needs.
type SecretsRepository interface {
	SetToken(v string)
	GetSecrets(ctx context.Context, path string) (*api.Secret, error)
	WriteWithContext(ctx context.Context, path string, data map[string]any) (*api.Secret, error)
}
