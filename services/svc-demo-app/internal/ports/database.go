package ports

//counterfeiter:generate -o ../mocks/database_health_checker.go . DatabaseHealthChecker

import (
	"context"

	"github.com/architeacher/k8s-simulator/services/svc-demo-app/internal/domain/model"
)

// DatabaseHealthChecker reports connectivity to the backing database.
// Check returns model.ErrDatabaseNotConfigured when no DATABASE_URL is set.
type DatabaseHealthChecker interface {
	Check(ctx context.Context) (*model.DatabaseStatus, error)
}
