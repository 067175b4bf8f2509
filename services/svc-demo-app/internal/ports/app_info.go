package ports

//counterfeiter:generate -o ../mocks/app_info_provider.go . AppInfoProvider

import (
	"context"

	"github.com/architeacher/k8s-simulator/services/svc-demo-app/internal/domain/model"
)

type AppInfoProvider interface {
	AppInfo(ctx context.Context) model.AppInfo
}
