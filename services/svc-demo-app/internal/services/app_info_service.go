package services

import (
	"context"

	"github.com/architeacher/k8s-simulator/services/svc-demo-app/internal/config"
	"github.com/architeacher/k8s-simulator/services/svc-demo-app/internal/domain/model"
	"github.com/architeacher/k8s-simulator/services/svc-demo-app/internal/ports"
)

// AppInfoService reads from the config store so rotated secrets show up without a restart.
type AppInfoService struct {
	store *config.Store
}

var _ ports.AppInfoProvider = (*AppInfoService)(nil)

func NewAppInfoService(store *config.Store) *AppInfoService {
	return &AppInfoService{store: store}
}

func (s *AppInfoService) AppInfo(_ context.Context) model.AppInfo {
	app := s.store.Load().App

	return model.AppInfo{
		AppName:          app.Name,
		Environment:      app.Env.Name,
		SecretConfigured: app.SecretConfigured(),
		Status:           model.AppStatusRunning,
	}
}
