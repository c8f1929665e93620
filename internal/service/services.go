package service

import (
	"github.com/MKhiriev/go-zkeb/internal/config"
	"github.com/MKhiriev/go-zkeb/internal/logger"
	"github.com/MKhiriev/go-zkeb/internal/store"
)

type Services struct {
	AuthService   AuthService
	BackupService BackupService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:   NewAuthService(storages.DeviceRepository, cfg.App, logger),
		BackupService: NewBackupService(storages.BackupRepository, storages.DeviceRepository, logger),
	}
}
