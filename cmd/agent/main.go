package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-zkeb/internal/adapter"
	"github.com/MKhiriev/go-zkeb/internal/config"
	"github.com/MKhiriev/go-zkeb/internal/logger"
	"github.com/MKhiriev/go-zkeb/internal/service"
	"github.com/MKhiriev/go-zkeb/internal/store"
	"github.com/MKhiriev/go-zkeb/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewAgentLogger("zkeb-agent")
	cfg, err := config.GetAgentConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	identity, err := service.LoadOrCreateIdentity(cfg.Storage.IdentityPath, cfg.DeviceID, cfg.DeviceName)
	if err != nil {
		log.Fatal().Err(err).Msg("error loading device identity")
	}

	ctx, stop := signal.NotifyContext(
		log.WithContext(context.Background()),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	serverAdapter := adapter.NewHTTPServerAdapter(adapter.HTTPClientConfig{
		BaseURL: cfg.Adapter.HTTPAddress,
		Timeout: cfg.Adapter.RequestTimeout,
	})

	cache, err := store.NewAgentCache(ctx, config.Agent{CacheDSN: cfg.Storage.CacheDSN}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating local cache")
	}
	defer cache.Close()

	services := service.NewAgentServices(identity, serverAdapter, cache, log)

	// registration is idempotent from the agent's point of view: a conflict
	// means the device is already known
	if _, err = services.AuthService.Enroll(ctx); err != nil && !errors.Is(err, adapter.ErrConflict) {
		log.Fatal().Err(err).Msg("error enrolling device")
	}

	if _, err = services.AuthService.Login(ctx); err != nil {
		log.Fatal().Err(err).Msg("error logging in")
	}

	syncWorker := workers.NewSyncWorker(services.BackupService, log)
	syncWorker.Start(ctx, cfg.Workers.BackupInterval)

	log.Info().Str("device_id", identity.DeviceID).Msg("agent started")

	<-ctx.Done()
	syncWorker.Stop()
	log.Info().Msg("agent shut down gracefully")
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
