package main

import (
	"context"
	"io"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/carson-networks/spend-server/api"
	"github.com/carson-networks/spend-server/internal/config"
	"github.com/carson-networks/spend-server/internal/logging"
	"github.com/carson-networks/spend-server/internal/service"
	"github.com/carson-networks/spend-server/internal/storage"
	"github.com/carson-networks/spend-server/internal/storage/memory"
	"github.com/carson-networks/spend-server/internal/storage/postgres"
)

func main() {
	logger := logging.SetupLogging()
	logrus.Info("spend-server starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	store, err := newStore(envConfig)
	if err != nil {
		logrus.WithError(err).Fatal("storage setup")
		return
	}

	svc := service.NewService(store)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		httpRest := api.Rest{
			Logger:  logger,
			Port:    envConfig.HTTPPort,
			Service: svc,
		}
		return httpRest.Serve(ctx)
	})

	serveErr := group.Wait()

	if closer, ok := store.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			logrus.WithError(err).Error("storage close")
		}
	}

	if serveErr != nil {
		logrus.WithError(serveErr).Fatal("server exited")
	}
}

// newStore selects the storage backend from configuration. The choice is an
// explicit parameter here, not ambient state read elsewhere.
func newStore(env *config.Config) (storage.ITransactionStore, error) {
	switch env.StorageBackend {
	case config.BackendPostgres:
		logrus.WithField("backend", env.StorageBackend).Info("storage.postgres")
		return postgres.NewStore(env)
	default:
		logrus.WithField("backend", env.StorageBackend).Info("storage.memory")
		if env.MemorySeedFile != "" {
			return memory.NewStoreFromFile(env.MemorySeedFile)
		}
		return memory.NewStore(), nil
	}
}
