package cmd

import (
	"context"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"

	"github.com/misterclayt0n/gymtrainer/internal/auth"
	"github.com/misterclayt0n/gymtrainer/internal/config"
	"github.com/misterclayt0n/gymtrainer/internal/logging"
	"github.com/misterclayt0n/gymtrainer/internal/storage"
)

// app bundles what every command needs. st is nil until openStorage.
type app struct {
	cfg       *config.Config
	st        *storage.Storage
	logCloser io.Closer
}

func newApp() (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	closer, err := logging.Setup(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logging: %w", err)
	}

	return &app{cfg: cfg, logCloser: closer}, nil
}

func (a *app) openStorage(ctx context.Context) error {
	st, err := storage.NewStorage(ctx, a.cfg.DB.ConnectionString)
	if err != nil {
		return err
	}
	a.st = st
	return nil
}

func (a *app) authService() *auth.Service {
	return auth.NewService(a.st, a.cfg.Auth.BcryptCost)
}

// seedSampleTrainer adds the sample trainer to an empty store when enabled.
func (a *app) seedSampleTrainer(ctx context.Context) (bool, error) {
	if !a.cfg.DB.SeedSampleTrainer {
		return false, nil
	}
	created, err := a.authService().EnsureSampleTrainer(ctx)
	if err != nil {
		return false, err
	}
	if created {
		log.Infof("added sample trainer %q", auth.SampleLogin)
	}
	return created, nil
}

func (a *app) Close() error {
	var err error
	if a.st != nil {
		err = multierr.Append(err, a.st.Close())
	}
	return multierr.Append(err, a.logCloser.Close())
}

// withApp opens the app, and the store when needed, runs fn and closes everything.
func withApp(ctx context.Context, needStorage bool, fn func(a *app) error) (err error) {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, a.Close())
	}()

	if needStorage {
		if err := a.openStorage(ctx); err != nil {
			return err
		}
	}
	return fn(a)
}
