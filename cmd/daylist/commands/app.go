package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/daylist-app/daylist/internal/config"
	"github.com/daylist-app/daylist/internal/logger"
	"github.com/daylist-app/daylist/internal/snapshot"
	"github.com/daylist-app/daylist/internal/store"
)

// app bundles the loaded engine state every command needs.
type app struct {
	cfg    *config.Config
	logger *zap.Logger
	store  *store.Store
	closer io.Closer
}

// openApp loads config, builds the snapshot backend, and loads the task
// collection. Callers must defer a.close().
func openApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.New(cfg.Debug, false)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	snap, closer, err := openBackend(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot backend: %w", err)
	}

	st := store.New(snap, log)
	if err := st.Load(ctx); err != nil {
		if closer != nil {
			if cerr := closer.Close(); cerr != nil {
				log.Warn("backend_close_failed", zap.Error(cerr))
			}
		}
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}

	return &app{cfg: cfg, logger: log, store: st, closer: closer}, nil
}

func openBackend(cfg *config.Config, log *zap.Logger) (snapshot.Store, io.Closer, error) {
	switch cfg.Backend {
	case snapshot.BackendRedis:
		s, err := snapshot.NewRedisStore(cfg.RedisURL, cfg.RedisKey, log)
		if err != nil {
			return nil, nil, err
		}
		return s, s, nil
	case snapshot.BackendPostgres:
		s, err := snapshot.NewPostgresStore(cfg.DatabaseURL, log)
		if err != nil {
			return nil, nil, err
		}
		return s, s, nil
	default:
		return snapshot.NewFileStore(cfg.DataFile, log), nil, nil
	}
}

func (a *app) close() {
	if a.closer != nil {
		if err := a.closer.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to close snapshot backend: %v\n", err)
		}
	}
	_ = logger.Sync(a.logger)
}
