// Package backend opens the storage backend selected in the settings.
package backend

import (
	"context"
	"fmt"

	"tasklist/internal/backend/badgerstore"
	"tasklist/internal/backend/filestore"
	"tasklist/internal/backend/googletasks"
	"tasklist/internal/backend/mysqlstore"
	"tasklist/internal/config"
	"tasklist/internal/logging"
	"tasklist/internal/service"
)

// Open returns the service.Store named by cfg.Settings.Storage.Backend.
// Stores that hold resources also implement io.Closer.
func Open(ctx context.Context, cfg *config.Config) (service.Store, error) {
	logger := logging.FromContext(ctx)
	backend := cfg.Settings.Storage.Backend
	logger.Debug("opening storage backend", "backend", backend)

	switch backend {
	case config.BackendFile:
		return filestore.New(cfg.StorageFilePath()), nil
	case config.BackendBadger:
		s, err := badgerstore.Open(cfg.BadgerDir(), logger)
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.BackendMySQL:
		s, err := mysqlstore.Open(ctx, cfg.Settings.Storage.MySQLDSN)
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.BackendGoogleTasks:
		if !cfg.HasOAuthClient() {
			return nil, fmt.Errorf("%w: oauth_client.json not found in %s", service.ErrUnauthorized, cfg.Dir)
		}
		if !cfg.HasToken() {
			return nil, fmt.Errorf("%w: not logged in (run: tasklist login)", service.ErrUnauthorized)
		}
		c, err := googletasks.New(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", backend)
	}
}
