// Package app wires the inventory tool: store selection, services and the interactive shell.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/abgdnv/inventory/internal/config"
	"github.com/abgdnv/inventory/internal/inventory/service"
	"github.com/abgdnv/inventory/internal/inventory/shell"
	"github.com/abgdnv/inventory/internal/inventory/store"
	"github.com/abgdnv/inventory/pkg/bootstrap"
)

type Dependencies struct {
	ProductService service.ProductService
	Logger         *slog.Logger
}

func SetupDependencies(catalog store.CatalogStore, logger *slog.Logger) *Dependencies {
	pService := service.NewService(catalog)

	return &Dependencies{
		ProductService: pService,
		Logger:         logger,
	}
}

// OpenStore returns the catalog store selected by cfg.Store.Driver.
// release must be called exactly once when the store is no longer needed.
func OpenStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (store.CatalogStore, func(), error) {
	switch cfg.Store.Driver {
	case config.DriverMemory:
		logger.DebugContext(ctx, "Using in-memory catalog store")
		return store.NewInMemoryStore(), func() {}, nil
	case config.DriverMongo:
		client, err := bootstrap.NewMongoClient(ctx, cfg.Mongo.URI, cfg.Mongo.Timeout)
		if err != nil {
			return nil, nil, err
		}
		logger.DebugContext(ctx, "Successfully connected to MongoDB",
			"database", cfg.Mongo.Database, "collection", cfg.Mongo.Collection)

		release := func() {
			dCtx, cancel := context.WithTimeout(context.Background(), cfg.Shutdown.Timeout)
			defer cancel()
			if err := client.Disconnect(dCtx); err != nil {
				logger.Error("Error disconnecting from MongoDB", "error", err)
				return
			}
			logger.Debug("Disconnected from MongoDB")
		}
		return store.NewMongoStore(client.Database(cfg.Mongo.Database), cfg.Mongo.Collection), release, nil
	default:
		return nil, nil, fmt.Errorf("unknown store driver: %q", cfg.Store.Driver)
	}
}

// SetupShell creates the interactive loop reading from in and printing to out.
// Used by E2E tests to drive scripted sessions.
func SetupShell(deps *Dependencies, in io.Reader, out io.Writer) *shell.Loop {
	prompter := shell.NewLinePrompter(in, out)
	h := shell.NewHandler(deps.ProductService, prompter, out, deps.Logger)
	return shell.NewLoop(h, prompter, out, deps.Logger)
}
