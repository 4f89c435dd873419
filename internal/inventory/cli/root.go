// Package cli defines the inventory command line: the interactive shell and maintenance subcommands.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/abgdnv/inventory/internal/config"
	"github.com/abgdnv/inventory/internal/inventory/app"
	"github.com/abgdnv/inventory/pkg/bootstrap"
	applog "github.com/abgdnv/inventory/pkg/logger"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

type flags struct {
	inMemory bool
	logLevel string
}

// overrides maps command line flags to configuration keys. Unset flags are omitted.
func (f *flags) overrides() map[string]any {
	o := make(map[string]any)
	if f.inMemory {
		o["store.driver"] = config.DriverMemory
	}
	if f.logLevel != "" {
		o["log.level"] = f.logLevel
	}
	return o
}

// NewRootCommand creates the inventory command. Without a subcommand it resets the catalog
// and starts the interactive shell on the command's input and output.
func NewRootCommand() *cobra.Command {
	f := &flags{}
	rootCmd := &cobra.Command{
		Use:   "inventory",
		Short: "Interactive product inventory manager",
		Long: `Inventory manages a small product catalog stored in MongoDB.

On start the catalog is dropped and reloaded with the reference products,
then a menu lets you list, add, update and delete products.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(cmd, f, func(ctx context.Context, deps *app.Dependencies) error {
				return app.SetupShell(deps, cmd.InOrStdin(), cmd.OutOrStdout()).Run(ctx)
			})
		},
	}

	rootCmd.PersistentFlags().BoolVar(&f.inMemory, "in-memory", false, "use a throwaway in-memory catalog instead of MongoDB")
	rootCmd.PersistentFlags().StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")

	rootCmd.AddCommand(newResetCommand(f))
	return rootCmd
}

func newResetCommand(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Drop the catalog, reload the reference products and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(cmd, f, func(_ context.Context, _ *app.Dependencies) error {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "Catalog reset.")
				return err
			})
		},
	}
}

// withSession loads the configuration, opens the store, resets the catalog and runs fn.
// The store is released when fn returns.
func withSession(cmd *cobra.Command, f *flags, fn func(ctx context.Context, deps *app.Dependencies) error) error {
	cfg, err := config.Load(f.overrides())
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}

	logger := newLogger(cmd.ErrOrStderr(), cfg)
	ctx := applog.WithSessionID(cmd.Context(), uuid.NewString())
	logger.DebugContext(ctx, "Configuration loaded", "config", cfg.String())

	catalog, release, err := app.OpenStore(ctx, cfg, logger)
	if err != nil {
		logger.ErrorContext(ctx, "Unable to open catalog store", "error", err)
		return err
	}
	defer release()

	deps := app.SetupDependencies(catalog, logger)
	if err := deps.ProductService.Reset(ctx); err != nil {
		logger.ErrorContext(ctx, "Unable to reset catalog", "error", err)
		return err
	}
	logger.DebugContext(ctx, "Catalog reset and seeded")

	return fn(ctx, deps)
}

func newLogger(w io.Writer, cfg *config.Config) *slog.Logger {
	return bootstrap.NewLogger(w, cfg.Log.Level).With("app", "inventory")
}
