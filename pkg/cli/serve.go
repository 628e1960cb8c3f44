package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/getmockd/magemock/pkg/config"
	"github.com/getmockd/magemock/pkg/logging"
	"github.com/getmockd/magemock/pkg/server"
	"github.com/getmockd/magemock/pkg/store"
)

// shutdownTimeout bounds the graceful shutdown of the HTTP server.
const shutdownTimeout = 10 * time.Second

type serveFlags struct {
	configPath string
	port       int
	seed       []string
	logLevel   string
	logFormat  string
}

var serveOpts serveFlags

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the mock server",
	Long: `Start the mock server in the foreground.

Fixture files given with --seed (or listed under seed.paths in the
configuration file) are loaded into the store before the server accepts
requests. Globs may use ** to match directories recursively.

The server runs until SIGINT or SIGTERM and then shuts down gracefully.`,
	Example: `  # Start with defaults on port 8080
  magemock serve

  # Use a config file and seed orders
  magemock serve --config magemock.yaml --seed 'fixtures/**/*.yaml'`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := resolveConfig(&serveOpts, cmd.Flags().Changed)
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return runServe(ctx, cfg, newLogger(cfg))
	},
}

func init() {
	f := serveCmd.Flags()
	f.StringVarP(&serveOpts.configPath, "config", "c", os.Getenv("MAGEMOCK_CONFIG"), "Path to the configuration file (YAML or JSON)")
	f.IntVarP(&serveOpts.port, "port", "p", config.DefaultPort, "HTTP port to listen on (0 picks a free port)")
	f.StringSliceVar(&serveOpts.seed, "seed", nil, "Fixture files or globs to load at startup (repeatable)")
	f.StringVar(&serveOpts.logLevel, "log-level", config.DefaultLogLevel, "Log level (debug, info, warn, error)")
	f.StringVar(&serveOpts.logFormat, "log-format", config.DefaultLogFormat, "Log format (text, json)")

	rootCmd.AddCommand(serveCmd)
}

// resolveConfig loads the configuration and applies the flags the user set
// explicitly. Flags win over the file and the environment.
func resolveConfig(f *serveFlags, changed func(string) bool) (*config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}

	if changed("port") {
		cfg.Server.Port = f.port
	}
	if changed("seed") {
		cfg.Seed.Paths = f.seed
	}
	if changed("log-level") {
		cfg.Log.Level = f.logLevel
	}
	if changed("log-format") {
		cfg.Log.Format = f.logFormat
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) *slog.Logger {
	return logging.New(logging.Config{
		Level:  logging.ParseLevel(cfg.Log.Level),
		Format: logging.ParseFormat(cfg.Log.Format),
	})
}

// runServe seeds a store, serves it and shuts the server down once ctx is
// done. A listener failure ends the run with its error.
func runServe(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	st := store.New(store.WithLogger(logging.Component(log, "store")))

	fixtures, err := config.LoadFixtures(cfg.Seed.Paths)
	if err != nil {
		return fmt.Errorf("failed to load fixtures: %w", err)
	}
	if err := st.Seed(fixtures); err != nil {
		return fmt.Errorf("failed to seed store: %w", err)
	}

	srv, err := server.New(st,
		server.WithLogger(log),
		server.WithAddr(fmt.Sprintf(":%d", cfg.Server.Port)),
		server.WithTimeouts(cfg.ReadTimeout(), cfg.WriteTimeout()),
		server.WithPlatformVersion(cfg.Platform.Version),
		server.WithAuth(cfg.Auth()),
	)
	if err != nil {
		return err
	}

	log.Info("magemock starting",
		"version", Version,
		"port", cfg.Server.Port,
		"platform_version", cfg.Platform.Version,
		"seed_paths", cfg.Seed.Paths,
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(srv.ListenAndServe)
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
