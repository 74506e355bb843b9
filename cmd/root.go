package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"fleetdispatch/internal/adapters/out/postgres"

	"github.com/spf13/cobra"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const shutdownTimeout = 10 * time.Second

var (
	cfgPath     string
	autoMigrate bool
)

var rootCmd = &cobra.Command{
	Use:           "fleetdispatch",
	Short:         "Multi-tenant fleet dispatch service",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          serve,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and scheduled jobs",
	RunE:  serve,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE:  migrate,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "configuration file (yaml or json)")
	serveCmd.Flags().BoolVar(&autoMigrate, "migrate", false, "migrate the schema before serving")

	rootCmd.AddCommand(serveCmd, migrateCmd)
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

func serve(_ *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, logger, db, err := bootstrap()
	if err != nil {
		return err
	}

	if autoMigrate {
		if err = postgres.Migrate(db); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	app, err := NewCompositionRoot(cfg, db, logger)
	if err != nil {
		return err
	}

	jobManager, err := app.CreateJobManager()
	if err != nil {
		return err
	}
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	e, err := app.CreateRouter()
	if err != nil {
		return err
	}

	serverErr := make(chan error, 1)
	go func() {
		address := "0.0.0.0:" + strconv.Itoa(cfg.HTTP.Port)
		logger.InfoContext(ctx, "HTTP server listening", "address", address)
		serverErr <- e.Start(address)
	}()

	select {
	case err = <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func migrate(_ *cobra.Command, _ []string) error {
	_, logger, db, err := bootstrap()
	if err != nil {
		return err
	}

	if err = postgres.Migrate(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	logger.Info("Schema is up to date")
	return nil
}

func bootstrap() (Config, *slog.Logger, *gorm.DB, error) {
	cfg, err := Load(cfgPath)
	if err != nil {
		return Config{}, nil, nil, fmt.Errorf("load config: %w", err)
	}

	level, err := cfg.Logging.SlogLevel()
	if err != nil {
		return Config{}, nil, nil, err
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	db, err := gorm.Open(gormpostgres.Open(cfg.Database.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return Config{}, nil, nil, fmt.Errorf("connect to database: %w", err)
	}

	return cfg, logger, db, nil
}
