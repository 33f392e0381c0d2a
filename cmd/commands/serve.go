package commands

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"parth-agrotech/cmd/config"
	migration "parth-agrotech/cmd/database/migrate"
	"parth-agrotech/internal/api/handlers"
	"parth-agrotech/internal/utils/mailing"
)

var (
	// Serve flags
	skipMigrate bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func init() {
	serveCmd.Flags().BoolVar(&skipMigrate, "skip-migrate", false, "Do not migrate the database on start")
}

func runServe(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := config.ConnectDB(cfg)
	if err != nil {
		return err
	}
	if !skipMigrate {
		if err := migration.Migrate(db); err != nil {
			return err
		}
	}

	sessions, redisClient, err := openSessionStore(ctx)
	if err != nil {
		return err
	}
	healthChecks := map[string]handlers.HealthCheck{}
	if redisClient != nil {
		defer redisClient.Close()
		healthChecks["redis"] = func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		}
		slog.Info("sessions are stored in redis", "addr", cfg.RedisAddr)
	} else {
		slog.Warn("sessions are kept in process and will not survive a restart")
	}

	accessLog, err := openAccessLog(cfg.AccessLogFile)
	if err != nil {
		return err
	}
	defer accessLog.Close()

	notifier := mailing.NewNotifier(mailing.LoadMailConfig(cfg))
	app, err := config.NewApp(config.AppOptions{
		Config:       cfg,
		DB:           db,
		Sessions:     sessions,
		Notifier:     notifier,
		AccessLog:    accessLog,
		HealthChecks: healthChecks,
	})
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("starting server", "port", cfg.AppPort)
		errCh <- app.Listen(":" + cfg.AppPort)
	}()

	select {
	case err := <-errCh:
		return errors.Wrap(err, "server stopped")
	case <-ctx.Done():
	}

	slog.Info("shutting down server")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		return errors.Wrap(err, "could not shut down server")
	}
	notifier.Wait()
	return nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// openAccessLog appends to path, creating its directory, or returns stdout
// when path is empty.
func openAccessLog(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return nil, errors.Wrap(err, "error creating logs directory")
	}
	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o666)
	if err != nil {
		return nil, errors.Wrap(err, "error opening access log")
	}
	return file, nil
}
