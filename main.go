// This is the main entry point of the Cinelog API.
// It wires configuration, logging, the database, the movie catalog client, services and
// handlers together, then either serves HTTP or runs a migration command.
//
// Analogy to Nest.js: This file is similar to `main.ts` in a Nest.js application,
// where the application is bootstrapped, modules are configured, and the server starts
// listening. The `migrate` subcommands play the role of a TypeORM CLI.
// @title Cinelog API
// @version 1.0
// @description Movie discovery, watchlist and reviews API backed by TMDB.
// @contact.name API Support
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_JWT_TOKEN' to authorize
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	// `godotenv` loads environment variables from a .env file, useful for development.
	"github.com/joho/godotenv"
	// `urfave/cli` turns the binary into `cinelog serve` / `cinelog migrate up|down|version`.
	"github.com/urfave/cli/v2"

	"github.com/user/cinelog-go/config"
	"github.com/user/cinelog-go/db"
	"github.com/user/cinelog-go/logger"
)

func main() {
	app := &cli.App{
		Name:  "cinelog",
		Usage: "movie discovery, watchlist and reviews API",
		// Running the binary without a subcommand serves HTTP.
		Action: serve,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "start the HTTP API",
				Action: serve,
			},
			{
				Name:  "migrate",
				Usage: "manage the database schema",
				Subcommands: []*cli.Command{
					{
						Name:   "up",
						Usage:  "apply all pending migrations",
						Action: migrateUp,
					},
					{
						Name:  "down",
						Usage: "roll back migrations",
						Flags: []cli.Flag{
							&cli.IntFlag{Name: "steps", Value: 1, Usage: "number of migrations to roll back"},
						},
						Action: migrateDown,
					},
					{
						Name:   "version",
						Usage:  "print the current schema version",
						Action: migrateVersion,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("cinelog exited with an error", slog.Any("error", err))
		os.Exit(1)
	}
}

// bootstrap loads .env and the configuration, then installs the process-wide logger.
func bootstrap() (*config.AppConfig, *slog.Logger, error) {
	// Load .env file
	// In production, variables are usually set directly and the file is absent.
	envErr := godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, err
	}

	log := logger.New(logger.Config{
		Environment: cfg.Log.Env,
		Level:       logger.ParseLevel(cfg.Log.Level),
	})
	slog.SetDefault(log)

	if envErr != nil && !errors.Is(envErr, os.ErrNotExist) {
		log.Warn("could not read .env file", slog.Any("error", envErr))
	}
	return cfg, log, nil
}

func serve(c *cli.Context) error {
	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}

	if cfg.Database.AutoMigrate {
		if err := db.RunMigrations(cfg.Database.URI, cfg.Database.MigrationsPath, log); err != nil {
			return err
		}
	}

	pool, err := db.NewPool(c.Context, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	sqlDB := db.NewSQLX(pool)
	defer sqlDB.Close()

	router := newRouter(cfg, log, pool, sqlDB)

	addr := fmt.Sprintf(":%s", cfg.Server.Port)

	// `http.Server` provides more control over server behavior than `http.ListenAndServe`.
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 75 * time.Second, // above the 60s request timeout middleware
		IdleTimeout:  60 * time.Second,
	}

	// The server runs in its own goroutine so this one can wait for a shutdown signal.
	serverErr := make(chan error, 1)
	go func() {
		log.Info("server starting", slog.String("addr", addr), slog.String("env", cfg.Log.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	// Wait for Ctrl+C (SIGINT) or a polite SIGTERM from the process manager.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case sig := <-quit:
		log.Info("server shutting down", slog.String("signal", sig.String()))
	}

	// Give in-flight requests up to 30 seconds to finish.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	log.Info("server stopped gracefully")
	return nil
}

func migrateUp(_ *cli.Context) error {
	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}
	return db.RunMigrations(cfg.Database.URI, cfg.Database.MigrationsPath, log)
}

func migrateDown(c *cli.Context) error {
	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}
	return db.MigrateDown(cfg.Database.URI, cfg.Database.MigrationsPath, c.Int("steps"), log)
}

func migrateVersion(c *cli.Context) error {
	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}
	version, dirty, err := db.MigrationVersion(cfg.Database.URI, cfg.Database.MigrationsPath, log)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "version %d (dirty: %t)\n", version, dirty)
	return nil
}
