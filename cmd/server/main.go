package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"

	httpapi "entnt-rental-backend/internal/api/http"
	"entnt-rental-backend/internal/config"
	"entnt-rental-backend/internal/jobs"
	"entnt-rental-backend/internal/logger"
	"entnt-rental-backend/internal/scheduler"
	"entnt-rental-backend/internal/security"
	"entnt-rental-backend/internal/storage"
	"entnt-rental-backend/internal/store"
)

func main() {
	_ = godotenv.Load()

	var configPath string

	rootCmd := &cobra.Command{
		Use:   "rental-backend",
		Short: "Equipment rental management backend",
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(configPath)
		},
	}
	serveCmd.Flags().StringVar(&configPath, "config", "config/config.dev.yaml", "Path to configuration file")

	rootCmd.AddCommand(serveCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serve(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting rental backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Storage configuration", "backend", cfg.Storage.Backend)

	kv, err := openStorage(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer kv.Close()

	ctx := context.Background()
	sessions := store.NewSessionStore(ctx, kv, cfg.Auth.Credentials)
	data := store.NewDataStore(ctx, kv)

	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	handler := httpapi.NewHandler(sessions, data, tokenManager, kv)
	router := httpapi.NewRouter(handler)

	if cfg.Scheduler.Enabled {
		jobRunner := jobs.NewJobRunner(kv, cfg)
		sched := scheduler.NewScheduler(jobRunner)
		sched.Start()
		defer sched.Stop()
	}

	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", "address", server.Addr)
		errCh <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
	case sig := <-stop:
		logger.Info("Shutting down", "signal", sig.String())
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("Graceful shutdown failed", "error", err)
		}
	}
	return nil
}

func openStorage(cfg *config.Config) (storage.KeyValueStore, error) {
	switch cfg.Storage.Backend {
	case "file":
		logger.Info("Using file storage", "data_dir", cfg.Storage.DataDir)
		return storage.NewFileStore(cfg.Storage.DataDir)
	case "postgres":
		db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
		if err != nil {
			return nil, err
		}
		if err := db.Ping(); err != nil {
			db.Close()
			return nil, err
		}
		logger.Info("Database connection established", "host", cfg.Storage.Postgres.Host, "database", cfg.Storage.Postgres.Database)
		return storage.NewPostgresStore(db)
	case "redis":
		logger.Info("Using redis storage", "addr", cfg.Storage.Redis.Addr)
		return storage.NewRedisStore(cfg.Storage.Redis.Addr, cfg.Storage.Redis.Password, cfg.Storage.Redis.DB)
	default:
		// Validate() already rejected anything else.
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.Storage.Backend)
	}
}
