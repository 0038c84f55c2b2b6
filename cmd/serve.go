package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "parking_sms/docs"
	"parking_sms/internal/config"
	"parking_sms/internal/handlers"
	"parking_sms/internal/logger"
	"parking_sms/internal/metrics"
	"parking_sms/internal/repository"
	"parking_sms/internal/repository/db"
	"parking_sms/internal/server"
	"parking_sms/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

func newServeCmd(cfgPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API, the WebSocket stream and the session watcher",
		RunE: func(cmd *cobra.Command, _ []string) error {
			v := config.New(*cfgPath)
			if err := v.BindPFlag("port", cmd.Flags().Lookup("port")); err != nil {
				return err
			}
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg)
		},
	}
	cmd.Flags().StringP("port", "p", "8080", "HTTP port")
	return cmd
}

func serve(ctx context.Context, cfg *config.Config) error {
	log := logger.Init(cfg.Log.Level, cfg.Log.Format)
	if cfg.Auth.SigningKey == "" {
		return errors.New("auth.signing_key must be set to serve")
	}
	if cfg.Log.Level != logger.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}

	sqlDB, err := db.InitDB(cfg.DB.Path)
	if err != nil {
		return fmt.Errorf("init sqlite: %w", err)
	}
	defer closeDB(sqlDB, log)

	repos := repository.NewRepository(sqlDB)
	if cfg.Store.Driver == config.StoreRedis {
		client, err := db.InitRedis(ctx, cfg.Store.Redis.Addr, cfg.Store.Redis.Password, cfg.Store.Redis.DB)
		if err != nil {
			return fmt.Errorf("init redis: %w", err)
		}
		defer closeRedis(client, log)
		repos.Snapshots = repository.NewSnapshotRedis(client, cfg.Store.Redis.Prefix)
	}

	rec, err := metrics.NewProm(nil)
	if err != nil {
		return fmt.Errorf("register metrics: %w", err)
	}

	services := service.NewService(repos, service.Deps{
		Tariffs:     cfg.Tariffs,
		Destination: cfg.SMS.Destination,
		Strict:      cfg.Strict,
		SigningKey:  cfg.Auth.SigningKey,
		TokenTTL:    cfg.Auth.TokenTTL,
		Metrics:     rec,
		Log:         log,
	})
	apiHandler := handlers.NewHandler(services, log)

	if cfg.Watcher.Enabled {
		go services.Watcher.Run(ctx, cfg.Watcher.Interval)
	}

	srv := server.New()
	errc := make(chan error, 1)
	go func() { errc <- srv.Run(cfg.Port, apiHandler.InitRoutes()) }()
	log.Infow("server_started", "port", cfg.Port, "store", cfg.Store.Driver, "strict", cfg.Strict)

	select {
	case err := <-errc:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	log.Infow("server_shutting_down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), server.ShutdownGrace)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	return nil
}

func closeDB(sqlDB *sql.DB, log *logger.Logger) {
	if err := sqlDB.Close(); err != nil {
		log.Errorw("sqlite_close_failed", "err", err)
	}
}

func closeRedis(client *redis.Client, log *logger.Logger) {
	if err := client.Close(); err != nil {
		log.Errorw("redis_close_failed", "err", err)
	}
}
