package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/RigelNana/acervo/database"
	"github.com/RigelNana/acervo/pkg/metrics"
	"github.com/RigelNana/acervo/repository"
	"github.com/RigelNana/acervo/router"
	"github.com/RigelNana/acervo/service"
	"github.com/RigelNana/acervo/token"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

const (
	shutdownTimeout   = 10 * time.Second
	poolStatsInterval = 15 * time.Second
)

func newServeCmd() *cobra.Command {
	var port string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Run the HTTP API. The schema is migrated on start.

Examples:
  acervo serve                 # listen on HTTP_PORT (default 8080)
  acervo serve --port 9090     # override the port`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), port)
		},
	}
	cmd.Flags().StringVarP(&port, "port", "p", "", "HTTP port, overrides HTTP_PORT")
	return cmd
}

func runServe(parent context.Context, port string) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, logger, db, err := bootstrap()
	if err != nil {
		return err
	}
	if port == "" {
		port = cfg.HTTP.Port
	}
	gin.SetMode(cfg.HTTP.GinMode)

	tokens, err := token.NewService(cfg.JWT.Secret, cfg.JWT.TTL())
	if err != nil {
		return err
	}
	users := repository.NewUserRepository(db)
	engine := router.Setup(router.Deps{
		Log:           logger,
		Auth:          service.NewAuthService(users, tokens, logger),
		Users:         service.NewUserService(users),
		Books:         service.NewBookService(repository.NewBookRepository(db)),
		Papers:        service.NewPaperService(repository.NewPaperRepository(db)),
		FinalProjects: service.NewFinalProjectService(repository.NewFinalProjectRepository(db)),
		Health: func(ctx context.Context) error {
			return database.Ping(ctx, db)
		},
	})

	// 启动 Prometheus metrics 服务器
	var metricsServer *http.Server
	if cfg.Metrics.Enabled {
		metricsServer = metrics.StartMetricsServer(cfg.Metrics.Port, logger)
		go database.ReportPoolStats(ctx, db, router.ServiceName, poolStatsInterval)
	}

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		logger.WithField("port", port).Info("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			closeDB(db)
			return err
		}
	case <-ctx.Done():
	}

	logger.Info("acervo 正在关闭...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Warn("HTTP server shutdown")
	}
	if metricsServer != nil {
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			logger.WithError(err).Warn("metrics server shutdown")
		}
	}
	closeDB(db)
	return nil
}

func closeDB(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
