package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/escala-trocas/internal/audit"
	"github.com/BruksfildServices01/escala-trocas/internal/auth"
	"github.com/BruksfildServices01/escala-trocas/internal/config"
	dbpkg "github.com/BruksfildServices01/escala-trocas/internal/db"
	"github.com/BruksfildServices01/escala-trocas/internal/infra/cache"
	"github.com/BruksfildServices01/escala-trocas/internal/logger"
	"github.com/BruksfildServices01/escala-trocas/internal/metrics"
	"github.com/BruksfildServices01/escala-trocas/internal/routes"
	ucSettings "github.com/BruksfildServices01/escala-trocas/internal/usecase/settings"
)

const shutdownTimeout = 10 * time.Second

func main() {

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zl, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	db, err := dbpkg.NewDB(cfg, zl)
	if err != nil {
		zl.Fatal("database", zap.Error(err))
	}

	// ======================================================
	// REDIS (opcional)
	// ======================================================
	rdb, err := cache.NewRedisClient(cfg)
	if err != nil {
		zl.Fatal("redis", zap.Error(err))
	}
	var settingsCache ucSettings.Cache
	if rdb != nil {
		settingsCache = cache.NewSettingsRedisCache(rdb, cfg.SettingsCacheTTL, zl)
		zl.Info("settings cache enabled", zap.String("addr", cfg.RedisAddr))
	}

	dispatcher := audit.NewDispatcher(audit.New(db), zl, cfg.AuditQueueSize)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	if err := routes.RegisterRoutes(r, routes.Deps{
		DB:            db,
		Config:        cfg,
		Log:           zl,
		Tokens:        auth.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL),
		Audit:         dispatcher,
		Metrics:       metrics.New(),
		SettingsCache: settingsCache,
	}); err != nil {
		zl.Fatal("routes", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zl.Info("server running", zap.String("addr", cfg.Addr()), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// ======================================================
	// SHUTDOWN
	// ======================================================
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	zl.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Error("http shutdown", zap.Error(err))
	}
	if err := dispatcher.Close(shutdownCtx); err != nil {
		zl.Warn("audit queue not drained", zap.Error(err))
	}
	if rdb != nil {
		if err := rdb.Close(); err != nil {
			zl.Warn("redis close", zap.Error(err))
		}
	}
	if err := dbpkg.Close(db); err != nil {
		zl.Error("database close", zap.Error(err))
	}
}
