package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/luxstyle-booking/internal/audit"
	"github.com/BruksfildServices01/luxstyle-booking/internal/config"
	dbpkg "github.com/BruksfildServices01/luxstyle-booking/internal/db"
	"github.com/BruksfildServices01/luxstyle-booking/internal/jobs"
	"github.com/BruksfildServices01/luxstyle-booking/internal/logger"
	"github.com/BruksfildServices01/luxstyle-booking/internal/middleware"
	"github.com/BruksfildServices01/luxstyle-booking/internal/routes"
	"github.com/BruksfildServices01/luxstyle-booking/internal/session"
	"github.com/BruksfildServices01/luxstyle-booking/internal/timezone"
)

func main() {

	cfg := config.Load()

	zlog, err := logger.Init(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db := dbpkg.NewDB(cfg)
	if err := dbpkg.Seed(db, cfg.AdminPassword); err != nil {
		zap.L().Fatal("failed to seed", zap.Error(err))
	}

	// ======================================================
	// Sessões revogadas: redis quando configurado
	// ======================================================
	var revoker session.Revoker = session.NewMemoryRevoker()
	if cfg.RedisURL != "" {
		client, err := session.DialRedis(ctx, cfg.RedisURL)
		if err != nil {
			zap.L().Fatal("failed to connect redis", zap.Error(err))
		}
		defer client.Close()
		revoker = session.NewRedisRevoker(client)
	}

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)
	defer auditDispatcher.Close()

	sched, err := jobs.Start(timezone.Location(cfg.Timezone), auditLogger, cfg.AuditRetentionDays)
	if err != nil {
		zap.L().Fatal("failed to start scheduler", zap.Error(err))
	}
	defer sched.Stop()

	if cfg.LogMode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger())

	routes.RegisterRoutes(r, db, cfg, revoker, auditLogger, auditDispatcher)

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: r,
	}

	go func() {
		zap.L().Info("server running", zap.String("addr", cfg.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.L().Fatal("failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zap.L().Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.L().Error("server shutdown", zap.Error(err))
	}
}
