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
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/config"
	dbpkg "github.com/BruksfildServices01/barber-booking/internal/db"
	"github.com/BruksfildServices01/barber-booking/internal/logger"
	"github.com/BruksfildServices01/barber-booking/internal/metrics"
	"github.com/BruksfildServices01/barber-booking/internal/routes"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

func main() {

	cfg := config.Load()

	zl, err := logger.New(cfg.IsProduction())
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	if !timezone.IsValid(cfg.ShopTimezone) {
		zl.Warn("invalid SHOP_TIMEZONE, using default",
			zap.String("timezone", cfg.ShopTimezone),
			zap.String("default", timezone.DefaultTimezone),
		)
	}

	db, err := dbpkg.NewDB(cfg, zl)
	if err != nil {
		zl.Fatal("database", zap.Error(err))
	}

	if cfg.SeedDemoData {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		err := dbpkg.Seed(ctx, db, zl)
		cancel()
		if err != nil {
			zl.Fatal("seed", zap.Error(err))
		}
	}

	// ======================================================
	// Redis (opcional)
	// ======================================================
	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})

		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := rdb.Ping(ctx).Err(); err != nil {
			zl.Warn("redis unavailable, schedule cache disabled",
				zap.String("addr", cfg.RedisAddr),
				zap.Error(err),
			)
			_ = rdb.Close()
			rdb = nil
		}
		cancel()
	}

	// ======================================================
	// Métricas / auditoria
	// ======================================================
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg, "barber")

	dispatcher := audit.NewDispatcher(audit.New(db), zl)

	// ======================================================
	// HTTP
	// ======================================================
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, routes.Deps{
		DB:             db,
		Redis:          rdb,
		Config:         cfg,
		Logger:         zl,
		Audit:          dispatcher,
		Metrics:        m,
		MetricsHandler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}),
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zl.Info("server running", zap.String("addr", cfg.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zl.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zl.Error("forced shutdown", zap.Error(err))
	}

	// eventos pendentes são gravados antes de fechar o banco
	dispatcher.Close()

	if rdb != nil {
		_ = rdb.Close()
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	zl.Info("server stopped")
}
