package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	_ "go.uber.org/automaxprocs"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barbercraft/internal/audit"
	"github.com/BruksfildServices01/barbercraft/internal/auth"
	"github.com/BruksfildServices01/barbercraft/internal/config"
	dbpkg "github.com/BruksfildServices01/barbercraft/internal/db"
	"github.com/BruksfildServices01/barbercraft/internal/logger"
	"github.com/BruksfildServices01/barbercraft/internal/payment"
	"github.com/BruksfildServices01/barbercraft/internal/routes"
	"github.com/BruksfildServices01/barbercraft/internal/storage"
	"github.com/BruksfildServices01/barbercraft/internal/timezone"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log, flush := logger.New(cfg.Log, !cfg.IsProduction())
	defer flush()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		if cfg.JWTSecret == "changeme" {
			log.Fatal("JWT_SECRET must be set in production")
		}
	}
	timezone.SetBusiness(cfg.Timezone)

	// ======================================================
	// DATABASE
	// ======================================================
	db, err := dbpkg.NewDB(cfg, log)
	if err != nil {
		log.Fatal("database init failed", zap.Error(err))
	}

	hasher := auth.NewHasher(cfg.BcryptCost)
	if cfg.SeedDemoData {
		if err := dbpkg.Seed(context.Background(), db, hasher, log); err != nil {
			log.Fatal("seed failed", zap.Error(err))
		}
	}

	// ======================================================
	// OPTIONAL INFRA
	// ======================================================
	deps := routes.Deps{
		DB:     db,
		Config: cfg,
		Log:    log,
		Tokens: auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTTTL),
		Hasher: hasher,
	}

	auditLogger := audit.New(db)
	deps.AuditLogs = auditLogger
	deps.Audit = audit.NewDispatcher(auditLogger, log)

	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Warn("redis unreachable, rate limiting stays in-process", zap.Error(err))
			_ = rdb.Close()
		} else {
			deps.Redis = rdb
			defer rdb.Close()
		}
		cancel()
	}

	if store, err := storage.NewS3Store(cfg.S3); err == nil {
		deps.Store = store
		log.Info("image storage enabled", zap.String("bucket", cfg.S3.Bucket))
	} else {
		log.Info("image storage disabled", zap.Error(err))
	}

	mp, err := payment.NewMercadoPago(
		cfg.Payment.MercadoPagoAccessToken,
		cfg.Payment.MercadoPagoNotification,
	)
	if err != nil {
		log.Fatal("payment gateway init failed", zap.Error(err))
	}
	if mp != nil {
		deps.Gateway = mp
	}

	// ======================================================
	// HTTP
	// ======================================================
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           routes.NewRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		log.Info("server starting",
			zap.String("addr", cfg.Addr()),
			zap.String("env", cfg.AppEnv),
			zap.String("db_driver", cfg.DBDriver),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}

	deps.Audit.Close()
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Info("server stopped")
}
