package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/boxstory/yk/config"
	"github.com/boxstory/yk/internal/api/handler"
	"github.com/boxstory/yk/internal/api/router"
	"github.com/boxstory/yk/internal/repository"
	"github.com/boxstory/yk/internal/service"
	"github.com/boxstory/yk/pkg/database"
	"github.com/boxstory/yk/pkg/events"
	"github.com/boxstory/yk/pkg/jwt"
	applogger "github.com/boxstory/yk/pkg/logger"
	"github.com/boxstory/yk/pkg/redis"
)

func main() {
	// 1. configuration
	cfg, err := config.Load(os.Getenv("YK_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	// 2. logger
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting",
		zap.Int("port", cfg.Server.Port),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. database + migrations
	db, err := database.NewDB(&cfg.Database, cfg.Log.Level, logger)
	if err != nil {
		logger.Fatal("connect database", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("get sql.DB", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("run migrations", zap.Error(err))
	}

	// 4. redis is optional: without it logout revocation and rate limiting are off
	rdb, err := redis.NewClient(&cfg.Redis, logger)
	if err != nil {
		logger.Warn("redis unavailable, running without token blacklist and rate limiting", zap.Error(err))
		rdb = nil
	}
	var blacklist service.TokenBlacklist
	if rdb != nil {
		blacklist = rdb
	}

	// 5. vacancy events
	publisher, err := events.New(cfg.RabbitMQ, logger)
	if err != nil {
		logger.Fatal("init event publisher", zap.Error(err))
	}

	// 6. wiring: repository → service → handler
	jwtMgr := jwt.NewManager(&cfg.Auth)
	repo := repository.NewRepository(db)
	svc := service.NewService(repo, jwtMgr, blacklist, publisher, logger)
	h := handler.NewHandler(svc)

	engine, err := router.Setup(cfg, h, jwtMgr, rdb, db, logger)
	if err != nil {
		logger.Fatal("setup router", zap.Error(err))
	}

	// 7. HTTP server with graceful shutdown
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("http server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("shutting down", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}

	if err := publisher.Close(); err != nil {
		logger.Warn("close event publisher", zap.Error(err))
	}
	if rdb != nil {
		_ = rdb.Close()
	}
	_ = sqlDB.Close()

	logger.Info("server stopped")
}
