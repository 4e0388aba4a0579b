package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/go-ddd-usergroup/config"
	"github.com/oksasatya/go-ddd-usergroup/internal/container"
	"github.com/oksasatya/go-ddd-usergroup/internal/router"
	"github.com/oksasatya/go-ddd-usergroup/pkg/helpers"
	"github.com/oksasatya/go-ddd-usergroup/pkg/validation"
)

func main() {
	_ = godotenv.Load() // load .env if present

	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)
	gin.SetMode(cfg.GinMode)
	validation.Init()

	ctx := context.Background()

	// Redis only backs the rate limiter; the server runs without it.
	var rdb *redis.Client
	if cfg.RateLimitActive() {
		client, err := helpers.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			logger.WithError(err).Warn("redis unavailable, rate limiting disabled")
		} else {
			rdb = client
			defer func() { _ = rdb.Close() }()
		}
	}

	c := container.New(cfg, logger, rdb)
	r := router.New(c)

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		logger.Infof("server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("listen: %s", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.Fatalf("server forced to shutdown: %v", err)
	}
	logger.Info("server exited properly")
}
