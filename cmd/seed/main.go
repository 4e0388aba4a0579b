package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/oksasatya/go-ddd-usergroup/config"
	"github.com/oksasatya/go-ddd-usergroup/internal/seed"
	"github.com/oksasatya/go-ddd-usergroup/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := seed.NewClient(cfg.SeedAPIURL, cfg.SeedRetryMax, logger)
	if err != nil {
		logger.Fatalf("failed to build api client: %v", err)
	}

	res, err := seed.Run(ctx, client, seed.Demo(), logger)
	if err != nil {
		logger.WithError(err).Error("seed failed")
		os.Exit(1)
	}
	fmt.Printf("seeded %d users, %d groups, %d memberships into %s\n", res.Users, res.Groups, res.Memberships, cfg.SeedAPIURL)
}
