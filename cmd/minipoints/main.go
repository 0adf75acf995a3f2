package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/GlebRadaev/minipoints/internal/app"
	"github.com/rs/zerolog/log"
	"go.uber.org/zap"
)

//	@title			Minipoints API
//	@version		1.0
//	@description	Loyalty points backend for a chat mini-app: launches, referrals and point redemptions.

// @host		localhost:8080
// @BasePath	/
func main() {
	if err := run(); err != nil {
		log.Error().Err(err).Msg("minipoints stopped")
		_ = zap.L().Sync()
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	points := app.New()
	if err := points.Start(ctx); err != nil {
		return fmt.Errorf("start: %w", err)
	}

	if err := points.Wait(ctx, stop); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	zap.L().Info("minipoints stopped cleanly")
	_ = zap.L().Sync()
	return nil
}
