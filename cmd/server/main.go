package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/spelldesk/spelldesk/internal/config"
	"github.com/spelldesk/spelldesk/internal/game"
	"github.com/spelldesk/spelldesk/internal/ws"
)

func main() {
	configPath := flag.String("config", "", "path to config YAML (optional)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, err := buildLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	catalog := game.DefaultCatalog()
	weights := game.DefaultWeights(catalog)
	if cfg.WeightsFile != "" {
		weights, err = game.LoadWeights(cfg.WeightsFile, catalog)
		if err != nil {
			logger.Fatal("load draw weights", zap.Error(err))
		}
		logger.Info("loaded draw weights", zap.String("file", cfg.WeightsFile))
	}

	factory := func(id string) *game.Game {
		return game.NewGame(game.Config{
			ID:      id,
			Catalog: catalog,
			Draw:    game.NewDistributor(weights, nil),
		})
	}

	srv := ws.NewServer(cfg.TickInterval, logger, nil, factory)
	httpSrv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: srv.Handler(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("spelldesk server listening", zap.String("addr", cfg.ListenAddr))
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("serve", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("shutdown", zap.Error(err))
	}
}

func buildLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}
