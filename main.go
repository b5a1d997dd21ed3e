package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/muqdisho-plus/site/cache"
	"github.com/muqdisho-plus/site/config"
	h "github.com/muqdisho-plus/site/handlers"
	"github.com/muqdisho-plus/site/logging"
	"github.com/muqdisho-plus/site/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("error creating logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	// Initialize fragment cache
	fragments, err := cache.NewFragments(config.FragmentCacheTTL)
	if err != nil {
		logger.Fatal("failed to initialize fragment cache", zap.Error(err))
	}
	defer fragments.Close()

	app := server.New(cfg, h.New(logger, fragments))

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		logger.Info("shutting down")
		if err := app.Shutdown(); err != nil {
			logger.Error("shutdown failed", zap.Error(err))
		}
	}()

	logger.Info("starting server", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
