package main

import (
	"fmt"
	"net/http"
	"os"

	"go.uber.org/zap"

	"cookbook/internal/config"
	"cookbook/internal/serverapp"
)

func main() {
	path := os.Getenv("COOKBOOK_CONFIG")
	if path == "" {
		path = "cookbook.yml"
	}
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	config.FromEnv(cfg)

	logger := newLogger(cfg.Log.JSON)
	defer func() { _ = logger.Sync() }()

	handler, err := serverapp.NewHandler(serverapp.Options{
		Config: cfg,
		Logger: logger,
	})
	if err != nil {
		logger.Fatal("build server", zap.Error(err))
	}

	logger.Info("listening", zap.String("addr", cfg.Server.Addr))
	if err := http.ListenAndServe(cfg.Server.Addr, handler); err != nil {
		logger.Fatal("serve", zap.Error(err))
	}
}

func newLogger(jsonOutput bool) *zap.Logger {
	var (
		logger *zap.Logger
		err    error
	)
	if jsonOutput {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "build logger: %v\n", err)
		os.Exit(1)
	}
	return logger
}
