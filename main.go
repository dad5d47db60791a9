package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/hashicorp/go-hclog"

	"roved/server"
	"roved/store"
)

const DefaultPort = "7997"

func main() {
	logger := hclog.New(&hclog.LoggerOptions{
		Name:  "roved",
		Level: hclog.LevelFromString(envOr("ROVED_LOG_LEVEL", "info")),
	})

	port, err := strconv.Atoi(envOr("ROVED_PORT", DefaultPort))
	if err != nil {
		logger.Error("invalid ROVED_PORT", "error", err)
		os.Exit(1)
	}

	graphPath := os.Getenv("ROVED_GRAPH")
	if graphPath == "" {
		logger.Error("ROVED_GRAPH must point to a graph file")
		os.Exit(1)
	}

	st, err := store.Load(graphPath, logger.Named("store"))
	if err != nil {
		logger.Error("loading graph", "error", err)
		os.Exit(1)
	}

	srv := server.New(port, st, logger.Named("server"))

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGTERM, syscall.SIGINT)

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("running server", "error", err)
			os.Exit(1)
		}
	case sig := <-sigs:
		logger.Info("shutting down", "signal", sig)
		if err := srv.Shutdown(context.Background()); err != nil {
			logger.Error("stopping server", "error", err)
		}
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
