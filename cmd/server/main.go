package main

import (
	"context"
	"log"
	"net"
	"os"
	"syscall"
	"time"

	"github.com/honeycarbs/jobboard/internal/config"
	"github.com/honeycarbs/jobboard/internal/mcp"
	"github.com/honeycarbs/jobboard/pkg/logging"
	"github.com/honeycarbs/jobboard/pkg/shutdown"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := logging.New(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	res, cleanup, err := mcp.InitializeResources(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize resources", "err", err)
		os.Exit(1)
	}
	defer cleanup()

	if err := res.Start(ctx); err != nil {
		logger.Error("failed to start refresh", "err", err)
		os.Exit(1)
	}

	srv := mcp.NewServer(logger, cfg, res)

	targets := []shutdown.Stoppable{srv}
	if res.Scheduler != nil {
		targets = append([]shutdown.Stoppable{res.Scheduler}, targets...)
	}
	targets = append(targets, res.Session)

	logger.Info("MCP server initialized and starting",
		"addr", net.JoinHostPort(cfg.Host, cfg.Port),
		"source", cfg.Jobs.Source,
		"store", cfg.Store.Backend,
	)

	// returns once every target, session flush included, has stopped
	err = shutdown.Serve(ctx,
		[]os.Signal{os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGHUP},
		10*time.Second,
		logger,
		srv.Run,
		targets...,
	)
	if err != nil {
		logger.Error("MCP server exited with error", "err", err)
	} else {
		logger.Info("MCP server stopped")
	}
}
