package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/goliatone/go-phoneform/internal/config"
	"github.com/goliatone/go-phoneform/internal/logging"
	"github.com/goliatone/go-phoneform/pkg/intake"
)

func main() {
	configPath := flag.String("config", os.Getenv("PHONEFORM_CONFIG"), "YAML config path")
	addr := flag.String("addr", "", "listen address, overrides the config")
	flag.Parse()

	cfg, err := config.LoadPath(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}
	logger := logging.New(cfg.Log)

	var sink intake.Sink
	if cfg.Intake.Enabled {
		fileSink, err := intake.NewFileSink(cfg.Intake.LogFile)
		if err != nil {
			log.Fatalf("Failed to open intake log: %v", err)
		}
		logger.Info("intake log", "path", fileSink.Path())
		sink = fileSink
	}

	handler, err := newRouter(cfg, logger, sink)
	if err != nil {
		log.Fatalf("Failed to build routes: %v", err)
	}

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("listening", "addr", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", "error", err)
	}
}
