package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/stevemurr/game-library/config"
	"github.com/stevemurr/game-library/game"
	"github.com/stevemurr/game-library/handler"
	"github.com/stevemurr/game-library/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	logger := cfg.NewLogger()
	slog.SetDefault(logger)

	seed := game.Seed()
	if cfg.SeedFile != "" {
		if seed, err = store.LoadSeed(cfg.SeedFile); err != nil {
			logger.Error("load seed", "error", err)
			os.Exit(1)
		}
	}

	s, err := store.New(cfg.Backend, cfg.SqliteDSN, seed)
	if err != nil {
		logger.Error("create store", "backend", cfg.Backend, "error", err)
		os.Exit(1)
	}
	if c, ok := s.(io.Closer); ok {
		defer c.Close()
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	h := handler.New(s,
		handler.WithLogger(logger),
		handler.WithAllowedOrigins(cfg.AllowedOrigins),
		handler.WithRegistry(reg),
	)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
	}

	go func() {
		logger.Info("game library listening", "addr", cfg.Addr(), "store", cfg.Backend, "games", len(seed))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("listen", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown", "error", err)
	}
	logger.Info("game library stopped")
}
