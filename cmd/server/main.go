package main

import (
	"errors"
	"log/slog"
	"net/http"
	"os"

	"github.com/ddsolutions/careers-api/internal/config"
	"github.com/ddsolutions/careers-api/internal/server"
	"github.com/ddsolutions/careers-api/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load failed", "err", err)
		os.Exit(1)
	}

	db, err := store.NewGormStore(cfg)
	if err != nil {
		slog.Error("store init failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	srv := server.NewServer(cfg, db).NewHTTPServer()
	slog.Info("starting server", "addr", cfg.BindAddr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
