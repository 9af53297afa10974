package main

import (
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-playground/validator/v10"

	"github.com/ctfsh/flagserv/config"
	"github.com/ctfsh/flagserv/metrics"
	"github.com/ctfsh/flagserv/server"
)

const (
	readTimeout  = 5 * time.Second
	writeTimeout = 10 * time.Second
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "flagserv",
	})

	validate := validator.New()
	cfg, err := config.Load(os.LookupEnv, validate)
	if err != nil {
		logger.Fatal("Configuration error", "err", err)
	}

	metrics.Init()

	srv, err := server.New(cfg, logger, os.LookupEnv)
	if err != nil {
		logger.Fatal("Server creation error", "err", err)
	}

	go func() {
		logger.Info("Metrics are being served", "addr", cfg.MetricsAddr)
		if err := http.ListenAndServe(cfg.MetricsAddr, metrics.Handler()); err != nil {
			logger.Error("Metrics server stopped", "err", err)
		}
	}()

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		Handler:      srv.Handler(),
	}

	logger.Info("Ready!", "addr", cfg.Addr, "root", cfg.Root)
	if err := httpServer.ListenAndServe(); err != nil {
		logger.Fatal(err)
	}
}
