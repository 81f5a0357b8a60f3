package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmitriykara/StocksApp/internal/app"
	"github.com/dmitriykara/StocksApp/internal/config"
	"github.com/dmitriykara/StocksApp/internal/httpx"
	"github.com/dmitriykara/StocksApp/internal/logger"
	"github.com/dmitriykara/StocksApp/internal/server"
)

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	log := logger.New(logger.Config{Level: cfg.Log.Level, Pretty: cfg.Log.Pretty})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	p, err := app.NewProvider(cfg.IEX, httpx.New(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build provider")
	}

	srv := server.New(server.Config{
		Port:     cfg.Server.Port,
		Log:      log,
		Provider: p,
	})

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server shutdown failed")
	}
}
