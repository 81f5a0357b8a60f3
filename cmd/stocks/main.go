package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dmitriykara/StocksApp/internal/app"
	"github.com/dmitriykara/StocksApp/internal/config"
	"github.com/dmitriykara/StocksApp/internal/httpx"
	"github.com/dmitriykara/StocksApp/internal/logger"
	"github.com/dmitriykara/StocksApp/internal/ui"
)

func main() {
	configPath := flag.String("config", os.Getenv("CONFIG_FILE"), "path to config.json (optional)")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	// The UI owns the terminal, so logs go to a file.
	log, closer, err := logger.OpenFile(logger.Config{Level: cfg.Log.Level, Pretty: cfg.Log.Pretty}, cfg.Log.File)
	if err != nil {
		return fmt.Errorf("log file: %w", err)
	}
	defer closer.Close()

	p, err := app.NewProvider(cfg.IEX, httpx.New(), log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	log.Info().Str("provider", p.Name()).Msg("starting")
	prog := tea.NewProgram(ui.NewModel(ctx, p, log), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := prog.Run(); err != nil {
		log.Error().Err(err).Msg("ui exited with error")
		return err
	}
	return nil
}
