package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/dmitriykara/StocksApp/internal/app"
	"github.com/dmitriykara/StocksApp/internal/config"
	"github.com/dmitriykara/StocksApp/internal/httpx"
	"github.com/dmitriykara/StocksApp/internal/logger"
	"github.com/dmitriykara/StocksApp/internal/provider"
)

const maxConcurrency = 4

type output struct {
	Companies []provider.Company `json:"companies,omitempty"`
	Quotes    []provider.Quote   `json:"quotes,omitempty"`
}

func main() {
	var symbolsCSV string
	var list bool
	var configPath string

	flag.StringVar(&symbolsCSV, "symbols", getenv("SYMBOLS", ""), "comma-separated ticker symbols (default: first most-active company)")
	flag.BoolVar(&list, "list", false, "print the most-active company directory")
	flag.StringVar(&configPath, "config", getenv("CONFIG_FILE", ""), "path to config.json (optional)")
	flag.Parse()

	cfg, err := config.Load(configPath)
	log := logger.New(logger.Config{Level: cfg.Log.Level, Pretty: true, Output: os.Stderr})
	if err != nil {
		log.Fatal().Err(err).Msg("config")
	}

	p, err := app.NewProvider(cfg.IEX, httpx.New(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("provider")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var out output
	symbols := splitCSV(symbolsCSV)
	if list || len(symbols) == 0 {
		dir, err := p.LoadDirectory(ctx)
		if err != nil {
			log.Fatal().Err(err).Str("kind", kindName(err)).Msg("load directory")
		}
		if list {
			out.Companies = dir.Companies()
		}
		if len(symbols) == 0 && !list {
			first, ok := dir.At(0)
			if !ok {
				log.Fatal().Msg("directory is empty")
			}
			symbols = []string{first.Symbol}
		}
	}

	if len(symbols) > 0 {
		out.Quotes = fetchQuotes(ctx, p, symbols, log)
		if len(out.Quotes) == 0 {
			log.Fatal().Msg("no quotes received")
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Fatal().Err(err).Msg("encode")
	}
}

// fetchQuotes fetches every symbol concurrently and keeps the successes in
// input order. Failures are logged, not fatal.
func fetchQuotes(ctx context.Context, p provider.Provider, symbols []string, log zerolog.Logger) []provider.Quote {
	// Each goroutine owns one slot.
	results := make([]*provider.Quote, len(symbols))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrency)
	for i, sym := range symbols {
		g.Go(func() error {
			q, err := p.FetchQuote(gctx, sym)
			if err != nil {
				log.Error().Err(err).Str("symbol", sym).Str("kind", kindName(err)).Msg("fetch quote")
				return nil
			}
			results[i] = &q
			return nil
		})
	}
	_ = g.Wait()

	quotes := make([]provider.Quote, 0, len(symbols))
	for _, q := range results {
		if q != nil {
			quotes = append(quotes, *q)
		}
	}
	return quotes
}

func kindName(err error) string {
	if k := provider.Kind(err); k != nil {
		return k.Error()
	}
	return "unknown"
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
