package iexadapter

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/dmitriykara/StocksApp/internal/provider"
	"github.com/dmitriykara/StocksApp/internal/provider/iex"
)

type Config struct {
	Name string // display name, default: IEX
}

// Adapter exposes an IEX client as a provider.Provider.
type Adapter struct {
	cfg    Config
	client *iex.Client
	log    zerolog.Logger
}

func New(cfg Config, client *iex.Client, log zerolog.Logger) *Adapter {
	if cfg.Name == "" {
		cfg.Name = "IEX"
	}
	return &Adapter{
		cfg:    cfg,
		client: client,
		log:    log.With().Str("provider", cfg.Name).Logger(),
	}
}

func (a *Adapter) Name() string { return a.cfg.Name }

// LoadDirectory fetches the most active companies and builds the directory.
func (a *Adapter) LoadDirectory(ctx context.Context) (*provider.Directory, error) {
	entries, err := a.client.MostActive(ctx)
	if err != nil {
		a.logFailure(err, "load directory", "")
		return nil, err
	}

	companies := make([]provider.Company, 0, len(entries))
	for _, e := range entries {
		companies = append(companies, provider.Company{Name: e.CompanyName, Symbol: e.Symbol})
	}
	dir := provider.NewDirectory(companies)
	a.log.Debug().Int("received", len(entries)).Int("companies", dir.Len()).Msg("directory loaded")
	return dir, nil
}

func (a *Adapter) FetchQuote(ctx context.Context, symbol string) (provider.Quote, error) {
	q, err := a.client.Quote(ctx, symbol)
	if err != nil {
		a.logFailure(err, "fetch quote", symbol)
		return provider.Quote{}, err
	}
	return provider.Quote{
		CompanyName: q.CompanyName,
		Symbol:      q.Symbol,
		LatestPrice: q.LatestPrice,
		Change:      q.Change,
	}, nil
}

func (a *Adapter) FetchLogo(ctx context.Context, symbol string) (provider.Logo, error) {
	data, err := a.client.Logo(ctx, symbol)
	if err != nil {
		a.logFailure(err, "fetch logo", symbol)
		return provider.Logo{}, err
	}
	return provider.Logo{Symbol: symbol, Data: data}, nil
}

func (a *Adapter) logFailure(err error, op, symbol string) {
	// A superseded request is not a failure worth reporting.
	if errors.Is(err, context.Canceled) {
		a.log.Debug().Err(err).Str("op", op).Str("symbol", symbol).Msg("request canceled")
		return
	}
	ev := a.log.Error().Err(err).Str("op", op)
	if symbol != "" {
		ev = ev.Str("symbol", symbol)
	}
	if kind := provider.Kind(err); kind != nil {
		ev = ev.Str("kind", kind.Error())
	}
	ev.Msg("request failed")
}
