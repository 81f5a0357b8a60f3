// Package app assembles the provider stack shared by the binaries.
package app

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/dmitriykara/StocksApp/internal/config"
	"github.com/dmitriykara/StocksApp/internal/provider"
	"github.com/dmitriykara/StocksApp/internal/provider/iex"
	"github.com/dmitriykara/StocksApp/internal/provider/iexadapter"
	"github.com/dmitriykara/StocksApp/internal/provider/ratelimit"
)

// NewProvider builds the IEX-backed provider described by cfg, rate limited
// when cfg asks for it.
func NewProvider(cfg config.IEX, httpClient iex.HTTPClient, log zerolog.Logger) (provider.Provider, error) {
	if cfg.Token == "" {
		log.Warn().Msg("IEX_TOKEN not set; quote requests will likely be rejected")
	}

	client, err := iex.NewClient(
		cfg.Token,
		iex.WithBaseURL(cfg.BaseURL),
		iex.WithLogoBaseURL(cfg.LogoBaseURL),
		iex.WithHTTPClient(httpClient),
		iex.WithListLimit(cfg.ListLimit),
		iex.WithTimeout(cfg.Timeout()),
	)
	if err != nil {
		return nil, fmt.Errorf("iex client: %w", err)
	}

	var p provider.Provider = iexadapter.New(iexadapter.Config{Name: "IEX"}, client, log)
	return ratelimit.Wrap(p, cfg.MaxRequestsPerMinute, cfg.Burst, cfg.MinInterval()), nil
}
