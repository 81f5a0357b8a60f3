package app

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitriykara/StocksApp/internal/config"
	"github.com/dmitriykara/StocksApp/internal/httpx"
	"github.com/dmitriykara/StocksApp/internal/provider/ratelimit"
)

func TestNewProvider_UsesConfig(t *testing.T) {
	t.Parallel()

	var gotPath, gotToken, gotLimit, gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotToken = r.URL.Query().Get("token")
		gotLimit = r.URL.Query().Get("listLimit")
		gotUA = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(`[{"companyName":"Apple Inc.","symbol":"AAPL"}]`))
	}))
	t.Cleanup(srv.Close)

	cfg := config.Default().IEX
	cfg.BaseURL = srv.URL
	cfg.Token = "secret"
	cfg.ListLimit = 5

	p, err := NewProvider(cfg, httpx.New(), zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, "IEX", p.Name())

	dir, err := p.LoadDirectory(t.Context())
	require.NoError(t, err)

	assert.Equal(t, 1, dir.Len())
	assert.Equal(t, "/stock/market/list/mostactive", gotPath)
	assert.Equal(t, "secret", gotToken)
	assert.Equal(t, "5", gotLimit)
	assert.Equal(t, httpx.DefaultUserAgent, gotUA)
}

func TestNewProvider_RateLimited(t *testing.T) {
	t.Parallel()

	cfg := config.Default().IEX
	cfg.MaxRequestsPerMinute = 30

	p, err := NewProvider(cfg, httpx.New(), zerolog.Nop())
	require.NoError(t, err)

	assert.IsType(t, &ratelimit.Provider{}, p)
}

func TestNewProvider_Unlimited(t *testing.T) {
	t.Parallel()

	p, err := NewProvider(config.Default().IEX, httpx.New(), zerolog.Nop())
	require.NoError(t, err)

	_, limited := p.(*ratelimit.Provider)
	assert.False(t, limited)
}
