package iexadapter

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitriykara/StocksApp/internal/provider"
	"github.com/dmitriykara/StocksApp/internal/provider/iex"
)

func newTestAdapter(t *testing.T, handler http.Handler, logBuf *bytes.Buffer) *Adapter {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := iex.NewClient("token", iex.WithBaseURL(server.URL), iex.WithLogoBaseURL(server.URL))
	require.NoError(t, err)

	log := zerolog.New(nil).Level(zerolog.Disabled)
	if logBuf != nil {
		log = zerolog.New(logBuf)
	}
	return New(Config{}, client, log)
}

func TestLoadDirectory_DuplicatesCollapse(t *testing.T) {
	t.Parallel()

	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[
			{"companyName":"Alphabet Inc.","symbol":"GOOGL"},
			{"companyName":"Apple Inc.","symbol":"AAPL"},
			{"companyName":"Alphabet Inc.","symbol":"GOOG"}
		]`))
	}), nil)

	dir, err := a.LoadDirectory(t.Context())
	require.NoError(t, err)

	assert.Equal(t, "IEX", a.Name())
	assert.Equal(t, 2, dir.Len())
	assert.Equal(t, []string{"Alphabet Inc.", "Apple Inc."}, dir.Names())
	sym, ok := dir.Symbol("Alphabet Inc.")
	require.True(t, ok)
	assert.Equal(t, "GOOG", sym)
}

func TestLoadDirectory_MalformedReturnsNoDirectory(t *testing.T) {
	t.Parallel()

	var logBuf bytes.Buffer
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"companyName":"Apple Inc.","symbol":"AAPL"},{"symbol":"MSFT"}]`))
	}), &logBuf)

	dir, err := a.LoadDirectory(t.Context())

	require.ErrorIs(t, err, provider.ErrMalformedResponse)
	require.Nil(t, dir)
	assert.Contains(t, logBuf.String(), `"kind":"malformed response"`)
	assert.Contains(t, logBuf.String(), `"op":"load directory"`)
}

func TestFetchQuote(t *testing.T) {
	t.Parallel()

	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/stock/aapl/batch", r.URL.Path)
		_, _ = w.Write([]byte(`{"quote":{"companyName":"Apple Inc.","symbol":"AAPL","latestPrice":150.25,"change":-1.5}}`))
	}), nil)

	q, err := a.FetchQuote(t.Context(), "AAPL")
	require.NoError(t, err)
	assert.Equal(t, provider.Quote{CompanyName: "Apple Inc.", Symbol: "AAPL", LatestPrice: 150.25, Change: -1.5}, q)
}

func TestFetchLogo_ErrorIsLogged(t *testing.T) {
	t.Parallel()

	var logBuf bytes.Buffer
	a := newTestAdapter(t, http.NotFoundHandler(), &logBuf)

	logo, err := a.FetchLogo(t.Context(), "ZZZZ")

	require.ErrorIs(t, err, provider.ErrNetwork)
	assert.Empty(t, logo.Data)
	assert.Contains(t, logBuf.String(), `"symbol":"ZZZZ"`)
	assert.Contains(t, logBuf.String(), `"kind":"network error"`)
}

func TestFetchLogo(t *testing.T) {
	t.Parallel()

	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/MSFT.png", r.URL.Path)
		_, _ = w.Write([]byte{1, 2, 3})
	}), nil)

	logo, err := a.FetchLogo(t.Context(), "MSFT")
	require.NoError(t, err)
	assert.Equal(t, provider.Logo{Symbol: "MSFT", Data: []byte{1, 2, 3}}, logo)
}
