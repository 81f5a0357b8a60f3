package iex

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"net/url"
	"strings"

	"github.com/dmitriykara/StocksApp/internal/provider"
)

// Quote represents the quote section of a batch response.
type Quote struct {
	CompanyName string
	Symbol      string
	LatestPrice float64
	Change      float64
}

// QuotePath returns the request path used for symbol. Symbols are
// lower-cased, so "aapl" and "AAPL" address the same resource.
func QuotePath(symbol string) string {
	return "/stock/" + url.PathEscape(strings.ToLower(symbol)) + "/batch"
}

// Quote retrieves the latest quote for symbol.
func (c *Client) Quote(ctx context.Context, symbol string, opts ...ClientOption) (*Quote, error) {
	override := c.clone(opts)

	query := maps.Clone(override.query)
	query.Set("types", "quote")

	endpoint := fmt.Sprintf("%s%s?%s", override.baseURL, QuotePath(symbol), query.Encode())
	body, err := override.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	var raw any
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("%w: decoding quote response: %w", provider.ErrMalformedResponse, err)
	}

	// {
	//   "quote": {
	//     "companyName": "Apple Inc.",
	//     "symbol": "AAPL",
	//     "latestPrice": 150.25,
	//     "change": -1.5,
	//     ...
	//   }
	// }
	root, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: quote response: unexpected type: %T", provider.ErrMalformedResponse, raw)
	}

	data, err := requireValue[map[string]any](root, "quote")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", provider.ErrMalformedResponse, err)
	}

	companyName, err := requireValue[string](data, "companyName")
	if err != nil {
		return nil, fmt.Errorf("%w: decoding companyName: %w", provider.ErrMalformedResponse, err)
	}

	sym, err := requireValue[string](data, "symbol")
	if err != nil {
		return nil, fmt.Errorf("%w: decoding symbol: %w", provider.ErrMalformedResponse, err)
	}

	price, err := requireValue[float64](data, "latestPrice")
	if err != nil {
		return nil, fmt.Errorf("%w: decoding latestPrice: %w", provider.ErrMalformedResponse, err)
	}

	change, err := requireValue[float64](data, "change")
	if err != nil {
		return nil, fmt.Errorf("%w: decoding change: %w", provider.ErrMalformedResponse, err)
	}

	return &Quote{
		CompanyName: companyName,
		Symbol:      sym,
		LatestPrice: price,
		Change:      change,
	}, nil
}
