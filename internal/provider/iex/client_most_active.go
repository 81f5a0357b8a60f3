package iex

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"strconv"

	"github.com/dmitriykara/StocksApp/internal/provider"
)

// ListEntry is a single element of a market list.
type ListEntry struct {
	CompanyName string
	Symbol      string
}

// MostActive retrieves the most active companies, in response order.
// Either every element is valid or an error is returned.
func (c *Client) MostActive(ctx context.Context, opts ...ClientOption) ([]ListEntry, error) {
	override := c.clone(opts)

	query := maps.Clone(override.query)
	query.Set("listLimit", strconv.Itoa(override.listLimit))

	url := fmt.Sprintf("%s/stock/market/list/mostactive?%s", override.baseURL, query.Encode())
	body, err := override.get(ctx, url)
	if err != nil {
		return nil, err
	}

	var raw any
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("%w: decoding list response: %w", provider.ErrMalformedResponse, err)
	}

	// [
	//   {"symbol": "AAPL", "companyName": "Apple Inc.", "latestPrice": 150.25, ...},
	//   ...
	// ]
	list, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: list response: unexpected type: %T", provider.ErrMalformedResponse, raw)
	}

	entries := make([]ListEntry, 0, len(list))
	for i, rawItem := range list {
		item, ok := rawItem.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: list element %d: unexpected type: %T", provider.ErrMalformedResponse, i, rawItem)
		}

		name, err := requireValue[string](item, "companyName")
		if err != nil {
			return nil, fmt.Errorf("%w: list element %d: %w", provider.ErrMalformedResponse, i, err)
		}

		symbol, err := requireValue[string](item, "symbol")
		if err != nil {
			return nil, fmt.Errorf("%w: list element %d: %w", provider.ErrMalformedResponse, i, err)
		}

		entries = append(entries, ListEntry{CompanyName: name, Symbol: symbol})
	}

	return entries, nil
}
