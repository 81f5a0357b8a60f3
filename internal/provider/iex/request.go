package iex

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/dmitriykara/StocksApp/internal/provider"
)

// maxBodyBytes caps how much of a response body is read.
const maxBodyBytes = 8 << 20

// get performs a bounded GET and returns the body of a 200 response.
// Every failure is reported as provider.ErrNetwork.
func (c *Client) get(ctx context.Context, rawURL string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("%w: creating request: %w", provider.ErrNetwork, err)
	}
	req.Header = c.header.Clone()
	if req.Header == nil {
		req.Header = http.Header{}
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: performing request: %w", provider.ErrNetwork, err)
	}
	defer res.Body.Close()

	// The query string carries the token, so only the path is reported.
	switch res.StatusCode {
	case http.StatusOK:
		break

	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, fmt.Errorf("%w: GET %s: unauthorized (%d)", provider.ErrNetwork, req.URL.Path, res.StatusCode)

	case http.StatusNotFound:
		return nil, fmt.Errorf("%w: GET %s: not found", provider.ErrNetwork, req.URL.Path)

	case http.StatusTooManyRequests:
		return nil, fmt.Errorf("%w: GET %s: rate limited", provider.ErrNetwork, req.URL.Path)

	default:
		return nil, fmt.Errorf("%w: GET %s: unexpected status code: %d", provider.ErrNetwork, req.URL.Path, res.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(res.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %w", provider.ErrNetwork, err)
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("%w: GET %s: empty body", provider.ErrNetwork, req.URL.Path)
	}
	return body, nil
}

// requireValue returns data[key] as T, failing when the key is absent, null
// or of a different type.
func requireValue[T any](data map[string]any, key string) (T, error) {
	var zero T
	v, ok := data[key]
	if !ok || v == nil {
		return zero, fmt.Errorf("missing field %q", key)
	}
	t, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("field %q: unexpected type: %T", key, v)
	}
	return t, nil
}
