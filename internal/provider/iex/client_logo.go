package iex

import (
	"context"
	"fmt"
	"net/url"
)

// LogoPath returns the request path of the logo for symbol.
// Logo names are case-sensitive, so the symbol is used as given.
func LogoPath(symbol string) string {
	return "/" + url.PathEscape(symbol) + ".png"
}

// Logo retrieves the raw PNG bytes of the company logo for symbol.
// The API token is not sent to the logo host.
func (c *Client) Logo(ctx context.Context, symbol string, opts ...ClientOption) ([]byte, error) {
	override := c.clone(opts)

	endpoint := fmt.Sprintf("%s%s", override.logoBaseURL, LogoPath(symbol))
	return override.get(ctx, endpoint)
}
