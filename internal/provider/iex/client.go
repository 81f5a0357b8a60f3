package iex

import (
	"net/http"
	"net/url"
	"time"
)

const (
	// DefaultBaseURL is the IEX Cloud sandbox API root.
	DefaultBaseURL = "https://sandbox.iexapis.com/stable"
	// DefaultLogoBaseURL serves <symbol>.png company logos.
	DefaultLogoBaseURL = "https://storage.googleapis.com/iex/api/logos"
	// DefaultListLimit is the number of companies requested from the most-active list.
	DefaultListLimit = 20
	// DefaultTimeout bounds every request issued by the client.
	DefaultTimeout = 2 * time.Second
)

// HTTPClient describes an HTTP client.
//
//go:generate mockgen -package=iex_test -destination=mock_http_client_test.go -source=client.go HTTPClient
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is a client for the IEX Cloud stock API.
type Client struct {
	// baseURL is the base URL for the API.
	baseURL string
	// logoBaseURL is the base URL for logo images.
	logoBaseURL string
	// httpClient is the HTTP client.
	httpClient HTTPClient
	// header contains additional headers to be sent with each request.
	header http.Header
	// query contains additional query parameters to be sent with each API request.
	query url.Values
	// listLimit is the listLimit parameter of the most-active list.
	listLimit int
	// timeout bounds each request.
	timeout time.Duration
}

// ClientOption is a configuration option for the IEX client.
type ClientOption func(*Client)

// WithBaseURL sets the base URL for the API.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithLogoBaseURL sets the base URL for logo images.
func WithLogoBaseURL(logoBaseURL string) ClientOption {
	return func(c *Client) {
		c.logoBaseURL = logoBaseURL
	}
}

// WithHTTPClient sets the HTTP client for the API.
func WithHTTPClient(httpClient HTTPClient) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithHeader sets additional headers to be sent with each request.
func WithHeader(header http.Header) ClientOption {
	return func(c *Client) {
		for key, values := range header {
			for _, value := range values {
				c.header.Add(key, value)
			}
		}
	}
}

// WithListLimit sets the number of companies requested by MostActive.
func WithListLimit(n int) ClientOption {
	return func(c *Client) {
		if n > 0 {
			c.listLimit = n
		}
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// NewClient creates a new IEX client. token may be empty for endpoints that
// do not require it.
func NewClient(token string, options ...ClientOption) (*Client, error) {
	var client = &Client{
		baseURL:     DefaultBaseURL,
		logoBaseURL: DefaultLogoBaseURL,
		httpClient:  http.DefaultClient,
		header:      http.Header{},
		query:       url.Values{},
		listLimit:   DefaultListLimit,
		timeout:     DefaultTimeout,
	}
	if token != "" {
		// https://iexcloud.io/docs/api/#authentication
		client.query.Add("token", token)
	}
	for _, option := range options {
		option(client)
	}
	return client, nil
}

// clone returns a copy of c with opts applied, for per-call overrides.
func (c *Client) clone(opts []ClientOption) *Client {
	var override = &Client{
		baseURL:     c.baseURL,
		logoBaseURL: c.logoBaseURL,
		httpClient:  c.httpClient,
		header:      c.header.Clone(),
		query:       c.query,
		listLimit:   c.listLimit,
		timeout:     c.timeout,
	}
	for _, opt := range opts {
		opt(override)
	}
	return override
}
