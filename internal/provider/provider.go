package provider

import (
	"context"
	"errors"
)

// Error kinds reported by every Provider operation. Concrete errors wrap one
// of these, so callers classify with errors.Is.
var (
	// ErrNetwork covers transport failures, timeouts, non-200 statuses and
	// empty bodies.
	ErrNetwork = errors.New("network error")
	// ErrMalformedResponse covers invalid JSON and missing or mistyped fields.
	ErrMalformedResponse = errors.New("malformed response")
)

// Kind returns the sentinel error kind wrapped by err, or nil if err is
// neither a network nor a malformed-response error.
func Kind(err error) error {
	switch {
	case errors.Is(err, ErrNetwork):
		return ErrNetwork
	case errors.Is(err, ErrMalformedResponse):
		return ErrMalformedResponse
	}
	return nil
}

// Quote is the latest traded price and price change of a single company.
type Quote struct {
	CompanyName string  `json:"companyName"`
	Symbol      string  `json:"symbol"`
	LatestPrice float64 `json:"latestPrice"`
	Change      float64 `json:"change"`
}

// Logo holds raw image bytes for a symbol. Logos are never cached.
type Logo struct {
	Symbol string
	Data   []byte
}

// Provider loads the company directory and fetches quotes and logos.
// All operations are read-only and idempotent.
type Provider interface {
	Name() string
	LoadDirectory(ctx context.Context) (*Directory, error)
	FetchQuote(ctx context.Context, symbol string) (Quote, error)
	FetchLogo(ctx context.Context, symbol string) (Logo, error)
}
