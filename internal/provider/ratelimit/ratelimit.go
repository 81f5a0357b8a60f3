package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/dmitriykara/StocksApp/internal/provider"
)

// Limiter blocks until the caller may issue one request.
type Limiter interface {
	Wait(ctx context.Context) error
}

// TokenBucket allows bursts up to capacity and refills at rate tokens/second.
type TokenBucket struct {
	rate     float64
	capacity float64

	mu     sync.Mutex
	tokens float64
	last   time.Time
	now    func() time.Time
}

func NewTokenBucket(tokensPerSecond float64, burst int) *TokenBucket {
	if tokensPerSecond <= 0 {
		tokensPerSecond = 0.0000001
	}
	if burst <= 0 {
		burst = 1
	}
	tb := &TokenBucket{
		rate:     tokensPerSecond,
		capacity: float64(burst),
		tokens:   float64(burst), // start full
		now:      time.Now,
	}
	tb.last = tb.now()
	return tb
}

// reserve takes a token if one is available, otherwise it reports how long
// until one will be.
func (tb *TokenBucket) reserve() time.Duration {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := tb.now()
	if elapsed := now.Sub(tb.last).Seconds(); elapsed > 0 {
		tb.tokens = min(tb.capacity, tb.tokens+elapsed*tb.rate)
		tb.last = now
	}
	if tb.tokens >= 1 {
		tb.tokens--
		return 0
	}
	wait := time.Duration((1 - tb.tokens) / tb.rate * float64(time.Second))
	return max(wait, time.Millisecond)
}

func (tb *TokenBucket) Wait(ctx context.Context) error {
	for {
		wait := tb.reserve()
		if wait == 0 {
			return nil
		}
		if err := sleep(ctx, wait); err != nil {
			return err
		}
	}
}

// MinInterval spaces consecutive requests at least Interval apart.
type MinInterval struct {
	Interval time.Duration

	mu   sync.Mutex
	next time.Time
}

func (m *MinInterval) Wait(ctx context.Context) error {
	if m.Interval <= 0 {
		return nil
	}
	m.mu.Lock()
	now := time.Now()
	slot := now
	if m.next.After(now) {
		slot = m.next
	}
	m.next = slot.Add(m.Interval)
	m.mu.Unlock()

	return sleep(ctx, time.Until(slot))
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Provider gates every call of the wrapped provider through L.
type Provider struct {
	P provider.Provider
	L Limiter
}

func (p *Provider) Name() string { return p.P.Name() }

func (p *Provider) LoadDirectory(ctx context.Context) (*provider.Directory, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	return p.P.LoadDirectory(ctx)
}

func (p *Provider) FetchQuote(ctx context.Context, symbol string) (provider.Quote, error) {
	if err := p.wait(ctx); err != nil {
		return provider.Quote{}, err
	}
	return p.P.FetchQuote(ctx, symbol)
}

func (p *Provider) FetchLogo(ctx context.Context, symbol string) (provider.Logo, error) {
	if err := p.wait(ctx); err != nil {
		return provider.Logo{}, err
	}
	return p.P.FetchLogo(ctx, symbol)
}

func (p *Provider) wait(ctx context.Context) error {
	if p.L == nil {
		return nil
	}
	return p.L.Wait(ctx)
}

// Wrap applies the limiter selected by the settings: a token bucket when
// maxPerMinute > 0, else a minimum interval when interval > 0, else nothing.
func Wrap(p provider.Provider, maxPerMinute, burst int, interval time.Duration) provider.Provider {
	switch {
	case maxPerMinute > 0:
		return &Provider{P: p, L: NewTokenBucket(float64(maxPerMinute)/60.0, burst)}
	case interval > 0:
		return &Provider{P: p, L: &MinInterval{Interval: interval}}
	}
	return p
}
