package time

import (
	"context"
	"sync"
	"time"

	"github.com/amirhossein-jamali/payment-api/internal/domain/port/core"
)

// RealTimeProvider implements the TimeProvider interface with the wall clock
type RealTimeProvider struct{}

// NewRealTimeProvider creates a new real time provider
func NewRealTimeProvider() *RealTimeProvider {
	return &RealTimeProvider{}
}

// Now returns the current UTC time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now().UTC()
}

func (p *RealTimeProvider) Since(t time.Time) core.Duration {
	return core.Duration(time.Since(t))
}

func (p *RealTimeProvider) Sleep(d core.Duration) {
	time.Sleep(d.Std())
}

func (p *RealTimeProvider) WithTimeout(ctx context.Context, timeout core.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout.Std())
}

// FixedTimeProvider returns a settable instant. Sleep advances it instead of blocking.
type FixedTimeProvider struct {
	mu  sync.Mutex
	now time.Time
}

// NewFixedTimeProvider creates a provider frozen at now
func NewFixedTimeProvider(now time.Time) *FixedTimeProvider {
	return &FixedTimeProvider{now: now}
}

// Now returns the frozen instant
func (p *FixedTimeProvider) Now() time.Time {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.now
}

// Advance moves the clock forward by d
func (p *FixedTimeProvider) Advance(d time.Duration) {
	p.mu.Lock()
	p.now = p.now.Add(d)
	p.mu.Unlock()
}

func (p *FixedTimeProvider) Since(t time.Time) core.Duration {
	return core.Duration(p.Now().Sub(t))
}

func (p *FixedTimeProvider) Sleep(d core.Duration) {
	p.Advance(d.Std())
}

func (p *FixedTimeProvider) WithTimeout(ctx context.Context, timeout core.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout.Std())
}
