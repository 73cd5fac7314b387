// Package market fetches current coin prices from a remote price feed.
package market

import (
	"context"

	"github.com/coinfolio/portfolio-tracker/internal/domain"
)

// Provider fetches current price quotes for a set of coin symbols.
type Provider interface {
	// Name returns a short identifier for logging.
	Name() string
	// Fetch returns one quote per symbol the feed knows about. Symbols the
	// feed cannot price are simply absent from the result.
	Fetch(ctx context.Context, symbols []string) ([]domain.Quote, error)
}
