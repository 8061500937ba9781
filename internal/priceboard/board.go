// Package priceboard manages current prices of all tracked instruments.
package priceboard

import (
	"sync"

	"github.com/bpnbank/bpn-bank/internal/domain"
	"github.com/bpnbank/bpn-bank/pkg/instrumentpkg"
)

// Board holds the current price for every tracked symbol. The symbol set
// is fixed at construction; prices are updated in place forever and never
// drop below 1.
type Board struct {
	mu     sync.RWMutex
	prices map[string]int64
}

// New returns a price board seeded with the initial prices of all
// tracked symbols.
func New() *Board {
	return NewWithPrices(instrumentpkg.InitialPrices)
}

// NewWithPrices returns a price board seeded with the given prices.
func NewWithPrices(initial map[string]int64) *Board {
	prices := make(map[string]int64, len(initial))
	for symbol, price := range initial {
		if price < 1 {
			price = 1
		}

		prices[symbol] = price
	}

	return &Board{prices: prices}
}

// Quote returns the current price of the given symbol.
func (b *Board) Quote(symbol string) (int64, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	price, ok := b.prices[symbol]
	if !ok {
		return 0, domain.ErrUnknownInstrument
	}

	return price, nil
}

// Quotes returns a copy of all current prices.
func (b *Board) Quotes() map[string]int64 {
	b.mu.RLock()
	defer b.mu.RUnlock()

	quotes := make(map[string]int64, len(b.prices))
	for symbol, price := range b.prices {
		quotes[symbol] = price
	}

	return quotes
}

// Nudge shifts the price of the given symbol by delta, clamped to a
// floor of 1, and returns the new price.
func (b *Board) Nudge(symbol string, delta int64) (int64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	price, ok := b.prices[symbol]
	if !ok {
		return 0, domain.ErrUnknownInstrument
	}

	price += delta
	if price < 1 {
		price = 1
	}

	b.prices[symbol] = price

	return price, nil
}
