// Package instrumentpkg provides common instrument related functionality for apps.
package instrumentpkg

// Constants for all tracked instrument symbols.
const (
	BTC = "BTC"
	ETH = "ETH"
	LTC = "LTC"
	CNC = "CNC"
)

// TrackedSymbols holds all the tracked instrument symbols. The set is
// fixed at process start.
var TrackedSymbols = []string{
	BTC,
	ETH,
	LTC,
	CNC,
}

// InitialPrices holds the starting price for every tracked symbol.
var InitialPrices = map[string]int64{
	BTC: 20000,
	ETH: 1500,
	LTC: 80,
	CNC: 100,
}

// IsTracked returns true if the symbol is tracked.
func IsTracked(symbol string) bool {
	for _, s := range TrackedSymbols {
		if s == symbol {
			return true
		}
	}

	return false
}

// IsEquity returns true for equity-like instruments. Equity-like
// instruments never get a price nudge on trade.
func IsEquity(symbol string) bool {
	return symbol == CNC
}
