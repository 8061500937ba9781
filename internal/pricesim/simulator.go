// Package pricesim perturbs instrument prices on a fixed interval.
package pricesim

import (
	"context"

	"github.com/bpnbank/bpn-bank/pkg/randompkg"
	"github.com/rs/zerolog"
)

// Board provides the price board access needed by the simulator.
type Board interface {
	Quotes() map[string]int64
	Nudge(symbol string, delta int64) (int64, error)
}

// Config holds the random walk policy.
type Config struct {
	// UpProbability is the chance of an upward step per symbol per tick.
	UpProbability float64
	// MaxStep is the largest price step in either direction.
	MaxStep int64
}

// Simulator drives a bounded random walk over every tracked symbol.
// It holds no state of its own beyond the policy: a restart of the
// process is the only way to restart the walk.
type Simulator struct {
	board  Board
	config Config
}

// New returns a price simulator for the given board.
func New(board Board, config Config) *Simulator {
	if config.UpProbability <= 0 || config.UpProbability >= 1 {
		config.UpProbability = 0.75
	}

	if config.MaxStep <= 0 {
		config.MaxStep = 5
	}

	return &Simulator{
		board:  board,
		config: config,
	}
}

// Tick draws an independent perturbation for every tracked symbol and
// applies it to the board. The board clamps every price to a floor of 1.
func (s *Simulator) Tick(ctx context.Context) {
	l := zerolog.Ctx(ctx)

	for symbol := range s.board.Quotes() {
		step := randompkg.Int64Between(1, s.config.MaxStep)

		if randompkg.Float64() >= s.config.UpProbability {
			step = -step
		}

		if _, err := s.board.Nudge(symbol, step); err != nil {
			l.Error().Err(err).Str("symbol", symbol).Msg("price tick failed")
		}
	}
}
