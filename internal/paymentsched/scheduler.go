// Package paymentsched executes due recurring payments on a fixed interval.
package paymentsched

import (
	"context"
	"time"

	"github.com/bpnbank/bpn-bank/internal/domain"
	"github.com/rs/zerolog"
)

// Ledger provides the ledger service interface needed by the scheduler.
//
//go:generate mockgen -source scheduler.go -destination scheduler_mock.go -package paymentsched
type Ledger interface {
	DueRecurring(ctx context.Context, now time.Time) ([]domain.DuePayment, error)
	RunRecurring(ctx context.Context, owner string, ruleIndex int, now time.Time) error
}

// Scheduler scans all recurring payment rules and triggers the due ones
// through the ledger. A failed execution is logged and the rule stays
// due for the next tick; scheduler failures never stop the loop.
type Scheduler struct {
	ledger Ledger
}

// New returns a payment scheduler driving the given ledger.
func New(ledger Ledger) *Scheduler {
	return &Scheduler{ledger: ledger}
}

// RunTick executes every rule due at the given time, once each.
func (s *Scheduler) RunTick(ctx context.Context, now time.Time) {
	l := zerolog.Ctx(ctx)

	due, err := s.ledger.DueRecurring(ctx, now)
	if err != nil {
		l.Error().Err(err).Msg("recurring payment scan failed")
		return
	}

	for _, payment := range due {
		err := s.ledger.RunRecurring(ctx, payment.Owner, payment.RuleIndex, now)
		if err != nil {
			l.Warn().
				Err(err).
				Str("owner", payment.Owner).
				Int("rule_index", payment.RuleIndex).
				Msg("recurring payment failed, will retry next tick")
		}
	}
}

// Tick runs RunTick with the current wall clock. It is the form
// registered on the background runner.
func (s *Scheduler) Tick(ctx context.Context) {
	s.RunTick(ctx, time.Now())
}
