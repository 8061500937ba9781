package domain

import (
	"errors"
	"time"
)

// ErrInvalidFrequency indicates an unrecognized recurring payment frequency.
var ErrInvalidFrequency = errors.New("invalid frequency")

// Frequency is how often a recurring payment is due.
type Frequency string

// Frequencies recognized by the payment scheduler.
const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

// Threshold returns the elapsed time after which a rule with this
// frequency becomes due.
func (f Frequency) Threshold() (time.Duration, error) {
	switch f {
	case FrequencyDaily:
		return 24 * time.Hour, nil
	case FrequencyWeekly:
		return 7 * 24 * time.Hour, nil
	case FrequencyMonthly:
		return 30 * 24 * time.Hour, nil
	}

	return 0, ErrInvalidFrequency
}

// RecurringPayment is one automatic payment rule. LastExecutedAt is
// stamped by the scheduler on every successful execution; a rule that
// missed several periods still executes only once per detection.
type RecurringPayment struct {
	Destination    string    `json:"destination"`
	Amount         int64     `json:"amount"`
	Frequency      Frequency `json:"frequency"`
	LastExecutedAt time.Time `json:"last_executed_at"`
}

// DuePayment identifies one recurring payment rule ready for execution.
type DuePayment struct {
	Owner     string `json:"owner"`
	RuleIndex int    `json:"rule_index"`
}

// Due reports whether the rule is due at the given time.
func (p RecurringPayment) Due(now time.Time) bool {
	threshold, err := p.Frequency.Threshold()
	if err != nil {
		return false
	}

	return now.Sub(p.LastExecutedAt) >= threshold
}
