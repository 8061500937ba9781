// Package ledgerservice manages business logic layer of the ledger.
//
// Every mutating operation runs as a single store transaction: all the
// accounts it touches are read, validated and written under one mutual
// exclusion scope, and exactly one transaction record is appended per
// affected account with the post-operation balance.
package ledgerservice

import (
	"context"
	"sort"
	"time"

	"github.com/bpnbank/bpn-bank/internal/domain"
	"github.com/bpnbank/bpn-bank/pkg/instrumentpkg"
	"github.com/bpnbank/bpn-bank/pkg/randompkg"
	"github.com/rs/zerolog"
)

// Store provides the account state access layer needed by the ledger service.
type Store interface {
	Update(ctx context.Context, fn func(accounts map[string]*domain.Account) error) error
	View(ctx context.Context, fn func(accounts map[string]*domain.Account) error) error
}

// Prices provides the price board access needed by the ledger service.
type Prices interface {
	Quote(symbol string) (int64, error)
	Nudge(symbol string, delta int64) (int64, error)
}

// Config holds the ledger behavior knobs.
type Config struct {
	// NudgePriceOnTrade makes Invest and Divest of non-equity
	// instruments shift the instrument price by a bounded random step.
	NudgePriceOnTrade bool
	// TradeNudgeBound is the maximum absolute price step per trade.
	TradeNudgeBound int64
}

// Service facilitates ledger service layer logic.
type Service struct {
	store  Store
	prices Prices
	config Config
}

// New returns ledger service struct to manage ledger bussines logic.
func New(store Store, prices Prices, config Config) *Service {
	if config.TradeNudgeBound <= 0 {
		config.TradeNudgeBound = 10
	}

	return &Service{
		store:  store,
		prices: prices,
		config: config,
	}
}

func appendRecord(a *domain.Account, kind domain.TransactionKind, counterparty string, amount int64, instrument string, at time.Time) {
	a.History = append(a.History, domain.Transaction{
		Kind:             kind,
		Counterparty:     counterparty,
		Amount:           amount,
		Instrument:       instrument,
		ResultingBalance: a.Balance,
		CreatedAt:        at,
	})
}

// Mint increases the founder's balance out of thin air. Only the
// founder account may mint.
func (s *Service) Mint(ctx context.Context, actor string, amount int64) (domain.Account, error) {
	var minted domain.Account

	err := s.store.Update(ctx, func(accounts map[string]*domain.Account) error {
		a, ok := accounts[actor]
		if !ok {
			return domain.ErrUnknownAccount
		}

		if a.Role != domain.RoleFounder {
			return domain.ErrUnauthorized
		}

		if amount <= 0 {
			return domain.ErrInvalidAmount
		}

		a.Balance += amount
		appendRecord(a, domain.KindMint, "", amount, "", time.Now())

		minted = a.Clone()

		return nil
	})
	if err != nil {
		return domain.Account{}, err
	}

	return minted, nil
}

func (s *Service) transfer(ctx context.Context, from, to string, amount int64, outKind, inKind domain.TransactionKind, requireMerchant bool) (domain.TransferResult, error) {
	var result domain.TransferResult

	err := s.store.Update(ctx, func(accounts map[string]*domain.Account) error {
		if amount <= 0 {
			return domain.ErrInvalidAmount
		}

		payer, ok := accounts[from]
		if !ok {
			return domain.ErrUnknownAccount
		}

		payee, ok := accounts[to]
		if !ok {
			return domain.ErrUnknownAccount
		}

		if requireMerchant && payee.Role != domain.RoleMerchant {
			return domain.ErrNotAMerchant
		}

		if payer.Balance < amount {
			return domain.ErrInsufficientFunds
		}

		now := time.Now()

		payer.Balance -= amount
		appendRecord(payer, outKind, to, amount, "", now)

		payee.Balance += amount
		appendRecord(payee, inKind, from, amount, "", now)

		result.From = payer.Clone()
		result.To = payee.Clone()

		return nil
	})
	if err != nil {
		return domain.TransferResult{}, err
	}

	return result, nil
}

// Transfer moves funds between two accounts.
func (s *Service) Transfer(ctx context.Context, from, to string, amount int64) (domain.TransferResult, error) {
	return s.transfer(ctx, from, to, amount, domain.KindTransferOut, domain.KindTransferIn, false)
}

// PayMerchant moves funds from a payer to a merchant account.
func (s *Service) PayMerchant(ctx context.Context, payer, merchant string, amount int64) (domain.TransferResult, error) {
	return s.transfer(ctx, payer, merchant, amount, domain.KindMerchantPayment, domain.KindMerchantReceipt, true)
}

func (s *Service) nudgeOnTrade(ctx context.Context, symbol string) {
	if !s.config.NudgePriceOnTrade || instrumentpkg.IsEquity(symbol) {
		return
	}

	delta := randompkg.Int64Between(-s.config.TradeNudgeBound, s.config.TradeNudgeBound)

	if _, err := s.prices.Nudge(symbol, delta); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("symbol", symbol).Send()
	}
}

// Invest buys quantity units of the instrument at the current price.
func (s *Service) Invest(ctx context.Context, actor, symbol string, quantity int64) (domain.TradeResult, error) {
	var result domain.TradeResult

	err := s.store.Update(ctx, func(accounts map[string]*domain.Account) error {
		if quantity <= 0 {
			return domain.ErrInvalidAmount
		}

		a, ok := accounts[actor]
		if !ok {
			return domain.ErrUnknownAccount
		}

		price, err := s.prices.Quote(symbol)
		if err != nil {
			return err
		}

		cost := price * quantity
		if a.Balance < cost {
			return domain.ErrInsufficientFunds
		}

		a.Balance -= cost
		a.Holdings[symbol] += quantity
		appendRecord(a, domain.KindInvest, "", cost, symbol, time.Now())

		s.nudgeOnTrade(ctx, symbol)

		result = domain.TradeResult{
			Account:  a.Clone(),
			Symbol:   symbol,
			Quantity: quantity,
			Price:    price,
			Total:    cost,
		}

		return nil
	})
	if err != nil {
		return domain.TradeResult{}, err
	}

	return result, nil
}

// Divest sells quantity units of the instrument at the current price.
func (s *Service) Divest(ctx context.Context, actor, symbol string, quantity int64) (domain.TradeResult, error) {
	var result domain.TradeResult

	err := s.store.Update(ctx, func(accounts map[string]*domain.Account) error {
		if quantity <= 0 {
			return domain.ErrInvalidAmount
		}

		a, ok := accounts[actor]
		if !ok {
			return domain.ErrUnknownAccount
		}

		price, err := s.prices.Quote(symbol)
		if err != nil {
			return err
		}

		if a.Holdings[symbol] < quantity {
			return domain.ErrInsufficientHoldings
		}

		proceeds := price * quantity

		a.Holdings[symbol] -= quantity
		a.Balance += proceeds
		appendRecord(a, domain.KindDivest, "", proceeds, symbol, time.Now())

		s.nudgeOnTrade(ctx, symbol)

		result = domain.TradeResult{
			Account:  a.Clone(),
			Symbol:   symbol,
			Quantity: quantity,
			Price:    price,
			Total:    proceeds,
		}

		return nil
	})
	if err != nil {
		return domain.TradeResult{}, err
	}

	return result, nil
}

// ScheduleRecurringPayment appends an automatic payment rule to the
// owner's account. The rule becomes due one frequency threshold from now.
func (s *Service) ScheduleRecurringPayment(ctx context.Context, owner, destination string, amount int64, frequency domain.Frequency) (domain.RecurringPayment, error) {
	var rule domain.RecurringPayment

	err := s.store.Update(ctx, func(accounts map[string]*domain.Account) error {
		if _, err := frequency.Threshold(); err != nil {
			return err
		}

		if amount <= 0 {
			return domain.ErrInvalidAmount
		}

		a, ok := accounts[owner]
		if !ok {
			return domain.ErrUnknownAccount
		}

		if _, ok := accounts[destination]; !ok {
			return domain.ErrUnknownAccount
		}

		rule = domain.RecurringPayment{
			Destination:    destination,
			Amount:         amount,
			Frequency:      frequency,
			LastExecutedAt: time.Now(),
		}

		a.RecurringPayments = append(a.RecurringPayments, rule)

		return nil
	})
	if err != nil {
		return domain.RecurringPayment{}, err
	}

	return rule, nil
}

// DueRecurring returns all recurring payment rules due at the given time.
func (s *Service) DueRecurring(ctx context.Context, now time.Time) ([]domain.DuePayment, error) {
	var due []domain.DuePayment

	err := s.store.View(ctx, func(accounts map[string]*domain.Account) error {
		for username, a := range accounts {
			for i, rule := range a.RecurringPayments {
				if rule.Due(now) {
					due = append(due, domain.DuePayment{Owner: username, RuleIndex: i})
				}
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(due, func(i, j int) bool {
		if due[i].Owner != due[j].Owner {
			return due[i].Owner < due[j].Owner
		}

		return due[i].RuleIndex < due[j].RuleIndex
	})

	return due, nil
}

// RunRecurring executes one due recurring payment rule. Dueness is
// revalidated inside the transaction so a rule executes only once per
// threshold crossing, with no catch-up for long-missed periods. On any
// failure the rule keeps its old LastExecutedAt and stays due for the
// next tick.
func (s *Service) RunRecurring(ctx context.Context, owner string, ruleIndex int, now time.Time) error {
	return s.store.Update(ctx, func(accounts map[string]*domain.Account) error {
		a, ok := accounts[owner]
		if !ok {
			return domain.ErrUnknownAccount
		}

		if ruleIndex < 0 || ruleIndex >= len(a.RecurringPayments) {
			return domain.ErrUnknownAccount
		}

		rule := &a.RecurringPayments[ruleIndex]
		if !rule.Due(now) {
			return nil
		}

		payee, ok := accounts[rule.Destination]
		if !ok {
			return domain.ErrUnknownAccount
		}

		if a.Balance < rule.Amount {
			return domain.ErrInsufficientFunds
		}

		a.Balance -= rule.Amount
		appendRecord(a, domain.KindAutomaticPaymentOut, rule.Destination, rule.Amount, "", now)

		payee.Balance += rule.Amount
		appendRecord(payee, domain.KindAutomaticPaymentIn, owner, rule.Amount, "", now)

		rule.LastExecutedAt = now

		return nil
	})
}

// Account returns a snapshot of the account with the given username.
func (s *Service) Account(ctx context.Context, username string) (domain.Account, error) {
	var account domain.Account

	err := s.store.View(ctx, func(accounts map[string]*domain.Account) error {
		a, ok := accounts[username]
		if !ok {
			return domain.ErrUnknownAccount
		}

		account = a.Clone()

		return nil
	})
	if err != nil {
		return domain.Account{}, err
	}

	return account, nil
}

// Overview returns all accounts without credential data, sorted by
// username. Intended for the founder-only admin view.
func (s *Service) Overview(ctx context.Context) ([]domain.AccountWithoutPassword, error) {
	var overview []domain.AccountWithoutPassword

	err := s.store.View(ctx, func(accounts map[string]*domain.Account) error {
		overview = make([]domain.AccountWithoutPassword, 0, len(accounts))

		for _, a := range accounts {
			overview = append(overview, a.WithoutPassword())
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(overview, func(i, j int) bool {
		return overview[i].Username < overview[j].Username
	})

	return overview, nil
}
