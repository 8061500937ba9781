// Package userservice manages business logic layer of users.
package userservice

import (
	"context"
	"time"

	"github.com/bpnbank/bpn-bank/internal/domain"
	"github.com/bpnbank/bpn-bank/pkg/errorspkg"
	"github.com/bpnbank/bpn-bank/pkg/instrumentpkg"
	"github.com/bpnbank/bpn-bank/pkg/passpkg"
	"github.com/rs/zerolog"
)

// Store provides the account state access layer needed by the user service.
type Store interface {
	Update(ctx context.Context, fn func(accounts map[string]*domain.Account) error) error
	View(ctx context.Context, fn func(accounts map[string]*domain.Account) error) error
}

// Service facilitates user service layer logic.
type Service struct {
	store Store
}

// New return user service struct to manage user bussines logic.
func New(store Store) *Service {
	return &Service{store: store}
}

func newAccount(username, hashedPassword string, role domain.Role) domain.Account {
	holdings := make(map[string]int64, len(instrumentpkg.TrackedSymbols))
	for _, symbol := range instrumentpkg.TrackedSymbols {
		holdings[symbol] = 0
	}

	return domain.Account{
		Username:          username,
		HashedPassword:    hashedPassword,
		Role:              role,
		Balance:           0,
		Holdings:          holdings,
		RecurringPayments: []domain.RecurringPayment{},
		History:           []domain.Transaction{},
		CreatedAt:         time.Now(),
	}
}

func hasFounder(accounts map[string]*domain.Account) bool {
	for _, a := range accounts {
		if a.Role == domain.RoleFounder {
			return true
		}
	}

	return false
}

// LoginOrCreate authenticates the user, creating the account on the
// first successful authentication of a new username. The first account
// requesting the founder role becomes the founder; once a founder
// exists, later founder requests are created as regular accounts
// because exactly one founder may exist. The returned bool reports
// whether the account was created.
func (s *Service) LoginOrCreate(ctx context.Context, username, password string, role domain.Role) (domain.AccountWithoutPassword, bool, error) {
	l := zerolog.Ctx(ctx)

	var (
		existing domain.Account
		found    bool
	)

	err := s.store.View(ctx, func(accounts map[string]*domain.Account) error {
		if a, ok := accounts[username]; ok {
			existing = a.Clone()
			found = true
		}

		return nil
	})
	if err != nil {
		return domain.AccountWithoutPassword{}, false, err
	}

	if found {
		if err := passpkg.Check(password, existing.HashedPassword); err != nil {
			l.Warn().Str("username", username).Msg("login with wrong password")
			return domain.AccountWithoutPassword{}, false, domain.ErrWrongPassword
		}

		return existing.WithoutPassword(), false, nil
	}

	hashedPassword, err := passpkg.Hash(password)
	if err != nil {
		l.Error().Err(err).Send()
		return domain.AccountWithoutPassword{}, false, errorspkg.ErrInternal
	}

	switch role {
	case domain.RoleFounder, domain.RoleMerchant, domain.RoleRegular:
	default:
		role = domain.RoleRegular
	}

	var (
		created       domain.Account
		wasCreated    bool
		wrongPassword bool
	)

	err = s.store.Update(ctx, func(accounts map[string]*domain.Account) error {
		// Another request may have created the username between the
		// view and this transaction.
		if a, ok := accounts[username]; ok {
			if err := passpkg.Check(password, a.HashedPassword); err != nil {
				wrongPassword = true
				return domain.ErrWrongPassword
			}

			created = a.Clone()

			return nil
		}

		if role == domain.RoleFounder && hasFounder(accounts) {
			role = domain.RoleRegular
		}

		a := newAccount(username, hashedPassword, role)
		accounts[username] = &a

		created = a.Clone()
		wasCreated = true

		return nil
	})
	if err != nil {
		if wrongPassword {
			l.Warn().Str("username", username).Msg("login with wrong password")
		}

		return domain.AccountWithoutPassword{}, false, err
	}

	return created.WithoutPassword(), wasCreated, nil
}
