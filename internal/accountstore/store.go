// Package accountstore manages the in-memory account state and its
// write-through snapshot persistence.
package accountstore

import (
	"context"
	"sync"

	"github.com/bpnbank/bpn-bank/internal/domain"
	"github.com/rs/zerolog"
)

// Snapshotter provides the persistence layer interface needed by the account store.
//
//go:generate mockgen -source store.go -destination store_mock.go -package accountstore
type Snapshotter interface {
	Load(ctx context.Context) (map[string]domain.Account, error)
	Save(ctx context.Context, accounts map[string]domain.Account) error
}

// Store owns the username to account mapping. All access goes through
// Update and View so that every read-modify-write of any number of
// accounts happens under a single mutual exclusion scope.
type Store struct {
	mu        sync.RWMutex
	accounts  map[string]*domain.Account
	snapshots Snapshotter
}

// New returns a store populated from the latest snapshot.
func New(ctx context.Context, snapshots Snapshotter) (*Store, error) {
	loaded, err := snapshots.Load(ctx)
	if err != nil {
		return nil, err
	}

	accounts := make(map[string]*domain.Account, len(loaded))

	for username, account := range loaded {
		a := account.Clone()
		accounts[username] = &a
	}

	return &Store{
		accounts:  accounts,
		snapshots: snapshots,
	}, nil
}

// Update executes fn within a store transaction. fn receives a deep copy
// of all accounts; the copy replaces the live state only if fn returns
// nil, so a failed operation leaves no partial mutation behind. Every
// commit is written through to the snapshotter; a failed save is
// reported as domain.ErrPersistenceFailure while the in-memory commit
// stands, so a crash loses at most the unsaved suffix of operations.
func (s *Store) Update(ctx context.Context, fn func(accounts map[string]*domain.Account) error) error {
	l := zerolog.Ctx(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	scratch := make(map[string]*domain.Account, len(s.accounts))

	for username, account := range s.accounts {
		a := account.Clone()
		scratch[username] = &a
	}

	if err := fn(scratch); err != nil {
		return err
	}

	s.accounts = scratch

	if err := s.snapshots.Save(ctx, snapshotView(scratch)); err != nil {
		l.Error().Err(err).Msg("account snapshot save failed")
		return domain.ErrPersistenceFailure
	}

	return nil
}

// View executes fn under a read lock. fn must not mutate the accounts
// nor retain references to them after returning.
func (s *Store) View(ctx context.Context, fn func(accounts map[string]*domain.Account) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return fn(s.accounts)
}

func snapshotView(accounts map[string]*domain.Account) map[string]domain.Account {
	view := make(map[string]domain.Account, len(accounts))

	for username, account := range accounts {
		view[username] = *account
	}

	return view
}
