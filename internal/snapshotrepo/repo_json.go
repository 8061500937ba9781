// Package snapshotrepo manages repository layer of account snapshots.
package snapshotrepo

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bpnbank/bpn-bank/internal/domain"
	"github.com/rs/zerolog"
)

// RepoJSON persists the full account snapshot as a single JSON document
// on disk.
type RepoJSON struct {
	path string
}

// NewRepoJSON returns snapshot RepoJSON writing to the given path.
func NewRepoJSON(path string) *RepoJSON {
	return &RepoJSON{path: path}
}

// Load reads the latest snapshot. A missing file is not an error: the
// process starts with no accounts.
func (r *RepoJSON) Load(ctx context.Context) (map[string]domain.Account, error) {
	l := zerolog.Ctx(ctx)

	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]domain.Account{}, nil
		}

		l.Error().Err(err).Str("path", r.path).Send()

		return nil, err
	}

	var accounts map[string]domain.Account
	if err := json.Unmarshal(data, &accounts); err != nil {
		l.Error().Err(err).Str("path", r.path).Send()
		return nil, err
	}

	if accounts == nil {
		accounts = map[string]domain.Account{}
	}

	return accounts, nil
}

// Save writes the snapshot to a temporary file and renames it over the
// target so a crash mid-write never corrupts the previous snapshot.
func (r *RepoJSON) Save(ctx context.Context, accounts map[string]domain.Account) error {
	l := zerolog.Ctx(ctx)

	data, err := json.MarshalIndent(accounts, "", "  ")
	if err != nil {
		l.Error().Err(err).Send()
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.path), filepath.Base(r.path)+".tmp-*")
	if err != nil {
		l.Error().Err(err).Send()
		return err
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		l.Error().Err(err).Send()

		return err
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		l.Error().Err(err).Send()

		return err
	}

	if err := os.Rename(tmp.Name(), r.path); err != nil {
		os.Remove(tmp.Name())
		l.Error().Err(err).Send()

		return err
	}

	return nil
}
