package snapshotrepo

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/bpnbank/bpn-bank/internal/domain"
	"github.com/bpnbank/bpn-bank/pkg/dbpkg"
	"github.com/rs/zerolog"
)

// RepoPGS persists the full account snapshot as a single JSON document
// in a postgres table.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns snapshot RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{db: db}
}

const createTableQuery = `
CREATE TABLE IF NOT EXISTS account_snapshots (
    id integer PRIMARY KEY CHECK (id = 1),
    data jsonb NOT NULL,
    updated_at timestamptz NOT NULL DEFAULT now()
)
`

// Init creates the snapshot table if it does not exist.
func (r *RepoPGS) Init(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, createTableQuery)
	return err
}

const loadQuery = `
SELECT data FROM account_snapshots WHERE id = 1
`

// Load reads the latest snapshot. A missing row is not an error: the
// process starts with no accounts.
func (r *RepoPGS) Load(ctx context.Context) (map[string]domain.Account, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, loadQuery)

	var data []byte

	err := row.Scan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return map[string]domain.Account{}, nil
		}

		l.Error().Err(err).Send()

		return nil, err
	}

	var accounts map[string]domain.Account
	if err := json.Unmarshal(data, &accounts); err != nil {
		l.Error().Err(err).Send()
		return nil, err
	}

	if accounts == nil {
		accounts = map[string]domain.Account{}
	}

	return accounts, nil
}

const saveQuery = `
INSERT INTO account_snapshots (id, data, updated_at)
VALUES (1, $1, now())
ON CONFLICT (id) DO UPDATE SET data = EXCLUDED.data, updated_at = now()
`

// Save upserts the snapshot row.
func (r *RepoPGS) Save(ctx context.Context, accounts map[string]domain.Account) error {
	l := zerolog.Ctx(ctx)

	data, err := json.Marshal(accounts)
	if err != nil {
		l.Error().Err(err).Send()
		return err
	}

	if _, err := r.db.ExecContext(ctx, saveQuery, data); err != nil {
		l.Error().Err(err).Send()
		return err
	}

	return nil
}
