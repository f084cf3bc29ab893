// Package postgres is the durable account backend. Per-account
// serialization is the row lock: every mutation selects the account row FOR
// UPDATE inside one transaction and commits the new state together with its
// ledger records.
package postgres

import (
	"database/sql"

	"github.com/wagerworks/ecosim/internal/repos/accounts"
)

var _ accounts.Accounts = (*accountsRepo)(nil)

type accountsRepo struct{ db *sql.DB }

func New(db *sql.DB) *accountsRepo {
	return &accountsRepo{db: db}
}
