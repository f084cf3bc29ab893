package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/wagerworks/ecosim/internal/infra/pgutils"
	"github.com/wagerworks/ecosim/internal/repos/accounts"
	"github.com/wagerworks/ecosim/internal/repos/ledger"
	pgledger "github.com/wagerworks/ecosim/internal/repos/ledger/postgres"
)

func (r *accountsRepo) Create(ctx context.Context, id uint64, balance int64, recs ...ledger.Record) (accounts.Account, error) {
	acc := accounts.NewAccount(id, balance)

	e, err := encodeAccount(&acc)
	if err != nil {
		return accounts.Account{}, err
	}

	err = pgutils.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO accounts (id, balance, vault, level, experience,
			                      inventory, achievements, game_stats, cooldowns)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`, acc.ID, acc.Balance, acc.Vault, acc.Level, acc.Experience,
			e.inventory, e.achievements, e.stats, e.cooldowns)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
				return accounts.ErrAlreadyExists
			}

			return fmt.Errorf("insert account: %w", err)
		}

		return pgledger.InsertTx(tx, recs...)
	})
	if err != nil {
		return accounts.Account{}, err
	}

	return acc, nil
}
