package postgres

import (
	"context"
	"database/sql"

	"github.com/wagerworks/ecosim/internal/infra/pgutils"
	"github.com/wagerworks/ecosim/internal/repos/accounts"
	pgledger "github.com/wagerworks/ecosim/internal/repos/ledger/postgres"
)

func (r *accountsRepo) Mutate(ctx context.Context, id uint64, fn accounts.Mutator) (accounts.Account, error) {
	var out accounts.Account

	err := pgutils.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		acc, err := scanAccount(tx.QueryRow(selectForUpdateSQL, id))
		if err != nil {
			return err
		}

		recs, err := fn(&acc)
		if err != nil {
			return err
		}

		if acc.Balance < 0 {
			return accounts.ErrNegativeBalance
		}

		err = updateAccount(tx, &acc)
		if err != nil {
			return err
		}

		err = pgledger.InsertTx(tx, recs...)
		if err != nil {
			return err
		}

		out = acc

		return nil
	})
	if err != nil {
		return accounts.Account{}, err
	}

	return out, nil
}

func (r *accountsRepo) MutatePair(ctx context.Context, idA, idB uint64, fn accounts.PairMutator) error {
	if idA == idB {
		return accounts.ErrSameAccount
	}

	// Lock rows in ascending-ID order so a concurrent mutation of the
	// reversed pair cannot deadlock.
	first, second := idA, idB
	if second < first {
		first, second = second, first
	}

	err := pgutils.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		firstAcc, err := scanAccount(tx.QueryRow(selectForUpdateSQL, first))
		if err != nil {
			return err
		}
		secondAcc, err := scanAccount(tx.QueryRow(selectForUpdateSQL, second))
		if err != nil {
			return err
		}

		a, b := &firstAcc, &secondAcc
		if firstAcc.ID != idA {
			a, b = &secondAcc, &firstAcc
		}

		recs, err := fn(a, b)
		if err != nil {
			return err
		}

		if a.Balance < 0 || b.Balance < 0 {
			return accounts.ErrNegativeBalance
		}

		err = updateAccount(tx, a)
		if err != nil {
			return err
		}
		err = updateAccount(tx, b)
		if err != nil {
			return err
		}

		return pgledger.InsertTx(tx, recs...)
	})

	return err
}
