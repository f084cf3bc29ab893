// Package postgres is the durable ledger backend.
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/wagerworks/ecosim/internal/repos/ledger"
)

var _ ledger.Store = (*ledgerRepo)(nil)

type ledgerRepo struct{ db *sql.DB }

func New(db *sql.DB) *ledgerRepo {
	return &ledgerRepo{db: db}
}

func (r *ledgerRepo) Append(ctx context.Context, recs ...ledger.Record) error {
	for _, rec := range recs {
		_, err := r.db.ExecContext(ctx, insertSQL,
			rec.ID, rec.AccountID, rec.Category, rec.Amount, rec.CounterpartID, rec.Description, rec.At)
		if err != nil {
			return fmt.Errorf("append record: %w", err)
		}
	}

	return nil
}

func (r *ledgerRepo) ListRecent(ctx context.Context, accountID uint64, limit int) ([]ledger.Record, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, account_id, category, amount, counterpart_id, description, at
		FROM transaction_records
		WHERE account_id = $1
		ORDER BY at DESC
		LIMIT $2
	`, accountID, limit)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()

	var out []ledger.Record
	for rows.Next() {
		var rec ledger.Record
		err = rows.Scan(&rec.ID, &rec.AccountID, &rec.Category, &rec.Amount, &rec.CounterpartID, &rec.Description, &rec.At)
		if err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}

		out = append(out, rec)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}

	return out, nil
}

const insertSQL = `
	INSERT INTO transaction_records (id, account_id, category, amount, counterpart_id, description, at)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
`

// InsertTx appends records inside an open transaction. The account store
// uses this so balance updates and their records commit as one unit.
func InsertTx(tx *sql.Tx, recs ...ledger.Record) error {
	for _, rec := range recs {
		_, err := tx.Exec(insertSQL,
			rec.ID, rec.AccountID, rec.Category, rec.Amount, rec.CounterpartID, rec.Description, rec.At)
		if err != nil {
			return fmt.Errorf("insert record: %w", err)
		}
	}

	return nil
}
