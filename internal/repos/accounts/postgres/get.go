package postgres

import (
	"context"

	"github.com/wagerworks/ecosim/internal/repos/accounts"
)

func (r *accountsRepo) Get(ctx context.Context, id uint64) (accounts.Account, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, balance, vault, level, experience,
		       inventory, achievements, game_stats, cooldowns
		FROM accounts
		WHERE id = $1
	`, id)

	return scanAccount(row)
}
