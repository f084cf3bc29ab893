package postgres

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/wagerworks/ecosim/internal/repos/accounts"
)

// The collection fields live in jsonb columns; row translates between the
// domain maps and their stored form.

type scanner interface {
	Scan(dest ...any) error
}

func scanAccount(s scanner) (accounts.Account, error) {
	var a accounts.Account

	var inventory, achievements, stats, cooldowns []byte

	err := s.Scan(&a.ID, &a.Balance, &a.Vault, &a.Level, &a.Experience,
		&inventory, &achievements, &stats, &cooldowns)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return accounts.Account{}, accounts.ErrNotFound
		}

		return accounts.Account{}, fmt.Errorf("scan account: %w", err)
	}

	err = errors.Join(
		json.Unmarshal(inventory, &a.Inventory),
		json.Unmarshal(achievements, &a.Achievements),
		json.Unmarshal(stats, &a.GameStats),
		json.Unmarshal(cooldowns, &a.Cooldowns),
	)
	if err != nil {
		return accounts.Account{}, fmt.Errorf("decode account collections: %w", err)
	}

	if a.Inventory == nil {
		a.Inventory = map[string]int64{}
	}
	if a.Achievements == nil {
		a.Achievements = map[string]struct{}{}
	}
	if a.GameStats == nil {
		a.GameStats = map[string]int64{}
	}
	if a.Cooldowns == nil {
		a.Cooldowns = map[string]time.Time{}
	}

	return a, nil
}

type encodedAccount struct {
	inventory, achievements, stats, cooldowns []byte
}

func encodeAccount(a *accounts.Account) (encodedAccount, error) {
	var (
		e   encodedAccount
		err error
	)

	e.inventory, err = json.Marshal(a.Inventory)
	if err != nil {
		return e, fmt.Errorf("encode inventory: %w", err)
	}
	e.achievements, err = json.Marshal(a.Achievements)
	if err != nil {
		return e, fmt.Errorf("encode achievements: %w", err)
	}
	e.stats, err = json.Marshal(a.GameStats)
	if err != nil {
		return e, fmt.Errorf("encode game stats: %w", err)
	}
	e.cooldowns, err = json.Marshal(a.Cooldowns)
	if err != nil {
		return e, fmt.Errorf("encode cooldowns: %w", err)
	}

	return e, nil
}

func updateAccount(tx *sql.Tx, a *accounts.Account) error {
	e, err := encodeAccount(a)
	if err != nil {
		return err
	}

	_, err = tx.Exec(`
		UPDATE accounts
		SET balance = $2, vault = $3, level = $4, experience = $5,
		    inventory = $6, achievements = $7, game_stats = $8, cooldowns = $9
		WHERE id = $1
	`, a.ID, a.Balance, a.Vault, a.Level, a.Experience,
		e.inventory, e.achievements, e.stats, e.cooldowns)
	if err != nil {
		return fmt.Errorf("update account: %w", err)
	}

	return nil
}

const selectForUpdateSQL = `
	SELECT id, balance, vault, level, experience,
	       inventory, achievements, game_stats, cooldowns
	FROM accounts
	WHERE id = $1
	FOR UPDATE
`
