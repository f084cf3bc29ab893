// Package ledger defines the append-only transaction record and its store.
package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Category tags a record with the kind of economic event that produced it.
type Category string

const (
	CategoryEarn        Category = "earn"
	CategorySpend       Category = "spend"
	CategoryTransfer    Category = "transfer"
	CategoryFine        Category = "fine"
	CategoryGambleWin   Category = "gamble_win"
	CategoryGambleLoss  Category = "gamble_loss"
	CategoryAchievement Category = "achievement"
	CategoryVault       Category = "vault"
	CategoryRob         Category = "rob"
)

// Record is one immutable ledger entry. Amount is signed from the actor's
// point of view.
type Record struct {
	ID            uuid.UUID
	AccountID     uint64
	Category      Category
	Amount        int64
	CounterpartID *uint64
	Description   string
	At            time.Time
}

// New builds a record with a fresh ID.
func New(accountID uint64, cat Category, amount int64, desc string, at time.Time) Record {
	return Record{
		ID:          uuid.New(),
		AccountID:   accountID,
		Category:    cat,
		Amount:      amount,
		Description: desc,
		At:          at,
	}
}

// NewWithCounterpart builds a record for a two-party operation.
func NewWithCounterpart(accountID uint64, cat Category, amount int64, counterpart uint64, desc string, at time.Time) Record {
	r := New(accountID, cat, amount, desc, at)
	r.CounterpartID = &counterpart

	return r
}

// Store reads and appends records. Appends that belong to an account
// mutation are committed by the account store in the same atomic unit; this
// interface covers standalone appends and reads.
type Store interface {
	Append(ctx context.Context, recs ...Record) error
	ListRecent(ctx context.Context, accountID uint64, limit int) ([]Record, error)
}
