// Package integrity screens account state and transaction cadence for
// exploit patterns before a mutation commits.
package integrity

import (
	"fmt"
	"strings"

	"github.com/wagerworks/ecosim/internal/catalog"
	"github.com/wagerworks/ecosim/internal/repos/accounts"
)

// Violation describes a detected inconsistency. The reason is routed to the
// audit channel only; callers surface a generic rejection so the detection
// heuristics stay opaque.
type Violation struct {
	Reason string
}

func (v *Violation) Error() string {
	return fmt.Sprintf("integrity violation: %s", v.Reason)
}

// ValidateAccount checks the inventory for duplicate item identifiers
// (entries that collapse to the same canonical id), negative quantities,
// and implausibly large quantities.
func ValidateAccount(a *accounts.Account, cfg catalog.Integrity) *Violation {
	seen := make(map[string]string, len(a.Inventory))

	for id, qty := range a.Inventory {
		canon := canonicalItemID(id)
		if prev, dup := seen[canon]; dup {
			return &Violation{Reason: fmt.Sprintf("duplicate inventory entries %q and %q", prev, id)}
		}
		seen[canon] = id

		if qty < 0 {
			return &Violation{Reason: fmt.Sprintf("negative quantity %d for item %q", qty, id)}
		}
		if cfg.MaxItemQuantity > 0 && qty > cfg.MaxItemQuantity {
			return &Violation{Reason: fmt.Sprintf("quantity %d for item %q exceeds cap %d", qty, id, cfg.MaxItemQuantity)}
		}
	}

	return nil
}

// ValidatePurchase additionally checks affordability and a sane quantity.
func ValidatePurchase(a *accounts.Account, cost, quantity int64, cfg catalog.Integrity) *Violation {
	if v := ValidateAccount(a, cfg); v != nil {
		return v
	}

	if quantity <= 0 {
		return &Violation{Reason: fmt.Sprintf("non-positive purchase quantity %d", quantity)}
	}
	if cfg.MaxPurchaseQuantity > 0 && quantity > cfg.MaxPurchaseQuantity {
		return &Violation{Reason: fmt.Sprintf("purchase quantity %d exceeds cap %d", quantity, cfg.MaxPurchaseQuantity)}
	}
	if cost*quantity > a.Balance {
		return &Violation{Reason: fmt.Sprintf("purchase total %d exceeds balance %d", cost*quantity, a.Balance)}
	}

	return nil
}

// canonicalItemID collapses the aliases duplicated entries hide behind.
func canonicalItemID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}
