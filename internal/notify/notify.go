// Package notify delivers out-of-band player and operator messages. The
// engine treats delivery as fire-and-forget; a failed notification never
// fails the operation that produced it.
package notify

import (
	"context"
	"log/slog"
)

// Notifier receives player-facing messages and operator audit events.
type Notifier interface {
	// Notify sends a message to the account's owner.
	Notify(ctx context.Context, accountID uint64, message string)
	// Audit records an operator-facing event with structured detail.
	Audit(ctx context.Context, event string, args ...any)
}

// LogNotifier writes notifications to the structured log. It is the default
// sink until a real delivery channel (bot DM, webhook) is wired in.
type LogNotifier struct {
	log *slog.Logger
}

func NewLogNotifier(log *slog.Logger) *LogNotifier {
	if log == nil {
		log = slog.Default()
	}

	return &LogNotifier{log: log}
}

func (n *LogNotifier) Notify(ctx context.Context, accountID uint64, message string) {
	n.log.InfoContext(ctx, "player notification", "account_id", accountID, "message", message)
}

func (n *LogNotifier) Audit(ctx context.Context, event string, args ...any) {
	n.log.WarnContext(ctx, "audit: "+event, args...)
}

// Discard drops everything. Useful in tests.
type Discard struct{}

func (Discard) Notify(context.Context, uint64, string) {}
func (Discard) Audit(context.Context, string, ...any)  {}
