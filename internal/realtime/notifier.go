package realtime

import "context"

// Notifier is the capability the catalog and ledger services use to announce
// mutations. Notifications are best-effort: implementations never return
// errors and must never fail the originating request.
type Notifier interface {
	// GamesChanged announces that the game catalog was mutated
	GamesChanged(ctx context.Context)

	// StatsChanged announces that a player's stats were published
	StatsChanged(ctx context.Context)
}

// NopNotifier is a Notifier that does nothing
type NopNotifier struct{}

var _ Notifier = (*NopNotifier)(nil)

func (NopNotifier) GamesChanged(context.Context) {}
func (NopNotifier) StatsChanged(context.Context) {}
