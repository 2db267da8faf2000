package sync

import (
	"context"

	"github.com/avoganov/ancora/internal/logging"
)

// Identity is the externally owned auth state. A zero UserID means
// signed out.
type Identity struct {
	UserID string
	Token  string
}

// Bind drives the engine from an identity stream: a concrete user starts
// it, signing out stops it, and a user switch restarts it so no
// subscription of the previous user survives. Blocks until ctx is done or
// the stream closes, stopping the engine on the way out.
func Bind(ctx context.Context, e *Engine, changes <-chan Identity, log logging.Logger) {
	if log == nil {
		log = logging.NopLogger{}
	}
	current := ""
	for {
		select {
		case <-ctx.Done():
			e.Stop()
			return
		case id, ok := <-changes:
			if !ok {
				e.Stop()
				return
			}
			if id.UserID == current {
				continue
			}
			if current != "" {
				e.Stop()
			}
			current = id.UserID
			if id.UserID == "" {
				continue
			}
			if err := e.Start(ctx, id.UserID); err != nil {
				log.Error(ctx, "failed to start sync engine", "user_id", id.UserID, "error", err)
				current = ""
			}
		}
	}
}
