// Package sync keeps the local store eventually consistent with the
// remote document store. The engine is an explicit component: the
// composition root constructs it with its tables and remote transport and
// drives its lifecycle from identity changes. Sync errors are logged and
// surfaced via LastPushError, never bubbled into the primary flow.
package sync

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/avoganov/ancora/internal/client/repositories/envelope"
	"github.com/avoganov/ancora/internal/common"
	"github.com/avoganov/ancora/internal/logging"
	"github.com/sethvargo/go-retry"
)

// Table is one syncable local table. The entity repositories satisfy it.
type Table interface {
	// Name is the remote collection name.
	Name() string
	ListUnsynced(ctx context.Context) ([]envelope.Doc, error)
	MarkSynced(ctx context.Context, docs []envelope.Doc) error
	// ApplyRemote upserts a pulled document; reports whether the remote
	// payload was applied (false when flagged as a conflict).
	ApplyRemote(ctx context.Context, doc envelope.Doc) (bool, error)
	DeleteByID(ctx context.Context, id string) error
}

// ChangeType classifies one fan-out event from the remote store.
type ChangeType int

const (
	ChangeAdded ChangeType = iota
	ChangeModified
	ChangeRemoved
)

// Change is one remote document event delivered to a subscription.
type Change struct {
	Type ChangeType
	Doc  envelope.Doc
}

// Remote is the transport to the remote document store.
type Remote interface {
	// PushBatch writes the docs into the user's collection. The whole
	// batch commits or none of it does.
	PushBatch(ctx context.Context, userID, collection string, docs []envelope.Doc) error

	// Subscribe opens a persistent change feed for the user's collection
	// and invokes apply for every event. It returns a cancel function
	// that closes the feed.
	Subscribe(ctx context.Context, userID, collection string, apply func(Change)) (func(), error)

	// Delete removes one document remotely.
	Delete(ctx context.Context, userID, collection, id string) error
}

// Engine synchronizes a set of tables for at most one user at a time.
type Engine struct {
	remote Remote
	tables []Table
	log    logging.Logger

	pushAttempts uint64
	pushBackoff  time.Duration

	mu          sync.Mutex
	running     bool
	userID      string
	cancels     []func()
	lastPushErr error
}

// Option tweaks engine construction.
type Option func(*Engine)

// WithPushRetry overrides the retry policy for push batches.
func WithPushRetry(attempts uint64, initialBackoff time.Duration) Option {
	return func(e *Engine) {
		e.pushAttempts = attempts
		e.pushBackoff = initialBackoff
	}
}

func NewEngine(remote Remote, tables []Table, log logging.Logger, opts ...Option) *Engine {
	if log == nil {
		log = logging.NopLogger{}
	}
	e := &Engine{
		remote:       remote,
		tables:       tables,
		log:          log,
		pushAttempts: 5,
		pushBackoff:  500 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Start binds the engine to a user: pushes everything locally pending,
// synchronously awaited, then opens one change subscription per table.
// Push failures do not abort the start; they are logged and kept in
// LastPushError for the next retry.
func (e *Engine) Start(ctx context.Context, userID string) error {
	e.mu.Lock()
	if e.running {
		e.mu.Unlock()
		return common.ErrEngineRunning
	}
	e.running = true
	e.userID = userID
	e.mu.Unlock()

	e.log.Info(ctx, "sync engine starting", "user_id", userID)

	if err := e.PushPending(ctx); err != nil {
		e.log.Error(ctx, "initial push failed", "error", err)
	}

	var cancels []func()
	for _, t := range e.tables {
		t := t
		cancel, err := e.remote.Subscribe(ctx, userID, t.Name(), func(ch Change) {
			e.applyChange(ctx, t, ch)
		})
		if err != nil {
			for _, c := range cancels {
				c()
			}
			e.mu.Lock()
			e.running = false
			e.userID = ""
			e.mu.Unlock()
			return err
		}
		cancels = append(cancels, cancel)
	}

	e.mu.Lock()
	if !e.running {
		// Stop ran while the subscriptions were being opened; it found
		// nothing to cancel, so close them here.
		e.mu.Unlock()
		for _, c := range cancels {
			c()
		}
		return common.ErrEngineStopped
	}
	e.cancels = cancels
	e.mu.Unlock()
	return nil
}

// Stop cancels every open subscription and unbinds the user. A push batch
// already in flight is left to finish; MarkSynced is rev-guarded, so a
// late ack can never clobber a newer local edit.
func (e *Engine) Stop() {
	e.mu.Lock()
	cancels := e.cancels
	e.cancels = nil
	e.running = false
	e.userID = ""
	e.mu.Unlock()

	for _, cancel := range cancels {
		cancel()
	}
}

// Running reports whether the engine is bound to a user.
func (e *Engine) Running() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.running
}

// LastPushError returns the most recent push failure, or nil after a
// clean push.
func (e *Engine) LastPushError() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lastPushErr
}

// PushPending pushes every unsynced row of every table, one batch per
// table, retrying each batch with exponential backoff. Rows are only
// flipped to synced when their rev still matches the pushed snapshot.
func (e *Engine) PushPending(ctx context.Context) error {
	e.mu.Lock()
	if !e.running {
		e.mu.Unlock()
		return common.ErrEngineStopped
	}
	userID := e.userID
	e.mu.Unlock()

	var firstErr error
	for _, t := range e.tables {
		if err := e.pushTable(ctx, t, userID); err != nil {
			e.log.Error(ctx, "push failed", "collection", t.Name(), "error", err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	e.mu.Lock()
	e.lastPushErr = firstErr
	e.mu.Unlock()
	return firstErr
}

func (e *Engine) pushTable(ctx context.Context, t Table, userID string) error {
	docs, err := t.ListUnsynced(ctx)
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		return nil
	}

	backoff := retry.WithMaxRetries(e.pushAttempts, retry.NewExponential(e.pushBackoff))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := e.remote.PushBatch(ctx, userID, t.Name(), docs); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrRemoteRejected, err)
	}

	e.log.Debug(ctx, "batch pushed", "collection", t.Name(), "count", len(docs))
	return t.MarkSynced(ctx, docs)
}

// DeleteRemote propagates a local deletion. Satisfies the services'
// RemoteDeleter; a stopped engine makes it a no-op so deletes stay
// offline-capable.
func (e *Engine) DeleteRemote(ctx context.Context, collection, id string) error {
	e.mu.Lock()
	running := e.running
	userID := e.userID
	e.mu.Unlock()

	if !running {
		return nil
	}
	if err := e.remote.Delete(ctx, userID, collection, id); err != nil {
		e.log.Error(ctx, "remote delete failed", "collection", collection, "id", id, "error", err)
		return err
	}
	return nil
}

func (e *Engine) applyChange(ctx context.Context, t Table, ch Change) {
	switch ch.Type {
	case ChangeRemoved:
		if err := t.DeleteByID(ctx, ch.Doc.ID); err != nil {
			e.log.Error(ctx, "failed to apply remote delete", "collection", t.Name(), "id", ch.Doc.ID, "error", err)
		}
	default:
		applied, err := t.ApplyRemote(ctx, ch.Doc)
		if err != nil {
			e.log.Error(ctx, "failed to apply remote change", "collection", t.Name(), "id", ch.Doc.ID, "error", err)
			return
		}
		if !applied {
			e.log.Warn(ctx, "conflict detected, local edit kept", "collection", t.Name(), "id", ch.Doc.ID)
		}
	}
}
