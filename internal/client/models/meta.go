// Package models defines the client-side entities persisted in the local
// store and shipped through the sync engine.
package models

import "time"

// SyncStatus tags a local record's relation to the remote store.
type SyncStatus string

const (
	// StatusSynced: local state matched remote as of the last confirmed
	// round-trip.
	StatusSynced SyncStatus = "synced"
	// StatusPending: local changes not yet confirmed written to remote.
	StatusPending SyncStatus = "pending"
	// StatusConflict: a remote change arrived while the record was pending
	// with a newer local edit; the local copy is kept and re-pushed.
	StatusConflict SyncStatus = "conflict"
)

// NeedsPush reports whether a record with this status must be included in
// the next push batch.
func (s SyncStatus) NeedsPush() bool {
	return s == StatusPending || s == StatusConflict
}

// Meta is the sync envelope embedded in every persisted entity. Rev and
// SyncStatus are local-only and excluded from the remote payload; the rest
// travels with the document.
type Meta struct {
	ID         string     `json:"id"`
	Rev        int64      `json:"-"`
	SyncStatus SyncStatus `json:"-"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// Touch stamps a local mutation: updatedAt refreshed, status pending.
// Rev is advanced by the repository on write, not here.
func (m *Meta) Touch(now time.Time) {
	m.UpdatedAt = now
	m.SyncStatus = StatusPending
}
