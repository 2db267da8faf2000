// Package models defines server-side data models persisted in the database.
package models

import "time"

// Document is one synced record owned by a user. The server never looks
// inside Data; it stores the client JSON payload opaquely and fans it out
// to the owner's other devices.
type Document struct {
	// UserID is the owner; all queries are scoped by it.
	UserID string
	// Collection is the logical record type ("exposures", "sessions", ...).
	Collection string
	// ID is the client-minted document identifier, unique within
	// (user, collection).
	ID string
	// Data is the full JSON payload as sent by the client.
	Data []byte
	// CreatedAt and UpdatedAt are the client-side timestamps carried with
	// the payload, kept for ordering on replay.
	CreatedAt time.Time
	UpdatedAt time.Time
}
