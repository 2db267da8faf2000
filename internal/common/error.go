// Package common defines shared constants and sentinel errors used across
// client and server layers of Ancora. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Sync errors.
	ErrEngineRunning  = errors.New("sync engine already running")
	ErrEngineStopped  = errors.New("sync engine not running")
	ErrRemoteRejected = errors.New("remote batch rejected")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
