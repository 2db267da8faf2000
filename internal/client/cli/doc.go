// Package cli implements the interactive terminal client: a small REPL
// over the local store, the session machine, and the sync engine. All
// commands work offline; sync happens in the background when the server
// is reachable.
package cli
