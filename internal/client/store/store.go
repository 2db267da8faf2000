// Package store opens the local SQLite database, applies schema
// migrations, and bundles the per-entity repositories. The local store is
// the single source of truth for the UI; the sync engine only ever holds
// in-flight copies.
package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/avoganov/ancora/internal/client/migrations"
	"github.com/avoganov/ancora/internal/client/repositories/checkins"
	"github.com/avoganov/ancora/internal/client/repositories/exposures"
	"github.com/avoganov/ancora/internal/client/repositories/sessions"
	"github.com/avoganov/ancora/internal/client/repositories/settings"
	"github.com/avoganov/ancora/internal/client/repositories/streaks"
	"github.com/avoganov/ancora/internal/client/repositories/urges"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// Store bundles the database handle and every repository.
type Store struct {
	DB        *sql.DB
	Exposures *exposures.SQLiteRepository
	Sessions  *sessions.SQLiteRepository
	Streaks   *streaks.SQLiteRepository
	Settings  *settings.SQLiteRepository
	CheckIns  *checkins.SQLiteRepository
	Urges     *urges.SQLiteRepository
}

// RunMigrations applies the embedded goose migrations.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return goose.UpContext(ctx, db, ".")
}

// Open opens (creating if necessary) the local database at dsn and
// returns the repository bundle.
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open local db: %w", err)
	}

	if err := RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{
		DB:        db,
		Exposures: exposures.NewSQLiteRepository(db),
		Sessions:  sessions.NewSQLiteRepository(db),
		Streaks:   streaks.NewSQLiteRepository(db),
		Settings:  settings.NewSQLiteRepository(db),
		CheckIns:  checkins.NewSQLiteRepository(db),
		Urges:     urges.NewSQLiteRepository(db),
	}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.DB.Close()
}
