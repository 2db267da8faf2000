// Package streaks stores the consecutive-day streak record. At most one
// row is meaningful; Get returns the first.
package streaks

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/avoganov/ancora/internal/client/models"
	"github.com/avoganov/ancora/internal/client/repositories/envelope"
	"github.com/avoganov/ancora/internal/common"
)

const (
	table = "streaks"
	// Collection is the remote store collection name.
	Collection = "streaks"
)

type Repository interface {
	Put(ctx context.Context, s *models.Streak) error

	// Get returns the streak record or common.ErrorNotFound when no
	// activity has ever been recorded.
	Get(ctx context.Context) (*models.Streak, error)

	DeleteByID(ctx context.Context, id string) error
}

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Name() string { return Collection }

func toDoc(s *models.Streak) (envelope.Doc, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return envelope.Doc{}, fmt.Errorf("failed to marshal streak: %w", err)
	}
	return envelope.Doc{
		ID: s.ID, Rev: s.Rev, Data: data,
		CreatedAt: s.CreatedAt, UpdatedAt: s.UpdatedAt,
	}, nil
}

func fromDoc(doc envelope.Doc) (*models.Streak, error) {
	var s models.Streak
	if err := json.Unmarshal(doc.Data, &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal streak: %w", err)
	}
	s.ID = doc.ID
	s.Rev = doc.Rev
	s.SyncStatus = doc.Status
	s.CreatedAt = doc.CreatedAt
	s.UpdatedAt = doc.UpdatedAt
	return &s, nil
}

func indexCols(s *models.Streak) ([]string, []any) {
	return []string{"last_activity_date"},
		[]any{s.LastActivityDate.UTC().Format(time.RFC3339Nano)}
}

func (r *SQLiteRepository) Put(ctx context.Context, s *models.Streak) error {
	doc, err := toDoc(s)
	if err != nil {
		return err
	}
	cols, vals := indexCols(s)
	return envelope.Put(ctx, r.db, table, doc, cols, vals)
}

func (r *SQLiteRepository) Get(ctx context.Context) (*models.Streak, error) {
	docs, err := envelope.List(ctx, r.db, table, `ORDER BY rowid LIMIT 1`)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, common.ErrorNotFound
	}
	return fromDoc(docs[0])
}

func (r *SQLiteRepository) DeleteByID(ctx context.Context, id string) error {
	return envelope.Delete(ctx, r.db, table, id)
}

// Sync-facing operations.

func (r *SQLiteRepository) ListUnsynced(ctx context.Context) ([]envelope.Doc, error) {
	return envelope.ListUnsynced(ctx, r.db, table)
}

func (r *SQLiteRepository) MarkSynced(ctx context.Context, docs []envelope.Doc) error {
	return envelope.MarkSynced(ctx, r.db, table, docs)
}

func (r *SQLiteRepository) ApplyRemote(ctx context.Context, doc envelope.Doc) (bool, error) {
	s, err := fromDoc(doc)
	if err != nil {
		return false, err
	}
	cols, vals := indexCols(s)
	return envelope.ApplyRemote(ctx, r.db, table, doc, cols, vals)
}
