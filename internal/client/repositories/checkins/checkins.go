// Package checkins stores deferred outcome check-ins, queryable by their
// scheduled time so the UI can surface the ones that are due.
package checkins

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/avoganov/ancora/internal/client/models"
	"github.com/avoganov/ancora/internal/client/repositories/envelope"
	"github.com/avoganov/ancora/internal/common"
)

const (
	table = "outcome_checkins"
	// Collection is the remote store collection name; kept camelCase for
	// compatibility with documents written by other clients.
	Collection = "outcomeCheckIns"
)

type Repository interface {
	Put(ctx context.Context, c *models.OutcomeCheckIn) error
	GetByID(ctx context.Context, id string) (*models.OutcomeCheckIn, error)

	// ListDue returns unanswered check-ins scheduled at or before now,
	// earliest first.
	ListDue(ctx context.Context, now time.Time) ([]models.OutcomeCheckIn, error)

	// GetBySession returns the check-in linked to a session, or
	// common.ErrorNotFound.
	GetBySession(ctx context.Context, sessionID string) (*models.OutcomeCheckIn, error)

	GetAll(ctx context.Context) ([]models.OutcomeCheckIn, error)

	DeleteByID(ctx context.Context, id string) error
}

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Name() string { return Collection }

func toDoc(c *models.OutcomeCheckIn) (envelope.Doc, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return envelope.Doc{}, fmt.Errorf("failed to marshal check-in: %w", err)
	}
	return envelope.Doc{
		ID: c.ID, Rev: c.Rev, Data: data,
		CreatedAt: c.CreatedAt, UpdatedAt: c.UpdatedAt,
	}, nil
}

func fromDoc(doc envelope.Doc) (*models.OutcomeCheckIn, error) {
	var c models.OutcomeCheckIn
	if err := json.Unmarshal(doc.Data, &c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal check-in: %w", err)
	}
	c.ID = doc.ID
	c.Rev = doc.Rev
	c.SyncStatus = doc.Status
	c.CreatedAt = doc.CreatedAt
	c.UpdatedAt = doc.UpdatedAt
	return &c, nil
}

func indexCols(c *models.OutcomeCheckIn) ([]string, []any) {
	answered := 0
	if c.Answered() {
		answered = 1
	}
	return []string{"session_id", "exposure_id", "scheduled_for", "answered"},
		[]any{c.SessionID, c.ExposureID, c.ScheduledFor.UTC().Format(time.RFC3339Nano), answered}
}

func (r *SQLiteRepository) Put(ctx context.Context, c *models.OutcomeCheckIn) error {
	doc, err := toDoc(c)
	if err != nil {
		return err
	}
	cols, vals := indexCols(c)
	return envelope.Put(ctx, r.db, table, doc, cols, vals)
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*models.OutcomeCheckIn, error) {
	doc, err := envelope.Get(ctx, r.db, table, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, err
	}
	return fromDoc(doc)
}

func (r *SQLiteRepository) ListDue(ctx context.Context, now time.Time) ([]models.OutcomeCheckIn, error) {
	docs, err := envelope.List(ctx, r.db, table,
		`WHERE answered = 0 AND scheduled_for <= ? ORDER BY scheduled_for`,
		now.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return nil, err
	}
	result := make([]models.OutcomeCheckIn, 0, len(docs))
	for _, doc := range docs {
		c, err := fromDoc(doc)
		if err != nil {
			return nil, err
		}
		result = append(result, *c)
	}
	return result, nil
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.OutcomeCheckIn, error) {
	docs, err := envelope.List(ctx, r.db, table, `ORDER BY scheduled_for`)
	if err != nil {
		return nil, err
	}
	result := make([]models.OutcomeCheckIn, 0, len(docs))
	for _, doc := range docs {
		c, err := fromDoc(doc)
		if err != nil {
			return nil, err
		}
		result = append(result, *c)
	}
	return result, nil
}

func (r *SQLiteRepository) GetBySession(ctx context.Context, sessionID string) (*models.OutcomeCheckIn, error) {
	docs, err := envelope.List(ctx, r.db, table, `WHERE session_id = ? LIMIT 1`, sessionID)
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
	c, err := fromDoc(doc)
	if err != nil {
		return false, err
	}
	cols, vals := indexCols(c)
	return envelope.ApplyRemote(ctx, r.db, table, doc, cols, vals)
}
