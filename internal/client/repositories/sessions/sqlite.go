package sessions

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
	table = "sessions"
	// Collection is the remote store collection name.
	Collection = "sessions"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Name() string { return Collection }

func toDoc(s *models.Session) (envelope.Doc, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return envelope.Doc{}, fmt.Errorf("failed to marshal session: %w", err)
	}
	return envelope.Doc{
		ID: s.ID, Rev: s.Rev, Data: data,
		CreatedAt: s.CreatedAt, UpdatedAt: s.UpdatedAt,
	}, nil
}

func fromDoc(doc envelope.Doc) (*models.Session, error) {
	var s models.Session
	if err := json.Unmarshal(doc.Data, &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	s.ID = doc.ID
	s.Rev = doc.Rev
	s.SyncStatus = doc.Status
	s.CreatedAt = doc.CreatedAt
	s.UpdatedAt = doc.UpdatedAt
	return &s, nil
}

func indexCols(s *models.Session) ([]string, []any) {
	return []string{"exposure_id", "started_at"},
		[]any{s.ExposureID, s.StartedAt.UTC().Format(time.RFC3339Nano)}
}

func (r *SQLiteRepository) Put(ctx context.Context, s *models.Session) error {
	doc, err := toDoc(s)
	if err != nil {
		return err
	}
	cols, vals := indexCols(s)
	return envelope.Put(ctx, r.db, table, doc, cols, vals)
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*models.Session, error) {
	doc, err := envelope.Get(ctx, r.db, table, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, err
	}
	return fromDoc(doc)
}

func (r *SQLiteRepository) GetByExposure(ctx context.Context, exposureID string) ([]models.Session, error) {
	docs, err := envelope.List(ctx, r.db, table, `WHERE exposure_id = ? ORDER BY started_at`, exposureID)
	if err != nil {
		return nil, err
	}
	return collect(docs)
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Session, error) {
	docs, err := envelope.List(ctx, r.db, table, `ORDER BY started_at DESC`)
	if err != nil {
		return nil, err
	}
	return collect(docs)
}

func (r *SQLiteRepository) CountSince(ctx context.Context, t time.Time) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM sessions WHERE started_at > ?`,
		t.UTC().Format(time.RFC3339Nano)).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count sessions: %w", err)
	}
	return n, nil
}

func (r *SQLiteRepository) DeleteByID(ctx context.Context, id string) error {
	return envelope.Delete(ctx, r.db, table, id)
}

func collect(docs []envelope.Doc) ([]models.Session, error) {
	result := make([]models.Session, 0, len(docs))
	for _, doc := range docs {
		s, err := fromDoc(doc)
		if err != nil {
			return nil, err
		}
		result = append(result, *s)
	}
	return result, nil
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
