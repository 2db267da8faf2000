// Package urges stores reassurance-urge log entries, queryable newest
// first for the adaptive wait calculation.
package urges

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/avoganov/ancora/internal/client/models"
	"github.com/avoganov/ancora/internal/client/repositories/envelope"
	"github.com/avoganov/ancora/internal/common"
)

const (
	table = "reassurance_urges"
	// Collection is the remote store collection name; kept camelCase for
	// compatibility with documents written by other clients.
	Collection = "reassuranceUrges"
)

type Repository interface {
	Put(ctx context.Context, u *models.ReassuranceUrge) error
	GetByID(ctx context.Context, id string) (*models.ReassuranceUrge, error)

	// GetRecent returns up to limit urges, newest first.
	GetRecent(ctx context.Context, limit int) ([]models.ReassuranceUrge, error)

	// GetAll returns every urge, newest first.
	GetAll(ctx context.Context) ([]models.ReassuranceUrge, error)

	DeleteByID(ctx context.Context, id string) error
}

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Name() string { return Collection }

func toDoc(u *models.ReassuranceUrge) (envelope.Doc, error) {
	data, err := json.Marshal(u)
	if err != nil {
		return envelope.Doc{}, fmt.Errorf("failed to marshal urge: %w", err)
	}
	return envelope.Doc{
		ID: u.ID, Rev: u.Rev, Data: data,
		CreatedAt: u.CreatedAt, UpdatedAt: u.UpdatedAt,
	}, nil
}

func fromDoc(doc envelope.Doc) (*models.ReassuranceUrge, error) {
	var u models.ReassuranceUrge
	if err := json.Unmarshal(doc.Data, &u); err != nil {
		return nil, fmt.Errorf("failed to unmarshal urge: %w", err)
	}
	u.ID = doc.ID
	u.Rev = doc.Rev
	u.SyncStatus = doc.Status
	u.CreatedAt = doc.CreatedAt
	u.UpdatedAt = doc.UpdatedAt
	return &u, nil
}

func (r *SQLiteRepository) Put(ctx context.Context, u *models.ReassuranceUrge) error {
	doc, err := toDoc(u)
	if err != nil {
		return err
	}
	return envelope.Put(ctx, r.db, table, doc, nil, nil)
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*models.ReassuranceUrge, error) {
	doc, err := envelope.Get(ctx, r.db, table, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, err
	}
	return fromDoc(doc)
}

func (r *SQLiteRepository) GetRecent(ctx context.Context, limit int) ([]models.ReassuranceUrge, error) {
	docs, err := envelope.List(ctx, r.db, table, `ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	return collect(docs)
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.ReassuranceUrge, error) {
	docs, err := envelope.List(ctx, r.db, table, `ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	return collect(docs)
}

func collect(docs []envelope.Doc) ([]models.ReassuranceUrge, error) {
	result := make([]models.ReassuranceUrge, 0, len(docs))
	for _, doc := range docs {
		u, err := fromDoc(doc)
		if err != nil {
			return nil, err
		}
		result = append(result, *u)
	}
	return result, nil
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
	return envelope.ApplyRemote(ctx, r.db, table, doc, nil, nil)
}
