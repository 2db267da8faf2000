package exposures

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
	"github.com/avoganov/ancora/internal/dbx"
)

const (
	table = "exposures"
	// Collection is the remote store collection name.
	Collection = "exposures"
)

// SQLiteRepository implements Repository plus the sync-facing table
// operations over the shared envelope schema.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Name() string { return Collection }

func toDoc(e *models.Exposure) (envelope.Doc, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return envelope.Doc{}, fmt.Errorf("failed to marshal exposure: %w", err)
	}
	return envelope.Doc{
		ID: e.ID, Rev: e.Rev, Data: data,
		CreatedAt: e.CreatedAt, UpdatedAt: e.UpdatedAt,
	}, nil
}

func fromDoc(doc envelope.Doc) (*models.Exposure, error) {
	var e models.Exposure
	if err := json.Unmarshal(doc.Data, &e); err != nil {
		return nil, fmt.Errorf("failed to unmarshal exposure: %w", err)
	}
	// Envelope columns are authoritative over payload copies.
	e.ID = doc.ID
	e.Rev = doc.Rev
	e.SyncStatus = doc.Status
	e.CreatedAt = doc.CreatedAt
	e.UpdatedAt = doc.UpdatedAt
	return &e, nil
}

func (r *SQLiteRepository) put(ctx context.Context, db dbx.DBTX, e *models.Exposure) error {
	doc, err := toDoc(e)
	if err != nil {
		return err
	}
	return envelope.Put(ctx, db, table, doc, []string{"order_index"}, []any{e.OrderIndex})
}

func (r *SQLiteRepository) Put(ctx context.Context, e *models.Exposure) error {
	return r.put(ctx, r.db, e)
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*models.Exposure, error) {
	doc, err := envelope.Get(ctx, r.db, table, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, err
	}
	return fromDoc(doc)
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Exposure, error) {
	docs, err := envelope.List(ctx, r.db, table, `ORDER BY order_index`)
	if err != nil {
		return nil, err
	}
	result := make([]models.Exposure, 0, len(docs))
	for _, doc := range docs {
		e, err := fromDoc(doc)
		if err != nil {
			return nil, err
		}
		result = append(result, *e)
	}
	return result, nil
}

func (r *SQLiteRepository) DeleteByID(ctx context.Context, id string) error {
	return envelope.Delete(ctx, r.db, table, id)
}

// Reorder rewrites every exposure's orderIndex inside one transaction.
// A missing id aborts the whole rewrite.
func (r *SQLiteRepository) Reorder(ctx context.Context, ids []string, now time.Time) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for i, id := range ids {
			doc, err := envelope.Get(ctx, tx, table, id)
			if errors.Is(err, sql.ErrNoRows) {
				return fmt.Errorf("reorder: exposure %s: %w", id, common.ErrorNotFound)
			}
			if err != nil {
				return err
			}
			e, err := fromDoc(doc)
			if err != nil {
				return err
			}
			e.OrderIndex = i
			e.Touch(now)
			if err := r.put(ctx, tx, e); err != nil {
				return err
			}
		}
		return nil
	})
}

// Sync-facing operations.

func (r *SQLiteRepository) ListUnsynced(ctx context.Context) ([]envelope.Doc, error) {
	return envelope.ListUnsynced(ctx, r.db, table)
}

func (r *SQLiteRepository) MarkSynced(ctx context.Context, docs []envelope.Doc) error {
	return envelope.MarkSynced(ctx, r.db, table, docs)
}

func (r *SQLiteRepository) ApplyRemote(ctx context.Context, doc envelope.Doc) (bool, error) {
	e, err := fromDoc(doc)
	if err != nil {
		return false, err
	}
	return envelope.ApplyRemote(ctx, r.db, table, doc, []string{"order_index"}, []any{e.OrderIndex})
}
