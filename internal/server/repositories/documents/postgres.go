// Package documents provides the PostgreSQL-backed repository for synced
// user documents. Every row is an opaque JSON payload keyed by
// (user, collection, id); the server never interprets the payload itself.
package documents

import (
	"context"
	"fmt"

	"github.com/avoganov/ancora/internal/common"
	"github.com/avoganov/ancora/internal/dbx"
	"github.com/avoganov/ancora/internal/server/models"
)

// PostgresRepository implements document storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Upsert inserts the document or, if a row already exists for the same
// (user, collection, id), replaces its payload and updated_at.
func (r *PostgresRepository) Upsert(ctx context.Context, doc *models.Document) error {
	query := `
		INSERT INTO documents (user_id, collection, id, data, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, collection, id)
		DO UPDATE SET
			data = EXCLUDED.data,
			updated_at = EXCLUDED.updated_at;
	`
	res, err := r.db.ExecContext(ctx, query,
		doc.UserID, doc.Collection, doc.ID, doc.Data, doc.CreatedAt, doc.UpdatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n != 1 {
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
	return nil
}

// Delete removes the document. Deleting a row that does not exist returns
// common.ErrorNotFound so callers can treat repeated deletes as a no-op.
func (r *PostgresRepository) Delete(ctx context.Context, userID string, collection string, id string) error {
	query := `DELETE FROM documents WHERE user_id=$1 AND collection=$2 AND id=$3;`

	res, err := r.db.ExecContext(ctx, query, userID, collection, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	switch n {
	case 1:
		return nil
	case 0:
		return common.ErrorNotFound
	default:
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
}

// ListByUserCollection returns all of the user's documents in one collection,
// oldest update first, so a fresh subscriber can replay them in order.
func (r *PostgresRepository) ListByUserCollection(ctx context.Context, userID string, collection string) ([]*models.Document, error) {
	query := `
		SELECT id, data, created_at, updated_at FROM documents
		WHERE user_id=$1 AND collection=$2
		ORDER BY updated_at;
	`
	rows, err := r.db.QueryContext(ctx, query, userID, collection)
	if err != nil {
		return nil, fmt.Errorf("failed to select documents: %w", err)
	}
	defer rows.Close()

	var result []*models.Document
	for rows.Next() {
		item := models.Document{UserID: userID, Collection: collection}
		if err := rows.Scan(&item.ID, &item.Data, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
