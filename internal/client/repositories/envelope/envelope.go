// Package envelope implements the sync envelope shared by every local
// table: each row stores the record's JSON payload next to the local-only
// columns (rev, sync_status) and the timestamps the sync engine needs.
// Entity repositories layer typed queries on top; the sync engine only
// ever sees Docs, never business schema.
package envelope

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/avoganov/ancora/internal/client/models"
	"github.com/avoganov/ancora/internal/dbx"
)

// Doc is one row as the sync engine sees it: opaque payload plus envelope.
type Doc struct {
	ID        string
	Rev       int64
	Data      []byte
	Status    models.SyncStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

const timeLayout = time.RFC3339Nano

func formatTime(t time.Time) string { return t.UTC().Format(timeLayout) }

func parseTime(s string) (time.Time, error) { return time.Parse(timeLayout, s) }

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

// Put upserts a locally mutated record: payload replaced, updated_at
// refreshed, sync_status forced to pending, rev advanced past the stored
// row's. extraCols/extraVals carry the table's secondary-index columns.
func Put(ctx context.Context, db dbx.DBTX, table string, doc Doc, extraCols []string, extraVals []any) error {
	cols := append([]string{"id", "data", "created_at", "updated_at", "rev", "sync_status"}, extraCols...)
	vals := append([]any{
		doc.ID, doc.Data, formatTime(doc.CreatedAt), formatTime(doc.UpdatedAt),
		int64(1), string(models.StatusPending),
	}, extraVals...)

	assigns := []string{
		"data = excluded.data",
		"updated_at = excluded.updated_at",
		"rev = rev + 1",
		"sync_status = excluded.sync_status",
	}
	for _, c := range extraCols {
		assigns = append(assigns, c+" = excluded."+c)
	}

	query := fmt.Sprintf(
		`INSERT INTO %s (%s) VALUES (%s) ON CONFLICT(id) DO UPDATE SET %s`,
		table, strings.Join(cols, ", "), placeholders(len(cols)), strings.Join(assigns, ", "),
	)
	if _, err := db.ExecContext(ctx, query, vals...); err != nil {
		return fmt.Errorf("failed to upsert %s row: %w", table, err)
	}
	return nil
}

// Get returns a single row by id, or common.ErrorNotFound.
func Get(ctx context.Context, db dbx.DBTX, table, id string) (Doc, error) {
	query := fmt.Sprintf(
		`SELECT id, data, created_at, updated_at, rev, sync_status FROM %s WHERE id = ?`, table)
	return scanDoc(db.QueryRowContext(ctx, query, id))
}

// ListUnsynced returns every row whose status requires a push
// (pending or conflict), in insertion order.
func ListUnsynced(ctx context.Context, db dbx.DBTX, table string) ([]Doc, error) {
	query := fmt.Sprintf(
		`SELECT id, data, created_at, updated_at, rev, sync_status FROM %s
		 WHERE sync_status IN (?, ?) ORDER BY rowid`, table)
	rows, err := db.QueryContext(ctx, query, string(models.StatusPending), string(models.StatusConflict))
	if err != nil {
		return nil, fmt.Errorf("failed to select unsynced %s rows: %w", table, err)
	}
	defer rows.Close()

	var result []Doc
	for rows.Next() {
		doc, err := scanDoc(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, doc)
	}
	return result, rows.Err()
}

// List returns rows selected by tail, an optional WHERE/ORDER BY/LIMIT
// clause appended to the base query, e.g.
// "WHERE exposure_id = ? ORDER BY started_at DESC".
func List(ctx context.Context, db dbx.DBTX, table, tail string, args ...any) ([]Doc, error) {
	query := fmt.Sprintf(
		`SELECT id, data, created_at, updated_at, rev, sync_status FROM %s %s`, table, tail)
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select %s rows: %w", table, err)
	}
	defer rows.Close()

	var result []Doc
	for rows.Next() {
		doc, err := scanDoc(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, doc)
	}
	return result, rows.Err()
}

// MarkSynced flips the given docs to synced in one transaction, but only
// rows whose rev still equals the pushed snapshot. A row edited again while
// the batch was in flight keeps its pending status and is retried.
func MarkSynced(ctx context.Context, db *sql.DB, table string, docs []Doc) error {
	return dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		query := fmt.Sprintf(`UPDATE %s SET sync_status = ? WHERE id = ? AND rev = ?`, table)
		for _, doc := range docs {
			if _, err := tx.ExecContext(ctx, query, string(models.StatusSynced), doc.ID, doc.Rev); err != nil {
				return fmt.Errorf("failed to mark %s row synced: %w", table, err)
			}
		}
		return nil
	})
}

// ApplyRemote writes a pulled remote document with sync_status forced to
// synced, so pulled data is never re-queued for push. When the local copy
// is awaiting a push and carries a strictly newer updatedAt, the remote
// write is skipped and the row is flagged conflict instead; the local edit
// wins at the next push. Returns whether the remote payload was applied.
func ApplyRemote(ctx context.Context, db *sql.DB, table string, doc Doc, extraCols []string, extraVals []any) (bool, error) {
	applied := false
	err := dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		local, err := Get(ctx, tx, table, doc.ID)
		switch {
		case err == nil:
			if local.Status.NeedsPush() && local.UpdatedAt.After(doc.UpdatedAt) {
				query := fmt.Sprintf(`UPDATE %s SET sync_status = ? WHERE id = ?`, table)
				if _, err := tx.ExecContext(ctx, query, string(models.StatusConflict), doc.ID); err != nil {
					return fmt.Errorf("failed to flag %s conflict: %w", table, err)
				}
				return nil
			}
		case errors.Is(err, sql.ErrNoRows):
			// new remote record
		default:
			return err
		}

		cols := append([]string{"id", "data", "created_at", "updated_at", "rev", "sync_status"}, extraCols...)
		vals := append([]any{
			doc.ID, doc.Data, formatTime(doc.CreatedAt), formatTime(doc.UpdatedAt),
			int64(1), string(models.StatusSynced),
		}, extraVals...)
		assigns := []string{
			"data = excluded.data",
			"updated_at = excluded.updated_at",
			"rev = rev + 1",
			"sync_status = excluded.sync_status",
		}
		for _, c := range extraCols {
			assigns = append(assigns, c+" = excluded."+c)
		}
		query := fmt.Sprintf(
			`INSERT INTO %s (%s) VALUES (%s) ON CONFLICT(id) DO UPDATE SET %s`,
			table, strings.Join(cols, ", "), placeholders(len(cols)), strings.Join(assigns, ", "),
		)
		if _, err := tx.ExecContext(ctx, query, vals...); err != nil {
			return fmt.Errorf("failed to apply remote %s row: %w", table, err)
		}
		applied = true
		return nil
	})
	return applied, err
}

// Delete removes a row permanently.
func Delete(ctx context.Context, db dbx.DBTX, table, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = ?`, table)
	if _, err := db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete %s row: %w", table, err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDoc(row rowScanner) (Doc, error) {
	var doc Doc
	var createdAt, updatedAt, status string
	if err := row.Scan(&doc.ID, &doc.Data, &createdAt, &updatedAt, &doc.Rev, &status); err != nil {
		return Doc{}, err
	}
	var err error
	if doc.CreatedAt, err = parseTime(createdAt); err != nil {
		return Doc{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	if doc.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return Doc{}, fmt.Errorf("failed to parse updated_at: %w", err)
	}
	doc.Status = models.SyncStatus(status)
	return doc, nil
}
