package documents

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/avoganov/ancora/internal/common"
	"github.com/avoganov/ancora/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func sampleDoc() *models.Document {
	return &models.Document{
		UserID:     "u1",
		Collection: "exposures",
		ID:         "e1",
		Data:       []byte(`{"triggerDescription":"elevator"}`),
		CreatedAt:  time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		UpdatedAt:  time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
	}
}

func TestUpsert_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	doc := sampleDoc()

	q := regexp.MustCompile(`INSERT INTO documents .* ON CONFLICT \(user_id, collection, id\)\s+DO UPDATE SET`)

	mock.ExpectExec(q.String()).
		WithArgs(doc.UserID, doc.Collection, doc.ID, doc.Data, doc.CreatedAt, doc.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Upsert(context.Background(), doc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpsert_DBExecError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	doc := sampleDoc()

	mock.ExpectExec(`INSERT INTO documents`).
		WithArgs(doc.UserID, doc.Collection, doc.ID, doc.Data, doc.CreatedAt, doc.UpdatedAt).
		WillReturnError(errors.New("db is down"))

	err := repo.Upsert(context.Background(), doc)
	if err == nil || !regexp.MustCompile(`db error: .*db is down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestUpsert_UnexpectedRowsAffected(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	doc := sampleDoc()

	mock.ExpectExec(`INSERT INTO documents`).
		WithArgs(doc.UserID, doc.Collection, doc.ID, doc.Data, doc.CreatedAt, doc.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(0, 2))

	err := repo.Upsert(context.Background(), doc)
	if err == nil || !regexp.MustCompile(`unexpected rows affected: 2`).MatchString(err.Error()) {
		t.Fatalf("expected unexpected rows affected error, got %v", err)
	}
}

func TestDelete_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM documents WHERE user_id=\$1 AND collection=\$2 AND id=\$3`).
		WithArgs("u1", "exposures", "e1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), "u1", "exposures", "e1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDelete_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM documents`).
		WithArgs("u1", "exposures", "missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "u1", "exposures", "missing")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
}

func TestListByUserCollection_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	t1 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	t2 := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "data", "created_at", "updated_at"}).
		AddRow("e1", []byte(`{"a":1}`), t1, t1).
		AddRow("e2", []byte(`{"b":2}`), t1, t2)

	mock.ExpectQuery(`SELECT id, data, created_at, updated_at FROM documents\s+WHERE user_id=\$1 AND collection=\$2\s+ORDER BY updated_at`).
		WithArgs("u1", "exposures").
		WillReturnRows(rows)

	got, err := repo.ListByUserCollection(context.Background(), "u1", "exposures")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("want 2 rows, got %d", len(got))
	}
	if got[0].ID != "e1" || got[0].UserID != "u1" || got[0].Collection != "exposures" {
		t.Fatalf("unexpected first row: %+v", got[0])
	}
	if !got[1].UpdatedAt.Equal(t2) {
		t.Fatalf("unexpected second row updated_at: %v", got[1].UpdatedAt)
	}
}

func TestListByUserCollection_QueryError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, data, created_at, updated_at FROM documents`).
		WithArgs("u1", "exposures").
		WillReturnError(errors.New("db err"))

	_, err := repo.ListByUserCollection(context.Background(), "u1", "exposures")
	if err == nil || !regexp.MustCompile(`failed to select documents: .*db err`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped select error, got %v", err)
	}
}

func TestListByUserCollection_RowsErr(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	t1 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "data", "created_at", "updated_at"}).
		AddRow("e1", []byte(`{"a":1}`), t1, t1).
		AddRow("e2", []byte(`{"b":2}`), t1, t1).
		RowError(1, errors.New("row-err"))

	mock.ExpectQuery(`SELECT id, data, created_at, updated_at FROM documents`).
		WithArgs("u1", "exposures").
		WillReturnRows(rows)

	_, err := repo.ListByUserCollection(context.Background(), "u1", "exposures")
	if err == nil || err.Error() != "row-err" {
		t.Fatalf("expected rows.Err 'row-err', got %v", err)
	}
}
