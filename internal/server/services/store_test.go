package services

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/avoganov/ancora/internal/server/hub"
	"github.com/avoganov/ancora/internal/server/models"
)

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

func testDoc(collection, id string) *models.Document {
	ts := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	return &models.Document{
		Collection: collection,
		ID:         id,
		Data:       []byte(`{"x":1}`),
		CreatedAt:  ts,
		UpdatedAt:  ts,
	}
}

func TestPushBatch_CommitsAndPublishes(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	h := hub.New()
	svc := NewStoreService(db, h)

	events, cancel := h.Subscribe("u1", "exposures")
	defer cancel()

	docs := []*models.Document{testDoc("exposures", "e1"), testDoc("exposures", "e2")}

	mock.ExpectBegin()
	for _, d := range docs {
		mock.ExpectExec(`INSERT INTO documents`).
			WithArgs("u1", d.Collection, d.ID, d.Data, d.CreatedAt, d.UpdatedAt).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectCommit()

	if err := svc.PushBatch(context.Background(), "u1", docs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}

	if len(events) != 2 {
		t.Fatalf("want 2 published events, got %d", len(events))
	}
	ev := <-events
	if ev.Type != hub.EventModified || ev.Doc.UserID != "u1" {
		t.Fatalf("unexpected event: %+v", ev)
	}
}

func TestPushBatch_RollsBackAndStaysSilentOnError(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	h := hub.New()
	svc := NewStoreService(db, h)

	events, cancel := h.Subscribe("u1", "exposures")
	defer cancel()

	docs := []*models.Document{testDoc("exposures", "e1"), testDoc("exposures", "e2")}

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO documents`).
		WithArgs("u1", docs[0].Collection, docs[0].ID, docs[0].Data, docs[0].CreatedAt, docs[0].UpdatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO documents`).
		WithArgs("u1", docs[1].Collection, docs[1].ID, docs[1].Data, docs[1].CreatedAt, docs[1].UpdatedAt).
		WillReturnError(errors.New("db is down"))
	mock.ExpectRollback()

	err := svc.PushBatch(context.Background(), "u1", docs)
	if err == nil || !regexp.MustCompile(`failed to store batch: .*db is down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped batch error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}

	if len(events) != 0 {
		t.Fatalf("no events expected after rollback, got %d", len(events))
	}
}

func TestDelete_PublishesRemoval(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	h := hub.New()
	svc := NewStoreService(db, h)

	events, cancel := h.Subscribe("u1", "exposures")
	defer cancel()

	mock.ExpectExec(`DELETE FROM documents`).
		WithArgs("u1", "exposures", "e1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := svc.Delete(context.Background(), "u1", "exposures", "e1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ev := <-events
	if ev.Type != hub.EventRemoved || ev.Doc.ID != "e1" {
		t.Fatalf("unexpected event: %+v", ev)
	}
}

func TestDelete_MissingDocumentIsIdempotent(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	h := hub.New()
	svc := NewStoreService(db, h)

	mock.ExpectExec(`DELETE FROM documents`).
		WithArgs("u1", "exposures", "gone").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := svc.Delete(context.Background(), "u1", "exposures", "gone"); err != nil {
		t.Fatalf("expected repeated delete to succeed, got %v", err)
	}
}

func TestSnapshot_ReturnsUserDocuments(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	svc := NewStoreService(db, hub.New())

	ts := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "data", "created_at", "updated_at"}).
		AddRow("e1", []byte(`{"a":1}`), ts, ts)

	mock.ExpectQuery(`SELECT id, data, created_at, updated_at FROM documents`).
		WithArgs("u1", "exposures").
		WillReturnRows(rows)

	got, err := svc.Snapshot(context.Background(), "u1", "exposures")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "e1" {
		t.Fatalf("unexpected snapshot: %+v", got)
	}
}
