// Package services contains the server-side application services sitting
// between the gRPC handlers and the repositories.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avoganov/ancora/internal/common"
	"github.com/avoganov/ancora/internal/dbx"
	"github.com/avoganov/ancora/internal/server/hub"
	"github.com/avoganov/ancora/internal/server/models"
	"github.com/avoganov/ancora/internal/server/repositories/documents"
)

// StoreService persists synced documents and notifies the owner's other
// devices through the hub.
type StoreService struct {
	db  *sql.DB
	hub *hub.Hub
}

func NewStoreService(db *sql.DB, h *hub.Hub) *StoreService {
	return &StoreService{db: db, hub: h}
}

// PushBatch upserts a client batch atomically. Events are published only
// after the transaction commits, so subscribers never see uncommitted state.
func (s *StoreService) PushBatch(ctx context.Context, userID string, docs []*models.Document) error {
	for _, d := range docs {
		d.UserID = userID
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := documents.NewPostgresRepository(tx)
		for _, d := range docs {
			if err := repo.Upsert(ctx, d); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to store batch: %w", err)
	}

	for _, d := range docs {
		s.hub.Publish(hub.Event{Type: hub.EventModified, Doc: d})
	}

	return nil
}

// Delete removes one document and broadcasts the removal. Deleting a
// document that is already gone is treated as success so retried deletes
// stay idempotent.
func (s *StoreService) Delete(ctx context.Context, userID string, collection string, id string) error {
	repo := documents.NewPostgresRepository(s.db)

	err := repo.Delete(ctx, userID, collection, id)
	if err != nil && !errors.Is(err, common.ErrorNotFound) {
		return fmt.Errorf("failed to delete document: %w", err)
	}

	s.hub.Publish(hub.Event{
		Type: hub.EventRemoved,
		Doc:  &models.Document{UserID: userID, Collection: collection, ID: id},
	})

	return nil
}

// Snapshot returns everything the user currently has in a collection,
// used to warm up a fresh subscribe stream before live events.
func (s *StoreService) Snapshot(ctx context.Context, userID string, collection string) ([]*models.Document, error) {
	repo := documents.NewPostgresRepository(s.db)

	docs, err := repo.ListByUserCollection(ctx, userID, collection)
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	return docs, nil
}
