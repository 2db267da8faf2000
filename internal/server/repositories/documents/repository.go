package documents

import (
	"context"

	"github.com/avoganov/ancora/internal/server/models"
)

type Repository interface {
	Upsert(ctx context.Context, doc *models.Document) error
	Delete(ctx context.Context, userID string, collection string, id string) error
	ListByUserCollection(ctx context.Context, userID string, collection string) ([]*models.Document, error)
}
