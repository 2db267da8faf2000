package exposures

import (
	"context"
	"time"

	"github.com/avoganov/ancora/internal/client/models"
)

// Repository describes storage operations for Exposure records.
// Implementations are backed by the local SQLite database.
type Repository interface {
	// Put inserts or fully replaces an exposure by id, stamping it pending.
	Put(ctx context.Context, e *models.Exposure) error

	// GetByID returns an exposure or common.ErrorNotFound.
	GetByID(ctx context.Context, id string) (*models.Exposure, error)

	// GetAll returns all exposures ordered by orderIndex ascending.
	GetAll(ctx context.Context) ([]models.Exposure, error)

	// DeleteByID removes an exposure permanently.
	DeleteByID(ctx context.Context, id string) error

	// Reorder rewrites orderIndex to match the given id order in one
	// transaction. All rows are re-stamped pending, or none on failure.
	Reorder(ctx context.Context, ids []string, now time.Time) error
}
