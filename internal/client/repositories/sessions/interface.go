package sessions

import (
	"context"
	"time"

	"github.com/avoganov/ancora/internal/client/models"
)

// Repository describes storage operations for Session records. Sessions
// are written once by the session completer and only re-touched by sync.
type Repository interface {
	Put(ctx context.Context, s *models.Session) error
	GetByID(ctx context.Context, id string) (*models.Session, error)

	// GetByExposure returns sessions for one exposure, oldest first.
	GetByExposure(ctx context.Context, exposureID string) ([]models.Session, error)

	// GetAll returns every session, newest first.
	GetAll(ctx context.Context) ([]models.Session, error)

	// CountSince returns how many sessions started after t.
	CountSince(ctx context.Context, t time.Time) (int, error)

	DeleteByID(ctx context.Context, id string) error
}
