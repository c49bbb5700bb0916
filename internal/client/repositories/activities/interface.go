// Package activities caches the most recently fetched activity list in the
// local client DB so browsing keeps working while the server is unreachable.
// The cache is a read-only fallback; it is replaced wholesale on every
// successful fetch and never written back to the server.
package activities

import (
	"context"

	"github.com/akarpovs/sportactive/internal/client/models"
)

type Repository interface {
	// ReplaceAll drops the current cache and stores the given activities.
	ReplaceAll(ctx context.Context, activities []models.Activity) error
	List(ctx context.Context) ([]models.Activity, error)
	// Get returns the cached activity, or common.ErrNotFound.
	Get(ctx context.Context, id int64) (*models.Activity, error)
}
