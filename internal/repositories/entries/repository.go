// Package entries persists sealed vault entries in SQLite.
package entries

import (
	"context"

	"github.com/dmitrijs2005/keeperdemo/internal/models"
)

// Repository describes the storage operations a vault session needs.
type Repository interface {
	// CreateOrUpdate inserts a new entry or updates an existing one by Id.
	CreateOrUpdate(ctx context.Context, entry *models.Entry) error

	// GetAll returns live entries with only the overview columns filled,
	// in insertion order.
	GetAll(ctx context.Context) ([]models.Entry, error)

	// GetByID returns the full row of a live entry or common.ErrorNotFound.
	GetByID(ctx context.Context, id string) (*models.Entry, error)

	// Count returns the number of live entries.
	Count(ctx context.Context) (int, error)
}
