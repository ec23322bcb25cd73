// Package storage provides abstractions for data storage.
package storage

import (
	"context"

	"github.com/modelboard/modelboard/internal/models"
)

// Store defines the interface for collection storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	// ListUsers returns all seeded users in ID order.
	ListUsers(ctx context.Context) ([]models.User, error)

	// ListModels returns all registered models, oldest first.
	// Returns an empty slice (not nil) when nothing is registered.
	ListModels(ctx context.Context) ([]models.Model, error)

	// CreateModel persists a new model and populates model.ID from the
	// store's monotonic counter.
	CreateModel(ctx context.Context, model *models.Model) error

	// ListPipelines returns the seeded pipeline catalog in ID order.
	ListPipelines(ctx context.Context) ([]models.Pipeline, error)

	// Close releases any resources held by the store.
	Close() error
}
