package sqlite

import (
	"context"
	"fmt"

	"github.com/modelboard/modelboard/internal/models"
	"github.com/modelboard/modelboard/internal/storage"
)

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

// CreateModel inserts a new model and populates model.ID with the value
// assigned by the registry's autoincrement counter.
func (s *SQLiteStore) CreateModel(ctx context.Context, model *models.Model) error {
	if model.Status == "" {
		model.Status = models.ModelStatusRegistered
	}

	res, err := s.db.ExecContext(ctx,
		"INSERT INTO model_registry (name, version, artifact_url, status) VALUES (?, ?, ?, ?)",
		model.Name, model.Version, model.ArtifactURL, model.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to insert model: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read model id: %w", err)
	}
	model.ID = id

	return nil
}

// ListModels returns all registered models, oldest first.
func (s *SQLiteStore) ListModels(ctx context.Context) ([]models.Model, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, version, artifact_url, status FROM model_registry ORDER BY id",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list models: %w", err)
	}
	defer rows.Close()

	// Non-nil so an empty registry serializes as [] rather than null.
	registered := []models.Model{}
	for rows.Next() {
		var m models.Model
		if err := rows.Scan(&m.ID, &m.Name, &m.Version, &m.ArtifactURL, &m.Status); err != nil {
			return nil, fmt.Errorf("failed to scan model: %w", err)
		}
		registered = append(registered, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate models: %w", err)
	}

	return registered, nil
}
