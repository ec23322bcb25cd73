package sqlite

import (
	"context"
	"fmt"

	"github.com/modelboard/modelboard/internal/models"
)

// ListPipelines returns the seeded pipeline catalog in ID order.
func (s *SQLiteStore) ListPipelines(ctx context.Context) ([]models.Pipeline, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, status FROM pipelines ORDER BY id",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list pipelines: %w", err)
	}
	defer rows.Close()

	pipelines := []models.Pipeline{}
	for rows.Next() {
		var p models.Pipeline
		if err := rows.Scan(&p.ID, &p.Name, &p.Status); err != nil {
			return nil, fmt.Errorf("failed to scan pipeline: %w", err)
		}
		pipelines = append(pipelines, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate pipelines: %w", err)
	}

	return pipelines, nil
}
