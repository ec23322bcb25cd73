package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/modelboard/modelboard/internal/models"
	"github.com/modelboard/modelboard/internal/storage"
)

// ErrMissingPipelineID is returned by Trigger when the request carried no
// usable pipeline identifier.
var ErrMissingPipelineID = errors.New("missing pipeline id")

// PipelineService serves the pipeline catalog and acknowledges run requests.
// Triggering does not execute anything; it only echoes the identifier back.
type PipelineService struct {
	store storage.Store
}

// NewPipelineService creates a new PipelineService with the given storage backend.
func NewPipelineService(store storage.Store) *PipelineService {
	return &PipelineService{store: store}
}

// List returns the seeded pipeline catalog.
func (s *PipelineService) List(ctx context.Context) ([]models.Pipeline, error) {
	return s.store.ListPipelines(ctx)
}

// Trigger acknowledges a run request for the given identifier and returns the
// acknowledgment message. The identifier may be any JSON scalar and is echoed
// verbatim; it is not checked against the catalog. Missing means absent, JSON
// null, or an empty string — a numeric zero is a valid identifier.
func (s *PipelineService) Trigger(ctx context.Context, pipelineID any) (string, error) {
	if pipelineID == nil {
		return "", ErrMissingPipelineID
	}
	if str, ok := pipelineID.(string); ok && str == "" {
		return "", ErrMissingPipelineID
	}

	slog.Info("Pipeline run triggered", "pipeline_id", pipelineID)

	return fmt.Sprintf("Pipeline %v triggered successfully", pipelineID), nil
}
