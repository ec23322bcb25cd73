// Package service holds the application logic between the HTTP handlers and
// the storage layer.
package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/modelboard/modelboard/internal/models"
	"github.com/modelboard/modelboard/internal/storage"
)

// ErrMissingFields is returned by Register when name, version, or artifactUrl
// is absent or empty. Nothing is written to the registry in that case.
var ErrMissingFields = errors.New("missing required model fields")

// RegistryService manages the model registry.
type RegistryService struct {
	store storage.Store
}

// NewRegistryService creates a new RegistryService with the given storage backend.
func NewRegistryService(store storage.Store) *RegistryService {
	return &RegistryService{store: store}
}

// RegisterModelInput carries the caller-supplied fields of a registration
// request. JSON null and absent fields both decode to the empty string, which
// is exactly what validation treats as missing.
type RegisterModelInput struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	ArtifactURL string `json:"artifactUrl"`
}

// Register validates the input, persists a new model, and returns it with
// its assigned ID and status.
func (s *RegistryService) Register(ctx context.Context, in RegisterModelInput) (*models.Model, error) {
	if in.Name == "" || in.Version == "" || in.ArtifactURL == "" {
		return nil, ErrMissingFields
	}

	model := &models.Model{
		Name:        in.Name,
		Version:     in.Version,
		ArtifactURL: in.ArtifactURL,
		Status:      models.ModelStatusRegistered,
	}
	if err := s.store.CreateModel(ctx, model); err != nil {
		slog.Error("Model registration failed", "name", in.Name, "error", err)
		return nil, err
	}

	slog.Info("Model registered", "model_id", model.ID, "name", model.Name, "version", model.Version)

	return model, nil
}

// List returns all registered models, oldest first.
func (s *RegistryService) List(ctx context.Context) ([]models.Model, error) {
	return s.store.ListModels(ctx)
}
