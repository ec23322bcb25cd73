package models

// ModelStatusRegistered is the status every model carries on creation. No
// other status transitions exist today.
const ModelStatusRegistered = "registered"

// Model is a registered ML model artifact.
type Model struct {
	// ID is assigned by the store from a monotonic counter, starting at 1.
	ID int64 `json:"id"`

	// Name is the model name, e.g. "churn-predictor".
	Name string `json:"name"`

	// Version is an opaque version label supplied by the caller.
	Version string `json:"version"`

	// ArtifactURL points at the serialized model artifact.
	ArtifactURL string `json:"artifactUrl"`

	// Status is always ModelStatusRegistered on creation.
	Status string `json:"status"`
}
