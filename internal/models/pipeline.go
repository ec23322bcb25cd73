package models

// Pipeline describes a training or scoring pipeline. The catalog is seeded at
// startup and is read-only; triggering a run does not change its status.
type Pipeline struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}
