// Package models defines the core domain models for Modelboard.
//
// Three collections exist for the lifetime of the process:
//   - User: seeded at startup, read-only through the API
//   - Model: registered through the API, append-only
//   - Pipeline: seeded at startup, read-only through the API
//
// All models carry JSON tags matching the wire format of the HTTP API, so
// handlers serialize them directly without a separate response type.
package models
