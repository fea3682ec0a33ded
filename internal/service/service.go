// Package service defines the backend-agnostic interface for snapshot storage.
package service

import (
	"context"
	"errors"
)

// DefaultKey is the key the task snapshot is stored under.
const DefaultKey = "tasks"

// ErrNotFound is returned by backends for a missing key or container.
// Store.Get reports a missing key through its ok result instead.
var ErrNotFound = errors.New("not found")

// ErrUnauthorized wraps failures caused by missing or rejected credentials.
var ErrUnauthorized = errors.New("auth error")

// Store is a string-keyed blob store with last-write-wins semantics.
// Commands and the task store never import a backend SDK directly.
type Store interface {
	// Get returns the value stored under key.
	// ok is false if the key has never been written.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set replaces the value stored under key.
	Set(ctx context.Context, key, value string) error
}
