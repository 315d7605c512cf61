package backend

import (
	"context"

	"budget/internal/store"
)

// CleanupFunc represents a cleanup function for resources
type CleanupFunc func() error

// Result contains the store instance and optional cleanup function
type Result struct {
	Store   store.Store
	Cleanup CleanupFunc
}

// Close runs the cleanup function, if any.
func (r *Result) Close() error {
	if r == nil || r.Cleanup == nil {
		return nil
	}
	return r.Cleanup()
}

// Factory creates stores based on configuration
type Factory interface {
	// CreateStore creates a store instance based on the provided config
	CreateStore(ctx context.Context, config Config) (*Result, error)
}

// Config holds configuration for store creation
type Config struct {
	Type Type

	// File backend directory
	DataDirectory string

	// SQLite specific
	SQLiteDBPath string
}

// Type represents the kind of store backing the tracker
type Type string

const (
	MemoryBackend Type = "memory"
	FileBackend   Type = "file"
	SQLiteBackend Type = "sqlite"
)

// String implements fmt.Stringer
func (t Type) String() string {
	return string(t)
}

// IsValid returns true if the backend type is valid
func (t Type) IsValid() bool {
	switch t {
	case MemoryBackend, FileBackend, SQLiteBackend:
		return true
	default:
		return false
	}
}
