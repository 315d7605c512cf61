// Package store defines the persistence port of the tracker: a key-value
// medium holding whole serialized collections.
package store

import (
	"context"
	"errors"
)

// EntriesKey is the fixed key under which the entry collection lives.
const EntriesKey = "budget-tracker-entries"

var ErrNotFound = errors.New("key not found")

// Ports for outbound adapters.
type (
	// Store reads and fully replaces values by key.
	Store interface {
		// Get returns the stored value or ErrNotFound.
		Get(ctx context.Context, key string) ([]byte, error)
		// Set replaces the value stored under key.
		Set(ctx context.Context, key string, value []byte) error
	}
)
