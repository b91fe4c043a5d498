package types

import "errors"

// Storage is the durable key-value boundary the store persists through.
// Implementations must tolerate concurrent calls from one goroutine at a
// time; the store serializes access.
type Storage interface {
	// Get returns the value stored under key.
	// Returns ErrNotFound if the key is absent.
	Get(key string) (string, error)

	// Set stores value under key, replacing any previous value.
	Set(key, value string) error

	// Remove deletes the key. Removing an absent key is not an error.
	Remove(key string) error
}

// Storage errors.
var (
	ErrNotFound = errors.New("key not found")
)
