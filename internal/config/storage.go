package config

import (
	"fmt"

	"github.com/lgbarn/chess-arbiter/internal/errors"
)

// StorageConfig holds settings for the game store.
type StorageConfig struct {
	// Dir is the database directory. Ignored when InMemory is set.
	Dir string

	// InMemory keeps the store in memory only; nothing survives Close.
	InMemory bool

	// SyncWrites flushes every write to disk before returning.
	SyncWrites bool
}

// NewStorageConfig creates a StorageConfig with default values. Dir is left
// empty for the caller to fill in with a platform default.
func NewStorageConfig() *StorageConfig {
	return &StorageConfig{}
}

// Validate checks that the store has somewhere to live.
func (s *StorageConfig) Validate() error {
	if !s.InMemory && s.Dir == "" {
		return fmt.Errorf("storage directory not set: %w", errors.ErrInvalidConfig)
	}
	return nil
}
