package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	ReportsDir  = "reports"
	DatasetsDir = "datasets"
	RegistryDir = "registry"
)

var (
	// TODO : leaving this for now to be able to adjust for the tests
	DefaultDir = "file-storage"
)

// Shard creates a new storage implementation for the given shard.
type Shard func(shard string) (Persistence, error)

// EventRegistry creates a new registry implementation for the given path.
type EventRegistry func(path string) (Registry, error)

var (
	NotFoundErr      = errors.New("not found")
	CouldNotLoadErr  = errors.New("could not load")
	UnrecoverableErr = errors.New("unrecoverable error")
)

// Key is the storage key for a general implementation
type Key struct {
	Hash  int64  `json:"hash"`
	Deck  string `json:"deck"`
	Label string `json:"label"`
}

func (k Key) Path() string {
	return fmt.Sprintf("%s_%v_%s", k.Deck, k.Hash, k.Label)
}

// K is a simplified key for event registries
type K struct {
	Deck  string `json:"deck"`
	Label string `json:"label"`
}

// Persistence is a document store for single values per key.
type Persistence interface {
	Store(k Key, value interface{}) error
	Load(k Key, value interface{}) error
}

// Registry is an append-only event store.
type Registry interface {
	Root() string
	Add(key K, value interface{}) error
	GetAll(key K, values interface{}) error
}

// MakePath creates the parent directory and returns the full file path.
func MakePath(parentDir string, fileName string) (string, error) {
	if err := os.MkdirAll(parentDir, 0755); err != nil {
		return "", fmt.Errorf("could not make path %s: %w", parentDir, err)
	}
	return filepath.Join(parentDir, fileName), nil
}
