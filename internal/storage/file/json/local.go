package json

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/drakos74/free-screen/internal/storage"
)

// LocalShard creates an in-memory storage generator,
// a drop-in for BlobShard in tests and dry runs.
func LocalShard() storage.Shard {
	return func(shard string) (storage.Persistence, error) {
		return NewLocalStorage(), nil
	}
}

// LocalStorage keeps serialised documents in memory,
// keyed by the path the blob storage would have written them to.
type LocalStorage struct {
	lock  sync.RWMutex
	blobs map[string][]byte
}

// NewLocalStorage creates a new empty in-memory storage.
func NewLocalStorage() *LocalStorage {
	return &LocalStorage{
		blobs: make(map[string][]byte),
	}
}

// Store serialises the value under the key path.
func (l *LocalStorage) Store(k storage.Key, value interface{}) error {
	bb, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("could not marshal value for %s: %w", k.Path(), err)
	}

	l.lock.Lock()
	defer l.lock.Unlock()
	l.blobs[k.Path()] = bb
	return nil
}

// Load reads the value stored under the key path.
func (l *LocalStorage) Load(k storage.Key, value interface{}) error {
	l.lock.RLock()
	bb, ok := l.blobs[k.Path()]
	l.lock.RUnlock()

	if !ok {
		return fmt.Errorf("no document at '%s': %w", k.Path(), storage.NotFoundErr)
	}
	if err := json.Unmarshal(bb, value); err != nil {
		return fmt.Errorf("could not unmarshal value for %s: %w", k.Path(), err)
	}
	return nil
}
