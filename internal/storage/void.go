package storage

import "fmt"

// VoidStorage is a noop storage
type VoidStorage struct {
}

// NewVoidStorage creates a new noop storage
func NewVoidStorage() *VoidStorage {
	return &VoidStorage{}
}

func (d VoidStorage) Store(k Key, value interface{}) error {
	return nil
}

func (d VoidStorage) Load(k Key, value interface{}) error {
	return fmt.Errorf("not found '%v': %w", k, NotFoundErr)
}

// VoidShard creates a new noop shard
func VoidShard() Shard {
	return func(shard string) (Persistence, error) {
		return NewVoidStorage(), nil
	}
}

// VoidRegistry is a dummy event logger which ignores all calls
type VoidRegistry struct {
}

// NewVoidRegistry creates a new noop registry
func NewVoidRegistry() *VoidRegistry {
	return &VoidRegistry{}
}

// VoidEventRegistry creates a new noop registry generator
func VoidEventRegistry() EventRegistry {
	return func(path string) (Registry, error) {
		return NewVoidRegistry(), nil
	}
}

func (v VoidRegistry) Root() string {
	return ""
}

func (v VoidRegistry) Add(key K, value interface{}) error {
	return nil
}

func (v VoidRegistry) GetAll(key K, values interface{}) error {
	return nil
}
